package analytics

import (
	"sort"

	"github.com/jhoicas/Analitica-retail/internal/application/dto"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// maxOutletsCarried umbral de distribución del reporte margin-outliers: un
// artículo presente en menos de esta cantidad de outlets cuenta como de
// rotación baja.
const maxOutletsCarried = 3

// MarginOutliers reporte 12: artículos con MRP promedio por encima del
// promedio global, presentes en menos de 3 outlets y con ventas totales por
// debajo de la venta promedio global por fila.
//
// Los dos escalares globales se calculan una sola vez sobre el conjunto unido
// completo; con dataset vacío el reporte devuelve vacío en lugar de dividir.
func (s *Service) MarginOutliers() []dto.MarginOutlierRow {
	rows := s.ds.Rows()
	if len(rows) == 0 {
		return nil
	}

	globalAvgMRP := Avg(rows, measureMRP)
	globalAvgSales := Avg(rows, measureSales)

	groups := GroupBy(rows, keyItem)
	var out []dto.MarginOutlierRow
	for _, g := range groups {
		avgMRP := Avg(g.Rows, measureMRP)
		outlets := CountDistinct(g.Rows, keyOutlet)
		total := Sum(g.Rows, measureSales)

		if !avgMRP.GreaterThan(globalAvgMRP) || outlets >= maxOutletsCarried || !total.LessThan(globalAvgSales) {
			continue
		}
		out = append(out, dto.MarginOutlierRow{
			ItemID:     g.Key(0),
			AvgMRP:     round2(avgMRP),
			Outlets:    outlets,
			TotalSales: round2(total),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].AvgMRP.Cmp(out[j].AvgMRP); c != 0 {
			return c > 0
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

// Concentration reporte 13: dentro de cada outlet_type, la categoría con más
// ventas (solo el puesto 1; un empate emite todas las categorías empatadas) y
// su participación porcentual sobre el total del outlet_type.
func (s *Service) Concentration() []dto.ConcentrationRow {
	byType := GroupBy(s.ds.Rows(), keyOutletType)
	sort.Slice(byType, func(i, j int) bool { return byType[i].Key(0) < byType[j].Key(0) })

	var out []dto.ConcentrationRow
	for _, partition := range byType {
		typeTotal := Sum(partition.Rows, measureSales)

		aggs := sumByGroup(partition.Rows, measureSales, keyItemType)
		sortByTotalDesc(aggs)
		ranks := Rank(len(aggs), func(i, j int) bool {
			return aggs[i].total.Equal(aggs[j].total)
		})

		for i, a := range aggs {
			if ranks[i] != 1 {
				break // orden descendente: después del puesto 1 no hay más
			}
			share := decimal.Zero
			if !typeTotal.IsZero() {
				share = a.total.Mul(hundred).Div(typeTotal)
			}
			out = append(out, dto.ConcentrationRow{
				OutletType: partition.Key(0),
				ItemType:   a.group.Key(0),
				TypeSales:  round2(a.total),
				SharePct:   round2(share),
			})
		}
	}
	return out
}

// Dominance reporte 14: por categoría, en qué fracción de los outlets es la
// más vendida. El denominador es la cantidad de outlets distintos observados
// en ventas; los empates en el puesto 1 suman para todas las categorías
// empatadas, por lo que los scores entre categorías pueden sumar más de 1.
func (s *Service) Dominance() []dto.DominanceRow {
	byOutlet := GroupBy(s.ds.Rows(), keyOutlet)
	if len(byOutlet) == 0 {
		return nil
	}
	totalOutlets := decimal.NewFromInt(int64(len(byOutlet)))

	wins := make(map[string]int)
	var order []string // categorías en orden de primera victoria, para desempate estable
	for _, outlet := range byOutlet {
		aggs := sumByGroup(outlet.Rows, measureSales, keyItemType)
		sortByTotalDesc(aggs)
		ranks := Rank(len(aggs), func(i, j int) bool {
			return aggs[i].total.Equal(aggs[j].total)
		})

		for i, a := range aggs {
			if ranks[i] != 1 {
				break
			}
			itemType := a.group.Key(0)
			if _, ok := wins[itemType]; !ok {
				order = append(order, itemType)
			}
			wins[itemType]++
		}
	}

	out := make([]dto.DominanceRow, 0, len(order))
	for _, itemType := range order {
		score := decimal.NewFromInt(int64(wins[itemType])).Div(totalOutlets)
		out = append(out, dto.DominanceRow{
			ItemType:   itemType,
			OutletsLed: wins[itemType],
			Score:      round2(score),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OutletsLed != out[j].OutletsLed {
			return out[i].OutletsLed > out[j].OutletsLed
		}
		return out[i].ItemType < out[j].ItemType
	})
	return out
}

// PriceBandMix reporte 15: ventas por banda de precio semiabierta dentro de
// cada outlet_type, con la participación de la banda sobre el total del
// formato. Las bandas se emiten en su orden configurado y solo si vendieron.
func (s *Service) PriceBandMix() []dto.PriceBandRow {
	byType := GroupBy(s.ds.Rows(), keyOutletType)
	sort.Slice(byType, func(i, j int) bool { return byType[i].Key(0) < byType[j].Key(0) })

	var out []dto.PriceBandRow
	for _, partition := range byType {
		typeTotal := Sum(partition.Rows, measureSales)

		bandTotals := make(map[string]decimal.Decimal)
		for _, r := range partition.Rows {
			label := s.priceBands.Label(r.Item.MRP)
			bandTotals[label] = bandTotals[label].Add(r.Sales)
		}

		for _, label := range s.priceBands.Labels() {
			total, ok := bandTotals[label]
			if !ok {
				continue
			}
			share := decimal.Zero
			if !typeTotal.IsZero() {
				share = total.Mul(hundred).Div(typeTotal)
			}
			out = append(out, dto.PriceBandRow{
				OutletType: partition.Key(0),
				Band:       label,
				TotalSales: round2(total),
				SharePct:   round2(share),
			})
		}
	}
	return out
}
