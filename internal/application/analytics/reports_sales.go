package analytics

import (
	"sort"

	"github.com/jhoicas/Analitica-retail/internal/application/dto"
	"github.com/jhoicas/Analitica-retail/internal/domain/dataset"
	"github.com/shopspring/decimal"
)

// Extractores compartidos por los pipelines.
func keyItem(r dataset.Row) string       { return r.Item.ID }
func keyItemType(r dataset.Row) string   { return r.Item.ItemType }
func keyFatContent(r dataset.Row) string { return r.Item.FatContent }
func keyOutlet(r dataset.Row) string     { return r.Outlet.ID }
func keyOutletType(r dataset.Row) string { return r.Outlet.OutletType }
func keySize(r dataset.Row) string       { return r.Outlet.Size }
func keyLocation(r dataset.Row) string   { return r.Outlet.LocationType }

func measureSales(r dataset.Row) decimal.Decimal { return r.Sales }
func measureMRP(r dataset.Row) decimal.Decimal   { return r.Item.MRP }

// round2 redondeo de presentación. Solo en la proyección final: redondear en
// medio del pipeline acumularía error en las agregaciones encadenadas.
func round2(v decimal.Decimal) decimal.Decimal { return v.Round(2) }

// aggregated grupo reducido a su total, forma intermedia de varios reportes.
type aggregated struct {
	group Group
	total decimal.Decimal
}

// sumByGroup agrupa y suma la medida, conservando el grupo para proyectar.
func sumByGroup(rows []dataset.Row, m Measure, keys ...KeyFunc) []aggregated {
	groups := GroupBy(rows, keys...)
	out := make([]aggregated, len(groups))
	for i, g := range groups {
		out[i] = aggregated{group: g, total: Sum(g.Rows, m)}
	}
	return out
}

// sortByTotalDesc ordena por total descendente con la primera clave del grupo
// ascendente como desempate determinista.
func sortByTotalDesc(aggs []aggregated) {
	sort.Slice(aggs, func(i, j int) bool {
		if c := aggs[i].total.Cmp(aggs[j].total); c != 0 {
			return c > 0
		}
		return aggs[i].group.Key(0) < aggs[j].group.Key(0)
	})
}

// TopItems reporte 1: artículos con más ventas totales, limitado.
func (s *Service) TopItems() []dto.TopItemRow {
	aggs := sumByGroup(s.ds.Rows(), measureSales, keyItem)
	sortByTotalDesc(aggs)
	if len(aggs) > s.topItems {
		aggs = aggs[:s.topItems]
	}

	out := make([]dto.TopItemRow, len(aggs))
	for i, a := range aggs {
		out[i] = dto.TopItemRow{ItemID: a.group.Key(0), TotalSales: round2(a.total)}
	}
	return out
}

// OutletRanking reporte 2: ventas por outlet con ranking de competencia
// (empates comparten puesto, el siguiente valor distinto salta puestos).
func (s *Service) OutletRanking() []dto.OutletRankRow {
	aggs := sumByGroup(s.ds.Rows(), measureSales, keyOutlet)
	sortByTotalDesc(aggs)

	ranks := Rank(len(aggs), func(i, j int) bool {
		return aggs[i].total.Equal(aggs[j].total)
	})

	out := make([]dto.OutletRankRow, len(aggs))
	for i, a := range aggs {
		out[i] = dto.OutletRankRow{
			OutletID:   a.group.Key(0),
			OutletType: a.group.Rows[0].Outlet.OutletType,
			TotalSales: round2(a.total),
			Rank:       ranks[i],
		}
	}
	return out
}

// ItemTypeAverages reporte 3: venta promedio por categoría, descendente.
func (s *Service) ItemTypeAverages() []dto.ItemTypeAvgRow {
	groups := GroupBy(s.ds.Rows(), keyItemType)

	out := make([]dto.ItemTypeAvgRow, len(groups))
	for i, g := range groups {
		out[i] = dto.ItemTypeAvgRow{
			ItemType: g.Key(0),
			AvgSales: Avg(g.Rows, measureSales),
			Records:  Count(g.Rows),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].AvgSales.Cmp(out[j].AvgSales); c != 0 {
			return c > 0
		}
		return out[i].ItemType < out[j].ItemType
	})
	for i := range out {
		out[i].AvgSales = round2(out[i].AvgSales)
	}
	return out
}

// FatContentSales reporte 4: total y promedio por contenido graso.
func (s *Service) FatContentSales() []dto.FatContentRow {
	groups := GroupBy(s.ds.Rows(), keyFatContent)

	out := make([]dto.FatContentRow, len(groups))
	for i, g := range groups {
		out[i] = dto.FatContentRow{
			FatContent: g.Key(0),
			TotalSales: Sum(g.Rows, measureSales),
			AvgSales:   Avg(g.Rows, measureSales),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSales.Cmp(out[j].TotalSales); c != 0 {
			return c > 0
		}
		return out[i].FatContent < out[j].FatContent
	})
	for i := range out {
		out[i].TotalSales = round2(out[i].TotalSales)
		out[i].AvgSales = round2(out[i].AvgSales)
	}
	return out
}

// OutletSizeSales reporte 5: ventas y outlets distintos por tamaño.
func (s *Service) OutletSizeSales() []dto.OutletSizeRow {
	groups := GroupBy(s.ds.Rows(), keySize)

	out := make([]dto.OutletSizeRow, len(groups))
	for i, g := range groups {
		out[i] = dto.OutletSizeRow{
			Size:       g.Key(0),
			TotalSales: Sum(g.Rows, measureSales),
			Outlets:    CountDistinct(g.Rows, keyOutlet),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSales.Cmp(out[j].TotalSales); c != 0 {
			return c > 0
		}
		return out[i].Size < out[j].Size
	})
	for i := range out {
		out[i].TotalSales = round2(out[i].TotalSales)
	}
	return out
}

// LocationSales reporte 6: ventas y artículos distintos por tier de ubicación.
func (s *Service) LocationSales() []dto.LocationRow {
	groups := GroupBy(s.ds.Rows(), keyLocation)

	out := make([]dto.LocationRow, len(groups))
	for i, g := range groups {
		out[i] = dto.LocationRow{
			LocationType: g.Key(0),
			TotalSales:   Sum(g.Rows, measureSales),
			Items:        CountDistinct(g.Rows, keyItem),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSales.Cmp(out[j].TotalSales); c != 0 {
			return c > 0
		}
		return out[i].LocationType < out[j].LocationType
	})
	for i := range out {
		out[i].TotalSales = round2(out[i].TotalSales)
	}
	return out
}

// MRPBands reporte 7: ventas por banda cerrada de MRP, en el orden de las
// bandas (no alfabético). Solo se emiten bandas con ventas.
func (s *Service) MRPBands() []dto.MRPBandRow {
	totals := make(map[string]decimal.Decimal)
	for _, r := range s.ds.Rows() {
		label := s.mrpBands.Label(r.Item.MRP)
		totals[label] = totals[label].Add(r.Sales)
	}

	out := make([]dto.MRPBandRow, 0, len(totals))
	for _, label := range s.mrpBands.Labels() {
		total, ok := totals[label]
		if !ok {
			continue
		}
		out = append(out, dto.MRPBandRow{Band: label, TotalSales: round2(total)})
	}
	return out
}

// decileBuckets cantidad de cubetas del reporte hidden-performers.
const decileBuckets = 10

// HiddenPerformers reporte 8: entre los artículos con visibilidad > 0.05,
// el último decil de las ventas ordenadas de mayor a menor.
//
// Ojo: el decil 10 de un orden descendente son las ventas MÁS BAJAS, aunque
// el reporte de origen lo titulaba "más ventas". Se conserva el comportamiento
// literal; la discrepancia está documentada en el README.
func (s *Service) HiddenPerformers() []dto.HiddenPerformerRow {
	minVisibility := decimal.NewFromFloat(0.05)

	visible := make([]dataset.Row, 0, len(s.ds.Rows()))
	for _, r := range s.ds.Rows() {
		if r.Item.Visibility.GreaterThan(minVisibility) {
			visible = append(visible, r)
		}
	}

	aggs := sumByGroup(visible, measureSales, keyItem)
	sortByTotalDesc(aggs)
	buckets := Ntile(len(aggs), decileBuckets)

	var out []dto.HiddenPerformerRow
	for i, a := range aggs {
		if buckets[i] != decileBuckets {
			continue
		}
		out = append(out, dto.HiddenPerformerRow{
			ItemID:     a.group.Key(0),
			Visibility: a.group.Rows[0].Item.Visibility,
			TotalSales: round2(a.total),
			Decile:     buckets[i],
		})
	}
	return out
}

// Stability reporte 9: categorías ordenadas por desviación estándar
// poblacional ascendente, la más estable primero.
func (s *Service) Stability() []dto.StabilityRow {
	groups := GroupBy(s.ds.Rows(), keyItemType)

	out := make([]dto.StabilityRow, len(groups))
	for i, g := range groups {
		out[i] = dto.StabilityRow{
			ItemType: g.Key(0),
			AvgSales: Avg(g.Rows, measureSales),
			StdDev:   StddevPop(g.Rows, measureSales),
			Records:  Count(g.Rows),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].StdDev.Cmp(out[j].StdDev); c != 0 {
			return c < 0
		}
		return out[i].ItemType < out[j].ItemType
	})
	for i := range out {
		out[i].AvgSales = round2(out[i].AvgSales)
		out[i].StdDev = round2(out[i].StdDev)
	}
	return out
}

// topPercentile fracción superior que conserva top-percentile-items.
const topPercentile = 0.05

// TopPercentileItems reporte 10: dentro de cada outlet_type, los artículos
// cuyo percent_rank por ventas descendentes es <= 0.05 (el 5% superior).
// Particiones de un solo artículo devuelven percent_rank 0 y siempre entran.
func (s *Service) TopPercentileItems() []dto.TopPercentileRow {
	byType := GroupBy(s.ds.Rows(), keyOutletType)
	sort.Slice(byType, func(i, j int) bool { return byType[i].Key(0) < byType[j].Key(0) })

	var out []dto.TopPercentileRow
	for _, partition := range byType {
		aggs := sumByGroup(partition.Rows, measureSales, keyItem)
		sortByTotalDesc(aggs)

		ranks := Rank(len(aggs), func(i, j int) bool {
			return aggs[i].total.Equal(aggs[j].total)
		})
		percents := PercentRank(ranks)

		for i, a := range aggs {
			if percents[i] > topPercentile {
				continue
			}
			out = append(out, dto.TopPercentileRow{
				OutletType:  partition.Key(0),
				ItemID:      a.group.Key(0),
				TotalSales:  round2(a.total),
				PercentRank: percents[i],
			})
		}
	}
	return out
}

// Assortment reporte 11: amplitud de surtido por outlet, de mayor a menor.
func (s *Service) Assortment() []dto.AssortmentRow {
	groups := GroupBy(s.ds.Rows(), keyOutlet)

	out := make([]dto.AssortmentRow, len(groups))
	for i, g := range groups {
		out[i] = dto.AssortmentRow{
			OutletID:      g.Key(0),
			DistinctItems: CountDistinct(g.Rows, keyItem),
			TotalSales:    Sum(g.Rows, measureSales),
			AvgSales:      Avg(g.Rows, measureSales),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistinctItems != out[j].DistinctItems {
			return out[i].DistinctItems > out[j].DistinctItems
		}
		return out[i].OutletID < out[j].OutletID
	})
	for i := range out {
		out[i].TotalSales = round2(out[i].TotalSales)
		out[i].AvgSales = round2(out[i].AvgSales)
	}
	return out
}
