package analytics

import (
	"fmt"

	"github.com/jhoicas/Analitica-retail/internal/application/dto"
	domain "github.com/jhoicas/Analitica-retail/internal/domain"
	"github.com/jhoicas/Analitica-retail/internal/domain/dataset"
	"github.com/shopspring/decimal"
)

const defaultTopItems = 5 // límite del reporte top-items si la config no fija otro

// Service expone los 15 reportes sobre un dataset validado e inmutable.
//
// Las configuraciones de bandas se construyen y validan una sola vez acá;
// una lista de límites mal escrita falla en NewService, no al procesar filas.
type Service struct {
	ds         *dataset.Dataset
	mrpBands   *RangeBinner
	priceBands *ThresholdBinner
	topItems   int
}

// NewService construye el servicio de reportes. topItems <= 0 usa el default.
func NewService(ds *dataset.Dataset, topItems int) (*Service, error) {
	if topItems <= 0 {
		topItems = defaultTopItems
	}

	// Bandas cerradas de MRP de a 50 unidades (reporte mrp-bands).
	mrp, err := NewRangeBinner([]Range{
		{Low: decimal.NewFromInt(0), High: decimal.NewFromInt(50), Label: "0-50"},
		{Low: decimal.NewFromInt(51), High: decimal.NewFromInt(100), Label: "51-100"},
		{Low: decimal.NewFromInt(101), High: decimal.NewFromInt(150), Label: "101-150"},
		{Low: decimal.NewFromInt(151), High: decimal.NewFromInt(200), Label: "151-200"},
		{Low: decimal.NewFromInt(201), High: decimal.NewFromInt(250), Label: "201-250"},
		{Low: decimal.NewFromInt(251), High: decimal.NewFromInt(300), Label: "251-300"},
	}, "Otros")
	if err != nil {
		return nil, fmt.Errorf("bandas de MRP: %w", err)
	}

	// Bandas de precio semiabiertas (reporte price-band-mix): < 50, < 100,
	// ..., <= 300 y el resto arriba de 300.
	price, err := NewThresholdBinner([]Threshold{
		{Limit: decimal.NewFromInt(50), Label: "Menos de 50"},
		{Limit: decimal.NewFromInt(100), Label: "Menos de 100"},
		{Limit: decimal.NewFromInt(150), Label: "Menos de 150"},
		{Limit: decimal.NewFromInt(200), Label: "Menos de 200"},
		{Limit: decimal.NewFromInt(250), Label: "Menos de 250"},
		{Limit: decimal.NewFromInt(300), Inclusive: true, Label: "Hasta 300"},
	}, "Más de 300")
	if err != nil {
		return nil, fmt.Errorf("bandas de precio: %w", err)
	}

	return &Service{ds: ds, mrpBands: mrp, priceBands: price, topItems: topItems}, nil
}

// Catalog devuelve los 15 reportes disponibles en orden de id.
func (s *Service) Catalog() []dto.ReportMeta {
	return []dto.ReportMeta{
		{ID: 1, Slug: "top-items", Name: "Top de artículos", Description: "Los artículos con más ventas totales"},
		{ID: 2, Slug: "outlet-ranking", Name: "Ranking de outlets", Description: "Ventas totales por outlet con ranking de competencia"},
		{ID: 3, Slug: "item-type-averages", Name: "Promedios por categoría", Description: "Venta promedio por categoría de artículo"},
		{ID: 4, Slug: "fat-content-sales", Name: "Ventas por contenido graso", Description: "Total y promedio por contenido graso"},
		{ID: 5, Slug: "outlet-size-sales", Name: "Ventas por tamaño", Description: "Ventas totales por tamaño de outlet"},
		{ID: 6, Slug: "location-sales", Name: "Ventas por ubicación", Description: "Ventas totales por tier de ubicación"},
		{ID: 7, Slug: "mrp-bands", Name: "Bandas de MRP", Description: "Ventas por banda cerrada de 50 unidades de MRP"},
		{ID: 8, Slug: "hidden-performers", Name: "Decil de baja visibilidad", Description: "Último decil de ventas entre artículos con visibilidad > 0.05"},
		{ID: 9, Slug: "stability", Name: "Estabilidad por categoría", Description: "Categorías ordenadas por desviación estándar poblacional"},
		{ID: 10, Slug: "top-percentile-items", Name: "Percentil superior", Description: "Artículos en el 5% superior de ventas de su outlet_type"},
		{ID: 11, Slug: "assortment", Name: "Amplitud de surtido", Description: "Artículos distintos y ventas por outlet"},
		{ID: 12, Slug: "margin-outliers", Name: "Margen alto, rotación baja", Description: "Artículos caros, poco distribuidos y con ventas bajo el promedio"},
		{ID: 13, Slug: "concentration", Name: "Concentración por formato", Description: "Categoría líder y su participación dentro de cada outlet_type"},
		{ID: 14, Slug: "dominance", Name: "Dominancia de categorías", Description: "Fracción de outlets donde cada categoría es la más vendida"},
		{ID: 15, Slug: "price-band-mix", Name: "Mezcla por banda de precio", Description: "Participación de cada banda de precio dentro de cada outlet_type"},
	}
}

// Run ejecuta el reporte identificado por su slug y devuelve sus filas
// tipadas (slice del DTO correspondiente) listo para serializar.
func (s *Service) Run(slug string) (any, error) {
	switch slug {
	case "top-items":
		return s.TopItems(), nil
	case "outlet-ranking":
		return s.OutletRanking(), nil
	case "item-type-averages":
		return s.ItemTypeAverages(), nil
	case "fat-content-sales":
		return s.FatContentSales(), nil
	case "outlet-size-sales":
		return s.OutletSizeSales(), nil
	case "location-sales":
		return s.LocationSales(), nil
	case "mrp-bands":
		return s.MRPBands(), nil
	case "hidden-performers":
		return s.HiddenPerformers(), nil
	case "stability":
		return s.Stability(), nil
	case "top-percentile-items":
		return s.TopPercentileItems(), nil
	case "assortment":
		return s.Assortment(), nil
	case "margin-outliers":
		return s.MarginOutliers(), nil
	case "concentration":
		return s.Concentration(), nil
	case "dominance":
		return s.Dominance(), nil
	case "price-band-mix":
		return s.PriceBandMix(), nil
	default:
		return nil, fmt.Errorf("reporte %q: %w", slug, domain.ErrUnknownReport)
	}
}

// RunAll ejecuta los 15 reportes en paralelo y devuelve las filas por slug.
// Cada pipeline lee el dataset inmutable, así que el fan-out no necesita
// más coordinación que el canal de resultados.
func (s *Service) RunAll() map[string]any {
	type result struct {
		slug string
		rows any
	}

	catalog := s.Catalog()
	ch := make(chan result, len(catalog))
	for _, meta := range catalog {
		go func(slug string) {
			rows, _ := s.Run(slug) // el slug sale del catálogo, no puede fallar
			ch <- result{slug: slug, rows: rows}
		}(meta.Slug)
	}

	out := make(map[string]any, len(catalog))
	for range catalog {
		r := <-ch
		out[r.slug] = r.rows
	}
	return out
}
