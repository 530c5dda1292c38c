package dto

import "github.com/shopspring/decimal"

// ReportMeta entrada del catálogo de reportes.
type ReportMeta struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TopItemRow reporte 1: top de artículos por ventas totales.
type TopItemRow struct {
	ItemID     string          `json:"item_id"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// OutletRankRow reporte 2: ventas por outlet con ranking de competencia.
type OutletRankRow struct {
	OutletID   string          `json:"outlet_id"`
	OutletType string          `json:"outlet_type"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Rank       int             `json:"rank"`
}

// ItemTypeAvgRow reporte 3: promedio de ventas por categoría de artículo.
type ItemTypeAvgRow struct {
	ItemType string          `json:"item_type"`
	AvgSales decimal.Decimal `json:"avg_sales"`
	Records  int             `json:"records"`
}

// FatContentRow reporte 4: ventas por contenido graso.
type FatContentRow struct {
	FatContent string          `json:"fat_content"`
	TotalSales decimal.Decimal `json:"total_sales"`
	AvgSales   decimal.Decimal `json:"avg_sales"`
}

// OutletSizeRow reporte 5: ventas por tamaño de outlet.
type OutletSizeRow struct {
	Size       string          `json:"size"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Outlets    int             `json:"outlets"`
}

// LocationRow reporte 6: ventas por tier de ubicación.
type LocationRow struct {
	LocationType string          `json:"location_type"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	Items        int             `json:"items"`
}

// MRPBandRow reporte 7: ventas por banda cerrada de MRP.
type MRPBandRow struct {
	Band       string          `json:"band"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// HiddenPerformerRow reporte 8: decil de ventas con visibilidad > 0.05.
type HiddenPerformerRow struct {
	ItemID     string          `json:"item_id"`
	Visibility decimal.Decimal `json:"visibility"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Decile     int             `json:"decile"`
}

// StabilityRow reporte 9: estabilidad de ventas por categoría (stddev
// poblacional; menor desviación = categoría más estable).
type StabilityRow struct {
	ItemType string          `json:"item_type"`
	AvgSales decimal.Decimal `json:"avg_sales"`
	StdDev   decimal.Decimal `json:"std_dev"`
	Records  int             `json:"records"`
}

// TopPercentileRow reporte 10: artículos en el 5% superior de su outlet_type.
type TopPercentileRow struct {
	OutletType  string          `json:"outlet_type"`
	ItemID      string          `json:"item_id"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	PercentRank float64         `json:"percent_rank"`
}

// AssortmentRow reporte 11: amplitud de surtido por outlet.
type AssortmentRow struct {
	OutletID      string          `json:"outlet_id"`
	DistinctItems int             `json:"distinct_items"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	AvgSales      decimal.Decimal `json:"avg_sales"`
}

// MarginOutlierRow reporte 12: margen alto y rotación baja.
type MarginOutlierRow struct {
	ItemID     string          `json:"item_id"`
	AvgMRP     decimal.Decimal `json:"avg_mrp"`
	Outlets    int             `json:"outlets"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ConcentrationRow reporte 13: categoría dominante por outlet_type y su
// participación sobre el total del outlet_type.
type ConcentrationRow struct {
	OutletType string          `json:"outlet_type"`
	ItemType   string          `json:"item_type"`
	TypeSales  decimal.Decimal `json:"type_sales"`
	SharePct   decimal.Decimal `json:"share_pct"`
}

// DominanceRow reporte 14: fracción de outlets donde la categoría es la más
// vendida. Los empates en el puesto 1 suman para todas las categorías
// empatadas, así que los scores pueden sumar más de 1 entre categorías.
type DominanceRow struct {
	ItemType   string          `json:"item_type"`
	OutletsLed int             `json:"outlets_led"`
	Score      decimal.Decimal `json:"score"`
}

// PriceBandRow reporte 15: mezcla de ventas por banda de precio dentro de
// cada outlet_type.
type PriceBandRow struct {
	OutletType string          `json:"outlet_type"`
	Band       string          `json:"band"`
	TotalSales decimal.Decimal `json:"total_sales"`
	SharePct   decimal.Decimal `json:"share_pct"`
}
