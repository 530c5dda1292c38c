package analytics

import (
	"fmt"

	domain "github.com/jhoicas/Analitica-retail/internal/domain"
	"github.com/shopspring/decimal"
)

// Bandas numéricas: mapean un valor continuo a una etiqueta de una lista
// ordenada y exhaustiva. Dos políticas, las dos que usan los reportes:
//
//   - RangeBinner: bandas cerradas [low, high] disjuntas (bandas de MRP de a
//     50 unidades) más etiqueta residual para lo que queda fuera.
//   - ThresholdBinner: cotas superiores semiabiertas ascendentes (< 50, < 100,
//     ..., <= 300) más etiqueta residual.
//
// La configuración se valida al construir, nunca al procesar filas: una lista
// de límites desordenada o solapada es un error de programación y el pipeline
// entero debe fallar antes de emitir una sola fila.

// Range banda cerrada [Low, High] con su etiqueta de presentación.
type Range struct {
	Low   decimal.Decimal
	High  decimal.Decimal
	Label string
}

// RangeBinner bandas cerradas disjuntas en orden ascendente.
type RangeBinner struct {
	ranges   []Range
	fallback string
}

// NewRangeBinner valida que cada banda tenga Low <= High y que las bandas
// sean estrictamente ascendentes y sin solape.
func NewRangeBinner(ranges []Range, fallback string) (*RangeBinner, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("bandas vacías: %w", domain.ErrInvalidBoundary)
	}
	for i, r := range ranges {
		if r.High.LessThan(r.Low) {
			return nil, fmt.Errorf("banda %q invertida: %w", r.Label, domain.ErrInvalidBoundary)
		}
		if i > 0 && !ranges[i-1].High.LessThan(r.Low) {
			return nil, fmt.Errorf("bandas %q y %q solapadas o desordenadas: %w",
				ranges[i-1].Label, r.Label, domain.ErrInvalidBoundary)
		}
	}
	return &RangeBinner{ranges: ranges, fallback: fallback}, nil
}

// Label devuelve la etiqueta de la banda que contiene v, o la residual.
// Todo valor cae en exactamente una etiqueta.
func (b *RangeBinner) Label(v decimal.Decimal) string {
	for _, r := range b.ranges {
		if !v.LessThan(r.Low) && !v.GreaterThan(r.High) {
			return r.Label
		}
	}
	return b.fallback
}

// Labels orden de presentación de las etiquetas (el configurado, no
// alfabético), con la residual al final.
func (b *RangeBinner) Labels() []string {
	out := make([]string, 0, len(b.ranges)+1)
	for _, r := range b.ranges {
		out = append(out, r.Label)
	}
	return append(out, b.fallback)
}

// Threshold cota superior de una banda semiabierta ascendente. Inclusive
// marca la cota final "hasta X" (v <= Limit en lugar de v < Limit).
type Threshold struct {
	Limit     decimal.Decimal
	Inclusive bool
	Label     string
}

// ThresholdBinner bandas por cota superior ascendente.
type ThresholdBinner struct {
	thresholds []Threshold
	fallback   string
}

// NewThresholdBinner valida que las cotas sean estrictamente crecientes.
func NewThresholdBinner(thresholds []Threshold, fallback string) (*ThresholdBinner, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("cotas vacías: %w", domain.ErrInvalidBoundary)
	}
	for i := 1; i < len(thresholds); i++ {
		if !thresholds[i-1].Limit.LessThan(thresholds[i].Limit) {
			return nil, fmt.Errorf("cotas %q y %q no crecientes: %w",
				thresholds[i-1].Label, thresholds[i].Label, domain.ErrInvalidBoundary)
		}
	}
	return &ThresholdBinner{thresholds: thresholds, fallback: fallback}, nil
}

// Label devuelve la etiqueta de la primera cota que acota a v, o la residual.
func (b *ThresholdBinner) Label(v decimal.Decimal) string {
	for _, t := range b.thresholds {
		if v.LessThan(t.Limit) || (t.Inclusive && v.Equal(t.Limit)) {
			return t.Label
		}
	}
	return b.fallback
}

// Labels orden de presentación de las etiquetas, con la residual al final.
func (b *ThresholdBinner) Labels() []string {
	out := make([]string, 0, len(b.thresholds)+1)
	for _, t := range b.thresholds {
		out = append(out, t.Label)
	}
	return append(out, b.fallback)
}
