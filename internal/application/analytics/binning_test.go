package analytics

import (
	"testing"

	domain "github.com/jhoicas/Analitica-retail/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func bandasDePrueba(t *testing.T) *RangeBinner {
	t.Helper()
	b, err := NewRangeBinner([]Range{
		{Low: d(0), High: d(50), Label: "0-50"},
		{Low: d(51), High: d(100), Label: "51-100"},
		{Low: d(101), High: d(150), Label: "101-150"},
	}, "Otros")
	require.NoError(t, err)
	return b
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de configuración (falla al construir, no al procesar filas)
// ──────────────────────────────────────────────────────────────────────────────

func TestNewRangeBinner_RechazaSolapadas(t *testing.T) {
	_, err := NewRangeBinner([]Range{
		{Low: d(0), High: d(50), Label: "a"},
		{Low: d(50), High: d(100), Label: "b"}, // 50 cae en las dos
	}, "Otros")
	assert.ErrorIs(t, err, domain.ErrInvalidBoundary)
}

func TestNewRangeBinner_RechazaDesordenadas(t *testing.T) {
	_, err := NewRangeBinner([]Range{
		{Low: d(51), High: d(100), Label: "b"},
		{Low: d(0), High: d(50), Label: "a"},
	}, "Otros")
	assert.ErrorIs(t, err, domain.ErrInvalidBoundary)
}

func TestNewRangeBinner_RechazaBandaInvertida(t *testing.T) {
	_, err := NewRangeBinner([]Range{{Low: d(50), High: d(0), Label: "a"}}, "Otros")
	assert.ErrorIs(t, err, domain.ErrInvalidBoundary)
}

func TestNewThresholdBinner_RechazaCotasNoCrecientes(t *testing.T) {
	_, err := NewThresholdBinner([]Threshold{
		{Limit: d(100), Label: "a"},
		{Limit: d(100), Label: "b"},
	}, "resto")
	assert.ErrorIs(t, err, domain.ErrInvalidBoundary)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exhaustividad: todo valor cae en exactamente una etiqueta
// ──────────────────────────────────────────────────────────────────────────────

func TestRangeBinner_Exhaustividad(t *testing.T) {
	b := bandasDePrueba(t)

	casos := map[float64]string{
		0:     "0-50",
		40:    "0-50",
		50:    "0-50", // borde: pertenece a una sola banda, la que lo lista
		50.5:  "Otros", // hueco entre bandas enteras
		51:    "51-100",
		100:   "51-100",
		101:   "101-150",
		150:   "101-150",
		150.1: "Otros",
		999:   "Otros",
	}
	for valor, esperado := range casos {
		assert.Equal(t, esperado, b.Label(d(valor)), "valor %v", valor)
	}
}

func TestRangeBinner_OrdenDeEtiquetas(t *testing.T) {
	b := bandasDePrueba(t)
	assert.Equal(t, []string{"0-50", "51-100", "101-150", "Otros"}, b.Labels(),
		"el orden de presentación es el configurado, no el alfabético")
}

func TestThresholdBinner_CotaFinalInclusiva(t *testing.T) {
	b, err := NewThresholdBinner([]Threshold{
		{Limit: d(50), Label: "Menos de 50"},
		{Limit: d(100), Label: "Menos de 100"},
		{Limit: d(300), Inclusive: true, Label: "Hasta 300"},
	}, "Más de 300")
	require.NoError(t, err)

	assert.Equal(t, "Menos de 50", b.Label(d(49.99)))
	assert.Equal(t, "Menos de 100", b.Label(d(50)), "la cota estricta empuja el borde a la banda siguiente")
	assert.Equal(t, "Hasta 300", b.Label(d(300)), "la cota final es inclusiva")
	assert.Equal(t, "Más de 300", b.Label(d(300.01)))
}
