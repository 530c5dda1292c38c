package dataset_test

import (
	"testing"

	"github.com/jhoicas/Analitica-retail/internal/domain"
	"github.com/jhoicas/Analitica-retail/internal/domain/dataset"
	"github.com/jhoicas/Analitica-retail/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string) entity.Item {
	return entity.Item{
		ID:         id,
		ItemType:   "Dairy",
		MRP:        decimal.NewFromInt(100),
		Visibility: decimal.NewFromFloat(0.1),
		FatContent: "Regular",
	}
}

func outlet(id string) entity.Outlet {
	return entity.Outlet{
		ID:                id,
		EstablishmentYear: 1999,
		Size:              "Small",
		LocationType:      "Tier 2",
		OutletType:        "Grocery Store",
	}
}

func venta(outletID, itemID string, monto int64) entity.SalesRecord {
	return entity.SalesRecord{OutletID: outletID, ItemID: itemID, Sales: decimal.NewFromInt(monto)}
}

func TestNew_DatasetValidoMaterializaFilasUnidas(t *testing.T) {
	ds, err := dataset.New(
		[]entity.Item{item("A"), item("B")},
		[]entity.Outlet{outlet("O1")},
		[]entity.SalesRecord{venta("O1", "A", 10), venta("O1", "B", 20)},
	)
	require.NoError(t, err)

	rows := ds.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Item.ID, "la fila unida apunta al artículo referenciado")
	assert.Equal(t, "O1", rows[0].Outlet.ID)
	assert.Equal(t, 1, ds.OutletCount())
}

func TestNew_ItemDuplicado(t *testing.T) {
	_, err := dataset.New([]entity.Item{item("A"), item("A")}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestNew_OutletDuplicado(t *testing.T) {
	_, err := dataset.New(nil, []entity.Outlet{outlet("O1"), outlet("O1")}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestNew_VentaDuplicadaNoSeSuma(t *testing.T) {
	// Dos ventas para el mismo par (outlet, artículo) son un error de datos;
	// sumarlas en silencio ocultaría el problema en todos los agregados.
	_, err := dataset.New(
		[]entity.Item{item("A")},
		[]entity.Outlet{outlet("O1")},
		[]entity.SalesRecord{venta("O1", "A", 10), venta("O1", "A", 5)},
	)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestNew_IntegridadReferencial(t *testing.T) {
	_, err := dataset.New(
		[]entity.Item{item("A")},
		[]entity.Outlet{outlet("O1")},
		[]entity.SalesRecord{venta("O9", "A", 10)},
	)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	_, err = dataset.New(
		[]entity.Item{item("A")},
		[]entity.Outlet{outlet("O1")},
		[]entity.SalesRecord{venta("O1", "Z", 10)},
	)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
}

func TestNew_RechazaNumericosInvalidos(t *testing.T) {
	malVisibilidad := item("A")
	malVisibilidad.Visibility = decimal.NewFromFloat(1.5)
	_, err := dataset.New([]entity.Item{malVisibilidad}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	malMRP := item("B")
	malMRP.MRP = decimal.NewFromInt(-1)
	_, err = dataset.New([]entity.Item{malMRP}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = dataset.New(
		[]entity.Item{item("A")},
		[]entity.Outlet{outlet("O1")},
		[]entity.SalesRecord{venta("O1", "A", -10)},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNew_RechazaAnioFuturo(t *testing.T) {
	futuro := outlet("O1")
	futuro.EstablishmentYear = 3000
	_, err := dataset.New(nil, []entity.Outlet{futuro}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
