// Package dataset materializa y valida el conjunto de datos completo sobre el
// que corren los reportes: artículos, outlets y ventas por (outlet, artículo).
//
// La validación ocurre una sola vez, en la frontera de carga. Después de
// construido, el Dataset es inmutable: ningún pipeline lo modifica, por lo que
// varios reportes pueden leerlo en paralelo sin sincronización.
package dataset

import (
	"fmt"
	"time"

	domain "github.com/jhoicas/Analitica-retail/internal/domain"
	"github.com/jhoicas/Analitica-retail/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Row es una fila ya unida venta×artículo×outlet, la unidad de entrada de
// todos los pipelines. Los punteros apuntan a las entidades del Dataset y
// deben tratarse como solo lectura.
type Row struct {
	Item   *entity.Item
	Outlet *entity.Outlet
	Sales  decimal.Decimal
}

// Dataset agrupa los tres conjuntos base validados.
type Dataset struct {
	items   []entity.Item
	outlets []entity.Outlet
	sales   []entity.SalesRecord

	itemByID   map[string]*entity.Item
	outletByID map[string]*entity.Outlet
	rows       []Row
}

// New valida los tres conjuntos y construye el dataset.
//
// Reglas (cualquier violación aborta el cálculo completo):
//   - item_id y outlet_id únicos; (outlet_id, item_id) único en ventas
//   - toda venta referencia un artículo y un outlet existentes
//   - mrp >= 0, visibility en [0,1], weight >= 0 si está presente
//   - sales >= 0 y año de apertura <= año actual
func New(items []entity.Item, outlets []entity.Outlet, sales []entity.SalesRecord) (*Dataset, error) {
	ds := &Dataset{
		items:      items,
		outlets:    outlets,
		sales:      sales,
		itemByID:   make(map[string]*entity.Item, len(items)),
		outletByID: make(map[string]*entity.Outlet, len(outlets)),
	}

	for i := range items {
		it := &items[i]
		if it.ID == "" {
			return nil, fmt.Errorf("artículo sin id: %w", domain.ErrInvalidInput)
		}
		if _, ok := ds.itemByID[it.ID]; ok {
			return nil, fmt.Errorf("artículo %q: %w", it.ID, domain.ErrDuplicateKey)
		}
		if it.MRP.IsNegative() {
			return nil, fmt.Errorf("artículo %q: mrp negativo: %w", it.ID, domain.ErrInvalidInput)
		}
		if it.Visibility.IsNegative() || it.Visibility.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("artículo %q: visibility fuera de [0,1]: %w", it.ID, domain.ErrInvalidInput)
		}
		if it.Weight != nil && it.Weight.IsNegative() {
			return nil, fmt.Errorf("artículo %q: weight negativo: %w", it.ID, domain.ErrInvalidInput)
		}
		ds.itemByID[it.ID] = it
	}

	currentYear := time.Now().Year()
	for i := range outlets {
		ot := &outlets[i]
		if ot.ID == "" {
			return nil, fmt.Errorf("outlet sin id: %w", domain.ErrInvalidInput)
		}
		if _, ok := ds.outletByID[ot.ID]; ok {
			return nil, fmt.Errorf("outlet %q: %w", ot.ID, domain.ErrDuplicateKey)
		}
		if ot.EstablishmentYear > currentYear {
			return nil, fmt.Errorf("outlet %q: año de apertura %d en el futuro: %w",
				ot.ID, ot.EstablishmentYear, domain.ErrInvalidInput)
		}
		ds.outletByID[ot.ID] = ot
	}

	seen := make(map[[2]string]struct{}, len(sales))
	ds.rows = make([]Row, 0, len(sales))
	for _, sr := range sales {
		key := [2]string{sr.OutletID, sr.ItemID}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("venta (%s, %s): %w", sr.OutletID, sr.ItemID, domain.ErrDuplicateKey)
		}
		seen[key] = struct{}{}

		it, okItem := ds.itemByID[sr.ItemID]
		ot, okOutlet := ds.outletByID[sr.OutletID]
		if !okItem || !okOutlet {
			return nil, fmt.Errorf("venta (%s, %s): %w", sr.OutletID, sr.ItemID, domain.ErrReferentialIntegrity)
		}
		if sr.Sales.IsNegative() {
			return nil, fmt.Errorf("venta (%s, %s): monto negativo: %w", sr.OutletID, sr.ItemID, domain.ErrInvalidInput)
		}
		ds.rows = append(ds.rows, Row{Item: it, Outlet: ot, Sales: sr.Sales})
	}

	return ds, nil
}

// Rows devuelve las filas unidas en el orden de carga de las ventas.
// El slice es compartido: los pipelines no deben reordenarlo in situ.
func (ds *Dataset) Rows() []Row { return ds.rows }

// Outlets devuelve los outlets cargados.
func (ds *Dataset) Outlets() []entity.Outlet { return ds.outlets }

// Items devuelve los artículos cargados.
func (ds *Dataset) Items() []entity.Item { return ds.items }

// OutletCount cantidad total de outlets (denominador del score de dominancia).
func (ds *Dataset) OutletCount() int { return len(ds.outlets) }
