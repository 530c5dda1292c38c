// Package csvstore es el colaborador de ingesta: lee los tres archivos CSV
// normalizados (artículos, outlets, ventas), resuelve blancos y coerciona los
// numéricos antes de entregarle registros tipados al núcleo. El núcleo nunca
// ve strings crudos.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/Analitica-retail/internal/domain/dataset"
	"github.com/jhoicas/Analitica-retail/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Loader carga el dataset desde tres rutas CSV.
type Loader struct {
	itemsPath   string
	outletsPath string
	salesPath   string
}

// NewLoader construye el loader con las rutas de los tres archivos.
func NewLoader(itemsPath, outletsPath, salesPath string) *Loader {
	return &Loader{itemsPath: itemsPath, outletsPath: outletsPath, salesPath: salesPath}
}

// LoadDataset lee los tres archivos y construye el dataset validado.
// Cualquier fila malformada o violación de integridad aborta la carga.
func (l *Loader) LoadDataset() (*dataset.Dataset, error) {
	items, err := l.loadItems()
	if err != nil {
		return nil, err
	}
	outlets, err := l.loadOutlets()
	if err != nil {
		return nil, err
	}
	sales, err := l.loadSales()
	if err != nil {
		return nil, err
	}
	return dataset.New(items, outlets, sales)
}

func (l *Loader) loadItems() ([]entity.Item, error) {
	f, err := os.Open(l.itemsPath)
	if err != nil {
		return nil, fmt.Errorf("abrir artículos: %w", err)
	}
	defer f.Close()
	return ParseItems(f)
}

func (l *Loader) loadOutlets() ([]entity.Outlet, error) {
	f, err := os.Open(l.outletsPath)
	if err != nil {
		return nil, fmt.Errorf("abrir outlets: %w", err)
	}
	defer f.Close()
	return ParseOutlets(f)
}

func (l *Loader) loadSales() ([]entity.SalesRecord, error) {
	f, err := os.Open(l.salesPath)
	if err != nil {
		return nil, fmt.Errorf("abrir ventas: %w", err)
	}
	defer f.Close()
	return ParseSales(f)
}

// ParseItems parsea el CSV de artículos. Columnas requeridas:
// item_id, item_type, mrp, visibility, weight, fat_content.
// weight en blanco queda como nulo (nil), nunca como cero.
func ParseItems(r io.Reader) ([]entity.Item, error) {
	cols, records, err := readAll(r, "artículos",
		"item_id", "item_type", "mrp", "visibility", "weight", "fat_content")
	if err != nil {
		return nil, err
	}

	items := make([]entity.Item, 0, len(records))
	for n, rec := range records {
		mrp, err := parseDecimal(rec[cols["mrp"]])
		if err != nil {
			return nil, rowError("artículos", n, "mrp", err)
		}
		visibility, err := parseDecimal(rec[cols["visibility"]])
		if err != nil {
			return nil, rowError("artículos", n, "visibility", err)
		}

		var weight *decimal.Decimal
		if raw := strings.TrimSpace(rec[cols["weight"]]); raw != "" {
			w, err := parseDecimal(raw)
			if err != nil {
				return nil, rowError("artículos", n, "weight", err)
			}
			weight = &w
		}

		items = append(items, entity.Item{
			ID:         strings.TrimSpace(rec[cols["item_id"]]),
			ItemType:   strings.TrimSpace(rec[cols["item_type"]]),
			MRP:        mrp,
			Visibility: visibility,
			Weight:     weight,
			FatContent: strings.TrimSpace(rec[cols["fat_content"]]),
		})
	}
	return items, nil
}

// ParseOutlets parsea el CSV de outlets. Columnas requeridas:
// outlet_id, establishment_year, size, location_type, outlet_type.
// size en blanco se resuelve a "Unknown" acá, antes de entrar al núcleo.
func ParseOutlets(r io.Reader) ([]entity.Outlet, error) {
	cols, records, err := readAll(r, "outlets",
		"outlet_id", "establishment_year", "size", "location_type", "outlet_type")
	if err != nil {
		return nil, err
	}

	outlets := make([]entity.Outlet, 0, len(records))
	for n, rec := range records {
		year, err := strconv.Atoi(strings.TrimSpace(rec[cols["establishment_year"]]))
		if err != nil {
			return nil, rowError("outlets", n, "establishment_year", err)
		}

		size := strings.TrimSpace(rec[cols["size"]])
		if size == "" {
			size = entity.OutletSizeUnknown
		}

		outlets = append(outlets, entity.Outlet{
			ID:                strings.TrimSpace(rec[cols["outlet_id"]]),
			EstablishmentYear: year,
			Size:              size,
			LocationType:      strings.TrimSpace(rec[cols["location_type"]]),
			OutletType:        strings.TrimSpace(rec[cols["outlet_type"]]),
		})
	}
	return outlets, nil
}

// ParseSales parsea el CSV de ventas. Columnas requeridas:
// outlet_id, item_id, sales. Un monto en blanco es un error de datos, no un
// cero implícito.
func ParseSales(r io.Reader) ([]entity.SalesRecord, error) {
	cols, records, err := readAll(r, "ventas", "outlet_id", "item_id", "sales")
	if err != nil {
		return nil, err
	}

	sales := make([]entity.SalesRecord, 0, len(records))
	for n, rec := range records {
		amount, err := parseDecimal(rec[cols["sales"]])
		if err != nil {
			return nil, rowError("ventas", n, "sales", err)
		}
		sales = append(sales, entity.SalesRecord{
			OutletID: strings.TrimSpace(rec[cols["outlet_id"]]),
			ItemID:   strings.TrimSpace(rec[cols["item_id"]]),
			Sales:    amount,
		})
	}
	return sales, nil
}

// readAll lee encabezado y filas, y mapea las columnas requeridas a índices.
func readAll(r io.Reader, name string, required ...string) (map[string]int, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: leer encabezado: %w", name, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, nil, fmt.Errorf("%s: falta la columna %q", name, col)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: leer filas: %w", name, err)
	}
	return cols, records, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// rowError error de coerción con número de fila 1-based (sin contar encabezado).
func rowError(name string, row int, col string, err error) error {
	return fmt.Errorf("%s: fila %d, columna %s: %w", name, row+1, col, err)
}
