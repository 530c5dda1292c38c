package entity

import "github.com/shopspring/decimal"

// SalesRecord ventas observadas de un artículo en un outlet.
//
// La clave compuesta (OutletID, ItemID) es única: dos registros para el mismo
// par son un error de datos y nunca se suman en silencio.
type SalesRecord struct {
	OutletID string
	ItemID   string
	Sales    decimal.Decimal // monto vendido, >= 0
}
