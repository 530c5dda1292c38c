package entity

import "github.com/shopspring/decimal"

// Item representa un artículo (SKU) del surtido.
//
// Weight es opcional: el dataset de origen trae pesos faltantes y el
// colaborador de ingesta los entrega como nil, nunca como cero.
type Item struct {
	ID         string          // clave única del artículo
	ItemType   string          // categoría, ej. "Dairy", "Snack Foods"
	MRP        decimal.Decimal // precio máximo de venta al público, >= 0
	Visibility decimal.Decimal // fracción de visibilidad en estantería, [0,1]
	Weight     *decimal.Decimal
	FatContent string // enumeración textual, ej. "Low Fat" | "Regular"
}
