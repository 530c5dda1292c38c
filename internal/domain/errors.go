package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los tres primeros se detectan una sola vez al cargar el dataset y abortan
// el cálculo completo: un agregado sobre datos inconsistentes sería erróneo
// sin ninguna señal visible.
var (
	ErrReferentialIntegrity = errors.New("venta referencia un artículo u outlet inexistente")
	ErrDuplicateKey         = errors.New("clave duplicada")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidBoundary      = errors.New("configuración de bandas inválida")
	ErrUnknownReport        = errors.New("reporte no encontrado")
)
