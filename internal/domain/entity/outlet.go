package entity

// Tamaño de outlet cuando la fuente no lo informa. La ingesta resuelve los
// blancos a este valor antes de entregar los registros al núcleo.
const OutletSizeUnknown = "Unknown"

// Outlet representa una tienda.
type Outlet struct {
	ID                string // clave única del outlet
	EstablishmentYear int    // año de apertura, <= año actual
	Size              string // "Small" | "Medium" | "High" | OutletSizeUnknown
	LocationType      string // clasificación por tier, ej. "Tier 1"
	OutletType        string // formato de tienda, ej. "Supermarket Type1"
}
