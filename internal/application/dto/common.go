package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReportResponse envoltorio de un reporte: metadatos del catálogo más filas.
type ReportResponse struct {
	Report ReportMeta `json:"report"`
	Rows   any        `json:"rows"`
}
