package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Violations any    `json:"violations,omitempty"` // solo en errores de validación
}
