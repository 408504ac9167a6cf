package domain

// ErrorResponse es la estructura estándar de las respuestas de error de la API.
// @Description Estructura estándar de las respuestas de error de la API.
type ErrorResponse struct {
	Code     int         `json:"code" example:"400"`
	Category string      `json:"category" example:"VALIDATION_ERROR"`
	Message  string      `json:"message" example:"Errores de validación."`
	Errors   interface{} `json:"errors,omitempty"`
	Details  interface{} `json:"details,omitempty"`
	Stack    string      `json:"stack,omitempty"`
}

// MessageResponse es el cuerpo mínimo usado por el 404 genérico y los rechazos de autenticación.
type MessageResponse struct {
	Message string `json:"message" example:"Ruta no encontrada: GET /api/inexistente"`
}
