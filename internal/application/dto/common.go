package dto

// ErrorResponse cuerpo de error HTTP. Details solo lleva información de
// diagnóstico; nunca SQL interno ni stack traces.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
