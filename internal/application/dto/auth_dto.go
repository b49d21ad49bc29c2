package dto

// RegistrarRequest body para POST /api/registrar.
type RegistrarRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido"`
	DNI      string `json:"dni"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required"`
}

// LoginRequest body para POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token y datos básicos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"user"`
}

// UsuarioResponse representación JSON de un usuario (sin hash).
type UsuarioResponse struct {
	ID         string `json:"id_usuario"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	DNI        string `json:"dni"`
	Email      string `json:"email"`
	Rol        string `json:"rol"`
	Habilitado bool   `json:"habilitado"`
}
