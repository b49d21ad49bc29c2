package entity

import "time"

// Usuario cuenta del sistema. PasswordHash es bcrypt; nunca se persiste
// ni se expone la contraseña en claro.
type Usuario struct {
	ID           string // uuid
	Nombre       string
	Apellido     string
	DNI          string
	Email        string
	PasswordHash string
	Rol          string
	Habilitado   bool
	CreadoEn     time.Time
}
