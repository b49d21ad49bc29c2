package repository

import "github.com/JoaquinSpengler/api-autos/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	// GetByEmail devuelve nil (sin error) si no existe.
	GetByEmail(email string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
}
