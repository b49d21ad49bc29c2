package repository

import "github.com/JoaquinSpengler/api-autos/internal/domain/entity"

// AutoRepository define el puerto de persistencia para los vehículos.
type AutoRepository interface {
	Create(a *entity.Auto) error
	GetByID(id int64) (*entity.Auto, error)
	// GetByPatente devuelve nil (sin error) si no existe.
	GetByPatente(nroPatente string) (*entity.Auto, error)
	List() ([]*entity.Auto, error)
	ListDisponibles() ([]*entity.Auto, error)
	Update(a *entity.Auto) error
	Inactivar(id int64) error
}
