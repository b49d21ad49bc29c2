package repository

import "github.com/JoaquinSpengler/api-autos/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id int64) (*entity.Proveedor, error)
	GetByCUIL(cuil string) (*entity.Proveedor, error)
	ListActivos() ([]*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	// Inactivar marca la baja lógica y guarda el motivo.
	Inactivar(id int64, razonBaja string) error
}
