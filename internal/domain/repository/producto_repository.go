package repository

import (
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	ListActivos() ([]*entity.Producto, error)
	// ListActivosPorProveedor devuelve los productos activos cuya categoría
	// pertenece al proveedor indicado (join vía categorias.proveedor_id).
	ListActivosPorProveedor(proveedorID int64) ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	Inactivar(id int64) error
	ActualizarPrecio(id int64, precio decimal.Decimal) error
	// SumarCantidad aplica un delta (positivo o negativo) al stock.
	// Falla con domain.ErrStockInsuficiente si dejaría el stock negativo.
	SumarCantidad(id int64, delta int) error
	// RestarCantidadPorNombre descuenta stock por nombre de producto.
	// Falla con domain.ErrStockInsuficiente si dejaría el stock negativo.
	RestarCantidadPorNombre(nombre string, cantidad int) error
}
