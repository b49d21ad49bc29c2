package repository

import (
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
)

// OrdenResumen es la proyección de lectura de una orden con el nombre del
// proveedor (para listados).
type OrdenResumen struct {
	Orden           entity.OrdenDeCompra
	NombreProveedor string
}

// LineaConProducto es una línea de orden junto al nombre del producto.
type LineaConProducto struct {
	ProductoID int64
	Nombre     string
	Cantidad   int
	Precio     decimal.Decimal
}

// LineaRecepcion compara lo pedido contra lo recibido para una línea.
// CantidadRecibida es 0 si aún no hubo confirmación para el producto.
type LineaRecepcion struct {
	ProductoID         int64
	CantidadSolicitada int
	CantidadRecibida   int
	PrecioVigente      decimal.Decimal
}

// OrdenCompraRepository define el puerto de persistencia para las órdenes
// de compra y sus líneas.
type OrdenCompraRepository interface {
	// Create inserta la cabecera y asigna o.ID. Devuelve
	// domain.ErrDuplicado si el número de orden ya existe (constraint
	// único sobre numero_orden).
	Create(o *entity.OrdenDeCompra) error
	CreateLinea(l *entity.OrdenProducto) error
	GetByID(id int64) (*entity.OrdenDeCompra, error)
	ExisteNumero(numero string) (bool, error)
	ActualizarEstado(id int64, estado string) error
	ListResumen() ([]*OrdenResumen, error)
	ListLineas(ordenID int64) ([]*LineaConProducto, error)
	// ListRecepcion devuelve cada línea de la orden con la cantidad
	// solicitada, la recibida hasta ahora y el precio de catálogo vigente.
	ListRecepcion(ordenID int64) ([]*LineaRecepcion, error)
}
