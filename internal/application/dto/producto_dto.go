package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest body para POST /api/productos/agregar-producto.
type CrearProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required"`
	Marca          string          `json:"marca"`
	Modelo         string          `json:"modelo"`
	CategoriaID    int64           `json:"categoria"`
	Cantidad       int             `json:"cantidad" validate:"gte=0"`
	CantidadMinima int             `json:"cantidad_minima" validate:"gte=0"`
	Precio         decimal.Decimal `json:"precio"`
	Activo         bool            `json:"activo"`
}

// ActualizarProductoRequest body para PUT /api/productos/modificar-producto/{id}.
type ActualizarProductoRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	CategoriaID int64  `json:"categoria"`
	Cantidad    int    `json:"cantidad" validate:"gte=0"`
	Activo      bool   `json:"activo"`
}

// ActualizarPrecioRequest body para PUT /api/productos/{id}/actualizar_precio.
type ActualizarPrecioRequest struct {
	Precio decimal.Decimal `json:"precio" validate:"required"`
}

// RestarCantidadRequest body para PUT /api/productos/{nombre}/restar-cantidad-nombre.
type RestarCantidadRequest struct {
	Cantidad int `json:"cantidad" validate:"required,gt=0"`
}

// ProductoResponse representación JSON de un producto.
type ProductoResponse struct {
	ID             int64           `json:"id_producto"`
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	Modelo         string          `json:"modelo"`
	CategoriaID    int64           `json:"categoria"`
	Cantidad       int             `json:"cantidad"`
	CantidadMinima int             `json:"cantidad_minima"`
	Precio         decimal.Decimal `json:"precio"`
	Activo         bool            `json:"activo"`
}
