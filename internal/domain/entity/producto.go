package entity

import "github.com/shopspring/decimal"

// Producto representa un repuesto o insumo del inventario de la flota.
// Cantidad es el stock actual; se modifica al confirmar recepciones de
// órdenes de compra o por ajustes manuales. CantidadMinima es el umbral
// de reposición que dispara las órdenes automáticas.
type Producto struct {
	ID             int64
	Nombre         string
	Marca          string
	Modelo         string
	CategoriaID    int64 // referencia débil a categorias (y por ella al proveedor)
	Cantidad       int
	CantidadMinima int
	Precio         decimal.Decimal // precio de catálogo vigente
	Activo         bool
}
