package entity

import "github.com/shopspring/decimal"

// OrdenProducto es una línea de una orden de compra: propiedad compuesta
// por (orden, producto). Precio es la foto del precio de catálogo al
// momento de crear la orden, independiente del precio vigente posterior.
// Se crea una sola vez y no se modifica.
type OrdenProducto struct {
	OrdenID    int64
	ProductoID int64
	Cantidad   int
	Precio     decimal.Decimal
}

// Subtotal devuelve precio capturado × cantidad.
func (l *OrdenProducto) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}
