package entity

import "time"

// RecepcionProducto registra cuánto se recibió de un producto para una
// orden. Única por (orden, producto): una nueva confirmación sobreescribe
// la cantidad (reconciliación last-write-wins, no libro aditivo).
type RecepcionProducto struct {
	OrdenID          int64
	ProductoID       int64
	CantidadRecibida int
	FechaRecepcion   time.Time
}
