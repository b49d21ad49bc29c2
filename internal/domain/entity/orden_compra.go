package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de compra.
//
//	creada ──(aceptar)──> aceptada ──(inactivar)──> inactiva
//	creada/aceptada ──(confirmar recepción)──> completada
//
// Una orden generada automáticamente nace en "automática" cuando su total
// no supera el límite de precio configurado (pre-aprobada).
const (
	EstadoCreada     = "creada"
	EstadoAceptada   = "aceptada"
	EstadoCompletada = "completada"
	EstadoInactiva   = "inactiva"
	EstadoAutomatica = "automática"
)

// OrdenDeCompra es la cabecera de una orden de compra a un proveedor.
// NumeroOrden es un código legible único (#AB1234) asignado en la creación
// y nunca reasignado; Total se calcula siempre en el servidor como la suma
// de precio capturado × cantidad de cada línea.
type OrdenDeCompra struct {
	ID            int64
	ProveedorID   int64
	FechaCreacion time.Time
	Total         decimal.Decimal
	Estado        string
	NumeroOrden   string
}

// PuedeAceptar indica si la orden admite la transición a "aceptada".
func (o *OrdenDeCompra) PuedeAceptar() bool {
	return o.Estado == EstadoCreada
}

// PuedeInactivar indica si la orden admite la transición a "inactiva".
func (o *OrdenDeCompra) PuedeInactivar() bool {
	return o.Estado == EstadoAceptada
}
