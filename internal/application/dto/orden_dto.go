package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaOrdenRequest una línea pedida: producto y cantidad. El precio no se
// acepta del cliente: siempre se captura del catálogo en el servidor.
type LineaOrdenRequest struct {
	ProductoID int64 `json:"product_id" validate:"required"`
	Cantidad   int   `json:"quantity" validate:"required,gt=0"`
}

// CrearOrdenRequest body para POST /purchase-orders.
type CrearOrdenRequest struct {
	ProveedorID int64               `json:"supplier_id" validate:"required"`
	Lineas      []LineaOrdenRequest `json:"lines" validate:"required,min=1,dive"`
}

// CrearOrdenResponse identidad y número de la orden creada.
type CrearOrdenResponse struct {
	OrdenID     int64  `json:"order_id"`
	NumeroOrden string `json:"order_number"`
}

// LineaRecepcionRequest una entrada de confirmación de recepción.
// Precio es opcional: si viene, actualiza el precio de catálogo del
// producto (efecto global sobre futuras órdenes).
type LineaRecepcionRequest struct {
	ProductoID       int64            `json:"product_id" validate:"required"`
	CantidadRecibida int              `json:"quantity_received" validate:"gte=0"`
	Precio           *decimal.Decimal `json:"unit_price,omitempty"`
}

// ConfirmarRecepcionRequest body para POST /purchase-orders/{id}/confirm-receipt.
type ConfirmarRecepcionRequest struct {
	Lineas []LineaRecepcionRequest `json:"lines" validate:"required,min=1,dive"`
}

// GenerarAutomaticaRequest body para POST /purchase-orders/auto-generate.
type GenerarAutomaticaRequest struct {
	ProveedorID    int64 `json:"supplier_id" validate:"required"`
	ProductoID     int64 `json:"product_id" validate:"required"`
	CantidadMinima int   `json:"min_quantity" validate:"required,gt=0"`
}

// GenerarAutomaticaResponse estado y total de la orden generada.
type GenerarAutomaticaResponse struct {
	OrdenID     int64           `json:"order_id"`
	NumeroOrden string          `json:"order_number"`
	Estado      string          `json:"state"`
	Total       decimal.Decimal `json:"total"`
}

// LineaOrdenResponse línea de una orden en listados.
type LineaOrdenResponse struct {
	ProductoID int64           `json:"product_id"`
	Nombre     string          `json:"name"`
	Cantidad   int             `json:"quantity"`
	Precio     decimal.Decimal `json:"unit_price"`
}

// RecepcionResponse recepción registrada para una línea.
type RecepcionResponse struct {
	ProductoID       int64     `json:"product_id"`
	CantidadRecibida int       `json:"quantity_received"`
	FechaRecepcion   time.Time `json:"received_at"`
}

// OrdenResponse una orden con sus líneas y recepciones.
type OrdenResponse struct {
	ID              int64               `json:"id"`
	ProveedorID     int64               `json:"supplier_id"`
	NombreProveedor string              `json:"supplier_name,omitempty"`
	FechaCreacion   time.Time           `json:"created_at"`
	Total           decimal.Decimal     `json:"total"`
	Estado          string              `json:"state"`
	NumeroOrden     string              `json:"order_number"`
	Lineas          []LineaOrdenResponse `json:"lines"`
	Recepciones     []RecepcionResponse  `json:"receipts,omitempty"`
}

// LineaEstadoRecepcion cantidades pedidas vs. recibidas de una línea.
type LineaEstadoRecepcion struct {
	ProductoID         int64           `json:"product_id"`
	CantidadSolicitada int             `json:"quantity_ordered"`
	CantidadRecibida   int             `json:"quantity_received"`
	PrecioVigente      decimal.Decimal `json:"current_price"`
}

// EstadoRecepcionResponse body de GET /purchase-orders/{id}/receipt-status.
type EstadoRecepcionResponse struct {
	Orden  OrdenResponse          `json:"order"`
	Lineas []LineaEstadoRecepcion `json:"lines"`
}
