package entity

import "github.com/shopspring/decimal"

// LimitePrecio es un techo de monto configurado para la generación
// automática de órdenes: por debajo del máximo configurado la orden nace
// pre-aprobada ("automática"), por encima requiere aceptación manual.
type LimitePrecio struct {
	ID           int64
	LimiteMaximo decimal.Decimal
}
