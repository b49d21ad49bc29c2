package dto

import "github.com/shopspring/decimal"

// CrearLimitePrecioRequest body para POST /api/limites-precio.
type CrearLimitePrecioRequest struct {
	LimiteMaximo decimal.Decimal `json:"limite_maximo" validate:"required"`
}
