package repository

import (
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
)

// LimitePrecioRepository define el puerto para los techos de monto de la
// generación automática de órdenes.
type LimitePrecioRepository interface {
	// MaxLimite devuelve el máximo límite configurado, o nil si la tabla
	// está vacía.
	MaxLimite() (*decimal.Decimal, error)
	Create(l *entity.LimitePrecio) error
}
