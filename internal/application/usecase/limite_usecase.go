package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// LimitePrecioUseCase administra los techos de monto para la generación
// automática de órdenes de compra.
type LimitePrecioUseCase struct {
	repo repository.LimitePrecioRepository
}

// NewLimitePrecioUseCase construye el caso de uso.
func NewLimitePrecioUseCase(repo repository.LimitePrecioRepository) *LimitePrecioUseCase {
	return &LimitePrecioUseCase{repo: repo}
}

// Crear registra un nuevo techo de monto.
func (uc *LimitePrecioUseCase) Crear(in dto.CrearLimitePrecioRequest) error {
	if in.LimiteMaximo.LessThanOrEqual(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}
	return uc.repo.Create(&entity.LimitePrecio{LimiteMaximo: in.LimiteMaximo})
}
