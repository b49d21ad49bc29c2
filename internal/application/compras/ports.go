package compras

import (
	"context"

	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la creación de
// órdenes y la confirmación de recepciones: si fn devuelve error se hace
// Rollback y ningún cambio parcial queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ordenRepo repository.OrdenCompraRepository,
		recepcionRepo repository.RecepcionRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
