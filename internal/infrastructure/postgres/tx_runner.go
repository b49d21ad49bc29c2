package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JoaquinSpengler/api-autos/internal/application/compras"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

var _ compras.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repositorios atados a la tx
// y hace Commit o Rollback. Si fn devuelve error no queda ningún cambio
// parcial visible.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ordenRepo repository.OrdenCompraRepository,
	recepcionRepo repository.RecepcionRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ordenRepo := NewOrdenCompraRepository(tx)
	recepcionRepo := NewRecepcionRepository(tx)
	productoRepo := NewProductoRepository(tx)

	if err := fn(ordenRepo, recepcionRepo, productoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
