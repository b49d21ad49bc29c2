package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

var _ repository.LimitePrecioRepository = (*LimitePrecioRepo)(nil)

// LimitePrecioRepo implementación del puerto LimitePrecioRepository sobre
// PostgreSQL.
type LimitePrecioRepo struct {
	q Querier
}

// NewLimitePrecioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLimitePrecioRepository(q Querier) *LimitePrecioRepo {
	return &LimitePrecioRepo{q: q}
}

// MaxLimite devuelve el máximo límite configurado, o nil si no hay
// ninguno (MAX sobre tabla vacía es NULL; el puntero lo absorbe).
func (r *LimitePrecioRepo) MaxLimite() (*decimal.Decimal, error) {
	var max *decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT MAX(limite_maximo) FROM limites_precio`,
	).Scan(&max)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("max limite: %w", err)
	}
	return max, nil
}

// Create registra un nuevo techo de monto.
func (r *LimitePrecioRepo) Create(l *entity.LimitePrecio) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO limites_precio (limite_maximo) VALUES ($1) RETURNING id`,
		l.LimiteMaximo,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert limite: %w", err)
	}
	return nil
}
