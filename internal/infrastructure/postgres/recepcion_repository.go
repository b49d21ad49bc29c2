package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

var _ repository.RecepcionRepository = (*RecepcionRepo)(nil)

// RecepcionRepo implementación del puerto RecepcionRepository sobre
// PostgreSQL (usable con pool o tx).
type RecepcionRepo struct {
	q Querier
}

// NewRecepcionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecepcionRepository(q Querier) *RecepcionRepo {
	return &RecepcionRepo{q: q}
}

// Get obtiene la recepción registrada para (orden, producto). Devuelve
// nil si todavía no hay ninguna.
func (r *RecepcionRepo) Get(ordenID, productoID int64) (*entity.RecepcionProducto, error) {
	query := `
		SELECT id_orden_de_compra, id_producto, cantidad_recibida, fecha_recepcion
		FROM recepciones_productos
		WHERE id_orden_de_compra = $1 AND id_producto = $2`
	var rec entity.RecepcionProducto
	err := r.q.QueryRow(context.Background(), query, ordenID, productoID).Scan(
		&rec.OrdenID, &rec.ProductoID, &rec.CantidadRecibida, &rec.FechaRecepcion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recepcion: %w", err)
	}
	return &rec, nil
}

// Upsert inserta la recepción o sobreescribe la cantidad si ya existe
// (last-write-wins por orden y producto).
func (r *RecepcionRepo) Upsert(rec *entity.RecepcionProducto) error {
	query := `
		INSERT INTO recepciones_productos (id_orden_de_compra, id_producto, cantidad_recibida, fecha_recepcion)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id_orden_de_compra, id_producto)
		DO UPDATE SET cantidad_recibida = EXCLUDED.cantidad_recibida, fecha_recepcion = EXCLUDED.fecha_recepcion`
	_, err := r.q.Exec(context.Background(), query,
		rec.OrdenID, rec.ProductoID, rec.CantidadRecibida, rec.FechaRecepcion)
	if err != nil {
		return fmt.Errorf("upsert recepcion: %w", err)
	}
	return nil
}

// ListByOrden lista las recepciones registradas de una orden.
func (r *RecepcionRepo) ListByOrden(ordenID int64) ([]*entity.RecepcionProducto, error) {
	query := `
		SELECT id_orden_de_compra, id_producto, cantidad_recibida, fecha_recepcion
		FROM recepciones_productos
		WHERE id_orden_de_compra = $1
		ORDER BY id_producto`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list recepciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecepcionProducto
	for rows.Next() {
		var rec entity.RecepcionProducto
		if err := rows.Scan(&rec.OrdenID, &rec.ProductoID, &rec.CantidadRecibida, &rec.FechaRecepcion); err != nil {
			return nil, fmt.Errorf("scan recepcion: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
