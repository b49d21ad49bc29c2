package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

// OrdenCompraRepo implementación del puerto OrdenCompraRepository sobre
// PostgreSQL (usable con pool o tx).
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

// Create inserta la cabecera y asigna o.ID. El constraint único sobre
// numero_orden es la garantía real de unicidad: ante 23505 devuelve
// domain.ErrDuplicado para que el caso de uso reintente con otro código.
func (r *OrdenCompraRepo) Create(o *entity.OrdenDeCompra) error {
	query := `
		INSERT INTO ordenes_de_compra (id_proveedor, fecha_creacion, total, estado, numero_orden)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_orden_de_compra`
	err := r.q.QueryRow(context.Background(), query,
		o.ProveedorID, o.FechaCreacion, o.Total, o.Estado, o.NumeroOrden,
	).Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// CreateLinea inserta una línea con su foto de precio.
func (r *OrdenCompraRepo) CreateLinea(l *entity.OrdenProducto) error {
	query := `
		INSERT INTO ordenes_productos (id_orden_de_compra, id_producto, cantidad, precio)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, l.OrdenID, l.ProductoID, l.Cantidad, l.Precio)
	if err != nil {
		return fmt.Errorf("insert linea: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden. Devuelve nil si no existe.
func (r *OrdenCompraRepo) GetByID(id int64) (*entity.OrdenDeCompra, error) {
	query := `
		SELECT id_orden_de_compra, id_proveedor, fecha_creacion, total, estado, numero_orden
		FROM ordenes_de_compra WHERE id_orden_de_compra = $1`
	var o entity.OrdenDeCompra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProveedorID, &o.FechaCreacion, &o.Total, &o.Estado, &o.NumeroOrden,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &o, nil
}

// ExisteNumero verifica si ya hay una orden con ese número.
func (r *OrdenCompraRepo) ExisteNumero(numero string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM ordenes_de_compra WHERE numero_orden = $1)`, numero,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("verificar numero de orden: %w", err)
	}
	return existe, nil
}

// ActualizarEstado cambia el estado de la orden (update atómico de una fila).
func (r *OrdenCompraRepo) ActualizarEstado(id int64, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ordenes_de_compra SET estado = $2 WHERE id_orden_de_compra = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("actualizar estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListResumen lista todas las órdenes con el nombre del proveedor.
func (r *OrdenCompraRepo) ListResumen() ([]*repository.OrdenResumen, error) {
	query := `
		SELECT oc.id_orden_de_compra, oc.id_proveedor, oc.fecha_creacion, oc.total, oc.estado, oc.numero_orden, pr.nombre
		FROM ordenes_de_compra oc
		JOIN proveedores pr ON oc.id_proveedor = pr.id_proveedor
		ORDER BY oc.fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrdenResumen
	for rows.Next() {
		var res repository.OrdenResumen
		if err := rows.Scan(&res.Orden.ID, &res.Orden.ProveedorID, &res.Orden.FechaCreacion,
			&res.Orden.Total, &res.Orden.Estado, &res.Orden.NumeroOrden, &res.NombreProveedor); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// ListLineas lista las líneas de la orden con el nombre del producto.
func (r *OrdenCompraRepo) ListLineas(ordenID int64) ([]*repository.LineaConProducto, error) {
	query := `
		SELECT op.id_producto, p.nombre, op.cantidad, op.precio
		FROM ordenes_productos op
		JOIN productos p ON op.id_producto = p.id_producto
		WHERE op.id_orden_de_compra = $1
		ORDER BY op.id_producto`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list lineas: %w", err)
	}
	defer rows.Close()
	var list []*repository.LineaConProducto
	for rows.Next() {
		var l repository.LineaConProducto
		if err := rows.Scan(&l.ProductoID, &l.Nombre, &l.Cantidad, &l.Precio); err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListRecepcion devuelve cada línea con su cantidad pedida, lo recibido
// hasta ahora (0 si no hubo confirmación) y el precio de catálogo vigente.
func (r *OrdenCompraRepo) ListRecepcion(ordenID int64) ([]*repository.LineaRecepcion, error) {
	query := `
		SELECT op.id_producto, op.cantidad, COALESCE(rp.cantidad_recibida, 0), p.precio
		FROM ordenes_productos op
		LEFT JOIN recepciones_productos rp
			ON rp.id_producto = op.id_producto AND rp.id_orden_de_compra = op.id_orden_de_compra
		JOIN productos p ON op.id_producto = p.id_producto
		WHERE op.id_orden_de_compra = $1
		ORDER BY op.id_producto`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list recepcion: %w", err)
	}
	defer rows.Close()
	var list []*repository.LineaRecepcion
	for rows.Next() {
		var l repository.LineaRecepcion
		if err := rows.Scan(&l.ProductoID, &l.CantidadSolicitada, &l.CantidadRecibida, &l.PrecioVigente); err != nil {
			return nil, fmt.Errorf("scan recepcion: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
