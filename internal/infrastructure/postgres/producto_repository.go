package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const columnasProducto = `id_producto, nombre, marca, modelo, COALESCE(categoria, 0), cantidad, cantidad_minima, precio, activo`

// Create persiste un nuevo producto y asigna p.ID.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, marca, modelo, categoria, cantidad, cantidad_minima, precio, activo)
		VALUES ($1, $2, $3, NULLIF($4, 0), $5, $6, $7, $8)
		RETURNING id_producto`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.Marca, p.Modelo, p.CategoriaID, p.Cantidad, p.CantidadMinima, p.Precio, p.Activo,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id_producto = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ListActivos lista los productos sin baja lógica.
func (r *ProductoRepo) ListActivos() ([]*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE activo ORDER BY id_producto`
	return r.list(query)
}

// ListActivosPorProveedor lista los productos activos cuya categoría
// pertenece al proveedor.
func (r *ProductoRepo) ListActivosPorProveedor(proveedorID int64) ([]*entity.Producto, error) {
	query := `
		SELECT p.id_producto, p.nombre, p.marca, p.modelo, COALESCE(p.categoria, 0), p.cantidad, p.cantidad_minima, p.precio, p.activo
		FROM productos p
		JOIN categorias c ON p.categoria = c.id
		WHERE p.activo AND c.proveedor_id = $1
		ORDER BY p.id_producto`
	return r.list(query, proveedorID)
}

// Update actualiza los datos del producto. El precio no se toca acá: va
// por ActualizarPrecio o por la confirmación de recepciones.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, marca = $3, modelo = $4, categoria = NULLIF($5, 0), cantidad = $6, activo = $7
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Marca, p.Modelo, p.CategoriaID, p.Cantidad, p.Activo,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Inactivar aplica la baja lógica.
func (r *ProductoRepo) Inactivar(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false WHERE id_producto = $1`, id)
	if err != nil {
		return fmt.Errorf("inactivar producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ActualizarPrecio actualiza solo el precio de catálogo.
func (r *ProductoRepo) ActualizarPrecio(id int64, precio decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET precio = $2 WHERE id_producto = $1`, id, precio)
	if err != nil {
		return fmt.Errorf("actualizar precio: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumarCantidad aplica un delta al stock. La condición cantidad + delta >= 0
// en el UPDATE evita stock negativo sin ventana de carrera.
func (r *ProductoRepo) SumarCantidad(id int64, delta int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = cantidad + $2 WHERE id_producto = $1 AND cantidad + $2 >= 0`,
		id, delta)
	if err != nil {
		return fmt.Errorf("sumar cantidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return r.motivoSinFilas(`SELECT EXISTS(SELECT 1 FROM productos WHERE id_producto = $1)`, id)
	}
	return nil
}

// RestarCantidadPorNombre descuenta stock por nombre de producto.
func (r *ProductoRepo) RestarCantidadPorNombre(nombre string, cantidad int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = cantidad - $2 WHERE nombre = $1 AND cantidad >= $2`,
		nombre, cantidad)
	if err != nil {
		return fmt.Errorf("restar cantidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return r.motivoSinFilas(`SELECT EXISTS(SELECT 1 FROM productos WHERE nombre = $1)`, nombre)
	}
	return nil
}

// motivoSinFilas distingue por qué un UPDATE condicionado no tocó filas:
// el producto no existe o el stock no alcanzaba.
func (r *ProductoRepo) motivoSinFilas(existsQuery string, arg any) error {
	var existe bool
	if err := r.q.QueryRow(context.Background(), existsQuery, arg).Scan(&existe); err != nil {
		return fmt.Errorf("verificar producto: %w", err)
	}
	if !existe {
		return domain.ErrNotFound
	}
	return domain.ErrStockInsuficiente
}

func (r *ProductoRepo) list(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Marca, &p.Modelo, &p.CategoriaID,
		&p.Cantidad, &p.CantidadMinima, &p.Precio, &p.Activo)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
