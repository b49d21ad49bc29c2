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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre
// PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const columnasProveedor = `id_proveedor, nombre, cuil, COALESCE(email, ''), COALESCE(direccion, ''), COALESCE(telefono, ''), activo, COALESCE(razon_baja, '')`

// Create persiste un nuevo proveedor y asigna p.ID.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (nombre, cuil, email, direccion, telefono, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_proveedor`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.CUIL, nullIfEmpty(p.Email), nullIfEmpty(p.Direccion), nullIfEmpty(p.Telefono), p.Activo,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *ProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	query := `SELECT ` + columnasProveedor + ` FROM proveedores WHERE id_proveedor = $1`
	return r.get(query, id)
}

// GetByCUIL obtiene un proveedor por CUIL. Devuelve nil si no existe.
func (r *ProveedorRepo) GetByCUIL(cuil string) (*entity.Proveedor, error) {
	query := `SELECT ` + columnasProveedor + ` FROM proveedores WHERE cuil = $1`
	return r.get(query, cuil)
}

// ListActivos lista los proveedores vigentes.
func (r *ProveedorRepo) ListActivos() ([]*entity.Proveedor, error) {
	query := `SELECT ` + columnasProveedor + ` FROM proveedores WHERE activo ORDER BY id_proveedor`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos del proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET nombre = $2, cuil = $3, email = $4, direccion = $5, telefono = $6, activo = $7
		WHERE id_proveedor = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.CUIL, nullIfEmpty(p.Email), nullIfEmpty(p.Direccion), nullIfEmpty(p.Telefono), p.Activo,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Inactivar marca la baja lógica y guarda el motivo.
func (r *ProveedorRepo) Inactivar(id int64, razonBaja string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE proveedores SET activo = false, razon_baja = $2 WHERE id_proveedor = $1`,
		id, razonBaja)
	if err != nil {
		return fmt.Errorf("inactivar proveedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProveedorRepo) get(query string, arg any) (*entity.Proveedor, error) {
	p, err := scanProveedor(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return p, nil
}

func scanProveedor(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(&p.ID, &p.Nombre, &p.CUIL, &p.Email, &p.Direccion, &p.Telefono, &p.Activo, &p.RazonBaja)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
