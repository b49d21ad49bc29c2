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

var _ repository.AutoRepository = (*AutoRepo)(nil)

// AutoRepo implementación del puerto AutoRepository sobre PostgreSQL.
type AutoRepo struct {
	q Querier
}

// NewAutoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAutoRepository(q Querier) *AutoRepo {
	return &AutoRepo{q: q}
}

const columnasAuto = `id, marca, modelo, anio, kilometraje, nro_patente, activo`

// Create persiste un nuevo vehículo y asigna a.ID.
func (r *AutoRepo) Create(a *entity.Auto) error {
	query := `
		INSERT INTO autos (marca, modelo, anio, kilometraje, nro_patente, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.Marca, a.Modelo, a.Anio, a.Kilometraje, a.NroPatente, a.Activo,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert auto: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID. Devuelve nil si no existe.
func (r *AutoRepo) GetByID(id int64) (*entity.Auto, error) {
	query := `SELECT ` + columnasAuto + ` FROM autos WHERE id = $1`
	return r.get(query, id)
}

// GetByPatente obtiene un vehículo por patente. Devuelve nil si no existe.
func (r *AutoRepo) GetByPatente(nroPatente string) (*entity.Auto, error) {
	query := `SELECT ` + columnasAuto + ` FROM autos WHERE nro_patente = $1`
	return r.get(query, nroPatente)
}

// List lista toda la flota.
func (r *AutoRepo) List() ([]*entity.Auto, error) {
	return r.list(`SELECT ` + columnasAuto + ` FROM autos ORDER BY id`)
}

// ListDisponibles lista los vehículos activos.
func (r *AutoRepo) ListDisponibles() ([]*entity.Auto, error) {
	return r.list(`SELECT ` + columnasAuto + ` FROM autos WHERE activo ORDER BY id`)
}

// Update actualiza los datos del vehículo.
func (r *AutoRepo) Update(a *entity.Auto) error {
	query := `
		UPDATE autos
		SET marca = $2, modelo = $3, anio = $4, kilometraje = $5, nro_patente = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		a.ID, a.Marca, a.Modelo, a.Anio, a.Kilometraje, a.NroPatente,
	)
	if err != nil {
		return fmt.Errorf("update auto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Inactivar aplica la baja lógica.
func (r *AutoRepo) Inactivar(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE autos SET activo = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("inactivar auto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AutoRepo) get(query string, arg any) (*entity.Auto, error) {
	var a entity.Auto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Marca, &a.Modelo, &a.Anio, &a.Kilometraje, &a.NroPatente, &a.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auto: %w", err)
	}
	return &a, nil
}

func (r *AutoRepo) list(query string) ([]*entity.Auto, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list autos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Auto
	for rows.Next() {
		var a entity.Auto
		if err := rows.Scan(&a.ID, &a.Marca, &a.Modelo, &a.Anio, &a.Kilometraje, &a.NroPatente, &a.Activo); err != nil {
			return nil, fmt.Errorf("scan auto: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
