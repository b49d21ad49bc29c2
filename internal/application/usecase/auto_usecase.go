package usecase

import (
	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// AutoUseCase CRUD de vehículos de la flota.
type AutoUseCase struct {
	repo repository.AutoRepository
}

// NewAutoUseCase construye el caso de uso.
func NewAutoUseCase(repo repository.AutoRepository) *AutoUseCase {
	return &AutoUseCase{repo: repo}
}

// Crear da de alta un vehículo.
func (uc *AutoUseCase) Crear(in dto.CrearAutoRequest) (*dto.AutoResponse, error) {
	if in.Marca == "" || in.Modelo == "" || in.NroPatente == "" {
		return nil, domain.ErrEntradaInvalida
	}
	a := &entity.Auto{
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		Anio:        in.Anio,
		Kilometraje: in.Kilometraje,
		NroPatente:  in.NroPatente,
		Activo:      true,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return autoToResponse(a), nil
}

// GetByID devuelve nil si el vehículo no existe.
func (uc *AutoUseCase) GetByID(id int64) (*dto.AutoResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return autoToResponse(a), nil
}

// GetByPatente devuelve nil si no hay vehículo con esa patente.
func (uc *AutoUseCase) GetByPatente(nroPatente string) (*dto.AutoResponse, error) {
	a, err := uc.repo.GetByPatente(nroPatente)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return autoToResponse(a), nil
}

// Listar devuelve toda la flota.
func (uc *AutoUseCase) Listar() ([]dto.AutoResponse, error) {
	autos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return autosToResponse(autos), nil
}

// ListarDisponibles devuelve los vehículos activos.
func (uc *AutoUseCase) ListarDisponibles() ([]dto.AutoResponse, error) {
	autos, err := uc.repo.ListDisponibles()
	if err != nil {
		return nil, err
	}
	return autosToResponse(autos), nil
}

// Actualizar modifica los datos del vehículo.
func (uc *AutoUseCase) Actualizar(id int64, in dto.ActualizarAutoRequest) (*dto.AutoResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	a.Marca = in.Marca
	a.Modelo = in.Modelo
	a.Anio = in.Anio
	a.Kilometraje = in.Kilometraje
	a.NroPatente = in.NroPatente
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return autoToResponse(a), nil
}

// Inactivar aplica la baja lógica (el vehículo sale de los disponibles).
func (uc *AutoUseCase) Inactivar(id int64) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Inactivar(id)
}

func autoToResponse(a *entity.Auto) *dto.AutoResponse {
	return &dto.AutoResponse{
		ID:          a.ID,
		Marca:       a.Marca,
		Modelo:      a.Modelo,
		Anio:        a.Anio,
		Kilometraje: a.Kilometraje,
		NroPatente:  a.NroPatente,
		Activo:      a.Activo,
	}
}

func autosToResponse(autos []*entity.Auto) []dto.AutoResponse {
	out := make([]dto.AutoResponse, 0, len(autos))
	for _, a := range autos {
		out = append(out, *autoToResponse(a))
	}
	return out
}
