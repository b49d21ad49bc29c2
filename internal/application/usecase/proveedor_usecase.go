package usecase

import (
	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// ProveedorUseCase CRUD de proveedores con baja lógica.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Crear da de alta un proveedor.
func (uc *ProveedorUseCase) Crear(in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" || in.CUIL == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Proveedor{
		Nombre:    in.Nombre,
		CUIL:      in.CUIL,
		Email:     in.Email,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Activo:    in.Activo,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return proveedorToResponse(p), nil
}

// GetByID devuelve nil si el proveedor no existe.
func (uc *ProveedorUseCase) GetByID(id int64) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return proveedorToResponse(p), nil
}

// GetByCUIL devuelve nil si no hay proveedor con ese CUIL.
func (uc *ProveedorUseCase) GetByCUIL(cuil string) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByCUIL(cuil)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return proveedorToResponse(p), nil
}

// ListarActivos lista los proveedores vigentes.
func (uc *ProveedorUseCase) ListarActivos() ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, *proveedorToResponse(p))
	}
	return out, nil
}

// Actualizar modifica los datos del proveedor.
func (uc *ProveedorUseCase) Actualizar(id int64, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Nombre = in.Nombre
	p.CUIL = in.CUIL
	p.Email = in.Email
	p.Direccion = in.Direccion
	p.Telefono = in.Telefono
	p.Activo = in.Activo
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return proveedorToResponse(p), nil
}

// Inactivar aplica la baja lógica guardando el motivo.
func (uc *ProveedorUseCase) Inactivar(id int64, razonBaja string) error {
	if razonBaja == "" {
		return domain.ErrEntradaInvalida
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Inactivar(id, razonBaja)
}

func proveedorToResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		CUIL:      p.CUIL,
		Email:     p.Email,
		Direccion: p.Direccion,
		Telefono:  p.Telefono,
		Activo:    p.Activo,
		RazonBaja: p.RazonBaja,
	}
}
