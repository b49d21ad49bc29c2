package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// ProductoUseCase CRUD de productos del inventario.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear da de alta un producto.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Producto{
		Nombre:         in.Nombre,
		Marca:          in.Marca,
		Modelo:         in.Modelo,
		CategoriaID:    in.CategoriaID,
		Cantidad:       in.Cantidad,
		CantidadMinima: in.CantidadMinima,
		Precio:         in.Precio,
		Activo:         in.Activo,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

// GetByID devuelve nil si el producto no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return productoToResponse(p), nil
}

// ListarActivos lista los productos con baja lógica no aplicada.
func (uc *ProductoUseCase) ListarActivos() ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

// ListarPorProveedor lista los productos activos del proveedor (vía la
// categoría que los vincula).
func (uc *ProductoUseCase) ListarPorProveedor(proveedorID int64) ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.ListActivosPorProveedor(proveedorID)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

// Actualizar modifica los datos del producto. No toca el precio: eso va
// por ActualizarPrecio o por la confirmación de recepciones.
func (uc *ProductoUseCase) Actualizar(id int64, in dto.ActualizarProductoRequest) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	p.Nombre = in.Nombre
	p.Marca = in.Marca
	p.Modelo = in.Modelo
	p.CategoriaID = in.CategoriaID
	p.Cantidad = in.Cantidad
	p.Activo = in.Activo
	return uc.repo.Update(p)
}

// Inactivar aplica la baja lógica.
func (uc *ProductoUseCase) Inactivar(id int64) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Inactivar(id)
}

// ActualizarPrecio cambia el precio de catálogo vigente.
func (uc *ProductoUseCase) ActualizarPrecio(id int64, precio decimal.Decimal) error {
	if precio.LessThan(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.ActualizarPrecio(id, precio)
}

// RestarCantidad descuenta stock por nombre de producto. Falla con
// domain.ErrStockInsuficiente antes que dejar cantidad negativa.
func (uc *ProductoUseCase) RestarCantidad(nombre string, cantidad int) error {
	if nombre == "" || cantidad <= 0 {
		return domain.ErrEntradaInvalida
	}
	return uc.repo.RestarCantidadPorNombre(nombre, cantidad)
}

func productoToResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Marca:          p.Marca,
		Modelo:         p.Modelo,
		CategoriaID:    p.CategoriaID,
		Cantidad:       p.Cantidad,
		CantidadMinima: p.CantidadMinima,
		Precio:         p.Precio,
		Activo:         p.Activo,
	}
}

func productosToResponse(productos []*entity.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *productoToResponse(p))
	}
	return out
}
