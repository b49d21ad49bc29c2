package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Agregar producto al catálogo
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/agregar-producto [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarActivos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ListarPorProveedor godoc
// @Summary      Listar productos de un proveedor
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos/proveedor/{id} [get]
func (h *ProductoHandler) ListarPorProveedor(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.ListarPorProveedor(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar datos del producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.ActualizarProductoRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.Actualizar(id, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto actualizado"})
}

// ActualizarPrecio godoc
// @Summary      Actualizar precio de catálogo
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ActualizarPrecioRequest  true  "Nuevo precio"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/precio [put]
func (h *ProductoHandler) ActualizarPrecio(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.ActualizarPrecioRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.ActualizarPrecio(id, in.Precio); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "precio actualizado"})
}

// RestarCantidad godoc
// @Summary      Descontar stock por nombre de producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        nombre  path  string  true  "Nombre del producto"
// @Param        body    body  dto.RestarCantidadRequest  true  "Cantidad a descontar"
// @Success      200     {object}  dto.MessageResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/productos/{nombre}/restar [put]
func (h *ProductoHandler) RestarCantidad(c *fiber.Ctx) error {
	nombre := c.Params("nombre")
	if nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre requerido"})
	}
	var in dto.RestarCantidadRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.RestarCantidad(nombre, in.Cantidad); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock descontado"})
}

// Inactivar godoc
// @Summary      Baja lógica del producto
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/inactivo [put]
func (h *ProductoHandler) Inactivar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Inactivar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto inactivado"})
}
