package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/application/usecase"
)

// ProveedorHandler maneja las peticiones HTTP de proveedores.
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Crear godoc
// @Summary      Alta de proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProveedorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
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
// @Summary      Listar proveedores activos
// @Tags         proveedores
// @Produce      json
// @Success      200  {array}  dto.ProveedorResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarActivos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.ProveedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// GetByCUIL godoc
// @Summary      Obtener proveedor por CUIL
// @Tags         proveedores
// @Produce      json
// @Param        cuil  path  string  true  "CUIL del proveedor"
// @Success      200   {object}  dto.ProveedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/cuil/{cuil} [get]
func (h *ProveedorHandler) GetByCUIL(c *fiber.Ctx) error {
	cuil := c.Params("cuil")
	if cuil == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuil requerido"})
	}
	out, err := h.uc.GetByCUIL(cuil)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar datos del proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.ActualizarProveedorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProveedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.ActualizarProveedorRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Inactivar godoc
// @Summary      Baja lógica del proveedor con razón
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.InactivarProveedorRequest  true  "Razón de la baja"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id}/inactivo [put]
func (h *ProveedorHandler) Inactivar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.InactivarProveedorRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.Inactivar(id, in.RazonBaja); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor inactivado"})
}
