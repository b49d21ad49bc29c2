package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/application/usecase"
)

// AutoHandler maneja las peticiones HTTP de la flota de vehículos.
type AutoHandler struct {
	uc *usecase.AutoUseCase
}

// NewAutoHandler construye el handler.
func NewAutoHandler(uc *usecase.AutoUseCase) *AutoHandler {
	return &AutoHandler{uc: uc}
}

// Crear godoc
// @Summary      Alta de vehículo
// @Tags         autos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAutoRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.AutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/autos [post]
func (h *AutoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearAutoRequest
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
// @Summary      Listar toda la flota
// @Tags         autos
// @Produce      json
// @Success      200  {array}  dto.AutoResponse
// @Router       /api/autos [get]
func (h *AutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListarDisponibles godoc
// @Summary      Listar vehículos disponibles (activos)
// @Tags         autos
// @Produce      json
// @Success      200  {array}  dto.AutoResponse
// @Router       /api/autos/disponibles [get]
func (h *AutoHandler) ListarDisponibles(c *fiber.Ctx) error {
	out, err := h.uc.ListarDisponibles()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar vehículo por ID
// @Tags         autos
// @Produce      json
// @Param        id  path  int  true  "ID del vehículo"
// @Success      200  {object}  dto.AutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/autos/{id} [get]
func (h *AutoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "vehículo no encontrado"})
	}
	return c.JSON(out)
}

// GetByPatente godoc
// @Summary      Buscar vehículo por patente
// @Tags         autos
// @Produce      json
// @Param        patente  path  string  true  "Número de patente"
// @Success      200  {object}  dto.AutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/autos/patente/{patente} [get]
func (h *AutoHandler) GetByPatente(c *fiber.Ctx) error {
	patente := c.Params("patente")
	if patente == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "patente requerida"})
	}
	out, err := h.uc.GetByPatente(patente)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "vehículo no encontrado"})
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar datos del vehículo
// @Tags         autos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vehículo"
// @Param        body  body  dto.ActualizarAutoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/autos/{id} [put]
func (h *AutoHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.ActualizarAutoRequest
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
// @Summary      Baja lógica del vehículo
// @Tags         autos
// @Produce      json
// @Param        id  path  int  true  "ID del vehículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/autos/{id}/inactivo [put]
func (h *AutoHandler) Inactivar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Inactivar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "vehículo inactivado"})
}
