package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/application/usecase"
)

// LimiteHandler configura los límites de precio para órdenes automáticas.
type LimiteHandler struct {
	uc *usecase.LimitePrecioUseCase
}

// NewLimiteHandler construye el handler.
func NewLimiteHandler(uc *usecase.LimitePrecioUseCase) *LimiteHandler {
	return &LimiteHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar límite de precio
// @Description  Las órdenes automáticas cuyo total no supere el mayor límite
// @Description  registrado quedan en estado automática.
// @Tags         limites-precio
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearLimitePrecioRequest  true  "Límite máximo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/limites-precio [post]
func (h *LimiteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearLimitePrecioRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.Crear(in); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "límite registrado"})
}
