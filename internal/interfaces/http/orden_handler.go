package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/compras"
	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
)

// OrdenHandler maneja las peticiones HTTP de órdenes de compra.
type OrdenHandler struct {
	uc *compras.OrdenUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *compras.OrdenUseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearOrdenRequest  true  "Proveedor y líneas pedidas"
// @Success      201   {object}  dto.CrearOrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *OrdenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar órdenes con líneas y recepciones
// @Tags         purchase-orders
// @Produce      json
// @Success      200  {array}  dto.OrdenResponse
// @Router       /api/purchase-orders [get]
func (h *OrdenHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Aceptar godoc
// @Summary      Aceptar una orden creada
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/accept [put]
func (h *OrdenHandler) Aceptar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Aceptar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden aceptada"})
}

// Inactivar godoc
// @Summary      Inactivar una orden (cancelación lógica)
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/inactivate [put]
func (h *OrdenHandler) Inactivar(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Inactivar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden inactivada"})
}

// ConfirmarRecepcion godoc
// @Summary      Confirmar recepción de mercadería
// @Description  Registra cantidades recibidas (sobrescribe las previas), ajusta
// @Description  el stock por la diferencia y marca la orden como completada.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.ConfirmarRecepcionRequest  true  "Líneas recibidas"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/confirm-receipt [post]
func (h *OrdenHandler) ConfirmarRecepcion(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.ConfirmarRecepcionRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.ConfirmarRecepcion(c.Context(), id, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "recepción confirmada"})
}

// EstadoRecepcion godoc
// @Summary      Cantidades pedidas vs. recibidas por línea
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  dto.EstadoRecepcionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/receipt-status [get]
func (h *OrdenHandler) EstadoRecepcion(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.uc.EstadoRecepcion(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GenerarAutomatica godoc
// @Summary      Generar orden automática de reposición
// @Description  Crea una orden de una sola línea por la cantidad mínima del
// @Description  producto. Queda en estado automática si el total no supera el
// @Description  límite de precio configurado; si no, en creada.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerarAutomaticaRequest  true  "Producto y proveedor"
// @Success      201   {object}  dto.GenerarAutomaticaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/auto-generate [post]
func (h *OrdenHandler) GenerarAutomatica(c *fiber.Ctx) error {
	var in dto.GenerarAutomaticaRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.GenerarAutomatica(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
