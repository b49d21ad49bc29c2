package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/pkg/validator"
)

// responderError traduce un error de dominio al status HTTP que corresponde.
// Los errores no clasificados salen como 500 sin detalle interno (el detalle
// queda en el log, nunca en la respuesta).
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "entrada inválida", Details: detalleDe(err, domain.ErrEntradaInvalida)})
	case errors.Is(err, domain.ErrEstadoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "transición de estado no permitida", Details: detalleDe(err, domain.ErrEstadoInvalido)})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "stock insuficiente"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "recurso no encontrado"})
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas"})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "recurso duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
}

// detalleDe extrae el mensaje envuelto alrededor del sentinel, si lo hay.
func detalleDe(err, sentinel error) string {
	if err.Error() == sentinel.Error() {
		return ""
	}
	return err.Error()
}

// parseBody deserializa el body JSON y aplica las reglas `validate` del DTO.
// Devuelve false si ya respondió un 400.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
		return false
	}
	if errores := validator.ValidateStruct(out); len(errores) > 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validación fallida",
			Details: resumenValidacion(errores),
		})
		return false
	}
	return true
}

func resumenValidacion(errores []validator.ErrorCampo) string {
	detalle := ""
	for i, e := range errores {
		if i > 0 {
			detalle += "; "
		}
		detalle += fmt.Sprintf("%s: %s", e.Campo, e.Regla)
	}
	return detalle
}

// paramID lee un parámetro de ruta numérico. Devuelve 0 y responde 400 si no
// es un entero válido.
func paramID(c *fiber.Ctx, nombre string) (int64, bool) {
	id, err := c.ParamsInt(nombre)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
		return 0, false
	}
	return int64(id), true
}
