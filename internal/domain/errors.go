package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrEstadoInvalido        = errors.New("transición de estado inválida")
	ErrGeneracionAgotada     = errors.New("se agotaron los intentos de generar un número de orden único")
	ErrStockInsuficiente     = errors.New("stock insuficiente")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)
