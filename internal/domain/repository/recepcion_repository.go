package repository

import "github.com/JoaquinSpengler/api-autos/internal/domain/entity"

// RecepcionRepository define el puerto de persistencia para las
// confirmaciones de recepción (únicas por orden y producto).
type RecepcionRepository interface {
	// Get devuelve nil (sin error) si todavía no hay recepción registrada
	// para el par (orden, producto).
	Get(ordenID, productoID int64) (*entity.RecepcionProducto, error)
	// Upsert inserta la recepción o sobreescribe la cantidad recibida si
	// ya existe (last-write-wins).
	Upsert(r *entity.RecepcionProducto) error
	ListByOrden(ordenID int64) ([]*entity.RecepcionProducto, error)
}
