package compras

import (
	"math/rand"
	"strings"

	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// maxIntentosGeneracion acota el reintento ante colisiones: con un espacio
// de 26×26×10⁴ códigos la probabilidad de agotarlo es despreciable salvo
// que la tabla esté casi llena.
const maxIntentosGeneracion = 100

const letrasNumero = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GeneradorNumeroOrden produce códigos de orden legibles y únicos con el
// formato "#" + 2 letras mayúsculas + 4 dígitos (ej. #AB1234).
//
// La verificación contra el repositorio es solo una pre-validación: dos
// creaciones concurrentes pueden pasar el chequeo con el mismo candidato.
// La unicidad real la garantiza el constraint único sobre numero_orden;
// el caso de uso reintenta con un código nuevo ante ErrDuplicado.
type GeneradorNumeroOrden struct {
	ordenRepo repository.OrdenCompraRepository
}

// NewGeneradorNumeroOrden construye el generador.
func NewGeneradorNumeroOrden(ordenRepo repository.OrdenCompraRepository) *GeneradorNumeroOrden {
	return &GeneradorNumeroOrden{ordenRepo: ordenRepo}
}

// Generar devuelve un candidato que no existe en el almacén al momento de
// la consulta. Devuelve domain.ErrGeneracionAgotada tras agotar los
// reintentos. Sin efectos secundarios: no reserva el número.
func (g *GeneradorNumeroOrden) Generar() (string, error) {
	for i := 0; i < maxIntentosGeneracion; i++ {
		candidato := nuevoCandidato()
		existe, err := g.ordenRepo.ExisteNumero(candidato)
		if err != nil {
			return "", err
		}
		if !existe {
			return candidato, nil
		}
	}
	return "", domain.ErrGeneracionAgotada
}

// nuevoCandidato arma un código al azar con distribución uniforme sobre
// el espacio completo.
func nuevoCandidato() string {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	b.WriteByte(letrasNumero[rand.Intn(len(letrasNumero))])
	b.WriteByte(letrasNumero[rand.Intn(len(letrasNumero))])
	for i := 0; i < 4; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}
