package compras_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaquinSpengler/api-autos/internal/application/compras"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
)

var formatoNumero = regexp.MustCompile(`^#[A-Z]{2}[0-9]{4}$`)

func TestGenerar_Formato(t *testing.T) {
	gen := compras.NewGeneradorNumeroOrden(newFakeOrdenRepo())

	// Varias corridas para cubrir distintos candidatos aleatorios.
	for i := 0; i < 50; i++ {
		numero, err := gen.Generar()
		require.NoError(t, err)
		assert.Regexp(t, formatoNumero, numero,
			"el código debe ser # + 2 letras mayúsculas + 4 dígitos")
	}
}

// repoSaturado responde que todo candidato ya existe: fuerza el agotamiento
// de los reintentos del generador.
type repoSaturado struct {
	*fakeOrdenRepo
	consultas int
}

func (r *repoSaturado) ExisteNumero(string) (bool, error) {
	r.consultas++
	return true, nil
}

func TestGenerar_EspacioAgotado(t *testing.T) {
	repo := &repoSaturado{fakeOrdenRepo: newFakeOrdenRepo()}
	gen := compras.NewGeneradorNumeroOrden(repo)

	numero, err := gen.Generar()

	require.ErrorIs(t, err, domain.ErrGeneracionAgotada)
	assert.Empty(t, numero)
	assert.Equal(t, 100, repo.consultas, "debe cortar tras el máximo de intentos, no colgarse")
}

func TestGenerar_SinEfectosSecundarios(t *testing.T) {
	repo := newFakeOrdenRepo()
	gen := compras.NewGeneradorNumeroOrden(repo)

	numero, err := gen.Generar()
	require.NoError(t, err)

	// Generar no reserva el número: el repositorio sigue sin órdenes.
	existe, err := repo.ExisteNumero(numero)
	require.NoError(t, err)
	assert.False(t, existe)
}
