package compras_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaquinSpengler/api-autos/internal/application/compras"
	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
)

// entorno agrupa el caso de uso con sus dobles para inspeccionar el estado
// resultante de cada escenario.
type entorno struct {
	uc        *compras.OrdenUseCase
	ordenes   *fakeOrdenRepo
	recepcion *fakeRecepcionRepo
	productos *fakeProductoRepo
	limite    *fakeLimiteRepo
}

// nuevoEntorno arma el caso de uso con un proveedor (ID 1) y dos productos:
// filtro de aceite a $10.00 con 5 en stock y bujía a $2.50 sin stock.
func nuevoEntorno() *entorno {
	productos := newFakeProductoRepo(
		&entity.Producto{ID: 1, Nombre: "filtro de aceite", Cantidad: 5, CantidadMinima: 10, Precio: decimal.RequireFromString("10.00"), Activo: true},
		&entity.Producto{ID: 2, Nombre: "bujía", Cantidad: 0, CantidadMinima: 4, Precio: decimal.RequireFromString("2.50"), Activo: true},
	)
	proveedores := newFakeProveedorRepo(
		&entity.Proveedor{ID: 1, Nombre: "Repuestos del Sur", CUIL: "30-11111111-1", Activo: true},
	)
	ordenes := newFakeOrdenRepo()
	recepcion := newFakeRecepcionRepo()
	limite := &fakeLimiteRepo{}
	tx := &fakeTxRunner{ordenRepo: ordenes, recepcionRepo: recepcion, productoRepo: productos}
	return &entorno{
		uc:        compras.NewOrdenUseCase(tx, ordenes, recepcion, productos, proveedores, limite),
		ordenes:   ordenes,
		recepcion: recepcion,
		productos: productos,
		limite:    limite,
	}
}

func (e *entorno) crearOrden(t *testing.T, lineas ...dto.LineaOrdenRequest) *dto.CrearOrdenResponse {
	t.Helper()
	out, err := e.uc.Crear(context.Background(), dto.CrearOrdenRequest{ProveedorID: 1, Lineas: lineas})
	require.NoError(t, err)
	return out
}

func (e *entorno) stock(t *testing.T, productoID int64) int {
	t.Helper()
	p, err := e.productos.GetByID(productoID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Cantidad
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_TotalCalculadoEnServidor(t *testing.T) {
	e := nuevoEntorno()

	out := e.crearOrden(t,
		dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 3},
		dto.LineaOrdenRequest{ProductoID: 2, Cantidad: 2},
	)

	orden, err := e.ordenes.GetByID(out.OrdenID)
	require.NoError(t, err)
	require.NotNil(t, orden)
	// 3 × 10.00 + 2 × 2.50: siempre la suma de las fotos de precio, nunca
	// un total provisto por el cliente.
	assert.True(t, orden.Total.Equal(decimal.RequireFromString("35.00")),
		"total esperado 35.00, obtenido %s", orden.Total)
	assert.Equal(t, entity.EstadoCreada, orden.Estado)
	assert.Regexp(t, formatoNumero, out.NumeroOrden)
}

func TestCrear_CapturaPrecioDeCatalogo(t *testing.T) {
	e := nuevoEntorno()

	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 1})

	// Un cambio de precio posterior no toca la línea ya capturada.
	require.NoError(t, e.productos.ActualizarPrecio(1, decimal.RequireFromString("99.99")))

	lineas, err := e.ordenes.ListLineas(out.OrdenID)
	require.NoError(t, err)
	require.Len(t, lineas, 1)
	assert.True(t, lineas[0].Precio.Equal(decimal.RequireFromString("10.00")))
}

func TestCrear_EntradaInvalida(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()

	_, err := e.uc.Crear(ctx, dto.CrearOrdenRequest{ProveedorID: 1})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "sin líneas")

	_, err = e.uc.Crear(ctx, dto.CrearOrdenRequest{
		ProveedorID: 1,
		Lineas:      []dto.LineaOrdenRequest{{ProductoID: 1, Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "cantidad cero")
}

func TestCrear_ReferenciasInexistentes(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()

	_, err := e.uc.Crear(ctx, dto.CrearOrdenRequest{
		ProveedorID: 99,
		Lineas:      []dto.LineaOrdenRequest{{ProductoID: 1, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")

	_, err = e.uc.Crear(ctx, dto.CrearOrdenRequest{
		ProveedorID: 1,
		Lineas:      []dto.LineaOrdenRequest{{ProductoID: 99, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")
}

func TestCrear_ReintentaAnteNumeroDuplicado(t *testing.T) {
	e := nuevoEntorno()
	// Pierde la carrera dos veces; el tercer intento entra.
	e.ordenes.duplicadosRestantes = 2

	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 1})

	assert.NotZero(t, out.OrdenID)
	assert.Regexp(t, formatoNumero, out.NumeroOrden)
}

func TestCrear_AgotaReintentosDeInsercion(t *testing.T) {
	e := nuevoEntorno()
	e.ordenes.duplicadosRestantes = 3

	_, err := e.uc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		Lineas:      []dto.LineaOrdenRequest{{ProductoID: 1, Cantidad: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrGeneracionAgotada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestAceptar(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 1})

	require.NoError(t, e.uc.Aceptar(ctx, out.OrdenID))

	orden, _ := e.ordenes.GetByID(out.OrdenID)
	assert.Equal(t, entity.EstadoAceptada, orden.Estado)

	// Aceptar dos veces no es una transición válida.
	assert.ErrorIs(t, e.uc.Aceptar(ctx, out.OrdenID), domain.ErrEstadoInvalido)

	assert.ErrorIs(t, e.uc.Aceptar(ctx, 999), domain.ErrNotFound)
}

func TestInactivar(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 1})

	// Solo una orden aceptada puede inactivarse.
	assert.ErrorIs(t, e.uc.Inactivar(ctx, out.OrdenID), domain.ErrEstadoInvalido)

	require.NoError(t, e.uc.Aceptar(ctx, out.OrdenID))
	require.NoError(t, e.uc.Inactivar(ctx, out.OrdenID))

	orden, _ := e.ordenes.GetByID(out.OrdenID)
	assert.Equal(t, entity.EstadoInactiva, orden.Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmarRecepcion_SumaStockYCompleta(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 10})

	err := e.uc.ConfirmarRecepcion(ctx, out.OrdenID, dto.ConfirmarRecepcionRequest{
		Lineas: []dto.LineaRecepcionRequest{{ProductoID: 1, CantidadRecibida: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, e.stock(t, 1), "stock inicial 5 + 5 recibidos")

	// La recepción parcial también completa la orden.
	orden, _ := e.ordenes.GetByID(out.OrdenID)
	assert.Equal(t, entity.EstadoCompletada, orden.Estado)
}

func TestConfirmarRecepcion_SobreescribeNoAcumula(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 10})

	confirmar := func(cantidad int) {
		t.Helper()
		require.NoError(t, e.uc.ConfirmarRecepcion(ctx, out.OrdenID, dto.ConfirmarRecepcionRequest{
			Lineas: []dto.LineaRecepcionRequest{{ProductoID: 1, CantidadRecibida: cantidad}},
		}))
	}

	confirmar(5)
	assert.Equal(t, 10, e.stock(t, 1))

	// Corrección al alza: el stock se ajusta por la diferencia (+3), no
	// vuelve a sumar los 8 completos.
	confirmar(8)
	assert.Equal(t, 13, e.stock(t, 1))

	// Corrección a la baja: revierte la diferencia (-6).
	confirmar(2)
	assert.Equal(t, 7, e.stock(t, 1))

	recepcion, err := e.recepcion.Get(out.OrdenID, 1)
	require.NoError(t, err)
	require.NotNil(t, recepcion)
	assert.Equal(t, 2, recepcion.CantidadRecibida, "queda la última cantidad confirmada")
}

func TestConfirmarRecepcion_ActualizaPrecioDeCatalogo(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 4})

	nuevoPrecio := decimal.RequireFromString("12.75")
	err := e.uc.ConfirmarRecepcion(ctx, out.OrdenID, dto.ConfirmarRecepcionRequest{
		Lineas: []dto.LineaRecepcionRequest{{ProductoID: 1, CantidadRecibida: 4, Precio: &nuevoPrecio}},
	})
	require.NoError(t, err)

	p, _ := e.productos.GetByID(1)
	assert.True(t, p.Precio.Equal(nuevoPrecio))
}

func TestConfirmarRecepcion_Errores(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 1})

	err := e.uc.ConfirmarRecepcion(ctx, 999, dto.ConfirmarRecepcionRequest{
		Lineas: []dto.LineaRecepcionRequest{{ProductoID: 1, CantidadRecibida: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = e.uc.ConfirmarRecepcion(ctx, out.OrdenID, dto.ConfirmarRecepcionRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	err = e.uc.ConfirmarRecepcion(ctx, out.OrdenID, dto.ConfirmarRecepcionRequest{
		Lineas: []dto.LineaRecepcionRequest{{ProductoID: 1, CantidadRecibida: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestEstadoRecepcion(t *testing.T) {
	e := nuevoEntorno()
	ctx := context.Background()
	out := e.crearOrden(t, dto.LineaOrdenRequest{ProductoID: 1, Cantidad: 10})

	require.NoError(t, e.uc.ConfirmarRecepcion(ctx, out.OrdenID, dto.ConfirmarRecepcionRequest{
		Lineas: []dto.LineaRecepcionRequest{{ProductoID: 1, CantidadRecibida: 4}},
	}))

	// El doble no cruza recepciones en ListRecepcion; acá validamos la
	// composición de la respuesta a partir de lo que informa el puerto.
	resp, err := e.uc.EstadoRecepcion(ctx, out.OrdenID)
	require.NoError(t, err)
	require.Len(t, resp.Lineas, 1)
	assert.Equal(t, int64(1), resp.Lineas[0].ProductoID)
	assert.Equal(t, 10, resp.Lineas[0].CantidadSolicitada)

	_, err = e.uc.EstadoRecepcion(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación automática
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarAutomatica_BajoElLimite(t *testing.T) {
	e := nuevoEntorno()
	limite := decimal.RequireFromString("150.00")
	e.limite.limite = &limite

	// 10 unidades × $10.00 = $100.00 ≤ $150.00: nace pre-aprobada.
	out, err := e.uc.GenerarAutomatica(context.Background(), dto.GenerarAutomaticaRequest{
		ProveedorID: 1, ProductoID: 1, CantidadMinima: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoAutomatica, out.Estado)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("100.00")))
}

func TestGenerarAutomatica_SobreElLimite(t *testing.T) {
	e := nuevoEntorno()
	limite := decimal.RequireFromString("50.00")
	e.limite.limite = &limite

	out, err := e.uc.GenerarAutomatica(context.Background(), dto.GenerarAutomaticaRequest{
		ProveedorID: 1, ProductoID: 1, CantidadMinima: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCreada, out.Estado, "sobre el límite requiere aceptación manual")
}

func TestGenerarAutomatica_SinLimiteConfigurado(t *testing.T) {
	e := nuevoEntorno()

	out, err := e.uc.GenerarAutomatica(context.Background(), dto.GenerarAutomaticaRequest{
		ProveedorID: 1, ProductoID: 2, CantidadMinima: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCreada, out.Estado, "sin límite nada queda pre-aprobado")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("10.00")), "4 × 2.50")
}
