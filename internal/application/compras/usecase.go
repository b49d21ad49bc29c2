package compras

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// reintentosInsercion acota las repeticiones de la transacción de alta
// cuando el insert choca contra el constraint único de numero_orden
// (carrera entre la pre-validación del generador y el insert).
const reintentosInsercion = 3

// OrdenUseCase gestiona el ciclo de vida de las órdenes de compra:
// creación transaccional, generación automática, transiciones de estado y
// conciliación de recepciones.
type OrdenUseCase struct {
	txRunner      TxRunner
	ordenRepo     repository.OrdenCompraRepository
	recepcionRepo repository.RecepcionRepository
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	limiteRepo    repository.LimitePrecioRepository
	generador     *GeneradorNumeroOrden
}

// NewOrdenUseCase construye el caso de uso.
func NewOrdenUseCase(
	txRunner TxRunner,
	ordenRepo repository.OrdenCompraRepository,
	recepcionRepo repository.RecepcionRepository,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	limiteRepo repository.LimitePrecioRepository,
) *OrdenUseCase {
	return &OrdenUseCase{
		txRunner:      txRunner,
		ordenRepo:     ordenRepo,
		recepcionRepo: recepcionRepo,
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		limiteRepo:    limiteRepo,
		generador:     NewGeneradorNumeroOrden(ordenRepo),
	}
}

// Crear da de alta una orden con sus líneas en una sola transacción.
// El precio de cada línea es la foto del precio de catálogo al momento del
// alta y el total se calcula siempre en el servidor (suma de precio
// capturado × cantidad); no se acepta un total del cliente.
func (uc *OrdenUseCase) Crear(ctx context.Context, in dto.CrearOrdenRequest) (*dto.CrearOrdenResponse, error) {
	if in.ProveedorID == 0 || len(in.Lineas) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	for _, l := range in.Lineas {
		if l.ProductoID == 0 || l.Cantidad <= 0 {
			return nil, domain.ErrEntradaInvalida
		}
	}

	// El proveedor debe existir; no necesita estar activo.
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}

	// Fotos de precio y total, fuera de la transacción (solo lectura).
	lineas := make([]entity.OrdenProducto, 0, len(in.Lineas))
	total := decimal.Zero
	for _, l := range in.Lineas {
		producto, err := uc.productoRepo.GetByID(l.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrNotFound
		}
		linea := entity.OrdenProducto{
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
			Precio:     producto.Precio,
		}
		total = total.Add(linea.Subtotal())
		lineas = append(lineas, linea)
	}

	orden := &entity.OrdenDeCompra{
		ProveedorID:   in.ProveedorID,
		FechaCreacion: time.Now(),
		Total:         total,
		Estado:        entity.EstadoCreada,
	}
	if err := uc.insertarConNumeroUnico(ctx, orden, lineas); err != nil {
		return nil, err
	}
	return &dto.CrearOrdenResponse{OrdenID: orden.ID, NumeroOrden: orden.NumeroOrden}, nil
}

// GenerarAutomatica crea una orden de una sola línea por reposición de un
// producto bajo su umbral mínimo. Si el total no supera el máximo límite
// configurado en limites_precio la orden nace pre-aprobada ("automática");
// si lo supera, o si no hay límite configurado, nace "creada" y requiere
// aceptación manual.
func (uc *OrdenUseCase) GenerarAutomatica(ctx context.Context, in dto.GenerarAutomaticaRequest) (*dto.GenerarAutomaticaResponse, error) {
	if in.ProveedorID == 0 || in.ProductoID == 0 || in.CantidadMinima <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}

	total := producto.Precio.Mul(decimal.NewFromInt(int64(in.CantidadMinima)))

	estado := entity.EstadoCreada
	limite, err := uc.limiteRepo.MaxLimite()
	if err != nil {
		return nil, err
	}
	if limite != nil && total.LessThanOrEqual(*limite) {
		estado = entity.EstadoAutomatica
	}

	orden := &entity.OrdenDeCompra{
		ProveedorID:   in.ProveedorID,
		FechaCreacion: time.Now(),
		Total:         total,
		Estado:        estado,
	}
	lineas := []entity.OrdenProducto{{
		ProductoID: in.ProductoID,
		Cantidad:   in.CantidadMinima,
		Precio:     producto.Precio,
	}}
	if err := uc.insertarConNumeroUnico(ctx, orden, lineas); err != nil {
		return nil, err
	}
	return &dto.GenerarAutomaticaResponse{
		OrdenID:     orden.ID,
		NumeroOrden: orden.NumeroOrden,
		Estado:      orden.Estado,
		Total:       orden.Total,
	}, nil
}

// insertarConNumeroUnico genera el número de orden e inserta cabecera y
// líneas en una transacción. Si el insert pierde la carrera contra otra
// creación concurrente (ErrDuplicado por el constraint de numero_orden)
// repite la transacción completa con un código nuevo.
func (uc *OrdenUseCase) insertarConNumeroUnico(ctx context.Context, orden *entity.OrdenDeCompra, lineas []entity.OrdenProducto) error {
	for intento := 0; intento < reintentosInsercion; intento++ {
		numero, err := uc.generador.Generar()
		if err != nil {
			return err
		}
		orden.NumeroOrden = numero

		err = uc.txRunner.Run(ctx, func(
			ordenRepo repository.OrdenCompraRepository,
			_ repository.RecepcionRepository,
			_ repository.ProductoRepository,
		) error {
			if err := ordenRepo.Create(orden); err != nil {
				return err
			}
			for i := range lineas {
				lineas[i].OrdenID = orden.ID
				if err := ordenRepo.CreateLinea(&lineas[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if errors.Is(err, domain.ErrDuplicado) {
			continue
		}
		return err
	}
	return domain.ErrGeneracionAgotada
}

// Aceptar pasa la orden de "creada" a "aceptada". Sin efectos sobre el
// inventario.
func (uc *OrdenUseCase) Aceptar(ctx context.Context, ordenID int64) error {
	orden, err := uc.ordenRepo.GetByID(ordenID)
	if err != nil {
		return err
	}
	if orden == nil {
		return domain.ErrNotFound
	}
	if !orden.PuedeAceptar() {
		return domain.ErrEstadoInvalido
	}
	return uc.ordenRepo.ActualizarEstado(ordenID, entity.EstadoAceptada)
}

// Inactivar pasa la orden de "aceptada" a "inactiva".
func (uc *OrdenUseCase) Inactivar(ctx context.Context, ordenID int64) error {
	orden, err := uc.ordenRepo.GetByID(ordenID)
	if err != nil {
		return err
	}
	if orden == nil {
		return domain.ErrNotFound
	}
	if !orden.PuedeInactivar() {
		return domain.ErrEstadoInvalido
	}
	return uc.ordenRepo.ActualizarEstado(ordenID, entity.EstadoInactiva)
}

// ConfirmarRecepcion registra cantidades recibidas para una orden y cierra
// la orden como "completada", reciba todo o parte de lo pedido.
//
// Por cada línea: upsert de la recepción (la cantidad nueva SOBREESCRIBE la
// anterior, no se acumula) y ajuste del stock del producto por el DELTA
// entre la cantidad nueva y la registrada antes, para que re-confirmar no
// duplique stock. Si viene precio, actualiza además el precio de catálogo
// del producto. Todo en una sola transacción: una falla a mitad de la
// lista no deja productos actualizados a medias.
func (uc *OrdenUseCase) ConfirmarRecepcion(ctx context.Context, ordenID int64, in dto.ConfirmarRecepcionRequest) error {
	orden, err := uc.ordenRepo.GetByID(ordenID)
	if err != nil {
		return err
	}
	if orden == nil {
		return domain.ErrNotFound
	}
	if len(in.Lineas) == 0 {
		return domain.ErrEntradaInvalida
	}
	for _, l := range in.Lineas {
		if l.ProductoID == 0 || l.CantidadRecibida < 0 {
			return domain.ErrEntradaInvalida
		}
	}

	ahora := time.Now()
	return uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenCompraRepository,
		recepcionRepo repository.RecepcionRepository,
		productoRepo repository.ProductoRepository,
	) error {
		for _, l := range in.Lineas {
			previa, err := recepcionRepo.Get(ordenID, l.ProductoID)
			if err != nil {
				return err
			}
			anterior := 0
			if previa != nil {
				anterior = previa.CantidadRecibida
			}

			if err := recepcionRepo.Upsert(&entity.RecepcionProducto{
				OrdenID:          ordenID,
				ProductoID:       l.ProductoID,
				CantidadRecibida: l.CantidadRecibida,
				FechaRecepcion:   ahora,
			}); err != nil {
				return err
			}

			if l.Precio != nil {
				if err := productoRepo.ActualizarPrecio(l.ProductoID, *l.Precio); err != nil {
					return err
				}
			}

			if delta := l.CantidadRecibida - anterior; delta != 0 {
				if err := productoRepo.SumarCantidad(l.ProductoID, delta); err != nil {
					return err
				}
			}
		}
		return ordenRepo.ActualizarEstado(ordenID, entity.EstadoCompletada)
	})
}

// Listar devuelve todas las órdenes con nombre de proveedor, líneas y
// recepciones registradas.
func (uc *OrdenUseCase) Listar(ctx context.Context) ([]dto.OrdenResponse, error) {
	resumen, err := uc.ordenRepo.ListResumen()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrdenResponse, 0, len(resumen))
	for _, r := range resumen {
		lineas, err := uc.ordenRepo.ListLineas(r.Orden.ID)
		if err != nil {
			return nil, err
		}
		recepciones, err := uc.recepcionRepo.ListByOrden(r.Orden.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ordenToResponse(&r.Orden, r.NombreProveedor, lineas, recepciones))
	}
	return out, nil
}

// EstadoRecepcion devuelve la orden con lo pedido vs. lo recibido por línea.
func (uc *OrdenUseCase) EstadoRecepcion(ctx context.Context, ordenID int64) (*dto.EstadoRecepcionResponse, error) {
	orden, err := uc.ordenRepo.GetByID(ordenID)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	lineas, err := uc.ordenRepo.ListRecepcion(ordenID)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstadoRecepcionResponse{
		Orden:  ordenToResponse(orden, "", nil, nil),
		Lineas: make([]dto.LineaEstadoRecepcion, 0, len(lineas)),
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaEstadoRecepcion{
			ProductoID:         l.ProductoID,
			CantidadSolicitada: l.CantidadSolicitada,
			CantidadRecibida:   l.CantidadRecibida,
			PrecioVigente:      l.PrecioVigente,
		})
	}
	return resp, nil
}

func ordenToResponse(
	o *entity.OrdenDeCompra,
	nombreProveedor string,
	lineas []*repository.LineaConProducto,
	recepciones []*entity.RecepcionProducto,
) dto.OrdenResponse {
	resp := dto.OrdenResponse{
		ID:              o.ID,
		ProveedorID:     o.ProveedorID,
		NombreProveedor: nombreProveedor,
		FechaCreacion:   o.FechaCreacion,
		Total:           o.Total,
		Estado:          o.Estado,
		NumeroOrden:     o.NumeroOrden,
		Lineas:          make([]dto.LineaOrdenResponse, 0, len(lineas)),
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaOrdenResponse{
			ProductoID: l.ProductoID,
			Nombre:     l.Nombre,
			Cantidad:   l.Cantidad,
			Precio:     l.Precio,
		})
	}
	for _, r := range recepciones {
		resp.Recepciones = append(resp.Recepciones, dto.RecepcionResponse{
			ProductoID:       r.ProductoID,
			CantidadRecibida: r.CantidadRecibida,
			FechaRecepcion:   r.FechaRecepcion,
		})
	}
	return resp
}
