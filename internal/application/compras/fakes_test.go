package compras_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. Reproducen el contrato
// de los adaptadores reales: IDs autoincrementales, ErrDuplicado ante un
// número de orden repetido, nil sin error cuando no hay fila y
// ErrStockInsuficiente cuando un delta dejaría el stock negativo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrdenRepo struct {
	nextID  int64
	ordenes map[int64]*entity.OrdenDeCompra
	lineas  []entity.OrdenProducto
	// duplicadosRestantes simula perder la carrera contra otra creación
	// concurrente: mientras sea > 0 cada Create falla con ErrDuplicado
	// aunque la pre-validación del generador no haya visto el número.
	duplicadosRestantes int
}

func newFakeOrdenRepo() *fakeOrdenRepo {
	return &fakeOrdenRepo{ordenes: make(map[int64]*entity.OrdenDeCompra)}
}

func (f *fakeOrdenRepo) Create(o *entity.OrdenDeCompra) error {
	if f.duplicadosRestantes > 0 {
		f.duplicadosRestantes--
		return domain.ErrDuplicado
	}
	for _, existente := range f.ordenes {
		if existente.NumeroOrden == o.NumeroOrden {
			return domain.ErrDuplicado
		}
	}
	f.nextID++
	o.ID = f.nextID
	copia := *o
	f.ordenes[o.ID] = &copia
	return nil
}

func (f *fakeOrdenRepo) CreateLinea(l *entity.OrdenProducto) error {
	f.lineas = append(f.lineas, *l)
	return nil
}

func (f *fakeOrdenRepo) GetByID(id int64) (*entity.OrdenDeCompra, error) {
	o, ok := f.ordenes[id]
	if !ok {
		return nil, nil
	}
	copia := *o
	return &copia, nil
}

func (f *fakeOrdenRepo) ExisteNumero(numero string) (bool, error) {
	for _, o := range f.ordenes {
		if o.NumeroOrden == numero {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrdenRepo) ActualizarEstado(id int64, estado string) error {
	o, ok := f.ordenes[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Estado = estado
	return nil
}

func (f *fakeOrdenRepo) ListResumen() ([]*repository.OrdenResumen, error) {
	var out []*repository.OrdenResumen
	for _, o := range f.ordenes {
		out = append(out, &repository.OrdenResumen{Orden: *o})
	}
	return out, nil
}

func (f *fakeOrdenRepo) ListLineas(ordenID int64) ([]*repository.LineaConProducto, error) {
	var out []*repository.LineaConProducto
	for _, l := range f.lineas {
		if l.OrdenID == ordenID {
			out = append(out, &repository.LineaConProducto{
				ProductoID: l.ProductoID,
				Cantidad:   l.Cantidad,
				Precio:     l.Precio,
			})
		}
	}
	return out, nil
}

func (f *fakeOrdenRepo) ListRecepcion(ordenID int64) ([]*repository.LineaRecepcion, error) {
	var out []*repository.LineaRecepcion
	for _, l := range f.lineas {
		if l.OrdenID == ordenID {
			out = append(out, &repository.LineaRecepcion{
				ProductoID:         l.ProductoID,
				CantidadSolicitada: l.Cantidad,
				PrecioVigente:      l.Precio,
			})
		}
	}
	return out, nil
}

type claveRecepcion struct{ ordenID, productoID int64 }

type fakeRecepcionRepo struct {
	recepciones map[claveRecepcion]*entity.RecepcionProducto
}

func newFakeRecepcionRepo() *fakeRecepcionRepo {
	return &fakeRecepcionRepo{recepciones: make(map[claveRecepcion]*entity.RecepcionProducto)}
}

func (f *fakeRecepcionRepo) Get(ordenID, productoID int64) (*entity.RecepcionProducto, error) {
	r, ok := f.recepciones[claveRecepcion{ordenID, productoID}]
	if !ok {
		return nil, nil
	}
	copia := *r
	return &copia, nil
}

func (f *fakeRecepcionRepo) Upsert(r *entity.RecepcionProducto) error {
	copia := *r
	f.recepciones[claveRecepcion{r.OrdenID, r.ProductoID}] = &copia
	return nil
}

func (f *fakeRecepcionRepo) ListByOrden(ordenID int64) ([]*entity.RecepcionProducto, error) {
	var out []*entity.RecepcionProducto
	for k, r := range f.recepciones {
		if k.ordenID == ordenID {
			copia := *r
			out = append(out, &copia)
		}
	}
	return out, nil
}

type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	f := &fakeProductoRepo{productos: make(map[int64]*entity.Producto)}
	for _, p := range productos {
		copia := *p
		f.productos[p.ID] = &copia
	}
	return f
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductoRepo) ListActivos() ([]*entity.Producto, error) { return nil, nil }

func (f *fakeProductoRepo) ListActivosPorProveedor(int64) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error { return nil }

func (f *fakeProductoRepo) Inactivar(id int64) error { return nil }

func (f *fakeProductoRepo) ActualizarPrecio(id int64, precio decimal.Decimal) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Precio = precio
	return nil
}

func (f *fakeProductoRepo) SumarCantidad(id int64, delta int) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Cantidad+delta < 0 {
		return domain.ErrStockInsuficiente
	}
	p.Cantidad += delta
	return nil
}

func (f *fakeProductoRepo) RestarCantidadPorNombre(nombre string, cantidad int) error {
	for _, p := range f.productos {
		if p.Nombre == nombre {
			return f.SumarCantidad(p.ID, -cantidad)
		}
	}
	return domain.ErrNotFound
}

type fakeProveedorRepo struct {
	proveedores map[int64]*entity.Proveedor
}

func newFakeProveedorRepo(proveedores ...*entity.Proveedor) *fakeProveedorRepo {
	f := &fakeProveedorRepo{proveedores: make(map[int64]*entity.Proveedor)}
	for _, p := range proveedores {
		copia := *p
		f.proveedores[p.ID] = &copia
	}
	return f
}

func (f *fakeProveedorRepo) Create(p *entity.Proveedor) error { return nil }

func (f *fakeProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	p, ok := f.proveedores[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProveedorRepo) GetByCUIL(string) (*entity.Proveedor, error) { return nil, nil }

func (f *fakeProveedorRepo) ListActivos() ([]*entity.Proveedor, error) { return nil, nil }

func (f *fakeProveedorRepo) Update(p *entity.Proveedor) error { return nil }

func (f *fakeProveedorRepo) Inactivar(id int64, razonBaja string) error { return nil }

type fakeLimiteRepo struct {
	limite *decimal.Decimal
}

func (f *fakeLimiteRepo) MaxLimite() (*decimal.Decimal, error) { return f.limite, nil }

func (f *fakeLimiteRepo) Create(l *entity.LimitePrecio) error { return nil }

// fakeTxRunner ejecuta fn directamente sobre los dobles en memoria, sin
// transacción real. La atomicidad no se verifica acá; es contrato del
// adaptador de PostgreSQL.
type fakeTxRunner struct {
	ordenRepo     *fakeOrdenRepo
	recepcionRepo *fakeRecepcionRepo
	productoRepo  *fakeProductoRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	ordenRepo repository.OrdenCompraRepository,
	recepcionRepo repository.RecepcionRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return fn(f.ordenRepo, f.recepcionRepo, f.productoRepo)
}
