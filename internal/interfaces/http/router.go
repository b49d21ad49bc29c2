package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JoaquinSpengler/api-autos/internal/application/auth"
	"github.com/JoaquinSpengler/api-autos/internal/application/compras"
	"github.com/JoaquinSpengler/api-autos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrdenUC     *compras.OrdenUseCase
	ProductoUC  *usecase.ProductoUseCase
	ProveedorUC *usecase.ProveedorUseCase
	AutoUC      *usecase.AutoUseCase
	LimiteUC    *usecase.LimitePrecioUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/registrar", authHandler.Registrar)
	api.Post("/login", authHandler.Login)

	// Órdenes de compra
	ordenes := api.Group("/purchase-orders")
	ordenHandler := NewOrdenHandler(deps.OrdenUC)
	ordenes.Post("/", ordenHandler.Crear)
	ordenes.Get("/", ordenHandler.Listar)
	ordenes.Post("/auto-generate", ordenHandler.GenerarAutomatica)
	ordenes.Put("/:id/accept", ordenHandler.Aceptar)
	ordenes.Put("/:id/inactivate", ordenHandler.Inactivar)
	ordenes.Post("/:id/confirm-receipt", ordenHandler.ConfirmarRecepcion)
	ordenes.Get("/:id/receipt-status", ordenHandler.EstadoRecepcion)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/agregar-producto", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/proveedor/:id", productoHandler.ListarPorProveedor)
	productos.Put("/:nombre/restar", productoHandler.RestarCantidad)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id/precio", productoHandler.ActualizarPrecio)
	productos.Put("/:id/inactivo", productoHandler.Inactivar)
	productos.Put("/:id", productoHandler.Actualizar)

	// Proveedores
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Crear)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/cuil/:cuil", proveedorHandler.GetByCUIL)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id/inactivo", proveedorHandler.Inactivar)
	proveedores.Put("/:id", proveedorHandler.Actualizar)

	// Autos
	autos := api.Group("/autos")
	autoHandler := NewAutoHandler(deps.AutoUC)
	autos.Post("/", autoHandler.Crear)
	autos.Get("/", autoHandler.Listar)
	autos.Get("/disponibles", autoHandler.ListarDisponibles)
	autos.Get("/patente/:patente", autoHandler.GetByPatente)
	autos.Get("/:id", autoHandler.GetByID)
	autos.Put("/:id/inactivo", autoHandler.Inactivar)
	autos.Put("/:id", autoHandler.Actualizar)

	// Límites de precio
	limiteHandler := NewLimiteHandler(deps.LimiteUC)
	api.Post("/limites-precio", limiteHandler.Crear)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/usuarios", authHandler.Listar)
}
