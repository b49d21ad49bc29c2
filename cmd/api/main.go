package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JoaquinSpengler/api-autos/internal/application/auth"
	"github.com/JoaquinSpengler/api-autos/internal/application/compras"
	"github.com/JoaquinSpengler/api-autos/internal/application/usecase"
	"github.com/JoaquinSpengler/api-autos/internal/infrastructure/postgres"
	httpRouter "github.com/JoaquinSpengler/api-autos/internal/interfaces/http"
	"github.com/JoaquinSpengler/api-autos/pkg/config"
	"github.com/JoaquinSpengler/api-autos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	ordenRepo := postgres.NewOrdenCompraRepository(pool)
	recepcionRepo := postgres.NewRecepcionRepository(pool)
	limiteRepo := postgres.NewLimitePrecioRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	autoRepo := postgres.NewAutoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ordenUC := compras.NewOrdenUseCase(txRunner, ordenRepo, recepcionRepo, productoRepo, proveedorRepo, limiteRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	autoUC := usecase.NewAutoUseCase(autoRepo)
	limiteUC := usecase.NewLimitePrecioUseCase(limiteRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API Flota",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrdenUC:     ordenUC,
		ProductoUC:  productoUC,
		ProveedorUC: proveedorUC,
		AutoUC:      autoUC,
		LimiteUC:    limiteUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
