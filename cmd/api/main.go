package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/stock-assistant-api/internal/application/usecase"
	"github.com/jhoicas/stock-assistant-api/internal/domain/repository"
	"github.com/jhoicas/stock-assistant-api/internal/infrastructure/memory"
	"github.com/jhoicas/stock-assistant-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-assistant-api/internal/interfaces/http"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
	"github.com/jhoicas/stock-assistant-api/pkg/logger"
)

type repositories struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	inventory  repository.InventoryRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	var repos repositories
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		repos = repositories{store.Products(), store.Warehouses(), store.Inventory()}
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos = repositories{
			postgres.NewProductRepository(pool),
			postgres.NewWarehouseRepository(pool),
			postgres.NewInventoryRepository(pool),
		}
	}

	productUC := usecase.NewProductUseCase(repos.products, log)
	warehouseUC := usecase.NewWarehouseUseCase(repos.warehouses, log)
	inventoryUC := usecase.NewInventoryUseCase(repos.inventory, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		InventoryUC: inventoryUC,
		Paging:      cfg.Paging,
		ServiceName: cfg.App.Name,
		Storage:     cfg.Storage.Driver,
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
