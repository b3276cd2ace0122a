// seed crea el esquema (si no existe) y carga productos, bodegas e inventario inicial
// desde un catálogo XML, todo en una sola transacción.
//
// Uso: go run ./cmd/seed [ruta/catalogo.xml]
// Sin argumento usa el catálogo de demostración embebido.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"
	"time"

	"github.com/jhoicas/stock-assistant-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-assistant-api/pkg/config"
	"github.com/jhoicas/stock-assistant-api/pkg/logger"
)

//go:embed catalogo.xml
var demoCatalog []byte

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	var src io.Reader = bytes.NewReader(demoCatalog)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("path", os.Args[1]).Msg("abrir catálogo")
		}
		defer f.Close()
		src = f
	}
	cat, err := ParseCatalog(src)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo inválido")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema")
	}
	if err := postgres.NewTxRunner(pool).Run(ctx, func(repos postgres.Repos) error {
		return Load(ctx, cat, repos.Products, repos.Warehouses, repos.Inventory)
	}); err != nil {
		log.Fatal().Err(err).Msg("carga inicial")
	}

	log.Info().
		Int("productos", len(cat.Products)).
		Int("bodegas", len(cat.Warehouses)).
		Int("inventario", len(cat.Stock)).
		Msg("carga inicial completada")
}
