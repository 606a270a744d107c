// Command migrate aplica o revierte las migraciones goose embebidas: migrate up|down|status.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/marketplace-profit-api/internal/infrastructure/postgres"
	"github.com/jhoicas/marketplace-profit-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/marketplace-profit-api/pkg/config"
	"github.com/jhoicas/marketplace-profit-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	db, err := postgres.OpenSQL(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer db.Close()

	switch cmd {
	case "up":
		err = migrations.Up(ctx, db)
	case "down":
		err = migrations.Down(ctx, db)
	case "status":
		err = migrations.Status(ctx, db)
	default:
		fmt.Fprintf(os.Stderr, "uso: migrate up|down|status (recibido %q)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migración fallida")
	}
	log.Info().Str("cmd", cmd).Msg("migración completada")
}
