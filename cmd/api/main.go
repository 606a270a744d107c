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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-profit-api/internal/application/auth"
	"github.com/jhoicas/marketplace-profit-api/internal/application/catalog"
	"github.com/jhoicas/marketplace-profit-api/internal/application/pricing"
	engine "github.com/jhoicas/marketplace-profit-api/internal/domain/pricing"
	"github.com/jhoicas/marketplace-profit-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/marketplace-profit-api/internal/infrastructure/pdf"
	"github.com/jhoicas/marketplace-profit-api/internal/infrastructure/postgres"
	"github.com/jhoicas/marketplace-profit-api/internal/infrastructure/postgres/migrations"
	httpRouter "github.com/jhoicas/marketplace-profit-api/internal/interfaces/http"
	"github.com/jhoicas/marketplace-profit-api/pkg/config"
	"github.com/jhoicas/marketplace-profit-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Msg("iniciando aplicación")

	// Montos como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	if cfg.Migrations.Auto {
		if err := runMigrations(ctx, cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.Repositories(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	m := metrics.New(cfg.Metrics.Prefix)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	solver := engine.NewSolver(cfg.Pricing.MinDenominator, cfg.Pricing.RoundingStep)
	grader := engine.NewGrader(gradingPolicy(cfg.Grading))
	pricingUC := pricing.NewUseCase(txRunner, solver, grader, m, pdfGenerator)

	catalogUC := catalog.NewUseCase(
		repos.Materials, repos.Products, repos.Marketplaces,
		repos.Costs, repos.StoreProducts, repos.Ads,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
	app.Use(httpRouter.RequestID(log))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Marketplace Profit API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		PricingUC: pricingUC,
		CatalogUC: catalogUC,
		JWTSecret: cfg.JWT.Secret,
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

func runMigrations(ctx context.Context, cfg config.DBConfig) error {
	db, err := postgres.OpenSQL(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return migrations.Up(ctx, db)
}

// gradingPolicy pasa los umbrales de config (float) a la política del grader (decimal).
func gradingPolicy(g config.GradingConfig) engine.Policy {
	return engine.Policy{
		RiskyROASMultiplier:    decimal.NewFromFloat(g.RiskyROASMultiplier),
		ScalableROASMultiplier: decimal.NewFromFloat(g.ScalableROASMultiplier),
		MarginLowPercent:       decimal.NewFromFloat(g.MarginLowPercent),
		MarginHealthyPercent:   decimal.NewFromFloat(g.MarginHealthyPercent),
		MarginScalablePercent:  decimal.NewFromFloat(g.MarginScalablePercent),
		ROASNearMultiplier:     decimal.NewFromFloat(g.ROASNearMultiplier),
		CPANearRatio:           decimal.NewFromFloat(g.CPANearRatio),
		TACoSMax:               decimal.NewFromFloat(g.TACoSMax),
		AdsErosionRatio:        decimal.NewFromFloat(g.AdsErosionRatio),
	}
}
