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

	"github.com/jhoicas/saftpt-validator/internal/application/audit"
	"github.com/jhoicas/saftpt-validator/internal/domain/repository"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/saftpt-validator/internal/infrastructure/pdf"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/postgres"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/saftxml"
	httpRouter "github.com/jhoicas/saftpt-validator/internal/interfaces/http"
	"github.com/jhoicas/saftpt-validator/pkg/config"
	"github.com/jhoicas/saftpt-validator/pkg/logger"
)

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

	validationCfg, err := validationConfig(cfg.Validation)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de validación")
	}

	verifier, err := loadVerifier(cfg.Signature)
	if err != nil {
		log.Fatal().Err(err).Msg("claves de firma")
	}
	if verifier == nil {
		log.Warn().Msg("sin clave pública: la cadena de firmas solo comprueba la presencia del Hash")
	}

	// Sin base de datos configurada las ejecuciones se guardan en memoria.
	ctx := context.Background()
	var runRepo repository.ValidationRunRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		runRepo = postgres.NewValidationRunRepository(pool)
	} else {
		log.Warn().Msg("DATABASE_URL/DB_HOST vacíos: ejecuciones en memoria")
		runRepo = memory.NewValidationRunRepository()
	}

	validationUC := audit.NewValidationUseCase(
		saftxml.NewReader(),
		runRepo,
		verifier,
		validationCfg,
		log,
		audit.WithPDFGenerator(infrapdf.NewMarotoPDFGenerator()),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SAF-T PT Validator API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ValidationUC: validationUC,
		JWTSecret:    cfg.JWT.Secret,
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
