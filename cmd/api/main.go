package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Empresas-api/internal/application/auth"
	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/application/reports"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Empresas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Empresas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Empresas-api/internal/interfaces/http"
	"github.com/jhoicas/Empresas-api/pkg/config"
	"github.com/jhoicas/Empresas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	employmentRepo := postgres.NewEmploymentRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	provisioningUC := provisioning.NewUseCase(txRunner, userRepo, companyRepo, employmentRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, userRepo)
	rosterUC := reports.NewRosterUseCase(companyRepo, employmentRepo, userRepo, infrapdf.NewMarotoRosterGenerator())
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Superadmin por defecto: idempotente, antes de aceptar tráfico.
	created, err := authUC.EnsureSuperAdmin(ctx, cfg.Bootstrap.SuperAdminName, cfg.Bootstrap.SuperAdminEmail, cfg.Bootstrap.SuperAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap del superadmin")
	}
	if created {
		log.Info().Str("email", cfg.Bootstrap.SuperAdminEmail).Msg("superadmin creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empresas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProvisioningUC: provisioningUC,
		CompanyUC:      companyUC,
		UserUC:         userUC,
		LeadUC:         leadUC,
		TaskUC:         taskUC,
		RosterUC:       rosterUC,
		JWTSecret:      cfg.JWT.Secret,
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
