package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/talent-fit/internal/config"
	"github.com/fadilmartias/talent-fit/internal/domain/fiber/handler"
	"github.com/fadilmartias/talent-fit/internal/logger"
	"github.com/fadilmartias/talent-fit/internal/middleware"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/repository"
	"github.com/fadilmartias/talent-fit/internal/service"
	"github.com/fadilmartias/talent-fit/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := logger.New(appConfig.LogFormat, appConfig.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	reasoningConfig := config.LoadReasoningConfig()
	if err := reasoningConfig.Validate(); err != nil {
		zlog.Fatal("invalid configuration", zap.Error(err))
	}

	store, err := openStore(ctx, zlog)
	if err != nil {
		zlog.Fatal("open store", zap.Error(err))
	}

	reasoner, err := newReasoner(ctx, reasoningConfig)
	if err != nil {
		zlog.Fatal("init reasoning service", zap.Error(err))
	}

	enrichmentConfig := config.LoadEnrichmentConfig()
	enricher := newEnricher(enrichmentConfig, zlog)

	engine := service.NewAssessmentService(reasoner, zlog.Named("engine"))
	assessmentUC := usecase.NewAssessmentUsecase(store, enricher, engine, zlog.Named("assessment"), enrichmentConfig.Timeout)
	roleUC := usecase.NewRoleUsecase(store)
	candidateUC := usecase.NewCandidateUsecase(store)

	app := newApp(appConfig)
	handler.NewRoleHandler(roleUC).RegisterRoutes(app)
	handler.NewCandidateHandler(candidateUC).RegisterRoutes(app)
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(app)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			zlog.Error("shutdown", zap.Error(err))
		}
	}()

	zlog.Info("server running",
		zap.String("port", appConfig.Port),
		zap.String("env", appConfig.Env),
		zap.String("ai_provider", reasoningConfig.Provider),
		zap.String("enrichment", enrichmentConfig.Mode),
	)
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("listen", zap.Error(err))
	}
}

func newApp(appConfig *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(middleware.RateLimit{
		Max:    appConfig.RateLimitMax,
		Window: appConfig.RateLimitWindow,
	}))
	return app
}

// openStore picks the backing store once. Postgres when DB_HOST is set,
// otherwise the in-memory store seeded with demo data.
func openStore(ctx context.Context, zlog *zap.Logger) (repository.Store, error) {
	dbConfig := config.LoadDBConfig()
	if !dbConfig.Enabled() {
		zlog.Warn("DB_HOST not set, using in-memory store with fixture data")
		store := repository.NewMemoryStore()
		if err := repository.SeedFixtures(ctx, store); err != nil {
			return nil, fmt.Errorf("seed fixtures: %w", err)
		}
		return store, nil
	}

	db, err := connectDB(dbConfig, config.LoadAppConfig())
	if err != nil {
		return nil, err
	}
	return repository.NewPostgresStore(db), nil
}

func connectDB(dbConfig *config.DBConfig, appConfig *config.AppConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Role{}, &model.Candidate{}, &model.Assessment{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func newReasoner(ctx context.Context, cfg *config.ReasoningConfig) (service.Reasoner, error) {
	if cfg.Provider == config.ProviderGemini {
		return service.NewGeminiReasoner(ctx, cfg)
	}
	return service.NewEndpointReasoner(cfg), nil
}

// newEnricher returns nil when enrichment is switched off.
func newEnricher(cfg *config.EnrichmentConfig, zlog *zap.Logger) service.ProfileEnricher {
	switch cfg.Mode {
	case config.EnrichmentOff:
		return nil
	case config.EnrichmentLinkedIn:
		return service.NewLinkedInService(cfg, zlog.Named("linkedin"))
	default:
		return service.NewFixtureProfileService()
	}
}
