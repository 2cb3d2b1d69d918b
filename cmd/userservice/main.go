package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"shoplite/internal/config"
	"shoplite/internal/handlers"
	"shoplite/internal/metrics"
	"shoplite/internal/middleware"
	"shoplite/internal/repositories"
	"shoplite/internal/services"
	"shoplite/internal/token"
	"shoplite/pkg/logger"
	"shoplite/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})
	stats := metrics.New()
	codec := token.NewCodec(cfg.TokenSecret)

	users, err := buildUserRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init user store")
	}

	// Event publishing is opt-in: leave RABBITMQ_URL empty to run without a
	// broker. A configured but unreachable broker is a deployment error.
	var events rabbitmq.Publisher
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("init RabbitMQ client")
		}
		defer client.Close()
		events = client
	}

	authService := services.NewAuthService(users, codec, log, stats, events)
	authHandler := handlers.NewAuthHandler(authService, codec, log)

	app := fiber.New(fiber.Config{AppName: "user-service"})
	app.Use(middleware.Metrics(stats))
	handlers.RegisterSystemRoutes(app, "user-service", cfg.AppEnv)
	app.Get("/metrics", stats.Handler())
	authHandler.RegisterRoutes(app)

	go func() {
		log.Info().Str("addr", cfg.UserAddr).Str("env", cfg.AppEnv).Msg("user service listening")
		if err := app.Listen(cfg.UserAddr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down user service")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func buildUserRepository(cfg *config.Config) (repositories.UserRepository, error) {
	if cfg.StoreBackend == "memory" {
		return repositories.NewMemoryUserRepository(), nil
	}
	db, err := repositories.OpenDB(cfg.StoreBackend, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := repositories.MigrateUserDB(db); err != nil {
		return nil, err
	}
	return repositories.NewGORMUserRepository(db), nil
}
