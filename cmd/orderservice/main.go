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
	"shoplite/internal/models"
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

	// Same secret as the user service, so its tokens verify here.
	codec := token.NewCodec(cfg.TokenSecret)

	orders, products, err := buildOrderRepositories(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init order store")
	}
	if err := products.Seed(models.Catalog()); err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}

	var events rabbitmq.Publisher
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("init RabbitMQ client")
		}
		defer client.Close()
		events = client
	}

	orderService := services.NewOrderService(orders, products, log, stats, events)
	orderHandler := handlers.NewOrderHandler(orderService, codec, log)

	app := fiber.New(fiber.Config{AppName: "order-service"})
	app.Use(middleware.Metrics(stats))
	handlers.RegisterSystemRoutes(app, "order-service", cfg.AppEnv)
	app.Get("/metrics", stats.Handler())
	orderHandler.RegisterRoutes(app)

	go func() {
		log.Info().Str("addr", cfg.OrderAddr).Str("env", cfg.AppEnv).Msg("order service listening")
		if err := app.Listen(cfg.OrderAddr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down order service")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func buildOrderRepositories(cfg *config.Config) (repositories.OrderRepository, repositories.ProductRepository, error) {
	if cfg.StoreBackend == "memory" {
		return repositories.NewMemoryOrderRepository(), repositories.NewMemoryProductRepository(), nil
	}
	db, err := repositories.OpenDB(cfg.StoreBackend, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.MigrateOrderDB(db); err != nil {
		return nil, nil, err
	}
	return repositories.NewGORMOrderRepository(db), repositories.NewGORMProductRepository(db), nil
}
