package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"grubdash/internal/config"
	"grubdash/internal/database"
	"grubdash/internal/handlers"
	"grubdash/internal/logger"
	"grubdash/internal/repositories"
	"grubdash/internal/services"
	"grubdash/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync errors are not actionable

	// --- Events (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log.Named("rabbitmq"))
		if err != nil {
			log.Fatal("Failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		events = mqClient

		if err := mqClient.ConsumeKitchenEvents(rabbitmq.KitchenLogger(log.Named("kitchen"))); err != nil {
			log.Error("Failed to start kitchen consumer", zap.Error(err))
		}
	} else {
		log.Info("RABBITMQ_URL not set, event publishing disabled")
	}

	// --- Repositories ---
	dishRepo, orderRepo, err := newRepositories(cfg)
	if err != nil {
		log.Fatal("Failed to initialize repositories", zap.Error(err))
	}
	if cfg.SeedData {
		seed(dishRepo, orderRepo, log)
	}

	// --- Services & App ---
	dishService := services.NewDishService(dishRepo, events, log.Named("dishes"))
	orderService := services.NewOrderService(orderRepo, events, log.Named("orders"))
	app := newApp(dishService, orderService, log)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting server", zap.String("port", cfg.AppPort), zap.String("storage", cfg.StorageDriver))
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error("Error during Fiber shutdown", zap.Error(err))
	}
	log.Info("Server gracefully stopped")
}

// newApp wires the middleware and routes around the given services.
func newApp(dishService *services.DishService, orderService *services.OrderService, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "grubdash",
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(requestid.New())
	app.Use(logger.Middleware(log.Named("http")))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handlers.NewDishHandler(dishService).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app)

	return app
}

// newRepositories picks the store named by cfg.StorageDriver.
func newRepositories(cfg config.Config) (repositories.DishRepository, repositories.OrderRepository, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return repositories.NewMemoryDishRepository(), repositories.NewMemoryOrderRepository(), nil
	case config.StorageSQLite, config.StoragePostgres:
		db, err := database.Open(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewGORMDishRepository(db), repositories.NewGORMOrderRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
