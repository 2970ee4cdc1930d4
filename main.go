package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gudang/internal/app"
	"gudang/internal/config"
	"gudang/internal/database"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/internal/session"
	"gudang/pkg/logger"
	"gudang/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// seedCredentials is the built-in credential table.
var seedCredentials = []struct {
	username, password string
	role               models.Role
}{
	{"admin", "admin_password", models.RoleAdmin},
	{"user1", "user1_password", models.RoleUser},
	{"user2", "user2_password", models.RoleUser},
}

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	if cfg.UsesDevSecret() {
		log.Warn("SECRET_KEY is not set; sessions are signed with the development default")
	}

	// --- Credential and inventory stores ---
	users, err := seedUsers()
	if err != nil {
		return err
	}
	userRepo, itemRepo, closeStores, err := openStores(cfg, users, log)
	if err != nil {
		return err
	}
	defer closeStores()

	// --- Optional event publishing ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeItemEvents(func(event models.ItemEvent) error {
			log.Info("inventory event", "id", event.ID, "type", event.Type, "item_id", event.Item.ID, "actor", event.Actor)
			return nil
		}); err != nil {
			log.Warn("inventory event consumer not started", "error", err)
		}
	}

	// --- Services and HTTP ---
	fiberApp := newApp(cfg, log, userRepo, itemRepo, publisher)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.AppPort, "store", cfg.StoreDriver)
		errCh <- fiberApp.Listen(cfg.AppPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	if err := fiberApp.Shutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server gracefully stopped")
	return nil
}

func newApp(cfg config.Config, log *slog.Logger, userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, publisher services.EventPublisher) *fiber.App {
	return app.New(app.Deps{
		Inventory:     services.NewInventoryService(itemRepo, publisher, log),
		Auth:          services.NewAuthService(userRepo, log),
		Codec:         session.NewJWTCodec(cfg.SecretKey, cfg.SessionTTL),
		SessionCookie: cfg.SessionCookie,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.SecureCookies,
		Log:           log,
		AccessLog:     true,
	})
}

// openStores builds the credential and inventory stores for the configured driver.
func openStores(cfg config.Config, users []models.User, log *slog.Logger) (repositories.UserRepository, repositories.ItemRepository, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		return repositories.NewStaticUserRepository(users), repositories.NewMemoryItemRepository(), func() {}, nil
	}

	db, err := database.Open(cfg.StoreDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}

	userRepo := repositories.NewGORMUserRepository(db)
	if err := userRepo.Seed(users); err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	return userRepo, repositories.NewGORMItemRepository(db), closeDB, nil
}

// seedUsers hashes the built-in credential table.
func seedUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(seedCredentials))
	for _, cred := range seedCredentials {
		hash, err := services.HashPassword(cred.password)
		if err != nil {
			return nil, fmt.Errorf("seeding user %s: %w", cred.username, err)
		}
		users = append(users, models.User{Username: cred.username, PasswordHash: hash, Role: cred.role})
	}
	return users, nil
}
