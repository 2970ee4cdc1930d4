package app

import (
	"errors"
	"log/slog"
	"time"

	"gudang/internal/handlers"
	"gudang/internal/middleware"
	"gudang/internal/services"
	"gudang/internal/session"
	"gudang/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Inventory     *services.InventoryService
	Auth          *services.AuthService
	Codec         session.Codec
	SessionCookie string
	SessionTTL    time.Duration
	SecureCookies bool
	Log           *slog.Logger
	AccessLog     bool
}

// New assembles the Fiber application with all routes registered.
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "gudang",
		Views:        views.New(),
		ErrorHandler: errorHandler(deps.Log),
	})

	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	app.Use(middleware.Session(middleware.SessionConfig{
		Codec:      deps.Codec,
		CookieName: deps.SessionCookie,
		TTL:        deps.SessionTTL,
		Secure:     deps.SecureCookies,
		Log:        deps.Log,
	}))

	handlers.NewAuthHandler(deps.Auth).RegisterRoutes(app)
	handlers.NewInventoryHandler(deps.Inventory).RegisterRoutes(app)

	return app
}

func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
			return c.Status(code).SendString("Internal Server Error")
		}
		return c.Status(code).SendString(err.Error())
	}
}
