package handlers

import (
	"errors"

	"gudang/internal/middleware"
	"gudang/internal/services"
	"gudang/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const invalidLoginMessage = "Invalid username or password. Please try again."

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get(middleware.LoginPath, h.HandleLoginForm)
	router.Post(middleware.LoginPath, h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

// LoginRequest represents the submitted login form.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// HandleLoginForm shows the login form, or sends logged-in users to the list.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	if middleware.GetSession(c).IsAuthenticated() {
		return c.Redirect(middleware.IndexPath)
	}
	return renderLogin(c, LoginRequest{})
}

// HandleLogin verifies the submitted credentials and establishes the session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	if sess.IsAuthenticated() {
		return c.Redirect(middleware.IndexPath)
	}

	req := LoginRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		sess.Flash(session.Danger, invalidLoginMessage)
		return renderLogin(c, req)
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		sess.Flash(session.Danger, invalidLoginMessage)
		return renderLogin(c, req)
	}
	if err != nil {
		return err
	}

	sess.Establish(user.Username, user.Role)
	sess.Flash(session.Success, "Login successful!")
	return c.Redirect(middleware.IndexPath)
}

// HandleLogout clears the session.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	sess.Clear()
	sess.Flash(session.Info, "You have been logged out.")
	return c.Redirect(middleware.LoginPath)
}

func renderLogin(c *fiber.Ctx, req LoginRequest) error {
	req.Password = ""
	return render(c, fiber.StatusOK, "login", "Login", fiber.Map{"Form": req})
}
