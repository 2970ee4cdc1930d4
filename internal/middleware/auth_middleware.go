package middleware

import (
	"gudang/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Route paths the gates redirect to.
const (
	LoginPath = "/login"
	IndexPath = "/"
)

// LoginRequired lets authenticated sessions through. Anonymous requests get a
// warning notification with message and are redirected to the login page.
func LoginRequired(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if !sess.IsAuthenticated() {
			sess.Flash(session.Warning, message)
			return c.Redirect(LoginPath)
		}
		return c.Next()
	}
}

// AdminRequired must run after LoginRequired. Non-admin sessions get a danger
// notification with message and are redirected to the inventory list.
func AdminRequired(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if !sess.IsAdmin() {
			sess.Flash(session.Danger, message)
			return c.Redirect(IndexPath)
		}
		return c.Next()
	}
}
