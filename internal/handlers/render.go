package handlers

import (
	"gudang/internal/middleware"
	"gudang/internal/views"

	"github.com/gofiber/fiber/v2"
)

// render draws page inside the shared layout. Queued notifications are
// consumed, and the current user is exposed to the layout.
func render(c *fiber.Ctx, status int, page, title string, data fiber.Map) error {
	sess := middleware.GetSession(c)
	bind := fiber.Map{
		"Title":    title,
		"Username": sess.Username,
		"Role":     sess.Role,
		"Flashes":  sess.PopFlashes(),
	}
	for k, v := range data {
		bind[k] = v
	}
	return c.Status(status).Render(page, bind, views.Layout)
}
