package middleware

import (
	"log/slog"
	"time"

	"gudang/internal/session"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Codec      session.Codec
	CookieName string
	TTL        time.Duration
	Secure     bool
	Log        *slog.Logger
}

// Session decodes the session cookie into the request context and writes
// the (possibly modified) session back once the handler chain returns.
// A missing or invalid cookie yields an anonymous session.
func Session(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := &session.Session{}
		if raw := c.Cookies(cfg.CookieName); raw != "" {
			decoded, err := cfg.Codec.Decode(raw)
			if err != nil {
				cfg.Log.Debug("discarding session cookie", "error", err)
			} else {
				sess = decoded
			}
		}
		c.Locals(sessionKey, sess)

		chainErr := c.Next()

		token, err := cfg.Codec.Encode(sess)
		if err != nil {
			cfg.Log.Error("failed to encode session", "error", err)
			if chainErr != nil {
				return chainErr
			}
			return err
		}
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return chainErr
	}
}

// GetSession returns the session attached by the Session middleware.
// Without the middleware it returns a fresh anonymous session.
func GetSession(c *fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(sessionKey).(*session.Session); ok {
		return sess
	}
	sess := &session.Session{}
	c.Locals(sessionKey, sess)
	return sess
}
