package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/forestmap/forestmap/internal/auth"
)

// UserIDKey is the request-local under which Auth stores the caller's id.
const UserIDKey = "user_id"

// Auth returns a middleware that validates bearer session tokens. Tokens are
// stateless; signature and expiry are the whole check, no store round-trip.
// Requests without a valid token never reach the protected handlers.
func Auth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		uid, err := auth.Parse(token, secret)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals(UserIDKey, uid)
		return c.Next()
	}
}
