package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/forestmap/forestmap/internal/auth"
)

// RegisterAuthRoutes wires the public credential endpoints and the token
// protected profile route. The gate runs before Me so unauthenticated
// requests never reach handler logic.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, gate fiber.Handler) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Get("/me", gate, h.Me)
}
