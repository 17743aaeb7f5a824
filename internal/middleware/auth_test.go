package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/forestmap/forestmap/internal/auth"
)

func setupAuthApp(t *testing.T, secret []byte) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", Auth(secret), func(c *fiber.Ctx) error {
		uid, _ := c.Locals(UserIDKey).(string)
		if uid == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "no user id attached")
		}
		return c.JSON(fiber.Map{"user_id": uid})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authz string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	app := setupAuthApp(t, []byte("secret"))
	if status := request(t, app, ""); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	app := setupAuthApp(t, []byte("secret"))
	if status := request(t, app, "Token abc"); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	secret := []byte("secret")
	app := setupAuthApp(t, secret)
	token, err := auth.Sign("user-1", secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if status := request(t, app, "Bearer "+token); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestAuthRejectsForeignSignature(t *testing.T) {
	app := setupAuthApp(t, []byte("secret"))
	token, err := auth.Sign("user-1", []byte("another-secret"), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if status := request(t, app, "Bearer "+token); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestAuthForwardsValidToken(t *testing.T) {
	secret := []byte("secret")
	app := setupAuthApp(t, secret)
	token, err := auth.Sign("user-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if status := request(t, app, "Bearer "+token); status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}
