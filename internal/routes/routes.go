package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/forestmap/forestmap/internal/auth"
	"github.com/forestmap/forestmap/internal/config"
	"github.com/forestmap/forestmap/internal/logging"
	"github.com/forestmap/forestmap/internal/middleware"
	"github.com/forestmap/forestmap/internal/user"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Credential store: Postgres when available, in-memory in dev runs.
	var repo user.Repository
	if d.DB != nil {
		repo = user.NewPostgresRepository(d.DB)
	} else {
		repo = user.NewMemoryRepository()
	}
	users := user.NewService(repo)

	secret := []byte(d.Cfg.JWTSecret)
	handler := auth.NewHandler(users, secret, d.Cfg.TokenTTL)

	RegisterAuthRoutes(app, handler, middleware.Auth(secret))

	return nil
}
