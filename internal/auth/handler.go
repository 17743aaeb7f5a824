package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/forestmap/forestmap/internal/user"
)

// Handler exposes the signup/login/profile endpoints.
type Handler struct {
	users  *user.Service
	secret []byte
	ttl    time.Duration
}

// NewHandler constructs the auth HTTP handler. The same secret and expiry
// apply to tokens minted on signup and on login.
func NewHandler(users *user.Service, secret []byte, ttl time.Duration) *Handler {
	return &Handler{users: users, secret: secret, ttl: ttl}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Signup registers a new account and returns a session token.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if errs := user.ValidateSignup(req.Email, req.Password, req.Phone); len(errs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	created, err := h.users.Register(c.UserContext(), req.Email, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"errors": []user.FieldError{{Field: "email", Message: user.ErrEmailTaken.Error()}},
			})
		}
		return fiber.NewError(http.StatusInternalServerError, "account storage failure")
	}

	return h.respondWithToken(c, created.ID)
}

// Login verifies credentials and returns a session token. Unknown email and
// wrong password produce the identical response.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if errs := user.ValidateLogin(req.Email, req.Password); len(errs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	authed, err := h.users.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": user.ErrInvalidCredentials.Error()})
		}
		return fiber.NewError(http.StatusInternalServerError, "account storage failure")
	}

	return h.respondWithToken(c, authed.ID)
}

// Me returns the authenticated caller's record. The password hash never
// leaves the store.
func (h *Handler) Me(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	u, err := h.users.Get(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "user not found")
		}
		return fiber.NewError(http.StatusInternalServerError, "account storage failure")
	}
	return c.Status(http.StatusOK).JSON(profileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	})
}

func (h *Handler) respondWithToken(c *fiber.Ctx, userID string) error {
	token, err := Sign(userID, h.secret, h.ttl)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "token issuance failure")
	}
	return c.Status(http.StatusOK).JSON(tokenResponse{Token: token})
}
