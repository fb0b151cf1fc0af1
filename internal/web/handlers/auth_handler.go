package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/session"
)

// AuthHandler exposes the session surface: login, logout, signup and the
// current-session accessor.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var creds session.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if creds.Username == "" || creds.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	claims, err := h.sessions.Login(c.UserContext(), creds)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"state": session.StateAuthenticated.String(),
		"user":  claimsView(claims),
	})
}

// Register handles POST /auth/register. Registration does not log the new
// account in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var data session.SignupData
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if data.Username == "" || data.Email == "" || data.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username, email, password required")
	}

	identity, err := h.sessions.Signup(c.UserContext(), data)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": identity})
}

// Logout handles POST /auth/logout. Always succeeds, purely local.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.JSON(fiber.Map{"state": session.StateAnonymous.String()})
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	snap := h.sessions.Current()

	resp := fiber.Map{"state": snap.State.String()}
	if snap.State == session.StateAuthenticated {
		resp["user"] = claimsView(snap.Claims)
	}
	return c.JSON(resp)
}

// LoginEntry handles GET /login, the target of guard redirects.
func (h *AuthHandler) LoginEntry(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"message": "authentication required, POST credentials to /auth/login",
	})
}

func claimsView(claims *auth.Claims) fiber.Map {
	view := fiber.Map{
		"id":       claims.ID,
		"username": claims.Username,
		"email":    claims.Email,
		"roles":    claims.Roles,
	}
	if !claims.ExpiresAt.IsZero() {
		view["expiresAt"] = claims.ExpiresAt
	}
	return view
}
