package web

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/guard"
	"github.com/AditiPateria/toursandtravels/internal/observability"
	"github.com/AditiPateria/toursandtravels/internal/session"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and
// logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger))
	app.Use(observability.RequestLogger(logger))
}

// RequireSession gates a route behind an authenticated session, any role.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return requireDecision(sessions, nil)
}

// RequireRoles additionally demands one of the given roles.
func RequireRoles(sessions *session.Manager, roles ...auth.Role) fiber.Handler {
	return requireDecision(sessions, roles)
}

// requireDecision renders the guard's verdict: pass through, hold while the
// session is still hydrating, or redirect (login for anonymous visitors, home
// for missing roles).
func requireDecision(sessions *session.Manager, roles []auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch guard.Check(roles, sessions.Current()) {
		case guard.Allow:
			return c.Next()
		case guard.Pending:
			c.Set(fiber.HeaderRetryAfter, "1")
			return fiber.NewError(http.StatusServiceUnavailable, "session not resolved yet")
		case guard.RedirectToLogin:
			return c.Redirect("/login", http.StatusSeeOther)
		default:
			return c.Redirect("/", http.StatusSeeOther)
		}
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = util.ToRequestError(errors.New("panic"))
			}
			if err == nil {
				return
			}

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				c.Status(fiberErr.Code)
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"code":    http.StatusText(fiberErr.Code),
					"message": fiberErr.Message,
				}})
				err = nil
				return
			}

			reqErr := util.ToRequestError(err)
			if reqErr.HTTPStatus >= 500 {
				logger.Error("request failed", zap.Error(reqErr))
			}
			c.Status(reqErr.HTTPStatus)
			_ = c.JSON(fiber.Map{"error": fiber.Map{
				"code":    reqErr.Code,
				"message": reqErr.Message,
			}})
			err = nil
		}()
		return c.Next()
	}
}
