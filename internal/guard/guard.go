// Package guard decides render-vs-redirect for protected views. It reads the
// session and nothing else; the backend remains the authority on what data a
// credential may actually touch.
package guard

import (
	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/session"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Allow renders the protected view.
	Allow Decision = iota
	// Pending means hydration has not finished; callers hold the render
	// instead of flashing a redirect.
	Pending
	// RedirectToLogin sends an anonymous visitor to the login entry point.
	RedirectToLogin
	// RedirectToHome sends an authenticated visitor without the required
	// role back home.
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Pending:
		return "pending"
	case RedirectToLogin:
		return "redirect_to_login"
	default:
		return "redirect_to_home"
	}
}

// Check decides whether the current session may enter a view requiring any
// one of the given roles. An empty requirement admits any authenticated
// session; a non-empty one matches on intersection.
func Check(required []auth.Role, snap session.Snapshot) Decision {
	switch snap.State {
	case session.StateUnresolved:
		return Pending
	case session.StateAnonymous:
		return RedirectToLogin
	}

	if len(required) == 0 {
		return Allow
	}
	if snap.Claims != nil && auth.HasAny(snap.Claims.Roles, required) {
		return Allow
	}
	return RedirectToHome
}
