// Package guard decides whether the current session may enter a protected
// view. Check is a pure function used by the console before running a
// command; Middleware applies the same decision to HTTP handlers.
package guard

import "github.com/gevp/console/internal/client/models"

// Decision is the outcome of Check.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Check returns RedirectLogin for an unauthenticated session, Forbidden when
// role is set and differs from the user's role, and Allow otherwise.
func Check(s models.Session, role models.Role) Decision {
	if !s.IsAuthenticated || s.User == nil {
		return RedirectLogin
	}
	if role != "" && s.User.Role != role {
		return Forbidden
	}
	return Allow
}
