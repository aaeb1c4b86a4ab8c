package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gevp/console/internal/client/models"
)

// LoginPath is where unauthenticated requests are redirected.
const LoginPath = "/login"

// SessionFunc returns the session a request runs under.
type SessionFunc func(r *http.Request) models.Session

// Middleware protects next with Check. Unauthenticated requests are sent to
// LoginPath with a next parameter (303); forbidden ones get a 403 from
// forbidden, or a plain text response when forbidden is nil.
func Middleware(session SessionFunc, role models.Role, forbidden http.Handler) func(http.Handler) http.Handler {
	if forbidden == nil {
		forbidden = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not authorized", http.StatusForbidden)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Check(session(r), role) {
			case RedirectLogin:
				http.Redirect(w, r, LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
			case Forbidden:
				forbidden.ServeHTTP(w, r)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// LoginURL returns the login path carrying next as the return target.
func LoginURL(next string) string {
	if next == "" || next == LoginPath {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"next": {next}}.Encode()
}

// SafeNext returns next when it is a local absolute path, "/" otherwise.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" {
		return "/"
	}
	return next
}
