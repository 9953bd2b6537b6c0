package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

// Decision is the outcome of one guarded navigation.
type Decision struct {
	Allow    bool
	Redirect string
	Err      error
}

// Evaluate decides a protected navigation from the decoded claims alone.
// Claims are only read. UI gating is advisory: the backend re-checks every call.
func Evaluate(claims *auth.Claims, now time.Time, enforcePasswordChange bool, allowed ...auth.Role) Decision {
	if claims == nil || auth.IsExpired(claims, now) {
		return Decision{Redirect: auth.PathLogin, Err: auth.ErrNotAuthenticated}
	}
	if len(allowed) > 0 && !auth.HasAnyRole(claims.Role(), allowed...) {
		return Decision{Redirect: auth.PathUnauthorized, Err: auth.ErrRoleNotAllowed}
	}
	if enforcePasswordChange && claims.MustChangePassword {
		return Decision{Redirect: auth.PathChangePassword, Err: auth.ErrPasswordChangeNeeded}
	}
	return Decision{Allow: true}
}

// RequireRoles admits sessions whose role is in roles. An empty list admits
// any signed-in user. Pending password changes are sent to the change-password page.
func RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return guard(true, roles)
}

// RequireSession admits any signed-in user, including one that still has to
// change the password.
func RequireSession(next http.Handler) http.Handler {
	return guard(false, nil)(next)
}

func guard(enforcePasswordChange bool, roles []auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims *auth.Claims
			if s, ok := auth.SessionFromContext(r.Context()); ok {
				claims = s.Claims
			}

			d := Evaluate(claims, time.Now(), enforcePasswordChange, roles...)
			if d.Allow {
				next.ServeHTTP(w, r)
				return
			}
			if IsNavigation(r) {
				http.Redirect(w, r, d.Redirect, http.StatusSeeOther)
				return
			}
			response.HandleError(w, d.Err)
		})
	}
}

// PublicOnly keeps signed-in users away from pages such as the login form.
func PublicOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := auth.SessionFromContext(r.Context())
		if !ok || auth.IsExpired(s.Claims, time.Now()) {
			next.ServeHTTP(w, r)
			return
		}

		target := auth.DashboardFor(s.Claims.Role())
		if target == r.URL.Path {
			// roles without a dashboard land on the public root
			next.ServeHTTP(w, r)
			return
		}
		if IsNavigation(r) {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		response.Error(w, http.StatusConflict, "ALREADY_AUTHENTICATED", "You are already signed in", map[string]string{"redirect": target})
	})
}

// IsNavigation reports whether r is a browser page load rather than an API call.
func IsNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
