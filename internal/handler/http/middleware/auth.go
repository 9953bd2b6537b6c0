package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

// SessionResolver loads the session stored under an opaque key.
type SessionResolver interface {
	Resolve(ctx context.Context, key string) (auth.Session, error)
}

// SessionCookie describes the cookie carrying the session key.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (c SessionCookie) Set(w http.ResponseWriter, key string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    key,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Find returns the session key from the cookie, falling back to a bearer header.
func (c SessionCookie) Find(r *http.Request) string {
	return findSessionKey(r, c.fromCookie, jwtauth.TokenFromHeader)
}

func (c SessionCookie) fromCookie(r *http.Request) string {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func findSessionKey(r *http.Request, findTokenFns ...func(r *http.Request) string) string {
	for _, fn := range findTokenFns {
		if key := fn(r); key != "" {
			return key
		}
	}
	return ""
}

// Authenticate attaches the stored session to the request context. Requests
// without a usable session pass through anonymously; the guards decide.
func Authenticate(resolver SessionResolver, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			key := cookie.Find(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolver.Resolve(r.Context(), key)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
			case auth.IsSessionGone(err):
				cookie.Clear(w)
				next.ServeHTTP(w, r)
			default:
				slog.Error("Session lookup failed", "error", err)
				response.InternalServerError(w, "Unable to load session")
			}
		}
		return http.HandlerFunc(hfn)
	}
}
