package middleware

import (
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

// RequireOrganization requires an organization id in the session claims.
func RequireOrganization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.OrgIDFromContext(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireEmployee requires an employee id in the session claims.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.EmpIDFromContext(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
