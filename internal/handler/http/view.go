package http

import (
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

// ViewResponse is the shell payload of one page: which view to render and
// who is looking at it.
type ViewResponse struct {
	View string           `json:"view"`
	Path string           `json:"path"`
	User *auth.MeResponse `json:"user,omitempty"`
}

type ViewHandler interface {
	Page(view string) http.HandlerFunc
}

type viewHandlerImpl struct {
	authService auth.AuthService
}

func NewViewHandler(authService auth.AuthService) ViewHandler {
	return &viewHandlerImpl{authService: authService}
}

// Page serves the named view. Access is decided by the guards mounted in front of it.
func (h *viewHandlerImpl) Page(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ViewResponse{View: view, Path: r.URL.Path}
		if _, ok := auth.SessionFromContext(r.Context()); ok {
			if me, err := h.authService.Me(r.Context()); err == nil {
				resp.User = &me
			}
		}
		response.Success(w, resp)
	}
}
