package http

import (
	"log/slog"
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/middleware"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

type SessionHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	VerifyPassword(w http.ResponseWriter, r *http.Request)
}

type SessionHandlerImpl struct {
	authService auth.AuthService
	cookie      middleware.SessionCookie
}

func NewSessionHandler(authService auth.AuthService, cookie middleware.SessionCookie) SessionHandler {
	return &SessionHandlerImpl{
		authService: authService,
		cookie:      cookie,
	}
}

// Login implements SessionHandler.
func (h *SessionHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	key, resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		slog.Warn("Login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	h.cookie.Set(w, key, resp.ExpiresAt)
	slog.Info("User logged in successfully", "role", resp.Role)
	response.SuccessWithMessage(w, "Login successful", resp)
}

// Logout implements SessionHandler.
func (h *SessionHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if key := h.cookie.Find(r); key != "" {
		if err := h.authService.Logout(r.Context(), key); err != nil {
			slog.Error("Logout error", "error", err)
			response.HandleError(w, err)
			return
		}
	}

	h.cookie.Clear(w)
	response.SuccessWithMessage(w, "Logged out successfully", auth.MessageResponse{Redirect: auth.PathLogin})
}

// Me implements SessionHandler.
func (h *SessionHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	me, err := h.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, me)
}

// ChangePassword implements SessionHandler. A successful change ends the session.
func (h *SessionHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.ChangePassword(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.cookie.Clear(w)
	response.SuccessWithMessage(w, resp.Message, resp)
}

// ForgotPassword implements SessionHandler.
func (h *SessionHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ForgotPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.ForgotPassword(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, resp.Message, resp)
}

// VerifyOTP implements SessionHandler.
func (h *SessionHandlerImpl) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("VerifyOTP decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.VerifyOTP(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, resp.Message, resp)
}

// ResetPassword implements SessionHandler.
func (h *SessionHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ResetPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.ResetPassword(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, resp.Message, resp)
}

// VerifyPassword implements SessionHandler.
func (h *SessionHandlerImpl) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("VerifyPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.VerifyPassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Password verified", nil)
}
