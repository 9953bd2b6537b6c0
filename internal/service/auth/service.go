package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/credential"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/jwt"
)

const (
	msgPasswordChanged = "Password changed successfully! Please log in again with your new password."
	msgOTPSent         = "OTP sent to your email"
	msgOTPVerified     = "OTP verified successfully"
	msgPasswordReset   = "Password reset successfully"
)

// LogoutHook releases per-session state such as open wizards or event streams.
type LogoutHook func(sessionKey string)

type AuthServiceImpl struct {
	accounts auth.AccountRepository
	store    credential.Store
	reader   *jwt.Reader
	ttl      time.Duration
	hooks    []LogoutHook
}

func NewAuthService(accounts auth.AccountRepository, store credential.Store, reader *jwt.Reader, ttl time.Duration, hooks ...LogoutHook) auth.AuthService {
	return &AuthServiceImpl{
		accounts: accounts,
		store:    store,
		reader:   reader,
		ttl:      ttl,
		hooks:    hooks,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (string, auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return "", auth.LoginResponse{}, err
	}

	token, err := a.accounts.Login(ctx, req)
	if err != nil {
		return "", auth.LoginResponse{}, err
	}
	if strings.TrimSpace(token.Token) == "" {
		return "", auth.LoginResponse{}, auth.ErrMissingToken
	}

	claims, err := a.reader.Read(token.Token)
	if err != nil {
		return "", auth.LoginResponse{}, err
	}

	key := uuid.NewString()
	if err := a.store.Set(ctx, key, token.Token, a.lifetime(claims)); err != nil {
		return "", auth.LoginResponse{}, fmt.Errorf("failed to store credential: %w", err)
	}

	redirect := auth.DashboardFor(claims.Role())
	if claims.MustChangePassword {
		redirect = auth.PathChangePassword
	}

	slog.Info("User logged in", "email", claims.Subject, "role", claims.Role())
	return key, auth.LoginResponse{
		Redirect:           redirect,
		Role:               claims.Role(),
		MustChangePassword: claims.MustChangePassword,
		ExpiresAt:          claims.ExpiresAt,
	}, nil
}

// lifetime keeps the stored credential no longer than the token itself.
func (a *AuthServiceImpl) lifetime(claims *auth.Claims) time.Duration {
	ttl := a.ttl
	if claims.ExpiresAt.IsZero() {
		return ttl
	}
	untilExpiry := time.Until(claims.ExpiresAt)
	if ttl <= 0 || untilExpiry < ttl {
		return untilExpiry
	}
	return ttl
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, sessionKey string) error {
	if sessionKey == "" {
		return nil
	}
	if err := a.store.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	for _, hook := range a.hooks {
		hook(sessionKey)
	}
	return nil
}

// Resolve implements auth.AuthService.
func (a *AuthServiceImpl) Resolve(ctx context.Context, key string) (auth.Session, error) {
	if key == "" {
		return auth.Session{}, auth.ErrNotAuthenticated
	}
	token, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			return auth.Session{}, auth.ErrNotAuthenticated
		}
		return auth.Session{}, fmt.Errorf("failed to load credential: %w", err)
	}

	claims, err := a.reader.Read(token)
	if err != nil {
		// Unreadable or expired credentials are treated as absent from now on.
		if logoutErr := a.Logout(ctx, key); logoutErr != nil {
			slog.Warn("Failed to remove stale credential", "error", logoutErr)
		}
		return auth.Session{}, err
	}
	return auth.Session{Key: key, Credential: token, Claims: claims}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	s, ok := auth.SessionFromContext(ctx)
	if !ok {
		return auth.MeResponse{}, auth.ErrNotAuthenticated
	}
	return auth.NewMeResponse(s.Claims), nil
}

// ChangePassword implements auth.AuthService. A changed password invalidates
// the session so the next login carries fresh claims.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) (auth.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.MessageResponse{}, err
	}
	s, ok := auth.SessionFromContext(ctx)
	if !ok {
		return auth.MessageResponse{}, auth.ErrNotAuthenticated
	}
	if s.Claims.UserID == nil {
		return auth.MessageResponse{}, auth.ErrUserMissing
	}

	msg, err := a.accounts.ChangePassword(ctx, *s.Claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return auth.MessageResponse{}, err
	}
	if err := a.Logout(ctx, s.Key); err != nil {
		return auth.MessageResponse{}, err
	}
	return auth.MessageResponse{Message: orDefault(msg, msgPasswordChanged), Redirect: auth.PathLogin}, nil
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) (auth.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.MessageResponse{}, err
	}
	msg, err := a.accounts.ForgotPassword(ctx, req)
	if err != nil {
		return auth.MessageResponse{}, err
	}
	return auth.MessageResponse{Message: orDefault(msg, msgOTPSent)}, nil
}

// VerifyOTP implements auth.AuthService.
func (a *AuthServiceImpl) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest) (auth.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.MessageResponse{}, err
	}
	msg, err := a.accounts.VerifyOTP(ctx, req)
	if err != nil {
		return auth.MessageResponse{}, err
	}
	return auth.MessageResponse{Message: orDefault(msg, msgOTPVerified)}, nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) (auth.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.MessageResponse{}, err
	}
	msg, err := a.accounts.ResetPassword(ctx, req)
	if err != nil {
		return auth.MessageResponse{}, err
	}
	return auth.MessageResponse{Message: orDefault(msg, msgPasswordReset), Redirect: auth.PathLogin}, nil
}

// VerifyPassword implements auth.AuthService.
func (a *AuthServiceImpl) VerifyPassword(ctx context.Context, req auth.VerifyPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s, ok := auth.SessionFromContext(ctx)
	if !ok {
		return auth.ErrNotAuthenticated
	}
	return a.accounts.VerifyPassword(ctx, s.Claims.Subject, req.Password)
}

func orDefault(msg, fallback string) string {
	if msg = strings.TrimSpace(msg); msg != "" {
		return msg
	}
	return fallback
}
