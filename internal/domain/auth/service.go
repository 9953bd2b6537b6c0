package auth

import (
	"context"
)

type AuthService interface {
	// Login forwards the credentials to the backend, stores the returned
	// token under a new session key and reports where the user lands.
	Login(ctx context.Context, req LoginRequest) (string, LoginResponse, error)
	Logout(ctx context.Context, sessionKey string) error
	// Resolve returns the session stored under key. Expired credentials are
	// removed and reported as ErrTokenExpired.
	Resolve(ctx context.Context, key string) (Session, error)
	Me(ctx context.Context) (MeResponse, error)

	ChangePassword(ctx context.Context, req ChangePasswordRequest) (MessageResponse, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (MessageResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (MessageResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (MessageResponse, error)
	VerifyPassword(ctx context.Context, req VerifyPasswordRequest) error
}
