package auth

import "context"

// AccountRepository forwards credential operations to the identity backend.
type AccountRepository interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) (string, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (string, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error)
	VerifyPassword(ctx context.Context, email, password string) error
}
