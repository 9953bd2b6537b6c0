package backend

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
)

func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var out auth.TokenResponse
	err := c.post(ctx, "/auth/login", req, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, userID int64, current, next string) (string, error) {
	body := map[string]string{"oldPassword": current, "newPassword": next}
	var out string
	err := c.put(ctx, pathf("/users/%d/change-password", userID), nil, body, &out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) (string, error) {
	var out string
	err := c.post(ctx, "/auth/forgot-password", req, &out)
	return out, err
}

func (c *Client) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest) (string, error) {
	var out string
	err := c.post(ctx, "/auth/verify-otp", req, &out)
	return out, err
}

func (c *Client) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) (string, error) {
	var out string
	err := c.post(ctx, "/auth/reset-password", req, &out)
	return out, err
}

// VerifyPassword succeeds when the backend accepts the password for email.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.post(ctx, "/auth/verify-password", body, nil)
}
