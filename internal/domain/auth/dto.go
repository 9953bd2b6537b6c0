package auth

import (
	"strings"
	"time"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse is the backend login reply.
type TokenResponse struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "currentPassword",
			Message: "current password is required",
		})
	}
	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "new password is required",
		})
	} else if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "new password must be at least 6 characters long",
		})
	} else if r.NewPassword == r.CurrentPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "new password must differ from the current password",
		})
	}
	if r.ConfirmPassword != r.NewPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirmPassword",
			Message: "passwords do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		return validator.ValidationErrors{{Field: "email", Message: "email must be a valid email address"}}
	}
	r.Email = strings.TrimSpace(r.Email)
	return nil
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *VerifyOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if len(r.OTP) != 6 || !validator.IsNumeric(r.OTP) {
		errs = append(errs, validator.ValidationError{Field: "otp", Message: "otp must be 6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	otp := VerifyOTPRequest{Email: r.Email, OTP: r.OTP}
	if err := otp.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "newPassword", Message: "new password must be at least 6 characters long"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// VerifyPasswordRequest re-confirms the signed-in user's password before a
// sensitive screen such as the audit log.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

func (r *VerifyPasswordRequest) Validate() error {
	if validator.IsEmpty(r.Password) {
		return validator.ValidationErrors{{Field: "password", Message: "password is required"}}
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type LoginResponse struct {
	Redirect           string    `json:"redirect"`
	Role               Role      `json:"role"`
	MustChangePassword bool      `json:"must_change_password"`
	ExpiresAt          time.Time `json:"expires_at,omitempty"`
}

type MeResponse struct {
	Email              string    `json:"email"`
	Name               string    `json:"name,omitempty"`
	Role               Role      `json:"role"`
	Roles              []Role    `json:"roles"`
	UserID             *int64    `json:"user_id,omitempty"`
	OrgID              *int64    `json:"org_id,omitempty"`
	OrgName            string    `json:"org_name,omitempty"`
	OrgStatus          OrgStatus `json:"org_status"`
	EmpID              *int64    `json:"emp_id,omitempty"`
	MustChangePassword bool      `json:"must_change_password"`
	Dashboard          string    `json:"dashboard"`
	ExpiresAt          time.Time `json:"expires_at,omitempty"`
}

func NewMeResponse(c *Claims) MeResponse {
	return MeResponse{
		Email:              c.Subject,
		Name:               c.Name,
		Role:               c.Role(),
		Roles:              c.Roles,
		UserID:             c.UserID,
		OrgID:              c.OrgID,
		OrgName:            c.OrgName,
		OrgStatus:          c.OrgStatus,
		EmpID:              c.EmpID,
		MustChangePassword: c.MustChangePassword,
		Dashboard:          DashboardFor(c.Role()),
		ExpiresAt:          c.ExpiresAt,
	}
}

type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}
