package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/credential"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/jwt"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

type fakeAccounts struct {
	token       string
	loginErr    error
	changedFor  int64
	verifiedFor string
}

func (f *fakeAccounts) Login(_ context.Context, _ auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{Token: f.token}, f.loginErr
}

func (f *fakeAccounts) ChangePassword(_ context.Context, userID int64, _, _ string) (string, error) {
	f.changedFor = userID
	return "", nil
}

func (f *fakeAccounts) ForgotPassword(_ context.Context, _ auth.ForgotPasswordRequest) (string, error) {
	return "OTP sent to your email", nil
}

func (f *fakeAccounts) VerifyOTP(_ context.Context, _ auth.VerifyOTPRequest) (string, error) {
	return "", nil
}

func (f *fakeAccounts) ResetPassword(_ context.Context, _ auth.ResetPasswordRequest) (string, error) {
	return "Password reset", nil
}

func (f *fakeAccounts) VerifyPassword(_ context.Context, email, _ string) error {
	f.verifiedFor = email
	return nil
}

func token(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	_, s, err := jwtauth.New("HS256", []byte("backend-secret"), nil).Encode(claims)
	require.NoError(t, err)
	return s
}

func newService(accounts *fakeAccounts, hooks ...LogoutHook) (auth.AuthService, *credential.MemoryStore) {
	store := credential.NewMemoryStore()
	return NewAuthService(accounts, store, jwt.NewReader(), time.Hour, hooks...), store
}

func TestAuthService_LoginStoresCredential(t *testing.T) {
	tok := token(t, map[string]interface{}{
		"sub":   "owner@acme.test",
		"roles": []string{"ROLE_ORGANIZATION"},
		"orgId": 42,
		"exp":   time.Now().Add(2 * time.Hour).Unix(),
	})
	svc, store := newService(&fakeAccounts{token: tok})

	key, resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: " owner@acme.test ", Password: "secret"})
	require.NoError(t, err)

	assert.NotEmpty(t, key)
	assert.Equal(t, auth.PathOrganizationDashboard, resp.Redirect)
	assert.Equal(t, auth.RoleOrganization, resp.Role)

	stored, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, tok, stored)

	session, err := svc.Resolve(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", session.Claims.Subject)
}

func TestAuthService_LoginMustChangePassword(t *testing.T) {
	tok := token(t, map[string]interface{}{
		"sub":                "emp@acme.test",
		"roles":              []string{"ROLE_EMPLOYEE"},
		"mustChangePassword": true,
	})
	svc, _ := newService(&fakeAccounts{token: tok})

	_, resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "emp@acme.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, auth.PathChangePassword, resp.Redirect)
	assert.True(t, resp.MustChangePassword)
}

func TestAuthService_LoginFailures(t *testing.T) {
	cases := []struct {
		name     string
		accounts *fakeAccounts
		req      auth.LoginRequest
		check    func(t *testing.T, err error)
	}{
		{
			name:     "invalid form",
			accounts: &fakeAccounts{},
			req:      auth.LoginRequest{Email: "not-an-email"},
			check: func(t *testing.T, err error) {
				var verrs validator.ValidationErrors
				assert.True(t, errors.As(err, &verrs))
			},
		},
		{
			name:     "backend rejects",
			accounts: &fakeAccounts{loginErr: &backend.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"}},
			req:      auth.LoginRequest{Email: "a@acme.test", Password: "x"},
			check: func(t *testing.T, err error) {
				assert.True(t, backend.IsStatus(err, http.StatusUnauthorized))
			},
		},
		{
			name:     "no token",
			accounts: &fakeAccounts{},
			req:      auth.LoginRequest{Email: "a@acme.test", Password: "x"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, auth.ErrMissingToken)
			},
		},
		{
			name:     "garbage token",
			accounts: &fakeAccounts{token: "not.a.jwt"},
			req:      auth.LoginRequest{Email: "a@acme.test", Password: "x"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, _ := newService(c.accounts)
			key, _, err := svc.Login(context.Background(), c.req)
			assert.Empty(t, key)
			c.check(t, err)
		})
	}
}

func TestAuthService_ResolveExpiredRemovesCredential(t *testing.T) {
	var closed []string
	svc, store := newService(&fakeAccounts{}, func(key string) { closed = append(closed, key) })
	expired := token(t, map[string]interface{}{
		"sub":   "owner@acme.test",
		"roles": []string{"ROLE_ORGANIZATION"},
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, store.Set(context.Background(), "k1", expired, 0))

	_, err := svc.Resolve(context.Background(), "k1")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)

	_, err = store.Get(context.Background(), "k1")
	assert.ErrorIs(t, err, credential.ErrNotFound)
	assert.Equal(t, []string{"k1"}, closed)

	_, err = svc.Resolve(context.Background(), "k1")
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestAuthService_LogoutRunsHooks(t *testing.T) {
	var closed []string
	svc, store := newService(&fakeAccounts{}, func(key string) { closed = append(closed, key) })
	require.NoError(t, store.Set(context.Background(), "k1", "tok", 0))

	require.NoError(t, svc.Logout(context.Background(), "k1"))

	assert.Equal(t, []string{"k1"}, closed)
	_, err := store.Get(context.Background(), "k1")
	assert.ErrorIs(t, err, credential.ErrNotFound)
}

func sessionContext(userID int64) context.Context {
	return auth.WithSession(context.Background(), auth.Session{
		Key:        "k1",
		Credential: "tok",
		Claims:     &auth.Claims{Subject: "emp@acme.test", Roles: []auth.Role{auth.RoleEmployee}, UserID: &userID},
	})
}

func TestAuthService_ChangePasswordLogsOut(t *testing.T) {
	accounts := &fakeAccounts{}
	svc, store := newService(accounts)
	require.NoError(t, store.Set(context.Background(), "k1", "tok", 0))

	resp, err := svc.ChangePassword(sessionContext(9), auth.ChangePasswordRequest{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
		ConfirmPassword: "new-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), accounts.changedFor)
	assert.Equal(t, msgPasswordChanged, resp.Message)
	assert.Equal(t, auth.PathLogin, resp.Redirect)
	_, err = store.Get(context.Background(), "k1")
	assert.ErrorIs(t, err, credential.ErrNotFound)
}

func TestAuthService_ChangePasswordValidation(t *testing.T) {
	svc, _ := newService(&fakeAccounts{})

	_, err := svc.ChangePassword(sessionContext(9), auth.ChangePasswordRequest{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
		ConfirmPassword: "other",
	})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "confirmPassword", verrs[0].Field)
}

func TestAuthService_PasswordFlows(t *testing.T) {
	accounts := &fakeAccounts{}
	svc, _ := newService(accounts)
	ctx := context.Background()

	resp, err := svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "emp@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "OTP sent to your email", resp.Message)

	resp, err = svc.VerifyOTP(ctx, auth.VerifyOTPRequest{Email: "emp@acme.test", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, msgOTPVerified, resp.Message)

	_, err = svc.VerifyOTP(ctx, auth.VerifyOTPRequest{Email: "emp@acme.test", OTP: "12ab56"})
	assert.Error(t, err)

	resp, err = svc.ResetPassword(ctx, auth.ResetPasswordRequest{Email: "emp@acme.test", OTP: "123456", NewPassword: "new-secret"})
	require.NoError(t, err)
	assert.Equal(t, auth.PathLogin, resp.Redirect)

	require.NoError(t, svc.VerifyPassword(sessionContext(9), auth.VerifyPasswordRequest{Password: "secret"}))
	assert.Equal(t, "emp@acme.test", accounts.verifiedFor)
}

func TestAuthService_Me(t *testing.T) {
	svc, _ := newService(&fakeAccounts{})

	_, err := svc.Me(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)

	me, err := svc.Me(sessionContext(9))
	require.NoError(t, err)
	assert.Equal(t, auth.PathEmployeeDashboard, me.Dashboard)
}
