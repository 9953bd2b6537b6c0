package auth

import "context"

// Session is the authenticated view of one browser: the key its credential is
// stored under, the credential itself and the claims decoded from it.
type Session struct {
	Key        string
	Credential string
	Claims     *Claims
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok || s.Credential == "" || s.Claims == nil {
		return Session{}, false
	}
	return s, true
}

// OrgIDFromContext returns the organization of the signed-in user.
func OrgIDFromContext(ctx context.Context) (int64, error) {
	s, ok := SessionFromContext(ctx)
	if !ok {
		return 0, ErrNotAuthenticated
	}
	if s.Claims.OrgID == nil || *s.Claims.OrgID <= 0 {
		return 0, ErrOrganizationMissing
	}
	return *s.Claims.OrgID, nil
}

// EmpIDFromContext returns the employee record of the signed-in user.
func EmpIDFromContext(ctx context.Context) (int64, error) {
	s, ok := SessionFromContext(ctx)
	if !ok {
		return 0, ErrNotAuthenticated
	}
	if s.Claims.EmpID == nil || *s.Claims.EmpID <= 0 {
		return 0, ErrEmployeeMissing
	}
	return *s.Claims.EmpID, nil
}
