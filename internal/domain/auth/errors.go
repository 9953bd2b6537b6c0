package auth

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrRoleNotAllowed       = errors.New("role is not allowed to access this resource")
	ErrOrganizationMissing  = errors.New("organization not found, please login again")
	ErrEmployeeMissing      = errors.New("employee id missing in token")
	ErrUserMissing          = errors.New("user not authenticated, cannot change password")
	ErrPasswordChangeNeeded = errors.New("password change required")
	ErrMissingToken         = errors.New("no token received in login response")
)

// IsSessionGone reports whether err means the session's credential no longer
// exists or can no longer be used.
func IsSessionGone(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrInvalidToken)
}
