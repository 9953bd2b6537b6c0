package jwt

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
)

// Decode reads the claims embedded in a bearer credential. The signature is
// NOT verified: the backend that issued the token checks it on every call, and
// the decoded claims only drive routing and display. Malformed input yields
// nil, false.
func Decode(credential string) (*auth.Claims, bool) {
	credential = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(credential), "Bearer "))
	if credential == "" {
		return nil, false
	}

	token, err := jwt.ParseString(credential, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		slog.Debug("Failed to decode credential", "error", err)
		return nil, false
	}

	private := token.PrivateClaims()
	claims := &auth.Claims{
		Subject:            token.Subject(),
		Roles:              roles(private["roles"]),
		UserID:             int64Claim(private["userId"]),
		OrgID:              int64Claim(private["orgId"]),
		EmpID:              int64Claim(private["empId"]),
		OrgStatus:          orgStatus(private["orgStatus"]),
		OrgName:            firstString(private, "organizationName", "orgName"),
		Name:               firstString(private, "name", "userName"),
		MustChangePassword: boolClaim(private["mustChangePassword"]),
		ExpiresAt:          token.Expiration(),
	}
	if claims.Subject == "" {
		claims.Subject = firstString(private, "email")
	}
	return claims, true
}

// Reader decodes credentials and rejects expired ones.
type Reader struct {
	Now func() time.Time
}

func NewReader() *Reader {
	return &Reader{Now: time.Now}
}

func (r *Reader) Read(credential string) (*auth.Claims, error) {
	claims, ok := Decode(credential)
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	now := time.Now
	if r != nil && r.Now != nil {
		now = r.Now
	}
	if auth.IsExpired(claims, now()) {
		return nil, auth.ErrTokenExpired
	}
	return claims, nil
}

func roles(v interface{}) []auth.Role {
	switch raw := v.(type) {
	case []interface{}:
		out := make([]auth.Role, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, auth.Role(s))
			}
		}
		return out
	case []string:
		out := make([]auth.Role, 0, len(raw))
		for _, s := range raw {
			if s != "" {
				out = append(out, auth.Role(s))
			}
		}
		return out
	case string:
		if raw != "" {
			return []auth.Role{auth.Role(raw)}
		}
	}
	return nil
}

func int64Claim(v interface{}) *int64 {
	var n int64
	switch raw := v.(type) {
	case float64:
		n = int64(raw)
	case int64:
		n = raw
	case int:
		n = int64(raw)
	case json.Number:
		parsed, err := raw.Int64()
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if n == 0 {
		return nil
	}
	return &n
}

func boolClaim(v interface{}) bool {
	switch raw := v.(type) {
	case bool:
		return raw
	case string:
		return strings.EqualFold(raw, "true")
	}
	return false
}

func orgStatus(v interface{}) auth.OrgStatus {
	s, _ := v.(string)
	switch status := auth.OrgStatus(strings.ToUpper(s)); status {
	case auth.OrgStatusPending, auth.OrgStatusApproved, auth.OrgStatusRejected:
		return status
	}
	return auth.OrgStatusUnknown
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
