package auth

import "time"

type OrgStatus string

const (
	OrgStatusPending  OrgStatus = "PENDING"
	OrgStatusApproved OrgStatus = "APPROVED"
	OrgStatusRejected OrgStatus = "REJECTED"
	OrgStatusUnknown  OrgStatus = "UNKNOWN"
)

// Claims are the fields carried by the login credential. They are decoded on
// the client side without signature verification, so they are only fit for
// routing and display decisions; the backend re-authorizes every call.
type Claims struct {
	Subject            string
	Roles              []Role
	UserID             *int64
	OrgID              *int64
	EmpID              *int64
	OrgStatus          OrgStatus
	OrgName            string
	Name               string
	MustChangePassword bool
	ExpiresAt          time.Time
}

// Role returns the effective role, which is the first one issued.
func (c *Claims) Role() Role {
	if c == nil || len(c.Roles) == 0 {
		return ""
	}
	return c.Roles[0]
}

// IsExpired reports whether the credential has expired at now. Claims without
// an expiry never expire on the client side.
func IsExpired(c *Claims, now time.Time) bool {
	if c == nil {
		return true
	}
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}
