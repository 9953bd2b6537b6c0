package bankadmin

import "errors"

var (
	ErrInvalidAction        = errors.New("action must be APPROVE or REJECT")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrDisbursalNotFound    = errors.New("salary disbursal request not found")
)
