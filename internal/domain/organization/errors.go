package organization

import "errors"

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrSalaryGradeNotFound = errors.New("salary grade not found")
	ErrOrgAdminNotFound    = errors.New("org admin not found")

	// ErrReactivationRequired is returned when the organization was deleted
	// earlier and the registration has to be confirmed as a reactivation.
	ErrReactivationRequired = errors.New("this organization was deleted earlier, confirm reactivation to continue")
)
