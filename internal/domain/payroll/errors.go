package payroll

import "errors"

var (
	ErrDeductionExceedsGross = errors.New("provident fund deduction exceeds gross salary")
	ErrEntityNotFound        = errors.New("employee or admin not found in the current selection")
	ErrInvalidEntityKind     = errors.New("invalid entity type")
	ErrNothingSelected       = errors.New("please select at least one employee or admin")
	ErrPeriodRequired        = errors.New("please select a period")
	ErrInvalidPeriod         = errors.New("period must be in YYYY-MM format")
	ErrNotInPreview          = errors.New("review the selection before submitting")
	ErrNotInSelection        = errors.New("go back to the selection step to change it")
	ErrSubmissionInProgress  = errors.New("a salary disbursal request is already being submitted")
	ErrWizardNotFound        = errors.New("no payroll selection in progress")
	ErrWizardClosed          = errors.New("payroll selection was closed")
	ErrEmployeesUnavailable  = errors.New("failed to load employees")
)
