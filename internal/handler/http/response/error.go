package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/audit"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/notification"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

const unreachableBackend = "Unable to reach the payroll server. Please try again."

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Please login to continue")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Session expired. Please login again.")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrRoleNotAllowed):
		Forbidden(w, "You are not allowed to access this page")
	case errors.Is(err, auth.ErrOrganizationMissing):
		Forbidden(w, "Organization not found. Please login again.")
	case errors.Is(err, auth.ErrEmployeeMissing), errors.Is(err, auth.ErrUserMissing):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrPasswordChangeNeeded):
		Error(w, http.StatusForbidden, "PASSWORD_CHANGE_REQUIRED", "Please change your password to continue", map[string]string{"redirect": auth.PathChangePassword})

	// Payroll wizard errors
	case errors.Is(err, payroll.ErrWizardNotFound), errors.Is(err, payroll.ErrEntityNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, payroll.ErrSubmissionInProgress), errors.Is(err, payroll.ErrWizardClosed),
		errors.Is(err, payroll.ErrNotInPreview), errors.Is(err, payroll.ErrNotInSelection):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidEntityKind):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrDeductionExceedsGross):
		ValidationError(w, map[string]string{"pf": err.Error()})

	// Not found
	case errors.Is(err, organization.ErrDepartmentNotFound),
		errors.Is(err, organization.ErrSalaryGradeNotFound),
		errors.Is(err, organization.ErrOrgAdminNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrSlipNotFound),
		errors.Is(err, vendor.ErrVendorNotFound),
		errors.Is(err, vendor.ErrPaymentNotFound),
		errors.Is(err, vendor.ErrReceiptNotFound),
		errors.Is(err, bankadmin.ErrOrganizationNotFound),
		errors.Is(err, bankadmin.ErrDisbursalNotFound),
		errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, err.Error())

	case errors.Is(err, organization.ErrReactivationRequired):
		Error(w, http.StatusConflict, "REACTIVATION_REQUIRED", "This organization was deleted earlier. Do you want to reactivate it?", map[string]string{"reactivate": "true"})

	case errors.Is(err, bankadmin.ErrInvalidAction), errors.Is(err, audit.ErrInvalidUserID):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, notification.ErrStreamUnsupported):
		InternalServerError(w, err.Error())

	default:
		handleBackendError(w, err)
	}
}

// handleBackendError relays backend failures with their status.
func handleBackendError(w http.ResponseWriter, err error) {
	var te *backend.TransportError
	if errors.As(err, &te) {
		slog.Error("Backend unreachable", "method", te.Method, "path", te.Path, "error", te.Err)
		BadGateway(w, unreachableBackend)
		return
	}

	var be *backend.Error
	if !errors.As(err, &be) {
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
		return
	}

	msg := be.BestMessage()
	if msg == "" {
		msg = http.StatusText(be.Status)
	}
	var details map[string]string
	if be.HasValidationErrors() {
		details = make(map[string]string, len(be.ValidationErrors)+1)
		for k, v := range be.ValidationErrors {
			details[k] = v
		}
		if be.Field != "" {
			details[be.Field] = msg
		}
	}

	switch {
	case be.Status == http.StatusUnauthorized:
		Unauthorized(w, msg)
	case be.Status == http.StatusForbidden:
		Forbidden(w, msg)
	case be.Status == http.StatusNotFound:
		NotFound(w, msg)
	case be.Status == http.StatusConflict:
		Conflict(w, msg)
	case be.Status >= 400 && be.Status < 500:
		BadRequest(w, msg, details)
	default:
		slog.Error("Backend failure", "status", be.Status, "message", msg)
		BadGateway(w, msg)
	}
}
