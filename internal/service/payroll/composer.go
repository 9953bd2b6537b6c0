package payroll

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

const (
	DefaultRemarks = "Salary disbursal request"

	duplicateErrorTag   = "Duplicate Payroll Request"
	defaultFailure      = "Failed to create salary disbursal request"
	connectivityFailure = "Unable to reach the payroll server. Please check your connection and try again."
	validationFailure   = "Please correct the highlighted fields and try again."
	duplicatePeriodText = "A salary disbursal request already exists for period %s. Please wait for approval or contact administrator."
)

var duplicateMarkers = []string{"already exists", "duplicate", "pending"}

// BuildRequest groups the selected ids by the role they are paid under.
// Entities without a salary grade are never sent. Empty groups are left out
// and blank remarks get the default text.
func BuildRequest(orgID int64, period, remarks string, employees, admins []*payroll.PayEntity) payroll.DisbursalRequest {
	if strings.TrimSpace(remarks) == "" {
		remarks = DefaultRemarks
	}
	req := payroll.DisbursalRequest{
		OrgID:    orgID,
		Period:   strings.TrimSpace(period),
		Remarks:  remarks,
		Payments: []payroll.PaymentGroup{},
	}
	groups := []struct {
		kind     payroll.EntityKind
		entities []*payroll.PayEntity
	}{
		{payroll.KindEmployee, employees},
		{payroll.KindOrgAdmin, admins},
	}
	for _, g := range groups {
		var ids []int64
		for _, e := range g.entities {
			if e.Selected && e.HasGrade() {
				ids = append(ids, e.ID)
			}
		}
		if len(ids) > 0 {
			req.Payments = append(req.Payments, payroll.PaymentGroup{Type: g.kind, IDs: ids})
		}
	}
	return req
}

// ValidateRequest checks the submission precondition locally.
func ValidateRequest(req payroll.DisbursalRequest) error {
	var errs validator.ValidationErrors

	if req.IDCount() == 0 {
		errs = append(errs, validator.ValidationError{Field: "payments", Message: payroll.ErrNothingSelected.Error()})
	}
	switch {
	case req.Period == "":
		errs = append(errs, validator.ValidationError{Field: "period", Message: payroll.ErrPeriodRequired.Error()})
	case !validator.IsValidPeriod(req.Period):
		errs = append(errs, validator.ValidationError{Field: "period", Message: payroll.ErrInvalidPeriod.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Classify turns a submission failure into an outcome the user can act on.
// period is the submitted period, reported when the backend does not name
// the conflicting one.
func Classify(err error, period string) payroll.Outcome {
	if err == nil {
		return payroll.Outcome{Type: payroll.OutcomeAccepted, Period: period}
	}

	var te *backend.TransportError
	if errors.As(err, &te) {
		return payroll.Outcome{Type: payroll.OutcomeGeneralError, Message: connectivityFailure}
	}

	var be *backend.Error
	if !errors.As(err, &be) {
		return payroll.Outcome{Type: payroll.OutcomeGeneralError, Message: defaultFailure}
	}

	msg := be.BestMessage()
	if isDuplicate(be) {
		p := be.Period
		if p == "" {
			p = period
		}
		if msg == "" {
			msg = fmt.Sprintf(duplicatePeriodText, p)
		}
		return payroll.Outcome{Type: payroll.OutcomeDuplicatePeriod, Period: p, Message: msg, StatusCode: be.Status}
	}

	if be.HasValidationErrors() {
		field := be.Field
		if field == "" {
			field = firstKey(be.ValidationErrors)
		}
		if msg == "" {
			msg = be.ValidationErrors[field]
		}
		if msg == "" {
			msg = validationFailure
		}
		return payroll.Outcome{Type: payroll.OutcomeValidationError, Field: field, Message: msg, StatusCode: be.Status}
	}

	if msg == "" {
		msg = be.StatusText
	}
	if msg == "" {
		msg = defaultFailure
	}
	return payroll.Outcome{Type: payroll.OutcomeGeneralError, Message: msg, StatusCode: be.Status}
}

func isDuplicate(be *backend.Error) bool {
	if be.Period != "" || be.Detail == duplicateErrorTag {
		return true
	}
	text := strings.ToLower(be.Message + " " + be.Detail + " " + be.Body)
	for _, marker := range duplicateMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func firstKey(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
