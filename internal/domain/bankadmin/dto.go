package bankadmin

import (
	"strings"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		return validator.ValidationErrors{{Field: "reason", Message: "a rejection reason is required"}}
	}
	if len(r.Reason) > 500 {
		return validator.ValidationErrors{{Field: "reason", Message: "reason must not exceed 500 characters"}}
	}
	return nil
}

// DeletionDecisionRequest resolves an organization's request to be removed.
type DeletionDecisionRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

func (r *DeletionDecisionRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if !r.Approve && r.Reason == "" {
		return validator.ValidationErrors{{Field: "reason", Message: "a reason is required when declining a deletion"}}
	}
	return nil
}

type DecisionRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseAction(r.Action); err != nil {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be APPROVE or REJECT"})
	} else if Action(strings.ToUpper(strings.TrimSpace(r.Action))) == ActionReject && validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{Field: "comment", Message: "a comment is required when rejecting"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
