package bankadmin

import "strings"

// Action is the bank admin's verdict on a pending request.
type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

func ParseAction(s string) (Action, error) {
	switch Action(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	}
	return "", ErrInvalidAction
}

// DisbursalDecision is posted to the backend to approve or reject a salary
// disbursal.
type DisbursalDecision struct {
	DisbursalRequestID int64  `json:"disbursalRequestId"`
	Action             Action `json:"action"`
	Comment            string `json:"comment,omitempty"`
}

// PaymentDecision approves or rejects a vendor payment request.
type PaymentDecision struct {
	PaymentID int64  `json:"paymentId"`
	Action    Action `json:"action"`
	Comment   string `json:"comment,omitempty"`
}
