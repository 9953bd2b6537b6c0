package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityKind tags a pay entity with the role it is paid under.
type EntityKind string

const (
	KindEmployee EntityKind = "ROLE_EMPLOYEE"
	KindOrgAdmin EntityKind = "ROLE_ORG_ADMIN"
)

func ParseEntityKind(s string) (EntityKind, error) {
	switch s {
	case "employee", "employees", string(KindEmployee):
		return KindEmployee, nil
	case "admin", "admins", "org-admin", "org-admins", string(KindOrgAdmin):
		return KindOrgAdmin, nil
	}
	return "", ErrInvalidEntityKind
}

// PayEntity is an employee or org admin that can be included in a disbursal.
// Selected and ShowDetails are view state only and never leave the gateway.
type PayEntity struct {
	Kind           EntityKind
	ID             int64
	Name           string
	Email          string
	Phone          string
	DepartmentID   *int64
	DepartmentName string
	GradeCode      string
	Grade          *SalaryGrade

	Selected    bool
	ShowDetails bool
}

func (e *PayEntity) HasGrade() bool {
	return e.Grade != nil
}

func (e *PayEntity) Ref() EntityRef {
	return EntityRef{Kind: e.Kind, ID: e.ID}
}

type EntityRef struct {
	Kind EntityKind `json:"type"`
	ID   int64      `json:"id"`
}

// Totals is the running aggregate over the current selection.
type Totals struct {
	Gross         decimal.Decimal
	Deductions    decimal.Decimal
	Net           decimal.Decimal
	SelectedCount int
	Ungraded      []EntityRef
	OverDeducted  []EntityRef
}

// PaymentGroup lists the ids paid under one role.
type PaymentGroup struct {
	Type EntityKind `json:"type"`
	IDs  []int64    `json:"ids"`
}

// DisbursalRequest is the batch submitted to the backend for approval.
type DisbursalRequest struct {
	OrgID    int64          `json:"orgId"`
	Period   string         `json:"period"`
	Remarks  string         `json:"remarks"`
	Payments []PaymentGroup `json:"payments"`
}

// IDCount returns the number of ids across all groups.
func (r DisbursalRequest) IDCount() int {
	n := 0
	for _, g := range r.Payments {
		n += len(g.IDs)
	}
	return n
}

// DisbursalLine is one payee of a disbursal as reported by the backend.
type DisbursalLine struct {
	LineID        int64           `json:"lineId"`
	EmployeeName  string          `json:"employeeName"`
	EmployeeEmail string          `json:"employeeEmail"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	Status        string          `json:"status"`
}

// Disbursal is a salary disbursal request as stored by the backend.
type Disbursal struct {
	DisbursalID int64           `json:"disbursalId"`
	OrgID       int64           `json:"orgId"`
	OrgName     string          `json:"orgName,omitempty"`
	Period      string          `json:"period"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Remarks     string          `json:"remarks,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	Lines       []DisbursalLine `json:"lines,omitempty"`
}

type OutcomeType string

const (
	OutcomeAccepted        OutcomeType = "ACCEPTED"
	OutcomeDuplicatePeriod OutcomeType = "DUPLICATE_PERIOD"
	OutcomeValidationError OutcomeType = "VALIDATION_ERROR"
	OutcomeGeneralError    OutcomeType = "GENERAL_ERROR"
)

// Outcome is the classified result of a disbursal submission.
type Outcome struct {
	Type        OutcomeType
	DisbursalID int64
	Period      string
	Field       string
	Message     string
	StatusCode  int
}

func (o Outcome) Accepted() bool {
	return o.Type == OutcomeAccepted
}
