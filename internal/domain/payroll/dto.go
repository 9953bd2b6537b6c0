package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/notice"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

type WizardStep string

const (
	StepSelection WizardStep = "selection"
	StepPreview   WizardStep = "preview"
	StepSubmitted WizardStep = "submitted"
)

// SubmitTarget is the call a confirmed preview proceeds to.
const SubmitTarget = "/api/v1/organization/payroll/wizard/submit"

// ========== REQUEST DTOs ==========

type FilterRequest struct {
	Search     string `json:"search"`
	Department string `json:"department"`
}

func (r FilterRequest) ToFilter() Filter {
	department := strings.TrimSpace(r.Department)
	if department == "" {
		department = AllDepartments
	}
	return Filter{Search: r.Search, Department: department}
}

type PeriodRequest struct {
	Period  string `json:"period"`
	Remarks string `json:"remarks"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Period = strings.TrimSpace(r.Period)
	if r.Period == "" {
		errs = append(errs, validator.ValidationError{Field: "period", Message: ErrPeriodRequired.Error()})
	} else if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: ErrInvalidPeriod.Error()})
	}
	if len(r.Remarks) > 500 {
		errs = append(errs, validator.ValidationError{Field: "remarks", Message: "remarks must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type GradeResponse struct {
	GradeCode   string          `json:"grade_code,omitempty"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	HRA         decimal.Decimal `json:"hra"`
	DA          decimal.Decimal `json:"da"`
	Allowances  decimal.Decimal `json:"allowances"`
	PF          decimal.Decimal `json:"pf"`
}

type EntityResponse struct {
	Type         EntityKind      `json:"type"`
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Department   string          `json:"department,omitempty"`
	GradeCode    string          `json:"grade_code,omitempty"`
	HasGrade     bool            `json:"has_grade"`
	Grade        *GradeResponse  `json:"grade,omitempty"`
	Gross        decimal.Decimal `json:"gross"`
	Deductions   decimal.Decimal `json:"deductions"`
	Net          decimal.Decimal `json:"net"`
	OverDeducted bool            `json:"over_deducted"`
	Selected     bool            `json:"selected"`
	ShowDetails  bool            `json:"show_details"`
}

func NewEntityResponse(e *PayEntity) EntityResponse {
	resp := EntityResponse{
		Type:        e.Kind,
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.DepartmentName,
		GradeCode:   e.GradeCode,
		HasGrade:    e.HasGrade(),
		Net:         ComputeNet(e.Grade),
		Selected:    e.Selected,
		ShowDetails: e.ShowDetails,
	}
	if e.Grade != nil {
		resp.Grade = &GradeResponse{
			GradeCode:   e.Grade.GradeCode,
			BasicSalary: e.Grade.BasicSalary,
			HRA:         e.Grade.HRA,
			DA:          e.Grade.DA,
			Allowances:  e.Grade.Allowances,
			PF:          e.Grade.PF,
		}
		if resp.GradeCode == "" {
			resp.GradeCode = e.Grade.GradeCode
		}
		resp.Gross = e.Grade.Gross()
		resp.Deductions = e.Grade.Deductions()
		resp.OverDeducted = e.Grade.OverDeducted()
	}
	return resp
}

type TotalsResponse struct {
	Gross         decimal.Decimal `json:"total_gross"`
	Deductions    decimal.Decimal `json:"total_deductions"`
	Net           decimal.Decimal `json:"total_net"`
	SelectedCount int             `json:"selected_count"`
	Ungraded      []EntityRef     `json:"ungraded,omitempty"`
	OverDeducted  []EntityRef     `json:"over_deducted,omitempty"`
}

func NewTotalsResponse(t Totals) TotalsResponse {
	return TotalsResponse{
		Gross:         t.Gross,
		Deductions:    t.Deductions,
		Net:           t.Net,
		SelectedCount: t.SelectedCount,
		Ungraded:      t.Ungraded,
		OverDeducted:  t.OverDeducted,
	}
}

type FilterResponse struct {
	Search     string `json:"search"`
	Department string `json:"department"`
}

// WizardView is everything the payroll screen renders for one step.
type WizardView struct {
	Step                 WizardStep       `json:"step"`
	OrgID                int64            `json:"org_id"`
	Period               string           `json:"period"`
	Remarks              string           `json:"remarks"`
	Busy                 bool             `json:"busy"`
	Filter               FilterResponse   `json:"filter"`
	Departments          []string         `json:"departments"`
	Employees            []EntityResponse `json:"employees"`
	Admins               []EntityResponse `json:"admins"`
	SelectedEmployees    []EntityResponse `json:"selected_employees"`
	SelectedAdmins       []EntityResponse `json:"selected_admins"`
	AllEmployeesSelected bool             `json:"all_employees_selected"`
	AllAdminsSelected    bool             `json:"all_admins_selected"`
	Totals               TotalsResponse   `json:"totals"`
	Notices              []notice.Notice  `json:"notices,omitempty"`
}

type SubmitResponse struct {
	Outcome     OutcomeType   `json:"outcome"`
	DisbursalID int64         `json:"disbursal_id,omitempty"`
	Period      string        `json:"period,omitempty"`
	Message     string        `json:"message"`
	Notice      notice.Notice `json:"notice"`
	Redirect    string        `json:"redirect,omitempty"`
	StatusCode  int           `json:"-"`
	View        *WizardView   `json:"view,omitempty"`
}
