package payroll

import (
	"bytes"
	"log/slog"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

// SalaryGrade is the pay structure attached to an employee or org admin.
// Earnings are basic, hra, da and allowances; pf is the only deduction.
type SalaryGrade struct {
	ID             int64           `json:"gradeId,omitempty"`
	GradeCode      string          `json:"gradeCode"`
	BasicSalary    decimal.Decimal `json:"basicSalary"`
	HRA            decimal.Decimal `json:"hra"`
	DA             decimal.Decimal `json:"da"`
	Allowances     decimal.Decimal `json:"allowances"`
	PF             decimal.Decimal `json:"pf"`
	OrganizationID int64           `json:"organizationId,omitempty"`
}

// Gross is the sum of the earning components.
func (g SalaryGrade) Gross() decimal.Decimal {
	return g.BasicSalary.Add(g.HRA).Add(g.DA).Add(g.Allowances)
}

// Deductions is the provident-fund contribution.
func (g SalaryGrade) Deductions() decimal.Decimal {
	return g.PF
}

// Net is gross minus deductions. It is negative when pf exceeds gross; the
// caller is expected to flag that rather than clamp it.
func (g SalaryGrade) Net() decimal.Decimal {
	return g.Gross().Sub(g.PF)
}

// OverDeducted reports pf > gross.
func (g SalaryGrade) OverDeducted() bool {
	return g.PF.GreaterThan(g.Gross())
}

func (g SalaryGrade) Validate() error {
	var errs validator.ValidationErrors

	components := []struct {
		field string
		value decimal.Decimal
	}{
		{"basicSalary", g.BasicSalary},
		{"hra", g.HRA},
		{"da", g.DA},
		{"allowances", g.Allowances},
		{"pf", g.PF},
	}
	for _, c := range components {
		if c.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: c.field, Message: c.field + " must be non-negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if g.OverDeducted() {
		return ErrDeductionExceedsGross
	}
	return nil
}

// UnmarshalJSON coerces every amount to a number: missing, null or
// non-numeric values read as zero.
func (g *SalaryGrade) UnmarshalJSON(data []byte) error {
	var raw struct {
		GradeID        json.RawMessage `json:"gradeId"`
		SalaryGradeID  json.RawMessage `json:"salaryGradeId"`
		GradeCode      string          `json:"gradeCode"`
		BasicSalary    json.RawMessage `json:"basicSalary"`
		HRA            json.RawMessage `json:"hra"`
		DA             json.RawMessage `json:"da"`
		Allowances     json.RawMessage `json:"allowances"`
		PF             json.RawMessage `json:"pf"`
		OrganizationID json.RawMessage `json:"organizationId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := ParseAmount(raw.GradeID)
	if id.IsZero() {
		id = ParseAmount(raw.SalaryGradeID)
	}

	*g = SalaryGrade{
		ID:             id.IntPart(),
		GradeCode:      raw.GradeCode,
		BasicSalary:    ParseAmount(raw.BasicSalary),
		HRA:            ParseAmount(raw.HRA),
		DA:             ParseAmount(raw.DA),
		Allowances:     ParseAmount(raw.Allowances),
		PF:             ParseAmount(raw.PF),
		OrganizationID: ParseAmount(raw.OrganizationID).IntPart(),
	}
	return nil
}

// ParseAmount reads a JSON number or numeric string. Anything else is zero.
func ParseAmount(raw []byte) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}
	text := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return decimal.Zero
		}
		text = unquoted
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeNet returns the net pay of a grade. A missing grade is an expected
// condition for newly added staff and yields zero.
func ComputeNet(grade *SalaryGrade) decimal.Decimal {
	if grade == nil {
		slog.Warn("No salary grade provided")
		return decimal.Zero
	}
	return grade.Net()
}
