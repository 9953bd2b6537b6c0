package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

func grade(basic, hra, da, allowances, pf int64) *payroll.SalaryGrade {
	return &payroll.SalaryGrade{
		BasicSalary: decimal.NewFromInt(basic),
		HRA:         decimal.NewFromInt(hra),
		DA:          decimal.NewFromInt(da),
		Allowances:  decimal.NewFromInt(allowances),
		PF:          decimal.NewFromInt(pf),
	}
}

func payEmployee(id int64, name, dept string, g *payroll.SalaryGrade) *payroll.PayEntity {
	return &payroll.PayEntity{
		Kind:           payroll.KindEmployee,
		ID:             id,
		Name:           name,
		Email:          name + "@acme.test",
		DepartmentName: dept,
		Grade:          g,
	}
}

func payAdmin(id int64, name string, g *payroll.SalaryGrade) *payroll.PayEntity {
	return &payroll.PayEntity{
		Kind:  payroll.KindOrgAdmin,
		ID:    id,
		Name:  name,
		Email: name + "@acme.test",
		Grade: g,
	}
}

func staff() ([]*payroll.PayEntity, []*payroll.PayEntity) {
	employees := []*payroll.PayEntity{
		payEmployee(11, "ananya", "Accounts", grade(30000, 5000, 2000, 1000, 1800)),
		payEmployee(12, "ravi", "Accounts", grade(40000, 6000, 3000, 0, 2500)),
		payEmployee(13, "diana", "Sales", nil),
		payEmployee(14, "mohan", "Sales", grade(100, 0, 0, 0, 500)),
	}
	admins := []*payroll.PayEntity{
		payAdmin(21, "olga", grade(50000, 0, 0, 0, 5000)),
	}
	return employees, admins
}

func selectedIDs(entities []*payroll.PayEntity) []int64 {
	out := []int64{}
	for _, e := range entities {
		if e.Selected {
			out = append(out, e.ID)
		}
	}
	return out
}

func TestRoster_TotalsForTwoEmployees(t *testing.T) {
	r := NewRoster(staff())

	require.NoError(t, r.Toggle(payroll.KindEmployee, 11))
	require.NoError(t, r.Toggle(payroll.KindEmployee, 12))

	totals := r.Totals()
	assert.Equal(t, 2, totals.SelectedCount)
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(82700)), "net %s", totals.Net)
	assert.True(t, totals.Gross.Equal(decimal.NewFromInt(87000)), "gross %s", totals.Gross)
	assert.True(t, totals.Deductions.Equal(decimal.NewFromInt(4300)), "deductions %s", totals.Deductions)
	assert.Empty(t, totals.Ungraded)
}

func TestRoster_UngradedCountsWithoutAmount(t *testing.T) {
	r := NewRoster(staff())

	require.NoError(t, r.Toggle(payroll.KindEmployee, 11))
	require.NoError(t, r.Toggle(payroll.KindEmployee, 13))

	totals := r.Totals()
	assert.Equal(t, 2, totals.SelectedCount)
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(36200)))
	assert.Equal(t, []payroll.EntityRef{{Kind: payroll.KindEmployee, ID: 13}}, totals.Ungraded)
}

func TestRoster_OverDeductedIsFlaggedNotClamped(t *testing.T) {
	r := NewRoster(staff())

	require.NoError(t, r.Toggle(payroll.KindEmployee, 14))

	totals := r.Totals()
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(-400)), "net %s", totals.Net)
	assert.Equal(t, []payroll.EntityRef{{Kind: payroll.KindEmployee, ID: 14}}, totals.OverDeducted)
}

func TestRoster_ToggleTwiceRestores(t *testing.T) {
	r := NewRoster(staff())

	require.NoError(t, r.Toggle(payroll.KindOrgAdmin, 21))
	require.NoError(t, r.Toggle(payroll.KindOrgAdmin, 21))

	assert.Equal(t, 0, r.Totals().SelectedCount)
	assert.True(t, r.Totals().Net.IsZero())
}

func TestRoster_ToggleUnknown(t *testing.T) {
	r := NewRoster(staff())

	assert.ErrorIs(t, r.Toggle(payroll.KindEmployee, 99), payroll.ErrEntityNotFound)
	assert.ErrorIs(t, r.Toggle("ROLE_VENDOR", 11), payroll.ErrInvalidEntityKind)
}

func TestRoster_SelectAllIsIdempotentUnderStableFilter(t *testing.T) {
	employees, admins := staff()
	r := NewRoster(employees, admins)
	require.NoError(t, r.Toggle(payroll.KindEmployee, 13))
	r.SetFilter(payroll.Filter{Department: "Accounts"})

	require.NoError(t, r.SelectAll(payroll.KindEmployee))
	assert.Equal(t, []int64{11, 12, 13}, selectedIDs(employees))
	assert.True(t, r.AllSelected(payroll.KindEmployee))

	require.NoError(t, r.SelectAll(payroll.KindEmployee))
	assert.Equal(t, []int64{13}, selectedIDs(employees), "hidden entities keep their selection")
	assert.False(t, r.AllSelected(payroll.KindEmployee))
}

func TestRoster_SelectAllWithPartialSelectionSelectsRest(t *testing.T) {
	employees, admins := staff()
	r := NewRoster(employees, admins)
	require.NoError(t, r.Toggle(payroll.KindEmployee, 11))

	require.NoError(t, r.SelectAll(payroll.KindEmployee))

	assert.Equal(t, []int64{11, 12, 13, 14}, selectedIDs(employees))
	assert.Equal(t, 4, r.Totals().SelectedCount)
}

func TestRoster_FilterAppliesToAdmins(t *testing.T) {
	r := NewRoster(staff())
	r.SetFilter(payroll.Filter{Search: "OLG", Department: payroll.AllDepartments})

	visible, err := r.Visible(payroll.KindOrgAdmin)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	employees, err := r.Visible(payroll.KindEmployee)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestRoster_Departments(t *testing.T) {
	employees, admins := staff()
	employees = append(employees, payEmployee(15, "nodept", "", nil))

	r := NewRoster(employees, admins)

	assert.Equal(t, []string{payroll.AllDepartments, "Accounts", "Sales"}, r.Departments())
}

func TestRoster_ToggleDetailsDoesNotSelect(t *testing.T) {
	employees, admins := staff()
	r := NewRoster(employees, admins)

	require.NoError(t, r.ToggleDetails(payroll.KindEmployee, 12))

	assert.True(t, employees[1].ShowDetails)
	assert.False(t, employees[1].Selected)
	assert.Equal(t, 0, r.Totals().SelectedCount)
}
