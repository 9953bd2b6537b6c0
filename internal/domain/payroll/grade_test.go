package payroll

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

func grade(basic, hra, da, allowances, pf int64) *SalaryGrade {
	return &SalaryGrade{
		BasicSalary: decimal.NewFromInt(basic),
		HRA:         decimal.NewFromInt(hra),
		DA:          decimal.NewFromInt(da),
		Allowances:  decimal.NewFromInt(allowances),
		PF:          decimal.NewFromInt(pf),
	}
}

func TestComputeNet(t *testing.T) {
	cases := []struct {
		name  string
		grade *SalaryGrade
		want  int64
	}{
		{"typical", grade(30000, 5000, 2000, 1000, 1800), 36200},
		{"no allowances", grade(40000, 6000, 3000, 0, 2500), 46500},
		{"pf equals gross", grade(1000, 0, 0, 0, 1000), 0},
		{"all zero", grade(0, 0, 0, 0, 0), 0},
		{"missing grade", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, decimal.NewFromInt(c.want).Equal(ComputeNet(c.grade)), "got %s", ComputeNet(c.grade))
		})
	}
}

func TestSalaryGrade_Validate(t *testing.T) {
	assert.NoError(t, grade(30000, 5000, 2000, 1000, 1800).Validate())

	err := grade(1000, 0, 0, 0, 1500).Validate()
	assert.ErrorIs(t, err, ErrDeductionExceedsGross)
	over := grade(1000, 0, 0, 0, 1500)
	assert.True(t, over.OverDeducted())
	assert.True(t, decimal.NewFromInt(-500).Equal(over.Net()), "net is reported, not clamped")

	err = grade(-1, 0, 0, 0, 0).Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "basicSalary", verrs[0].Field)
}

func TestSalaryGrade_UnmarshalJSON_Lenient(t *testing.T) {
	body := `{"gradeId": 3, "gradeCode": "G1", "basicSalary": "30000.50", "hra": 5000,
		"da": null, "allowances": "abc", "organizationId": 42}`

	var g SalaryGrade
	require.NoError(t, json.Unmarshal([]byte(body), &g))

	assert.Equal(t, int64(3), g.ID)
	assert.Equal(t, "G1", g.GradeCode)
	assert.Equal(t, "30000.5", g.BasicSalary.String())
	assert.True(t, g.HRA.Equal(decimal.NewFromInt(5000)))
	assert.True(t, g.DA.IsZero())
	assert.True(t, g.Allowances.IsZero())
	assert.True(t, g.PF.IsZero(), "missing field reads as zero")
	assert.Equal(t, int64(42), g.OrganizationID)
	assert.Equal(t, "35000.5", g.Net().String())
}

func TestSalaryGrade_UnmarshalJSON_AdminGradeID(t *testing.T) {
	var g SalaryGrade
	require.NoError(t, json.Unmarshal([]byte(`{"salaryGradeId": 9, "basicSalary": 100}`), &g))
	assert.Equal(t, int64(9), g.ID)
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		``:         "0",
		`null`:     "0",
		`12`:       "12",
		` 12.75 `:  "12.75",
		`"1500"`:   "1500",
		`"  "`:     "0",
		`true`:     "0",
		`"NaN"`:    "0",
		`{"a":1}`:  "0",
		`"1e3"`:    "1000",
		`"bad\"`:   "0",
		`-20`:      "-20",
		`"007.50"`: "7.5",
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseAmount([]byte(in)).String(), "input %q", in)
	}
}
