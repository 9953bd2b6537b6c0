package payroll

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

func TestBuildRequest_GroupsSelectedIDs(t *testing.T) {
	employees, admins := staff()
	employees[0].Selected = true
	employees[1].Selected = true

	req := BuildRequest(7, "2025-11", "  ", employees, admins)

	assert.Equal(t, payroll.DisbursalRequest{
		OrgID:   7,
		Period:  "2025-11",
		Remarks: DefaultRemarks,
		Payments: []payroll.PaymentGroup{
			{Type: payroll.KindEmployee, IDs: []int64{11, 12}},
		},
	}, req)
}

func TestBuildRequest_BothGroups(t *testing.T) {
	employees, admins := staff()
	employees[0].Selected = true
	admins[0].Selected = true

	req := BuildRequest(7, "2025-11", "October bonus run", employees, admins)

	assert.Equal(t, "October bonus run", req.Remarks)
	assert.Equal(t, []payroll.PaymentGroup{
		{Type: payroll.KindEmployee, IDs: []int64{11}},
		{Type: payroll.KindOrgAdmin, IDs: []int64{21}},
	}, req.Payments)
	assert.Equal(t, 2, req.IDCount())
}

func TestBuildRequest_ExcludesUngraded(t *testing.T) {
	employees, admins := staff()
	employees[2].Selected = true

	req := BuildRequest(7, "2025-11", "", employees, admins)
	assert.Empty(t, req.Payments)
	assert.Error(t, ValidateRequest(req))

	employees[0].Selected = true
	req = BuildRequest(7, "2025-11", "", employees, admins)
	assert.Equal(t, []payroll.PaymentGroup{
		{Type: payroll.KindEmployee, IDs: []int64{11}},
	}, req.Payments)
}

func TestValidateRequest(t *testing.T) {
	cases := []struct {
		name   string
		req    payroll.DisbursalRequest
		fields []string
	}{
		{"nothing selected", payroll.DisbursalRequest{Period: "2025-11", Payments: []payroll.PaymentGroup{}}, []string{"payments"}},
		{"missing period", payroll.DisbursalRequest{Payments: []payroll.PaymentGroup{{Type: payroll.KindEmployee, IDs: []int64{1}}}}, []string{"period"}},
		{"bad period", payroll.DisbursalRequest{Period: "11-2025", Payments: []payroll.PaymentGroup{{Type: payroll.KindEmployee, IDs: []int64{1}}}}, []string{"period"}},
		{"both", payroll.DisbursalRequest{}, []string{"payments", "period"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateRequest(c.req)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, c.fields, fields)
		})
	}

	ok := payroll.DisbursalRequest{Period: "2025-11", Payments: []payroll.PaymentGroup{{Type: payroll.KindOrgAdmin, IDs: []int64{3}}}}
	assert.NoError(t, ValidateRequest(ok))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		want    payroll.OutcomeType
		period  string
		field   string
		message string
	}{
		{
			name:   "nested period",
			err:    &backend.Error{Status: http.StatusConflict, Period: "2025-10"},
			want:   payroll.OutcomeDuplicatePeriod,
			period: "2025-10",
		},
		{
			name:    "duplicate marker falls back to submitted period",
			err:     &backend.Error{Status: http.StatusBadRequest, Message: "Payroll for this period already exists"},
			want:    payroll.OutcomeDuplicatePeriod,
			period:  "2025-11",
			message: "Payroll for this period already exists",
		},
		{
			name:   "pending marker in plain body",
			err:    &backend.Error{Status: http.StatusBadRequest, Body: "A PENDING request exists"},
			want:   payroll.OutcomeDuplicatePeriod,
			period: "2025-11",
		},
		{
			name:   "duplicate tag",
			err:    &backend.Error{Status: http.StatusConflict, Detail: "Duplicate Payroll Request"},
			want:   payroll.OutcomeDuplicatePeriod,
			period: "2025-11",
		},
		{
			name:    "field error",
			err:     &backend.Error{Status: http.StatusBadRequest, Field: "period", Message: "period is invalid"},
			want:    payroll.OutcomeValidationError,
			field:   "period",
			message: "period is invalid",
		},
		{
			name:    "validation map",
			err:     &backend.Error{Status: http.StatusBadRequest, ValidationErrors: map[string]string{"remarks": "too long", "orgId": "required"}},
			want:    payroll.OutcomeValidationError,
			field:   "orgId",
			message: "required",
		},
		{
			name:    "general with message",
			err:     &backend.Error{Status: http.StatusInternalServerError, Message: "Insufficient balance"},
			want:    payroll.OutcomeGeneralError,
			message: "Insufficient balance",
		},
		{
			name:    "general falls back to status text",
			err:     &backend.Error{Status: http.StatusServiceUnavailable, StatusText: "Service Unavailable"},
			want:    payroll.OutcomeGeneralError,
			message: "Service Unavailable",
		},
		{
			name:    "status zero without body",
			err:     &backend.Error{Status: 0},
			want:    payroll.OutcomeGeneralError,
			message: defaultFailure,
		},
		{
			name:    "transport failure",
			err:     &backend.TransportError{Method: http.MethodPost, Path: "/salary-disbursal", Err: errors.New("connection refused")},
			want:    payroll.OutcomeGeneralError,
			message: connectivityFailure,
		},
		{
			name:    "unknown error",
			err:     errors.New("boom"),
			want:    payroll.OutcomeGeneralError,
			message: defaultFailure,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.err, "2025-11")
			assert.Equal(t, c.want, got.Type)
			assert.NotEmpty(t, got.Message)
			if c.period != "" {
				assert.Equal(t, c.period, got.Period)
			}
			if c.field != "" {
				assert.Equal(t, c.field, got.Field)
			}
			if c.message != "" {
				assert.Equal(t, c.message, got.Message)
			}
		})
	}
}

func TestClassify_DuplicateDefaultText(t *testing.T) {
	got := Classify(&backend.Error{Status: http.StatusConflict, Period: "2025-10"}, "2025-11")

	assert.Contains(t, got.Message, "2025-10")
	assert.Equal(t, http.StatusConflict, got.StatusCode)
}
