package employee

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

type fakeRepo struct {
	employee.EmployeeRepository
	created  []int64
	slips    map[int64]employee.SalarySlip
	concerns []employee.RaiseConcernRequest
}

func (f *fakeRepo) ListEmployees(context.Context, int64) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeRepo) GetEmployee(_ context.Context, orgID, empID int64) (employee.Employee, error) {
	if empID == 404 {
		return employee.Employee{}, &backend.Error{Status: http.StatusNotFound}
	}
	return employee.Employee{EmpID: empID, OrganizationID: orgID}, nil
}

func (f *fakeRepo) CreateEmployee(_ context.Context, orgID int64, req employee.EmployeeRequest) (employee.Employee, error) {
	f.created = append(f.created, orgID)
	return employee.Employee{EmpID: 9, EmpName: req.EmpName, OrganizationID: orgID}, nil
}

func (f *fakeRepo) GetSalarySlip(_ context.Context, slipID int64) (employee.SalarySlip, error) {
	slip, ok := f.slips[slipID]
	if !ok {
		return employee.SalarySlip{}, &backend.Error{Status: http.StatusNotFound}
	}
	return slip, nil
}

func (f *fakeRepo) RaiseConcern(_ context.Context, req employee.RaiseConcernRequest) (employee.Concern, error) {
	f.concerns = append(f.concerns, req)
	return employee.Concern{ConcernID: 1, Description: req.Description, EmpID: req.EmpID, Status: "OPEN"}, nil
}

func orgCtx(orgID int64) context.Context {
	return auth.WithSession(context.Background(), auth.Session{
		Key:        "k",
		Credential: "cred",
		Claims:     &auth.Claims{Roles: []auth.Role{auth.RoleOrganization}, OrgID: &orgID},
	})
}

func empCtx(empID int64) context.Context {
	return auth.WithSession(context.Background(), auth.Session{
		Key:        "k",
		Credential: "cred",
		Claims:     &auth.Claims{Roles: []auth.Role{auth.RoleEmployee}, EmpID: &empID},
	})
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc := NewEmployeeService(&fakeRepo{})

	out, err := svc.List(orgCtx(3))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestList_RequiresOrganization(t *testing.T) {
	svc := NewEmployeeService(&fakeRepo{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)

	_, err = svc.List(empCtx(5))
	assert.ErrorIs(t, err, auth.ErrOrganizationMissing)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeRepo{})

	e, err := svc.Get(orgCtx(3), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.OrganizationID)

	_, err = svc.Get(orgCtx(3), 404)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(orgCtx(3), employee.EmployeeRequest{EmpName: "Asha", EmpEmail: "not-an-email"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.created)

	e, err := svc.Create(orgCtx(3), employee.EmployeeRequest{EmpName: "Asha", EmpEmail: "asha@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", e.EmpName)
	assert.Equal(t, []int64{3}, repo.created)
}

func TestGetSalarySlip_OnlyOwnSlips(t *testing.T) {
	repo := &fakeRepo{slips: map[int64]employee.SalarySlip{
		1: {SlipID: 1, EmpID: 5},
		2: {SlipID: 2, EmpID: 6},
	}}
	svc := NewEmployeeService(repo)

	slip, err := svc.GetSalarySlip(empCtx(5), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), slip.SlipID)

	_, err = svc.GetSalarySlip(empCtx(5), 2)
	assert.ErrorIs(t, err, employee.ErrSlipNotFound)

	_, err = svc.GetSalarySlip(empCtx(5), 3)
	assert.ErrorIs(t, err, employee.ErrSlipNotFound)
}

func TestRaiseConcern_UsesSignedInEmployee(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	_, err := svc.RaiseConcern(empCtx(5), employee.RaiseConcernRequest{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	c, err := svc.RaiseConcern(empCtx(5), employee.RaiseConcernRequest{Description: "Slip missing", EmpID: 99})
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.EmpID)
	require.Len(t, repo.concerns, 1)
	assert.Equal(t, int64(5), repo.concerns[0].EmpID)
}
