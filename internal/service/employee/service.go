package employee

import (
	"context"
	"log/slog"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ========== ORGANIZATION SIDE ==========

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.employeeRepo.ListEmployees(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []employee.Employee{}
	}
	return out, nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, empID int64) (employee.Employee, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	e, err := s.employeeRepo.GetEmployee(ctx, orgID, empID)
	return e, backend.NotFoundAs(err, employee.ErrEmployeeNotFound)
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	e, err := s.employeeRepo.CreateEmployee(ctx, orgID, req)
	if err != nil {
		return employee.Employee{}, err
	}
	slog.Info("Employee created", "org_id", orgID, "emp_id", e.EmpID)
	return e, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, empID int64, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	e, err := s.employeeRepo.UpdateEmployee(ctx, orgID, empID, req)
	return e, backend.NotFoundAs(err, employee.ErrEmployeeNotFound)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, empID int64) error {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return err
	}
	return backend.NotFoundAs(s.employeeRepo.DeleteEmployee(ctx, orgID, empID), employee.ErrEmployeeNotFound)
}

// ========== SELF-SERVICE ==========

func (s *EmployeeServiceImpl) MyDashboard(ctx context.Context) (employee.Dashboard, error) {
	empID, err := auth.EmpIDFromContext(ctx)
	if err != nil {
		return employee.Dashboard{}, err
	}
	d, err := s.employeeRepo.EmployeeDashboard(ctx, empID)
	return d, backend.NotFoundAs(err, employee.ErrEmployeeNotFound)
}

func (s *EmployeeServiceImpl) MySalarySlips(ctx context.Context) ([]employee.SalarySlip, error) {
	empID, err := auth.EmpIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.employeeRepo.ListSalarySlips(ctx, empID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []employee.SalarySlip{}
	}
	return out, nil
}

// GetSalarySlip only returns slips issued to the signed-in employee.
func (s *EmployeeServiceImpl) GetSalarySlip(ctx context.Context, slipID int64) (employee.SalarySlip, error) {
	empID, err := auth.EmpIDFromContext(ctx)
	if err != nil {
		return employee.SalarySlip{}, err
	}
	slip, err := s.employeeRepo.GetSalarySlip(ctx, slipID)
	if err != nil {
		return employee.SalarySlip{}, backend.NotFoundAs(err, employee.ErrSlipNotFound)
	}
	if slip.EmpID != 0 && slip.EmpID != empID {
		return employee.SalarySlip{}, employee.ErrSlipNotFound
	}
	return slip, nil
}

func (s *EmployeeServiceImpl) MyConcerns(ctx context.Context) ([]employee.Concern, error) {
	empID, err := auth.EmpIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.employeeRepo.ListConcerns(ctx, empID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []employee.Concern{}
	}
	return out, nil
}

func (s *EmployeeServiceImpl) RaiseConcern(ctx context.Context, req employee.RaiseConcernRequest) (employee.Concern, error) {
	if err := req.Validate(); err != nil {
		return employee.Concern{}, err
	}
	empID, err := auth.EmpIDFromContext(ctx)
	if err != nil {
		return employee.Concern{}, err
	}
	req.EmpID = empID
	return s.employeeRepo.RaiseConcern(ctx, req)
}
