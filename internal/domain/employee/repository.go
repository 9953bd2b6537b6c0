package employee

import "context"

type EmployeeRepository interface {
	ListEmployees(ctx context.Context, orgID int64) ([]Employee, error)
	GetEmployee(ctx context.Context, orgID, empID int64) (Employee, error)
	CreateEmployee(ctx context.Context, orgID int64, req EmployeeRequest) (Employee, error)
	UpdateEmployee(ctx context.Context, orgID, empID int64, req EmployeeRequest) (Employee, error)
	DeleteEmployee(ctx context.Context, orgID, empID int64) error

	EmployeeDashboard(ctx context.Context, empID int64) (Dashboard, error)
	ListSalarySlips(ctx context.Context, empID int64) ([]SalarySlip, error)
	GetSalarySlip(ctx context.Context, slipID int64) (SalarySlip, error)
	ListConcerns(ctx context.Context, empID int64) ([]Concern, error)
	RaiseConcern(ctx context.Context, req RaiseConcernRequest) (Concern, error)
}
