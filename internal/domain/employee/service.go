package employee

import "context"

type EmployeeService interface {
	// Organization side
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, empID int64) (Employee, error)
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Update(ctx context.Context, empID int64, req EmployeeRequest) (Employee, error)
	Delete(ctx context.Context, empID int64) error

	// Employee self-service
	MyDashboard(ctx context.Context) (Dashboard, error)
	MySalarySlips(ctx context.Context) ([]SalarySlip, error)
	GetSalarySlip(ctx context.Context, slipID int64) (SalarySlip, error)
	MyConcerns(ctx context.Context) ([]Concern, error)
	RaiseConcern(ctx context.Context, req RaiseConcernRequest) (Concern, error)
}
