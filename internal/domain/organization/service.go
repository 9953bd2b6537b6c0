package organization

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

type OrganizationService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Profile(ctx context.Context) (Organization, error)
	AccountBalance(ctx context.Context) (decimal.Decimal, error)

	// Departments
	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, req DepartmentRequest) (Department, error)
	UpdateDepartment(ctx context.Context, id int64, req DepartmentRequest) (Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	// Salary grades
	ListSalaryGrades(ctx context.Context) ([]payroll.SalaryGrade, error)
	GetSalaryGrade(ctx context.Context, id int64) (payroll.SalaryGrade, error)
	CreateSalaryGrade(ctx context.Context, req SalaryGradeRequest) (payroll.SalaryGrade, error)
	UpdateSalaryGrade(ctx context.Context, id int64, req SalaryGradeRequest) (payroll.SalaryGrade, error)
	DeleteSalaryGrade(ctx context.Context, id int64) error

	// Org admins
	ListOrgAdmins(ctx context.Context) ([]OrgAdmin, error)
	CreateOrgAdmin(ctx context.Context, req OrgAdminRequest) (OrgAdmin, error)
	UpdateOrgAdmin(ctx context.Context, id int64, req OrgAdminRequest) (OrgAdmin, error)
	DeleteOrgAdmin(ctx context.Context, id int64) error
}
