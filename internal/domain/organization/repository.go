package organization

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

type OrganizationRepository interface {
	RegisterOrganization(ctx context.Context, req RegisterRequest) (Organization, error)
	GetOrganization(ctx context.Context, orgID int64) (Organization, error)
	AccountBalance(ctx context.Context, orgID int64) (decimal.Decimal, error)

	ListDepartments(ctx context.Context, orgID int64) ([]Department, error)
	CreateDepartment(ctx context.Context, orgID int64, req DepartmentRequest) (Department, error)
	UpdateDepartment(ctx context.Context, id int64, req DepartmentRequest) (Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListSalaryGrades(ctx context.Context, orgID int64) ([]payroll.SalaryGrade, error)
	GetSalaryGrade(ctx context.Context, orgID, gradeID int64) (payroll.SalaryGrade, error)
	CreateSalaryGrade(ctx context.Context, orgID int64, req SalaryGradeRequest) (payroll.SalaryGrade, error)
	UpdateSalaryGrade(ctx context.Context, orgID, gradeID int64, req SalaryGradeRequest) (payroll.SalaryGrade, error)
	DeleteSalaryGrade(ctx context.Context, orgID, gradeID int64) error
}

type OrgAdminRepository interface {
	ListOrgAdmins(ctx context.Context, orgID int64) ([]OrgAdmin, error)
	GetOrgAdmin(ctx context.Context, id int64) (OrgAdmin, error)
	CreateOrgAdmin(ctx context.Context, orgID int64, req OrgAdminRequest) (OrgAdmin, error)
	UpdateOrgAdmin(ctx context.Context, id int64, req OrgAdminRequest) (OrgAdmin, error)
	DeleteOrgAdmin(ctx context.Context, id int64) error
}
