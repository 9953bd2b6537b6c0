package organization

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/notice"
)

type OrganizationServiceImpl struct {
	orgRepo   organization.OrganizationRepository
	adminRepo organization.OrgAdminRepository
}

func NewOrganizationService(orgRepo organization.OrganizationRepository, adminRepo organization.OrgAdminRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{
		orgRepo:   orgRepo,
		adminRepo: adminRepo,
	}
}

// Register files a new organization for bank approval. A backend answer
// asking to confirm reactivation becomes ErrReactivationRequired unless the
// caller already confirmed it.
func (s *OrganizationServiceImpl) Register(ctx context.Context, req organization.RegisterRequest) (organization.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.RegisterResponse{}, err
	}

	org, err := s.orgRepo.RegisterOrganization(ctx, req)
	if err != nil {
		var be *backend.Error
		if !req.Reactivate && errors.As(err, &be) && strings.Contains(strings.ToLower(be.BestMessage()), "confirm reactivation") {
			return organization.RegisterResponse{}, organization.ErrReactivationRequired
		}
		return organization.RegisterResponse{}, err
	}

	message := "Registration successful! Check your email for details."
	if req.Reactivate {
		message = "Organization reactivated successfully!"
	}
	slog.Info("Organization registered", "org_id", org.OrgID, "documents", len(req.Documents), "reactivate", req.Reactivate)
	return organization.RegisterResponse{
		Organization: org,
		Redirect:     auth.PathLogin,
		Notice:       notice.Success(message),
	}, nil
}

func (s *OrganizationServiceImpl) Profile(ctx context.Context) (organization.Organization, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return organization.Organization{}, err
	}
	return s.orgRepo.GetOrganization(ctx, orgID)
}

func (s *OrganizationServiceImpl) AccountBalance(ctx context.Context) (decimal.Decimal, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return s.orgRepo.AccountBalance(ctx, orgID)
}

// ========== DEPARTMENTS ==========

func (s *OrganizationServiceImpl) ListDepartments(ctx context.Context) ([]organization.Department, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.orgRepo.ListDepartments(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []organization.Department{}
	}
	return out, nil
}

func (s *OrganizationServiceImpl) CreateDepartment(ctx context.Context, req organization.DepartmentRequest) (organization.Department, error) {
	if err := req.Validate(); err != nil {
		return organization.Department{}, err
	}
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return organization.Department{}, err
	}
	dept, err := s.orgRepo.CreateDepartment(ctx, orgID, req)
	if err != nil {
		return organization.Department{}, err
	}
	slog.Info("Department created", "org_id", orgID, "department", dept.Name)
	return dept, nil
}

func (s *OrganizationServiceImpl) UpdateDepartment(ctx context.Context, id int64, req organization.DepartmentRequest) (organization.Department, error) {
	if err := req.Validate(); err != nil {
		return organization.Department{}, err
	}
	if _, err := auth.OrgIDFromContext(ctx); err != nil {
		return organization.Department{}, err
	}
	dept, err := s.orgRepo.UpdateDepartment(ctx, id, req)
	return dept, backend.NotFoundAs(err, organization.ErrDepartmentNotFound)
}

func (s *OrganizationServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if _, err := auth.OrgIDFromContext(ctx); err != nil {
		return err
	}
	return backend.NotFoundAs(s.orgRepo.DeleteDepartment(ctx, id), organization.ErrDepartmentNotFound)
}

// ========== SALARY GRADES ==========

func (s *OrganizationServiceImpl) ListSalaryGrades(ctx context.Context) ([]payroll.SalaryGrade, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.orgRepo.ListSalaryGrades(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []payroll.SalaryGrade{}
	}
	return out, nil
}

func (s *OrganizationServiceImpl) GetSalaryGrade(ctx context.Context, id int64) (payroll.SalaryGrade, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return payroll.SalaryGrade{}, err
	}
	g, err := s.orgRepo.GetSalaryGrade(ctx, orgID, id)
	return g, backend.NotFoundAs(err, organization.ErrSalaryGradeNotFound)
}

func (s *OrganizationServiceImpl) CreateSalaryGrade(ctx context.Context, req organization.SalaryGradeRequest) (payroll.SalaryGrade, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryGrade{}, err
	}
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return payroll.SalaryGrade{}, err
	}
	return s.orgRepo.CreateSalaryGrade(ctx, orgID, req)
}

func (s *OrganizationServiceImpl) UpdateSalaryGrade(ctx context.Context, id int64, req organization.SalaryGradeRequest) (payroll.SalaryGrade, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryGrade{}, err
	}
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return payroll.SalaryGrade{}, err
	}
	g, err := s.orgRepo.UpdateSalaryGrade(ctx, orgID, id, req)
	return g, backend.NotFoundAs(err, organization.ErrSalaryGradeNotFound)
}

func (s *OrganizationServiceImpl) DeleteSalaryGrade(ctx context.Context, id int64) error {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return err
	}
	return backend.NotFoundAs(s.orgRepo.DeleteSalaryGrade(ctx, orgID, id), organization.ErrSalaryGradeNotFound)
}

// ========== ORG ADMINS ==========

func (s *OrganizationServiceImpl) ListOrgAdmins(ctx context.Context) ([]organization.OrgAdmin, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.adminRepo.ListOrgAdmins(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []organization.OrgAdmin{}
	}
	return out, nil
}

func (s *OrganizationServiceImpl) CreateOrgAdmin(ctx context.Context, req organization.OrgAdminRequest) (organization.OrgAdmin, error) {
	if err := req.Validate(); err != nil {
		return organization.OrgAdmin{}, err
	}
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return organization.OrgAdmin{}, err
	}
	admin, err := s.adminRepo.CreateOrgAdmin(ctx, orgID, req)
	if err != nil {
		return organization.OrgAdmin{}, err
	}
	slog.Info("Org admin created", "org_id", orgID, "org_admin_id", admin.OrgAdminID)
	return admin, nil
}

func (s *OrganizationServiceImpl) UpdateOrgAdmin(ctx context.Context, id int64, req organization.OrgAdminRequest) (organization.OrgAdmin, error) {
	if err := req.Validate(); err != nil {
		return organization.OrgAdmin{}, err
	}
	if _, err := auth.OrgIDFromContext(ctx); err != nil {
		return organization.OrgAdmin{}, err
	}
	admin, err := s.adminRepo.UpdateOrgAdmin(ctx, id, req)
	return admin, backend.NotFoundAs(err, organization.ErrOrgAdminNotFound)
}

func (s *OrganizationServiceImpl) DeleteOrgAdmin(ctx context.Context, id int64) error {
	if _, err := auth.OrgIDFromContext(ctx); err != nil {
		return err
	}
	return backend.NotFoundAs(s.adminRepo.DeleteOrgAdmin(ctx, id), organization.ErrOrgAdminNotFound)
}
