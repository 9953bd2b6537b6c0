package backend

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

// RegisterOrganization posts the sign-up form with its verification
// documents. It is called without a session.
func (c *Client) RegisterOrganization(ctx context.Context, req organization.RegisterRequest) (organization.Organization, error) {
	files := make([]filePart, 0, len(req.Documents))
	for _, d := range req.Documents {
		files = append(files, filePart{field: "verificationDocs", name: d.Name, contentType: d.ContentType, data: d.Data})
	}
	var query url.Values
	if req.Reactivate {
		query = url.Values{"reactivate": {"true"}}
	}

	var out organization.Organization
	err := c.postForm(ctx, "/organizations/register", query, "dto", req, files, &out)
	return out, err
}

func (c *Client) GetOrganization(ctx context.Context, orgID int64) (organization.Organization, error) {
	var out organization.Organization
	err := c.get(ctx, pathf("/organizations/%d", orgID), nil, &out)
	return out, err
}

func (c *Client) AccountBalance(ctx context.Context, orgID int64) (decimal.Decimal, error) {
	var out decimal.Decimal
	err := c.get(ctx, pathf("/organizations/%d/account-balance", orgID), nil, &out)
	return out, err
}

// ========== DEPARTMENTS ==========

func (c *Client) ListDepartments(ctx context.Context, orgID int64) ([]organization.Department, error) {
	var out []organization.Department
	err := c.get(ctx, pathf("/departments/org/%d", orgID), nil, &out)
	return out, err
}

func (c *Client) CreateDepartment(ctx context.Context, orgID int64, req organization.DepartmentRequest) (organization.Department, error) {
	var out organization.Department
	err := c.post(ctx, pathf("/departments/%d", orgID), req, &out)
	return out, err
}

func (c *Client) UpdateDepartment(ctx context.Context, id int64, req organization.DepartmentRequest) (organization.Department, error) {
	var out organization.Department
	err := c.put(ctx, pathf("/departments/%d", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.delete(ctx, pathf("/departments/%d", id), nil)
}

// ========== SALARY GRADES ==========

func (c *Client) ListSalaryGrades(ctx context.Context, orgID int64) ([]payroll.SalaryGrade, error) {
	var out []payroll.SalaryGrade
	err := c.get(ctx, pathf("/salary-grades/%d", orgID), nil, &out)
	return out, err
}

func (c *Client) GetSalaryGrade(ctx context.Context, orgID, gradeID int64) (payroll.SalaryGrade, error) {
	var out payroll.SalaryGrade
	err := c.get(ctx, pathf("/salary-grades/%d/%d", orgID, gradeID), nil, &out)
	return out, err
}

func (c *Client) CreateSalaryGrade(ctx context.Context, orgID int64, req organization.SalaryGradeRequest) (payroll.SalaryGrade, error) {
	var out payroll.SalaryGrade
	err := c.post(ctx, pathf("/salary-grades/%d", orgID), req, &out)
	return out, err
}

func (c *Client) UpdateSalaryGrade(ctx context.Context, orgID, gradeID int64, req organization.SalaryGradeRequest) (payroll.SalaryGrade, error) {
	var out payroll.SalaryGrade
	err := c.put(ctx, pathf("/salary-grades/%d/%d", orgID, gradeID), nil, req, &out)
	return out, err
}

func (c *Client) DeleteSalaryGrade(ctx context.Context, orgID, gradeID int64) error {
	return c.delete(ctx, pathf("/salary-grades/%d/%d", orgID, gradeID), nil)
}

// ========== ORG ADMINS ==========

func (c *Client) CreateOrgAdmin(ctx context.Context, orgID int64, req organization.OrgAdminRequest) (organization.OrgAdmin, error) {
	var out organization.OrgAdmin
	err := c.postParts(ctx, pathf("/orgadmins/%d", orgID), "dto", req, &out)
	return out, err
}

func (c *Client) GetOrgAdmin(ctx context.Context, id int64) (organization.OrgAdmin, error) {
	var out organization.OrgAdmin
	err := c.get(ctx, pathf("/orgadmins/admin/%d", id), nil, &out)
	return out, err
}

func (c *Client) UpdateOrgAdmin(ctx context.Context, id int64, req organization.OrgAdminRequest) (organization.OrgAdmin, error) {
	var out organization.OrgAdmin
	err := c.put(ctx, pathf("/orgadmins/admin/%d", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteOrgAdmin(ctx context.Context, id int64) error {
	return c.delete(ctx, pathf("/orgadmins/admin/%d", id), nil)
}
