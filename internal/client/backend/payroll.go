package backend

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

func (c *Client) ListEmployees(ctx context.Context, orgID int64) ([]employee.Employee, error) {
	var out []employee.Employee
	err := c.get(ctx, pathf("/employees/org/%d", orgID), nil, &out)
	return out, err
}

func (c *Client) ListOrgAdmins(ctx context.Context, orgID int64) ([]organization.OrgAdmin, error) {
	var out []organization.OrgAdmin
	err := c.get(ctx, pathf("/orgadmins/org/%d", orgID), nil, &out)
	return out, err
}

// SubmitDisbursal posts a disbursal batch. Failures come back as *Error or
// *TransportError for the caller to classify.
func (c *Client) SubmitDisbursal(ctx context.Context, req payroll.DisbursalRequest) (payroll.Disbursal, error) {
	var out payroll.Disbursal
	err := c.post(ctx, "/salary-disbursal/request", req, &out)
	return out, err
}

func (c *Client) ListPendingDisbursalsByOrg(ctx context.Context, orgID int64) ([]payroll.Disbursal, error) {
	var out []payroll.Disbursal
	err := c.get(ctx, pathf("/salary-disbursal/org/%d/pending", orgID), nil, &out)
	return out, err
}

func (c *Client) ListPendingDisbursals(ctx context.Context) ([]payroll.Disbursal, error) {
	var out []payroll.Disbursal
	err := c.get(ctx, "/bank-admin/salary-requests/pending", nil, &out)
	return out, err
}

func (c *Client) GetDisbursal(ctx context.Context, id int64) (payroll.Disbursal, error) {
	var out payroll.Disbursal
	err := c.get(ctx, pathf("/bank-admin/salary-requests/%d", id), nil, &out)
	return out, err
}

func (c *Client) DecideDisbursal(ctx context.Context, d bankadmin.DisbursalDecision) error {
	return c.post(ctx, "/salary-disbursal/approve-or-reject", d, nil)
}
