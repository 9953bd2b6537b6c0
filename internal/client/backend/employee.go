package backend

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
)

func (c *Client) GetEmployee(ctx context.Context, orgID, empID int64) (employee.Employee, error) {
	var out employee.Employee
	err := c.get(ctx, pathf("/employees/%d/%d", orgID, empID), nil, &out)
	return out, err
}

func (c *Client) CreateEmployee(ctx context.Context, orgID int64, req employee.EmployeeRequest) (employee.Employee, error) {
	var out employee.Employee
	err := c.postParts(ctx, pathf("/employees/%d/employees", orgID), "employee", req, &out)
	return out, err
}

func (c *Client) UpdateEmployee(ctx context.Context, orgID, empID int64, req employee.EmployeeRequest) (employee.Employee, error) {
	var out employee.Employee
	err := c.put(ctx, pathf("/employees/%d/employees/%d", orgID, empID), nil, req, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, orgID, empID int64) error {
	return c.delete(ctx, pathf("/employees/%d/employees/%d", orgID, empID), nil)
}

func (c *Client) EmployeeDashboard(ctx context.Context, empID int64) (employee.Dashboard, error) {
	var out employee.Dashboard
	err := c.get(ctx, pathf("/employees/%d/dashboard", empID), nil, &out)
	return out, err
}

func (c *Client) ListSalarySlips(ctx context.Context, empID int64) ([]employee.SalarySlip, error) {
	var out []employee.SalarySlip
	err := c.get(ctx, pathf("/salary-slip/employee/%d", empID), nil, &out)
	return out, err
}

func (c *Client) GetSalarySlip(ctx context.Context, slipID int64) (employee.SalarySlip, error) {
	var out employee.SalarySlip
	err := c.get(ctx, pathf("/salary-slip/%d", slipID), nil, &out)
	return out, err
}

func (c *Client) ListConcerns(ctx context.Context, empID int64) ([]employee.Concern, error) {
	var out []employee.Concern
	err := c.get(ctx, pathf("/concerns/employee/%d", empID), nil, &out)
	return out, err
}

func (c *Client) RaiseConcern(ctx context.Context, req employee.RaiseConcernRequest) (employee.Concern, error) {
	var out employee.Concern
	err := c.postParts(ctx, "/concerns", "data", req, &out)
	return out, err
}
