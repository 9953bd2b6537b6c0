package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
)

func (c *Client) ListOrganizations(ctx context.Context) ([]organization.Organization, error) {
	var out []organization.Organization
	err := c.get(ctx, "/bank-admin/organizations", nil, &out)
	return out, err
}

func (c *Client) ListPendingOrganizations(ctx context.Context) ([]organization.Organization, error) {
	var out []organization.Organization
	err := c.get(ctx, "/bank-admin/pending-organizations", nil, &out)
	return out, err
}

func (c *Client) ApproveOrganization(ctx context.Context, orgID int64) (organization.Organization, error) {
	var out organization.Organization
	err := c.put(ctx, pathf("/bank-admin/%d/approve", orgID), nil, nil, &out)
	return out, err
}

func (c *Client) RejectOrganization(ctx context.Context, orgID int64, req bankadmin.RejectRequest) (organization.Organization, error) {
	var out organization.Organization
	err := c.put(ctx, pathf("/bank-admin/%d/reject", orgID), nil, req, &out)
	return out, err
}

func (c *Client) ListDeletionRequests(ctx context.Context) ([]organization.Organization, error) {
	var out []organization.Organization
	err := c.get(ctx, "/bank-admin/delete-requests", nil, &out)
	return out, err
}

func (c *Client) HandleDeletion(ctx context.Context, orgID int64, req bankadmin.DeletionDecisionRequest) error {
	q := url.Values{"approve": {strconv.FormatBool(req.Approve)}}
	if req.Reason != "" {
		q.Set("reason", req.Reason)
	}
	return c.put(ctx, pathf("/bank-admin/%d/handle-deletion", orgID), q, nil, nil)
}
