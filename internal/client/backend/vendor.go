package backend

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
)

func (c *Client) ListVendors(ctx context.Context, orgID int64) ([]vendor.Vendor, error) {
	var out []vendor.Vendor
	err := c.get(ctx, pathf("/vendors/%d", orgID), nil, &out)
	return out, err
}

func (c *Client) GetVendor(ctx context.Context, id int64) (vendor.Vendor, error) {
	var out vendor.Vendor
	err := c.get(ctx, pathf("/vendors/vendor/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateVendor(ctx context.Context, orgID int64, req vendor.VendorRequest) (vendor.Vendor, error) {
	var out vendor.Vendor
	err := c.postParts(ctx, pathf("/vendors/%d", orgID), "dto", req, &out)
	return out, err
}

func (c *Client) UpdateVendor(ctx context.Context, id int64, req vendor.VendorRequest) (vendor.Vendor, error) {
	var out vendor.Vendor
	err := c.put(ctx, pathf("/vendors/vendor/%d", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteVendor(ctx context.Context, id int64) error {
	return c.delete(ctx, pathf("/vendors/vendor/%d", id), nil)
}

func (c *Client) VendorProfile(ctx context.Context) (vendor.Profile, error) {
	var out vendor.Profile
	err := c.get(ctx, "/vendors/my-profile", nil, &out)
	return out, err
}

func (c *Client) UpdateVendorProfile(ctx context.Context, req vendor.ProfileUpdateRequest) (vendor.Profile, error) {
	var out vendor.Profile
	err := c.put(ctx, "/vendors/my-profile", nil, req, &out)
	return out, err
}

func (c *Client) VendorReceipts(ctx context.Context) ([]vendor.Receipt, error) {
	var out []vendor.Receipt
	err := c.get(ctx, "/vendors/my-receipts", nil, &out)
	return out, err
}

func (c *Client) VendorReceipt(ctx context.Context, id int64) (vendor.Receipt, error) {
	var out vendor.Receipt
	err := c.get(ctx, pathf("/vendors/receipt/%d", id), nil, &out)
	return out, err
}

// ========== PAYMENT REQUESTS ==========

func (c *Client) CreatePaymentRequest(ctx context.Context, req vendor.PaymentRequest) (vendor.PaymentRequest, error) {
	var out vendor.PaymentRequest
	err := c.post(ctx, "/payment-requests", req, &out)
	return out, err
}

func (c *Client) ListPaymentRequestsByOrg(ctx context.Context, orgID int64) ([]vendor.PaymentRequest, error) {
	var out []vendor.PaymentRequest
	err := c.get(ctx, pathf("/payment-requests/org/%d", orgID), nil, &out)
	return out, err
}

func (c *Client) ListPendingPaymentRequests(ctx context.Context) ([]vendor.PaymentRequest, error) {
	var out []vendor.PaymentRequest
	err := c.get(ctx, "/payment-requests/pending", nil, &out)
	return out, err
}

func (c *Client) DecidePaymentRequest(ctx context.Context, d bankadmin.PaymentDecision) (vendor.PaymentRequest, error) {
	action := "approve"
	if d.Action == bankadmin.ActionReject {
		action = "reject"
	}
	var out vendor.PaymentRequest
	err := c.put(ctx, pathf("/payment-requests/%d/%s", d.PaymentID, action), nil, d, &out)
	return out, err
}
