package bankadmin

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
)

type BankAdminRepository interface {
	ListOrganizations(ctx context.Context) ([]organization.Organization, error)
	ListPendingOrganizations(ctx context.Context) ([]organization.Organization, error)
	ApproveOrganization(ctx context.Context, orgID int64) (organization.Organization, error)
	RejectOrganization(ctx context.Context, orgID int64, req RejectRequest) (organization.Organization, error)
	ListDeletionRequests(ctx context.Context) ([]organization.Organization, error)
	HandleDeletion(ctx context.Context, orgID int64, req DeletionDecisionRequest) error

	ListPendingDisbursals(ctx context.Context) ([]payroll.Disbursal, error)
	GetDisbursal(ctx context.Context, id int64) (payroll.Disbursal, error)
	DecideDisbursal(ctx context.Context, d DisbursalDecision) error

	ListPendingPaymentRequests(ctx context.Context) ([]vendor.PaymentRequest, error)
	DecidePaymentRequest(ctx context.Context, d PaymentDecision) (vendor.PaymentRequest, error)
}
