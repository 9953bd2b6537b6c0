package bankadmin

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
)

// BankAdminService covers the approval queues of the bank. Every transition
// is decided by the backend; this side only relays the decision.
type BankAdminService interface {
	// Organizations
	ListOrganizations(ctx context.Context) ([]organization.Organization, error)
	ListPendingOrganizations(ctx context.Context) ([]organization.Organization, error)
	ApproveOrganization(ctx context.Context, orgID int64) (organization.Organization, error)
	RejectOrganization(ctx context.Context, orgID int64, req RejectRequest) (organization.Organization, error)
	ListDeletionRequests(ctx context.Context) ([]organization.Organization, error)
	HandleDeletion(ctx context.Context, orgID int64, req DeletionDecisionRequest) error

	// Salary disbursals
	ListPendingDisbursals(ctx context.Context) ([]payroll.Disbursal, error)
	GetDisbursal(ctx context.Context, id int64) (payroll.Disbursal, error)
	DecideDisbursal(ctx context.Context, id int64, req DecisionRequest) error

	// Vendor payments
	ListPendingPayments(ctx context.Context) ([]vendor.PaymentRequest, error)
	DecidePayment(ctx context.Context, id int64, req DecisionRequest) (vendor.PaymentRequest, error)
}
