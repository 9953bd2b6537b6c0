package bankadmin

import (
	"context"
	"log/slog"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
)

type BankAdminServiceImpl struct {
	bankRepo bankadmin.BankAdminRepository
}

func NewBankAdminService(bankRepo bankadmin.BankAdminRepository) bankadmin.BankAdminService {
	return &BankAdminServiceImpl{bankRepo: bankRepo}
}

func orgs(out []organization.Organization, err error) ([]organization.Organization, error) {
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []organization.Organization{}
	}
	return out, nil
}

// ========== ORGANIZATIONS ==========

func (s *BankAdminServiceImpl) ListOrganizations(ctx context.Context) ([]organization.Organization, error) {
	return orgs(s.bankRepo.ListOrganizations(ctx))
}

func (s *BankAdminServiceImpl) ListPendingOrganizations(ctx context.Context) ([]organization.Organization, error) {
	return orgs(s.bankRepo.ListPendingOrganizations(ctx))
}

func (s *BankAdminServiceImpl) ApproveOrganization(ctx context.Context, orgID int64) (organization.Organization, error) {
	org, err := s.bankRepo.ApproveOrganization(ctx, orgID)
	if err != nil {
		return organization.Organization{}, backend.NotFoundAs(err, bankadmin.ErrOrganizationNotFound)
	}
	slog.Info("Organization approved", "org_id", orgID)
	return org, nil
}

func (s *BankAdminServiceImpl) RejectOrganization(ctx context.Context, orgID int64, req bankadmin.RejectRequest) (organization.Organization, error) {
	if err := req.Validate(); err != nil {
		return organization.Organization{}, err
	}
	org, err := s.bankRepo.RejectOrganization(ctx, orgID, req)
	if err != nil {
		return organization.Organization{}, backend.NotFoundAs(err, bankadmin.ErrOrganizationNotFound)
	}
	slog.Info("Organization rejected", "org_id", orgID)
	return org, nil
}

func (s *BankAdminServiceImpl) ListDeletionRequests(ctx context.Context) ([]organization.Organization, error) {
	return orgs(s.bankRepo.ListDeletionRequests(ctx))
}

func (s *BankAdminServiceImpl) HandleDeletion(ctx context.Context, orgID int64, req bankadmin.DeletionDecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.bankRepo.HandleDeletion(ctx, orgID, req); err != nil {
		return backend.NotFoundAs(err, bankadmin.ErrOrganizationNotFound)
	}
	slog.Info("Organization deletion handled", "org_id", orgID, "approved", req.Approve)
	return nil
}

// ========== SALARY DISBURSALS ==========

func (s *BankAdminServiceImpl) ListPendingDisbursals(ctx context.Context) ([]payroll.Disbursal, error) {
	out, err := s.bankRepo.ListPendingDisbursals(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []payroll.Disbursal{}
	}
	return out, nil
}

func (s *BankAdminServiceImpl) GetDisbursal(ctx context.Context, id int64) (payroll.Disbursal, error) {
	d, err := s.bankRepo.GetDisbursal(ctx, id)
	return d, backend.NotFoundAs(err, bankadmin.ErrDisbursalNotFound)
}

func (s *BankAdminServiceImpl) DecideDisbursal(ctx context.Context, id int64, req bankadmin.DecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	action, _ := bankadmin.ParseAction(req.Action)
	decision := bankadmin.DisbursalDecision{
		DisbursalRequestID: id,
		Action:             action,
		Comment:            req.Comment,
	}
	if err := s.bankRepo.DecideDisbursal(ctx, decision); err != nil {
		return backend.NotFoundAs(err, bankadmin.ErrDisbursalNotFound)
	}
	slog.Info("Salary disbursal decided", "disbursal_id", id, "action", action)
	return nil
}

// ========== VENDOR PAYMENTS ==========

func (s *BankAdminServiceImpl) ListPendingPayments(ctx context.Context) ([]vendor.PaymentRequest, error) {
	out, err := s.bankRepo.ListPendingPaymentRequests(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []vendor.PaymentRequest{}
	}
	return out, nil
}

func (s *BankAdminServiceImpl) DecidePayment(ctx context.Context, id int64, req bankadmin.DecisionRequest) (vendor.PaymentRequest, error) {
	if err := req.Validate(); err != nil {
		return vendor.PaymentRequest{}, err
	}
	action, _ := bankadmin.ParseAction(req.Action)
	p, err := s.bankRepo.DecidePaymentRequest(ctx, bankadmin.PaymentDecision{
		PaymentID: id,
		Action:    action,
		Comment:   req.Comment,
	})
	if err != nil {
		return vendor.PaymentRequest{}, backend.NotFoundAs(err, vendor.ErrPaymentNotFound)
	}
	slog.Info("Vendor payment decided", "payment_id", id, "action", action)
	return p, nil
}
