package bankadmin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

type fakeRepo struct {
	bankadmin.BankAdminRepository
	decisions []bankadmin.DisbursalDecision
	deletions []bankadmin.DeletionDecisionRequest
}

func (f *fakeRepo) ListPendingOrganizations(context.Context) ([]organization.Organization, error) {
	return nil, nil
}

func (f *fakeRepo) ApproveOrganization(_ context.Context, orgID int64) (organization.Organization, error) {
	if orgID == 404 {
		return organization.Organization{}, &backend.Error{Status: http.StatusNotFound}
	}
	return organization.Organization{OrgID: orgID, Status: "APPROVED"}, nil
}

func (f *fakeRepo) HandleDeletion(_ context.Context, _ int64, req bankadmin.DeletionDecisionRequest) error {
	f.deletions = append(f.deletions, req)
	return nil
}

func (f *fakeRepo) DecideDisbursal(_ context.Context, d bankadmin.DisbursalDecision) error {
	if d.DisbursalRequestID == 404 {
		return &backend.Error{Status: http.StatusNotFound}
	}
	f.decisions = append(f.decisions, d)
	return nil
}

func TestListPendingOrganizations_EmptyIsNotNil(t *testing.T) {
	svc := NewBankAdminService(&fakeRepo{})

	out, err := svc.ListPendingOrganizations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestApproveOrganization(t *testing.T) {
	svc := NewBankAdminService(&fakeRepo{})

	org, err := svc.ApproveOrganization(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, organization.StatusApproved, org.Status)

	_, err = svc.ApproveOrganization(context.Background(), 404)
	assert.ErrorIs(t, err, bankadmin.ErrOrganizationNotFound)
}

func TestHandleDeletion_DeclineNeedsReason(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewBankAdminService(repo)

	err := svc.HandleDeletion(context.Background(), 4, bankadmin.DeletionDecisionRequest{Approve: false, Reason: "  "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.deletions)

	require.NoError(t, svc.HandleDeletion(context.Background(), 4, bankadmin.DeletionDecisionRequest{Approve: true}))
	assert.Len(t, repo.deletions, 1)
}

func TestDecideDisbursal(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		req     bankadmin.DecisionRequest
		wantErr error
		invalid bool
	}{
		{name: "approve lowercase", id: 7, req: bankadmin.DecisionRequest{Action: "approve"}},
		{name: "reject with comment", id: 7, req: bankadmin.DecisionRequest{Action: "REJECT", Comment: "wrong period"}},
		{name: "reject without comment", id: 7, req: bankadmin.DecisionRequest{Action: "REJECT"}, invalid: true},
		{name: "unknown action", id: 7, req: bankadmin.DecisionRequest{Action: "HOLD"}, invalid: true},
		{name: "missing disbursal", id: 404, req: bankadmin.DecisionRequest{Action: "APPROVE"}, wantErr: bankadmin.ErrDisbursalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewBankAdminService(repo)

			err := svc.DecideDisbursal(context.Background(), tt.id, tt.req)
			switch {
			case tt.invalid:
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Empty(t, repo.decisions)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				require.Len(t, repo.decisions, 1)
				assert.Equal(t, tt.id, repo.decisions[0].DisbursalRequestID)
				assert.Contains(t, []bankadmin.Action{bankadmin.ActionApprove, bankadmin.ActionReject}, repo.decisions[0].Action)
			}
		})
	}
}
