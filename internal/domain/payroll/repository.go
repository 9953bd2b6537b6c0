package payroll

import "context"

// DisbursalRepository stores salary disbursal requests. The backend owns the
// uniqueness of (organization, period).
type DisbursalRepository interface {
	SubmitDisbursal(ctx context.Context, req DisbursalRequest) (Disbursal, error)
	ListPendingDisbursalsByOrg(ctx context.Context, orgID int64) ([]Disbursal, error)
}
