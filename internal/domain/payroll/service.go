package payroll

import "context"

// PayrollService drives the disbursal wizard of the signed-in organization.
type PayrollService interface {
	OpenWizard(ctx context.Context) (WizardView, error)
	GetWizard(ctx context.Context) (WizardView, error)
	CloseWizard(ctx context.Context) error

	SetFilter(ctx context.Context, req FilterRequest) (WizardView, error)
	SetPeriod(ctx context.Context, req PeriodRequest) (WizardView, error)
	Toggle(ctx context.Context, kind EntityKind, id int64) (WizardView, error)
	ToggleDetails(ctx context.Context, kind EntityKind, id int64) (WizardView, error)
	SelectAll(ctx context.Context, kind EntityKind) (WizardView, error)

	Preview(ctx context.Context) (WizardView, error)
	Back(ctx context.Context) (WizardView, error)
	Submit(ctx context.Context) (SubmitResponse, error)

	ListPendingDisbursals(ctx context.Context) ([]Disbursal, error)
}
