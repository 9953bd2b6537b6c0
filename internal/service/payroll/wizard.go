package payroll

import (
	"context"
	"fmt"
	"sync"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/notice"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

// SubmitFunc sends a composed request to the backend.
type SubmitFunc func(ctx context.Context, req payroll.DisbursalRequest) (payroll.Disbursal, error)

// Wizard is the Selection -> Preview -> Submitted flow of one payroll view.
// Submitting is tracked by the busy flag only.
type Wizard struct {
	mu sync.Mutex

	orgID   int64
	step    payroll.WizardStep
	period  string
	remarks string
	roster  *Roster
	busy    bool
	closed  bool
	notices []notice.Notice
}

func NewWizard(orgID int64, period string, employees, admins []*payroll.PayEntity) *Wizard {
	return &Wizard{
		orgID:  orgID,
		step:   payroll.StepSelection,
		period: period,
		roster: NewRoster(employees, admins),
	}
}

// AddNotice queues a notice for the next view, e.g. a load failure.
func (w *Wizard) AddNotice(n notice.Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notices = append(w.notices, n)
}

// View snapshots the wizard and drains queued notices.
func (w *Wizard) View() payroll.WizardView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *Wizard) viewLocked() payroll.WizardView {
	f := w.roster.Filter()
	v := payroll.WizardView{
		Step:                 w.step,
		OrgID:                w.orgID,
		Period:               w.period,
		Remarks:              w.remarks,
		Busy:                 w.busy,
		Filter:               payroll.FilterResponse{Search: f.Search, Department: f.Department},
		Departments:          w.roster.Departments(),
		Employees:            responses(mustVisible(w.roster, payroll.KindEmployee)),
		Admins:               responses(mustVisible(w.roster, payroll.KindOrgAdmin)),
		SelectedEmployees:    responses(w.roster.Selected(payroll.KindEmployee)),
		SelectedAdmins:       responses(w.roster.Selected(payroll.KindOrgAdmin)),
		AllEmployeesSelected: w.roster.AllSelected(payroll.KindEmployee),
		AllAdminsSelected:    w.roster.AllSelected(payroll.KindOrgAdmin),
		Totals:               payroll.NewTotalsResponse(w.roster.Totals()),
		Notices:              w.notices,
	}
	w.notices = nil
	return v
}

func mustVisible(r *Roster, kind payroll.EntityKind) []*payroll.PayEntity {
	visible, _ := r.Visible(kind)
	return visible
}

func responses(entities []*payroll.PayEntity) []payroll.EntityResponse {
	out := make([]payroll.EntityResponse, 0, len(entities))
	for _, e := range entities {
		out = append(out, payroll.NewEntityResponse(e))
	}
	return out
}

// editable guards every selection-step mutation.
func (w *Wizard) editable() error {
	switch {
	case w.closed:
		return payroll.ErrWizardClosed
	case w.busy:
		return payroll.ErrSubmissionInProgress
	case w.step != payroll.StepSelection:
		return payroll.ErrNotInSelection
	}
	return nil
}

func (w *Wizard) Toggle(kind payroll.EntityKind, id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	return w.roster.Toggle(kind, id)
}

func (w *Wizard) SelectAll(kind payroll.EntityKind) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	return w.roster.SelectAll(kind)
}

// ToggleDetails only changes presentation and is allowed on every step.
func (w *Wizard) ToggleDetails(kind payroll.EntityKind, id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return payroll.ErrWizardClosed
	}
	return w.roster.ToggleDetails(kind, id)
}

func (w *Wizard) SetFilter(f payroll.Filter) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return payroll.ErrWizardClosed
	}
	w.roster.SetFilter(f)
	return nil
}

func (w *Wizard) SetPeriod(period, remarks string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	w.period = period
	w.remarks = remarks
	return nil
}

// GoToPreview moves to the preview once at least one entity is selected and
// a period is set.
func (w *Wizard) GoToPreview() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}

	totals := w.roster.Totals()
	if totals.SelectedCount == 0 {
		return validator.ValidationErrors{{Field: "selection", Message: payroll.ErrNothingSelected.Error()}}
	}
	if w.period == "" {
		return validator.ValidationErrors{{Field: "period", Message: payroll.ErrPeriodRequired.Error()}}
	}

	w.step = payroll.StepPreview
	if n := len(totals.Ungraded); n > 0 {
		w.notices = append(w.notices, notice.Warning(fmt.Sprintf("%d selected %s no salary grade assigned and will be excluded from the request", n, plural(n, "person has", "people have"))))
	}
	if n := len(totals.OverDeducted); n > 0 {
		w.notices = append(w.notices, notice.Warning(fmt.Sprintf("%d selected %s a deduction larger than the gross salary", n, plural(n, "person has", "people have"))))
	}
	if n := totals.SelectedCount - len(totals.Ungraded); n > 0 {
		w.notices = append(w.notices, notice.Info(fmt.Sprintf(
			"Are you sure you want to submit salary disbursal request for %d %s with total amount ₹%s?",
			n, plural(n, "person", "people"), totals.Net.StringFixed(2),
		)).WithAction(notice.Action{
			Title:       "Confirm Salary Disbursal Request",
			ConfirmText: "Submit Request",
			CancelText:  "Cancel",
			Target:      payroll.SubmitTarget,
		}))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.closed:
		return payroll.ErrWizardClosed
	case w.busy:
		return payroll.ErrSubmissionInProgress
	case w.step != payroll.StepPreview:
		return payroll.ErrNotInPreview
	}
	w.step = payroll.StepSelection
	return nil
}

func (w *Wizard) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Close marks the view as torn down. An in-flight submission still
// completes but no longer changes the wizard.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

func (w *Wizard) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Submit composes the request from the preview and sends it through submit.
// The lock is released for the duration of the call. Busy is cleared on
// every path, including a panic in submit.
func (w *Wizard) Submit(ctx context.Context, submit SubmitFunc) (payroll.Outcome, error) {
	w.mu.Lock()
	switch {
	case w.closed:
		w.mu.Unlock()
		return payroll.Outcome{}, payroll.ErrWizardClosed
	case w.busy:
		w.mu.Unlock()
		return payroll.Outcome{}, payroll.ErrSubmissionInProgress
	case w.step != payroll.StepPreview:
		w.mu.Unlock()
		return payroll.Outcome{}, payroll.ErrNotInPreview
	}

	req := BuildRequest(w.orgID, w.period, w.remarks,
		w.roster.Selected(payroll.KindEmployee), w.roster.Selected(payroll.KindOrgAdmin))
	if err := ValidateRequest(req); err != nil {
		w.mu.Unlock()
		return payroll.Outcome{}, err
	}
	w.busy = true
	w.mu.Unlock()

	var (
		outcome  payroll.Outcome
		finished bool
	)
	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.busy = false
		if finished && !w.closed && outcome.Accepted() {
			w.step = payroll.StepSubmitted
		}
	}()

	disbursal, err := submit(ctx, req)
	if err != nil {
		outcome = Classify(err, req.Period)
	} else {
		outcome = payroll.Outcome{Type: payroll.OutcomeAccepted, DisbursalID: disbursal.DisbursalID, Period: req.Period}
	}
	finished = true
	return outcome, nil
}
