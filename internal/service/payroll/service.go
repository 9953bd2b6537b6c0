package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/notice"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	orgAdminRepo  organization.OrgAdminRepository
	disbursalRepo payroll.DisbursalRepository
	registry      *Registry
	now           func() time.Time
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	orgAdminRepo organization.OrgAdminRepository,
	disbursalRepo payroll.DisbursalRepository,
	registry *Registry,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:  employeeRepo,
		orgAdminRepo:  orgAdminRepo,
		disbursalRepo: disbursalRepo,
		registry:      registry,
		now:           time.Now,
	}
}

// getSessionAndOrg returns the signed-in session and its organization.
func getSessionAndOrg(ctx context.Context) (auth.Session, int64, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return auth.Session{}, 0, err
	}
	s, _ := auth.SessionFromContext(ctx)
	return s, orgID, nil
}

func (s *PayrollServiceImpl) wizard(ctx context.Context) (*Wizard, error) {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return nil, auth.ErrNotAuthenticated
	}
	return s.registry.Get(session.Key)
}

// ========== WIZARD LIFECYCLE ==========

// OpenWizard loads the roster and starts a fresh selection for the current
// month. A failure to load admins leaves the admin list empty since an
// organization may have none.
func (s *PayrollServiceImpl) OpenWizard(ctx context.Context) (payroll.WizardView, error) {
	session, orgID, err := getSessionAndOrg(ctx)
	if err != nil {
		return payroll.WizardView{}, err
	}

	var (
		employees   []*payroll.PayEntity
		admins      []*payroll.PayEntity
		employeeErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		list, err := s.employeeRepo.ListEmployees(ctx, orgID)
		if err != nil {
			employeeErr = err
			return nil
		}
		employees = make([]*payroll.PayEntity, 0, len(list))
		for _, e := range list {
			employees = append(employees, e.ToPayEntity())
		}
		return nil
	})
	g.Go(func() error {
		list, err := s.orgAdminRepo.ListOrgAdmins(ctx, orgID)
		if err != nil {
			slog.Warn("Failed to load org admins", "org_id", orgID, "error", err)
			return nil
		}
		admins = make([]*payroll.PayEntity, 0, len(list))
		for _, a := range list {
			admins = append(admins, a.ToPayEntity())
		}
		return nil
	})
	_ = g.Wait()

	w := NewWizard(orgID, s.now().Format("2006-01"), employees, admins)
	if employeeErr != nil {
		slog.Error("Failed to load employees", "org_id", orgID, "error", employeeErr)
		w.AddNotice(notice.Error(payroll.ErrEmployeesUnavailable.Error()))
	}
	s.registry.Open(session.Key, w)
	return w.View(), nil
}

func (s *PayrollServiceImpl) GetWizard(ctx context.Context) (payroll.WizardView, error) {
	w, err := s.wizard(ctx)
	if err != nil {
		return payroll.WizardView{}, err
	}
	return w.View(), nil
}

func (s *PayrollServiceImpl) CloseWizard(ctx context.Context) error {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return auth.ErrNotAuthenticated
	}
	s.registry.Close(session.Key)
	return nil
}

// ========== SELECTION ==========

func (s *PayrollServiceImpl) apply(ctx context.Context, fn func(w *Wizard) error) (payroll.WizardView, error) {
	w, err := s.wizard(ctx)
	if err != nil {
		return payroll.WizardView{}, err
	}
	if err := fn(w); err != nil {
		return payroll.WizardView{}, err
	}
	return w.View(), nil
}

func (s *PayrollServiceImpl) SetFilter(ctx context.Context, req payroll.FilterRequest) (payroll.WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		return w.SetFilter(req.ToFilter())
	})
}

func (s *PayrollServiceImpl) SetPeriod(ctx context.Context, req payroll.PeriodRequest) (payroll.WizardView, error) {
	if err := req.Validate(); err != nil {
		return payroll.WizardView{}, err
	}
	return s.apply(ctx, func(w *Wizard) error {
		return w.SetPeriod(req.Period, req.Remarks)
	})
}

func (s *PayrollServiceImpl) Toggle(ctx context.Context, kind payroll.EntityKind, id int64) (payroll.WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		return w.Toggle(kind, id)
	})
}

func (s *PayrollServiceImpl) ToggleDetails(ctx context.Context, kind payroll.EntityKind, id int64) (payroll.WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		return w.ToggleDetails(kind, id)
	})
}

func (s *PayrollServiceImpl) SelectAll(ctx context.Context, kind payroll.EntityKind) (payroll.WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		return w.SelectAll(kind)
	})
}

func (s *PayrollServiceImpl) Preview(ctx context.Context) (payroll.WizardView, error) {
	return s.apply(ctx, (*Wizard).GoToPreview)
}

func (s *PayrollServiceImpl) Back(ctx context.Context) (payroll.WizardView, error) {
	return s.apply(ctx, (*Wizard).Back)
}

// ========== SUBMISSION ==========

func (s *PayrollServiceImpl) Submit(ctx context.Context) (payroll.SubmitResponse, error) {
	session, _, err := getSessionAndOrg(ctx)
	if err != nil {
		return payroll.SubmitResponse{}, err
	}
	w, err := s.registry.Get(session.Key)
	if err != nil {
		return payroll.SubmitResponse{}, err
	}

	outcome, err := w.Submit(ctx, s.disbursalRepo.SubmitDisbursal)
	if err != nil {
		return payroll.SubmitResponse{}, err
	}

	resp := payroll.SubmitResponse{
		Outcome:     outcome.Type,
		DisbursalID: outcome.DisbursalID,
		Period:      outcome.Period,
		Message:     outcome.Message,
	}

	switch outcome.Type {
	case payroll.OutcomeAccepted:
		resp.Message = fmt.Sprintf("Salary disbursal request submitted successfully! Request ID: %d", outcome.DisbursalID)
		resp.Notice = notice.Success(resp.Message)
		resp.Redirect = auth.PathOrganizationDashboard
		resp.StatusCode = http.StatusCreated
		slog.Info("Salary disbursal submitted", "disbursal_id", outcome.DisbursalID, "period", outcome.Period)
		s.registry.Discard(session.Key, w)
		return resp, nil

	case payroll.OutcomeDuplicatePeriod:
		resp.Notice = notice.Warning(outcome.Message).WithAction(notice.Action{
			Title:       "Duplicate Payroll Request",
			ConfirmText: "Go to Dashboard",
			CancelText:  "Close",
			Target:      auth.PathOrganizationDashboard,
		})
		resp.StatusCode = http.StatusConflict

	case payroll.OutcomeValidationError:
		resp.Notice = notice.Error(outcome.Message)
		resp.StatusCode = http.StatusUnprocessableEntity

	default:
		resp.Notice = notice.Error(outcome.Message)
		resp.StatusCode = outcome.StatusCode
		if resp.StatusCode < http.StatusBadRequest {
			resp.StatusCode = http.StatusBadGateway
		}
	}

	slog.Warn("Salary disbursal rejected", "outcome", outcome.Type, "period", outcome.Period, "message", outcome.Message)
	if !w.Closed() {
		view := w.View()
		resp.View = &view
	}
	return resp, nil
}

func (s *PayrollServiceImpl) ListPendingDisbursals(ctx context.Context) ([]payroll.Disbursal, error) {
	orgID, err := auth.OrgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.disbursalRepo.ListPendingDisbursalsByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []payroll.Disbursal{}
	}
	return out, nil
}
