package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

type PayrollHandler interface {
	OpenWizard(w http.ResponseWriter, r *http.Request)
	GetWizard(w http.ResponseWriter, r *http.Request)
	CloseWizard(w http.ResponseWriter, r *http.Request)
	SetFilter(w http.ResponseWriter, r *http.Request)
	SetPeriod(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
	ToggleDetails(w http.ResponseWriter, r *http.Request)
	SelectAll(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Back(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	PendingDisbursals(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

func (h *PayrollHandlerImpl) OpenWizard(w http.ResponseWriter, r *http.Request) {
	view, err := h.payrollService.OpenWizard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll selection opened", view)
}

func (h *PayrollHandlerImpl) GetWizard(w http.ResponseWriter, r *http.Request) {
	view, err := h.payrollService.GetWizard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *PayrollHandlerImpl) CloseWizard(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.CloseWizard(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll selection closed", nil)
}

func (h *PayrollHandlerImpl) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req payroll.FilterRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("SetFilter decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	view, err := h.payrollService.SetFilter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *PayrollHandlerImpl) SetPeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.PeriodRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("SetPeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	view, err := h.payrollService.SetPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// entityParams reads the {kind}/{id} pair of a selection route.
func entityParams(r *http.Request) (payroll.EntityKind, int64, error) {
	kind, err := payroll.ParseEntityKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", 0, err
	}
	id, ok := idParam(r, "id")
	if !ok {
		return "", 0, payroll.ErrEntityNotFound
	}
	return kind, id, nil
}

func (h *PayrollHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	kind, id, err := entityParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.payrollService.Toggle(r.Context(), kind, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *PayrollHandlerImpl) ToggleDetails(w http.ResponseWriter, r *http.Request) {
	kind, id, err := entityParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.payrollService.ToggleDetails(r.Context(), kind, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *PayrollHandlerImpl) SelectAll(w http.ResponseWriter, r *http.Request) {
	kind, err := payroll.ParseEntityKind(chi.URLParam(r, "kind"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.payrollService.SelectAll(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *PayrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	view, err := h.payrollService.Preview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *PayrollHandlerImpl) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.payrollService.Back(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// Submit answers with the outcome of the disbursal request. Rejected
// requests still carry the notice and the view to render.
func (h *PayrollHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.Submit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, resp.StatusCode, response.Response{
		Success: resp.Outcome == payroll.OutcomeAccepted,
		Message: resp.Message,
		Data:    resp,
	})
}

func (h *PayrollHandlerImpl) PendingDisbursals(w http.ResponseWriter, r *http.Request) {
	items, err := h.payrollService.ListPendingDisbursals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}
