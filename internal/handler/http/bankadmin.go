package http

import (
	"log/slog"
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/audit"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

type BankAdminHandler interface {
	// Organizations
	ListOrganizations(w http.ResponseWriter, r *http.Request)
	ListPendingOrganizations(w http.ResponseWriter, r *http.Request)
	ApproveOrganization(w http.ResponseWriter, r *http.Request)
	RejectOrganization(w http.ResponseWriter, r *http.Request)
	ListDeletionRequests(w http.ResponseWriter, r *http.Request)
	HandleDeletion(w http.ResponseWriter, r *http.Request)

	// Salary disbursals
	ListPendingDisbursals(w http.ResponseWriter, r *http.Request)
	GetDisbursal(w http.ResponseWriter, r *http.Request)
	DecideDisbursal(w http.ResponseWriter, r *http.Request)

	// Vendor payments
	ListPendingPayments(w http.ResponseWriter, r *http.Request)
	DecidePayment(w http.ResponseWriter, r *http.Request)

	// Audit log
	ListAuditLogs(w http.ResponseWriter, r *http.Request)
	CountAuditLogs(w http.ResponseWriter, r *http.Request)
}

type BankAdminHandlerImpl struct {
	bankAdminService bankadmin.BankAdminService
	auditService     audit.AuditService
}

func NewBankAdminHandler(bankAdminService bankadmin.BankAdminService, auditService audit.AuditService) BankAdminHandler {
	return &BankAdminHandlerImpl{
		bankAdminService: bankAdminService,
		auditService:     auditService,
	}
}

// ========== Organizations ==========

func (h *BankAdminHandlerImpl) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	items, err := h.bankAdminService.ListOrganizations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *BankAdminHandlerImpl) ListPendingOrganizations(w http.ResponseWriter, r *http.Request) {
	items, err := h.bankAdminService.ListPendingOrganizations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *BankAdminHandlerImpl) ApproveOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid organization ID", nil)
		return
	}

	org, err := h.bankAdminService.ApproveOrganization(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Organization approved", org)
}

func (h *BankAdminHandlerImpl) RejectOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid organization ID", nil)
		return
	}

	var req bankadmin.RejectRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("RejectOrganization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	org, err := h.bankAdminService.RejectOrganization(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Organization rejected", org)
}

func (h *BankAdminHandlerImpl) ListDeletionRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.bankAdminService.ListDeletionRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *BankAdminHandlerImpl) HandleDeletion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid organization ID", nil)
		return
	}

	var req bankadmin.DeletionDecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("HandleDeletion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.bankAdminService.HandleDeletion(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Deletion request processed", nil)
}

// ========== Salary disbursals ==========

func (h *BankAdminHandlerImpl) ListPendingDisbursals(w http.ResponseWriter, r *http.Request) {
	items, err := h.bankAdminService.ListPendingDisbursals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *BankAdminHandlerImpl) GetDisbursal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid disbursal ID", nil)
		return
	}

	d, err := h.bankAdminService.GetDisbursal(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, d)
}

func (h *BankAdminHandlerImpl) DecideDisbursal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid disbursal ID", nil)
		return
	}

	var req bankadmin.DecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("DecideDisbursal decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.bankAdminService.DecideDisbursal(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary disbursal request updated", nil)
}

// ========== Vendor payments ==========

func (h *BankAdminHandlerImpl) ListPendingPayments(w http.ResponseWriter, r *http.Request) {
	items, err := h.bankAdminService.ListPendingPayments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *BankAdminHandlerImpl) DecidePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid payment request ID", nil)
		return
	}

	var req bankadmin.DecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("DecidePayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.bankAdminService.DecidePayment(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payment request updated", p)
}

// ========== Audit log ==========

func (h *BankAdminHandlerImpl) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	f, err := audit.FilterFromQuery(r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.auditService.List(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Logs, &response.Meta{TotalItems: result.Count})
}

func (h *BankAdminHandlerImpl) CountAuditLogs(w http.ResponseWriter, r *http.Request) {
	count, err := h.auditService.Count(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int64{"count": count})
}
