package http

import (
	"log/slog"
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

type VendorHandler interface {
	// Organization side
	ListVendors(w http.ResponseWriter, r *http.Request)
	GetVendor(w http.ResponseWriter, r *http.Request)
	CreateVendor(w http.ResponseWriter, r *http.Request)
	UpdateVendor(w http.ResponseWriter, r *http.Request)
	DeleteVendor(w http.ResponseWriter, r *http.Request)
	RequestPayment(w http.ResponseWriter, r *http.Request)
	ListPaymentRequests(w http.ResponseWriter, r *http.Request)

	// Vendor self-service
	MyProfile(w http.ResponseWriter, r *http.Request)
	UpdateMyProfile(w http.ResponseWriter, r *http.Request)
	MyReceipts(w http.ResponseWriter, r *http.Request)
	GetReceipt(w http.ResponseWriter, r *http.Request)
}

type VendorHandlerImpl struct {
	vendorService vendor.VendorService
}

func NewVendorHandler(vendorService vendor.VendorService) VendorHandler {
	return &VendorHandlerImpl{
		vendorService: vendorService,
	}
}

// ========== Organization side ==========

func (h *VendorHandlerImpl) ListVendors(w http.ResponseWriter, r *http.Request) {
	items, err := h.vendorService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *VendorHandlerImpl) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid vendor ID", nil)
		return
	}

	v, err := h.vendorService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, v)
}

func (h *VendorHandlerImpl) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendor.VendorRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateVendor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	v, err := h.vendorService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vendor created successfully", v)
}

func (h *VendorHandlerImpl) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid vendor ID", nil)
		return
	}

	var req vendor.VendorRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateVendor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	v, err := h.vendorService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vendor updated successfully", v)
}

func (h *VendorHandlerImpl) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid vendor ID", nil)
		return
	}

	if err := h.vendorService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vendor deleted successfully", nil)
}

func (h *VendorHandlerImpl) RequestPayment(w http.ResponseWriter, r *http.Request) {
	var req vendor.PaymentRequestCreate
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("RequestPayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.vendorService.RequestPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payment request submitted successfully", p)
}

func (h *VendorHandlerImpl) ListPaymentRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.vendorService.ListPaymentRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

// ========== Vendor self-service ==========

func (h *VendorHandlerImpl) MyProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.vendorService.MyProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

func (h *VendorHandlerImpl) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	var req vendor.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateMyProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.vendorService.UpdateMyProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", p)
}

func (h *VendorHandlerImpl) MyReceipts(w http.ResponseWriter, r *http.Request) {
	items, err := h.vendorService.MyReceipts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *VendorHandlerImpl) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid receipt ID", nil)
		return
	}

	rc, err := h.vendorService.GetReceipt(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rc)
}
