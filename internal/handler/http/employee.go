package http

import (
	"log/slog"
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

type EmployeeHandler interface {
	// Organization side
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)

	// Self-service
	Dashboard(w http.ResponseWriter, r *http.Request)
	SalarySlips(w http.ResponseWriter, r *http.Request)
	SalarySlip(w http.ResponseWriter, r *http.Request)
	Concerns(w http.ResponseWriter, r *http.Request)
	RaiseConcern(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, results, &response.Meta{TotalItems: int64(len(results))})
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.EmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.EmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Dashboard implements EmployeeHandler
func (h *employeeHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.MyDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SalarySlips implements EmployeeHandler
func (h *employeeHandlerImpl) SalarySlips(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.MySalarySlips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, results, &response.Meta{TotalItems: int64(len(results))})
}

// SalarySlip implements EmployeeHandler
func (h *employeeHandlerImpl) SalarySlip(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid salary slip ID", nil)
		return
	}

	result, err := h.employeeService.GetSalarySlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Concerns implements EmployeeHandler
func (h *employeeHandlerImpl) Concerns(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.MyConcerns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, results, &response.Meta{TotalItems: int64(len(results))})
}

// RaiseConcern implements EmployeeHandler
func (h *employeeHandlerImpl) RaiseConcern(w http.ResponseWriter, r *http.Request) {
	var req employee.RaiseConcernRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("RaiseConcern decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.RaiseConcern(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Concern raised successfully", result)
}
