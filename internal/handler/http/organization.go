package http

import (
	"log/slog"
	"net/http"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

type OrganizationHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)

	// Departments
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	// Salary grades
	ListSalaryGrades(w http.ResponseWriter, r *http.Request)
	GetSalaryGrade(w http.ResponseWriter, r *http.Request)
	CreateSalaryGrade(w http.ResponseWriter, r *http.Request)
	UpdateSalaryGrade(w http.ResponseWriter, r *http.Request)
	DeleteSalaryGrade(w http.ResponseWriter, r *http.Request)

	// Org admins
	ListOrgAdmins(w http.ResponseWriter, r *http.Request)
	CreateOrgAdmin(w http.ResponseWriter, r *http.Request)
	UpdateOrgAdmin(w http.ResponseWriter, r *http.Request)
	DeleteOrgAdmin(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{
		organizationService: organizationService,
	}
}

// Register accepts the sign-up form: a "dto" JSON part, any number of
// "verificationDocs" files and an optional "reactivate" flag.
func (h *OrganizationHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	req, err := readRegistration(r)
	if err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.organizationService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, resp.Notice.Message, resp)
}

func readRegistration(r *http.Request) (organization.RegisterRequest, error) {
	var req organization.RegisterRequest
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return req, err
	}
	if err := decodePart(r.MultipartForm, "dto", &req); err != nil {
		return req, err
	}
	for _, fh := range r.MultipartForm.File["verificationDocs"] {
		data, err := readFile(fh)
		if err != nil {
			return req, err
		}
		req.Documents = append(req.Documents, organization.Document{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	req.Reactivate = r.FormValue("reactivate") == "true"
	return req, nil
}

func (h *OrganizationHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	org, err := h.organizationService.Profile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, org)
}

func (h *OrganizationHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.organizationService.AccountBalance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{"balance": balance})
}

// ========== Departments ==========

func (h *OrganizationHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	items, err := h.organizationService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *OrganizationHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req organization.DepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	dept, err := h.organizationService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", dept)
}

func (h *OrganizationHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid department ID", nil)
		return
	}

	var req organization.DepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	dept, err := h.organizationService.UpdateDepartment(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", dept)
}

func (h *OrganizationHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid department ID", nil)
		return
	}

	if err := h.organizationService.DeleteDepartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ========== Salary grades ==========

func (h *OrganizationHandlerImpl) ListSalaryGrades(w http.ResponseWriter, r *http.Request) {
	items, err := h.organizationService.ListSalaryGrades(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *OrganizationHandlerImpl) GetSalaryGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid salary grade ID", nil)
		return
	}

	grade, err := h.organizationService.GetSalaryGrade(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, grade)
}

func (h *OrganizationHandlerImpl) CreateSalaryGrade(w http.ResponseWriter, r *http.Request) {
	var req organization.SalaryGradeRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateSalaryGrade decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	grade, err := h.organizationService.CreateSalaryGrade(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salary grade created successfully", grade)
}

func (h *OrganizationHandlerImpl) UpdateSalaryGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid salary grade ID", nil)
		return
	}

	var req organization.SalaryGradeRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateSalaryGrade decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	grade, err := h.organizationService.UpdateSalaryGrade(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary grade updated successfully", grade)
}

func (h *OrganizationHandlerImpl) DeleteSalaryGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid salary grade ID", nil)
		return
	}

	if err := h.organizationService.DeleteSalaryGrade(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary grade deleted successfully", nil)
}

// ========== Org admins ==========

func (h *OrganizationHandlerImpl) ListOrgAdmins(w http.ResponseWriter, r *http.Request) {
	items, err := h.organizationService.ListOrgAdmins(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

func (h *OrganizationHandlerImpl) CreateOrgAdmin(w http.ResponseWriter, r *http.Request) {
	var req organization.OrgAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("CreateOrgAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	admin, err := h.organizationService.CreateOrgAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Org admin created successfully", admin)
}

func (h *OrganizationHandlerImpl) UpdateOrgAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid org admin ID", nil)
		return
	}

	var req organization.OrgAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateOrgAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	admin, err := h.organizationService.UpdateOrgAdmin(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Org admin updated successfully", admin)
}

func (h *OrganizationHandlerImpl) DeleteOrgAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid org admin ID", nil)
		return
	}

	if err := h.organizationService.DeleteOrgAdmin(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Org admin deleted successfully", nil)
}
