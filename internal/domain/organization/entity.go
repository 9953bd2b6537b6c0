package organization

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type VerificationDocument struct {
	DocumentID int64  `json:"documentId"`
	FileName   string `json:"fileName"`
	FileURL    string `json:"fileUrl"`
	Type       string `json:"documentType,omitempty"`
}

type Organization struct {
	OrgID                 int64                  `json:"orgId"`
	OrgName               string                 `json:"orgName"`
	Email                 string                 `json:"email"`
	Phone                 string                 `json:"phone,omitempty"`
	Address               string                 `json:"address,omitempty"`
	BankAccountNo         string                 `json:"bankAccountNo,omitempty"`
	IFSCCode              string                 `json:"ifscCode,omitempty"`
	BankName              string                 `json:"bankName,omitempty"`
	EmployeeCount         int                    `json:"employeeCount"`
	AccountBalance        decimal.Decimal        `json:"accountBalance"`
	Status                Status                 `json:"status"`
	CreatedAt             *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt             *time.Time             `json:"updatedAt,omitempty"`
	VerificationDocuments []VerificationDocument `json:"verificationDocuments,omitempty"`
}

type Department struct {
	DepartmentID   int64  `json:"departmentId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationID int64  `json:"organizationId"`
	EmployeeCount  int64  `json:"employeeCount"`
	AdminCount     int64  `json:"adminCount"`
}

// OrgAdmin is an administrator employed by an organization.
type OrgAdmin struct {
	OrgAdminID      int64                `json:"orgAdminId"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone,omitempty"`
	Status          string               `json:"status,omitempty"`
	OrganizationID  int64                `json:"organizationId,omitempty"`
	DepartmentID    *int64               `json:"departmentId,omitempty"`
	DepartmentName  string               `json:"departmentName,omitempty"`
	SalaryGradeID   *int64               `json:"salaryGradeId,omitempty"`
	GradeCode       string               `json:"gradeCode,omitempty"`
	BankAccountName string               `json:"bankAccountName,omitempty"`
	BankAccountNo   string               `json:"bankAccountNo,omitempty"`
	IFSCCode        string               `json:"ifscCode,omitempty"`
	SalaryGrade     *payroll.SalaryGrade `json:"salaryGrade,omitempty"`
}

// ToPayEntity converts the admin into a selectable payroll entry.
func (a OrgAdmin) ToPayEntity() *payroll.PayEntity {
	gradeCode := a.GradeCode
	if gradeCode == "" && a.SalaryGrade != nil {
		gradeCode = a.SalaryGrade.GradeCode
	}
	return &payroll.PayEntity{
		Kind:           payroll.KindOrgAdmin,
		ID:             a.OrgAdminID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		DepartmentID:   a.DepartmentID,
		DepartmentName: a.DepartmentName,
		GradeCode:      gradeCode,
		Grade:          a.SalaryGrade,
	}
}
