package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

// Employee is the backend's view of an organization employee.
type Employee struct {
	EmpID           int64                `json:"empId"`
	EmpName         string               `json:"empName"`
	EmpEmail        string               `json:"empEmail"`
	Phone           string               `json:"phone,omitempty"`
	BankAccountNo   string               `json:"bankAccountNo,omitempty"`
	BankAccountName string               `json:"bankAccountName,omitempty"`
	IFSCCode        string               `json:"ifscCode,omitempty"`
	Status          string               `json:"status,omitempty"`
	OrganizationID  int64                `json:"organizationId,omitempty"`
	DepartmentID    *int64               `json:"departmentId,omitempty"`
	DepartmentName  string               `json:"departmentName,omitempty"`
	SalaryGradeID   *int64               `json:"salaryGradeId,omitempty"`
	GradeCode       string               `json:"gradeCode,omitempty"`
	SalaryGrade     *payroll.SalaryGrade `json:"salaryGrade,omitempty"`
}

// ToPayEntity converts the employee into a selectable payroll entry.
func (e Employee) ToPayEntity() *payroll.PayEntity {
	return &payroll.PayEntity{
		Kind:           payroll.KindEmployee,
		ID:             e.EmpID,
		Name:           e.EmpName,
		Email:          e.EmpEmail,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		GradeCode:      e.GradeCode,
		Grade:          e.SalaryGrade,
	}
}

// SalarySlip is a monthly pay statement issued by the backend.
type SalarySlip struct {
	SlipID          int64           `json:"slipId"`
	Period          string          `json:"period"`
	GeneratedAt     *time.Time      `json:"generatedAt,omitempty"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	EmpID           int64           `json:"empId"`
	EmpName         string          `json:"empName,omitempty"`
	EmpEmail        string          `json:"empEmail,omitempty"`
	BankAccountNo   string          `json:"bankAccountNo,omitempty"`
	IFSCCode        string          `json:"ifscCode,omitempty"`
	GradeCode       string          `json:"gradeCode,omitempty"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	HRA             decimal.Decimal `json:"hra"`
	DA              decimal.Decimal `json:"da"`
	PF              decimal.Decimal `json:"pf"`
	Allowances      decimal.Decimal `json:"allowances"`
	DisbursalID     int64           `json:"disbursalId,omitempty"`
	DisbursalStatus string          `json:"disbursalStatus,omitempty"`
	OrgName         string          `json:"orgName,omitempty"`
	DepartmentName  string          `json:"departmentName,omitempty"`
}

// Gross recomputes the earnings of the slip from its components.
func (s SalarySlip) Gross() decimal.Decimal {
	return s.BasicSalary.Add(s.HRA).Add(s.DA).Add(s.Allowances)
}

// Dashboard is the employee home summary.
type Dashboard struct {
	EmpID          int64  `json:"empId"`
	EmpName        string `json:"empName"`
	EmpEmail       string `json:"empEmail"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status,omitempty"`
	BankAccountNo  string `json:"bankAccountNo,omitempty"`
	IFSCCode       string `json:"ifscCode,omitempty"`
	OrgName        string `json:"orgName,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}

// Concern is a grievance raised by an employee.
type Concern struct {
	ConcernID     int64      `json:"concernId"`
	Description   string     `json:"description"`
	AttachmentURL string     `json:"attachmentUrl,omitempty"`
	Status        string     `json:"status"`
	RaisedAt      *time.Time `json:"raisedAt,omitempty"`
	EmpID         int64      `json:"empid"`
}
