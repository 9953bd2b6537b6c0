package organization

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/notice"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

// ========== DEPARTMENT DTOs ==========

type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *DepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "department name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "department name must not exceed 100 characters"})
	}
	if len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== SALARY GRADE DTOs ==========

type SalaryGradeRequest struct {
	GradeCode   string          `json:"gradeCode"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	HRA         decimal.Decimal `json:"hra"`
	DA          decimal.Decimal `json:"da"`
	PF          decimal.Decimal `json:"pf"`
	Allowances  decimal.Decimal `json:"allowances"`
}

func (r *SalaryGradeRequest) Grade() payroll.SalaryGrade {
	return payroll.SalaryGrade{
		GradeCode:   r.GradeCode,
		BasicSalary: r.BasicSalary,
		HRA:         r.HRA,
		DA:          r.DA,
		Allowances:  r.Allowances,
		PF:          r.PF,
	}
}

func (r *SalaryGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.GradeCode = strings.TrimSpace(r.GradeCode)
	if r.GradeCode == "" {
		errs = append(errs, validator.ValidationError{Field: "gradeCode", Message: "grade code is required"})
	}
	if r.BasicSalary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "basic salary is required"})
	}

	switch err := r.Grade().Validate(); {
	case err == nil:
	case err == payroll.ErrDeductionExceedsGross:
		errs = append(errs, validator.ValidationError{Field: "pf", Message: err.Error()})
	default:
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== ORG ADMIN DTOs ==========

// OrgAdminRequest creates or updates an org admin. Password is only used on
// creation.
type OrgAdminRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DepartmentName  string `json:"departmentName,omitempty"`
	SalaryGradeID   *int64 `json:"salaryGradeId,omitempty"`
	BankAccountName string `json:"bankAccountName,omitempty"`
	BankAccountNo   string `json:"bankAccountNo,omitempty"`
	IFSCCode        string `json:"ifscCode,omitempty"`
	FileURL         string `json:"fileUrl,omitempty"`
	Password        string `json:"password,omitempty"`
}

func (r *OrgAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10 digit number"})
	}
	if r.IFSCCode != "" && !validator.IsValidIFSC(r.IFSCCode) {
		errs = append(errs, validator.ValidationError{Field: "ifscCode", Message: "invalid IFSC code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== REGISTRATION DTOs ==========

// Document is an uploaded verification file forwarded with a registration.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// RegisterRequest signs up a new organization. The record goes to the bank
// for approval; Documents and Reactivate travel outside the JSON part.
type RegisterRequest struct {
	OrgName       string     `json:"orgName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	BankAccountNo string     `json:"bankAccountNo"`
	IFSCCode      string     `json:"ifscCode"`
	BankName      string     `json:"bankName"`
	EmployeeCount int        `json:"employeeCount"`
	Documents     []Document `json:"-"`
	Reactivate    bool       `json:"-"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.OrgName = strings.TrimSpace(r.OrgName)
	r.Email = strings.TrimSpace(r.Email)
	r.IFSCCode = strings.ToUpper(strings.TrimSpace(r.IFSCCode))

	if r.OrgName == "" {
		errs = append(errs, validator.ValidationError{Field: "orgName", Message: "organization name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10 digit number"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}
	if !validator.IsValidBankAccount(r.BankAccountNo) {
		errs = append(errs, validator.ValidationError{Field: "bankAccountNo", Message: "bank account number must be 9 to 18 digits"})
	}
	if !validator.IsValidIFSC(r.IFSCCode) {
		errs = append(errs, validator.ValidationError{Field: "ifscCode", Message: "invalid IFSC code"})
	}
	if validator.IsEmpty(r.BankName) {
		errs = append(errs, validator.ValidationError{Field: "bankName", Message: "bank name is required"})
	}
	if r.EmployeeCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeCount", Message: "employee count must not be negative"})
	}
	if len(r.Documents) == 0 {
		errs = append(errs, validator.ValidationError{Field: "verificationDocs", Message: "at least one verification document is required"})
	}
	for _, d := range r.Documents {
		if len(d.Data) == 0 {
			errs = append(errs, validator.ValidationError{Field: "verificationDocs", Message: "verification document " + d.Name + " is empty"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterResponse tells the browser where to go once the organization is on file.
type RegisterResponse struct {
	Organization Organization  `json:"organization"`
	Redirect     string        `json:"redirect"`
	Notice       notice.Notice `json:"notice"`
}
