package employee

import (
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/validator"
)

// EmployeeRequest creates or updates an employee.
type EmployeeRequest struct {
	EmpName         string `json:"empName"`
	EmpEmail        string `json:"empEmail"`
	Phone           string `json:"phone"`
	BankAccountNo   string `json:"bankAccountNo"`
	BankAccountName string `json:"bankAccountName"`
	IFSCCode        string `json:"ifscCode"`
	DepartmentName  string `json:"departmentName"`
	SalaryGradeID   *int64 `json:"salaryGradeId,omitempty"`
	DocumentURL     string `json:"documentUrl,omitempty"`
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpName) {
		errs = append(errs, validator.ValidationError{Field: "empName", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.EmpEmail) {
		errs = append(errs, validator.ValidationError{Field: "empEmail", Message: "a valid email is required"})
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10 digit number"})
	}
	if r.BankAccountNo != "" && !validator.IsValidBankAccount(r.BankAccountNo) {
		errs = append(errs, validator.ValidationError{Field: "bankAccountNo", Message: "bank account number must be 9 to 18 digits"})
	}
	if r.IFSCCode != "" && !validator.IsValidIFSC(r.IFSCCode) {
		errs = append(errs, validator.ValidationError{Field: "ifscCode", Message: "invalid IFSC code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RaiseConcernRequest struct {
	Description   string `json:"description"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
	EmpID         int64  `json:"empid"`
}

func (r *RaiseConcernRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if len(r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
