package backend

import (
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/audit"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/notification"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
)

var (
	_ auth.AccountRepository              = (*Client)(nil)
	_ payroll.DisbursalRepository         = (*Client)(nil)
	_ employee.EmployeeRepository         = (*Client)(nil)
	_ organization.OrganizationRepository = (*Client)(nil)
	_ organization.OrgAdminRepository     = (*Client)(nil)
	_ vendor.VendorRepository             = (*Client)(nil)
	_ vendor.PaymentRequestRepository     = (*Client)(nil)
	_ bankadmin.BankAdminRepository       = (*Client)(nil)
	_ audit.AuditRepository               = (*Client)(nil)
	_ notification.NotificationRepository = (*Client)(nil)
)
