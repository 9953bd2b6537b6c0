package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/config"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/middleware"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Session      SessionHandler
	View         ViewHandler
	Payroll      PayrollHandler
	Organization OrganizationHandler
	Employee     EmployeeHandler
	Vendor       VendorHandler
	BankAdmin    BankAdminHandler
	Notification NotificationHandler
	Health       HealthHandler
}

func NewRouter(cfg *config.Config, sessions middleware.SessionResolver, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-portal"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}
	r.Use(middleware.Authenticate(sessions, cookie))

	r.Get("/ready", h.Health.Ready)
	mountViews(r, h.View)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentEncoding("application/json"))

		r.Route("/session", func(r chi.Router) {
			r.With(middleware.PublicOnly).Post("/login", h.Session.Login)
			r.Post("/logout", h.Session.Logout)
			r.Post("/forgot-password", h.Session.ForgotPassword)
			r.Post("/verify-otp", h.Session.VerifyOTP)
			r.Post("/reset-password", h.Session.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession)
				r.Get("/me", h.Session.Me)
				r.Post("/change-password", h.Session.ChangePassword)
			})

			r.With(middleware.RequireRoles()).Post("/verify-password", h.Session.VerifyPassword)
		})

		r.With(middleware.PublicOnly).Post("/organizations/register", h.Organization.Register)

		r.Route("/notifications", func(r chi.Router) {
			r.Use(middleware.RequireRoles())
			r.Get("/", h.Notification.List)
			r.Get("/unread", h.Notification.ListUnread)
			r.Get("/unread-count", h.Notification.UnreadCount)
			r.Get("/stream", h.Notification.Stream)
			r.Put("/read-all", h.Notification.MarkAllAsRead)
			r.Put("/{id}/read", h.Notification.MarkAsRead)
			r.Delete("/{id}", h.Notification.Delete)
		})

		r.Route("/organization", func(r chi.Router) {
			r.Use(middleware.RequireRoles(auth.OrganizationRoles...))
			r.Use(middleware.RequireOrganization)

			r.Get("/profile", h.Organization.Profile)
			r.Get("/balance", h.Organization.Balance)

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Organization.ListDepartments)
				r.Post("/", h.Organization.CreateDepartment)
				r.Put("/{id}", h.Organization.UpdateDepartment)
				r.Delete("/{id}", h.Organization.DeleteDepartment)
			})

			r.Route("/salary-grades", func(r chi.Router) {
				r.Get("/", h.Organization.ListSalaryGrades)
				r.Post("/", h.Organization.CreateSalaryGrade)
				r.Get("/{id}", h.Organization.GetSalaryGrade)
				r.Put("/{id}", h.Organization.UpdateSalaryGrade)
				r.Delete("/{id}", h.Organization.DeleteSalaryGrade)
			})

			r.Route("/org-admins", func(r chi.Router) {
				r.Get("/", h.Organization.ListOrgAdmins)
				r.Post("/", h.Organization.CreateOrgAdmin)
				r.Put("/{id}", h.Organization.UpdateOrgAdmin)
				r.Delete("/{id}", h.Organization.DeleteOrgAdmin)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})

			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", h.Vendor.ListVendors)
				r.Post("/", h.Vendor.CreateVendor)
				r.Get("/{id}", h.Vendor.GetVendor)
				r.Put("/{id}", h.Vendor.UpdateVendor)
				r.Delete("/{id}", h.Vendor.DeleteVendor)
			})

			r.Route("/vendor-payments", func(r chi.Router) {
				r.Get("/", h.Vendor.ListPaymentRequests)
				r.Post("/", h.Vendor.RequestPayment)
			})

			r.Get("/disbursals/pending", h.Payroll.PendingDisbursals)

			r.Route("/payroll/wizard", func(r chi.Router) {
				r.Post("/", h.Payroll.OpenWizard)
				r.Get("/", h.Payroll.GetWizard)
				r.Delete("/", h.Payroll.CloseWizard)
				r.Put("/filter", h.Payroll.SetFilter)
				r.Put("/period", h.Payroll.SetPeriod)
				r.Post("/preview", h.Payroll.Preview)
				r.Post("/back", h.Payroll.Back)
				r.Post("/submit", h.Payroll.Submit)
				r.Post("/{kind}/select-all", h.Payroll.SelectAll)
				r.Post("/{kind}/{id}/toggle", h.Payroll.Toggle)
				r.Post("/{kind}/{id}/details", h.Payroll.ToggleDetails)
			})
		})

		r.Route("/employee", func(r chi.Router) {
			r.Use(middleware.RequireRoles(auth.RoleEmployee))
			r.Use(middleware.RequireEmployee)

			r.Get("/dashboard", h.Employee.Dashboard)
			r.Get("/salary-slips", h.Employee.SalarySlips)
			r.Get("/salary-slips/{id}", h.Employee.SalarySlip)
			r.Get("/concerns", h.Employee.Concerns)
			r.Post("/concerns", h.Employee.RaiseConcern)
		})

		r.Route("/vendor", func(r chi.Router) {
			r.Use(middleware.RequireRoles(auth.RoleVendor))

			r.Get("/profile", h.Vendor.MyProfile)
			r.Put("/profile", h.Vendor.UpdateMyProfile)
			r.Get("/receipts", h.Vendor.MyReceipts)
			r.Get("/receipts/{id}", h.Vendor.GetReceipt)
		})

		r.Route("/bank-admin", func(r chi.Router) {
			r.Use(middleware.RequireRoles(auth.RoleBankAdmin))

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", h.BankAdmin.ListOrganizations)
				r.Get("/pending", h.BankAdmin.ListPendingOrganizations)
				r.Get("/deletion-requests", h.BankAdmin.ListDeletionRequests)
				r.Post("/{id}/approve", h.BankAdmin.ApproveOrganization)
				r.Post("/{id}/reject", h.BankAdmin.RejectOrganization)
				r.Post("/{id}/deletion", h.BankAdmin.HandleDeletion)
			})

			r.Route("/disbursals", func(r chi.Router) {
				r.Get("/pending", h.BankAdmin.ListPendingDisbursals)
				r.Get("/{id}", h.BankAdmin.GetDisbursal)
				r.Post("/{id}/decision", h.BankAdmin.DecideDisbursal)
			})

			r.Route("/vendor-payments", func(r chi.Router) {
				r.Get("/pending", h.BankAdmin.ListPendingPayments)
				r.Post("/{id}/decision", h.BankAdmin.DecidePayment)
			})

			r.Get("/audit-logs", h.BankAdmin.ListAuditLogs)
			r.Get("/audit-logs/count", h.BankAdmin.CountAuditLogs)
		})
	})
	return r
}

// mountViews registers the page routes with their guards.
func mountViews(r chi.Router, v ViewHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.PublicOnly)
		r.Get(auth.PathRoot, v.Page("landing"))
		r.Get(auth.PathLogin, v.Page("login"))
		r.Get("/register", v.Page("register"))
		r.Get("/forgot-password", v.Page("forgot-password"))
	})

	r.Get(auth.PathUnauthorized, v.Page("unauthorized"))
	r.With(middleware.RequireSession).Get(auth.PathChangePassword, v.Page("change-password"))
	r.With(middleware.RequireRoles()).Get("/notifications", v.Page("notifications"))

	r.Route("/bank-admin", func(r chi.Router) {
		r.Use(middleware.RequireRoles(auth.RoleBankAdmin))
		r.Get("/dashboard", v.Page("bank-admin-dashboard"))
		r.Get("/organizations", v.Page("bank-admin-organizations"))
		r.Get("/disbursals", v.Page("bank-admin-disbursals"))
		r.Get("/vendor-payments", v.Page("bank-admin-vendor-payments"))
		r.Get("/audit-logs", v.Page("bank-admin-audit-logs"))
	})

	r.Route("/organization", func(r chi.Router) {
		r.Use(middleware.RequireRoles(auth.OrganizationRoles...))
		r.Get("/dashboard", v.Page("organization-dashboard"))
		r.Get("/departments", v.Page("organization-departments"))
		r.Get("/employees", v.Page("organization-employees"))
		r.Get("/org-admins", v.Page("organization-org-admins"))
		r.Get("/salary-grades", v.Page("organization-salary-grades"))
		r.Get("/vendors", v.Page("organization-vendors"))
		r.Get("/payroll", v.Page("organization-payroll"))
	})

	r.Route("/employee", func(r chi.Router) {
		r.Use(middleware.RequireRoles(auth.RoleEmployee))
		r.Get("/dashboard", v.Page("employee-dashboard"))
		r.Get("/salary-slips", v.Page("employee-salary-slips"))
		r.Get("/concerns", v.Page("employee-concerns"))
	})

	r.Route("/vendor", func(r chi.Router) {
		r.Use(middleware.RequireRoles(auth.RoleVendor))
		r.Get("/dashboard", v.Page("vendor-dashboard"))
		r.Get("/profile", v.Page("vendor-profile"))
		r.Get("/receipts", v.Page("vendor-receipts"))
	})
}
