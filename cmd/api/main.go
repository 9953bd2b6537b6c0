package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/config"
	appHTTP "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/middleware"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/credential"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/cron"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/jwt"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/sse"
	serviceAudit "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/audit"
	serviceAuth "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/auth"
	serviceBankAdmin "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/bankadmin"
	serviceEmployee "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/employee"
	serviceNotification "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/notification"
	serviceOrganization "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/organization"
	servicePayroll "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/payroll"
	serviceVendor "github.com/tejas11054/Payment-and-Payroll-Management-System/internal/service/vendor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.App.LogLevel)})))
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store credential.Store
	switch cfg.Session.Store {
	case "redis":
		client := credential.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer client.Close()
		store = credential.NewRedisStore(client, cfg.Redis.KeyPrefix)
	default:
		store = credential.NewMemoryStore()
	}

	backendClient, err := backend.New(cfg.Backend)
	if err != nil {
		log.Fatal("Failed to initialize backend client:", err)
	}

	hub := sse.NewHub()
	registry := servicePayroll.NewRegistry()

	authService := serviceAuth.NewAuthService(backendClient, store, jwt.NewReader(), cfg.Session.TTL, registry.Close, hub.Close)
	payrollService := servicePayroll.NewPayrollService(backendClient, backendClient, backendClient, registry)
	organizationService := serviceOrganization.NewOrganizationService(backendClient, backendClient)
	employeeService := serviceEmployee.NewEmployeeService(backendClient)
	vendorService := serviceVendor.NewVendorService(backendClient, backendClient)
	bankAdminService := serviceBankAdmin.NewBankAdminService(backendClient)
	auditService := serviceAudit.NewAuditService(backendClient)
	notificationService := serviceNotification.NewNotificationService(backendClient, hub, authService)

	scheduler := cron.NewScheduler()
	if err := scheduler.AddJob(cron.Job{
		Name:     "notification-refresh",
		Interval: cfg.Notification.PollInterval,
		Timeout:  cfg.Backend.Timeout,
		Fn:       notificationService.Refresh,
	}); err != nil {
		log.Fatal("Failed to schedule notification refresh:", err)
	}
	if err := scheduler.AddJob(cron.Job{
		Name:     "payroll-wizard-sweep",
		Interval: cfg.Session.SweepInterval,
		Timeout:  cfg.Backend.Timeout,
		Fn: func(ctx context.Context) error {
			return registry.Sweep(ctx, authService)
		},
	}); err != nil {
		log.Fatal("Failed to schedule wizard sweep:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}
	router := appHTTP.NewRouter(cfg, authService, appHTTP.Handlers{
		Session:      appHTTP.NewSessionHandler(authService, cookie),
		View:         appHTTP.NewViewHandler(authService),
		Payroll:      appHTTP.NewPayrollHandler(payrollService),
		Organization: appHTTP.NewOrganizationHandler(organizationService),
		Employee:     appHTTP.NewEmployeeHandler(employeeService),
		Vendor:       appHTTP.NewVendorHandler(vendorService),
		BankAdmin:    appHTTP.NewBankAdminHandler(bankAdminService, auditService),
		Notification: appHTTP.NewNotificationHandler(notificationService),
		Health:       appHTTP.NewHealthHandler(store),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
