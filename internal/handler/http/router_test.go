package http

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/config"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/audit"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/bankadmin"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/employee"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/notification"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/organization"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/vendor"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/middleware"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/notice"
)

const cookieName = "portal_session"

// ========== Fakes ==========

type fakeAuth struct {
	auth.AuthService
	sessions  map[string]auth.Session
	loggedOut []string
}

func (f *fakeAuth) Resolve(ctx context.Context, key string) (auth.Session, error) {
	s, ok := f.sessions[key]
	if !ok {
		return auth.Session{}, auth.ErrNotAuthenticated
	}
	return s, nil
}

func (f *fakeAuth) Login(ctx context.Context, req auth.LoginRequest) (string, auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return "", auth.LoginResponse{}, err
	}
	return "new-key", auth.LoginResponse{Redirect: auth.PathVendorDashboard, Role: auth.RoleVendor}, nil
}

func (f *fakeAuth) Logout(ctx context.Context, key string) error {
	f.loggedOut = append(f.loggedOut, key)
	delete(f.sessions, key)
	return nil
}

func (f *fakeAuth) Me(ctx context.Context) (auth.MeResponse, error) {
	s, ok := auth.SessionFromContext(ctx)
	if !ok {
		return auth.MeResponse{}, auth.ErrNotAuthenticated
	}
	return auth.NewMeResponse(s.Claims), nil
}

func (f *fakeAuth) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) (auth.MessageResponse, error) {
	s, _ := auth.SessionFromContext(ctx)
	_ = f.Logout(ctx, s.Key)
	return auth.MessageResponse{Message: "Password changed successfully. Please login again.", Redirect: auth.PathLogin}, nil
}

type fakePayroll struct {
	payroll.PayrollService
	submit  payroll.SubmitResponse
	toggled []int64
}

func (f *fakePayroll) Toggle(ctx context.Context, kind payroll.EntityKind, id int64) (payroll.WizardView, error) {
	f.toggled = append(f.toggled, id)
	return payroll.WizardView{Step: payroll.StepSelection}, nil
}

func (f *fakePayroll) Submit(ctx context.Context) (payroll.SubmitResponse, error) {
	return f.submit, nil
}

func (f *fakePayroll) GetWizard(ctx context.Context) (payroll.WizardView, error) {
	return payroll.WizardView{}, payroll.ErrWizardNotFound
}

type fakeNotifications struct {
	notification.Service
	events chan notification.SSEEvent
	closed bool
}

func (f *fakeNotifications) Subscribe(ctx context.Context, key string) (<-chan notification.SSEEvent, func()) {
	return f.events, func() { f.closed = true }
}

type fakeAudit struct {
	audit.AuditService
	filter audit.Filter
}

func (f *fakeAudit) List(ctx context.Context, filter audit.Filter) (audit.ListResponse, error) {
	f.filter = filter
	return audit.ListResponse{Logs: []audit.Log{{}, {}}, Count: 2}, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

type fakeOrganization struct {
	organization.OrganizationService
	registered []organization.RegisterRequest
}

func (f *fakeOrganization) Register(ctx context.Context, req organization.RegisterRequest) (organization.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.RegisterResponse{}, err
	}
	f.registered = append(f.registered, req)
	return organization.RegisterResponse{
		Organization: organization.Organization{OrgID: 5, OrgName: req.OrgName},
		Redirect:     auth.PathLogin,
		Notice:       notice.Success("Registration successful! Check your email for details."),
	}, nil
}

type (
	unusedEmployee  struct{ employee.EmployeeService }
	unusedVendor    struct{ vendor.VendorService }
	unusedBankAdmin struct{ bankadmin.BankAdminService }
)

type fixture struct {
	router        http.Handler
	auth          *fakeAuth
	payroll       *fakePayroll
	notifications *fakeNotifications
	audit         *fakeAudit
	organization  *fakeOrganization
	store         *fakePinger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		App:     config.AppConfig{Env: "test", Version: "test"},
		Session: config.SessionConfig{CookieName: cookieName},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:4200"}},
	}

	f := &fixture{
		auth:          &fakeAuth{sessions: map[string]auth.Session{}},
		payroll:       &fakePayroll{},
		notifications: &fakeNotifications{events: make(chan notification.SSEEvent, 1)},
		audit:         &fakeAudit{},
		organization:  &fakeOrganization{},
		store:         &fakePinger{},
	}
	cookie := middleware.SessionCookie{Name: cookieName}
	f.router = NewRouter(cfg, f.auth, Handlers{
		Session:      NewSessionHandler(f.auth, cookie),
		View:         NewViewHandler(f.auth),
		Payroll:      NewPayrollHandler(f.payroll),
		Organization: NewOrganizationHandler(f.organization),
		Employee:     NewEmployeeHandler(unusedEmployee{}),
		Vendor:       NewVendorHandler(unusedVendor{}),
		BankAdmin:    NewBankAdminHandler(unusedBankAdmin{}, f.audit),
		Notification: NewNotificationHandler(f.notifications),
		Health:       NewHealthHandler(f.store),
	})
	return f
}

// signIn stores a session for role and returns its key.
func (f *fixture) signIn(role auth.Role) string {
	orgID := int64(7)
	key := "key-" + string(role)
	f.auth.sessions[key] = auth.Session{
		Key:        key,
		Credential: "token",
		Claims: &auth.Claims{
			Subject:   "user@example.com",
			Roles:     []auth.Role{role},
			OrgID:     &orgID,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	return key
}

func (f *fixture) do(method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: key})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// navigate issues a browser page load.
func (f *fixture) navigate(path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html")
	if key != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: key})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// upload posts a multipart form carrying a JSON "dto" part and files.
func (f *fixture) upload(t *testing.T, path, key, dto string, files map[string]string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("dto", dto))
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for name, content := range files {
		part, err := mw.CreateFormFile("verificationDocs", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if key != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: key})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

// ========== Session ==========

func TestSession_LoginSetsCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/session/login", "", `{"email":"vendor@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), cookieName+"=new-key")

	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
	assert.Equal(t, auth.PathVendorDashboard, resp.Redirect)
}

func TestSession_LoginValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/session/login", "", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/session/login", "", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession_LoginWhileSignedIn(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleEmployee)

	rec := f.do(http.MethodPost, "/api/v1/session/login", key, `{"email":"a@b.co","password":"x"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, auth.PathEmployeeDashboard, decode(t, rec).Error.Details["redirect"])
}

func TestSession_Logout(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleVendor)

	rec := f.do(http.MethodPost, "/api/v1/session/logout", key, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{key}, f.auth.loggedOut)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), cookieName+"=;")

	rec = f.do(http.MethodGet, "/api/v1/session/me", key, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_ChangePasswordEndsSession(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleEmployee)
	s := f.auth.sessions[key]
	s.Claims.MustChangePassword = true

	rec := f.do(http.MethodPost, "/api/v1/session/change-password", key, `{"currentPassword":"a","newPassword":"b","confirmPassword":"b"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{key}, f.auth.loggedOut)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
}

// ========== Guards ==========

func TestGuard_APIRoutes(t *testing.T) {
	f := newFixture(t)
	vendorKey := f.signIn(auth.RoleVendor)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/bank-admin/audit-logs", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/bank-admin/audit-logs", vendorKey, "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/organization/payroll/wizard", vendorKey, "").Code)
}

func TestGuard_Views(t *testing.T) {
	f := newFixture(t)
	vendorKey := f.signIn(auth.RoleVendor)

	rec := f.navigate("/bank-admin/dashboard", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, auth.PathLogin, rec.Header().Get("Location"))

	rec = f.navigate("/bank-admin/dashboard", vendorKey)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, auth.PathUnauthorized, rec.Header().Get("Location"))

	rec = f.navigate(auth.PathLogin, vendorKey)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, auth.PathVendorDashboard, rec.Header().Get("Location"))

	rec = f.navigate("/vendor/dashboard", vendorKey)
	require.Equal(t, http.StatusOK, rec.Code)
	var view ViewResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "vendor-dashboard", view.View)
	require.NotNil(t, view.User)
	assert.Equal(t, auth.RoleVendor, view.User.Role)
}

func TestGuard_Landing(t *testing.T) {
	f := newFixture(t)

	rec := f.navigate(auth.PathRoot, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view ViewResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "landing", view.View)

	rec = f.navigate(auth.PathRoot, f.signIn(auth.RoleEmployee))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, auth.PathEmployeeDashboard, rec.Header().Get("Location"))

	// a role without a dashboard is sent to the root and stays there
	auditorKey := f.signIn(auth.Role("ROLE_AUDITOR"))
	rec = f.navigate(auth.PathLogin, auditorKey)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, auth.PathRoot, rec.Header().Get("Location"))

	rec = f.navigate(auth.PathRoot, auditorKey)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ========== Payroll ==========

func TestPayroll_SubmitDuplicate(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleOrganization)
	f.payroll.submit = payroll.SubmitResponse{
		Outcome:    payroll.OutcomeDuplicatePeriod,
		Period:     "2025-11",
		Message:    "A salary disbursal request for this period already exists",
		Notice:     notice.Warning("duplicate"),
		StatusCode: http.StatusConflict,
	}

	rec := f.do(http.MethodPost, "/api/v1/organization/payroll/wizard/submit", key, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	var resp payroll.SubmitResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, payroll.OutcomeDuplicatePeriod, resp.Outcome)
	assert.Equal(t, "2025-11", resp.Period)
}

func TestPayroll_SubmitAccepted(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleOrgAdmin)
	f.payroll.submit = payroll.SubmitResponse{
		Outcome:    payroll.OutcomeAccepted,
		Message:    "ok",
		Redirect:   auth.PathOrganizationDashboard,
		StatusCode: http.StatusCreated,
	}

	rec := f.do(http.MethodPost, "/api/v1/organization/payroll/wizard/submit", key, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestPayroll_Toggle(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleOrganization)

	rec := f.do(http.MethodPost, "/api/v1/organization/payroll/wizard/employees/11/toggle", key, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{11}, f.payroll.toggled)

	rec = f.do(http.MethodPost, "/api/v1/organization/payroll/wizard/vendors/11/toggle", key, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/organization/payroll/wizard/employees/abc/toggle", key, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayroll_NoWizard(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleOrganization)

	rec := f.do(http.MethodGet, "/api/v1/organization/payroll/wizard", key, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ========== Bank admin ==========

func TestBankAdmin_AuditLogs(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleBankAdmin)

	rec := f.do(http.MethodGet, "/api/v1/bank-admin/audit-logs?action=LOGIN&userId=5", key, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LOGIN", f.audit.filter.Action)
	require.NotNil(t, f.audit.filter.UserID)
	assert.Equal(t, int64(5), *f.audit.filter.UserID)
	assert.Contains(t, rec.Body.String(), `"total_items":2`)

	rec = f.do(http.MethodGet, "/api/v1/bank-admin/audit-logs?userId=abc", key, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ========== Notifications ==========

func TestNotifications_Stream(t *testing.T) {
	f := newFixture(t)
	key := f.signIn(auth.RoleEmployee)

	f.notifications.events <- notification.SSEEvent{
		Event: notification.EventUnreadCount,
		Data:  notification.UnreadCountResponse{UnreadCount: 3},
	}
	close(f.notifications.events)

	rec := f.do(http.MethodGet, "/api/v1/notifications/stream", key, "")
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: unread_count\ndata: {\"unread_count\":3}\n\n")
	assert.True(t, f.notifications.closed)
}

func TestNotifications_StreamRequiresSession(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/notifications/stream", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ========== Registration ==========

const registration = `{"orgName":"Acme Pvt Ltd","email":"ops@acme.test","phone":"9876543210",` +
	`"address":"12 MG Road, Pune","bankAccountNo":"123456789012","ifscCode":"HDFC0001234",` +
	`"bankName":"HDFC Bank","employeeCount":40}`

func TestOrganization_Register(t *testing.T) {
	f := newFixture(t)

	rec := f.upload(t, "/api/v1/organizations/register", "", registration,
		map[string]string{"pan.pdf": "%PDF-1.4"}, map[string]string{"reactivate": "true"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp organization.RegisterResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
	assert.Equal(t, auth.PathLogin, resp.Redirect)

	require.Len(t, f.organization.registered, 1)
	got := f.organization.registered[0]
	assert.Equal(t, "Acme Pvt Ltd", got.OrgName)
	assert.True(t, got.Reactivate)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "pan.pdf", got.Documents[0].Name)
	assert.Equal(t, []byte("%PDF-1.4"), got.Documents[0].Data)
}

func TestOrganization_RegisterRejects(t *testing.T) {
	f := newFixture(t)

	rec := f.upload(t, "/api/v1/organizations/register", "", registration, nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "documents are required")

	rec = f.do(http.MethodPost, "/api/v1/organizations/register", "", registration)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "plain JSON is not a sign-up form")

	key := f.signIn(auth.RoleEmployee)
	rec = f.upload(t, "/api/v1/organizations/register", key, registration, map[string]string{"pan.pdf": "%PDF"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, f.organization.registered)
}

// ========== Health ==========

func TestHealth_Ready(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/ready", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session_store":"ok"`)

	f.store.err = errors.New("dial tcp: connection refused")
	rec = f.do(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", decode(t, rec).Error.Code)
}
