package auth

type Role string

const (
	RoleBankAdmin    Role = "ROLE_BANK_ADMIN"
	RoleOrganization Role = "ROLE_ORGANIZATION"
	RoleOrgAdmin     Role = "ROLE_ORG_ADMIN"
	RoleEmployee     Role = "ROLE_EMPLOYEE"
	RoleVendor       Role = "ROLE_VENDOR"
)

// Navigation targets used by the access guards.
const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathUnauthorized   = "/unauthorized"
	PathChangePassword = "/change-password"

	PathBankAdminDashboard    = "/bank-admin/dashboard"
	PathOrganizationDashboard = "/organization/dashboard"
	PathEmployeeDashboard     = "/employee/dashboard"
	PathVendorDashboard       = "/vendor/dashboard"
)

var dashboards = map[Role]string{
	RoleBankAdmin:    PathBankAdminDashboard,
	RoleOrganization: PathOrganizationDashboard,
	RoleOrgAdmin:     PathOrganizationDashboard,
	RoleEmployee:     PathEmployeeDashboard,
	RoleVendor:       PathVendorDashboard,
}

// DashboardFor returns the canonical landing route of a role. Unknown roles land on the root path.
func DashboardFor(role Role) string {
	if path, ok := dashboards[role]; ok {
		return path
	}
	return PathRoot
}

// OrganizationRoles are the roles that act on behalf of an organization.
var OrganizationRoles = []Role{RoleOrganization, RoleOrgAdmin}

// HasAnyRole reports whether role is one of allowed.
func HasAnyRole(role Role, allowed ...Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
