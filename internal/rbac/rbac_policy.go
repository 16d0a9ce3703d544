package rbac

// Role names carried in JWT claims.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// policyRule is one p-rule: role, resource, action.
type policyRule struct {
	Role     string
	Resource string
	Action   string
}

// The agency runs on three fixed roles, so policies live in code rather
// than a table. Changing a role's reach is a deploy, which is the point:
// permission changes should go through review.
var defaultPolicies = []policyRule{
	{RoleAdmin, "*", "*"},

	{RoleStaff, "employee", "read"},
	{RoleStaff, "employee", "create"},
	{RoleStaff, "employee", "update"},
	{RoleStaff, "client_company", "read"},
	{RoleStaff, "client_company", "create"},
	{RoleStaff, "client_company", "update"},
	{RoleStaff, "dispatch", "read"},
	{RoleStaff, "dispatch", "create"},
	{RoleStaff, "dispatch", "update"},
	{RoleStaff, "import", "create"},
	{RoleStaff, "agency", "read"},
	{RoleStaff, "export", "read"},
	{RoleStaff, "export", "create"},
	{RoleStaff, "ocr", "create"},

	{RoleViewer, "employee", "read"},
	{RoleViewer, "client_company", "read"},
	{RoleViewer, "dispatch", "read"},
	{RoleViewer, "export", "read"},
}

// roleInheritance: g-rules, child role inherits parent's policies.
var roleInheritance = [][2]string{
	{RoleAdmin, RoleStaff},
	{RoleStaff, RoleViewer},
}
