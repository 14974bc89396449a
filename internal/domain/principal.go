package domain

// Role enumerates the fixed set of user roles.
type Role string

const (
	RoleEmployee          Role = "employee"
	RoleDepartmentManager Role = "department_manager"
	RoleKnowledgeManager  Role = "knowledge_manager"
	RoleAdmin             Role = "admin"
)

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleEmployee, RoleDepartmentManager, RoleKnowledgeManager, RoleAdmin}
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleDepartmentManager, RoleKnowledgeManager, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated actor for a session.
type Principal struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Department string
}
