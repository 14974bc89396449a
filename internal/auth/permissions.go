package auth

import (
	"sort"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// Capability is a named action gated by role allow-lists.
type Capability string

const (
	CapabilityChat             Capability = "chat"
	CapabilitySearch           Capability = "search"
	CapabilityDocumentsView    Capability = "documents.view"
	CapabilityDocumentsEdit    Capability = "documents.edit"
	CapabilityDocumentsApprove Capability = "documents.approve"
	CapabilityApprovals        Capability = "approvals"
	CapabilityUsersManage      Capability = "users.manage"
	CapabilityAuditView        Capability = "audit.view"
	CapabilitySettings         Capability = "settings"
)

// permissionTable maps each capability to the roles allowed to exercise it.
// The table is static process-wide configuration; lookups for unknown
// capabilities deny every role.
var permissionTable = map[Capability][]domain.Role{
	CapabilityChat:             {domain.RoleEmployee, domain.RoleDepartmentManager, domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilitySearch:           {domain.RoleEmployee, domain.RoleDepartmentManager, domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilityDocumentsView:    {domain.RoleEmployee, domain.RoleDepartmentManager, domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilityDocumentsEdit:    {domain.RoleDepartmentManager, domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilityDocumentsApprove: {domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilityApprovals:        {domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilityUsersManage:      {domain.RoleAdmin},
	CapabilityAuditView:        {domain.RoleKnowledgeManager, domain.RoleAdmin},
	CapabilitySettings:         {domain.RoleKnowledgeManager, domain.RoleAdmin},
}

// RolesFor returns the roles allowed the given capability. Unknown
// capabilities return an empty set.
func RolesFor(capability Capability) []domain.Role {
	allowed := permissionTable[capability]
	out := make([]domain.Role, len(allowed))
	copy(out, allowed)
	return out
}

// Allows reports whether the role may exercise the capability.
func Allows(role domain.Role, capability Capability) bool {
	for _, allowed := range permissionTable[capability] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Capabilities lists every capability granted to the role.
func Capabilities(role domain.Role) []Capability {
	out := make([]Capability, 0, len(permissionTable))
	for capability := range permissionTable {
		if Allows(role, capability) {
			out = append(out, capability)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
