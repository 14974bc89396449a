package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

func authenticatedSession(role domain.Role) *Session {
	session := NewSession(nil)
	session.Login(&domain.Principal{ID: "user-1", Name: "Test User", Role: role})
	return session
}

func TestEvaluateUnauthenticated(t *testing.T) {
	assert.Equal(t, DecisionRedirectLogin, Evaluate(nil, CapabilityChat))
	assert.Equal(t, DecisionRedirectLogin, Evaluate(NewSession(nil), CapabilityChat))
}

// Authentication is checked before authorization: a logged-out caller is
// sent to login even for a view it could never access.
func TestEvaluateChecksAuthenticationFirst(t *testing.T) {
	assert.Equal(t, DecisionRedirectLogin, Evaluate(nil, CapabilityUsersManage))
}

func TestEvaluateForbidden(t *testing.T) {
	employee := authenticatedSession(domain.RoleEmployee)
	assert.Equal(t, DecisionRedirectForbidden, Evaluate(employee, CapabilityUsersManage))
	assert.Equal(t, DecisionRedirectForbidden, Evaluate(employee, CapabilityApprovals))
}

func TestEvaluateAllowed(t *testing.T) {
	employee := authenticatedSession(domain.RoleEmployee)
	assert.Equal(t, DecisionAllowed, Evaluate(employee, CapabilityChat))

	admin := authenticatedSession(domain.RoleAdmin)
	assert.Equal(t, DecisionAllowed, Evaluate(admin, CapabilityUsersManage))
}

// An empty capability gates on authentication alone.
func TestEvaluateAuthOnly(t *testing.T) {
	assert.Equal(t, DecisionRedirectLogin, Evaluate(nil, ""))
	assert.Equal(t, DecisionAllowed, Evaluate(authenticatedSession(domain.RoleEmployee), ""))
}

func TestEvaluateAfterLogout(t *testing.T) {
	session := authenticatedSession(domain.RoleAdmin)
	session.Logout()
	assert.Equal(t, DecisionRedirectLogin, Evaluate(session, CapabilityUsersManage))
}
