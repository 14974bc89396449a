package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/knowledge-hub/internal/chat"
	"github.com/spec-kit/knowledge-hub/internal/domain"
)

type staticIdentity struct{}

func (staticIdentity) PrincipalForRole(role domain.Role) (*domain.Principal, error) {
	return &domain.Principal{
		ID:   "user-" + string(role),
		Name: "Canned " + string(role),
		Role: role,
	}, nil
}

func newTestRegistry() *SessionRegistry {
	tokens := NewTokenManager("test-secret", 60)
	newStore := func(owner *domain.Principal) *chat.Store {
		return chat.NewStore(chat.StoreDeps{Owner: owner})
	}
	return NewSessionRegistry(tokens, staticIdentity{}, newStore)
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	registry := newTestRegistry()

	session, token, exp, err := registry.Login(domain.RoleKnowledgeManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, domain.RoleKnowledgeManager, session.Principal().Role)
	require.NotNil(t, session.Conversations())

	resolved, ok := registry.Resolve(token)
	require.True(t, ok)
	assert.Same(t, session, resolved)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	registry := newTestRegistry()
	_, _, _, err := registry.Login(domain.Role("superuser"))
	require.Error(t, err)
}

func TestEachLoginGetsOwnConversations(t *testing.T) {
	registry := newTestRegistry()

	first, _, _, err := registry.Login(domain.RoleEmployee)
	require.NoError(t, err)
	second, _, _, err := registry.Login(domain.RoleEmployee)
	require.NoError(t, err)

	assert.NotSame(t, first.Conversations(), second.Conversations())

	first.Conversations().CreateConversation()
	assert.Len(t, first.Conversations().Conversations(), 1)
	assert.Empty(t, second.Conversations().Conversations())
}

func TestLogoutInvalidatesSession(t *testing.T) {
	registry := newTestRegistry()

	_, token, _, err := registry.Login(domain.RoleAdmin)
	require.NoError(t, err)

	registry.Logout(token)

	_, ok := registry.Resolve(token)
	assert.False(t, ok)
}

func TestLogoutUnknownTokenIsNoOp(t *testing.T) {
	registry := newTestRegistry()
	registry.Logout("not-a-token")
}

func TestResolveRejectsGarbageToken(t *testing.T) {
	registry := newTestRegistry()
	_, ok := registry.Resolve("garbage")
	assert.False(t, ok)
}

func TestResolveRejectsForeignToken(t *testing.T) {
	registry := newTestRegistry()
	other := newTestRegistry()

	_, token, _, err := other.Login(domain.RoleAdmin)
	require.NoError(t, err)

	_, ok := registry.Resolve(token)
	assert.False(t, ok, "token from another registry has no live session here")
}
