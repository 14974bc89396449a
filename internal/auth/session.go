package auth

import (
	"sync"

	"github.com/spec-kit/knowledge-hub/internal/chat"
	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// Session holds the identity state for one authenticated client along with
// the conversation store scoped to it. At most one Principal is set at a
// time; all capability checks fail closed while unauthenticated.
type Session struct {
	mu            sync.RWMutex
	principal     *domain.Principal
	conversations *chat.Store
}

// NewSession builds an unauthenticated session with its own conversation store.
func NewSession(conversations *chat.Store) *Session {
	return &Session{conversations: conversations}
}

// Login replaces the current principal. Subsequent permission checks reflect
// the new role immediately.
func (s *Session) Login(principal *domain.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = principal
}

// Logout clears the current principal.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
}

// IsAuthenticated reports whether a principal is set.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil
}

// Principal returns the current principal, or nil when unauthenticated.
func (s *Session) Principal() *domain.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// HasPermission reports whether the session's role is allowed the capability.
// False when unauthenticated or when the capability is unknown.
func (s *Session) HasPermission(capability Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return false
	}
	return Allows(s.principal.Role, capability)
}

// HasRole reports whether the session's role is in the given set.
func (s *Session) HasRole(roles ...domain.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return false
	}
	for _, role := range roles {
		if s.principal.Role == role {
			return true
		}
	}
	return false
}

// Conversations returns the conversation store scoped to this session.
func (s *Session) Conversations() *chat.Store {
	return s.conversations
}
