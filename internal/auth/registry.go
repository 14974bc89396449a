package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/knowledge-hub/internal/chat"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// IdentityProvider resolves a canned principal for a role. It stands in for
// the SSO collaborator; a production provider would exchange real
// credentials for a principal instead.
type IdentityProvider interface {
	PrincipalForRole(role domain.Role) (*domain.Principal, error)
}

// SessionRegistry owns the live sessions keyed by token id. Sessions exist
// only in memory; identity resets on process restart.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	tokens   *TokenManager
	identity IdentityProvider
	newStore func(owner *domain.Principal) *chat.Store
}

// NewSessionRegistry constructs the registry. The store factory receives the
// session's principal so completed queries can be attributed in the audit
// log.
func NewSessionRegistry(tokens *TokenManager, identity IdentityProvider, newStore func(owner *domain.Principal) *chat.Store) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		tokens:   tokens,
		identity: identity,
		newStore: newStore,
	}
}

// Login creates a session for the canned principal of the given role and
// issues its token. It always succeeds for a known role.
func (r *SessionRegistry) Login(role domain.Role) (*Session, string, time.Time, error) {
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	principal, err := r.identity.PrincipalForRole(role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	session := NewSession(r.newStore(principal))
	session.Login(principal)

	sessionID := uuid.NewString()
	token, exp, err := r.tokens.GenerateToken(sessionID, principal.ID, principal.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	r.mu.Lock()
	r.sessions[sessionID] = session
	r.mu.Unlock()

	return session, token, exp, nil
}

// Logout destroys the session for the token. Unknown tokens are a no-op.
func (r *SessionRegistry) Logout(token string) {
	claims, err := r.tokens.ParseToken(token)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[claims.SessionID]; ok {
		session.Logout()
		delete(r.sessions, claims.SessionID)
	}
}

// Resolve returns the live session for a token, if any.
func (r *SessionRegistry) Resolve(token string) (*Session, bool) {
	claims, err := r.tokens.ParseToken(token)
	if err != nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[claims.SessionID]
	if !ok || !session.IsAuthenticated() {
		return nil, false
	}
	return session, true
}
