package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// LoginRequest selects the canned principal for a role. A production build
// would carry SSO credentials instead.
type LoginRequest struct {
	Role domain.Role `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PrincipalResponse describes the authenticated actor.
type PrincipalResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	Department   string      `json:"department"`
	Capabilities []string    `json:"capabilities"`
}
