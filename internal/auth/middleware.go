package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

const sessionKey = "auth_session"

// Middleware resolves bearer tokens into live sessions. Requests without a
// resolvable session pass through unauthenticated; the guard decides what
// that means per route.
type Middleware struct {
	registry *SessionRegistry
}

// NewMiddleware constructs middleware.
func NewMiddleware(registry *SessionRegistry) *Middleware {
	return &Middleware{registry: registry}
}

// Handle attaches the caller's session to the request context when a valid
// bearer token is presented.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Next()
	}

	if session, ok := m.registry.Resolve(parts[1]); ok {
		c.Locals(sessionKey, session)
	}
	return c.Next()
}

// SessionFromContext retrieves the authenticated session, if any.
func SessionFromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*Session)
	return session, ok
}

// RequireCapability guards a route with the given capability. The guard
// decisions map onto the SPA's redirect targets: unauthenticated callers get
// 401 with /login, unauthorized callers 403 with /forbidden.
func RequireCapability(capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, _ := SessionFromContext(c)
		switch Evaluate(session, capability) {
		case DecisionRedirectLogin:
			return apperrors.NewUnauthorized("authentication required", map[string]any{"redirect": "/login"})
		case DecisionRedirectForbidden:
			return apperrors.NewForbidden("insufficient permissions", map[string]any{
				"redirect":   "/forbidden",
				"capability": string(capability),
			})
		}
		return c.Next()
	}
}
