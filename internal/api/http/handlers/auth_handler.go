package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// AuthHandler exposes the mock SSO login flow.
type AuthHandler struct {
	registry *auth.SessionRegistry
}

// NewAuthHandler constructs handler.
func NewAuthHandler(registry *auth.SessionRegistry) *AuthHandler {
	return &AuthHandler{registry: registry}
}

// Login handles POST /auth/login. The role selects a canned principal; a
// missing role defaults to employee, mirroring the login screen.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Role == "" {
		req.Role = domain.RoleEmployee
	}

	session, token, exp, err := h.registry.Login(req.Role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": principalResponse(session),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout. Unknown tokens are a no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		h.registry.Logout(token)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /auth/me for the authenticated session.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{"data": principalResponse(session)})
}

func principalResponse(session *auth.Session) dto.PrincipalResponse {
	principal := session.Principal()
	capabilities := auth.Capabilities(principal.Role)
	names := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		names = append(names, string(capability))
	}
	return dto.PrincipalResponse{
		ID:           principal.ID,
		Name:         principal.Name,
		Email:        principal.Email,
		Role:         principal.Role,
		Department:   principal.Department,
		Capabilities: names,
	}
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
