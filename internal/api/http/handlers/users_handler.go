package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// UsersHandler exposes the admin directory.
type UsersHandler struct {
	directory *service.DirectoryService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directory *service.DirectoryService) *UsersHandler {
	return &UsersHandler{directory: directory}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Search: c.Query("q"),
		Status: domain.UserStatus(c.Query("status")),
	}
	users, err := h.directory.ListUsers(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// SetStatus handles PATCH /api/users/:id/status.
func (h *UsersHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.UserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.directory.SetUserStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Roles handles GET /api/users/roles. Each role carries its capability set
// and member count.
func (h *UsersHandler) Roles(c *fiber.Ctx) error {
	summaries, err := h.directory.Roles(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRoleSummaryResponses(summaries)})
}

// Departments handles GET /api/users/departments.
func (h *UsersHandler) Departments(c *fiber.Ctx) error {
	summaries, err := h.directory.Departments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentSummaryResponses(summaries)})
}
