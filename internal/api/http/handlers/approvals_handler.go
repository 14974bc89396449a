package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// ApprovalsHandler exposes the review queue.
type ApprovalsHandler struct {
	approvals *service.ApprovalService
}

// NewApprovalsHandler constructs handler.
func NewApprovalsHandler(approvals *service.ApprovalService) *ApprovalsHandler {
	return &ApprovalsHandler{approvals: approvals}
}

// ListPending handles GET /api/approvals.
func (h *ApprovalsHandler) ListPending(c *fiber.Ctx) error {
	pending, err := h.approvals.ListPending(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"in_review": dto.NewApprovalItemResponses(pending.InReview),
			"drafts":    dto.NewApprovalItemResponses(pending.Drafts),
		},
	})
}

// Decide handles POST /api/approvals/:id/decision. Rejections must carry a
// comment for the submitter.
func (h *ApprovalsHandler) Decide(c *fiber.Ctx) error {
	var req dto.ApprovalDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, _ := auth.SessionFromContext(c)
	err := h.approvals.Decide(c.UserContext(), c.Params("id"), req.Decision, req.Comment, session.Principal().Name)
	if err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
