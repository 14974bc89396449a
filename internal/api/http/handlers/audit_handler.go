package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// AuditHandler exposes the query log and the background job monitor.
type AuditHandler struct {
	audit *service.AuditService
}

// NewAuditHandler constructs handler.
func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Queries handles GET /api/audit/queries.
func (h *AuditHandler) Queries(c *fiber.Ctx) error {
	filter := repository.AuditFilter{
		Search: c.Query("q"),
		Status: domain.AnswerStatus(c.Query("status")),
	}
	entries, err := h.audit.ListQueries(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAuditLogEntryResponses(entries)})
}

// Jobs handles GET /api/audit/jobs.
func (h *AuditHandler) Jobs(c *fiber.Ctx) error {
	filter := repository.JobFilter{
		Status: domain.JobStatus(c.Query("status")),
		Type:   domain.JobType(c.Query("type")),
	}
	jobs, err := h.audit.ListJobs(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponses(jobs)})
}
