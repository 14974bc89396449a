package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// SearchHandler exposes the unified search endpoint.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs handler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /api/search.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	input := service.SearchInput{
		Query:          c.Query("q"),
		Mode:           domain.SearchMode(c.Query("mode")),
		Status:         domain.DocumentStatus(c.Query("status")),
		Classification: domain.Classification(c.Query("classification")),
		Department:     c.Query("department"),
	}

	results, err := h.search.Search(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"results": dto.NewSearchResultResponses(results),
			"total":   len(results),
		},
	})
}
