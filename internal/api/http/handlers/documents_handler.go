package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// DocumentsHandler exposes the document library.
type DocumentsHandler struct {
	documents *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documents *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documents}
}

// List handles GET /api/documents.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	filter := repository.DocumentFilter{
		Search:         c.Query("q"),
		Status:         domain.DocumentStatus(c.Query("status")),
		Classification: domain.Classification(c.Query("classification")),
	}
	docs, err := h.documents.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDocumentResponses(docs)})
}

// Get handles GET /api/documents/:id with the version history attached.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	doc, versions, err := h.documents.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"document": dto.NewDocumentResponse(*doc),
			"versions": dto.NewDocumentVersionResponses(versions),
		},
	})
}

// Upload handles POST /api/documents. Registers the metadata and queues the
// ingestion job; there is no file transfer in the mock backend.
func (h *DocumentsHandler) Upload(c *fiber.Ctx) error {
	var req dto.DocumentUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, _ := auth.SessionFromContext(c)
	doc, err := h.documents.Upload(c.UserContext(), service.DocumentUploadInput{
		Title:          req.Title,
		FileName:       req.FileName,
		Department:     req.Department,
		Classification: req.Classification,
		ReviewLevel:    req.ReviewLevel,
		Tags:           req.Tags,
		UploadedBy:     session.Principal().Name,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDocumentResponse(*doc)})
}

// Archive handles POST /api/documents/:id/archive.
func (h *DocumentsHandler) Archive(c *fiber.Ctx) error {
	doc, err := h.documents.Archive(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDocumentResponse(*doc)})
}

// Delete handles DELETE /api/documents/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.documents.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
