package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// DocumentUploadRequest payload for registering a new document.
type DocumentUploadRequest struct {
	Title          string                `json:"title"`
	FileName       string                `json:"file_name"`
	Department     string                `json:"department"`
	Classification domain.Classification `json:"classification"`
	ReviewLevel    string                `json:"review_level"`
	Tags           []string              `json:"tags"`
}

// DocumentResponse is one document listing row.
type DocumentResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	OwnerDepartment string                `json:"owner_department"`
	Classification  domain.Classification `json:"classification"`
	Status          domain.DocumentStatus `json:"status"`
	CurrentVersion  string                `json:"current_version"`
	Tags            []string              `json:"tags"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// DocumentVersionResponse is one row of a version history.
type DocumentVersionResponse struct {
	ID        string                `json:"id"`
	Version   string                `json:"version"`
	Status    domain.DocumentStatus `json:"status"`
	CreatedBy string                `json:"created_by"`
	Changelog string                `json:"changelog,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewDocumentResponse maps a document.
func NewDocumentResponse(doc domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:              doc.ID,
		Title:           doc.Title,
		OwnerDepartment: doc.OwnerDepartment,
		Classification:  doc.Classification,
		Status:          doc.Status,
		CurrentVersion:  doc.CurrentVersion,
		Tags:            doc.Tags,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

// NewDocumentResponses maps a document list.
func NewDocumentResponses(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, NewDocumentResponse(doc))
	}
	return out
}

// NewDocumentVersionResponses maps a version history.
func NewDocumentVersionResponses(versions []domain.DocumentVersion) []DocumentVersionResponse {
	out := make([]DocumentVersionResponse, 0, len(versions))
	for _, ver := range versions {
		out = append(out, DocumentVersionResponse{
			ID:        ver.ID,
			Version:   ver.Version,
			Status:    ver.Status,
			CreatedBy: ver.CreatedBy,
			Changelog: ver.Changelog,
			CreatedAt: ver.CreatedAt,
		})
	}
	return out
}
