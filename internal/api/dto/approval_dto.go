package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// ApprovalDecisionRequest payload for deciding a pending item.
type ApprovalDecisionRequest struct {
	Decision domain.ApprovalDecision `json:"decision"`
	Comment  string                  `json:"comment"`
}

// ApprovalItemResponse is one pending review row.
type ApprovalItemResponse struct {
	ID              string                `json:"id"`
	DocumentID      string                `json:"document_id"`
	DocumentTitle   string                `json:"document_title"`
	Version         string                `json:"version"`
	PreviousVersion string                `json:"previous_version,omitempty"`
	Department      string                `json:"department"`
	Classification  domain.Classification `json:"classification"`
	SubmittedBy     string                `json:"submitted_by"`
	SubmittedAt     time.Time             `json:"submitted_at"`
	Status          domain.DocumentStatus `json:"status"`
	ChangesCount    int                   `json:"changes_count"`
}

// NewApprovalItemResponses maps pending items.
func NewApprovalItemResponses(items []domain.ApprovalItem) []ApprovalItemResponse {
	out := make([]ApprovalItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ApprovalItemResponse{
			ID:              item.ID,
			DocumentID:      item.DocumentID,
			DocumentTitle:   item.DocumentTitle,
			Version:         item.Version,
			PreviousVersion: item.PreviousVersion,
			Department:      item.Department,
			Classification:  item.Classification,
			SubmittedBy:     item.SubmittedBy,
			SubmittedAt:     item.SubmittedAt,
			Status:          item.Status,
			ChangesCount:    item.ChangesCount,
		})
	}
	return out
}
