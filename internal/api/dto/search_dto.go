package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// SearchResultResponse is one search hit.
type SearchResultResponse struct {
	ID             string                `json:"id"`
	DocumentID     string                `json:"document_id"`
	Title          string                `json:"title"`
	Snippet        string                `json:"snippet"`
	SectionPath    string                `json:"section_path"`
	Classification domain.Classification `json:"classification"`
	Status         domain.DocumentStatus `json:"status"`
	Score          float64               `json:"score"`
	Tags           []string              `json:"tags"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// NewSearchResultResponses maps search hits.
func NewSearchResultResponses(results []domain.SearchResult) []SearchResultResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for _, result := range results {
		out = append(out, SearchResultResponse{
			ID:             result.ID,
			DocumentID:     result.DocumentID,
			Title:          result.Title,
			Snippet:        result.Snippet,
			SectionPath:    result.SectionPath,
			Classification: result.Classification,
			Status:         result.Status,
			Score:          result.Score,
			Tags:           result.Tags,
			UpdatedAt:      result.UpdatedAt,
		})
	}
	return out
}
