package service

import (
	"context"
	"sort"
	"strings"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// SearchInput describes one search request.
type SearchInput struct {
	Query          string
	Mode           domain.SearchMode
	Status         domain.DocumentStatus
	Classification domain.Classification
	Department     string
}

// SearchService filters the mock index the way the retrieval collaborator
// would. The mode is accepted but does not change the mock algorithm.
type SearchService struct {
	index repository.SearchIndex
}

// NewSearchService constructs the service.
func NewSearchService(index repository.SearchIndex) *SearchService {
	return &SearchService{index: index}
}

// Search returns results matching the query over title and snippet. When
// nothing matches, the full corpus is returned, mirroring the mock backend.
func (s *SearchService) Search(ctx context.Context, input SearchInput) ([]domain.SearchResult, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, apperrors.NewValidationError("query is required", nil)
	}
	if input.Mode == "" {
		input.Mode = domain.SearchModeHybrid
	}
	if !input.Mode.Valid() {
		return nil, apperrors.NewValidationError("unknown search mode", map[string]any{"mode": input.Mode})
	}

	all, err := s.index.All(ctx)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(query)
	matched := make([]domain.SearchResult, 0, len(all))
	for _, result := range all {
		if strings.Contains(strings.ToLower(result.Title), lowered) ||
			strings.Contains(strings.ToLower(result.Snippet), lowered) {
			matched = append(matched, result)
		}
	}
	if len(matched) == 0 {
		matched = all
	}

	out := matched[:0:0]
	for _, result := range matched {
		if input.Status != "" && result.Status != input.Status {
			continue
		}
		if input.Classification != "" && result.Classification != input.Classification {
			continue
		}
		if input.Department != "" && !resultInDepartment(result, input.Department) {
			continue
		}
		out = append(out, result)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// resultInDepartment matches the department filter against the result tags;
// the mock index does not carry an owner department per section.
func resultInDepartment(result domain.SearchResult, department string) bool {
	lowered := strings.ToLower(department)
	for _, tag := range result.Tags {
		if strings.ToLower(tag) == lowered {
			return true
		}
	}
	return false
}
