package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// SearchIndex is the boundary to the retrieval collaborator's index.
type SearchIndex interface {
	All(ctx context.Context) ([]domain.SearchResult, error)
}

type searchIndex struct {
	mu      sync.RWMutex
	results []domain.SearchResult
}

// NewSearchIndex returns a memory-backed index seeded with mock results.
func NewSearchIndex(now time.Time) SearchIndex {
	return &searchIndex{results: seedSearchResults(now)}
}

func (r *searchIndex) All(_ context.Context) ([]domain.SearchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SearchResult, len(r.results))
	copy(out, r.results)
	return out, nil
}
