package domain

import "time"

// SearchMode selects the retrieval strategy.
type SearchMode string

const (
	SearchModeKeyword  SearchMode = "keyword"
	SearchModeSemantic SearchMode = "semantic"
	SearchModeHybrid   SearchMode = "hybrid"
)

// Valid reports whether the mode is a known value.
func (m SearchMode) Valid() bool {
	switch m {
	case SearchModeKeyword, SearchModeSemantic, SearchModeHybrid:
		return true
	}
	return false
}

// SearchResult is one indexed section returned for a query.
type SearchResult struct {
	ID             string
	DocumentID     string
	Title          string
	Snippet        string
	SectionPath    string
	Classification Classification
	Status         DocumentStatus
	Score          float64
	Tags           []string
	UpdatedAt      time.Time
}
