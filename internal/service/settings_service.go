package service

import (
	"context"
	"strings"
	"sync"

	"github.com/spec-kit/knowledge-hub/internal/config"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// SettingsService holds the retrieval and ingestion tunables. Values start
// from configuration and live in memory only.
type SettingsService struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsService initialises the settings from config defaults.
func NewSettingsService(cfg config.RetrievalConfig) *SettingsService {
	return &SettingsService{
		settings: domain.Settings{
			TopK:                cfg.TopK,
			SimilarityThreshold: cfg.SimilarityThreshold,
			EmbeddingModel:      cfg.EmbeddingModel,
			HybridSearch:        cfg.HybridSearch,
			ChunkSize:           cfg.ChunkSize,
			ChunkOverlap:        cfg.ChunkOverlap,
		},
	}
}

// Get returns the current settings.
func (s *SettingsService) Get(_ context.Context) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update validates and replaces the settings.
func (s *SettingsService) Update(_ context.Context, settings domain.Settings) (domain.Settings, error) {
	if settings.TopK < 1 {
		return domain.Settings{}, apperrors.NewValidationError("top k must be at least 1", nil)
	}
	if settings.SimilarityThreshold < 0 || settings.SimilarityThreshold > 1 {
		return domain.Settings{}, apperrors.NewValidationError("similarity threshold must be within [0,1]", nil)
	}
	if strings.TrimSpace(settings.EmbeddingModel) == "" {
		return domain.Settings{}, apperrors.NewValidationError("embedding model is required", nil)
	}
	if settings.ChunkSize < 1 {
		return domain.Settings{}, apperrors.NewValidationError("chunk size must be at least 1", nil)
	}
	if settings.ChunkOverlap < 0 || settings.ChunkOverlap >= settings.ChunkSize {
		return domain.Settings{}, apperrors.NewValidationError("chunk overlap must be smaller than chunk size", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings, nil
}
