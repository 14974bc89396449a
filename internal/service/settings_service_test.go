package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/knowledge-hub/internal/config"
	"github.com/spec-kit/knowledge-hub/internal/domain"
)

func newSettingsService() *SettingsService {
	return NewSettingsService(config.RetrievalConfig{
		TopK:                5,
		SimilarityThreshold: 0.7,
		EmbeddingModel:      "multilingual-e5-large",
		HybridSearch:        true,
		ChunkSize:           512,
		ChunkOverlap:        50,
	})
}

func validSettings() domain.Settings {
	return domain.Settings{
		TopK:                10,
		SimilarityThreshold: 0.8,
		EmbeddingModel:      "multilingual-e5-large",
		HybridSearch:        false,
		ChunkSize:           256,
		ChunkOverlap:        32,
	}
}

func TestSettingsStartFromConfig(t *testing.T) {
	svc := newSettingsService()
	settings := svc.Get(context.Background())
	assert.Equal(t, 5, settings.TopK)
	assert.Equal(t, 0.7, settings.SimilarityThreshold)
	assert.True(t, settings.HybridSearch)
}

func TestSettingsUpdate(t *testing.T) {
	svc := newSettingsService()

	updated, err := svc.Update(context.Background(), validSettings())
	require.NoError(t, err)
	assert.Equal(t, 10, updated.TopK)

	assert.Equal(t, updated, svc.Get(context.Background()))
}

func TestSettingsUpdateValidation(t *testing.T) {
	svc := newSettingsService()

	cases := []struct {
		name   string
		mutate func(*domain.Settings)
	}{
		{"top k below one", func(s *domain.Settings) { s.TopK = 0 }},
		{"threshold above one", func(s *domain.Settings) { s.SimilarityThreshold = 1.2 }},
		{"threshold negative", func(s *domain.Settings) { s.SimilarityThreshold = -0.1 }},
		{"missing embedding model", func(s *domain.Settings) { s.EmbeddingModel = "  " }},
		{"chunk size below one", func(s *domain.Settings) { s.ChunkSize = 0 }},
		{"overlap not below chunk size", func(s *domain.Settings) { s.ChunkOverlap = s.ChunkSize }},
		{"overlap negative", func(s *domain.Settings) { s.ChunkOverlap = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := validSettings()
			tc.mutate(&settings)
			_, err := svc.Update(context.Background(), settings)
			require.Error(t, err)
		})
	}

	assert.Equal(t, 5, svc.Get(context.Background()).TopK, "failed updates leave settings untouched")
}
