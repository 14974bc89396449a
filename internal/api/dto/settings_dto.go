package dto

import "github.com/spec-kit/knowledge-hub/internal/domain"

// SettingsPayload carries the retrieval and ingestion tunables both ways.
type SettingsPayload struct {
	TopK                int     `json:"top_k"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	EmbeddingModel      string  `json:"embedding_model"`
	HybridSearch        bool    `json:"hybrid_search"`
	ChunkSize           int     `json:"chunk_size"`
	ChunkOverlap        int     `json:"chunk_overlap"`
}

// NewSettingsPayload maps domain settings.
func NewSettingsPayload(settings domain.Settings) SettingsPayload {
	return SettingsPayload{
		TopK:                settings.TopK,
		SimilarityThreshold: settings.SimilarityThreshold,
		EmbeddingModel:      settings.EmbeddingModel,
		HybridSearch:        settings.HybridSearch,
		ChunkSize:           settings.ChunkSize,
		ChunkOverlap:        settings.ChunkOverlap,
	}
}

// ToDomain maps the payload back to domain settings.
func (p SettingsPayload) ToDomain() domain.Settings {
	return domain.Settings{
		TopK:                p.TopK,
		SimilarityThreshold: p.SimilarityThreshold,
		EmbeddingModel:      p.EmbeddingModel,
		HybridSearch:        p.HybridSearch,
		ChunkSize:           p.ChunkSize,
		ChunkOverlap:        p.ChunkOverlap,
	}
}
