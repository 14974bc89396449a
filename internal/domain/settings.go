package domain

// Settings holds the tunable retrieval and ingestion parameters.
type Settings struct {
	TopK                int
	SimilarityThreshold float64
	EmbeddingModel      string
	HybridSearch        bool
	ChunkSize           int
	ChunkOverlap        int
}

// Feedback is a thumbs up/down rating for an assistant answer.
type Feedback struct {
	ID             string
	MessageID      string
	Helpful        bool
	Reason         string
	ExpectedAnswer string
}
