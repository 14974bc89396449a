package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Chat      ChatConfig
	Retrieval RetrievalConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// ChatConfig tunes the streamed answer generation.
type ChatConfig struct {
	StreamIntervalMillis int
	StreamChunkRunes     int
}

// RetrievalConfig carries the initial retrieval pipeline settings.
type RetrievalConfig struct {
	TopK                int
	SimilarityThreshold float64
	EmbeddingModel      string
	HybridSearch        bool
	ChunkSize           int
	ChunkOverlap        int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	threshold, err := strconv.ParseFloat(getEnv("RETRIEVAL_SIMILARITY_THRESHOLD", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RETRIEVAL_SIMILARITY_THRESHOLD: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "knowledge-hub-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
		},
		Chat: ChatConfig{
			StreamIntervalMillis: getEnvAsInt("CHAT_STREAM_INTERVAL_MILLIS", 20),
			StreamChunkRunes:     getEnvAsInt("CHAT_STREAM_CHUNK_RUNES", 1),
		},
		Retrieval: RetrievalConfig{
			TopK:                getEnvAsInt("RETRIEVAL_TOP_K", 5),
			SimilarityThreshold: threshold,
			EmbeddingModel:      getEnv("RETRIEVAL_EMBEDDING_MODEL", "text-embedding-3-small"),
			HybridSearch:        getEnvAsBool("RETRIEVAL_HYBRID_SEARCH", true),
			ChunkSize:           getEnvAsInt("RETRIEVAL_CHUNK_SIZE", 512),
			ChunkOverlap:        getEnvAsInt("RETRIEVAL_CHUNK_OVERLAP", 50),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// StreamInterval returns the delay between streamed answer chunks.
func (c ChatConfig) StreamInterval() time.Duration {
	if c.StreamIntervalMillis <= 0 {
		return 20 * time.Millisecond
	}
	return time.Duration(c.StreamIntervalMillis) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
