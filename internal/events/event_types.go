package events

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventQueryCompleted   EventType = "query_completed"
	EventDocumentUploaded EventType = "document_uploaded"
	EventDocumentDecided  EventType = "document_decided"
	EventJobQueued        EventType = "job_queued"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// QueryCompletedPayload describes a finished retrieval query.
type QueryCompletedPayload struct {
	TraceID            string              `json:"trace_id"`
	UserID             string              `json:"user_id"`
	UserName           string              `json:"user_name"`
	Query              string              `json:"query"`
	Status             domain.AnswerStatus `json:"status"`
	DocumentsRetrieved int                 `json:"documents_retrieved"`
	Citations          int                 `json:"citations"`
	LatencyMs          int64               `json:"latency_ms"`
}

// DocumentUploadedPayload describes a new draft document.
type DocumentUploadedPayload struct {
	DocumentID     string                `json:"document_id"`
	Title          string                `json:"title"`
	Department     string                `json:"department"`
	Classification domain.Classification `json:"classification"`
	UploadedBy     string                `json:"uploaded_by"`
}

// DocumentDecidedPayload describes an approval decision.
type DocumentDecidedPayload struct {
	ApprovalID string                  `json:"approval_id"`
	DocumentID string                  `json:"document_id"`
	Version    string                  `json:"version"`
	Decision   domain.ApprovalDecision `json:"decision"`
	DecidedBy  string                  `json:"decided_by"`
	Comment    string                  `json:"comment,omitempty"`
}

// JobQueuedPayload describes a queued pipeline job.
type JobQueuedPayload struct {
	JobID      string         `json:"job_id"`
	Type       domain.JobType `json:"type"`
	DocumentID string         `json:"document_id,omitempty"`
}
