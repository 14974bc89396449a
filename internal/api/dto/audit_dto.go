package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// AuditLogEntryResponse is one query log row.
type AuditLogEntryResponse struct {
	ID                 string              `json:"id"`
	TraceID            string              `json:"trace_id"`
	UserID             string              `json:"user_id"`
	UserName           string              `json:"user_name"`
	Query              string              `json:"query"`
	Status             domain.AnswerStatus `json:"status"`
	DocumentsRetrieved int                 `json:"documents_retrieved"`
	Citations          int                 `json:"citations"`
	LatencyMs          int64               `json:"latency_ms"`
	Timestamp          time.Time           `json:"timestamp"`
}

// JobResponse is one job monitor row.
type JobResponse struct {
	ID         string           `json:"id"`
	Type       domain.JobType   `json:"type"`
	DocumentID string           `json:"document_id,omitempty"`
	VersionID  string           `json:"version_id,omitempty"`
	Status     domain.JobStatus `json:"status"`
	RetryCount int              `json:"retry_count"`
	Error      string           `json:"error,omitempty"`
	StartedAt  *time.Time       `json:"started_at,omitempty"`
	EndedAt    *time.Time       `json:"ended_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewAuditLogEntryResponses maps query log entries.
func NewAuditLogEntryResponses(entries []domain.AuditLogEntry) []AuditLogEntryResponse {
	out := make([]AuditLogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, AuditLogEntryResponse{
			ID:                 entry.ID,
			TraceID:            entry.TraceID,
			UserID:             entry.UserID,
			UserName:           entry.UserName,
			Query:              entry.Query,
			Status:             entry.Status,
			DocumentsRetrieved: entry.DocumentsRetrieved,
			Citations:          entry.Citations,
			LatencyMs:          entry.LatencyMs,
			Timestamp:          entry.Timestamp,
		})
	}
	return out
}

// NewJobResponses maps job records.
func NewJobResponses(jobs []domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, JobResponse{
			ID:         job.ID,
			Type:       job.Type,
			DocumentID: job.DocumentID,
			VersionID:  job.VersionID,
			Status:     job.Status,
			RetryCount: job.RetryCount,
			Error:      job.Error,
			StartedAt:  job.StartedAt,
			EndedAt:    job.EndedAt,
			CreatedAt:  job.CreatedAt,
		})
	}
	return out
}
