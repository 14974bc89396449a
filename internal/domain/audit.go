package domain

import "time"

// AuditLogEntry records one retrieval query for the audit trail.
type AuditLogEntry struct {
	ID                 string
	TraceID            string
	UserID             string
	UserName           string
	Query              string
	Status             AnswerStatus
	DocumentsRetrieved int
	Citations          int
	LatencyMs          int64
	Timestamp          time.Time
}

// JobType enumerates background pipeline job kinds.
type JobType string

const (
	JobTypeIngestion JobType = "ingestion"
	JobTypeIndexing  JobType = "indexing"
	JobTypeEmbedding JobType = "embedding"
	JobTypeCleanup   JobType = "cleanup"
)

// JobStatus represents the execution state of a job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Job is a background pipeline job record surfaced by the job monitor.
type Job struct {
	ID         string
	Type       JobType
	DocumentID string
	VersionID  string
	Status     JobStatus
	RetryCount int
	Error      string
	StartedAt  *time.Time
	EndedAt    *time.Time
	CreatedAt  time.Time
}
