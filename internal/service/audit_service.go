package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/events"
	"github.com/spec-kit/knowledge-hub/internal/repository"
)

// AuditService serves the query log and job monitor, and records completed
// queries published on the dispatcher.
type AuditService struct {
	logs       repository.AuditLogRepository
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// AuditDependencies bundles collaborators for the audit service.
type AuditDependencies struct {
	AuditRepo  repository.AuditLogRepository
	JobRepo    repository.JobRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewAuditService constructs the service.
func NewAuditService(deps AuditDependencies) *AuditService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &AuditService{
		logs:       deps.AuditRepo,
		jobs:       deps.JobRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Now,
	}
}

// RegisterHandlers subscribes the audit recorder to the dispatcher.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventQueryCompleted, s.handleQueryCompleted)
	s.dispatcher.Subscribe(events.EventDocumentUploaded, s.handleDocumentUploaded)
	s.dispatcher.Subscribe(events.EventDocumentDecided, s.handleDocumentDecided)
	s.dispatcher.Subscribe(events.EventJobQueued, s.handleJobQueued)
}

func (s *AuditService) handleQueryCompleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.QueryCompletedPayload)
	if !ok {
		return nil
	}
	entry := &domain.AuditLogEntry{
		ID:                 uuid.NewString(),
		TraceID:            payload.TraceID,
		UserID:             payload.UserID,
		UserName:           payload.UserName,
		Query:              payload.Query,
		Status:             payload.Status,
		DocumentsRetrieved: payload.DocumentsRetrieved,
		Citations:          payload.Citations,
		LatencyMs:          payload.LatencyMs,
		Timestamp:          s.now(),
	}
	return s.logs.Append(ctx, entry)
}

// Document and job events only reach the trail as structured log lines; the
// excluded audit collaborator would persist them.
func (s *AuditService) handleDocumentUploaded(_ context.Context, event events.Event) error {
	s.logger.Info("DocumentUploaded", zap.Any("payload", event.Payload))
	return nil
}

func (s *AuditService) handleDocumentDecided(_ context.Context, event events.Event) error {
	s.logger.Info("DocumentDecided", zap.Any("payload", event.Payload))
	return nil
}

func (s *AuditService) handleJobQueued(_ context.Context, event events.Event) error {
	s.logger.Info("JobQueued", zap.Any("payload", event.Payload))
	return nil
}

// ListQueries returns audit log entries matching the filter, newest first.
func (s *AuditService) ListQueries(ctx context.Context, filter repository.AuditFilter) ([]domain.AuditLogEntry, error) {
	return s.logs.List(ctx, filter)
}

// ListJobs returns job records matching the filter, newest first.
func (s *AuditService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}
