package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/events"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// DocumentUploadInput describes an upload request. The file itself is not
// stored; the document collaborator owns the blob in a real deployment.
type DocumentUploadInput struct {
	Title          string
	FileName       string
	Department     string
	Classification domain.Classification
	ReviewLevel    string
	Tags           []string
	UploadedBy     string
}

// DocumentService coordinates document workflows against the storage
// collaborator stub.
type DocumentService struct {
	documents  repository.DocumentRepository
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// DocumentDependencies bundles collaborators for the document service.
type DocumentDependencies struct {
	DocumentRepo repository.DocumentRepository
	JobRepo      repository.JobRepository
	Dispatcher   events.Dispatcher
	Now          func() time.Time
}

// NewDocumentService constructs the service.
func NewDocumentService(deps DocumentDependencies) *DocumentService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &DocumentService{
		documents:  deps.DocumentRepo,
		jobs:       deps.JobRepo,
		dispatcher: deps.Dispatcher,
		now:        deps.Now,
	}
}

// List returns documents matching the filter.
func (s *DocumentService) List(ctx context.Context, filter repository.DocumentFilter) ([]domain.Document, error) {
	return s.documents.List(ctx, filter)
}

// Get returns one document with its version history.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, []domain.DocumentVersion, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	versions, err := s.documents.Versions(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return doc, versions, nil
}

// Upload registers a new draft document and queues its ingestion job.
// Department, classification and review level are all required.
func (s *DocumentService) Upload(ctx context.Context, input DocumentUploadInput) (*domain.Document, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = strings.TrimSpace(input.FileName)
	}
	if title == "" {
		return nil, apperrors.NewValidationError("title or file name is required", nil)
	}
	if strings.TrimSpace(input.Department) == "" {
		return nil, apperrors.NewValidationError("department is required", nil)
	}
	if !input.Classification.Valid() {
		return nil, apperrors.NewValidationError("unknown classification", map[string]any{"classification": input.Classification})
	}
	if strings.TrimSpace(input.ReviewLevel) == "" {
		return nil, apperrors.NewValidationError("review level is required", nil)
	}

	now := s.now()
	doc := &domain.Document{
		ID:              uuid.NewString(),
		Title:           title,
		OwnerDepartment: input.Department,
		Classification:  input.Classification,
		Status:          domain.DocumentStatusDraft,
		CurrentVersion:  "v1.0-draft",
		Tags:            input.Tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	version := &domain.DocumentVersion{
		Version:   doc.CurrentVersion,
		Status:    domain.DocumentStatusDraft,
		CreatedBy: input.UploadedBy,
		Changelog: "Initial upload",
		CreatedAt: now,
	}
	if err := s.documents.Create(ctx, doc, version); err != nil {
		return nil, err
	}

	job := &domain.Job{
		Type:       domain.JobTypeIngestion,
		DocumentID: doc.ID,
		VersionID:  version.ID,
		Status:     domain.JobStatusQueued,
		CreatedAt:  now,
	}
	if err := s.jobs.Enqueue(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: events.EventDocumentUploaded,
		Payload: events.DocumentUploadedPayload{
			DocumentID:     doc.ID,
			Title:          doc.Title,
			Department:     doc.OwnerDepartment,
			Classification: doc.Classification,
			UploadedBy:     input.UploadedBy,
		},
	})
	s.publish(ctx, events.Event{
		Type:    events.EventJobQueued,
		Payload: events.JobQueuedPayload{JobID: job.ID, Type: job.Type, DocumentID: doc.ID},
	})

	return doc, nil
}

// Archive moves a document to archived state.
func (s *DocumentService) Archive(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.DocumentStatusArchived {
		return nil, apperrors.NewConflict("document already archived", nil)
	}
	doc.Status = domain.DocumentStatusArchived
	doc.UpdatedAt = s.now()
	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document and queues the cleanup job.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	job := &domain.Job{
		Type:       domain.JobTypeCleanup,
		DocumentID: id,
		Status:     domain.JobStatusQueued,
		CreatedAt:  s.now(),
	}
	if err := s.jobs.Enqueue(ctx, job); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventJobQueued,
		Payload: events.JobQueuedPayload{JobID: job.ID, Type: job.Type, DocumentID: id},
	})
	return nil
}

func (s *DocumentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}
