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

// PendingApprovals splits the queue the way the review screen groups it.
type PendingApprovals struct {
	InReview []domain.ApprovalItem
	Drafts   []domain.ApprovalItem
}

// ApprovalService coordinates review decisions on submitted versions.
type ApprovalService struct {
	approvals  repository.ApprovalRepository
	documents  repository.DocumentRepository
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// ApprovalDependencies bundles collaborators for the approval service.
type ApprovalDependencies struct {
	ApprovalRepo repository.ApprovalRepository
	DocumentRepo repository.DocumentRepository
	JobRepo      repository.JobRepository
	Dispatcher   events.Dispatcher
	Now          func() time.Time
}

// NewApprovalService constructs the service.
func NewApprovalService(deps ApprovalDependencies) *ApprovalService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &ApprovalService{
		approvals:  deps.ApprovalRepo,
		documents:  deps.DocumentRepo,
		jobs:       deps.JobRepo,
		dispatcher: deps.Dispatcher,
		now:        deps.Now,
	}
}

// ListPending returns pending items grouped by submission state.
func (s *ApprovalService) ListPending(ctx context.Context) (*PendingApprovals, error) {
	items, err := s.approvals.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	out := &PendingApprovals{}
	for _, item := range items {
		if item.Status == domain.DocumentStatusReview {
			out.InReview = append(out.InReview, item)
		} else {
			out.Drafts = append(out.Drafts, item)
		}
	}
	return out, nil
}

// Decide applies an approve or reject verdict. A rejection requires a
// comment; approvals may leave it empty. Approving publishes the version and
// queues the indexing job; rejecting sends the document back to draft.
func (s *ApprovalService) Decide(ctx context.Context, id string, decision domain.ApprovalDecision, comment, decidedBy string) error {
	comment = strings.TrimSpace(comment)
	switch decision {
	case domain.ApprovalDecisionApprove:
	case domain.ApprovalDecisionReject:
		if comment == "" {
			return apperrors.NewValidationError("a comment is required to reject", nil)
		}
	default:
		return apperrors.NewValidationError("unknown decision", map[string]any{"decision": decision})
	}

	item, err := s.approvals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	doc, err := s.documents.GetByID(ctx, item.DocumentID)
	if err != nil {
		return err
	}
	if decision == domain.ApprovalDecisionApprove {
		doc.Status = domain.DocumentStatusApproved
		doc.CurrentVersion = item.Version
	} else {
		doc.Status = domain.DocumentStatusDraft
	}
	doc.UpdatedAt = s.now()
	if err := s.documents.Update(ctx, doc); err != nil {
		return err
	}

	if err := s.approvals.Remove(ctx, id); err != nil {
		return err
	}

	if decision == domain.ApprovalDecisionApprove {
		job := &domain.Job{
			Type:       domain.JobTypeIndexing,
			DocumentID: item.DocumentID,
			Status:     domain.JobStatusQueued,
			CreatedAt:  s.now(),
		}
		if err := s.jobs.Enqueue(ctx, job); err != nil {
			return err
		}
		s.publish(ctx, events.Event{
			Type:    events.EventJobQueued,
			Payload: events.JobQueuedPayload{JobID: job.ID, Type: job.Type, DocumentID: item.DocumentID},
		})
	}

	s.publish(ctx, events.Event{
		Type: events.EventDocumentDecided,
		Payload: events.DocumentDecidedPayload{
			ApprovalID: item.ID,
			DocumentID: item.DocumentID,
			Version:    item.Version,
			Decision:   decision,
			DecidedBy:  decidedBy,
			Comment:    comment,
		},
	})
	return nil
}

func (s *ApprovalService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}
