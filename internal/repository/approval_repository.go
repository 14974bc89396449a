package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// ApprovalRepository is the boundary to the approvals collaborator.
type ApprovalRepository interface {
	ListPending(ctx context.Context) ([]domain.ApprovalItem, error)
	GetByID(ctx context.Context, id string) (*domain.ApprovalItem, error)
	Remove(ctx context.Context, id string) error
}

type approvalRepository struct {
	mu    sync.RWMutex
	items []domain.ApprovalItem
}

// NewApprovalRepository returns a memory-backed implementation seeded with
// mock data.
func NewApprovalRepository(now time.Time) ApprovalRepository {
	return &approvalRepository{items: seedApprovals(now)}
}

func (r *approvalRepository) ListPending(_ context.Context) ([]domain.ApprovalItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ApprovalItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *approvalRepository) GetByID(_ context.Context, id string) (*domain.ApprovalItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			copied := item
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *approvalRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
