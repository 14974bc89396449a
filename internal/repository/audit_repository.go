package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// AuditFilter narrows query log listings.
type AuditFilter struct {
	Search string
	Status domain.AnswerStatus
}

// AuditLogRepository is the boundary to the append-only audit collaborator.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *domain.AuditLogEntry) error
	List(ctx context.Context, filter AuditFilter) ([]domain.AuditLogEntry, error)
}

type auditLogRepository struct {
	mu      sync.RWMutex
	entries []domain.AuditLogEntry
}

// NewAuditLogRepository returns a memory-backed implementation seeded with
// mock data.
func NewAuditLogRepository(now time.Time) AuditLogRepository {
	return &auditLogRepository{entries: seedAuditLogs(now)}
}

func (r *auditLogRepository) Append(_ context.Context, entry *domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *auditLogRepository) List(_ context.Context, filter AuditFilter) ([]domain.AuditLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.AuditLogEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		if search != "" &&
			!strings.Contains(strings.ToLower(entry.Query), search) &&
			!strings.Contains(strings.ToLower(entry.UserName), search) &&
			!strings.Contains(strings.ToLower(entry.TraceID), search) {
			continue
		}
		if filter.Status != "" && entry.Status != filter.Status {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}
