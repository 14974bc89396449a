package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// JobFilter narrows job listings.
type JobFilter struct {
	Status domain.JobStatus
	Type   domain.JobType
}

// JobRepository is the boundary to the background job collaborator.
type JobRepository interface {
	Enqueue(ctx context.Context, job *domain.Job) error
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
}

type jobRepository struct {
	mu   sync.RWMutex
	jobs []domain.Job
}

// NewJobRepository returns a memory-backed implementation seeded with mock
// data.
func NewJobRepository(now time.Time) JobRepository {
	return &jobRepository{jobs: seedJobs(now)}
}

func (r *jobRepository) Enqueue(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = domain.JobStatusQueued
	}
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *jobRepository) List(_ context.Context, filter JobFilter) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.Type != "" && job.Type != filter.Type {
			continue
		}
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
