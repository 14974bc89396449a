package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Search         string
	Status         domain.DocumentStatus
	Classification domain.Classification
}

// DocumentRepository is the boundary to the document storage collaborator.
type DocumentRepository interface {
	List(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Versions(ctx context.Context, documentID string) ([]domain.DocumentVersion, error)
	Create(ctx context.Context, doc *domain.Document, version *domain.DocumentVersion) error
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id string) error
}

type documentRepository struct {
	mu        sync.RWMutex
	documents []domain.Document
	versions  []domain.DocumentVersion
}

// NewDocumentRepository returns a memory-backed implementation seeded with
// mock data.
func NewDocumentRepository(now time.Time) DocumentRepository {
	return &documentRepository{
		documents: seedDocuments(now),
		versions:  seedVersions(now),
	}
}

func (r *documentRepository) List(_ context.Context, filter DocumentFilter) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Document, 0, len(r.documents))
	for _, doc := range r.documents {
		if search != "" &&
			!strings.Contains(strings.ToLower(doc.Title), search) &&
			!strings.Contains(strings.ToLower(doc.OwnerDepartment), search) {
			continue
		}
		if filter.Status != "" && doc.Status != filter.Status {
			continue
		}
		if filter.Classification != "" && doc.Classification != filter.Classification {
			continue
		}
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *documentRepository) GetByID(_ context.Context, id string) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.documents {
		if doc.ID == id {
			copied := doc
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *documentRepository) Versions(_ context.Context, documentID string) ([]domain.DocumentVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.DocumentVersion
	for _, ver := range r.versions {
		if ver.DocumentID == documentID {
			out = append(out, ver)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *documentRepository) Create(_ context.Context, doc *domain.Document, version *domain.DocumentVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if version != nil {
		if version.ID == "" {
			version.ID = uuid.NewString()
		}
		version.DocumentID = doc.ID
		r.versions = append(r.versions, *version)
	}
	r.documents = append(r.documents, *doc)
	return nil
}

func (r *documentRepository) Update(_ context.Context, doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.documents {
		if r.documents[i].ID == doc.ID {
			r.documents[i] = *doc
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *documentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.documents {
		if r.documents[i].ID == id {
			r.documents = append(r.documents[:i], r.documents[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
