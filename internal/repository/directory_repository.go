package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// UserFilter narrows directory listings.
type UserFilter struct {
	Search string
	Status domain.UserStatus
}

// DirectoryRepository is the boundary to the identity/SSO collaborator. It
// serves both the admin directory listing and the canned login principals.
type DirectoryRepository interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SetStatus(ctx context.Context, id string, status domain.UserStatus) error
	PrincipalForRole(role domain.Role) (*domain.Principal, error)
}

type directoryRepository struct {
	mu         sync.RWMutex
	users      []domain.User
	principals map[domain.Role]domain.Principal
}

// NewDirectoryRepository returns a memory-backed implementation seeded with
// mock data.
func NewDirectoryRepository(now time.Time) DirectoryRepository {
	return &directoryRepository{
		users:      seedUsers(now),
		principals: seedPrincipals(),
	}
}

func (r *directoryRepository) List(_ context.Context, filter UserFilter) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Name), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) &&
			!strings.Contains(strings.ToLower(user.Department), search) {
			continue
		}
		if filter.Status != "" && user.Status != filter.Status {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func (r *directoryRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			copied := user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *directoryRepository) SetStatus(_ context.Context, id string, status domain.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Status = status
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// PrincipalForRole returns the canned principal used by the mock login.
func (r *directoryRepository) PrincipalForRole(role domain.Role) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	principal, ok := r.principals[role]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := principal
	return &copied, nil
}
