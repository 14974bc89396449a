package service

import (
	"context"
	"sort"

	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// RoleSummary pairs a role with the capabilities the permission table grants
// it.
type RoleSummary struct {
	Role         domain.Role
	Capabilities []auth.Capability
	Members      int
}

// DepartmentSummary counts directory members per department.
type DepartmentSummary struct {
	Name    string
	Members int
}

// DirectoryService serves the users-and-access administration surface.
type DirectoryService struct {
	directory repository.DirectoryRepository
}

// NewDirectoryService constructs the service.
func NewDirectoryService(directory repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// ListUsers returns directory users matching the filter.
func (s *DirectoryService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	return s.directory.List(ctx, filter)
}

// SetUserStatus activates or deactivates a directory user.
func (s *DirectoryService) SetUserStatus(ctx context.Context, id string, status domain.UserStatus) error {
	if status != domain.UserStatusActive && status != domain.UserStatusInactive {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	return s.directory.SetStatus(ctx, id, status)
}

// Roles summarises each role with its allowed capabilities and member count.
func (s *DirectoryService) Roles(ctx context.Context) ([]RoleSummary, error) {
	users, err := s.directory.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Role]int)
	for _, user := range users {
		counts[user.Role]++
	}

	out := make([]RoleSummary, 0, len(domain.Roles()))
	for _, role := range domain.Roles() {
		out = append(out, RoleSummary{
			Role:         role,
			Capabilities: auth.Capabilities(role),
			Members:      counts[role],
		})
	}
	return out, nil
}

// Departments summarises directory membership per department.
func (s *DirectoryService) Departments(ctx context.Context) ([]DepartmentSummary, error) {
	users, err := s.directory.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, user := range users {
		counts[user.Department]++
	}

	out := make([]DepartmentSummary, 0, len(counts))
	for name, members := range counts {
		out = append(out, DepartmentSummary{Name: name, Members: members})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
