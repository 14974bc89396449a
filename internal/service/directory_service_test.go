package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/repository"
)

func newDirectoryService() *DirectoryService {
	return NewDirectoryService(repository.NewDirectoryRepository(time.Now()))
}

func TestListUsersFilters(t *testing.T) {
	svc := newDirectoryService()

	users, err := svc.ListUsers(context.Background(), repository.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 5)

	users, err = svc.ListUsers(context.Background(), repository.UserFilter{Status: domain.UserStatusInactive})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user-5", users[0].ID)

	users, err = svc.ListUsers(context.Background(), repository.UserFilter{Search: "bình"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user-2", users[0].ID)
}

func TestSetUserStatus(t *testing.T) {
	svc := newDirectoryService()

	require.NoError(t, svc.SetUserStatus(context.Background(), "user-5", domain.UserStatusActive))

	users, err := svc.ListUsers(context.Background(), repository.UserFilter{Status: domain.UserStatusInactive})
	require.NoError(t, err)
	assert.Empty(t, users)

	require.Error(t, svc.SetUserStatus(context.Background(), "user-1", domain.UserStatus("suspended")))
	require.Error(t, svc.SetUserStatus(context.Background(), "user-99", domain.UserStatusActive))
}

func TestRolesSummaries(t *testing.T) {
	svc := newDirectoryService()

	summaries, err := svc.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, len(domain.Roles()))

	byRole := make(map[domain.Role]RoleSummary)
	for _, summary := range summaries {
		byRole[summary.Role] = summary
	}

	admin := byRole[domain.RoleAdmin]
	assert.Equal(t, 1, admin.Members)
	assert.Contains(t, admin.Capabilities, auth.CapabilityUsersManage)

	employee := byRole[domain.RoleEmployee]
	assert.Equal(t, 2, employee.Members, "the inactive employee still counts")
	assert.NotContains(t, employee.Capabilities, auth.CapabilityUsersManage)
}

func TestDepartmentsSorted(t *testing.T) {
	svc := newDirectoryService()

	summaries, err := svc.Departments(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, summaries)
	for i := 1; i < len(summaries); i++ {
		assert.Less(t, summaries[i-1].Name, summaries[i].Name)
	}

	byName := make(map[string]int)
	for _, summary := range summaries {
		byName[summary.Name] = summary.Members
	}
	assert.Equal(t, 2, byName["Engineering"])
}
