package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// UserStatusRequest payload for toggling a directory user.
type UserStatusRequest struct {
	Status domain.UserStatus `json:"status"`
}

// UserResponse is one directory row.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       domain.Role       `json:"role"`
	Department string            `json:"department"`
	Groups     []string          `json:"groups"`
	Status     domain.UserStatus `json:"status"`
	LastActive time.Time         `json:"last_active"`
}

// RoleSummaryResponse is one roles tab row.
type RoleSummaryResponse struct {
	Role         domain.Role `json:"role"`
	Capabilities []string    `json:"capabilities"`
	Members      int         `json:"members"`
}

// DepartmentSummaryResponse is one departments tab row.
type DepartmentSummaryResponse struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// NewUserResponses maps directory users.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			Department: user.Department,
			Groups:     user.Groups,
			Status:     user.Status,
			LastActive: user.LastActive,
		})
	}
	return out
}

// NewRoleSummaryResponses maps role summaries.
func NewRoleSummaryResponses(summaries []service.RoleSummary) []RoleSummaryResponse {
	out := make([]RoleSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		capabilities := make([]string, 0, len(summary.Capabilities))
		for _, capability := range summary.Capabilities {
			capabilities = append(capabilities, string(capability))
		}
		out = append(out, RoleSummaryResponse{
			Role:         summary.Role,
			Capabilities: capabilities,
			Members:      summary.Members,
		})
	}
	return out
}

// NewDepartmentSummaryResponses maps department summaries.
func NewDepartmentSummaryResponses(summaries []service.DepartmentSummary) []DepartmentSummaryResponse {
	out := make([]DepartmentSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, DepartmentSummaryResponse{Name: summary.Name, Members: summary.Members})
	}
	return out
}
