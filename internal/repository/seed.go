package repository

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// Seed data standing in for the document, retrieval, audit and directory
// backends. Everything lives in memory and resets on restart.

func seedPrincipals() map[domain.Role]domain.Principal {
	return map[domain.Role]domain.Principal{
		domain.RoleEmployee: {
			ID: "user-1", Name: "Nguyễn Văn An", Email: "an.nguyen@company.com",
			Role: domain.RoleEmployee, Department: "Engineering",
		},
		domain.RoleDepartmentManager: {
			ID: "user-2", Name: "Trần Thị Bình", Email: "binh.tran@company.com",
			Role: domain.RoleDepartmentManager, Department: "Engineering",
		},
		domain.RoleKnowledgeManager: {
			ID: "user-3", Name: "Lê Văn Cường", Email: "cuong.le@company.com",
			Role: domain.RoleKnowledgeManager, Department: "Knowledge Management",
		},
		domain.RoleAdmin: {
			ID: "user-4", Name: "Phạm Thị Dung", Email: "dung.pham@company.com",
			Role: domain.RoleAdmin, Department: "IT Administration",
		},
	}
}

func seedUsers(now time.Time) []domain.User {
	return []domain.User{
		{
			ID: "user-1", Name: "Nguyễn Văn An", Email: "an.nguyen@company.com",
			Role: domain.RoleEmployee, Department: "Engineering",
			Groups: []string{"Engineering Team", "Project Alpha"},
			Status: domain.UserStatusActive, LastActive: now.Add(-30 * time.Minute),
		},
		{
			ID: "user-2", Name: "Trần Thị Bình", Email: "binh.tran@company.com",
			Role: domain.RoleDepartmentManager, Department: "Engineering",
			Groups: []string{"Engineering Team", "Managers"},
			Status: domain.UserStatusActive, LastActive: now.Add(-2 * time.Hour),
		},
		{
			ID: "user-3", Name: "Lê Văn Cường", Email: "cuong.le@company.com",
			Role: domain.RoleKnowledgeManager, Department: "Knowledge Management",
			Groups: []string{"KM Team", "Content Reviewers"},
			Status: domain.UserStatusActive, LastActive: now.Add(-3 * time.Hour),
		},
		{
			ID: "user-4", Name: "Phạm Thị Dung", Email: "dung.pham@company.com",
			Role: domain.RoleAdmin, Department: "IT Administration",
			Groups: []string{"Admins", "IT Team"},
			Status: domain.UserStatusActive, LastActive: now.Add(-15 * time.Minute),
		},
		{
			ID: "user-5", Name: "Hoàng Văn Em", Email: "em.hoang@company.com",
			Role: domain.RoleEmployee, Department: "Sales",
			Groups: []string{"Sales Team"},
			Status: domain.UserStatusInactive, LastActive: now.Add(-5 * 24 * time.Hour),
		},
	}
}

func seedDocuments(now time.Time) []domain.Document {
	return []domain.Document{
		{
			ID: "doc-1", Title: "Quy trình onboarding nhân viên mới",
			OwnerDepartment: "HR", Classification: domain.ClassificationInternal,
			Status: domain.DocumentStatusApproved, CurrentVersion: "v2.1",
			Tags:      []string{"onboarding", "hr", "quy trình"},
			CreatedAt: now.Add(-90 * 24 * time.Hour), UpdatedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			ID: "doc-2", Title: "Chính sách bảo mật thông tin",
			OwnerDepartment: "IT", Classification: domain.ClassificationConfidential,
			Status: domain.DocumentStatusApproved, CurrentVersion: "v3.0",
			Tags:      []string{"bảo mật", "chính sách"},
			CreatedAt: now.Add(-200 * 24 * time.Hour), UpdatedAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: "doc-3", Title: "Hướng dẫn sử dụng CRM",
			OwnerDepartment: "Sales", Classification: domain.ClassificationInternal,
			Status: domain.DocumentStatusReview, CurrentVersion: "v1.5",
			Tags:      []string{"crm", "sales", "hướng dẫn"},
			CreatedAt: now.Add(-60 * 24 * time.Hour), UpdatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: "doc-4", Title: "Quy trình tuyển dụng",
			OwnerDepartment: "HR", Classification: domain.ClassificationInternal,
			Status: domain.DocumentStatusDraft, CurrentVersion: "v4.0-draft",
			Tags:      []string{"tuyển dụng", "hr"},
			CreatedAt: now.Add(-120 * 24 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "doc-5", Title: "Sổ tay văn hóa doanh nghiệp",
			OwnerDepartment: "HR", Classification: domain.ClassificationPublic,
			Status: domain.DocumentStatusArchived, CurrentVersion: "v1.0",
			Tags:      []string{"văn hóa"},
			CreatedAt: now.Add(-400 * 24 * time.Hour), UpdatedAt: now.Add(-300 * 24 * time.Hour),
		},
	}
}

func seedVersions(now time.Time) []domain.DocumentVersion {
	return []domain.DocumentVersion{
		{
			ID: "ver-1", DocumentID: "doc-1", Version: "v2.0",
			Status: domain.DocumentStatusArchived, CreatedBy: "Nguyễn Thị Mai",
			Changelog: "Cập nhật quy trình cấp thiết bị", CreatedAt: now.Add(-60 * 24 * time.Hour),
		},
		{
			ID: "ver-2", DocumentID: "doc-1", Version: "v2.1",
			Status: domain.DocumentStatusApproved, CreatedBy: "Nguyễn Thị Mai",
			Changelog: "Bổ sung checklist ngày đầu tiên", CreatedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			ID: "ver-3", DocumentID: "doc-3", Version: "v1.4",
			Status: domain.DocumentStatusApproved, CreatedBy: "Trần Văn Nam",
			Changelog: "Sửa hướng dẫn báo cáo", CreatedAt: now.Add(-20 * 24 * time.Hour),
		},
		{
			ID: "ver-4", DocumentID: "doc-3", Version: "v1.5",
			Status: domain.DocumentStatusReview, CreatedBy: "Trần Văn Nam",
			Changelog: "Thêm quy trình chăm sóc khách hàng mới", CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: "ver-5", DocumentID: "doc-2", Version: "v3.0",
			Status: domain.DocumentStatusApproved, CreatedBy: "Phạm Thị Dung",
			Changelog: "Siết quy định mật khẩu và truy cập từ xa", CreatedAt: now.Add(-30 * 24 * time.Hour),
		},
	}
}

func seedApprovals(now time.Time) []domain.ApprovalItem {
	return []domain.ApprovalItem{
		{
			ID: "apr-1", DocumentID: "doc-3", DocumentTitle: "Hướng dẫn sử dụng CRM",
			Version: "v1.5", PreviousVersion: "v1.4", Department: "Sales",
			Classification: domain.ClassificationInternal, SubmittedBy: "Trần Văn Nam",
			SubmittedAt: now.Add(-3 * 24 * time.Hour),
			Status:      domain.DocumentStatusReview, ChangesCount: 12,
		},
		{
			ID: "apr-2", DocumentID: "doc-4", DocumentTitle: "Quy trình tuyển dụng",
			Version: "v4.0-draft", PreviousVersion: "v3.2", Department: "HR",
			Classification: domain.ClassificationInternal, SubmittedBy: "Nguyễn Thị Mai",
			SubmittedAt: now.Add(-24 * time.Hour),
			Status:      domain.DocumentStatusDraft, ChangesCount: 28,
		},
	}
}

func seedSearchResults(now time.Time) []domain.SearchResult {
	return []domain.SearchResult{
		{
			ID: "res-1", DocumentID: "doc-1", Title: "Quy trình onboarding nhân viên mới",
			Snippet:     "Nhân viên mới cần hoàn thành checklist ngày đầu tiên, bao gồm nhận thiết bị và tài khoản hệ thống...",
			SectionPath: "2. Thủ tục > 2.1 Ngày đầu tiên",
			Classification: domain.ClassificationInternal, Status: domain.DocumentStatusApproved,
			Score: 0.94, Tags: []string{"onboarding", "hr"}, UpdatedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			ID: "res-2", DocumentID: "doc-2", Title: "Chính sách bảo mật thông tin",
			Snippet:     "Mật khẩu phải có tối thiểu 12 ký tự và được thay đổi định kỳ mỗi 90 ngày...",
			SectionPath: "4. Quy định > 4.2 Mật khẩu",
			Classification: domain.ClassificationConfidential, Status: domain.DocumentStatusApproved,
			Score: 0.89, Tags: []string{"bảo mật"}, UpdatedAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: "res-3", DocumentID: "doc-3", Title: "Hướng dẫn sử dụng CRM",
			Snippet:     "Để tạo cơ hội bán hàng mới, chọn menu Opportunities và nhấn nút New...",
			SectionPath: "3. Bán hàng > 3.1 Cơ hội",
			Classification: domain.ClassificationInternal, Status: domain.DocumentStatusReview,
			Score: 0.81, Tags: []string{"crm", "sales"}, UpdatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: "res-4", DocumentID: "doc-5", Title: "Sổ tay văn hóa doanh nghiệp",
			Snippet:     "Giá trị cốt lõi của công ty gồm chính trực, sáng tạo và hợp tác...",
			SectionPath: "1. Giá trị cốt lõi",
			Classification: domain.ClassificationPublic, Status: domain.DocumentStatusArchived,
			Score: 0.72, Tags: []string{"văn hóa"}, UpdatedAt: now.Add(-300 * 24 * time.Hour),
		},
	}
}

// SeedCitations returns the canned citation list attached to successful
// answers.
func SeedCitations() []domain.Citation {
	return []domain.Citation{
		{
			ID: "cite-1", DocumentID: "doc-1", DocumentTitle: "Quy trình onboarding nhân viên mới",
			VersionID: "ver-2", SectionPath: "2. Thủ tục > 2.1 Ngày đầu tiên",
			Snippet: "Nhân viên mới cần hoàn thành checklist ngày đầu tiên, bao gồm nhận thiết bị và tài khoản hệ thống.",
			Score:   0.92,
		},
		{
			ID: "cite-2", DocumentID: "doc-2", DocumentTitle: "Chính sách bảo mật thông tin",
			VersionID: "ver-5", SectionPath: "4. Quy định > 4.2 Mật khẩu",
			Snippet: "Mật khẩu phải có tối thiểu 12 ký tự và được thay đổi định kỳ mỗi 90 ngày.",
			Score:   0.85,
		},
	}
}

func seedAuditLogs(now time.Time) []domain.AuditLogEntry {
	return []domain.AuditLogEntry{
		{
			ID: "log-1", TraceID: "trace-m5k2x1", UserID: "user-1", UserName: "Nguyễn Văn An",
			Query: "Quy trình onboarding cho nhân viên mới như thế nào?", Status: domain.AnswerStatusSuccess,
			DocumentsRetrieved: 5, Citations: 2, LatencyMs: 1840, Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID: "log-2", TraceID: "trace-m5k3aa", UserID: "user-2", UserName: "Trần Thị Bình",
			Query: "Ngân sách marketing quý 3", Status: domain.AnswerStatusNoAnswer,
			DocumentsRetrieved: 0, Citations: 0, LatencyMs: 920, Timestamp: now.Add(-90 * time.Minute),
		},
		{
			ID: "log-3", TraceID: "trace-m5k3bb", UserID: "user-1", UserName: "Nguyễn Văn An",
			Query: "Lương thưởng ban giám đốc", Status: domain.AnswerStatusNoPermission,
			DocumentsRetrieved: 3, Citations: 0, LatencyMs: 640, Timestamp: now.Add(-45 * time.Minute),
		},
	}
}

func seedJobs(now time.Time) []domain.Job {
	started1 := now.Add(-50 * time.Minute)
	ended1 := now.Add(-48 * time.Minute)
	started2 := now.Add(-5 * time.Minute)
	started3 := now.Add(-3 * time.Hour)
	ended3 := now.Add(-3*time.Hour + 40*time.Second)
	return []domain.Job{
		{
			ID: "job-1", Type: domain.JobTypeIngestion, DocumentID: "doc-3", VersionID: "ver-4",
			Status: domain.JobStatusSucceeded, StartedAt: &started1, EndedAt: &ended1,
			CreatedAt: now.Add(-55 * time.Minute),
		},
		{
			ID: "job-2", Type: domain.JobTypeIndexing, DocumentID: "doc-3", VersionID: "ver-4",
			Status: domain.JobStatusRunning, StartedAt: &started2,
			CreatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID: "job-3", Type: domain.JobTypeEmbedding, DocumentID: "doc-4",
			Status:    domain.JobStatusQueued,
			CreatedAt: now.Add(-2 * time.Minute),
		},
		{
			ID: "job-4", Type: domain.JobTypeCleanup,
			Status: domain.JobStatusFailed, RetryCount: 2,
			Error: "storage bucket unreachable", StartedAt: &started3, EndedAt: &ended3,
			CreatedAt: now.Add(-4 * time.Hour),
		},
	}
}

// SeedConversations returns the starter conversations for a fresh session
// plus the message history of the default conversation.
func SeedConversations(now time.Time) ([]domain.Conversation, map[string][]domain.ChatMessage) {
	conversations := []domain.Conversation{
		{
			ID: "conv-1", Title: "Quy trình onboarding nhân viên mới", MessageCount: 2,
			CreatedAt: now.Add(-3 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "conv-2", Title: "Chính sách bảo mật thông tin", MessageCount: 2,
			CreatedAt: now.Add(-26 * time.Hour), UpdatedAt: now.Add(-25 * time.Hour),
		},
	}

	messages := map[string][]domain.ChatMessage{
		"conv-1": {
			{
				ID: "msg-1", Role: domain.MessageRoleUser,
				Content:   "Nhân viên mới cần làm gì trong ngày đầu tiên?",
				Timestamp: now.Add(-2 * time.Hour),
			},
			{
				ID: "msg-2", Role: domain.MessageRoleAssistant,
				Content:   "Theo quy trình onboarding hiện hành, nhân viên mới cần hoàn thành checklist ngày đầu tiên: nhận thiết bị, kích hoạt tài khoản hệ thống và tham gia buổi định hướng.",
				Citations: SeedCitations(), TraceID: "trace-m5k2x1",
				Status:    domain.AnswerStatusSuccess,
				Timestamp: now.Add(-2 * time.Hour).Add(15 * time.Second),
			},
		},
	}

	return conversations, messages
}
