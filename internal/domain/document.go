package domain

import "time"

// DocumentStatus represents lifecycle states for a knowledge document.
type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusReview   DocumentStatus = "review"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusArchived DocumentStatus = "archived"
)

// Classification marks how widely a document may be shared.
type Classification string

const (
	ClassificationPublic       Classification = "public"
	ClassificationInternal     Classification = "internal"
	ClassificationConfidential Classification = "confidential"
)

// Valid reports whether the classification is a known level.
func (c Classification) Valid() bool {
	switch c {
	case ClassificationPublic, ClassificationInternal, ClassificationConfidential:
		return true
	}
	return false
}

// Document is the domain model for a knowledge base document.
type Document struct {
	ID              string
	Title           string
	OwnerDepartment string
	Classification  Classification
	Status          DocumentStatus
	CurrentVersion  string
	Tags            []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DocumentVersion records one revision of a document.
type DocumentVersion struct {
	ID         string
	DocumentID string
	Version    string
	Status     DocumentStatus
	CreatedBy  string
	Changelog  string
	CreatedAt  time.Time
}
