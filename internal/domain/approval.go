package domain

import "time"

// ApprovalDecision is the reviewer's verdict on a submitted version.
type ApprovalDecision string

const (
	ApprovalDecisionApprove ApprovalDecision = "approve"
	ApprovalDecisionReject  ApprovalDecision = "reject"
)

// ApprovalItem is a document version waiting for review.
type ApprovalItem struct {
	ID              string
	DocumentID      string
	DocumentTitle   string
	Version         string
	PreviousVersion string
	Department      string
	Classification  Classification
	SubmittedBy     string
	SubmittedAt     time.Time
	Status          DocumentStatus
	ChangesCount    int
}
