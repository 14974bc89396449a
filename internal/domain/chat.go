package domain

import "time"

// MessageRole distinguishes who authored a chat message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// AnswerStatus is the terminal outcome of a retrieval query.
type AnswerStatus string

const (
	AnswerStatusSuccess      AnswerStatus = "success"
	AnswerStatusNoAnswer     AnswerStatus = "no-answer"
	AnswerStatusNoPermission AnswerStatus = "no-permission"
)

// Conversation groups chat messages for one session.
type Conversation struct {
	ID           string
	Title        string
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ChatMessage is a single chat turn. Content is mutated in place while the
// assistant answer streams and is immutable afterwards.
type ChatMessage struct {
	ID          string
	Role        MessageRole
	Content     string
	Citations   []Citation
	TraceID     string
	Status      AnswerStatus
	IsStreaming bool
	Timestamp   time.Time
}

// Citation points an answer back at a section of a source document.
type Citation struct {
	ID            string
	DocumentID    string
	DocumentTitle string
	VersionID     string
	SectionPath   string
	Snippet       string
	Score         float64
}
