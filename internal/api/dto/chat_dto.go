package dto

import (
	"time"

	"github.com/spec-kit/knowledge-hub/internal/chat"
	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// SendMessageRequest payload for posting a chat message.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// FeedbackRequest payload for rating an assistant answer.
type FeedbackRequest struct {
	Helpful        bool   `json:"helpful"`
	Reason         string `json:"reason"`
	ExpectedAnswer string `json:"expected_answer"`
}

// RenameConversationRequest payload for renaming a conversation.
type RenameConversationRequest struct {
	Title string `json:"title"`
}

// ConversationResponse is one sidebar conversation.
type ConversationResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ConversationGroupResponse is one date bucket of the sidebar.
type ConversationGroupResponse struct {
	Label         string                 `json:"label"`
	Conversations []ConversationResponse `json:"conversations"`
}

// CitationResponse points at a source section.
type CitationResponse struct {
	ID            string  `json:"id"`
	DocumentID    string  `json:"document_id"`
	DocumentTitle string  `json:"document_title"`
	VersionID     string  `json:"version_id"`
	SectionPath   string  `json:"section_path"`
	Snippet       string  `json:"snippet"`
	Score         float64 `json:"score,omitempty"`
}

// MessageResponse is one chat turn.
type MessageResponse struct {
	ID          string             `json:"id"`
	Role        domain.MessageRole `json:"role"`
	Content     string             `json:"content"`
	Citations   []CitationResponse `json:"citations,omitempty"`
	TraceID     string             `json:"trace_id,omitempty"`
	Status      string             `json:"status,omitempty"`
	IsStreaming bool               `json:"is_streaming"`
	Timestamp   time.Time          `json:"timestamp"`
}

// NewConversationResponse maps a conversation snapshot.
func NewConversationResponse(conv domain.Conversation, activeID string) ConversationResponse {
	return ConversationResponse{
		ID:           conv.ID,
		Title:        conv.Title,
		MessageCount: conv.MessageCount,
		Active:       conv.ID == activeID,
		CreatedAt:    conv.CreatedAt,
		UpdatedAt:    conv.UpdatedAt,
	}
}

// NewConversationGroups maps bucketed conversations.
func NewConversationGroups(groups []chat.ConversationGroup, activeID string) []ConversationGroupResponse {
	out := make([]ConversationGroupResponse, 0, len(groups))
	for _, group := range groups {
		mapped := ConversationGroupResponse{Label: group.Label}
		for _, conv := range group.Conversations {
			mapped.Conversations = append(mapped.Conversations, NewConversationResponse(conv, activeID))
		}
		out = append(out, mapped)
	}
	return out
}

// NewMessageResponse maps a message snapshot.
func NewMessageResponse(msg domain.ChatMessage) MessageResponse {
	out := MessageResponse{
		ID:          msg.ID,
		Role:        msg.Role,
		Content:     msg.Content,
		TraceID:     msg.TraceID,
		Status:      string(msg.Status),
		IsStreaming: msg.IsStreaming,
		Timestamp:   msg.Timestamp,
	}
	for _, citation := range msg.Citations {
		out.Citations = append(out.Citations, CitationResponse{
			ID:            citation.ID,
			DocumentID:    citation.DocumentID,
			DocumentTitle: citation.DocumentTitle,
			VersionID:     citation.VersionID,
			SectionPath:   citation.SectionPath,
			Snippet:       citation.Snippet,
			Score:         citation.Score,
		})
	}
	return out
}

// NewMessageResponses maps a message list.
func NewMessageResponses(msgs []domain.ChatMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, NewMessageResponse(msg))
	}
	return out
}
