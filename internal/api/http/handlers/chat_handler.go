package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/dto"
	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/chat"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// ChatHandler exposes the per-session conversation store.
type ChatHandler struct{}

// NewChatHandler constructs handler.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

func conversationStore(c *fiber.Ctx) *chat.Store {
	session, _ := auth.SessionFromContext(c)
	return session.Conversations()
}

// ListConversations handles GET /api/chat/conversations. Conversations come
// back bucketed by recency for the sidebar.
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	store := conversationStore(c)
	groups := chat.GroupByRecency(store.Conversations(), time.Now())
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"groups":    dto.NewConversationGroups(groups, store.ActiveConversation()),
			"active_id": store.ActiveConversation(),
		},
	})
}

// CreateConversation handles POST /api/chat/conversations.
func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	store := conversationStore(c)
	id := store.CreateConversation()
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

// SelectConversation handles POST /api/chat/conversations/:id/select.
func (h *ChatHandler) SelectConversation(c *fiber.Ctx) error {
	store := conversationStore(c)
	store.SelectConversation(c.Params("id"))
	return c.JSON(fiber.Map{"data": fiber.Map{"active_id": store.ActiveConversation()}})
}

// RenameConversation handles PATCH /api/chat/conversations/:id.
func (h *ChatHandler) RenameConversation(c *fiber.Ctx) error {
	var req dto.RenameConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	conversationStore(c).RenameConversation(c.Params("id"), req.Title)
	return c.SendStatus(http.StatusNoContent)
}

// DeleteConversation handles DELETE /api/chat/conversations/:id.
func (h *ChatHandler) DeleteConversation(c *fiber.Ctx) error {
	store := conversationStore(c)
	store.DeleteConversation(c.Params("id"))
	return c.JSON(fiber.Map{"data": fiber.Map{"active_id": store.ActiveConversation()}})
}

// Messages handles GET /api/chat/conversations/:id/messages.
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	msgs := conversationStore(c).Messages(c.Params("id"))
	return c.JSON(fiber.Map{"data": dto.NewMessageResponses(msgs)})
}

// SendMessage handles POST /api/chat/messages. The answer streams in the
// background; clients poll the conversation messages for new chunks.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	store := conversationStore(c)
	userID, assistantID, err := store.SendMessage(c.UserContext(), req.Content)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return apperrors.NewValidationError("message content must not be empty", nil)
	case errors.Is(err, chat.ErrStreamInFlight):
		return apperrors.NewConflict("an answer is already streaming in this conversation", nil)
	case err != nil:
		return err
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": fiber.Map{
			"conversation_id":      store.ActiveConversation(),
			"user_message_id":      userID,
			"assistant_message_id": assistantID,
		},
	})
}

// Feedback handles POST /api/chat/messages/:id/feedback.
func (h *ChatHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	err := conversationStore(c).RecordFeedback(c.Params("id"), req.Helpful, req.Reason, req.ExpectedAnswer)
	if errors.Is(err, chat.ErrUnknownMessage) {
		return apperrors.NewNotFound("message", map[string]any{"id": c.Params("id")})
	}
	if err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// StopStreaming handles POST /api/chat/stop. Takes effect at the next chunk
// boundary; the partial answer is kept.
func (h *ChatHandler) StopStreaming(c *fiber.Ctx) error {
	conversationStore(c).StopStreaming()
	return c.SendStatus(http.StatusNoContent)
}
