package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/events"
)

// DefaultTitle is assigned to freshly created conversations.
const DefaultTitle = "New conversation"

var (
	// ErrEmptyMessage rejects blank or whitespace-only message text.
	ErrEmptyMessage = errors.New("message text is empty")
	// ErrStreamInFlight rejects a send while an answer is still streaming
	// in the same conversation.
	ErrStreamInFlight = errors.New("an answer is already streaming")
	// ErrUnknownMessage rejects feedback for a message that does not exist
	// in this session or has not finished streaming.
	ErrUnknownMessage = errors.New("message not available for feedback")
)

// StoreDeps bundles collaborators for a conversation store.
type StoreDeps struct {
	Responder  Responder
	Clock      Clock
	Interval   time.Duration
	ChunkRunes int
	Dispatcher events.Dispatcher
	Owner      *domain.Principal
	Now        func() time.Time
}

// Store keeps the conversations and messages of one session. All mutation
// goes through the store's mutex: request handlers and the streaming
// goroutine interleave on it.
type Store struct {
	mu            sync.Mutex
	conversations []*domain.Conversation
	messages      map[string][]*domain.ChatMessage
	activeID      string
	streams       map[string]*streamState
	feedback      []domain.Feedback

	responder  Responder
	clock      Clock
	interval   time.Duration
	chunkRunes int
	dispatcher events.Dispatcher
	owner      *domain.Principal
	now        func() time.Time
}

// streamState tracks one in-flight assistant answer.
type streamState struct {
	convID    string
	messageID string
	cancel    chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

// NewStore builds an empty conversation store.
func NewStore(deps StoreDeps) *Store {
	if deps.Clock == nil {
		deps.Clock = NewRealClock()
	}
	if deps.Interval <= 0 {
		deps.Interval = 20 * time.Millisecond
	}
	if deps.ChunkRunes <= 0 {
		deps.ChunkRunes = 1
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Store{
		messages:   make(map[string][]*domain.ChatMessage),
		streams:    make(map[string]*streamState),
		responder:  deps.Responder,
		clock:      deps.Clock,
		interval:   deps.Interval,
		chunkRunes: deps.ChunkRunes,
		dispatcher: deps.Dispatcher,
		owner:      deps.Owner,
		now:        deps.Now,
	}
}

// Seed loads pre-existing conversations and their messages. The newest
// conversation becomes active.
func (s *Store) Seed(conversations []domain.Conversation, messages map[string][]domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range conversations {
		conv := conversations[i]
		s.conversations = append(s.conversations, &conv)
		for j := range messages[conv.ID] {
			msg := messages[conv.ID][j]
			s.messages[conv.ID] = append(s.messages[conv.ID], &msg)
		}
	}
	if len(s.conversations) > 0 {
		s.activeID = s.conversations[0].ID
	}
}

// CreateConversation inserts a new empty conversation, makes it active and
// returns its id.
func (s *Store) CreateConversation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked()
}

func (s *Store) createLocked() string {
	now := s.now()
	conv := &domain.Conversation{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations = append([]*domain.Conversation{conv}, s.conversations...)
	s.activeID = conv.ID
	return conv.ID
}

// SelectConversation makes the conversation active. Unknown ids are a no-op.
func (s *Store) SelectConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findLocked(id) != nil {
		s.activeID = id
	}
}

// RenameConversation sets a new title. Blank titles and unknown ids are a
// no-op.
func (s *Store) RenameConversation(id, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if conv := s.findLocked(id); conv != nil {
		conv.Title = title
		conv.UpdatedAt = s.now()
	}
}

// DeleteConversation removes the conversation and its messages. When the
// active conversation is deleted the first remaining one becomes active, or
// none if the list is empty. An in-flight stream in the deleted conversation
// is cancelled.
func (s *Store) DeleteConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, conv := range s.conversations {
		if conv.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if stream, ok := s.streams[id]; ok {
		stream.stop()
	}
	s.conversations = append(s.conversations[:idx], s.conversations[idx+1:]...)
	delete(s.messages, id)
	if s.activeID == id {
		s.activeID = ""
		if len(s.conversations) > 0 {
			s.activeID = s.conversations[0].ID
		}
	}
}

// SendMessage appends the user message to the active conversation and starts
// streaming the assistant answer. Creates a conversation when none is
// active. Rejected while a previous answer is still streaming.
func (s *Store) SendMessage(ctx context.Context, text string) (userID, assistantID string, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", ErrEmptyMessage
	}

	s.mu.Lock()
	if s.activeID == "" {
		s.createLocked()
	}
	convID := s.activeID
	for _, msg := range s.messages[convID] {
		if msg.IsStreaming {
			s.mu.Unlock()
			return "", "", ErrStreamInFlight
		}
	}

	now := s.now()
	userMsg := &domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.MessageRoleUser,
		Content:   text,
		Timestamp: now,
	}
	assistantMsg := &domain.ChatMessage{
		ID:          uuid.NewString(),
		Role:        domain.MessageRoleAssistant,
		IsStreaming: true,
		Timestamp:   now,
	}
	s.messages[convID] = append(s.messages[convID], userMsg, assistantMsg)
	s.touchLocked(convID, 2)

	stream := &streamState{
		convID:    convID,
		messageID: assistantMsg.ID,
		cancel:    make(chan struct{}),
		done:      make(chan struct{}),
	}
	s.streams[convID] = stream
	s.mu.Unlock()

	go s.run(ctx, stream, text)

	return userMsg.ID, assistantMsg.ID, nil
}

// StopStreaming cancels the in-flight answer of the active conversation at
// its next chunk boundary. The partial content is kept; status and citations
// stay unset.
func (s *Store) StopStreaming() {
	s.mu.Lock()
	stream, ok := s.streams[s.activeID]
	s.mu.Unlock()
	if ok {
		stream.stop()
	}
}

// Streaming reports whether the active conversation has an answer in flight.
func (s *Store) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.messages[s.activeID] {
		if msg.IsStreaming {
			return true
		}
	}
	return false
}

// ActiveConversation returns the active conversation id, empty when none.
func (s *Store) ActiveConversation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Conversations returns a snapshot of all conversations, newest first.
func (s *Store) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Conversation, len(s.conversations))
	for i, conv := range s.conversations {
		out[i] = *conv
	}
	return out
}

// RecordFeedback stores a thumbs rating for a completed assistant message.
func (s *Store) RecordFeedback(messageID string, helpful bool, reason, expected string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msgs := range s.messages {
		for _, msg := range msgs {
			if msg.ID != messageID {
				continue
			}
			if msg.Role != domain.MessageRoleAssistant || msg.IsStreaming {
				return ErrUnknownMessage
			}
			s.feedback = append(s.feedback, domain.Feedback{
				ID:             uuid.NewString(),
				MessageID:      messageID,
				Helpful:        helpful,
				Reason:         strings.TrimSpace(reason),
				ExpectedAnswer: strings.TrimSpace(expected),
			})
			return nil
		}
	}
	return ErrUnknownMessage
}

// Feedback returns a snapshot of the recorded ratings.
func (s *Store) Feedback() []domain.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Feedback, len(s.feedback))
	copy(out, s.feedback)
	return out
}

// Messages returns a snapshot of the conversation's messages. Unknown ids
// yield an empty list.
func (s *Store) Messages(convID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.messages[convID]
	out := make([]domain.ChatMessage, len(msgs))
	for i, msg := range msgs {
		out[i] = *msg
	}
	return out
}

func (s *Store) findLocked(id string) *domain.Conversation {
	for _, conv := range s.conversations {
		if conv.ID == id {
			return conv
		}
	}
	return nil
}

func (s *Store) touchLocked(convID string, added int) {
	if conv := s.findLocked(convID); conv != nil {
		conv.MessageCount += added
		conv.UpdatedAt = s.now()
	}
}

func (st *streamState) stop() {
	st.stopOnce.Do(func() { close(st.cancel) })
}

// run grows the assistant message chunk by chunk. One suspension per chunk
// lets StopStreaming interleave; cancellation takes effect at the next tick.
func (s *Store) run(ctx context.Context, stream *streamState, query string) {
	defer close(stream.done)
	started := s.now()

	answer, err := s.responder.Respond(ctx, query)
	if err != nil {
		s.finish(stream, Answer{Status: domain.AnswerStatusNoAnswer}, started)
		return
	}

	runes := []rune(answer.Text)
	for i := 0; i < len(runes); {
		select {
		case <-stream.cancel:
			s.abort(stream)
			return
		case <-s.clock.After(s.interval):
			end := i + s.chunkRunes
			if end > len(runes) {
				end = len(runes)
			}
			if !s.appendChunk(stream, string(runes[i:end])) {
				return
			}
			i = end
		}
	}

	s.finish(stream, answer, started)
}

// appendChunk reports false when the message vanished, e.g. its conversation
// was deleted mid-stream.
func (s *Store) appendChunk(stream *streamState, chunk string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.messageLocked(stream)
	if msg == nil {
		delete(s.streams, stream.convID)
		return false
	}
	msg.Content += chunk
	return true
}

func (s *Store) abort(stream *streamState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg := s.messageLocked(stream); msg != nil {
		msg.IsStreaming = false
	}
	delete(s.streams, stream.convID)
}

func (s *Store) messageLocked(stream *streamState) *domain.ChatMessage {
	for _, msg := range s.messages[stream.convID] {
		if msg.ID == stream.messageID {
			return msg
		}
	}
	return nil
}

// finish completes the assistant message and publishes the query audit event.
func (s *Store) finish(stream *streamState, answer Answer, started time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.messageLocked(stream)
	delete(s.streams, stream.convID)
	if msg == nil {
		return
	}
	msg.IsStreaming = false
	msg.Status = answer.Status
	msg.Citations = answer.Citations
	msg.TraceID = answer.TraceID

	if s.dispatcher != nil && s.owner != nil {
		query := ""
		if msgs := s.messages[stream.convID]; len(msgs) >= 2 {
			query = msgs[len(msgs)-2].Content
		}
		_ = s.dispatcher.Publish(context.Background(), events.Event{
			Type: events.EventQueryCompleted,
			Payload: events.QueryCompletedPayload{
				TraceID:            answer.TraceID,
				UserID:             s.owner.ID,
				UserName:           s.owner.Name,
				Query:              query,
				Status:             answer.Status,
				DocumentsRetrieved: answer.DocumentsRetrieved,
				Citations:          len(answer.Citations),
				LatencyMs:          s.now().Sub(started).Milliseconds(),
			},
		})
	}
}
