package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/events"
)

// manualClock hands out a shared tick channel so tests control exactly when
// the next chunk lands.
type manualClock struct {
	ticks chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{ticks: make(chan time.Time)}
}

func (c *manualClock) After(time.Duration) <-chan time.Time {
	return c.ticks
}

func (c *manualClock) tick() {
	c.ticks <- time.Now()
}

type stubResponder struct {
	answer Answer
}

func (r stubResponder) Respond(context.Context, string) (Answer, error) {
	return r.answer, nil
}

func newStreamingStore(clock Clock, answer Answer, dispatcher events.Dispatcher) *Store {
	return NewStore(StoreDeps{
		Responder:  stubResponder{answer: answer},
		Clock:      clock,
		ChunkRunes: 2,
		Dispatcher: dispatcher,
		Owner:      &domain.Principal{ID: "user-1", Name: "Test User", Role: domain.RoleEmployee},
	})
}

func waitNotStreaming(t *testing.T, store *Store) {
	t.Helper()
	require.Eventually(t, func() bool { return !store.Streaming() },
		time.Second, time.Millisecond, "stream should settle")
}

func TestSendMessageRejectsBlank(t *testing.T) {
	store := newStreamingStore(newManualClock(), Answer{}, nil)
	_, _, err := store.SendMessage(context.Background(), "   \n ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendMessageCreatesConversationWhenNoneActive(t *testing.T) {
	clock := newManualClock()
	store := newStreamingStore(clock, Answer{Text: "ab", Status: domain.AnswerStatusSuccess}, nil)

	userID, assistantID, err := store.SendMessage(context.Background(), "Xin chào")
	require.NoError(t, err)
	require.NotEmpty(t, store.ActiveConversation())

	msgs := store.Messages(store.ActiveConversation())
	require.Len(t, msgs, 2)
	assert.Equal(t, userID, msgs[0].ID)
	assert.Equal(t, domain.MessageRoleUser, msgs[0].Role)
	assert.Equal(t, "Xin chào", msgs[0].Content)
	assert.Equal(t, assistantID, msgs[1].ID)
	assert.True(t, msgs[1].IsStreaming)

	clock.tick()
	waitNotStreaming(t, store)
}

func TestStreamingGrowsChunkByChunk(t *testing.T) {
	clock := newManualClock()
	store := newStreamingStore(clock, Answer{
		Text:      "abcde",
		Status:    domain.AnswerStatusSuccess,
		TraceID:   "trace-1",
		Citations: []domain.Citation{{ID: "cite-1"}},
	}, nil)

	_, assistantID, err := store.SendMessage(context.Background(), "question")
	require.NoError(t, err)
	convID := store.ActiveConversation()

	clock.tick()
	require.Eventually(t, func() bool {
		return store.Messages(convID)[1].Content == "ab"
	}, time.Second, time.Millisecond)

	clock.tick()
	clock.tick()
	waitNotStreaming(t, store)

	msgs := store.Messages(convID)
	final := msgs[1]
	assert.Equal(t, assistantID, final.ID)
	assert.Equal(t, "abcde", final.Content)
	assert.False(t, final.IsStreaming)
	assert.Equal(t, domain.AnswerStatusSuccess, final.Status)
	assert.Equal(t, "trace-1", final.TraceID)
	require.Len(t, final.Citations, 1)

	conv := store.Conversations()[0]
	assert.Equal(t, 2, conv.MessageCount)
}

func TestStopStreamingKeepsPartialContent(t *testing.T) {
	clock := newManualClock()
	store := newStreamingStore(clock, Answer{Text: "abcdef", Status: domain.AnswerStatusSuccess}, nil)

	_, _, err := store.SendMessage(context.Background(), "question")
	require.NoError(t, err)
	convID := store.ActiveConversation()

	clock.tick()
	require.Eventually(t, func() bool {
		return store.Messages(convID)[1].Content == "ab"
	}, time.Second, time.Millisecond)

	store.StopStreaming()
	waitNotStreaming(t, store)

	final := store.Messages(convID)[1]
	assert.Equal(t, "ab", final.Content, "truncated content survives")
	assert.Empty(t, final.Status, "a stopped answer carries no status")
	assert.Empty(t, final.Citations)
	assert.Empty(t, final.TraceID)
}

func TestSendRejectedWhileStreaming(t *testing.T) {
	clock := newManualClock()
	store := newStreamingStore(clock, Answer{Text: "abcd", Status: domain.AnswerStatusSuccess}, nil)

	_, _, err := store.SendMessage(context.Background(), "first")
	require.NoError(t, err)

	_, _, err = store.SendMessage(context.Background(), "second")
	assert.ErrorIs(t, err, ErrStreamInFlight)

	store.StopStreaming()
	waitNotStreaming(t, store)

	_, _, err = store.SendMessage(context.Background(), "second again")
	assert.NoError(t, err)
	store.StopStreaming()
	waitNotStreaming(t, store)
}

func TestDeleteConversationCancelsStream(t *testing.T) {
	clock := newManualClock()
	store := newStreamingStore(clock, Answer{Text: "abcd", Status: domain.AnswerStatusSuccess}, nil)

	_, _, err := store.SendMessage(context.Background(), "question")
	require.NoError(t, err)
	convID := store.ActiveConversation()

	store.DeleteConversation(convID)
	assert.Empty(t, store.Conversations())
	assert.Empty(t, store.Messages(convID))
	assert.False(t, store.Streaming())
}

func TestCompletionPublishesQueryEvent(t *testing.T) {
	clock := newManualClock()
	dispatcher := events.NewInMemoryDispatcher()

	var mu sync.Mutex
	var captured []events.QueryCompletedPayload
	dispatcher.Subscribe(events.EventQueryCompleted, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.QueryCompletedPayload)
		if ok {
			mu.Lock()
			captured = append(captured, payload)
			mu.Unlock()
		}
		return nil
	})

	store := newStreamingStore(clock, Answer{
		Text:               "ab",
		Status:             domain.AnswerStatusSuccess,
		TraceID:            "trace-9",
		Citations:          []domain.Citation{{ID: "cite-1"}, {ID: "cite-2"}},
		DocumentsRetrieved: 2,
	}, dispatcher)

	_, _, err := store.SendMessage(context.Background(), "Chính sách nghỉ phép là gì?")
	require.NoError(t, err)

	clock.tick()
	waitNotStreaming(t, store)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(captured) == 1
	}, time.Second, time.Millisecond)

	mu.Lock()
	payload := captured[0]
	mu.Unlock()
	assert.Equal(t, "trace-9", payload.TraceID)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "Chính sách nghỉ phép là gì?", payload.Query)
	assert.Equal(t, domain.AnswerStatusSuccess, payload.Status)
	assert.Equal(t, 2, payload.DocumentsRetrieved)
	assert.Equal(t, 2, payload.Citations)
}
