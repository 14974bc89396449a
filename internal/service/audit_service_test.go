package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/events"
	"github.com/spec-kit/knowledge-hub/internal/repository"
)

func newAuditFixture() (*AuditService, events.Dispatcher) {
	now := time.Now()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAuditService(AuditDependencies{
		AuditRepo:  repository.NewAuditLogRepository(now),
		JobRepo:    repository.NewJobRepository(now),
		Dispatcher: dispatcher,
	})
	return svc, dispatcher
}

func TestQueryEventAppendsLogEntry(t *testing.T) {
	svc, dispatcher := newAuditFixture()
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type: events.EventQueryCompleted,
		Payload: events.QueryCompletedPayload{
			TraceID:            "trace-test",
			UserID:             "user-1",
			UserName:           "Nguyễn Văn An",
			Query:              "Chính sách nghỉ phép?",
			Status:             domain.AnswerStatusSuccess,
			DocumentsRetrieved: 2,
			Citations:          2,
			LatencyMs:          150,
		},
	})
	require.NoError(t, err)

	entries, err := svc.ListQueries(context.Background(), repository.AuditFilter{Search: "trace-test"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Chính sách nghỉ phép?", entries[0].Query)
	assert.Equal(t, domain.AnswerStatusSuccess, entries[0].Status)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestListQueriesFilters(t *testing.T) {
	svc, _ := newAuditFixture()

	entries, err := svc.ListQueries(context.Background(), repository.AuditFilter{Status: domain.AnswerStatusNoAnswer})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "log-2", entries[0].ID)

	entries, err = svc.ListQueries(context.Background(), repository.AuditFilter{Search: "onboarding"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "log-1", entries[0].ID)
}

func TestListQueriesNewestFirst(t *testing.T) {
	svc, _ := newAuditFixture()

	entries, err := svc.ListQueries(context.Background(), repository.AuditFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].Timestamp.Before(entries[i].Timestamp))
	}
}

func TestListJobsFilters(t *testing.T) {
	svc, _ := newAuditFixture()

	jobs, err := svc.ListJobs(context.Background(), repository.JobFilter{Status: domain.JobStatusFailed})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-4", jobs[0].ID)
	assert.Equal(t, "storage bucket unreachable", jobs[0].Error)

	jobs, err = svc.ListJobs(context.Background(), repository.JobFilter{Type: domain.JobTypeIngestion})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)
}

func TestMalformedQueryEventIgnored(t *testing.T) {
	svc, dispatcher := newAuditFixture()
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventQueryCompleted,
		Payload: "not-a-payload",
	})
	require.NoError(t, err)

	entries, err := svc.ListQueries(context.Background(), repository.AuditFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 3, "only the seeded entries remain")
}
