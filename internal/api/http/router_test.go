package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/knowledge-hub/internal/api/http/handlers"
	"github.com/spec-kit/knowledge-hub/internal/auth"
	"github.com/spec-kit/knowledge-hub/internal/chat"
	"github.com/spec-kit/knowledge-hub/internal/config"
	"github.com/spec-kit/knowledge-hub/internal/domain"
	"github.com/spec-kit/knowledge-hub/internal/events"
	"github.com/spec-kit/knowledge-hub/internal/observability"
	"github.com/spec-kit/knowledge-hub/internal/repository"
	"github.com/spec-kit/knowledge-hub/internal/service"
	"github.com/spec-kit/knowledge-hub/internal/worker"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	now := time.Now()

	documentRepo := repository.NewDocumentRepository(now)
	jobRepo := repository.NewJobRepository(now)
	directoryRepo := repository.NewDirectoryRepository(now)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	auditService := service.NewAuditService(service.AuditDependencies{
		AuditRepo:  repository.NewAuditLogRepository(now),
		JobRepo:    jobRepo,
		Dispatcher: dispatcher,
	})
	worker.StartAuditWorker(auditService)

	responder := chat.NewCannedResponder(repository.SeedCitations())
	newStore := func(owner *domain.Principal) *chat.Store {
		store := chat.NewStore(chat.StoreDeps{
			Responder:  responder,
			Interval:   time.Millisecond,
			Dispatcher: dispatcher,
			Owner:      owner,
		})
		store.Seed(repository.SeedConversations(time.Now()))
		return store
	}

	registry := auth.NewSessionRegistry(auth.NewTokenManager("test-secret", 60), directoryRepo, newStore)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health: handlers.NewHealthHandler("knowledge-hub", "test", metrics),
		Auth:   handlers.NewAuthHandler(registry),
		Chat:   handlers.NewChatHandler(),
		Search: handlers.NewSearchHandler(service.NewSearchService(repository.NewSearchIndex(now))),
		Documents: handlers.NewDocumentsHandler(service.NewDocumentService(service.DocumentDependencies{
			DocumentRepo: documentRepo,
			JobRepo:      jobRepo,
			Dispatcher:   dispatcher,
		})),
		Approvals: handlers.NewApprovalsHandler(service.NewApprovalService(service.ApprovalDependencies{
			ApprovalRepo: repository.NewApprovalRepository(now),
			DocumentRepo: documentRepo,
			JobRepo:      jobRepo,
			Dispatcher:   dispatcher,
		})),
		Users: handlers.NewUsersHandler(service.NewDirectoryService(directoryRepo)),
		Audit: handlers.NewAuditHandler(auditService),
		Settings: handlers.NewSettingsHandler(service.NewSettingsService(config.RetrievalConfig{
			TopK:                5,
			SimilarityThreshold: 0.7,
			EmbeddingModel:      "multilingual-e5-large",
			HybridSearch:        true,
			ChunkSize:           512,
			ChunkOverlap:        50,
		})),
		AuthMiddleware: auth.NewMiddleware(registry),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	payload := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func login(t *testing.T, app *fiber.App, role domain.Role) string {
	t.Helper()
	resp, payload := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{"role": role})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]any)
	authData := data["auth"].(map[string]any)
	return authData["token"].(string)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alive", payload["status"])

	resp, payload = doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", payload["status"])
}

func TestLoginDefaultsToEmployee(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := payload["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "employee", user["role"])
	assert.Equal(t, "Nguyễn Văn An", user["name"])
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/auth/me", "/api/chat/conversations", "/api/users", "/api/settings"} {
		resp, payload := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		errData := payload["error"].(map[string]any)
		details := errData["details"].(map[string]any)
		assert.Equal(t, "/login", details["redirect"], path)
	}
}

func TestForbiddenRedirects(t *testing.T) {
	app := newTestApp(t)
	employee := login(t, app, domain.RoleEmployee)

	for _, path := range []string{"/api/users", "/api/approvals", "/api/audit/queries", "/api/settings"} {
		resp, payload := doJSON(t, app, http.MethodGet, path, employee, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
		errData := payload["error"].(map[string]any)
		details := errData["details"].(map[string]any)
		assert.Equal(t, "/forbidden", details["redirect"], path)
	}
}

func TestAdminReachesDirectory(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app, domain.RoleAdmin)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, payload["data"].([]any), 5)
}

func TestKnowledgeManagerScope(t *testing.T) {
	app := newTestApp(t)
	km := login(t, app, domain.RoleKnowledgeManager)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/approvals", km, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/settings", km, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/users", km, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "directory stays admin only")
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, domain.RoleAdmin)

	resp, _ := doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionSeededWithConversations(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, domain.RoleEmployee)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/chat/conversations", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]any)
	assert.NotEmpty(t, data["active_id"])
	assert.NotEmpty(t, data["groups"])
}

func TestChatMessageRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, domain.RoleEmployee)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/chat/messages", token,
		map[string]any{"content": "Chính sách nghỉ phép của công ty như thế nào?"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	data := payload["data"].(map[string]any)
	convID := data["conversation_id"].(string)
	assistantID := data["assistant_message_id"].(string)

	require.Eventually(t, func() bool {
		resp, payload := doJSON(t, app, http.MethodGet, "/api/chat/conversations/"+convID+"/messages", token, nil)
		if resp.StatusCode != http.StatusOK {
			return false
		}
		for _, item := range payload["data"].([]any) {
			msg := item.(map[string]any)
			if msg["id"] == assistantID && msg["is_streaming"] == false {
				return msg["status"] == "success" && msg["content"] != ""
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond, "assistant answer should complete")
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/reports", login(t, app, domain.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errData := payload["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
}

func TestMessageFeedback(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, domain.RoleEmployee)

	// The seeded default conversation carries a completed assistant answer.
	resp, payload := doJSON(t, app, http.MethodGet, "/api/chat/conversations", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	convID := payload["data"].(map[string]any)["active_id"].(string)

	resp, payload = doJSON(t, app, http.MethodGet, "/api/chat/conversations/"+convID+"/messages", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var assistantID string
	for _, item := range payload["data"].([]any) {
		msg := item.(map[string]any)
		if msg["role"] == "assistant" && msg["is_streaming"] == false {
			assistantID = msg["id"].(string)
		}
	}
	require.NotEmpty(t, assistantID)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/chat/messages/"+assistantID+"/feedback", token,
		map[string]any{"helpful": true})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/chat/messages/missing/feedback", token,
		map[string]any{"helpful": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSendBlankMessageRejected(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, domain.RoleEmployee)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/chat/messages", token, map[string]any{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, domain.RoleEmployee)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/search?q=onboarding", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "empty query is rejected")
}

func TestApprovalDecisionFlow(t *testing.T) {
	app := newTestApp(t)
	km := login(t, app, domain.RoleKnowledgeManager)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/approvals/apr-1/decision", km,
		map[string]any{"decision": "reject"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rejection without comment fails")

	resp, _ = doJSON(t, app, http.MethodPost, "/api/approvals/apr-1/decision", km,
		map[string]any{"decision": "approve"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/documents/doc-3", km, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := payload["data"].(map[string]any)["document"].(map[string]any)
	assert.Equal(t, "approved", doc["status"])
	assert.Equal(t, "v1.5", doc["current_version"])
}

func TestSettingsRoundTrip(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app, domain.RoleAdmin)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/settings", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	settings := payload["data"].(map[string]any)
	settings["top_k"] = float64(12)

	resp, payload = doJSON(t, app, http.MethodPut, "/api/settings", admin, settings)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(12), payload["data"].(map[string]any)["top_k"])

	settings["top_k"] = float64(0)
	resp, _ = doJSON(t, app, http.MethodPut, "/api/settings", admin, settings)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
