package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/knowledge-hub/internal/api/http"
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

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	now := time.Now()
	documentRepo := repository.NewDocumentRepository(now)
	approvalRepo := repository.NewApprovalRepository(now)
	auditRepo := repository.NewAuditLogRepository(now)
	jobRepo := repository.NewJobRepository(now)
	directoryRepo := repository.NewDirectoryRepository(now)
	searchIndex := repository.NewSearchIndex(now)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	searchService := service.NewSearchService(searchIndex)
	documentService := service.NewDocumentService(service.DocumentDependencies{
		DocumentRepo: documentRepo,
		JobRepo:      jobRepo,
		Dispatcher:   dispatcher,
	})
	approvalService := service.NewApprovalService(service.ApprovalDependencies{
		ApprovalRepo: approvalRepo,
		DocumentRepo: documentRepo,
		JobRepo:      jobRepo,
		Dispatcher:   dispatcher,
	})
	auditService := service.NewAuditService(service.AuditDependencies{
		AuditRepo:  auditRepo,
		JobRepo:    jobRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	directoryService := service.NewDirectoryService(directoryRepo)
	settingsService := service.NewSettingsService(cfg.Retrieval)

	worker.StartAuditWorker(auditService)

	responder := chat.NewCannedResponder(repository.SeedCitations())
	newStore := func(owner *domain.Principal) *chat.Store {
		store := chat.NewStore(chat.StoreDeps{
			Responder:  responder,
			Interval:   cfg.Chat.StreamInterval(),
			ChunkRunes: cfg.Chat.StreamChunkRunes,
			Dispatcher: dispatcher,
			Owner:      owner,
		})
		store.Seed(repository.SeedConversations(time.Now()))
		return store
	}

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	registry := auth.NewSessionRegistry(tokenManager, directoryRepo, newStore)
	authMiddleware := auth.NewMiddleware(registry)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics),
		Auth:           handlers.NewAuthHandler(registry),
		Chat:           handlers.NewChatHandler(),
		Search:         handlers.NewSearchHandler(searchService),
		Documents:      handlers.NewDocumentsHandler(documentService),
		Approvals:      handlers.NewApprovalsHandler(approvalService),
		Users:          handlers.NewUsersHandler(directoryService),
		Audit:          handlers.NewAuditHandler(auditService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
