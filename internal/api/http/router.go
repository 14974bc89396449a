package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/knowledge-hub/internal/api/http/handlers"
	"github.com/spec-kit/knowledge-hub/internal/auth"
	apperrors "github.com/spec-kit/knowledge-hub/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Chat           *handlers.ChatHandler
	Search         *handlers.SearchHandler
	Documents      *handlers.DocumentsHandler
	Approvals      *handlers.ApprovalsHandler
	Users          *handlers.UsersHandler
	Audit          *handlers.AuditHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every /api route is guarded by the
// capability its screen is gated on; the guard checks authentication before
// authorization.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth", cfg.AuthMiddleware.Handle)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", auth.RequireCapability(""), cfg.Auth.Me)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	chatGroup := api.Group("/chat", auth.RequireCapability(auth.CapabilityChat))
	chatGroup.Get("/conversations", cfg.Chat.ListConversations)
	chatGroup.Post("/conversations", cfg.Chat.CreateConversation)
	chatGroup.Post("/conversations/:id/select", cfg.Chat.SelectConversation)
	chatGroup.Patch("/conversations/:id", cfg.Chat.RenameConversation)
	chatGroup.Delete("/conversations/:id", cfg.Chat.DeleteConversation)
	chatGroup.Get("/conversations/:id/messages", cfg.Chat.Messages)
	chatGroup.Post("/messages", cfg.Chat.SendMessage)
	chatGroup.Post("/messages/:id/feedback", cfg.Chat.Feedback)
	chatGroup.Post("/stop", cfg.Chat.StopStreaming)

	api.Get("/search", auth.RequireCapability(auth.CapabilitySearch), cfg.Search.Search)

	docs := api.Group("/documents")
	docs.Get("/", auth.RequireCapability(auth.CapabilityDocumentsView), cfg.Documents.List)
	docs.Get("/:id", auth.RequireCapability(auth.CapabilityDocumentsView), cfg.Documents.Get)
	docs.Post("/", auth.RequireCapability(auth.CapabilityDocumentsEdit), cfg.Documents.Upload)
	docs.Post("/:id/archive", auth.RequireCapability(auth.CapabilityDocumentsEdit), cfg.Documents.Archive)
	docs.Delete("/:id", auth.RequireCapability(auth.CapabilityDocumentsEdit), cfg.Documents.Delete)

	approvals := api.Group("/approvals", auth.RequireCapability(auth.CapabilityApprovals))
	approvals.Get("/", cfg.Approvals.ListPending)
	approvals.Post("/:id/decision", auth.RequireCapability(auth.CapabilityDocumentsApprove), cfg.Approvals.Decide)

	users := api.Group("/users", auth.RequireCapability(auth.CapabilityUsersManage))
	users.Get("/", cfg.Users.List)
	users.Get("/roles", cfg.Users.Roles)
	users.Get("/departments", cfg.Users.Departments)
	users.Patch("/:id/status", cfg.Users.SetStatus)

	audit := api.Group("/audit", auth.RequireCapability(auth.CapabilityAuditView))
	audit.Get("/queries", cfg.Audit.Queries)
	audit.Get("/jobs", cfg.Audit.Jobs)

	settings := api.Group("/settings", auth.RequireCapability(auth.CapabilitySettings))
	settings.Get("/", cfg.Settings.Get)
	settings.Put("/", cfg.Settings.Update)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route", map[string]any{"path": c.Path()})
	})
}
