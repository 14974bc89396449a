package worker

import (
	"github.com/spec-kit/knowledge-hub/internal/service"
)

// StartAuditWorker registers the audit recorder on the event dispatcher.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
