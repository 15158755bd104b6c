package worker

import (
	"github.com/deskmetrics/helpdesk-reports/internal/service"
)

// StartAuditWorker registers the security audit handlers.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
