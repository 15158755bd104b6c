package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/deskmetrics/helpdesk-reports/internal/events"
)

// AuditService records security events to the structured log and keeps
// running totals per event type.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu     sync.Mutex
	counts map[events.EventType]int
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		counts:     make(map[events.EventType]int),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventAccessDenied, a.handleAccessDenied)
}

// Counts returns a copy of the per-type totals.
func (a *AuditService) Counts() map[events.EventType]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[events.EventType]int, len(a.counts))
	for k, v := range a.counts {
		out[k] = v
	}
	return out
}

func (a *AuditService) record(t events.EventType) {
	a.mu.Lock()
	a.counts[t]++
	a.mu.Unlock()
}

func (a *AuditService) handleLoginSucceeded(_ context.Context, event events.Event) error {
	a.record(event.Type)
	a.logger.Info("LoginSucceeded", actorFields(event)...)
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	a.record(event.Type)
	fields := actorFields(event)
	if p, ok := event.Payload.(events.LoginFailedPayload); ok {
		fields = append(fields, zap.String("reason", p.Reason))
	}
	a.logger.Warn("LoginFailed", fields...)
	return nil
}

func (a *AuditService) handleAccessDenied(_ context.Context, event events.Event) error {
	a.record(event.Type)
	fields := actorFields(event)
	if p, ok := event.Payload.(events.AccessDeniedPayload); ok {
		fields = append(fields, zap.String("resource", p.Resource), zap.Int64("resource_id", p.ResourceID))
	}
	a.logger.Warn("AccessDenied", fields...)
	return nil
}

func actorFields(event events.Event) []zap.Field {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("login", event.Actor.Login),
	}
	if event.Actor.StaffID != nil {
		fields = append(fields, zap.Int64("staff_id", *event.Actor.StaffID))
	}
	return fields
}
