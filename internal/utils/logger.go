package utils

import (
	"context"
	"time"

	"biblioteca-api/internal/models"
	"biblioteca-api/internal/store"
)

// Logger appends coarse audit entries (entity + action + payload) to the
// audit store; the exporter daemon flushes them later.
type Logger struct {
	Store *store.AuditStore
}

func (l *Logger) Log(ctx context.Context, entity, action string, data any) {
	if l.Store == nil {
		return
	}
	l.Store.Append(models.AuditLog{
		Timestamp: time.Now(),
		Entity:    entity,
		Action:    action,
		RequestID: RequestIDFrom(ctx),
		Data:      data,
	})
}
