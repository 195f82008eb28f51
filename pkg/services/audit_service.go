package services

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// AuditService appends to and reads the per-task audit stream. The
// stream is append only; there is no update or delete path here.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// conn resolves the entity client, honoring a transaction bound to the
// context.
func (s *AuditService) conn(ctx context.Context) *ent.Client {
	if tx := ent.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return s.client
}

// Record appends one audit entry.
func (s *AuditService) Record(ctx context.Context, taskID, eventType string, level models.AuditLevel, payload map[string]any) error {
	create := s.conn(ctx).AuditEntry.Create().
		SetTaskID(taskID).
		SetEventType(eventType).
		SetLevel(auditentry.Level(level))
	if payload != nil {
		create.SetPayload(payload)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// Info appends an info-level entry.
func (s *AuditService) Info(ctx context.Context, taskID, eventType string, payload map[string]any) error {
	return s.Record(ctx, taskID, eventType, models.AuditInfo, payload)
}

// Warn appends a warn-level entry.
func (s *AuditService) Warn(ctx context.Context, taskID, eventType string, payload map[string]any) error {
	return s.Record(ctx, taskID, eventType, models.AuditWarn, payload)
}

// Error appends an error-level entry.
func (s *AuditService) Error(ctx context.Context, taskID, eventType string, payload map[string]any) error {
	return s.Record(ctx, taskID, eventType, models.AuditError, payload)
}

// ListForTask returns a task's audit stream in insertion order.
func (s *AuditService) ListForTask(ctx context.Context, taskID string, limit int) ([]*ent.AuditEntry, error) {
	q := s.client.AuditEntry.Query().
		Where(auditentry.TaskIDEQ(taskID)).
		Order(ent.Asc(auditentry.FieldCreatedAt), ent.Asc(auditentry.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	entries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries for task %s: %w", taskID, err)
	}
	return entries, nil
}
