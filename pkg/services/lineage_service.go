package services

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// LineageService records the causal trail of a task: what spawned it,
// what it produced, where it paused. Append only.
type LineageService struct {
	client *ent.Client
}

// NewLineageService creates a new LineageService.
func NewLineageService(client *ent.Client) *LineageService {
	return &LineageService{client: client}
}

// Record appends one lineage entry. refID identifies the linked thing
// (artifact path, commit sha, runner id); phase is the task phase it
// happened in.
func (s *LineageService) Record(ctx context.Context, taskID string, kind models.LineageKind, refID, phase string, metadata map[string]any) error {
	if refID == "" {
		return NewValidationError("ref_id", "required")
	}
	create := s.client.LineageEntry.Create().
		SetTaskID(taskID).
		SetKind(lineageentry.Kind(kind)).
		SetRefID(refID)
	if phase != "" {
		create.SetPhase(phase)
	}
	if metadata != nil {
		create.SetMetadata(metadata)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}
		return fmt.Errorf("failed to record lineage entry: %w", err)
	}
	return nil
}

// ListForTask returns a task's lineage in insertion order.
func (s *LineageService) ListForTask(ctx context.Context, taskID string) ([]*ent.LineageEntry, error) {
	entries, err := s.client.LineageEntry.Query().
		Where(lineageentry.TaskIDEQ(taskID)).
		Order(ent.Asc(lineageentry.FieldCreatedAt), ent.Asc(lineageentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineage for task %s: %w", taskID, err)
	}
	return entries, nil
}
