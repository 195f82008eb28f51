// Package checkpoint provides durable progress markers with verifiable
// evidence, work item leases, and the two idempotency layers (LLM output
// cache, tool ledger) the runner builds recovery on.
package checkpoint

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/warden/ent"
	entcheckpoint "github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// Checkpoint types written by the runner.
const (
	TypePlanningComplete = "planning_complete"
	TypeWorkItemComplete = "work_item_complete"
	TypeIterationStart   = "iteration_start"
)

// evidenceCommandTimeout bounds command re-execution during Verify.
const evidenceCommandTimeout = 30 * time.Second

var (
	// ErrNotCommitted is returned when verifying an uncommitted checkpoint.
	ErrNotCommitted = errors.New("checkpoint not committed")

	// ErrCheckpointNotFound is returned for an unknown checkpoint id.
	ErrCheckpointNotFound = errors.New("checkpoint not found")
)

// Manager writes and verifies checkpoints. db is the raw handle used
// for DB_ROW evidence checks; workDir anchors relative artifact paths
// and command execution.
type Manager struct {
	client  *ent.Client
	db      *stdsql.DB
	workDir string
}

// NewManager creates a checkpoint manager.
func NewManager(client *ent.Client, db *stdsql.DB, workDir string) *Manager {
	return &Manager{client: client, db: db, workDir: workDir}
}

// BeginStep opens an uncommitted checkpoint with the next dense
// sequence number for the task. workItemID may be empty.
func (m *Manager) BeginStep(ctx context.Context, taskID, checkpointType string, snapshot map[string]any, workItemID string) (*ent.Checkpoint, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Dense per-task numbering: next = count of existing checkpoints + 1.
	// The UNIQUE(task_id, sequence_number) index catches concurrent
	// writers; there is one runner per task so contention is a bug.
	n, err := tx.Checkpoint.Query().
		Where(entcheckpoint.TaskIDEQ(taskID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count checkpoints: %w", err)
	}

	create := tx.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetSequenceNumber(n + 1).
		SetCheckpointType(checkpointType)
	if snapshot != nil {
		create.SetSnapshot(snapshot)
	}
	if workItemID != "" {
		create.SetWorkItemID(workItemID)
	}

	cp, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return cp, nil
}

// CommitStep seals a checkpoint with its evidence pack. Committed
// checkpoints are durable; only verified ones are resumable.
func (m *Manager) CommitStep(ctx context.Context, checkpointID string, pack models.EvidencePack) error {
	evidence, err := packToMap(pack)
	if err != nil {
		return err
	}
	n, err := m.client.Checkpoint.Update().
		Where(entcheckpoint.IDEQ(checkpointID)).
		SetEvidence(evidence).
		SetCommitted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit checkpoint %s: %w", checkpointID, err)
	}
	if n == 0 {
		return ErrCheckpointNotFound
	}
	return nil
}

// Verify re-checks every evidence item against current state and
// reports whether the checkpoint is resumable. A passing verification
// stamps verified_at.
func (m *Manager) Verify(ctx context.Context, checkpointID string) (bool, error) {
	cp, err := m.client.Checkpoint.Get(ctx, checkpointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrCheckpointNotFound
		}
		return false, fmt.Errorf("failed to load checkpoint %s: %w", checkpointID, err)
	}
	if !cp.Committed {
		return false, ErrNotCommitted
	}

	pack, err := packFromMap(cp.Evidence)
	if err != nil {
		return false, err
	}

	verified := 0
	for _, ev := range pack.Items {
		if m.verifyEvidence(ctx, ev) {
			verified++
		}
	}
	ok := pack.Satisfied(verified)
	slog.Debug("Checkpoint verification",
		"checkpoint_id", checkpointID,
		"type", cp.CheckpointType,
		"verified", verified,
		"total", len(pack.Items),
		"resumable", ok)

	if ok {
		_, err = cp.Update().SetVerifiedAt(time.Now()).Save(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to stamp verification: %w", err)
		}
	}
	return ok, nil
}

// Latest returns the most recent committed checkpoint for a task,
// optionally filtered by type. Returns nil when none exists.
func (m *Manager) Latest(ctx context.Context, taskID string, types ...string) (*ent.Checkpoint, error) {
	q := m.client.Checkpoint.Query().
		Where(entcheckpoint.TaskIDEQ(taskID), entcheckpoint.Committed(true))
	if len(types) > 0 {
		q = q.Where(entcheckpoint.CheckpointTypeIn(types...))
	}
	cp, err := q.Order(ent.Desc(entcheckpoint.FieldSequenceNumber)).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest checkpoint: %w", err)
	}
	return cp, nil
}

func (m *Manager) verifyEvidence(ctx context.Context, ev models.Evidence) bool {
	switch ev.Kind {
	case models.EvidenceArtifactExists:
		path := ev.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.workDir, path)
		}
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()

	case models.EvidenceCommandExit:
		cmdCtx, cancel := context.WithTimeout(ctx, evidenceCommandTimeout)
		defer cancel()
		cmd := exec.CommandContext(cmdCtx, "sh", "-c", ev.Command)
		cmd.Dir = m.workDir
		err := cmd.Run()
		exitCode := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else if err != nil {
			return false
		}
		return exitCode == ev.ExitCode

	case models.EvidenceDBRow:
		return m.verifyDBRow(ctx, ev)

	default:
		slog.Warn("Unknown evidence kind", "kind", ev.Kind)
		return false
	}
}

var sqlIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// verifyDBRow checks that at least one row matches both the where and
// values maps. Identifiers are restricted to plain names; values go
// through placeholders.
func (m *Manager) verifyDBRow(ctx context.Context, ev models.Evidence) bool {
	if m.db == nil || !sqlIdentRe.MatchString(ev.Table) {
		return false
	}

	conds := make([]string, 0, len(ev.Where)+len(ev.Values))
	args := make([]any, 0, len(ev.Where)+len(ev.Values))
	for _, clause := range []map[string]any{ev.Where, ev.Values} {
		for col, val := range clause {
			if !sqlIdentRe.MatchString(col) {
				return false
			}
			conds = append(conds, col+" = ?")
			args = append(args, val)
		}
	}
	if len(conds) == 0 {
		return false
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", ev.Table, strings.Join(conds, " AND "))
	var count int
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		slog.Warn("DB row evidence query failed", "table", ev.Table, "error", err)
		return false
	}
	return count > 0
}

func packToMap(pack models.EvidencePack) (map[string]any, error) {
	data, err := json.Marshal(pack)
	if err != nil {
		return nil, fmt.Errorf("failed to encode evidence pack: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode evidence pack: %w", err)
	}
	return out, nil
}

func packFromMap(raw map[string]any) (models.EvidencePack, error) {
	var pack models.EvidencePack
	if raw == nil {
		return pack, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return pack, fmt.Errorf("failed to encode stored evidence: %w", err)
	}
	if err := json.Unmarshal(data, &pack); err != nil {
		return pack, fmt.Errorf("failed to decode stored evidence: %w", err)
	}
	return pack, nil
}
