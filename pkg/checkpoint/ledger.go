package checkpoint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

// Ledger deduplicates tool calls within a task scope: an identical
// fingerprint replays the stored result instead of re-executing.
type Ledger struct {
	client *ent.Client
}

// NewLedger creates a tool ledger.
func NewLedger(client *ent.Client) *Ledger {
	return &Ledger{client: client}
}

// Fingerprint hashes (tool, endpoint, args). json.Marshal sorts map
// keys, so equal argument maps always produce equal fingerprints.
func Fingerprint(tool, endpoint string, args map[string]any) (string, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool args: %w", err)
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s", tool, endpoint, encoded)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ExecuteOrReplay returns the stored result for (taskID, fingerprint)
// when present, otherwise runs fn and stores its result. The boolean
// reports a replay.
func (l *Ledger) ExecuteOrReplay(ctx context.Context, taskID, fingerprint string, fn func(context.Context) (map[string]any, int, error)) (map[string]any, int, bool, error) {
	entry, err := l.lookup(ctx, taskID, fingerprint)
	if err != nil {
		return nil, 0, false, err
	}
	if entry != nil {
		return entry.Result, entry.ExitCode, true, nil
	}

	result, exitCode, err := fn(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	create := l.client.ToolLedgerEntry.Create().
		SetTaskID(taskID).
		SetFingerprint(fingerprint).
		SetExitCode(exitCode)
	if result != nil {
		create.SetResult(result)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with an identical call; its stored result wins.
			entry, lookupErr := l.lookup(ctx, taskID, fingerprint)
			if lookupErr == nil && entry != nil {
				return entry.Result, entry.ExitCode, true, nil
			}
		}
		return nil, 0, false, fmt.Errorf("failed to store ledger entry: %w", err)
	}
	return result, exitCode, false, nil
}

func (l *Ledger) lookup(ctx context.Context, taskID, fingerprint string) (*ent.ToolLedgerEntry, error) {
	entry, err := l.client.ToolLedgerEntry.Query().
		Where(
			toolledgerentry.TaskIDEQ(taskID),
			toolledgerentry.FingerprintEQ(fingerprint),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query tool ledger: %w", err)
	}
	return entry, nil
}
