package checkpoint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
)

func newManager(t *testing.T) (*Manager, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	workDir := t.TempDir()
	return NewManager(client, nil, workDir), client, workDir
}

func mkTask(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Task.Create().SetID(id).SetTitle(id).Save(context.Background())
	require.NoError(t, err)
}

func TestBeginCommitVerify(t *testing.T) {
	m, client, workDir := newManager(t)
	ctx := context.Background()
	mkTask(t, client, "t-1")

	artifact := filepath.Join(workDir, "open_plan.json")
	require.NoError(t, os.WriteFile(artifact, []byte("{}"), 0644))

	cp, err := m.BeginStep(ctx, "t-1", TypePlanningComplete, map[string]any{"iteration": 1}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, cp.SequenceNumber)
	assert.False(t, cp.Committed)

	t.Run("uncommitted checkpoints are not resumable", func(t *testing.T) {
		_, err := m.Verify(ctx, cp.ID)
		assert.ErrorIs(t, err, ErrNotCommitted)
	})

	pack := models.EvidencePack{
		Items: []models.Evidence{
			{Kind: models.EvidenceArtifactExists, Path: "open_plan.json"},
			{Kind: models.EvidenceCommandExit, Command: "true", ExitCode: 0},
		},
		RequireAll: true,
	}
	require.NoError(t, m.CommitStep(ctx, cp.ID, pack))

	t.Run("verifies while evidence holds", func(t *testing.T) {
		ok, err := m.Verify(ctx, cp.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		reloaded, err := client.Checkpoint.Get(ctx, cp.ID)
		require.NoError(t, err)
		assert.NotNil(t, reloaded.VerifiedAt)
	})

	t.Run("fails once evidence is gone", func(t *testing.T) {
		require.NoError(t, os.Remove(artifact))
		ok, err := m.Verify(ctx, cp.ID)
		require.NoError(t, err)
		assert.False(t, ok, "deleted artifact invalidates the checkpoint")
	})
}

func TestSequenceNumbersAreDensePerTask(t *testing.T) {
	m, client, _ := newManager(t)
	ctx := context.Background()
	mkTask(t, client, "t-a")
	mkTask(t, client, "t-b")

	for want := 1; want <= 3; want++ {
		cp, err := m.BeginStep(ctx, "t-a", TypeIterationStart, nil, "")
		require.NoError(t, err)
		assert.Equal(t, want, cp.SequenceNumber)
	}

	cp, err := m.BeginStep(ctx, "t-b", TypeIterationStart, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 1, cp.SequenceNumber, "numbering is per task")
}

func TestVerifyCommandExit(t *testing.T) {
	m, client, _ := newManager(t)
	ctx := context.Background()
	mkTask(t, client, "t-cmd")

	cp, err := m.BeginStep(ctx, "t-cmd", TypeWorkItemComplete, nil, "item-1")
	require.NoError(t, err)
	require.NoError(t, m.CommitStep(ctx, cp.ID, models.EvidencePack{
		Items: []models.Evidence{
			{Kind: models.EvidenceCommandExit, Command: "exit 3", ExitCode: 3},
		},
		RequireAll: true,
	}))

	ok, err := m.Verify(ctx, cp.ID)
	require.NoError(t, err)
	assert.True(t, ok, "non-zero expected exit codes verify too")
}

func TestVerifyMinVerified(t *testing.T) {
	m, client, workDir := newManager(t)
	ctx := context.Background()
	mkTask(t, client, "t-min")

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "present.json"), []byte("{}"), 0644))

	cp, err := m.BeginStep(ctx, "t-min", TypePlanningComplete, nil, "")
	require.NoError(t, err)
	require.NoError(t, m.CommitStep(ctx, cp.ID, models.EvidencePack{
		Items: []models.Evidence{
			{Kind: models.EvidenceArtifactExists, Path: "present.json"},
			{Kind: models.EvidenceArtifactExists, Path: "missing.json"},
		},
		MinVerified: 1,
	}))

	ok, err := m.Verify(ctx, cp.ID)
	require.NoError(t, err)
	assert.True(t, ok, "1 of 2 satisfies min_verified=1")
}

func TestLatest(t *testing.T) {
	m, client, _ := newManager(t)
	ctx := context.Background()
	mkTask(t, client, "t-latest")

	none, err := m.Latest(ctx, "t-latest")
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := m.BeginStep(ctx, "t-latest", TypeIterationStart, nil, "")
	require.NoError(t, err)
	require.NoError(t, m.CommitStep(ctx, first.ID, models.EvidencePack{}))

	second, err := m.BeginStep(ctx, "t-latest", TypePlanningComplete, nil, "")
	require.NoError(t, err)
	require.NoError(t, m.CommitStep(ctx, second.ID, models.EvidencePack{}))

	// Uncommitted checkpoints never surface.
	_, err = m.BeginStep(ctx, "t-latest", TypeWorkItemComplete, nil, "item-9")
	require.NoError(t, err)

	latest, err := m.Latest(ctx, "t-latest")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)

	typed, err := m.Latest(ctx, "t-latest", TypeIterationStart)
	require.NoError(t, err)
	require.NotNil(t, typed)
	assert.Equal(t, first.ID, typed.ID)
}
