package artifacts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/models"
)

func TestWriterLayout(t *testing.T) {
	w := NewWriter(t.TempDir())

	plan := OpenPlan{
		TaskID:         "t-1",
		GeneratedAt:    time.Now().UTC(),
		PipelineStatus: "completed",
		Stages:         []PlanStage{{Name: "implement", WorkItemIDs: []string{"wi-1"}}},
	}
	path, err := w.WriteOpenPlan(plan)
	require.NoError(t, err)
	assert.Equal(t, FileOpenPlan, filepath.Base(path))
	assert.Equal(t, "t-1", filepath.Base(filepath.Dir(path)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got OpenPlan
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "completed", got.PipelineStatus)
	require.Len(t, got.Stages, 1)

	itemPath, err := w.WriteWorkItem("t-1", models.WorkItem{ItemID: "wi-1", Title: "do it"})
	require.NoError(t, err)
	assert.Equal(t, "work_item_wi-1.json", filepath.Base(itemPath))

	_, err = w.WriteWorkItemsSummary(WorkItemsSummary{TaskID: "t-1", Total: 1, Completed: 1})
	require.NoError(t, err)
}

func TestWriteDispatchCommandIsExecutable(t *testing.T) {
	w := NewWriter(t.TempDir())
	path, err := w.WriteDispatchCommand("t-2", "#!/bin/sh\necho hi\n")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "dispatch script must be executable")
}
