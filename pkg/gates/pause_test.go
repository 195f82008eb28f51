package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/models"
)

func TestCanPauseAt(t *testing.T) {
	tests := []struct {
		name       string
		checkpoint string
		mode       models.RunMode
		want       bool
		wantViol   bool
	}{
		{"interactive at open_plan", CheckpointOpenPlan, models.RunModeInteractive, true, false},
		{"assisted at open_plan", CheckpointOpenPlan, models.RunModeAssisted, true, false},
		{"autonomous at open_plan", CheckpointOpenPlan, models.RunModeAutonomous, false, false},
		{"unknown checkpoint", "mid_execution", models.RunModeInteractive, false, true},
		{"empty checkpoint", "", models.RunModeAssisted, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanPauseAt(tc.checkpoint, tc.mode)
			assert.Equal(t, tc.want, got)
			if tc.wantViol {
				var viol *PauseGateViolation
				require.ErrorAs(t, err, &viol)
				assert.Equal(t, tc.checkpoint, viol.Checkpoint)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
