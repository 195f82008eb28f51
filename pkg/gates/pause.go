package gates

import "github.com/codeready-toolchain/warden/pkg/models"

// CheckpointOpenPlan is the only pause checkpoint legal in v1.
const CheckpointOpenPlan = "open_plan"

// CanPauseAt reports whether a task may legally pause at a checkpoint.
// True only for (open_plan, interactive|assisted). An unknown
// checkpoint is a PauseGateViolation. Autonomous mode never pauses; the
// runner converts an autonomous arrival at open_plan into a blocked
// terminal (the autonomous-blocked red line).
func CanPauseAt(checkpoint string, mode models.RunMode) (bool, error) {
	if checkpoint != CheckpointOpenPlan {
		return false, &PauseGateViolation{Checkpoint: checkpoint}
	}
	switch mode {
	case models.RunModeInteractive, models.RunModeAssisted:
		return true, nil
	default:
		return false, nil
	}
}
