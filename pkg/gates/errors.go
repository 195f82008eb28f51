package gates

import "fmt"

// RedlineViolation rejects a declarative spec before registration.
// Never recovered locally; the caller surfaces it as a domain error.
type RedlineViolation struct {
	SpecKind string // role | command | rule
	SpecID   string
	Reason   string
}

func (e *RedlineViolation) Error() string {
	return fmt.Sprintf("redline violation in %s %q: %s", e.SpecKind, e.SpecID, e.Reason)
}

// PauseGateViolation indicates an attempt to pause at an illegal
// checkpoint. The task is marked failed.
type PauseGateViolation struct {
	Checkpoint string
}

func (e *PauseGateViolation) Error() string {
	return fmt.Sprintf("illegal pause checkpoint %q: only %q may pause", e.Checkpoint, CheckpointOpenPlan)
}
