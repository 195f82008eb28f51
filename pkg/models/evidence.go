package models

// EvidenceKind discriminates the evidence variants backing a checkpoint.
type EvidenceKind string

// Evidence kinds.
const (
	EvidenceArtifactExists EvidenceKind = "artifact_exists"
	EvidenceCommandExit    EvidenceKind = "command_exit"
	EvidenceDBRow          EvidenceKind = "db_row"
)

// Evidence is one verifiable claim backing a checkpoint. Exactly the
// fields matching Kind are populated.
type Evidence struct {
	Kind EvidenceKind `json:"kind"`

	// artifact_exists
	Path         string `json:"path,omitempty"`
	ArtifactType string `json:"artifact_type,omitempty"`

	// command_exit
	Command  string `json:"command,omitempty"`
	ExitCode int    `json:"exit_code,omitempty"`

	// db_row
	Table  string         `json:"table,omitempty"`
	Where  map[string]any `json:"where,omitempty"`
	Values map[string]any `json:"values,omitempty"`
}

// EvidencePack declares how much evidence must verify for a checkpoint
// to be resumable. RequireAll overrides MinVerified.
type EvidencePack struct {
	Items       []Evidence `json:"items"`
	MinVerified int        `json:"min_verified"`
	RequireAll  bool       `json:"require_all"`
}

// Satisfied reports whether verified hits meet the pack's requirement.
func (p EvidencePack) Satisfied(verified int) bool {
	if p.RequireAll {
		return verified == len(p.Items)
	}
	min := p.MinVerified
	if min <= 0 {
		min = len(p.Items)
	}
	return verified >= min
}
