package decision

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
	"github.com/codeready-toolchain/warden/pkg/models"
)

var (
	// ErrTampered is returned when a stored record's hash no longer
	// matches its content.
	ErrTampered = errors.New("decision record hash mismatch")

	// ErrDecisionNotFound is returned for an unknown decision id.
	ErrDecisionNotFound = errors.New("decision record not found")

	// ErrSignoffNotRequired is returned when signing a decision whose
	// verdict does not ask for one.
	ErrSignoffNotRequired = errors.New("decision does not require sign-off")
)

// sealedFields is the canonical JSON shape the record hash covers.
// Field order is fixed by the struct; map keys are sorted by
// encoding/json. Changing this shape invalidates every stored hash.
type sealedFields struct {
	DecisionID     string         `json:"decision_id"`
	DecisionType   string         `json:"decision_type"`
	Seed           string         `json:"seed"`
	Inputs         map[string]any `json:"inputs"`
	Outputs        map[string]any `json:"outputs"`
	RulesTriggered []string       `json:"rules_triggered"`
	Timestamp      string         `json:"timestamp"`
}

// Recorder appends hash-sealed decision records and verifies them.
type Recorder struct {
	client *ent.Client
	rules  map[models.DecisionType][]Rule
}

// NewRecorder creates a recorder with the default governance rules.
func NewRecorder(client *ent.Client) *Recorder {
	return &Recorder{client: client, rules: DefaultRules()}
}

// conn resolves the entity client, honoring a transaction bound to the
// context so a decision can be sealed atomically with the state change
// that triggered it.
func (r *Recorder) conn(ctx context.Context) *ent.Client {
	if tx := ent.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return r.client
}

// Record evaluates the governance rules for the decision type, seals
// the record, and appends it. The returned row is immutable except for
// the status flip when a sign-off attaches.
func (r *Recorder) Record(ctx context.Context, decisionType models.DecisionType, seed string, inputs, outputs map[string]any, confidence float64) (*ent.DecisionRecord, error) {
	if inputs == nil {
		inputs = map[string]any{}
	}
	if outputs == nil {
		outputs = map[string]any{}
	}
	rulesTriggered, verdict := evaluate(r.rules[decisionType], inputs)

	decisionID := uuid.New().String()
	// Second precision survives the DATETIME round trip; finer precision
	// would break VerifyIntegrity after a reload.
	ts := time.Now().UTC().Truncate(time.Second)

	hash, err := recordHash(sealedFields{
		DecisionID:     decisionID,
		DecisionType:   string(decisionType),
		Seed:           seed,
		Inputs:         inputs,
		Outputs:        outputs,
		RulesTriggered: rulesTriggered,
		Timestamp:      ts.Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	if confidence <= 0 || confidence > 1 {
		confidence = 1.0
	}

	rec, err := r.conn(ctx).DecisionRecord.Create().
		SetID(decisionID).
		SetDecisionType(decisionrecord.DecisionType(decisionType)).
		SetSeed(seed).
		SetInputs(inputs).
		SetOutputs(outputs).
		SetRulesTriggered(rulesTriggered).
		SetFinalVerdict(decisionrecord.FinalVerdict(verdict)).
		SetConfidence(confidence).
		SetRecordHash(hash).
		SetCreatedAt(ts).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append decision record: %w", err)
	}
	return rec, nil
}

// RecordNavigation records a routing decision.
func (r *Recorder) RecordNavigation(ctx context.Context, seed string, inputs, outputs map[string]any) (*ent.DecisionRecord, error) {
	return r.Record(ctx, models.DecisionNavigation, seed, inputs, outputs, 1.0)
}

// RecordCompare records a candidate-comparison decision.
func (r *Recorder) RecordCompare(ctx context.Context, seed string, inputs, outputs map[string]any, confidence float64) (*ent.DecisionRecord, error) {
	return r.Record(ctx, models.DecisionCompare, seed, inputs, outputs, confidence)
}

// RecordHealth records a health evaluation.
func (r *Recorder) RecordHealth(ctx context.Context, seed string, inputs, outputs map[string]any) (*ent.DecisionRecord, error) {
	return r.Record(ctx, models.DecisionHealth, seed, inputs, outputs, 1.0)
}

// RecordPolicy records a supervisor policy outcome.
func (r *Recorder) RecordPolicy(ctx context.Context, seed string, inputs, outputs map[string]any) (*ent.DecisionRecord, error) {
	return r.Record(ctx, models.DecisionPolicy, seed, inputs, outputs, 1.0)
}

// Signoff attaches a sign-off row and flips the record to SIGNED. The
// sealed fields are untouched, so the hash stays valid.
func (r *Recorder) Signoff(ctx context.Context, decisionID, signer, note string) error {
	if signer == "" {
		return fmt.Errorf("signer is required")
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	rec, err := tx.DecisionRecord.Get(ctx, decisionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrDecisionNotFound
		}
		return fmt.Errorf("failed to load decision %s: %w", decisionID, err)
	}
	if rec.FinalVerdict != decisionrecord.FinalVerdictREQUIRE_SIGNOFF {
		return fmt.Errorf("%w: verdict is %s", ErrSignoffNotRequired, rec.FinalVerdict)
	}

	create := tx.DecisionSignoff.Create().
		SetDecisionID(decisionID).
		SetSigner(signer)
	if note != "" {
		create.SetNote(note)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record sign-off: %w", err)
	}

	if _, err := rec.Update().SetStatus(decisionrecord.StatusSIGNED).Save(ctx); err != nil {
		return fmt.Errorf("failed to flip decision status: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// VerifyIntegrity recomputes the record hash from stored content and
// compares it with the sealed one.
func (r *Recorder) VerifyIntegrity(ctx context.Context, decisionID string) error {
	rec, err := r.conn(ctx).DecisionRecord.Get(ctx, decisionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrDecisionNotFound
		}
		return fmt.Errorf("failed to load decision %s: %w", decisionID, err)
	}

	recomputed, err := recordHash(sealedFields{
		DecisionID:     rec.ID,
		DecisionType:   string(rec.DecisionType),
		Seed:           rec.Seed,
		Inputs:         orEmpty(rec.Inputs),
		Outputs:        orEmpty(rec.Outputs),
		RulesTriggered: orEmptySlice(rec.RulesTriggered),
		Timestamp:      rec.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	if recomputed != rec.RecordHash {
		return fmt.Errorf("%w: %s", ErrTampered, decisionID)
	}
	return nil
}

// Get returns a decision record by id.
func (r *Recorder) Get(ctx context.Context, decisionID string) (*ent.DecisionRecord, error) {
	rec, err := r.conn(ctx).DecisionRecord.Get(ctx, decisionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrDecisionNotFound
		}
		return nil, fmt.Errorf("failed to load decision %s: %w", decisionID, err)
	}
	return rec, nil
}

// Signoffs returns the sign-off rows for a decision.
func (r *Recorder) Signoffs(ctx context.Context, decisionID string) ([]*ent.DecisionSignoff, error) {
	rows, err := r.conn(ctx).DecisionSignoff.Query().
		Where(decisionsignoff.DecisionIDEQ(decisionID)).
		Order(ent.Asc(decisionsignoff.FieldSignedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sign-offs: %w", err)
	}
	return rows, nil
}

func recordHash(fields sealedFields) (string, error) {
	canonical, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize decision: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
