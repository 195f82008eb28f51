// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/lease"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/ent/llmcacheentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/toolcall"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry      = "AuditEntry"
	TypeCheckpoint      = "Checkpoint"
	TypeDecisionRecord  = "DecisionRecord"
	TypeDecisionSignoff = "DecisionSignoff"
	TypeInboxEvent      = "InboxEvent"
	TypeLLMCacheEntry   = "LLMCacheEntry"
	TypeLease           = "Lease"
	TypeLineageEntry    = "LineageEntry"
	TypeTask            = "Task"
	TypeToolCall        = "ToolCall"
	TypeToolLedgerEntry = "ToolLedgerEntry"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	level         *auditentry.Level
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id int) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AuditEntryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AuditEntryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AuditEntryMutation) ResetTaskID() {
	m.task = nil
}

// SetLevel sets the "level" field.
func (m *AuditEntryMutation) SetLevel(a auditentry.Level) {
	m.level = &a
}

// Level returns the value of the "level" field in the mutation.
func (m *AuditEntryMutation) Level() (r auditentry.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldLevel(ctx context.Context) (v auditentry.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AuditEntryMutation) ResetLevel() {
	m.level = nil
}

// SetEventType sets the "event_type" field.
func (m *AuditEntryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditEntryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditEntryMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *AuditEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AuditEntryMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[auditentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AuditEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEntryMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, auditentry.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AuditEntryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[auditentry.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AuditEntryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AuditEntryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AuditEntryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, auditentry.FieldTaskID)
	}
	if m.level != nil {
		fields = append(fields, auditentry.FieldLevel)
	}
	if m.event_type != nil {
		fields = append(fields, auditentry.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, auditentry.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldTaskID:
		return m.TaskID()
	case auditentry.FieldLevel:
		return m.Level()
	case auditentry.FieldEventType:
		return m.EventType()
	case auditentry.FieldPayload:
		return m.Payload()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case auditentry.FieldLevel:
		return m.OldLevel(ctx)
	case auditentry.FieldEventType:
		return m.OldEventType(ctx)
	case auditentry.FieldPayload:
		return m.OldPayload(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case auditentry.FieldLevel:
		v, ok := value.(auditentry.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case auditentry.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldPayload) {
		fields = append(fields, auditentry.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case auditentry.FieldLevel:
		m.ResetLevel()
		return nil
	case auditentry.FieldEventType:
		m.ResetEventType()
		return nil
	case auditentry.FieldPayload:
		m.ResetPayload()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, auditentry.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditentry.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, auditentry.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case auditentry.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	switch name {
	case auditentry.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	switch name {
	case auditentry.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	sequence_number    *int
	addsequence_number *int
	checkpoint_type    *string
	snapshot           *map[string]interface{}
	evidence           *map[string]interface{}
	work_item_id       *string
	committed          *bool
	verified_at        *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	task               *string
	clearedtask        bool
	done               bool
	oldValue           func(context.Context) (*Checkpoint, error)
	predicates         []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CheckpointMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CheckpointMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CheckpointMutation) ResetTaskID() {
	m.task = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *CheckpointMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *CheckpointMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *CheckpointMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *CheckpointMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *CheckpointMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetCheckpointType sets the "checkpoint_type" field.
func (m *CheckpointMutation) SetCheckpointType(s string) {
	m.checkpoint_type = &s
}

// CheckpointType returns the value of the "checkpoint_type" field in the mutation.
func (m *CheckpointMutation) CheckpointType() (r string, exists bool) {
	v := m.checkpoint_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointType returns the old "checkpoint_type" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCheckpointType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointType: %w", err)
	}
	return oldValue.CheckpointType, nil
}

// ResetCheckpointType resets all changes to the "checkpoint_type" field.
func (m *CheckpointMutation) ResetCheckpointType() {
	m.checkpoint_type = nil
}

// SetSnapshot sets the "snapshot" field.
func (m *CheckpointMutation) SetSnapshot(value map[string]interface{}) {
	m.snapshot = &value
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *CheckpointMutation) Snapshot() (r map[string]interface{}, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// ClearSnapshot clears the value of the "snapshot" field.
func (m *CheckpointMutation) ClearSnapshot() {
	m.snapshot = nil
	m.clearedFields[checkpoint.FieldSnapshot] = struct{}{}
}

// SnapshotCleared returns if the "snapshot" field was cleared in this mutation.
func (m *CheckpointMutation) SnapshotCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldSnapshot]
	return ok
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *CheckpointMutation) ResetSnapshot() {
	m.snapshot = nil
	delete(m.clearedFields, checkpoint.FieldSnapshot)
}

// SetEvidence sets the "evidence" field.
func (m *CheckpointMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *CheckpointMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *CheckpointMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[checkpoint.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *CheckpointMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *CheckpointMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, checkpoint.FieldEvidence)
}

// SetWorkItemID sets the "work_item_id" field.
func (m *CheckpointMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *CheckpointMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldWorkItemID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ClearWorkItemID clears the value of the "work_item_id" field.
func (m *CheckpointMutation) ClearWorkItemID() {
	m.work_item_id = nil
	m.clearedFields[checkpoint.FieldWorkItemID] = struct{}{}
}

// WorkItemIDCleared returns if the "work_item_id" field was cleared in this mutation.
func (m *CheckpointMutation) WorkItemIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldWorkItemID]
	return ok
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *CheckpointMutation) ResetWorkItemID() {
	m.work_item_id = nil
	delete(m.clearedFields, checkpoint.FieldWorkItemID)
}

// SetCommitted sets the "committed" field.
func (m *CheckpointMutation) SetCommitted(b bool) {
	m.committed = &b
}

// Committed returns the value of the "committed" field in the mutation.
func (m *CheckpointMutation) Committed() (r bool, exists bool) {
	v := m.committed
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitted returns the old "committed" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCommitted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitted: %w", err)
	}
	return oldValue.Committed, nil
}

// ResetCommitted resets all changes to the "committed" field.
func (m *CheckpointMutation) ResetCommitted() {
	m.committed = nil
}

// SetVerifiedAt sets the "verified_at" field.
func (m *CheckpointMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *CheckpointMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *CheckpointMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[checkpoint.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *CheckpointMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *CheckpointMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, checkpoint.FieldVerifiedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CheckpointMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[checkpoint.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CheckpointMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CheckpointMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task != nil {
		fields = append(fields, checkpoint.FieldTaskID)
	}
	if m.sequence_number != nil {
		fields = append(fields, checkpoint.FieldSequenceNumber)
	}
	if m.checkpoint_type != nil {
		fields = append(fields, checkpoint.FieldCheckpointType)
	}
	if m.snapshot != nil {
		fields = append(fields, checkpoint.FieldSnapshot)
	}
	if m.evidence != nil {
		fields = append(fields, checkpoint.FieldEvidence)
	}
	if m.work_item_id != nil {
		fields = append(fields, checkpoint.FieldWorkItemID)
	}
	if m.committed != nil {
		fields = append(fields, checkpoint.FieldCommitted)
	}
	if m.verified_at != nil {
		fields = append(fields, checkpoint.FieldVerifiedAt)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldTaskID:
		return m.TaskID()
	case checkpoint.FieldSequenceNumber:
		return m.SequenceNumber()
	case checkpoint.FieldCheckpointType:
		return m.CheckpointType()
	case checkpoint.FieldSnapshot:
		return m.Snapshot()
	case checkpoint.FieldEvidence:
		return m.Evidence()
	case checkpoint.FieldWorkItemID:
		return m.WorkItemID()
	case checkpoint.FieldCommitted:
		return m.Committed()
	case checkpoint.FieldVerifiedAt:
		return m.VerifiedAt()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldTaskID:
		return m.OldTaskID(ctx)
	case checkpoint.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case checkpoint.FieldCheckpointType:
		return m.OldCheckpointType(ctx)
	case checkpoint.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case checkpoint.FieldEvidence:
		return m.OldEvidence(ctx)
	case checkpoint.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case checkpoint.FieldCommitted:
		return m.OldCommitted(ctx)
	case checkpoint.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case checkpoint.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case checkpoint.FieldCheckpointType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointType(v)
		return nil
	case checkpoint.FieldSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case checkpoint.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case checkpoint.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case checkpoint.FieldCommitted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitted(v)
		return nil
	case checkpoint.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, checkpoint.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldSnapshot) {
		fields = append(fields, checkpoint.FieldSnapshot)
	}
	if m.FieldCleared(checkpoint.FieldEvidence) {
		fields = append(fields, checkpoint.FieldEvidence)
	}
	if m.FieldCleared(checkpoint.FieldWorkItemID) {
		fields = append(fields, checkpoint.FieldWorkItemID)
	}
	if m.FieldCleared(checkpoint.FieldVerifiedAt) {
		fields = append(fields, checkpoint.FieldVerifiedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldSnapshot:
		m.ClearSnapshot()
		return nil
	case checkpoint.FieldEvidence:
		m.ClearEvidence()
		return nil
	case checkpoint.FieldWorkItemID:
		m.ClearWorkItemID()
		return nil
	case checkpoint.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldTaskID:
		m.ResetTaskID()
		return nil
	case checkpoint.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case checkpoint.FieldCheckpointType:
		m.ResetCheckpointType()
		return nil
	case checkpoint.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case checkpoint.FieldEvidence:
		m.ResetEvidence()
		return nil
	case checkpoint.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case checkpoint.FieldCommitted:
		m.ResetCommitted()
		return nil
	case checkpoint.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, checkpoint.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, checkpoint.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// DecisionRecordMutation represents an operation that mutates the DecisionRecord nodes in the graph.
type DecisionRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	decision_type         *decisionrecord.DecisionType
	seed                  *string
	inputs                *map[string]interface{}
	outputs               *map[string]interface{}
	rules_triggered       *[]string
	appendrules_triggered []string
	final_verdict         *decisionrecord.FinalVerdict
	confidence            *float64
	addconfidence         *float64
	status                *decisionrecord.Status
	record_hash           *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DecisionRecord, error)
	predicates            []predicate.DecisionRecord
}

var _ ent.Mutation = (*DecisionRecordMutation)(nil)

// decisionrecordOption allows management of the mutation configuration using functional options.
type decisionrecordOption func(*DecisionRecordMutation)

// newDecisionRecordMutation creates new mutation for the DecisionRecord entity.
func newDecisionRecordMutation(c config, op Op, opts ...decisionrecordOption) *DecisionRecordMutation {
	m := &DecisionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeDecisionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionRecordID sets the ID field of the mutation.
func withDecisionRecordID(id string) decisionrecordOption {
	return func(m *DecisionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *DecisionRecord
		)
		m.oldValue = func(ctx context.Context) (*DecisionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DecisionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecisionRecord sets the old DecisionRecord of the mutation.
func withDecisionRecord(node *DecisionRecord) decisionrecordOption {
	return func(m *DecisionRecordMutation) {
		m.oldValue = func(context.Context) (*DecisionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DecisionRecord entities.
func (m *DecisionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DecisionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDecisionType sets the "decision_type" field.
func (m *DecisionRecordMutation) SetDecisionType(dt decisionrecord.DecisionType) {
	m.decision_type = &dt
}

// DecisionType returns the value of the "decision_type" field in the mutation.
func (m *DecisionRecordMutation) DecisionType() (r decisionrecord.DecisionType, exists bool) {
	v := m.decision_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionType returns the old "decision_type" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldDecisionType(ctx context.Context) (v decisionrecord.DecisionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionType: %w", err)
	}
	return oldValue.DecisionType, nil
}

// ResetDecisionType resets all changes to the "decision_type" field.
func (m *DecisionRecordMutation) ResetDecisionType() {
	m.decision_type = nil
}

// SetSeed sets the "seed" field.
func (m *DecisionRecordMutation) SetSeed(s string) {
	m.seed = &s
}

// Seed returns the value of the "seed" field in the mutation.
func (m *DecisionRecordMutation) Seed() (r string, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldSeed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// ResetSeed resets all changes to the "seed" field.
func (m *DecisionRecordMutation) ResetSeed() {
	m.seed = nil
}

// SetInputs sets the "inputs" field.
func (m *DecisionRecordMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *DecisionRecordMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *DecisionRecordMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[decisionrecord.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *DecisionRecordMutation) InputsCleared() bool {
	_, ok := m.clearedFields[decisionrecord.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *DecisionRecordMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, decisionrecord.FieldInputs)
}

// SetOutputs sets the "outputs" field.
func (m *DecisionRecordMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *DecisionRecordMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *DecisionRecordMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[decisionrecord.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *DecisionRecordMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[decisionrecord.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *DecisionRecordMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, decisionrecord.FieldOutputs)
}

// SetRulesTriggered sets the "rules_triggered" field.
func (m *DecisionRecordMutation) SetRulesTriggered(s []string) {
	m.rules_triggered = &s
	m.appendrules_triggered = nil
}

// RulesTriggered returns the value of the "rules_triggered" field in the mutation.
func (m *DecisionRecordMutation) RulesTriggered() (r []string, exists bool) {
	v := m.rules_triggered
	if v == nil {
		return
	}
	return *v, true
}

// OldRulesTriggered returns the old "rules_triggered" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldRulesTriggered(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulesTriggered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulesTriggered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulesTriggered: %w", err)
	}
	return oldValue.RulesTriggered, nil
}

// AppendRulesTriggered adds s to the "rules_triggered" field.
func (m *DecisionRecordMutation) AppendRulesTriggered(s []string) {
	m.appendrules_triggered = append(m.appendrules_triggered, s...)
}

// AppendedRulesTriggered returns the list of values that were appended to the "rules_triggered" field in this mutation.
func (m *DecisionRecordMutation) AppendedRulesTriggered() ([]string, bool) {
	if len(m.appendrules_triggered) == 0 {
		return nil, false
	}
	return m.appendrules_triggered, true
}

// ClearRulesTriggered clears the value of the "rules_triggered" field.
func (m *DecisionRecordMutation) ClearRulesTriggered() {
	m.rules_triggered = nil
	m.appendrules_triggered = nil
	m.clearedFields[decisionrecord.FieldRulesTriggered] = struct{}{}
}

// RulesTriggeredCleared returns if the "rules_triggered" field was cleared in this mutation.
func (m *DecisionRecordMutation) RulesTriggeredCleared() bool {
	_, ok := m.clearedFields[decisionrecord.FieldRulesTriggered]
	return ok
}

// ResetRulesTriggered resets all changes to the "rules_triggered" field.
func (m *DecisionRecordMutation) ResetRulesTriggered() {
	m.rules_triggered = nil
	m.appendrules_triggered = nil
	delete(m.clearedFields, decisionrecord.FieldRulesTriggered)
}

// SetFinalVerdict sets the "final_verdict" field.
func (m *DecisionRecordMutation) SetFinalVerdict(dv decisionrecord.FinalVerdict) {
	m.final_verdict = &dv
}

// FinalVerdict returns the value of the "final_verdict" field in the mutation.
func (m *DecisionRecordMutation) FinalVerdict() (r decisionrecord.FinalVerdict, exists bool) {
	v := m.final_verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalVerdict returns the old "final_verdict" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldFinalVerdict(ctx context.Context) (v decisionrecord.FinalVerdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalVerdict: %w", err)
	}
	return oldValue.FinalVerdict, nil
}

// ResetFinalVerdict resets all changes to the "final_verdict" field.
func (m *DecisionRecordMutation) ResetFinalVerdict() {
	m.final_verdict = nil
}

// SetConfidence sets the "confidence" field.
func (m *DecisionRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DecisionRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DecisionRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DecisionRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DecisionRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetStatus sets the "status" field.
func (m *DecisionRecordMutation) SetStatus(d decisionrecord.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DecisionRecordMutation) Status() (r decisionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldStatus(ctx context.Context) (v decisionrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DecisionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetRecordHash sets the "record_hash" field.
func (m *DecisionRecordMutation) SetRecordHash(s string) {
	m.record_hash = &s
}

// RecordHash returns the value of the "record_hash" field in the mutation.
func (m *DecisionRecordMutation) RecordHash() (r string, exists bool) {
	v := m.record_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordHash returns the old "record_hash" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldRecordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordHash: %w", err)
	}
	return oldValue.RecordHash, nil
}

// ResetRecordHash resets all changes to the "record_hash" field.
func (m *DecisionRecordMutation) ResetRecordHash() {
	m.record_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DecisionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DecisionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DecisionRecord entity.
// If the DecisionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DecisionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DecisionRecordMutation builder.
func (m *DecisionRecordMutation) Where(ps ...predicate.DecisionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DecisionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DecisionRecord).
func (m *DecisionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.decision_type != nil {
		fields = append(fields, decisionrecord.FieldDecisionType)
	}
	if m.seed != nil {
		fields = append(fields, decisionrecord.FieldSeed)
	}
	if m.inputs != nil {
		fields = append(fields, decisionrecord.FieldInputs)
	}
	if m.outputs != nil {
		fields = append(fields, decisionrecord.FieldOutputs)
	}
	if m.rules_triggered != nil {
		fields = append(fields, decisionrecord.FieldRulesTriggered)
	}
	if m.final_verdict != nil {
		fields = append(fields, decisionrecord.FieldFinalVerdict)
	}
	if m.confidence != nil {
		fields = append(fields, decisionrecord.FieldConfidence)
	}
	if m.status != nil {
		fields = append(fields, decisionrecord.FieldStatus)
	}
	if m.record_hash != nil {
		fields = append(fields, decisionrecord.FieldRecordHash)
	}
	if m.created_at != nil {
		fields = append(fields, decisionrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decisionrecord.FieldDecisionType:
		return m.DecisionType()
	case decisionrecord.FieldSeed:
		return m.Seed()
	case decisionrecord.FieldInputs:
		return m.Inputs()
	case decisionrecord.FieldOutputs:
		return m.Outputs()
	case decisionrecord.FieldRulesTriggered:
		return m.RulesTriggered()
	case decisionrecord.FieldFinalVerdict:
		return m.FinalVerdict()
	case decisionrecord.FieldConfidence:
		return m.Confidence()
	case decisionrecord.FieldStatus:
		return m.Status()
	case decisionrecord.FieldRecordHash:
		return m.RecordHash()
	case decisionrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decisionrecord.FieldDecisionType:
		return m.OldDecisionType(ctx)
	case decisionrecord.FieldSeed:
		return m.OldSeed(ctx)
	case decisionrecord.FieldInputs:
		return m.OldInputs(ctx)
	case decisionrecord.FieldOutputs:
		return m.OldOutputs(ctx)
	case decisionrecord.FieldRulesTriggered:
		return m.OldRulesTriggered(ctx)
	case decisionrecord.FieldFinalVerdict:
		return m.OldFinalVerdict(ctx)
	case decisionrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case decisionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case decisionrecord.FieldRecordHash:
		return m.OldRecordHash(ctx)
	case decisionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DecisionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decisionrecord.FieldDecisionType:
		v, ok := value.(decisionrecord.DecisionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionType(v)
		return nil
	case decisionrecord.FieldSeed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	case decisionrecord.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case decisionrecord.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case decisionrecord.FieldRulesTriggered:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulesTriggered(v)
		return nil
	case decisionrecord.FieldFinalVerdict:
		v, ok := value.(decisionrecord.FinalVerdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalVerdict(v)
		return nil
	case decisionrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case decisionrecord.FieldStatus:
		v, ok := value.(decisionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case decisionrecord.FieldRecordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordHash(v)
		return nil
	case decisionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, decisionrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decisionrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decisionrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decisionrecord.FieldInputs) {
		fields = append(fields, decisionrecord.FieldInputs)
	}
	if m.FieldCleared(decisionrecord.FieldOutputs) {
		fields = append(fields, decisionrecord.FieldOutputs)
	}
	if m.FieldCleared(decisionrecord.FieldRulesTriggered) {
		fields = append(fields, decisionrecord.FieldRulesTriggered)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionRecordMutation) ClearField(name string) error {
	switch name {
	case decisionrecord.FieldInputs:
		m.ClearInputs()
		return nil
	case decisionrecord.FieldOutputs:
		m.ClearOutputs()
		return nil
	case decisionrecord.FieldRulesTriggered:
		m.ClearRulesTriggered()
		return nil
	}
	return fmt.Errorf("unknown DecisionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionRecordMutation) ResetField(name string) error {
	switch name {
	case decisionrecord.FieldDecisionType:
		m.ResetDecisionType()
		return nil
	case decisionrecord.FieldSeed:
		m.ResetSeed()
		return nil
	case decisionrecord.FieldInputs:
		m.ResetInputs()
		return nil
	case decisionrecord.FieldOutputs:
		m.ResetOutputs()
		return nil
	case decisionrecord.FieldRulesTriggered:
		m.ResetRulesTriggered()
		return nil
	case decisionrecord.FieldFinalVerdict:
		m.ResetFinalVerdict()
		return nil
	case decisionrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case decisionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case decisionrecord.FieldRecordHash:
		m.ResetRecordHash()
		return nil
	case decisionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DecisionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DecisionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DecisionRecord edge %s", name)
}

// DecisionSignoffMutation represents an operation that mutates the DecisionSignoff nodes in the graph.
type DecisionSignoffMutation struct {
	config
	op            Op
	typ           string
	id            *int
	decision_id   *string
	signer        *string
	note          *string
	signed_at     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DecisionSignoff, error)
	predicates    []predicate.DecisionSignoff
}

var _ ent.Mutation = (*DecisionSignoffMutation)(nil)

// decisionsignoffOption allows management of the mutation configuration using functional options.
type decisionsignoffOption func(*DecisionSignoffMutation)

// newDecisionSignoffMutation creates new mutation for the DecisionSignoff entity.
func newDecisionSignoffMutation(c config, op Op, opts ...decisionsignoffOption) *DecisionSignoffMutation {
	m := &DecisionSignoffMutation{
		config:        c,
		op:            op,
		typ:           TypeDecisionSignoff,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionSignoffID sets the ID field of the mutation.
func withDecisionSignoffID(id int) decisionsignoffOption {
	return func(m *DecisionSignoffMutation) {
		var (
			err   error
			once  sync.Once
			value *DecisionSignoff
		)
		m.oldValue = func(ctx context.Context) (*DecisionSignoff, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DecisionSignoff.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecisionSignoff sets the old DecisionSignoff of the mutation.
func withDecisionSignoff(node *DecisionSignoff) decisionsignoffOption {
	return func(m *DecisionSignoffMutation) {
		m.oldValue = func(context.Context) (*DecisionSignoff, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionSignoffMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionSignoffMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionSignoffMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionSignoffMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DecisionSignoff.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDecisionID sets the "decision_id" field.
func (m *DecisionSignoffMutation) SetDecisionID(s string) {
	m.decision_id = &s
}

// DecisionID returns the value of the "decision_id" field in the mutation.
func (m *DecisionSignoffMutation) DecisionID() (r string, exists bool) {
	v := m.decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionID returns the old "decision_id" field's value of the DecisionSignoff entity.
// If the DecisionSignoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionSignoffMutation) OldDecisionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionID: %w", err)
	}
	return oldValue.DecisionID, nil
}

// ResetDecisionID resets all changes to the "decision_id" field.
func (m *DecisionSignoffMutation) ResetDecisionID() {
	m.decision_id = nil
}

// SetSigner sets the "signer" field.
func (m *DecisionSignoffMutation) SetSigner(s string) {
	m.signer = &s
}

// Signer returns the value of the "signer" field in the mutation.
func (m *DecisionSignoffMutation) Signer() (r string, exists bool) {
	v := m.signer
	if v == nil {
		return
	}
	return *v, true
}

// OldSigner returns the old "signer" field's value of the DecisionSignoff entity.
// If the DecisionSignoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionSignoffMutation) OldSigner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSigner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSigner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSigner: %w", err)
	}
	return oldValue.Signer, nil
}

// ResetSigner resets all changes to the "signer" field.
func (m *DecisionSignoffMutation) ResetSigner() {
	m.signer = nil
}

// SetNote sets the "note" field.
func (m *DecisionSignoffMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *DecisionSignoffMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the DecisionSignoff entity.
// If the DecisionSignoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionSignoffMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *DecisionSignoffMutation) ClearNote() {
	m.note = nil
	m.clearedFields[decisionsignoff.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *DecisionSignoffMutation) NoteCleared() bool {
	_, ok := m.clearedFields[decisionsignoff.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *DecisionSignoffMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, decisionsignoff.FieldNote)
}

// SetSignedAt sets the "signed_at" field.
func (m *DecisionSignoffMutation) SetSignedAt(t time.Time) {
	m.signed_at = &t
}

// SignedAt returns the value of the "signed_at" field in the mutation.
func (m *DecisionSignoffMutation) SignedAt() (r time.Time, exists bool) {
	v := m.signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSignedAt returns the old "signed_at" field's value of the DecisionSignoff entity.
// If the DecisionSignoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionSignoffMutation) OldSignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignedAt: %w", err)
	}
	return oldValue.SignedAt, nil
}

// ResetSignedAt resets all changes to the "signed_at" field.
func (m *DecisionSignoffMutation) ResetSignedAt() {
	m.signed_at = nil
}

// Where appends a list predicates to the DecisionSignoffMutation builder.
func (m *DecisionSignoffMutation) Where(ps ...predicate.DecisionSignoff) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionSignoffMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionSignoffMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DecisionSignoff, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionSignoffMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionSignoffMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DecisionSignoff).
func (m *DecisionSignoffMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionSignoffMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.decision_id != nil {
		fields = append(fields, decisionsignoff.FieldDecisionID)
	}
	if m.signer != nil {
		fields = append(fields, decisionsignoff.FieldSigner)
	}
	if m.note != nil {
		fields = append(fields, decisionsignoff.FieldNote)
	}
	if m.signed_at != nil {
		fields = append(fields, decisionsignoff.FieldSignedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionSignoffMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decisionsignoff.FieldDecisionID:
		return m.DecisionID()
	case decisionsignoff.FieldSigner:
		return m.Signer()
	case decisionsignoff.FieldNote:
		return m.Note()
	case decisionsignoff.FieldSignedAt:
		return m.SignedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionSignoffMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decisionsignoff.FieldDecisionID:
		return m.OldDecisionID(ctx)
	case decisionsignoff.FieldSigner:
		return m.OldSigner(ctx)
	case decisionsignoff.FieldNote:
		return m.OldNote(ctx)
	case decisionsignoff.FieldSignedAt:
		return m.OldSignedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DecisionSignoff field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionSignoffMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decisionsignoff.FieldDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionID(v)
		return nil
	case decisionsignoff.FieldSigner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSigner(v)
		return nil
	case decisionsignoff.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case decisionsignoff.FieldSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionSignoff field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionSignoffMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionSignoffMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionSignoffMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DecisionSignoff numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionSignoffMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decisionsignoff.FieldNote) {
		fields = append(fields, decisionsignoff.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionSignoffMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionSignoffMutation) ClearField(name string) error {
	switch name {
	case decisionsignoff.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown DecisionSignoff nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionSignoffMutation) ResetField(name string) error {
	switch name {
	case decisionsignoff.FieldDecisionID:
		m.ResetDecisionID()
		return nil
	case decisionsignoff.FieldSigner:
		m.ResetSigner()
		return nil
	case decisionsignoff.FieldNote:
		m.ResetNote()
		return nil
	case decisionsignoff.FieldSignedAt:
		m.ResetSignedAt()
		return nil
	}
	return fmt.Errorf("unknown DecisionSignoff field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionSignoffMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionSignoffMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionSignoffMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionSignoffMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionSignoffMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionSignoffMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionSignoffMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DecisionSignoff unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionSignoffMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DecisionSignoff edge %s", name)
}

// InboxEventMutation represents an operation that mutates the InboxEvent nodes in the graph.
type InboxEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *string
	task_id       *string
	event_type    *string
	source        *inboxevent.Source
	payload       *map[string]interface{}
	received_at   *time.Time
	status        *inboxevent.Status
	processed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InboxEvent, error)
	predicates    []predicate.InboxEvent
}

var _ ent.Mutation = (*InboxEventMutation)(nil)

// inboxeventOption allows management of the mutation configuration using functional options.
type inboxeventOption func(*InboxEventMutation)

// newInboxEventMutation creates new mutation for the InboxEvent entity.
func newInboxEventMutation(c config, op Op, opts ...inboxeventOption) *InboxEventMutation {
	m := &InboxEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInboxEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboxEventID sets the ID field of the mutation.
func withInboxEventID(id int) inboxeventOption {
	return func(m *InboxEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InboxEvent
		)
		m.oldValue = func(ctx context.Context) (*InboxEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboxEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboxEvent sets the old InboxEvent of the mutation.
func withInboxEvent(node *InboxEvent) inboxeventOption {
	return func(m *InboxEventMutation) {
		m.oldValue = func(context.Context) (*InboxEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboxEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboxEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboxEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboxEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboxEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *InboxEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *InboxEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *InboxEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *InboxEventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *InboxEventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *InboxEventMutation) ResetTaskID() {
	m.task_id = nil
}

// SetEventType sets the "event_type" field.
func (m *InboxEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *InboxEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *InboxEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSource sets the "source" field.
func (m *InboxEventMutation) SetSource(i inboxevent.Source) {
	m.source = &i
}

// Source returns the value of the "source" field in the mutation.
func (m *InboxEventMutation) Source() (r inboxevent.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldSource(ctx context.Context) (v inboxevent.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *InboxEventMutation) ResetSource() {
	m.source = nil
}

// SetPayload sets the "payload" field.
func (m *InboxEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InboxEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *InboxEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[inboxevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *InboxEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[inboxevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *InboxEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, inboxevent.FieldPayload)
}

// SetReceivedAt sets the "received_at" field.
func (m *InboxEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *InboxEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *InboxEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetStatus sets the "status" field.
func (m *InboxEventMutation) SetStatus(i inboxevent.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InboxEventMutation) Status() (r inboxevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldStatus(ctx context.Context) (v inboxevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InboxEventMutation) ResetStatus() {
	m.status = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *InboxEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *InboxEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the InboxEvent entity.
// If the InboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboxEventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *InboxEventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[inboxevent.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *InboxEventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[inboxevent.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *InboxEventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, inboxevent.FieldProcessedAt)
}

// Where appends a list predicates to the InboxEventMutation builder.
func (m *InboxEventMutation) Where(ps ...predicate.InboxEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboxEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboxEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboxEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboxEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboxEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboxEvent).
func (m *InboxEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboxEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.event_id != nil {
		fields = append(fields, inboxevent.FieldEventID)
	}
	if m.task_id != nil {
		fields = append(fields, inboxevent.FieldTaskID)
	}
	if m.event_type != nil {
		fields = append(fields, inboxevent.FieldEventType)
	}
	if m.source != nil {
		fields = append(fields, inboxevent.FieldSource)
	}
	if m.payload != nil {
		fields = append(fields, inboxevent.FieldPayload)
	}
	if m.received_at != nil {
		fields = append(fields, inboxevent.FieldReceivedAt)
	}
	if m.status != nil {
		fields = append(fields, inboxevent.FieldStatus)
	}
	if m.processed_at != nil {
		fields = append(fields, inboxevent.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboxEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboxevent.FieldEventID:
		return m.EventID()
	case inboxevent.FieldTaskID:
		return m.TaskID()
	case inboxevent.FieldEventType:
		return m.EventType()
	case inboxevent.FieldSource:
		return m.Source()
	case inboxevent.FieldPayload:
		return m.Payload()
	case inboxevent.FieldReceivedAt:
		return m.ReceivedAt()
	case inboxevent.FieldStatus:
		return m.Status()
	case inboxevent.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboxEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboxevent.FieldEventID:
		return m.OldEventID(ctx)
	case inboxevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case inboxevent.FieldEventType:
		return m.OldEventType(ctx)
	case inboxevent.FieldSource:
		return m.OldSource(ctx)
	case inboxevent.FieldPayload:
		return m.OldPayload(ctx)
	case inboxevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case inboxevent.FieldStatus:
		return m.OldStatus(ctx)
	case inboxevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboxEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboxevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case inboxevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case inboxevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case inboxevent.FieldSource:
		v, ok := value.(inboxevent.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case inboxevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case inboxevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case inboxevent.FieldStatus:
		v, ok := value.(inboxevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case inboxevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboxEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboxEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboxEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboxEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InboxEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboxEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inboxevent.FieldPayload) {
		fields = append(fields, inboxevent.FieldPayload)
	}
	if m.FieldCleared(inboxevent.FieldProcessedAt) {
		fields = append(fields, inboxevent.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboxEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboxEventMutation) ClearField(name string) error {
	switch name {
	case inboxevent.FieldPayload:
		m.ClearPayload()
		return nil
	case inboxevent.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboxEventMutation) ResetField(name string) error {
	switch name {
	case inboxevent.FieldEventID:
		m.ResetEventID()
		return nil
	case inboxevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case inboxevent.FieldEventType:
		m.ResetEventType()
		return nil
	case inboxevent.FieldSource:
		m.ResetSource()
		return nil
	case inboxevent.FieldPayload:
		m.ResetPayload()
		return nil
	case inboxevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case inboxevent.FieldStatus:
		m.ResetStatus()
		return nil
	case inboxevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown InboxEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboxEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboxEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboxEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboxEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboxEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboxEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboxEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InboxEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboxEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InboxEvent edge %s", name)
}

// LLMCacheEntryMutation represents an operation that mutates the LLMCacheEntry nodes in the graph.
type LLMCacheEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	operation_type *string
	model          *string
	output         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LLMCacheEntry, error)
	predicates     []predicate.LLMCacheEntry
}

var _ ent.Mutation = (*LLMCacheEntryMutation)(nil)

// llmcacheentryOption allows management of the mutation configuration using functional options.
type llmcacheentryOption func(*LLMCacheEntryMutation)

// newLLMCacheEntryMutation creates new mutation for the LLMCacheEntry entity.
func newLLMCacheEntryMutation(c config, op Op, opts ...llmcacheentryOption) *LLMCacheEntryMutation {
	m := &LLMCacheEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMCacheEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMCacheEntryID sets the ID field of the mutation.
func withLLMCacheEntryID(id string) llmcacheentryOption {
	return func(m *LLMCacheEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMCacheEntry
		)
		m.oldValue = func(ctx context.Context) (*LLMCacheEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMCacheEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMCacheEntry sets the old LLMCacheEntry of the mutation.
func withLLMCacheEntry(node *LLMCacheEntry) llmcacheentryOption {
	return func(m *LLMCacheEntryMutation) {
		m.oldValue = func(context.Context) (*LLMCacheEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMCacheEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMCacheEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMCacheEntry entities.
func (m *LLMCacheEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMCacheEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMCacheEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMCacheEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOperationType sets the "operation_type" field.
func (m *LLMCacheEntryMutation) SetOperationType(s string) {
	m.operation_type = &s
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *LLMCacheEntryMutation) OperationType() (r string, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the LLMCacheEntry entity.
// If the LLMCacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCacheEntryMutation) OldOperationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *LLMCacheEntryMutation) ResetOperationType() {
	m.operation_type = nil
}

// SetModel sets the "model" field.
func (m *LLMCacheEntryMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMCacheEntryMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMCacheEntry entity.
// If the LLMCacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCacheEntryMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMCacheEntryMutation) ResetModel() {
	m.model = nil
}

// SetOutput sets the "output" field.
func (m *LLMCacheEntryMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *LLMCacheEntryMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the LLMCacheEntry entity.
// If the LLMCacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCacheEntryMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ResetOutput resets all changes to the "output" field.
func (m *LLMCacheEntryMutation) ResetOutput() {
	m.output = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMCacheEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMCacheEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMCacheEntry entity.
// If the LLMCacheEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCacheEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMCacheEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMCacheEntryMutation builder.
func (m *LLMCacheEntryMutation) Where(ps ...predicate.LLMCacheEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMCacheEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMCacheEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMCacheEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMCacheEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMCacheEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMCacheEntry).
func (m *LLMCacheEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMCacheEntryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.operation_type != nil {
		fields = append(fields, llmcacheentry.FieldOperationType)
	}
	if m.model != nil {
		fields = append(fields, llmcacheentry.FieldModel)
	}
	if m.output != nil {
		fields = append(fields, llmcacheentry.FieldOutput)
	}
	if m.created_at != nil {
		fields = append(fields, llmcacheentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMCacheEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmcacheentry.FieldOperationType:
		return m.OperationType()
	case llmcacheentry.FieldModel:
		return m.Model()
	case llmcacheentry.FieldOutput:
		return m.Output()
	case llmcacheentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMCacheEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmcacheentry.FieldOperationType:
		return m.OldOperationType(ctx)
	case llmcacheentry.FieldModel:
		return m.OldModel(ctx)
	case llmcacheentry.FieldOutput:
		return m.OldOutput(ctx)
	case llmcacheentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMCacheEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCacheEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmcacheentry.FieldOperationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case llmcacheentry.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmcacheentry.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case llmcacheentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCacheEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMCacheEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMCacheEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCacheEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LLMCacheEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMCacheEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMCacheEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMCacheEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMCacheEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMCacheEntryMutation) ResetField(name string) error {
	switch name {
	case llmcacheentry.FieldOperationType:
		m.ResetOperationType()
		return nil
	case llmcacheentry.FieldModel:
		m.ResetModel()
		return nil
	case llmcacheentry.FieldOutput:
		m.ResetOutput()
		return nil
	case llmcacheentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMCacheEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMCacheEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMCacheEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMCacheEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMCacheEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMCacheEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMCacheEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMCacheEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMCacheEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMCacheEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMCacheEntry edge %s", name)
}

// LeaseMutation represents an operation that mutates the Lease nodes in the graph.
type LeaseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	worker_id     *string
	acquired_at   *time.Time
	expires_at    *time.Time
	heartbeat_at  *time.Time
	released_at   *time.Time
	success       *bool
	output        *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lease, error)
	predicates    []predicate.Lease
}

var _ ent.Mutation = (*LeaseMutation)(nil)

// leaseOption allows management of the mutation configuration using functional options.
type leaseOption func(*LeaseMutation)

// newLeaseMutation creates new mutation for the Lease entity.
func newLeaseMutation(c config, op Op, opts ...leaseOption) *LeaseMutation {
	m := &LeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaseID sets the ID field of the mutation.
func withLeaseID(id string) leaseOption {
	return func(m *LeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Lease
		)
		m.oldValue = func(ctx context.Context) (*Lease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLease sets the old Lease of the mutation.
func withLease(node *Lease) leaseOption {
	return func(m *LeaseMutation) {
		m.oldValue = func(context.Context) (*Lease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lease entities.
func (m *LeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *LeaseMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *LeaseMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *LeaseMutation) ResetTaskID() {
	m.task_id = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *LeaseMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *LeaseMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldWorkerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *LeaseMutation) ResetWorkerID() {
	m.worker_id = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *LeaseMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *LeaseMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *LeaseMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *LeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *LeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *LeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *LeaseMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *LeaseMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *LeaseMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *LeaseMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *LeaseMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *LeaseMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[lease.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *LeaseMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[lease.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *LeaseMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, lease.FieldReleasedAt)
}

// SetSuccess sets the "success" field.
func (m *LeaseMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LeaseMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldSuccess(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ClearSuccess clears the value of the "success" field.
func (m *LeaseMutation) ClearSuccess() {
	m.success = nil
	m.clearedFields[lease.FieldSuccess] = struct{}{}
}

// SuccessCleared returns if the "success" field was cleared in this mutation.
func (m *LeaseMutation) SuccessCleared() bool {
	_, ok := m.clearedFields[lease.FieldSuccess]
	return ok
}

// ResetSuccess resets all changes to the "success" field.
func (m *LeaseMutation) ResetSuccess() {
	m.success = nil
	delete(m.clearedFields, lease.FieldSuccess)
}

// SetOutput sets the "output" field.
func (m *LeaseMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *LeaseMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *LeaseMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[lease.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *LeaseMutation) OutputCleared() bool {
	_, ok := m.clearedFields[lease.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *LeaseMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, lease.FieldOutput)
}

// Where appends a list predicates to the LeaseMutation builder.
func (m *LeaseMutation) Where(ps ...predicate.Lease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lease).
func (m *LeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task_id != nil {
		fields = append(fields, lease.FieldTaskID)
	}
	if m.worker_id != nil {
		fields = append(fields, lease.FieldWorkerID)
	}
	if m.acquired_at != nil {
		fields = append(fields, lease.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, lease.FieldExpiresAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, lease.FieldHeartbeatAt)
	}
	if m.released_at != nil {
		fields = append(fields, lease.FieldReleasedAt)
	}
	if m.success != nil {
		fields = append(fields, lease.FieldSuccess)
	}
	if m.output != nil {
		fields = append(fields, lease.FieldOutput)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldTaskID:
		return m.TaskID()
	case lease.FieldWorkerID:
		return m.WorkerID()
	case lease.FieldAcquiredAt:
		return m.AcquiredAt()
	case lease.FieldExpiresAt:
		return m.ExpiresAt()
	case lease.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case lease.FieldReleasedAt:
		return m.ReleasedAt()
	case lease.FieldSuccess:
		return m.Success()
	case lease.FieldOutput:
		return m.Output()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lease.FieldTaskID:
		return m.OldTaskID(ctx)
	case lease.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case lease.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case lease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case lease.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case lease.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case lease.FieldSuccess:
		return m.OldSuccess(ctx)
	case lease.FieldOutput:
		return m.OldOutput(ctx)
	}
	return nil, fmt.Errorf("unknown Lease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lease.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case lease.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case lease.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case lease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case lease.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case lease.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case lease.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case lease.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lease.FieldReleasedAt) {
		fields = append(fields, lease.FieldReleasedAt)
	}
	if m.FieldCleared(lease.FieldSuccess) {
		fields = append(fields, lease.FieldSuccess)
	}
	if m.FieldCleared(lease.FieldOutput) {
		fields = append(fields, lease.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaseMutation) ClearField(name string) error {
	switch name {
	case lease.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	case lease.FieldSuccess:
		m.ClearSuccess()
		return nil
	case lease.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown Lease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaseMutation) ResetField(name string) error {
	switch name {
	case lease.FieldTaskID:
		m.ResetTaskID()
		return nil
	case lease.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case lease.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case lease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case lease.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case lease.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case lease.FieldSuccess:
		m.ResetSuccess()
		return nil
	case lease.FieldOutput:
		m.ResetOutput()
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lease edge %s", name)
}

// LineageEntryMutation represents an operation that mutates the LineageEntry nodes in the graph.
type LineageEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	kind          *lineageentry.Kind
	ref_id        *string
	phase         *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*LineageEntry, error)
	predicates    []predicate.LineageEntry
}

var _ ent.Mutation = (*LineageEntryMutation)(nil)

// lineageentryOption allows management of the mutation configuration using functional options.
type lineageentryOption func(*LineageEntryMutation)

// newLineageEntryMutation creates new mutation for the LineageEntry entity.
func newLineageEntryMutation(c config, op Op, opts ...lineageentryOption) *LineageEntryMutation {
	m := &LineageEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLineageEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLineageEntryID sets the ID field of the mutation.
func withLineageEntryID(id int) lineageentryOption {
	return func(m *LineageEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LineageEntry
		)
		m.oldValue = func(ctx context.Context) (*LineageEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LineageEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLineageEntry sets the old LineageEntry of the mutation.
func withLineageEntry(node *LineageEntry) lineageentryOption {
	return func(m *LineageEntryMutation) {
		m.oldValue = func(context.Context) (*LineageEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LineageEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LineageEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LineageEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LineageEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LineageEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *LineageEntryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *LineageEntryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the LineageEntry entity.
// If the LineageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *LineageEntryMutation) ResetTaskID() {
	m.task = nil
}

// SetKind sets the "kind" field.
func (m *LineageEntryMutation) SetKind(l lineageentry.Kind) {
	m.kind = &l
}

// Kind returns the value of the "kind" field in the mutation.
func (m *LineageEntryMutation) Kind() (r lineageentry.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the LineageEntry entity.
// If the LineageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEntryMutation) OldKind(ctx context.Context) (v lineageentry.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *LineageEntryMutation) ResetKind() {
	m.kind = nil
}

// SetRefID sets the "ref_id" field.
func (m *LineageEntryMutation) SetRefID(s string) {
	m.ref_id = &s
}

// RefID returns the value of the "ref_id" field in the mutation.
func (m *LineageEntryMutation) RefID() (r string, exists bool) {
	v := m.ref_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRefID returns the old "ref_id" field's value of the LineageEntry entity.
// If the LineageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEntryMutation) OldRefID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefID: %w", err)
	}
	return oldValue.RefID, nil
}

// ResetRefID resets all changes to the "ref_id" field.
func (m *LineageEntryMutation) ResetRefID() {
	m.ref_id = nil
}

// SetPhase sets the "phase" field.
func (m *LineageEntryMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *LineageEntryMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the LineageEntry entity.
// If the LineageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEntryMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ClearPhase clears the value of the "phase" field.
func (m *LineageEntryMutation) ClearPhase() {
	m.phase = nil
	m.clearedFields[lineageentry.FieldPhase] = struct{}{}
}

// PhaseCleared returns if the "phase" field was cleared in this mutation.
func (m *LineageEntryMutation) PhaseCleared() bool {
	_, ok := m.clearedFields[lineageentry.FieldPhase]
	return ok
}

// ResetPhase resets all changes to the "phase" field.
func (m *LineageEntryMutation) ResetPhase() {
	m.phase = nil
	delete(m.clearedFields, lineageentry.FieldPhase)
}

// SetMetadata sets the "metadata" field.
func (m *LineageEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LineageEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the LineageEntry entity.
// If the LineageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LineageEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[lineageentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LineageEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[lineageentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LineageEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, lineageentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *LineageEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LineageEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LineageEntry entity.
// If the LineageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LineageEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LineageEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *LineageEntryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[lineageentry.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *LineageEntryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *LineageEntryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *LineageEntryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the LineageEntryMutation builder.
func (m *LineageEntryMutation) Where(ps ...predicate.LineageEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LineageEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LineageEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LineageEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LineageEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LineageEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LineageEntry).
func (m *LineageEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LineageEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, lineageentry.FieldTaskID)
	}
	if m.kind != nil {
		fields = append(fields, lineageentry.FieldKind)
	}
	if m.ref_id != nil {
		fields = append(fields, lineageentry.FieldRefID)
	}
	if m.phase != nil {
		fields = append(fields, lineageentry.FieldPhase)
	}
	if m.metadata != nil {
		fields = append(fields, lineageentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, lineageentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LineageEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lineageentry.FieldTaskID:
		return m.TaskID()
	case lineageentry.FieldKind:
		return m.Kind()
	case lineageentry.FieldRefID:
		return m.RefID()
	case lineageentry.FieldPhase:
		return m.Phase()
	case lineageentry.FieldMetadata:
		return m.Metadata()
	case lineageentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LineageEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lineageentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case lineageentry.FieldKind:
		return m.OldKind(ctx)
	case lineageentry.FieldRefID:
		return m.OldRefID(ctx)
	case lineageentry.FieldPhase:
		return m.OldPhase(ctx)
	case lineageentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case lineageentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LineageEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineageEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lineageentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case lineageentry.FieldKind:
		v, ok := value.(lineageentry.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case lineageentry.FieldRefID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefID(v)
		return nil
	case lineageentry.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case lineageentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case lineageentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LineageEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LineageEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LineageEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LineageEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LineageEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LineageEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lineageentry.FieldPhase) {
		fields = append(fields, lineageentry.FieldPhase)
	}
	if m.FieldCleared(lineageentry.FieldMetadata) {
		fields = append(fields, lineageentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LineageEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LineageEntryMutation) ClearField(name string) error {
	switch name {
	case lineageentry.FieldPhase:
		m.ClearPhase()
		return nil
	case lineageentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown LineageEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LineageEntryMutation) ResetField(name string) error {
	switch name {
	case lineageentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case lineageentry.FieldKind:
		m.ResetKind()
		return nil
	case lineageentry.FieldRefID:
		m.ResetRefID()
		return nil
	case lineageentry.FieldPhase:
		m.ResetPhase()
		return nil
	case lineageentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case lineageentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LineageEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LineageEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, lineageentry.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LineageEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lineageentry.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LineageEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LineageEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LineageEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, lineageentry.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LineageEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case lineageentry.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LineageEntryMutation) ClearEdge(name string) error {
	switch name {
	case lineageentry.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown LineageEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LineageEntryMutation) ResetEdge(name string) error {
	switch name {
	case lineageentry.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown LineageEntry edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	title                  *string
	status                 *task.Status
	run_mode               *task.RunMode
	metadata               *map[string]interface{}
	exit_reason            *string
	runner_id              *string
	heartbeat_at           *time.Time
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	audit_entries          map[int]struct{}
	removedaudit_entries   map[int]struct{}
	clearedaudit_entries   bool
	lineage_entries        map[int]struct{}
	removedlineage_entries map[int]struct{}
	clearedlineage_entries bool
	checkpoints            map[string]struct{}
	removedcheckpoints     map[string]struct{}
	clearedcheckpoints     bool
	tool_calls             map[string]struct{}
	removedtool_calls      map[string]struct{}
	clearedtool_calls      bool
	done                   bool
	oldValue               func(context.Context) (*Task, error)
	predicates             []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetRunMode sets the "run_mode" field.
func (m *TaskMutation) SetRunMode(tm task.RunMode) {
	m.run_mode = &tm
}

// RunMode returns the value of the "run_mode" field in the mutation.
func (m *TaskMutation) RunMode() (r task.RunMode, exists bool) {
	v := m.run_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldRunMode returns the old "run_mode" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRunMode(ctx context.Context) (v task.RunMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunMode: %w", err)
	}
	return oldValue.RunMode, nil
}

// ResetRunMode resets all changes to the "run_mode" field.
func (m *TaskMutation) ResetRunMode() {
	m.run_mode = nil
}

// SetMetadata sets the "metadata" field.
func (m *TaskMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TaskMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TaskMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[task.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TaskMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[task.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TaskMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, task.FieldMetadata)
}

// SetExitReason sets the "exit_reason" field.
func (m *TaskMutation) SetExitReason(s string) {
	m.exit_reason = &s
}

// ExitReason returns the value of the "exit_reason" field in the mutation.
func (m *TaskMutation) ExitReason() (r string, exists bool) {
	v := m.exit_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldExitReason returns the old "exit_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExitReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitReason: %w", err)
	}
	return oldValue.ExitReason, nil
}

// ClearExitReason clears the value of the "exit_reason" field.
func (m *TaskMutation) ClearExitReason() {
	m.exit_reason = nil
	m.clearedFields[task.FieldExitReason] = struct{}{}
}

// ExitReasonCleared returns if the "exit_reason" field was cleared in this mutation.
func (m *TaskMutation) ExitReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldExitReason]
	return ok
}

// ResetExitReason resets all changes to the "exit_reason" field.
func (m *TaskMutation) ResetExitReason() {
	m.exit_reason = nil
	delete(m.clearedFields, task.FieldExitReason)
}

// SetRunnerID sets the "runner_id" field.
func (m *TaskMutation) SetRunnerID(s string) {
	m.runner_id = &s
}

// RunnerID returns the value of the "runner_id" field in the mutation.
func (m *TaskMutation) RunnerID() (r string, exists bool) {
	v := m.runner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerID returns the old "runner_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRunnerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerID: %w", err)
	}
	return oldValue.RunnerID, nil
}

// ClearRunnerID clears the value of the "runner_id" field.
func (m *TaskMutation) ClearRunnerID() {
	m.runner_id = nil
	m.clearedFields[task.FieldRunnerID] = struct{}{}
}

// RunnerIDCleared returns if the "runner_id" field was cleared in this mutation.
func (m *TaskMutation) RunnerIDCleared() bool {
	_, ok := m.clearedFields[task.FieldRunnerID]
	return ok
}

// ResetRunnerID resets all changes to the "runner_id" field.
func (m *TaskMutation) ResetRunnerID() {
	m.runner_id = nil
	delete(m.clearedFields, task.FieldRunnerID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *TaskMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *TaskMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *TaskMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[task.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *TaskMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, task.FieldHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by ids.
func (m *TaskMutation) AddAuditEntryIDs(ids ...int) {
	if m.audit_entries == nil {
		m.audit_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_entries[ids[i]] = struct{}{}
	}
}

// ClearAuditEntries clears the "audit_entries" edge to the AuditEntry entity.
func (m *TaskMutation) ClearAuditEntries() {
	m.clearedaudit_entries = true
}

// AuditEntriesCleared reports if the "audit_entries" edge to the AuditEntry entity was cleared.
func (m *TaskMutation) AuditEntriesCleared() bool {
	return m.clearedaudit_entries
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to the AuditEntry entity by IDs.
func (m *TaskMutation) RemoveAuditEntryIDs(ids ...int) {
	if m.removedaudit_entries == nil {
		m.removedaudit_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_entries, ids[i])
		m.removedaudit_entries[ids[i]] = struct{}{}
	}
}

// RemovedAuditEntries returns the removed IDs of the "audit_entries" edge to the AuditEntry entity.
func (m *TaskMutation) RemovedAuditEntriesIDs() (ids []int) {
	for id := range m.removedaudit_entries {
		ids = append(ids, id)
	}
	return
}

// AuditEntriesIDs returns the "audit_entries" edge IDs in the mutation.
func (m *TaskMutation) AuditEntriesIDs() (ids []int) {
	for id := range m.audit_entries {
		ids = append(ids, id)
	}
	return
}

// ResetAuditEntries resets all changes to the "audit_entries" edge.
func (m *TaskMutation) ResetAuditEntries() {
	m.audit_entries = nil
	m.clearedaudit_entries = false
	m.removedaudit_entries = nil
}

// AddLineageEntryIDs adds the "lineage_entries" edge to the LineageEntry entity by ids.
func (m *TaskMutation) AddLineageEntryIDs(ids ...int) {
	if m.lineage_entries == nil {
		m.lineage_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.lineage_entries[ids[i]] = struct{}{}
	}
}

// ClearLineageEntries clears the "lineage_entries" edge to the LineageEntry entity.
func (m *TaskMutation) ClearLineageEntries() {
	m.clearedlineage_entries = true
}

// LineageEntriesCleared reports if the "lineage_entries" edge to the LineageEntry entity was cleared.
func (m *TaskMutation) LineageEntriesCleared() bool {
	return m.clearedlineage_entries
}

// RemoveLineageEntryIDs removes the "lineage_entries" edge to the LineageEntry entity by IDs.
func (m *TaskMutation) RemoveLineageEntryIDs(ids ...int) {
	if m.removedlineage_entries == nil {
		m.removedlineage_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lineage_entries, ids[i])
		m.removedlineage_entries[ids[i]] = struct{}{}
	}
}

// RemovedLineageEntries returns the removed IDs of the "lineage_entries" edge to the LineageEntry entity.
func (m *TaskMutation) RemovedLineageEntriesIDs() (ids []int) {
	for id := range m.removedlineage_entries {
		ids = append(ids, id)
	}
	return
}

// LineageEntriesIDs returns the "lineage_entries" edge IDs in the mutation.
func (m *TaskMutation) LineageEntriesIDs() (ids []int) {
	for id := range m.lineage_entries {
		ids = append(ids, id)
	}
	return
}

// ResetLineageEntries resets all changes to the "lineage_entries" edge.
func (m *TaskMutation) ResetLineageEntries() {
	m.lineage_entries = nil
	m.clearedlineage_entries = false
	m.removedlineage_entries = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *TaskMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *TaskMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *TaskMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *TaskMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *TaskMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *TaskMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *TaskMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by ids.
func (m *TaskMutation) AddToolCallIDs(ids ...string) {
	if m.tool_calls == nil {
		m.tool_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_calls[ids[i]] = struct{}{}
	}
}

// ClearToolCalls clears the "tool_calls" edge to the ToolCall entity.
func (m *TaskMutation) ClearToolCalls() {
	m.clearedtool_calls = true
}

// ToolCallsCleared reports if the "tool_calls" edge to the ToolCall entity was cleared.
func (m *TaskMutation) ToolCallsCleared() bool {
	return m.clearedtool_calls
}

// RemoveToolCallIDs removes the "tool_calls" edge to the ToolCall entity by IDs.
func (m *TaskMutation) RemoveToolCallIDs(ids ...string) {
	if m.removedtool_calls == nil {
		m.removedtool_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_calls, ids[i])
		m.removedtool_calls[ids[i]] = struct{}{}
	}
}

// RemovedToolCalls returns the removed IDs of the "tool_calls" edge to the ToolCall entity.
func (m *TaskMutation) RemovedToolCallsIDs() (ids []string) {
	for id := range m.removedtool_calls {
		ids = append(ids, id)
	}
	return
}

// ToolCallsIDs returns the "tool_calls" edge IDs in the mutation.
func (m *TaskMutation) ToolCallsIDs() (ids []string) {
	for id := range m.tool_calls {
		ids = append(ids, id)
	}
	return
}

// ResetToolCalls resets all changes to the "tool_calls" edge.
func (m *TaskMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.clearedtool_calls = false
	m.removedtool_calls = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.run_mode != nil {
		fields = append(fields, task.FieldRunMode)
	}
	if m.metadata != nil {
		fields = append(fields, task.FieldMetadata)
	}
	if m.exit_reason != nil {
		fields = append(fields, task.FieldExitReason)
	}
	if m.runner_id != nil {
		fields = append(fields, task.FieldRunnerID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, task.FieldHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldStatus:
		return m.Status()
	case task.FieldRunMode:
		return m.RunMode()
	case task.FieldMetadata:
		return m.Metadata()
	case task.FieldExitReason:
		return m.ExitReason()
	case task.FieldRunnerID:
		return m.RunnerID()
	case task.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldRunMode:
		return m.OldRunMode(ctx)
	case task.FieldMetadata:
		return m.OldMetadata(ctx)
	case task.FieldExitReason:
		return m.OldExitReason(ctx)
	case task.FieldRunnerID:
		return m.OldRunnerID(ctx)
	case task.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldRunMode:
		v, ok := value.(task.RunMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunMode(v)
		return nil
	case task.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case task.FieldExitReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitReason(v)
		return nil
	case task.FieldRunnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerID(v)
		return nil
	case task.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldMetadata) {
		fields = append(fields, task.FieldMetadata)
	}
	if m.FieldCleared(task.FieldExitReason) {
		fields = append(fields, task.FieldExitReason)
	}
	if m.FieldCleared(task.FieldRunnerID) {
		fields = append(fields, task.FieldRunnerID)
	}
	if m.FieldCleared(task.FieldHeartbeatAt) {
		fields = append(fields, task.FieldHeartbeatAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldMetadata:
		m.ClearMetadata()
		return nil
	case task.FieldExitReason:
		m.ClearExitReason()
		return nil
	case task.FieldRunnerID:
		m.ClearRunnerID()
		return nil
	case task.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldRunMode:
		m.ResetRunMode()
		return nil
	case task.FieldMetadata:
		m.ResetMetadata()
		return nil
	case task.FieldExitReason:
		m.ResetExitReason()
		return nil
	case task.FieldRunnerID:
		m.ResetRunnerID()
		return nil
	case task.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.audit_entries != nil {
		edges = append(edges, task.EdgeAuditEntries)
	}
	if m.lineage_entries != nil {
		edges = append(edges, task.EdgeLineageEntries)
	}
	if m.checkpoints != nil {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.tool_calls != nil {
		edges = append(edges, task.EdgeToolCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.audit_entries))
		for id := range m.audit_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeLineageEntries:
		ids := make([]ent.Value, 0, len(m.lineage_entries))
		for id := range m.lineage_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.tool_calls))
		for id := range m.tool_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedaudit_entries != nil {
		edges = append(edges, task.EdgeAuditEntries)
	}
	if m.removedlineage_entries != nil {
		edges = append(edges, task.EdgeLineageEntries)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.removedtool_calls != nil {
		edges = append(edges, task.EdgeToolCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.removedaudit_entries))
		for id := range m.removedaudit_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeLineageEntries:
		ids := make([]ent.Value, 0, len(m.removedlineage_entries))
		for id := range m.removedlineage_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.removedtool_calls))
		for id := range m.removedtool_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedaudit_entries {
		edges = append(edges, task.EdgeAuditEntries)
	}
	if m.clearedlineage_entries {
		edges = append(edges, task.EdgeLineageEntries)
	}
	if m.clearedcheckpoints {
		edges = append(edges, task.EdgeCheckpoints)
	}
	if m.clearedtool_calls {
		edges = append(edges, task.EdgeToolCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeAuditEntries:
		return m.clearedaudit_entries
	case task.EdgeLineageEntries:
		return m.clearedlineage_entries
	case task.EdgeCheckpoints:
		return m.clearedcheckpoints
	case task.EdgeToolCalls:
		return m.clearedtool_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeAuditEntries:
		m.ResetAuditEntries()
		return nil
	case task.EdgeLineageEntries:
		m.ResetLineageEntries()
		return nil
	case task.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case task.EdgeToolCalls:
		m.ResetToolCalls()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tool           *string
	status         *toolcall.Status
	error_category *string
	endpoint       *string
	output_kind    *string
	model_id       *string
	provider       *toolcall.Provider
	mock_used      *bool
	output_text    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*ToolCall, error)
	predicates     []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ToolCallMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ToolCallMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ToolCallMutation) ResetTaskID() {
	m.task = nil
}

// SetTool sets the "tool" field.
func (m *ToolCallMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *ToolCallMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ResetTool resets all changes to the "tool" field.
func (m *ToolCallMutation) ResetTool() {
	m.tool = nil
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(t toolcall.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r toolcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v toolcall.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCategory sets the "error_category" field.
func (m *ToolCallMutation) SetErrorCategory(s string) {
	m.error_category = &s
}

// ErrorCategory returns the value of the "error_category" field in the mutation.
func (m *ToolCallMutation) ErrorCategory() (r string, exists bool) {
	v := m.error_category
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCategory returns the old "error_category" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldErrorCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCategory: %w", err)
	}
	return oldValue.ErrorCategory, nil
}

// ClearErrorCategory clears the value of the "error_category" field.
func (m *ToolCallMutation) ClearErrorCategory() {
	m.error_category = nil
	m.clearedFields[toolcall.FieldErrorCategory] = struct{}{}
}

// ErrorCategoryCleared returns if the "error_category" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorCategoryCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldErrorCategory]
	return ok
}

// ResetErrorCategory resets all changes to the "error_category" field.
func (m *ToolCallMutation) ResetErrorCategory() {
	m.error_category = nil
	delete(m.clearedFields, toolcall.FieldErrorCategory)
}

// SetEndpoint sets the "endpoint" field.
func (m *ToolCallMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *ToolCallMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ClearEndpoint clears the value of the "endpoint" field.
func (m *ToolCallMutation) ClearEndpoint() {
	m.endpoint = nil
	m.clearedFields[toolcall.FieldEndpoint] = struct{}{}
}

// EndpointCleared returns if the "endpoint" field was cleared in this mutation.
func (m *ToolCallMutation) EndpointCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldEndpoint]
	return ok
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *ToolCallMutation) ResetEndpoint() {
	m.endpoint = nil
	delete(m.clearedFields, toolcall.FieldEndpoint)
}

// SetOutputKind sets the "output_kind" field.
func (m *ToolCallMutation) SetOutputKind(s string) {
	m.output_kind = &s
}

// OutputKind returns the value of the "output_kind" field in the mutation.
func (m *ToolCallMutation) OutputKind() (r string, exists bool) {
	v := m.output_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputKind returns the old "output_kind" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldOutputKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputKind: %w", err)
	}
	return oldValue.OutputKind, nil
}

// ClearOutputKind clears the value of the "output_kind" field.
func (m *ToolCallMutation) ClearOutputKind() {
	m.output_kind = nil
	m.clearedFields[toolcall.FieldOutputKind] = struct{}{}
}

// OutputKindCleared returns if the "output_kind" field was cleared in this mutation.
func (m *ToolCallMutation) OutputKindCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldOutputKind]
	return ok
}

// ResetOutputKind resets all changes to the "output_kind" field.
func (m *ToolCallMutation) ResetOutputKind() {
	m.output_kind = nil
	delete(m.clearedFields, toolcall.FieldOutputKind)
}

// SetModelID sets the "model_id" field.
func (m *ToolCallMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *ToolCallMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *ToolCallMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[toolcall.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *ToolCallMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *ToolCallMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, toolcall.FieldModelID)
}

// SetProvider sets the "provider" field.
func (m *ToolCallMutation) SetProvider(t toolcall.Provider) {
	m.provider = &t
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ToolCallMutation) Provider() (r toolcall.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldProvider(ctx context.Context) (v toolcall.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *ToolCallMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[toolcall.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *ToolCallMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *ToolCallMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, toolcall.FieldProvider)
}

// SetMockUsed sets the "mock_used" field.
func (m *ToolCallMutation) SetMockUsed(b bool) {
	m.mock_used = &b
}

// MockUsed returns the value of the "mock_used" field in the mutation.
func (m *ToolCallMutation) MockUsed() (r bool, exists bool) {
	v := m.mock_used
	if v == nil {
		return
	}
	return *v, true
}

// OldMockUsed returns the old "mock_used" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldMockUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMockUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMockUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMockUsed: %w", err)
	}
	return oldValue.MockUsed, nil
}

// ResetMockUsed resets all changes to the "mock_used" field.
func (m *ToolCallMutation) ResetMockUsed() {
	m.mock_used = nil
}

// SetOutputText sets the "output_text" field.
func (m *ToolCallMutation) SetOutputText(s string) {
	m.output_text = &s
}

// OutputText returns the value of the "output_text" field in the mutation.
func (m *ToolCallMutation) OutputText() (r string, exists bool) {
	v := m.output_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputText returns the old "output_text" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldOutputText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputText: %w", err)
	}
	return oldValue.OutputText, nil
}

// ClearOutputText clears the value of the "output_text" field.
func (m *ToolCallMutation) ClearOutputText() {
	m.output_text = nil
	m.clearedFields[toolcall.FieldOutputText] = struct{}{}
}

// OutputTextCleared returns if the "output_text" field was cleared in this mutation.
func (m *ToolCallMutation) OutputTextCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldOutputText]
	return ok
}

// ResetOutputText resets all changes to the "output_text" field.
func (m *ToolCallMutation) ResetOutputText() {
	m.output_text = nil
	delete(m.clearedFields, toolcall.FieldOutputText)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ToolCallMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[toolcall.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ToolCallMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ToolCallMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ToolCallMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task != nil {
		fields = append(fields, toolcall.FieldTaskID)
	}
	if m.tool != nil {
		fields = append(fields, toolcall.FieldTool)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.error_category != nil {
		fields = append(fields, toolcall.FieldErrorCategory)
	}
	if m.endpoint != nil {
		fields = append(fields, toolcall.FieldEndpoint)
	}
	if m.output_kind != nil {
		fields = append(fields, toolcall.FieldOutputKind)
	}
	if m.model_id != nil {
		fields = append(fields, toolcall.FieldModelID)
	}
	if m.provider != nil {
		fields = append(fields, toolcall.FieldProvider)
	}
	if m.mock_used != nil {
		fields = append(fields, toolcall.FieldMockUsed)
	}
	if m.output_text != nil {
		fields = append(fields, toolcall.FieldOutputText)
	}
	if m.created_at != nil {
		fields = append(fields, toolcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldTaskID:
		return m.TaskID()
	case toolcall.FieldTool:
		return m.Tool()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldErrorCategory:
		return m.ErrorCategory()
	case toolcall.FieldEndpoint:
		return m.Endpoint()
	case toolcall.FieldOutputKind:
		return m.OutputKind()
	case toolcall.FieldModelID:
		return m.ModelID()
	case toolcall.FieldProvider:
		return m.Provider()
	case toolcall.FieldMockUsed:
		return m.MockUsed()
	case toolcall.FieldOutputText:
		return m.OutputText()
	case toolcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldTaskID:
		return m.OldTaskID(ctx)
	case toolcall.FieldTool:
		return m.OldTool(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldErrorCategory:
		return m.OldErrorCategory(ctx)
	case toolcall.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case toolcall.FieldOutputKind:
		return m.OldOutputKind(ctx)
	case toolcall.FieldModelID:
		return m.OldModelID(ctx)
	case toolcall.FieldProvider:
		return m.OldProvider(ctx)
	case toolcall.FieldMockUsed:
		return m.OldMockUsed(ctx)
	case toolcall.FieldOutputText:
		return m.OldOutputText(ctx)
	case toolcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case toolcall.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(toolcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldErrorCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCategory(v)
		return nil
	case toolcall.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case toolcall.FieldOutputKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputKind(v)
		return nil
	case toolcall.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case toolcall.FieldProvider:
		v, ok := value.(toolcall.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case toolcall.FieldMockUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMockUsed(v)
		return nil
	case toolcall.FieldOutputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputText(v)
		return nil
	case toolcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldErrorCategory) {
		fields = append(fields, toolcall.FieldErrorCategory)
	}
	if m.FieldCleared(toolcall.FieldEndpoint) {
		fields = append(fields, toolcall.FieldEndpoint)
	}
	if m.FieldCleared(toolcall.FieldOutputKind) {
		fields = append(fields, toolcall.FieldOutputKind)
	}
	if m.FieldCleared(toolcall.FieldModelID) {
		fields = append(fields, toolcall.FieldModelID)
	}
	if m.FieldCleared(toolcall.FieldProvider) {
		fields = append(fields, toolcall.FieldProvider)
	}
	if m.FieldCleared(toolcall.FieldOutputText) {
		fields = append(fields, toolcall.FieldOutputText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldErrorCategory:
		m.ClearErrorCategory()
		return nil
	case toolcall.FieldEndpoint:
		m.ClearEndpoint()
		return nil
	case toolcall.FieldOutputKind:
		m.ClearOutputKind()
		return nil
	case toolcall.FieldModelID:
		m.ClearModelID()
		return nil
	case toolcall.FieldProvider:
		m.ClearProvider()
		return nil
	case toolcall.FieldOutputText:
		m.ClearOutputText()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldTaskID:
		m.ResetTaskID()
		return nil
	case toolcall.FieldTool:
		m.ResetTool()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldErrorCategory:
		m.ResetErrorCategory()
		return nil
	case toolcall.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case toolcall.FieldOutputKind:
		m.ResetOutputKind()
		return nil
	case toolcall.FieldModelID:
		m.ResetModelID()
		return nil
	case toolcall.FieldProvider:
		m.ResetProvider()
		return nil
	case toolcall.FieldMockUsed:
		m.ResetMockUsed()
		return nil
	case toolcall.FieldOutputText:
		m.ResetOutputText()
		return nil
	case toolcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, toolcall.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolcall.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, toolcall.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	switch name {
	case toolcall.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	switch name {
	case toolcall.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	switch name {
	case toolcall.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ToolCall edge %s", name)
}

// ToolLedgerEntryMutation represents an operation that mutates the ToolLedgerEntry nodes in the graph.
type ToolLedgerEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	task_id       *string
	fingerprint   *string
	result        *map[string]interface{}
	exit_code     *int
	addexit_code  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ToolLedgerEntry, error)
	predicates    []predicate.ToolLedgerEntry
}

var _ ent.Mutation = (*ToolLedgerEntryMutation)(nil)

// toolledgerentryOption allows management of the mutation configuration using functional options.
type toolledgerentryOption func(*ToolLedgerEntryMutation)

// newToolLedgerEntryMutation creates new mutation for the ToolLedgerEntry entity.
func newToolLedgerEntryMutation(c config, op Op, opts ...toolledgerentryOption) *ToolLedgerEntryMutation {
	m := &ToolLedgerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeToolLedgerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolLedgerEntryID sets the ID field of the mutation.
func withToolLedgerEntryID(id int) toolledgerentryOption {
	return func(m *ToolLedgerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolLedgerEntry
		)
		m.oldValue = func(ctx context.Context) (*ToolLedgerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolLedgerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolLedgerEntry sets the old ToolLedgerEntry of the mutation.
func withToolLedgerEntry(node *ToolLedgerEntry) toolledgerentryOption {
	return func(m *ToolLedgerEntryMutation) {
		m.oldValue = func(context.Context) (*ToolLedgerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolLedgerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolLedgerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolLedgerEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolLedgerEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolLedgerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ToolLedgerEntryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ToolLedgerEntryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ToolLedgerEntry entity.
// If the ToolLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolLedgerEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ToolLedgerEntryMutation) ResetTaskID() {
	m.task_id = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *ToolLedgerEntryMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *ToolLedgerEntryMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the ToolLedgerEntry entity.
// If the ToolLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolLedgerEntryMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *ToolLedgerEntryMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetResult sets the "result" field.
func (m *ToolLedgerEntryMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ToolLedgerEntryMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ToolLedgerEntry entity.
// If the ToolLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolLedgerEntryMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ToolLedgerEntryMutation) ClearResult() {
	m.result = nil
	m.clearedFields[toolledgerentry.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ToolLedgerEntryMutation) ResultCleared() bool {
	_, ok := m.clearedFields[toolledgerentry.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ToolLedgerEntryMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, toolledgerentry.FieldResult)
}

// SetExitCode sets the "exit_code" field.
func (m *ToolLedgerEntryMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *ToolLedgerEntryMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the ToolLedgerEntry entity.
// If the ToolLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolLedgerEntryMutation) OldExitCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *ToolLedgerEntryMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *ToolLedgerEntryMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *ToolLedgerEntryMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolLedgerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolLedgerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolLedgerEntry entity.
// If the ToolLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolLedgerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolLedgerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ToolLedgerEntryMutation builder.
func (m *ToolLedgerEntryMutation) Where(ps ...predicate.ToolLedgerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolLedgerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolLedgerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolLedgerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolLedgerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolLedgerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolLedgerEntry).
func (m *ToolLedgerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolLedgerEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task_id != nil {
		fields = append(fields, toolledgerentry.FieldTaskID)
	}
	if m.fingerprint != nil {
		fields = append(fields, toolledgerentry.FieldFingerprint)
	}
	if m.result != nil {
		fields = append(fields, toolledgerentry.FieldResult)
	}
	if m.exit_code != nil {
		fields = append(fields, toolledgerentry.FieldExitCode)
	}
	if m.created_at != nil {
		fields = append(fields, toolledgerentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolLedgerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolledgerentry.FieldTaskID:
		return m.TaskID()
	case toolledgerentry.FieldFingerprint:
		return m.Fingerprint()
	case toolledgerentry.FieldResult:
		return m.Result()
	case toolledgerentry.FieldExitCode:
		return m.ExitCode()
	case toolledgerentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolLedgerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolledgerentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case toolledgerentry.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case toolledgerentry.FieldResult:
		return m.OldResult(ctx)
	case toolledgerentry.FieldExitCode:
		return m.OldExitCode(ctx)
	case toolledgerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolLedgerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolLedgerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolledgerentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case toolledgerentry.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case toolledgerentry.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case toolledgerentry.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case toolledgerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolLedgerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolLedgerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addexit_code != nil {
		fields = append(fields, toolledgerentry.FieldExitCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolLedgerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolledgerentry.FieldExitCode:
		return m.AddedExitCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolLedgerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolledgerentry.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	}
	return fmt.Errorf("unknown ToolLedgerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolLedgerEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolledgerentry.FieldResult) {
		fields = append(fields, toolledgerentry.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolLedgerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolLedgerEntryMutation) ClearField(name string) error {
	switch name {
	case toolledgerentry.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown ToolLedgerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolLedgerEntryMutation) ResetField(name string) error {
	switch name {
	case toolledgerentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case toolledgerentry.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case toolledgerentry.FieldResult:
		m.ResetResult()
		return nil
	case toolledgerentry.FieldExitCode:
		m.ResetExitCode()
		return nil
	case toolledgerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolLedgerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolLedgerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolLedgerEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolLedgerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolLedgerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolLedgerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolLedgerEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolLedgerEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolLedgerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolLedgerEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolLedgerEntry edge %s", name)
}
