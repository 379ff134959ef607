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
	"github.com/wilhg/toolgate/internal/ent/callrecord"
	"github.com/wilhg/toolgate/internal/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCallRecord = "CallRecord"
)

// CallRecordMutation represents an operation that mutates the CallRecord nodes in the graph.
type CallRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	call_id       *string
	context_id    *string
	seq           *int64
	addseq        *int64
	caller_id     *string
	tool          *string
	arguments     *map[string]interface{}
	result        *map[string]interface{}
	error         *map[string]interface{}
	started_at    *time.Time
	ended_at      *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CallRecord, error)
	predicates    []predicate.CallRecord
}

var _ ent.Mutation = (*CallRecordMutation)(nil)

// callrecordOption allows management of the mutation configuration using functional options.
type callrecordOption func(*CallRecordMutation)

// newCallRecordMutation creates new mutation for the CallRecord entity.
func newCallRecordMutation(c config, op Op, opts ...callrecordOption) *CallRecordMutation {
	m := &CallRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCallRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallRecordID sets the ID field of the mutation.
func withCallRecordID(id int) callrecordOption {
	return func(m *CallRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CallRecord
		)
		m.oldValue = func(ctx context.Context) (*CallRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallRecord sets the old CallRecord of the mutation.
func withCallRecord(node *CallRecord) callrecordOption {
	return func(m *CallRecordMutation) {
		m.oldValue = func(context.Context) (*CallRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *CallRecordMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *CallRecordMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *CallRecordMutation) ResetCallID() {
	m.call_id = nil
}

// SetContextID sets the "context_id" field.
func (m *CallRecordMutation) SetContextID(s string) {
	m.context_id = &s
}

// ContextID returns the value of the "context_id" field in the mutation.
func (m *CallRecordMutation) ContextID() (r string, exists bool) {
	v := m.context_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContextID returns the old "context_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldContextID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextID: %w", err)
	}
	return oldValue.ContextID, nil
}

// ResetContextID resets all changes to the "context_id" field.
func (m *CallRecordMutation) ResetContextID() {
	m.context_id = nil
}

// SetSeq sets the "seq" field.
func (m *CallRecordMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *CallRecordMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *CallRecordMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *CallRecordMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *CallRecordMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetCallerID sets the "caller_id" field.
func (m *CallRecordMutation) SetCallerID(s string) {
	m.caller_id = &s
}

// CallerID returns the value of the "caller_id" field in the mutation.
func (m *CallRecordMutation) CallerID() (r string, exists bool) {
	v := m.caller_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerID returns the old "caller_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCallerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerID: %w", err)
	}
	return oldValue.CallerID, nil
}

// ResetCallerID resets all changes to the "caller_id" field.
func (m *CallRecordMutation) ResetCallerID() {
	m.caller_id = nil
}

// SetTool sets the "tool" field.
func (m *CallRecordMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *CallRecordMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldTool(ctx context.Context) (v string, err error) {
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
func (m *CallRecordMutation) ResetTool() {
	m.tool = nil
}

// SetArguments sets the "arguments" field.
func (m *CallRecordMutation) SetArguments(value map[string]interface{}) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *CallRecordMutation) Arguments() (r map[string]interface{}, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *CallRecordMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[callrecord.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *CallRecordMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *CallRecordMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, callrecord.FieldArguments)
}

// SetResult sets the "result" field.
func (m *CallRecordMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *CallRecordMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *CallRecordMutation) ClearResult() {
	m.result = nil
	m.clearedFields[callrecord.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *CallRecordMutation) ResultCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *CallRecordMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, callrecord.FieldResult)
}

// SetError sets the "error" field.
func (m *CallRecordMutation) SetError(value map[string]interface{}) {
	m.error = &value
}

// Error returns the value of the "error" field in the mutation.
func (m *CallRecordMutation) Error() (r map[string]interface{}, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldError(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *CallRecordMutation) ClearError() {
	m.error = nil
	m.clearedFields[callrecord.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *CallRecordMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *CallRecordMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, callrecord.FieldError)
}

// SetStartedAt sets the "started_at" field.
func (m *CallRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CallRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
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

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CallRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *CallRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *CallRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *CallRecordMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CallRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CallRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CallRecordMutation builder.
func (m *CallRecordMutation) Where(ps ...predicate.CallRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallRecord).
func (m *CallRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.call_id != nil {
		fields = append(fields, callrecord.FieldCallID)
	}
	if m.context_id != nil {
		fields = append(fields, callrecord.FieldContextID)
	}
	if m.seq != nil {
		fields = append(fields, callrecord.FieldSeq)
	}
	if m.caller_id != nil {
		fields = append(fields, callrecord.FieldCallerID)
	}
	if m.tool != nil {
		fields = append(fields, callrecord.FieldTool)
	}
	if m.arguments != nil {
		fields = append(fields, callrecord.FieldArguments)
	}
	if m.result != nil {
		fields = append(fields, callrecord.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, callrecord.FieldError)
	}
	if m.started_at != nil {
		fields = append(fields, callrecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, callrecord.FieldEndedAt)
	}
	if m.created_at != nil {
		fields = append(fields, callrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callrecord.FieldCallID:
		return m.CallID()
	case callrecord.FieldContextID:
		return m.ContextID()
	case callrecord.FieldSeq:
		return m.Seq()
	case callrecord.FieldCallerID:
		return m.CallerID()
	case callrecord.FieldTool:
		return m.Tool()
	case callrecord.FieldArguments:
		return m.Arguments()
	case callrecord.FieldResult:
		return m.Result()
	case callrecord.FieldError:
		return m.Error()
	case callrecord.FieldStartedAt:
		return m.StartedAt()
	case callrecord.FieldEndedAt:
		return m.EndedAt()
	case callrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callrecord.FieldCallID:
		return m.OldCallID(ctx)
	case callrecord.FieldContextID:
		return m.OldContextID(ctx)
	case callrecord.FieldSeq:
		return m.OldSeq(ctx)
	case callrecord.FieldCallerID:
		return m.OldCallerID(ctx)
	case callrecord.FieldTool:
		return m.OldTool(ctx)
	case callrecord.FieldArguments:
		return m.OldArguments(ctx)
	case callrecord.FieldResult:
		return m.OldResult(ctx)
	case callrecord.FieldError:
		return m.OldError(ctx)
	case callrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case callrecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case callrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callrecord.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case callrecord.FieldContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextID(v)
		return nil
	case callrecord.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case callrecord.FieldCallerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerID(v)
		return nil
	case callrecord.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case callrecord.FieldArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case callrecord.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case callrecord.FieldError:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case callrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case callrecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case callrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallRecordMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, callrecord.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case callrecord.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case callrecord.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown CallRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callrecord.FieldArguments) {
		fields = append(fields, callrecord.FieldArguments)
	}
	if m.FieldCleared(callrecord.FieldResult) {
		fields = append(fields, callrecord.FieldResult)
	}
	if m.FieldCleared(callrecord.FieldError) {
		fields = append(fields, callrecord.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallRecordMutation) ClearField(name string) error {
	switch name {
	case callrecord.FieldArguments:
		m.ClearArguments()
		return nil
	case callrecord.FieldResult:
		m.ClearResult()
		return nil
	case callrecord.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown CallRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallRecordMutation) ResetField(name string) error {
	switch name {
	case callrecord.FieldCallID:
		m.ResetCallID()
		return nil
	case callrecord.FieldContextID:
		m.ResetContextID()
		return nil
	case callrecord.FieldSeq:
		m.ResetSeq()
		return nil
	case callrecord.FieldCallerID:
		m.ResetCallerID()
		return nil
	case callrecord.FieldTool:
		m.ResetTool()
		return nil
	case callrecord.FieldArguments:
		m.ResetArguments()
		return nil
	case callrecord.FieldResult:
		m.ResetResult()
		return nil
	case callrecord.FieldError:
		m.ResetError()
		return nil
	case callrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case callrecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case callrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CallRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CallRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CallRecord edge %s", name)
}
