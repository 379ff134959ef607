// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wilhg/toolgate/internal/ent/callrecord"
	"github.com/wilhg/toolgate/internal/ent/predicate"
)

// CallRecordUpdate is the builder for updating CallRecord entities.
type CallRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CallRecordMutation
}

// Where appends a list predicates to the CallRecordUpdate builder.
func (_u *CallRecordUpdate) Where(ps ...predicate.CallRecord) *CallRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *CallRecordUpdate) SetCallID(v string) *CallRecordUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableCallID(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *CallRecordUpdate) SetContextID(v string) *CallRecordUpdate {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableContextID(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *CallRecordUpdate) SetSeq(v int64) *CallRecordUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableSeq(v *int64) *CallRecordUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *CallRecordUpdate) AddSeq(v int64) *CallRecordUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetCallerID sets the "caller_id" field.
func (_u *CallRecordUpdate) SetCallerID(v string) *CallRecordUpdate {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableCallerID(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *CallRecordUpdate) SetTool(v string) *CallRecordUpdate {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableTool(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *CallRecordUpdate) SetArguments(v map[string]interface{}) *CallRecordUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *CallRecordUpdate) ClearArguments() *CallRecordUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetResult sets the "result" field.
func (_u *CallRecordUpdate) SetResult(v map[string]interface{}) *CallRecordUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *CallRecordUpdate) ClearResult() *CallRecordUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *CallRecordUpdate) SetError(v map[string]interface{}) *CallRecordUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *CallRecordUpdate) ClearError() *CallRecordUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CallRecordUpdate) SetStartedAt(v time.Time) *CallRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableStartedAt(v *time.Time) *CallRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallRecordUpdate) SetEndedAt(v time.Time) *CallRecordUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableEndedAt(v *time.Time) *CallRecordUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// Mutation returns the CallRecordMutation object of the builder.
func (_u *CallRecordUpdate) Mutation() *CallRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallRecordUpdate) check() error {
	if v, ok := _u.mutation.CallID(); ok {
		if err := callrecord.CallIDValidator(v); err != nil {
			return &ValidationError{Name: "call_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.call_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextID(); ok {
		if err := callrecord.ContextIDValidator(v); err != nil {
			return &ValidationError{Name: "context_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.context_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seq(); ok {
		if err := callrecord.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "CallRecord.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CallerID(); ok {
		if err := callrecord.CallerIDValidator(v); err != nil {
			return &ValidationError{Name: "caller_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.caller_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tool(); ok {
		if err := callrecord.ToolValidator(v); err != nil {
			return &ValidationError{Name: "tool", err: fmt.Errorf(`ent: validator failed for field "CallRecord.tool": %w`, err)}
		}
	}
	return nil
}

func (_u *CallRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(callrecord.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(callrecord.FieldContextID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(callrecord.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(callrecord.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(callrecord.FieldCallerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(callrecord.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(callrecord.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(callrecord.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(callrecord.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(callrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(callrecord.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(callrecord.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(callrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(callrecord.FieldEndedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallRecordUpdateOne is the builder for updating a single CallRecord entity.
type CallRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallRecordMutation
}

// SetCallID sets the "call_id" field.
func (_u *CallRecordUpdateOne) SetCallID(v string) *CallRecordUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableCallID(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *CallRecordUpdateOne) SetContextID(v string) *CallRecordUpdateOne {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableContextID(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *CallRecordUpdateOne) SetSeq(v int64) *CallRecordUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableSeq(v *int64) *CallRecordUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *CallRecordUpdateOne) AddSeq(v int64) *CallRecordUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetCallerID sets the "caller_id" field.
func (_u *CallRecordUpdateOne) SetCallerID(v string) *CallRecordUpdateOne {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableCallerID(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *CallRecordUpdateOne) SetTool(v string) *CallRecordUpdateOne {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableTool(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *CallRecordUpdateOne) SetArguments(v map[string]interface{}) *CallRecordUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *CallRecordUpdateOne) ClearArguments() *CallRecordUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetResult sets the "result" field.
func (_u *CallRecordUpdateOne) SetResult(v map[string]interface{}) *CallRecordUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *CallRecordUpdateOne) ClearResult() *CallRecordUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *CallRecordUpdateOne) SetError(v map[string]interface{}) *CallRecordUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *CallRecordUpdateOne) ClearError() *CallRecordUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CallRecordUpdateOne) SetStartedAt(v time.Time) *CallRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableStartedAt(v *time.Time) *CallRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallRecordUpdateOne) SetEndedAt(v time.Time) *CallRecordUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableEndedAt(v *time.Time) *CallRecordUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// Mutation returns the CallRecordMutation object of the builder.
func (_u *CallRecordUpdateOne) Mutation() *CallRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallRecordUpdate builder.
func (_u *CallRecordUpdateOne) Where(ps ...predicate.CallRecord) *CallRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallRecordUpdateOne) Select(field string, fields ...string) *CallRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallRecord entity.
func (_u *CallRecordUpdateOne) Save(ctx context.Context) (*CallRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallRecordUpdateOne) SaveX(ctx context.Context) *CallRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallRecordUpdateOne) check() error {
	if v, ok := _u.mutation.CallID(); ok {
		if err := callrecord.CallIDValidator(v); err != nil {
			return &ValidationError{Name: "call_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.call_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextID(); ok {
		if err := callrecord.ContextIDValidator(v); err != nil {
			return &ValidationError{Name: "context_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.context_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Seq(); ok {
		if err := callrecord.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "CallRecord.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CallerID(); ok {
		if err := callrecord.CallerIDValidator(v); err != nil {
			return &ValidationError{Name: "caller_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.caller_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tool(); ok {
		if err := callrecord.ToolValidator(v); err != nil {
			return &ValidationError{Name: "tool", err: fmt.Errorf(`ent: validator failed for field "CallRecord.tool": %w`, err)}
		}
	}
	return nil
}

func (_u *CallRecordUpdateOne) sqlSave(ctx context.Context) (_node *CallRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callrecord.FieldID)
		for _, f := range fields {
			if !callrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(callrecord.FieldCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(callrecord.FieldContextID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(callrecord.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(callrecord.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(callrecord.FieldCallerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(callrecord.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(callrecord.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(callrecord.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(callrecord.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(callrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(callrecord.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(callrecord.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(callrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(callrecord.FieldEndedAt, field.TypeTime, value)
	}
	_node = &CallRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
