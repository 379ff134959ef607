// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wilhg/toolgate/internal/ent/callrecord"
)

// CallRecordCreate is the builder for creating a CallRecord entity.
type CallRecordCreate struct {
	config
	mutation *CallRecordMutation
	hooks    []Hook
}

// SetCallID sets the "call_id" field.
func (_c *CallRecordCreate) SetCallID(v string) *CallRecordCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetContextID sets the "context_id" field.
func (_c *CallRecordCreate) SetContextID(v string) *CallRecordCreate {
	_c.mutation.SetContextID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *CallRecordCreate) SetSeq(v int64) *CallRecordCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetCallerID sets the "caller_id" field.
func (_c *CallRecordCreate) SetCallerID(v string) *CallRecordCreate {
	_c.mutation.SetCallerID(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *CallRecordCreate) SetTool(v string) *CallRecordCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *CallRecordCreate) SetArguments(v map[string]interface{}) *CallRecordCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *CallRecordCreate) SetResult(v map[string]interface{}) *CallRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *CallRecordCreate) SetError(v map[string]interface{}) *CallRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CallRecordCreate) SetStartedAt(v time.Time) *CallRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *CallRecordCreate) SetEndedAt(v time.Time) *CallRecordCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallRecordCreate) SetCreatedAt(v time.Time) *CallRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableCreatedAt(v *time.Time) *CallRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CallRecordMutation object of the builder.
func (_c *CallRecordCreate) Mutation() *CallRecordMutation {
	return _c.mutation
}

// Save creates the CallRecord in the database.
func (_c *CallRecordCreate) Save(ctx context.Context) (*CallRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallRecordCreate) SaveX(ctx context.Context) *CallRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := callrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallRecordCreate) check() error {
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "CallRecord.call_id"`)}
	}
	if v, ok := _c.mutation.CallID(); ok {
		if err := callrecord.CallIDValidator(v); err != nil {
			return &ValidationError{Name: "call_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.call_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextID(); !ok {
		return &ValidationError{Name: "context_id", err: errors.New(`ent: missing required field "CallRecord.context_id"`)}
	}
	if v, ok := _c.mutation.ContextID(); ok {
		if err := callrecord.ContextIDValidator(v); err != nil {
			return &ValidationError{Name: "context_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.context_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "CallRecord.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := callrecord.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "CallRecord.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CallerID(); !ok {
		return &ValidationError{Name: "caller_id", err: errors.New(`ent: missing required field "CallRecord.caller_id"`)}
	}
	if v, ok := _c.mutation.CallerID(); ok {
		if err := callrecord.CallerIDValidator(v); err != nil {
			return &ValidationError{Name: "caller_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.caller_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "CallRecord.tool"`)}
	}
	if v, ok := _c.mutation.Tool(); ok {
		if err := callrecord.ToolValidator(v); err != nil {
			return &ValidationError{Name: "tool", err: fmt.Errorf(`ent: validator failed for field "CallRecord.tool": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CallRecord.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "CallRecord.ended_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallRecord.created_at"`)}
	}
	return nil
}

func (_c *CallRecordCreate) sqlSave(ctx context.Context) (*CallRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallRecordCreate) createSpec() (*CallRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CallRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callrecord.Table, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(callrecord.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.ContextID(); ok {
		_spec.SetField(callrecord.FieldContextID, field.TypeString, value)
		_node.ContextID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(callrecord.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.CallerID(); ok {
		_spec.SetField(callrecord.FieldCallerID, field.TypeString, value)
		_node.CallerID = value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(callrecord.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(callrecord.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(callrecord.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(callrecord.FieldError, field.TypeJSON, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(callrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(callrecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(callrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CallRecordCreateBulk is the builder for creating many CallRecord entities in bulk.
type CallRecordCreateBulk struct {
	config
	err      error
	builders []*CallRecordCreate
}

// Save creates the CallRecord entities in the database.
func (_c *CallRecordCreateBulk) Save(ctx context.Context) ([]*CallRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CallRecordCreateBulk) SaveX(ctx context.Context) []*CallRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
