// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wilhg/toolgate/internal/ent/callrecord"
	"github.com/wilhg/toolgate/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	callrecordFields := schema.CallRecord{}.Fields()
	_ = callrecordFields
	// callrecordDescCallID is the schema descriptor for call_id field.
	callrecordDescCallID := callrecordFields[0].Descriptor()
	// callrecord.CallIDValidator is a validator for the "call_id" field. It is called by the builders before save.
	callrecord.CallIDValidator = callrecordDescCallID.Validators[0].(func(string) error)
	// callrecordDescContextID is the schema descriptor for context_id field.
	callrecordDescContextID := callrecordFields[1].Descriptor()
	// callrecord.ContextIDValidator is a validator for the "context_id" field. It is called by the builders before save.
	callrecord.ContextIDValidator = callrecordDescContextID.Validators[0].(func(string) error)
	// callrecordDescSeq is the schema descriptor for seq field.
	callrecordDescSeq := callrecordFields[2].Descriptor()
	// callrecord.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	callrecord.SeqValidator = callrecordDescSeq.Validators[0].(func(int64) error)
	// callrecordDescCallerID is the schema descriptor for caller_id field.
	callrecordDescCallerID := callrecordFields[3].Descriptor()
	// callrecord.CallerIDValidator is a validator for the "caller_id" field. It is called by the builders before save.
	callrecord.CallerIDValidator = callrecordDescCallerID.Validators[0].(func(string) error)
	// callrecordDescTool is the schema descriptor for tool field.
	callrecordDescTool := callrecordFields[4].Descriptor()
	// callrecord.ToolValidator is a validator for the "tool" field. It is called by the builders before save.
	callrecord.ToolValidator = callrecordDescTool.Validators[0].(func(string) error)
	// callrecordDescCreatedAt is the schema descriptor for created_at field.
	callrecordDescCreatedAt := callrecordFields[10].Descriptor()
	// callrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	callrecord.DefaultCreatedAt = callrecordDescCreatedAt.Default.(func() time.Time)
}
