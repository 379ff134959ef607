// Package ledger defines the append-only record of tool invocation attempts.
// One ledger belongs to one invocation context (a chat exchange, a
// conversation thread); every attempt, permitted or denied, lands here.
package ledger

import (
	"context"
	"time"

	"github.com/wilhg/toolgate/pkg/errmodel"
)

// Record captures one invocation attempt. Immutable after append.
// Exactly one of Result/Error is populated.
type Record struct {
	CallID    string          `json:"call_id"`
	CallerID  string          `json:"caller_id"`
	Tool      string          `json:"tool_name"`
	Arguments map[string]any  `json:"arguments,omitempty"`
	Result    map[string]any  `json:"result,omitempty"`
	Error     *errmodel.Error `json:"error,omitempty"`
	StartedAt time.Time       `json:"start_time"`
	EndedAt   time.Time       `json:"end_time"`
	// Seq is assigned by durable ledgers on append; 0 until then.
	Seq int64 `json:"-"`
}

// Succeeded reports whether the attempt produced a result.
func (r Record) Succeeded() bool { return r.Error == nil }

// Denied reports whether the attempt was refused by policy.
func (r Record) Denied() bool {
	return r.Error != nil && r.Error.Category == errmodel.CategoryPolicy
}

// Validate checks the record invariants before append.
func (r Record) Validate() error {
	if r.CallID == "" {
		return errmodel.Validation("missing_fields", "call_id required", nil)
	}
	if r.Tool == "" {
		return errmodel.Validation("missing_fields", "tool_name required", nil)
	}
	hasResult := r.Result != nil
	hasError := r.Error != nil
	if hasResult == hasError {
		return errmodel.Validation("bad_record", "exactly one of result/error must be set", map[string]any{"call_id": r.CallID})
	}
	if r.EndedAt.Before(r.StartedAt) {
		return errmodel.Validation("bad_record", "end_time before start_time", map[string]any{"call_id": r.CallID})
	}
	return nil
}

// Ledger is the append-only store of Records for one context.
// Append assigns the sequence and must be atomic with respect to other
// appends on the same ledger; All returns records in append order and a
// reader never observes a partially written record.
type Ledger interface {
	Append(ctx context.Context, r Record) (Record, error)
	All(ctx context.Context) ([]Record, error)
}
