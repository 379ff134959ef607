package ledger

import (
	"context"
	"sync"

	"github.com/wilhg/toolgate/pkg/errmodel"
)

// Memory is an in-process Ledger for one context. Suitable for tests and
// for transient contexts that do not outlive the process.
type Memory struct {
	mu      sync.Mutex
	records []Record
	seen    map[string]struct{}
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{seen: map[string]struct{}{}}
}

// Append adds one record after validating its invariants.
// A duplicate call_id is a conflict: no record is ever appended twice.
func (m *Memory) Append(ctx context.Context, r Record) (Record, error) {
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.seen[r.CallID]; dup {
		return Record{}, errmodel.Validation(errmodel.CodeConflict, "call already recorded", map[string]any{"call_id": r.CallID})
	}
	r.Seq = int64(len(m.records)) + 1
	m.records = append(m.records, r)
	m.seen[r.CallID] = struct{}{}
	return r, nil
}

// All returns a copy of the records in append order.
func (m *Memory) All(ctx context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Len returns the number of appended records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
