package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/wilhg/toolgate/pkg/errmodel"
)

func rec(id string) Record {
	now := time.Now().UTC()
	return Record{
		CallID:    id,
		CallerID:  "agent-1",
		Tool:      "echo",
		Arguments: map[string]any{"msg": "hi"},
		Result:    map[string]any{"echo": "hi"},
		StartedAt: now,
		EndedAt:   now,
	}
}

func TestAppendAndAllOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for i := 0; i < 3; i++ {
		r, err := m.Append(ctx, rec(fmt.Sprintf("c%d", i)))
		if err != nil {
			t.Fatal(err)
		}
		if r.Seq != int64(i)+1 {
			t.Fatalf("seq=%d want %d", r.Seq, i+1)
		}
	}
	all, err := m.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("len=%d", len(all))
	}
	for i, r := range all {
		if r.CallID != fmt.Sprintf("c%d", i) {
			t.Fatalf("order broken at %d: %s", i, r.CallID)
		}
	}
}

func TestRecordInvariants(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	both := rec("c1")
	both.Error = errmodel.Denied("agent-1", "echo")
	if _, err := m.Append(ctx, both); err == nil {
		t.Fatal("accepted record with both result and error")
	}

	neither := rec("c2")
	neither.Result = nil
	if _, err := m.Append(ctx, neither); err == nil {
		t.Fatal("accepted record with neither result nor error")
	}

	backwards := rec("c3")
	backwards.EndedAt = backwards.StartedAt.Add(-time.Second)
	if _, err := m.Append(ctx, backwards); err == nil {
		t.Fatal("accepted end_time before start_time")
	}
}

func TestDuplicateCallIDRejected(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if _, err := m.Append(ctx, rec("c1")); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Append(ctx, rec("c1")); !errmodel.IsCode(err, errmodel.CodeConflict) {
		t.Fatalf("err=%v want conflict", err)
	}
	if m.Len() != 1 {
		t.Fatalf("len=%d want 1", m.Len())
	}
}

func TestConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := m.Append(ctx, rec(fmt.Sprintf("c%d", i))); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
	all, err := m.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != n {
		t.Fatalf("len=%d want %d", len(all), n)
	}
	seen := map[string]bool{}
	for _, r := range all {
		if seen[r.CallID] {
			t.Fatalf("duplicate call_id %s", r.CallID)
		}
		seen[r.CallID] = true
	}
}
