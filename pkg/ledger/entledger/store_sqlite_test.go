package entledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/wilhg/toolgate/pkg/errmodel"
)

func TestSQLiteAppendAndList(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:entledger?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	r1, err := st.AppendCall(ctx, "thread-1", okRecord("c1", "agent-1", "get_system_health"))
	if err != nil {
		t.Fatal(err)
	}
	if r1.Seq != 1 {
		t.Fatalf("seq=%d want 1", r1.Seq)
	}

	r2, err := st.AppendCall(ctx, "thread-1", deniedRecord("c2", "agent-1", "create_ticket"))
	if err != nil {
		t.Fatal(err)
	}
	if r2.Seq != 2 {
		t.Fatalf("seq=%d want 2", r2.Seq)
	}

	// Sequences are per context.
	other, err := st.AppendCall(ctx, "thread-2", okRecord("c3", "agent-2", "get_system_health"))
	if err != nil {
		t.Fatal(err)
	}
	if other.Seq != 1 {
		t.Fatalf("seq=%d want 1", other.Seq)
	}

	calls, err := st.ListCalls(ctx, "thread-1", 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 {
		t.Fatalf("len=%d want 2", len(calls))
	}
	if !calls[0].Succeeded() {
		t.Fatal("first record should be success")
	}
	if !calls[1].Denied() {
		t.Fatalf("second record should be denial: %+v", calls[1].Error)
	}
	if calls[1].Error.Code != errmodel.CodeForbidden {
		t.Fatalf("error code=%s", calls[1].Error.Code)
	}

	seq, err := st.LastSeq(ctx, "thread-1")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 2 {
		t.Fatalf("last seq=%d want 2", seq)
	}
}

func TestSQLiteIdempotentAppend(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:entledger-idem?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	first, err := st.AppendCall(ctx, "thread-1", okRecord("dup", "agent-1", "echo"))
	if err != nil {
		t.Fatal(err)
	}
	again, err := st.AppendCall(ctx, "thread-1", okRecord("dup", "agent-1", "echo"))
	if err != nil {
		t.Fatal(err)
	}
	if again.Seq != first.Seq {
		t.Fatalf("retried append created new row: seq %d vs %d", again.Seq, first.Seq)
	}
	seq, err := st.LastSeq(ctx, "thread-1")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Fatalf("last seq=%d want 1", seq)
	}
}

func TestSQLiteConcurrentAppendsKeepSeqsUnique(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:entledger-conc?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	// Writers racing for the same next seq must all land; losers of the
	// (context_id, seq) race recompute instead of failing the append.
	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = st.AppendCall(ctx, "thread-conc", okRecord(fmt.Sprintf("cc%d", i), "agent-1", "get_system_health"))
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	calls, err := st.ListCalls(ctx, "thread-conc", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != n {
		t.Fatalf("len=%d want %d", len(calls), n)
	}
	seen := map[int64]string{}
	for _, c := range calls {
		if c.Seq < 1 || c.Seq > n {
			t.Fatalf("seq %d out of range", c.Seq)
		}
		if prev, dup := seen[c.Seq]; dup {
			t.Fatalf("seq %d assigned to both %s and %s", c.Seq, prev, c.CallID)
		}
		seen[c.Seq] = c.CallID
	}
}

func TestSQLiteContextView(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:entledger-view?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	led := st.Context("thread-9")
	if _, err := led.Append(ctx, okRecord("v1", "agent-1", "echo")); err != nil {
		t.Fatal(err)
	}
	all, err := led.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].CallID != "v1" {
		t.Fatalf("all=%+v", all)
	}
}
