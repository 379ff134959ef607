package gateway

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wilhg/toolgate/pkg/capability"
	"github.com/wilhg/toolgate/pkg/errmodel"
	"github.com/wilhg/toolgate/pkg/ledger"
	"github.com/wilhg/toolgate/pkg/tool"
)

// countingTool tracks executor invocations so denial paths can prove the
// executor was never reached.
type countingTool struct {
	name  string
	calls *atomic.Int64
	fail  bool
	sleep time.Duration
}

func (c countingTool) Describe() tool.Descriptor {
	return tool.Descriptor{
		Name:        c.name,
		InputSchema: []byte(`{"type":"object"}`),
	}
}

func (c countingTool) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	if c.sleep > 0 {
		time.Sleep(c.sleep)
	}
	c.calls.Add(1)
	if c.fail {
		return nil, errors.New("backend exploded")
	}
	return map[string]any{"status": "ok"}, nil
}

func newFixture(t *testing.T, opts ...Option) (*Gateway, *ledger.Memory, *atomic.Int64, *atomic.Int64) {
	t.Helper()
	reg := tool.NewRegistry()
	healthCalls := &atomic.Int64{}
	ticketCalls := &atomic.Int64{}
	if err := reg.Register(countingTool{name: "get_system_health", calls: healthCalls}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(countingTool{name: "create_ticket", calls: ticketCalls}); err != nil {
		t.Fatal(err)
	}
	opts = append([]Option{WithValidator(tool.JSONSchemaValidator)}, opts...)
	return New(reg, opts...), ledger.NewMemory(), healthCalls, ticketCalls
}

func checkInvariant(t *testing.T, r ledger.Record) {
	t.Helper()
	if (r.Result != nil) == (r.Error != nil) {
		t.Fatalf("record invariant broken: %+v", r)
	}
	if r.EndedAt.Before(r.StartedAt) {
		t.Fatalf("end before start: %+v", r)
	}
	if r.CallID == "" {
		t.Fatal("missing call_id")
	}
}

func TestInvokeSuccess(t *testing.T) {
	g, led, healthCalls, _ := newFixture(t)
	caps := capability.FromConfig("agent-1", 1, []string{"get_system_health"})

	r := g.Invoke(context.Background(), "agent-1", caps, led, "get_system_health", map[string]any{})
	checkInvariant(t, r)
	if !r.Succeeded() {
		t.Fatalf("error=%v", r.Error)
	}
	if r.Result["status"] != "ok" {
		t.Fatalf("result=%v", r.Result)
	}
	if healthCalls.Load() != 1 {
		t.Fatalf("executor calls=%d want 1", healthCalls.Load())
	}
	if led.Len() != 1 {
		t.Fatalf("ledger len=%d want 1", led.Len())
	}
}

func TestDenyShortCircuitsExecutor(t *testing.T) {
	g, led, _, ticketCalls := newFixture(t)
	caps := capability.FromConfig("agent-1", 1, []string{"get_system_health"})

	r := g.Invoke(context.Background(), "agent-1", caps, led, "create_ticket", map[string]any{"title": "x"})
	checkInvariant(t, r)
	if !r.Denied() {
		t.Fatalf("want policy denial, got %+v", r.Error)
	}
	if !errmodel.IsCode(r.Error, errmodel.CodeForbidden) {
		t.Fatalf("code=%s", r.Error.Code)
	}
	if ticketCalls.Load() != 0 {
		t.Fatalf("executor ran %d times on denial", ticketCalls.Load())
	}
	// the denial is still recorded
	if led.Len() != 1 {
		t.Fatalf("ledger len=%d want 1", led.Len())
	}
}

func TestEmptyCapabilitySetDeniesEverything(t *testing.T) {
	g, led, healthCalls, ticketCalls := newFixture(t)
	caps := capability.FromConfig("agent-1", 1, nil)

	for _, name := range []string{"get_system_health", "create_ticket", "no_such_tool"} {
		r := g.Invoke(context.Background(), "agent-1", caps, led, name, nil)
		checkInvariant(t, r)
		if !errmodel.IsCode(r.Error, errmodel.CodeForbidden) {
			t.Fatalf("tool %s: err=%v want forbidden", name, r.Error)
		}
	}
	if healthCalls.Load() != 0 || ticketCalls.Load() != 0 {
		t.Fatal("executor ran with empty capability set")
	}
}

func TestPermittedButUnregistered(t *testing.T) {
	g, led, _, _ := newFixture(t)
	// configuration drift: allowed name never registered
	caps := capability.FromConfig("agent-1", 3, []string{"summarize_thread"})

	r := g.Invoke(context.Background(), "agent-1", caps, led, "summarize_thread", nil)
	checkInvariant(t, r)
	if !errmodel.IsCode(r.Error, errmodel.CodeNotFound) {
		t.Fatalf("err=%v want not_found", r.Error)
	}
	if r.Denied() {
		t.Fatal("unknown tool misreported as policy denial")
	}
}

func TestExecutorFailurePreservesCause(t *testing.T) {
	reg := tool.NewRegistry()
	calls := &atomic.Int64{}
	if err := reg.Register(countingTool{name: "flaky", calls: calls, fail: true}); err != nil {
		t.Fatal(err)
	}
	g := New(reg, WithValidator(tool.JSONSchemaValidator))
	led := ledger.NewMemory()
	caps := capability.FromConfig("agent-1", 1, []string{"flaky"})

	r := g.Invoke(context.Background(), "agent-1", caps, led, "flaky", nil)
	checkInvariant(t, r)
	if !errmodel.IsCode(r.Error, errmodel.CodeExecutor) {
		t.Fatalf("err=%v want executor_failed", r.Error)
	}
	if len(r.Error.Causes) != 1 {
		t.Fatalf("cause lost: %+v", r.Error)
	}
	if calls.Load() != 1 {
		t.Fatalf("executor calls=%d want 1", calls.Load())
	}
}

func TestInputValidationBlocksExecutor(t *testing.T) {
	reg := tool.NewRegistry()
	calls := &atomic.Int64{}
	strict := countingTool{name: "strict", calls: calls}
	if err := reg.Register(tool.Func{
		Desc: tool.Descriptor{
			Name:        "strict",
			InputSchema: []byte(`{"type":"object","properties":{"n":{"type":"number"}},"required":["n"],"additionalProperties":false}`),
		},
		Fn: strict.Invoke,
	}); err != nil {
		t.Fatal(err)
	}
	g := New(reg, WithValidator(tool.JSONSchemaValidator))
	led := ledger.NewMemory()
	caps := capability.FromConfig("agent-1", 1, []string{"strict"})

	r := g.Invoke(context.Background(), "agent-1", caps, led, "strict", map[string]any{"n": "not a number"})
	checkInvariant(t, r)
	if !errmodel.IsCode(r.Error, "invalid_input") {
		t.Fatalf("err=%v want invalid_input", r.Error)
	}
	if calls.Load() != 0 {
		t.Fatal("executor ran on invalid input")
	}
}

func TestTimeoutDiscardsLateCompletion(t *testing.T) {
	reg := tool.NewRegistry()
	calls := &atomic.Int64{}
	if err := reg.Register(countingTool{name: "slow", calls: calls, sleep: 200 * time.Millisecond}); err != nil {
		t.Fatal(err)
	}
	g := New(reg, WithTimeout(30*time.Millisecond))
	led := ledger.NewMemory()
	caps := capability.FromConfig("agent-1", 1, []string{"slow"})

	r := g.Invoke(context.Background(), "agent-1", caps, led, "slow", nil)
	checkInvariant(t, r)
	if !errmodel.IsCode(r.Error, errmodel.CodeTimeout) {
		t.Fatalf("err=%v want timeout", r.Error)
	}
	if led.Len() != 1 {
		t.Fatalf("ledger len=%d want 1", led.Len())
	}

	// Let the executor finish late; no second record may appear.
	time.Sleep(300 * time.Millisecond)
	if led.Len() != 1 {
		t.Fatalf("late completion appended a record: len=%d", led.Len())
	}
	if calls.Load() != 1 {
		t.Fatalf("executor calls=%d want 1", calls.Load())
	}
}

func TestCallerCancellationIsNotATimeout(t *testing.T) {
	reg := tool.NewRegistry()
	calls := &atomic.Int64{}
	if err := reg.Register(countingTool{name: "slow", calls: calls, sleep: 200 * time.Millisecond}); err != nil {
		t.Fatal(err)
	}
	g := New(reg) // no gateway deadline; only the caller cancels
	led := ledger.NewMemory()
	caps := capability.FromConfig("agent-1", 1, []string{"slow"})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	r := g.Invoke(ctx, "agent-1", caps, led, "slow", nil)
	checkInvariant(t, r)
	if !errmodel.IsCode(r.Error, errmodel.CodeCanceled) {
		t.Fatalf("err=%v want canceled", r.Error)
	}
	if errmodel.IsCode(r.Error, errmodel.CodeTimeout) {
		t.Fatal("cancellation reported as timeout")
	}
	if led.Len() != 1 {
		t.Fatalf("ledger len=%d want 1", led.Len())
	}

	// The abandoned run still finishes; it must not append a second record.
	time.Sleep(300 * time.Millisecond)
	if led.Len() != 1 {
		t.Fatalf("late completion appended a record: len=%d", led.Len())
	}
}

func TestConcurrentInvokesOneRecordEach(t *testing.T) {
	g, led, _, _ := newFixture(t)
	caps := capability.FromConfig("agent-1", 1, []string{"get_system_health"})

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "get_system_health"
			if i%2 == 1 {
				name = "create_ticket" // denied
			}
			r := g.Invoke(context.Background(), "agent-1", caps, led, name, nil)
			if r.CallID == "" {
				t.Error("missing call_id")
			}
		}(i)
	}
	wg.Wait()

	all, err := led.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != n {
		t.Fatalf("len=%d want %d", len(all), n)
	}
	seen := map[string]bool{}
	for _, r := range all {
		checkInvariant(t, r)
		if seen[r.CallID] {
			t.Fatalf("duplicate call_id %s", r.CallID)
		}
		seen[r.CallID] = true
	}
}
