package transcript

import (
	"testing"
	"time"

	"github.com/wilhg/toolgate/pkg/errmodel"
	"github.com/wilhg/toolgate/pkg/ledger"
)

func call(name string, pad int) ToolCall {
	args := map[string]any{}
	if pad > 0 {
		b := make([]byte, pad)
		for i := range b {
			b[i] = 'x'
		}
		args["pad"] = string(b)
	}
	now := time.Now().UTC()
	return ToolCall{ToolName: name, Arguments: args, Result: map[string]any{"ok": true}, StartTime: now, EndTime: now}
}

func TestFromRecords(t *testing.T) {
	now := time.Now().UTC()
	records := []ledger.Record{
		{CallID: "c1", CallerID: "agent-1", Tool: "get_system_health", Result: map[string]any{"ok": true}, StartedAt: now, EndedAt: now},
		{CallID: "c2", CallerID: "agent-1", Tool: "create_ticket", Error: errmodel.Denied("agent-1", "create_ticket"), StartedAt: now, EndedAt: now},
	}
	calls := FromRecords(records)
	if len(calls) != 2 {
		t.Fatalf("len=%d", len(calls))
	}
	if calls[0].ToolName != "get_system_health" || calls[0].Error != nil {
		t.Fatalf("call0=%+v", calls[0])
	}
	if calls[1].Error == nil || calls[1].Result != nil {
		t.Fatalf("denial not surfaced: %+v", calls[1])
	}
}

func TestAssembleKeepsNewestUnderBudget(t *testing.T) {
	calls := []ToolCall{call("old", 500), call("mid", 0), call("new", 0)}
	// budget fits the two small calls but not the padded old one
	small := NewAssembler(WithMaxTokens(400))
	got, log := small.Assemble(calls)
	if len(got) != 2 {
		t.Fatalf("len=%d want 2 (log=%+v)", len(got), log)
	}
	if got[0].ToolName != "mid" || got[1].ToolName != "new" {
		t.Fatalf("order=%v", []string{got[0].ToolName, got[1].ToolName})
	}
	if log.DroppedCount != 1 {
		t.Fatalf("dropped=%d want 1", log.DroppedCount)
	}
}

func TestAssembleNoBudgetKeepsAll(t *testing.T) {
	calls := []ToolCall{call("a", 0), call("b", 0)}
	got, log := NewAssembler().Assemble(calls)
	if len(got) != 2 || log.DroppedCount != 0 {
		t.Fatalf("got=%d dropped=%d", len(got), log.DroppedCount)
	}
}

func TestNewTikTokenEstimator(t *testing.T) {
	est, err := NewTikTokenEstimator("gpt-4")
	if err != nil {
		t.Skipf("tiktoken not available for model: %v", err)
	}
	if got := est("hello world"); got <= 0 {
		t.Fatalf("got %d tokens, want > 0", got)
	}
}
