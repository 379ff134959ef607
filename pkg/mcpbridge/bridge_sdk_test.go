//go:build mcp

package mcpbridge

import (
	"context"
	"sync/atomic"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wilhg/toolgate/pkg/capability"
	"github.com/wilhg/toolgate/pkg/gateway"
	"github.com/wilhg/toolgate/pkg/ledger"
	"github.com/wilhg/toolgate/pkg/tool"
)

func countedFunc(name string, calls *atomic.Int64) tool.Func {
	return tool.Func{
		Desc: tool.Descriptor{
			Name:        name,
			InputSchema: []byte(`{"type":"object"}`),
		},
		Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			calls.Add(1)
			return map[string]any{"status": "ok"}, nil
		},
	}
}

// A call arriving over MCP gets the same treatment as a local one: the
// capability check runs first and both outcomes land in the ledger.
func TestBridgedCallsCrossGatewayAndLedger(t *testing.T) {
	ctx := context.Background()
	reg := tool.NewRegistry()
	var health, tickets atomic.Int64
	if err := reg.Register(countedFunc("get_system_health", &health)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(countedFunc("create_ticket", &tickets)); err != nil {
		t.Fatal(err)
	}
	gw := gateway.New(reg, gateway.WithValidator(tool.JSONSchemaValidator))
	led := ledger.NewMemory()
	caps := capability.FromConfig("agent-1", 1, []string{"get_system_health"})

	b, err := New(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.ExportRegistry(reg, gw, "agent-1", caps, led); err != nil {
		t.Fatal(err)
	}

	serverT, clientT := mcp.NewInMemoryTransports()
	ss, err := b.srv.Connect(ctx, serverT, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "bridge-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = cs.Close() })

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "get_system_health", Arguments: map[string]any{}})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("permitted call failed: %v", res.Content)
	}
	if health.Load() != 1 {
		t.Fatalf("executor calls=%d want 1", health.Load())
	}

	denied, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "create_ticket", Arguments: map[string]any{"title": "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if !denied.IsError {
		t.Fatal("denied call did not surface as a tool error")
	}
	if tickets.Load() != 0 {
		t.Fatalf("executor ran %d times on a denied MCP call", tickets.Load())
	}

	all, err := led.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("ledger len=%d want 2", len(all))
	}
	if !all[0].Succeeded() {
		t.Fatalf("first record should be success: %+v", all[0].Error)
	}
	if !all[1].Denied() {
		t.Fatalf("second record should be denial: %+v", all[1].Error)
	}
}
