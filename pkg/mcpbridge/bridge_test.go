//go:build !mcp

package mcpbridge

import (
	"context"
	"testing"
)

func TestPlaceholderBridgeWithoutSDK(t *testing.T) {
	b, err := New(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := b.ExportRegistry(nil, nil, "agent-1", nil, nil); err != nil {
		t.Fatalf("placeholder export should be a no-op: %v", err)
	}
	if err := b.Serve(context.Background(), "127.0.0.1:0"); err == nil {
		t.Fatal("Serve must refuse to run when the mcp build tag is not set")
	}
}
