//go:build !mcp

// Package mcpbridge exports gated tools over MCP. Remote callers get the
// same treatment as local ones: every call crosses the gateway, so the
// capability check and the ledger append cannot be bypassed from outside.
package mcpbridge

import (
	"context"
	"errors"

	"github.com/wilhg/toolgate/pkg/capability"
	"github.com/wilhg/toolgate/pkg/gateway"
	"github.com/wilhg/toolgate/pkg/ledger"
	"github.com/wilhg/toolgate/pkg/tool"
)

// Bridge is a placeholder MCP bridge when the mcp build tag is not set.
// It allows the rest of the repo to compile without the SDK.
type Bridge struct{}

type Option func(*Bridge)

// New creates a new MCP bridge (no-op without mcp tag).
func New(_ context.Context, _ ...Option) (*Bridge, error) { return &Bridge{}, nil }

// ExportRegistry is a no-op that would export gated tools to MCP clients.
func (b *Bridge) ExportRegistry(_ *tool.Registry, _ *gateway.Gateway, _ string, _ *capability.Set, _ ledger.Ledger) error {
	return nil
}

// Serve starts the MCP bridge (no-op without mcp tag).
func (b *Bridge) Serve(_ context.Context, _ string) error {
	return errors.New("mcp bridge not enabled in this build")
}
