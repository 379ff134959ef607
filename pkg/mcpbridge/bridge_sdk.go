//go:build mcp

package mcpbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wilhg/toolgate/pkg/capability"
	"github.com/wilhg/toolgate/pkg/gateway"
	"github.com/wilhg/toolgate/pkg/ledger"
	"github.com/wilhg/toolgate/pkg/tool"
)

type Bridge struct {
	srv *mcp.Server
}

type Option func(*Bridge)

func New(_ context.Context, _ ...Option) (*Bridge, error) {
	srv := mcp.NewServer(&mcp.Implementation{Name: "toolgate", Version: "v0.1.0"}, nil)
	return &Bridge{srv: srv}, nil
}

// ExportRegistry exposes registry tools to MCP clients under the given
// caller identity. Handlers route through the gateway, so denied or
// unknown tools come back as tool-call errors and every attempt lands
// in the ledger.
func (b *Bridge) ExportRegistry(reg *tool.Registry, gw *gateway.Gateway, callerID string, caps *capability.Set, led ledger.Ledger) error {
	var exportErr error
	reg.Range(func(name string, t tool.Tool) {
		if exportErr != nil {
			return
		}
		desc := t.Describe()
		in, err := parseSchema(desc.InputSchema)
		if err != nil {
			exportErr = fmt.Errorf("tool %s: input schema: %w", name, err)
			return
		}
		out, err := parseSchema(desc.OutputSchema)
		if err != nil {
			exportErr = fmt.Errorf("tool %s: output schema: %w", name, err)
			return
		}
		mt := &mcp.Tool{Name: desc.Name, Description: desc.Description}
		if in != nil {
			mt.InputSchema = in
		}
		if out != nil {
			mt.OutputSchema = out
		}
		mcp.AddTool(b.srv, mt, func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
			rec := gw.Invoke(ctx, callerID, caps, led, desc.Name, args)
			if rec.Error != nil {
				return nil, nil, rec.Error
			}
			return nil, rec.Result, nil
		})
	})
	return exportErr
}

// Serve accepts connections on addr and runs an MCP session on each.
func (b *Bridge) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go func() { _ = b.ServeConn(ctx, conn) }()
	}
}

// ServeConn runs an MCP session over a single pre-established connection.
func (b *Bridge) ServeConn(ctx context.Context, conn net.Conn) error {
	return b.srv.Run(ctx, &mcp.IOTransport{Reader: conn, Writer: conn})
}

// parseSchema turns stored schema bytes into the SDK's schema value.
// Empty bytes mean "unspecified"; the SDK then infers an object schema.
func parseSchema(raw []byte) (*jsonschema.Schema, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
