// Package gateway is the single choke point for tool invocation.
// Every attempt passes the caller's capability set, then the registry,
// then the executor; every attempt, permitted or not, is appended to the
// context's call ledger. Invoke never returns an error of its own: the
// outcome, success or any refusal, is the returned record.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/toolgate/pkg/capability"
	"github.com/wilhg/toolgate/pkg/errmodel"
	"github.com/wilhg/toolgate/pkg/ledger"
	"github.com/wilhg/toolgate/pkg/tool"
)

// Gateway enforces policy, executes tools, and records every attempt.
type Gateway struct {
	reg      *tool.Registry
	validate tool.ValidateFunc
	timeout  time.Duration
	now      func() time.Time
}

// Option configures the Gateway at construction time.
type Option func(*Gateway)

// WithValidator sets the schema validator applied to tool inputs and
// outputs. Without one, schemas are not enforced.
func WithValidator(v tool.ValidateFunc) Option {
	return func(g *Gateway) { g.validate = v }
}

// WithTimeout bounds every executor run. Zero means no gateway-imposed
// deadline; callers can still cancel through ctx.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}

// New constructs a Gateway over a tool registry.
func New(reg *tool.Registry, opts ...Option) *Gateway {
	g := &Gateway{reg: reg, now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type execResult struct {
	out map[string]any
	err error
}

// Invoke runs one tool-call attempt for a caller and appends exactly one
// record to the ledger. The denial path short-circuits before any registry
// or executor code runs.
func (g *Gateway) Invoke(ctx context.Context, callerID string, caps *capability.Set, led ledger.Ledger, toolName string, args map[string]any) ledger.Record {
	tr := otel.Tracer("gateway")
	ctx, span := tr.Start(ctx, "Gateway.Invoke", trace.WithAttributes(
		attribute.String("caller.id", callerID),
		attribute.String("tool.name", toolName),
	))
	defer span.End()

	if args == nil {
		args = map[string]any{}
	}
	rec := ledger.Record{
		CallID:    uuid.NewString(),
		CallerID:  callerID,
		Tool:      toolName,
		Arguments: args,
		StartedAt: g.now(),
	}

	// 1) Policy. A denied call never reaches the registry or the executor.
	if !caps.Permits(toolName) {
		return g.finalize(ctx, span, led, rec, nil, errmodel.Denied(callerID, toolName))
	}

	// 2) Resolution. Permitted-but-unregistered is a misconfiguration,
	// reported distinctly from the policy refusal.
	t, err := g.reg.Lookup(toolName)
	if err != nil {
		return g.finalize(ctx, span, led, rec, nil, errmodel.From(err))
	}
	d := t.Describe()

	// 3) Input contract.
	if g.validate != nil {
		if err := g.validate(d.InputSchema, args); err != nil {
			return g.finalize(ctx, span, led, rec, nil,
				errmodel.Validation("invalid_input", "tool input validation failed", map[string]any{"tool": toolName, "error": err.Error()}))
		}
	}

	// 4) Execution, the only suspension point in the pipeline.
	out, xerr := g.execute(ctx, t, args)
	if xerr != nil {
		return g.finalize(ctx, span, led, rec, nil, xerr)
	}
	if out == nil {
		out = map[string]any{}
	}
	if g.validate != nil && len(d.OutputSchema) > 0 {
		if err := g.validate(d.OutputSchema, out); err != nil {
			return g.finalize(ctx, span, led, rec, nil,
				errmodel.Validation("invalid_output", "tool output validation failed", map[string]any{"tool": toolName, "error": err.Error()}))
		}
	}
	return g.finalize(ctx, span, led, rec, out, nil)
}

// execute runs the tool, honoring the gateway timeout and caller
// cancellation. A run that misses the deadline is finalized exactly once;
// its eventual completion is drained and discarded.
func (g *Gateway) execute(ctx context.Context, t tool.Tool, args map[string]any) (map[string]any, *errmodel.Error) {
	name := t.Describe().Name

	runCtx := ctx
	var cancel context.CancelFunc
	if g.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	// Buffered so the late completion never blocks the goroutine.
	ch := make(chan execResult, 1)
	go func() {
		out, err := t.Invoke(runCtx, args)
		ch <- execResult{out: out, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, errmodel.Tool(errmodel.CodeExecutor, "tool execution failed", map[string]any{"tool": name}, res.err)
		}
		return res.out, nil
	case <-runCtx.Done():
		// A caller hanging up is not a slow executor; keep the two apart
		// so ledger consumers don't tune timeouts against disconnects.
		if errors.Is(runCtx.Err(), context.Canceled) {
			return nil, errmodel.Canceled(name, map[string]any{"reason": runCtx.Err().Error()})
		}
		return nil, errmodel.Timeout(name, map[string]any{"reason": runCtx.Err().Error()})
	}
}

// finalize stamps the end time, appends the record, and annotates the span.
// Exactly one of out/cerr is set.
func (g *Gateway) finalize(ctx context.Context, span trace.Span, led ledger.Ledger, rec ledger.Record, out map[string]any, cerr *errmodel.Error) ledger.Record {
	rec.Result = out
	rec.Error = cerr
	rec.EndedAt = g.now()
	if rec.EndedAt.Before(rec.StartedAt) {
		rec.EndedAt = rec.StartedAt
	}

	outcome := "ok"
	if cerr != nil {
		outcome = cerr.Category + "/" + cerr.Code
		span.RecordError(cerr)
	}
	span.SetAttributes(
		attribute.String("call.id", rec.CallID),
		attribute.String("call.outcome", outcome),
	)

	appended, err := led.Append(ctx, rec)
	if err != nil {
		// The attempt still happened; surface the append failure on the
		// span and hand the caller the finalized record.
		span.RecordError(err)
		return rec
	}
	return appended
}
