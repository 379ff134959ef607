// Package transcript renders a call ledger into the structured tool_calls
// history a chat consumer embeds in a message, and trims that history to a
// token budget so it fits a model context window.
package transcript

import (
	"encoding/json"
	"time"

	"github.com/wilhg/toolgate/pkg/errmodel"
	"github.com/wilhg/toolgate/pkg/ledger"
)

// ToolCall is the outward shape of one invocation attempt.
type ToolCall struct {
	ToolName  string          `json:"tool_name"`
	Arguments map[string]any  `json:"arguments,omitempty"`
	Result    map[string]any  `json:"result,omitempty"`
	Error     *errmodel.Error `json:"error,omitempty"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
}

// FromRecords converts ledger records to tool calls, preserving order.
func FromRecords(records []ledger.Record) []ToolCall {
	out := make([]ToolCall, 0, len(records))
	for _, r := range records {
		out = append(out, ToolCall{
			ToolName:  r.Tool,
			Arguments: r.Arguments,
			Result:    r.Result,
			Error:     r.Error,
			StartTime: r.StartedAt,
			EndTime:   r.EndedAt,
		})
	}
	return out
}

// TokenEstimator estimates token usage of text content.
type TokenEstimator func(text string) int

// Assembler trims a tool-call history to a token budget, keeping the most
// recent calls. Older calls fall off first since the consumer renders them
// into a bounded chat context.
type Assembler struct {
	estimate  TokenEstimator
	maxTokens int
}

// Option configures the Assembler.
type Option func(*Assembler)

// WithTokenEstimator sets the token estimator. Defaults to rune length.
func WithTokenEstimator(est TokenEstimator) Option {
	return func(a *Assembler) {
		if est != nil {
			a.estimate = est
		}
	}
}

// WithMaxTokens sets the maximum token budget. Defaults to a large value (1e9).
func WithMaxTokens(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// NewAssembler creates a new Assembler.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		estimate:  func(s string) int { return len([]rune(s)) },
		maxTokens: 1_000_000_000,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AssemblyLog summarizes the assembly decision.
type AssemblyLog struct {
	TotalTokens  int // tokens of included calls
	DroppedCount int // calls excluded due to budget
}

// Assemble returns the newest suffix of calls that fits the budget, in
// chronological order. Costing walks newest to oldest and stops at the
// first call that would exceed the budget, so the kept window is
// contiguous and never exceeds maxTokens.
func (a *Assembler) Assemble(calls []ToolCall) ([]ToolCall, AssemblyLog) {
	budget := a.maxTokens
	kept := 0
	for i := len(calls) - 1; i >= 0; i-- {
		cost := a.estimate(renderCall(calls[i]))
		if cost > budget {
			break
		}
		budget -= cost
		kept++
	}
	included := calls[len(calls)-kept:]
	log := AssemblyLog{TotalTokens: a.maxTokens - budget, DroppedCount: len(calls) - kept}
	out := make([]ToolCall, len(included))
	copy(out, included)
	return out, log
}

// renderCall is the canonical text form used for token costing.
func renderCall(c ToolCall) string {
	b, err := json.Marshal(c)
	if err != nil {
		return c.ToolName
	}
	return string(b)
}
