// Package tool defines the invocable operation contract and the registry
// that holds the authoritative name-to-executor mapping. Authorization is
// not decided here; the registry answers "what exists", never "who may".
package tool

import (
	"context"
)

// Descriptor declares the static interface of a tool.
// InputSchema and OutputSchema are JSON Schemas (draft 2020-12) in UTF-8 bytes.
type Descriptor struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	InputSchema  []byte `json:"input_schema"`
	OutputSchema []byte `json:"output_schema,omitempty"`
}

// Tool is a callable unit with a schema-described input contract.
// Implementations wrap existing backend operations (create a ticket,
// fetch extracted file text, call a model) behind a uniform signature
// so the gateway never needs type-specific branching.
type Tool interface {
	// Describe returns the public descriptor (name, schemas).
	Describe() Descriptor
	// Invoke executes the tool. Args should conform to InputSchema;
	// the returned map should conform to OutputSchema when one is set.
	Invoke(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Describe is a nil-safe helper to get a Descriptor from a Tool.
func Describe(t Tool) Descriptor {
	if t == nil {
		return Descriptor{}
	}
	return t.Describe()
}

// Func adapts a bare executor function into a Tool.
type Func struct {
	Desc Descriptor
	Fn   func(ctx context.Context, args map[string]any) (map[string]any, error)
}

func (f Func) Describe() Descriptor { return f.Desc }

func (f Func) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	return f.Fn(ctx, args)
}
