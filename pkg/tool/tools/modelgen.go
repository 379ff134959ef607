package tools

import (
	"context"
	"fmt"

	"github.com/wilhg/toolgate/pkg/llm"
	"github.com/wilhg/toolgate/pkg/tool"
)

// ModelGenerateTool wraps a registered llm provider as a tool, so agents
// whose capability set includes "model.generate" can call a model through
// the same gated path as every other operation.
type ModelGenerateTool struct {
	Provider string
	Config   map[string]any
}

func (t ModelGenerateTool) Describe() tool.Descriptor {
	in := []byte(`{"type":"object","properties":{"prompt":{"type":"string","minLength":1},"model":{"type":"string"}},"required":["prompt"],"additionalProperties":false}`)
	out := []byte(`{"type":"object","properties":{"text":{"type":"string"},"model":{"type":"string"},"total_tokens":{"type":"integer"}},"required":["text"],"additionalProperties":false}`)
	return tool.Descriptor{
		Name:         "model.generate",
		Description:  "Generates text with the configured model provider",
		InputSchema:  in,
		OutputSchema: out,
	}
}

func (t ModelGenerateTool) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	factory, ok := llm.Resolve(t.Provider)
	if !ok {
		return nil, fmt.Errorf("llm provider %q not registered", t.Provider)
	}
	m, err := factory(ctx, t.Config)
	if err != nil {
		return nil, err
	}
	prompt, _ := args["prompt"].(string)
	opts := map[string]any{}
	if v, ok := args["model"].(string); ok && v != "" {
		opts["model"] = v
	}
	res, err := m.Generate(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"text":         res.Text,
		"model":        res.Model,
		"total_tokens": res.TotalTokens,
	}, nil
}
