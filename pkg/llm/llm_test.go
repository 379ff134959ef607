package llm

import (
	"context"
	"testing"
)

type fakeLLM struct{}

func (fakeLLM) Name() string { return "fake" }
func (fakeLLM) Generate(ctx context.Context, messages []Message, opts map[string]any) (GenerateResult, error) {
	return GenerateResult{Text: "ok", Model: "fake-1"}, nil
}

func TestRegisterAndResolve(t *testing.T) {
	f := func(ctx context.Context, cfg map[string]any) (LLM, error) { return fakeLLM{}, nil }
	if err := Register("fake", f); err != nil {
		t.Fatal(err)
	}
	if err := Register("fake", f); err == nil {
		t.Fatal("expected duplicate provider error")
	}
	got, ok := Resolve("fake")
	if !ok {
		t.Fatal("provider not resolved")
	}
	m, err := got(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "fake" {
		t.Fatalf("name=%s", m.Name())
	}
}
