package tool

import (
	"context"
	"testing"

	"github.com/wilhg/toolgate/pkg/errmodel"
)

type sumTool struct{}

func (sumTool) Describe() Descriptor {
	return Descriptor{
		Name:         "sum",
		InputSchema:  []byte(`{"type":"object","properties":{"a":{"type":"number"},"b":{"type":"number"}},"required":["a","b"],"additionalProperties":false}`),
		OutputSchema: []byte(`{"type":"object","properties":{"sum":{"type":"number"}},"required":["sum"],"additionalProperties":false}`),
	}
}

func (sumTool) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	a, _ := args["a"].(float64)
	b, _ := args["b"].(float64)
	return map[string]any{"sum": a + b}, nil
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(sumTool{}); err != nil {
		t.Fatal(err)
	}
	tl, err := r.Lookup("sum")
	if err != nil || tl == nil {
		t.Fatalf("lookup failed: %v", err)
	}
	// repeated lookups return equivalent descriptors
	if Describe(tl).Name != "sum" {
		t.Fatalf("descriptor name=%s", Describe(tl).Name)
	}
	tl2, err := r.Lookup("sum")
	if err != nil {
		t.Fatal(err)
	}
	if Describe(tl2).Name != Describe(tl).Name {
		t.Fatal("lookups not equivalent")
	}
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(sumTool{}); err != nil {
		t.Fatal(err)
	}
	err := r.Register(sumTool{})
	if err == nil {
		t.Fatal("expected conflict")
	}
	if !errmodel.IsCode(err, errmodel.CodeConflict) {
		t.Fatalf("err=%v want conflict", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("nope"); !errmodel.IsCode(err, errmodel.CodeNotFound) {
		t.Fatalf("err=%v want not_found", err)
	}
	// still not_found after unrelated registrations
	if err := r.Register(sumTool{}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Lookup("nope"); !errmodel.IsCode(err, errmodel.CodeNotFound) {
		t.Fatalf("err=%v want not_found", err)
	}
}

func TestNames(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(sumTool{})
	_ = r.Register(Func{Desc: Descriptor{Name: "echo"}, Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return args, nil
	}})
	names := r.Names()
	if len(names) != 2 || names[0] != "echo" || names[1] != "sum" {
		t.Fatalf("names=%v", names)
	}
}

func TestJSONSchemaValidator(t *testing.T) {
	d := sumTool{}.Describe()
	if err := JSONSchemaValidator(d.InputSchema, map[string]any{"a": 1.0, "b": 2.0}); err != nil {
		t.Fatal(err)
	}
	if err := JSONSchemaValidator(d.InputSchema, map[string]any{"a": "x", "b": 2.0}); err == nil {
		t.Fatal("expected validation error")
	}
	if err := CompileSchema(d.OutputSchema); err != nil {
		t.Fatal(err)
	}
	if err := CompileSchema([]byte(`{"type":`)); err == nil {
		t.Fatal("expected compile error")
	}
}
