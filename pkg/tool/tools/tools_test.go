package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/wilhg/toolgate/pkg/tool"
)

func TestHTTPGetTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}))
	defer srv.Close()

	out, err := HTTPGetTool{}.Invoke(context.Background(), map[string]any{"url": srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	if out["status"] != 200 {
		t.Fatalf("status=%v", out["status"])
	}
	if out["body"] != "pong" {
		t.Fatalf("body=%v", out["body"])
	}
}

func TestFileReadTool(t *testing.T) {
	fsys := fstest.MapFS{"notes/a.txt": &fstest.MapFile{Data: []byte("hello")}}
	ft := FileReadTool{FS: fsys}

	out, err := ft.Invoke(context.Background(), map[string]any{"path": "notes/a.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if out["content"] != "hello" {
		t.Fatalf("content=%v", out["content"])
	}

	if _, err := ft.Invoke(context.Background(), map[string]any{"path": "../escape"}); err == nil {
		t.Fatal("path traversal accepted")
	}
	if _, err := ft.Invoke(context.Background(), map[string]any{"path": "/abs"}); err == nil {
		t.Fatal("absolute path accepted")
	}
}

func TestFileReadSchemaDerivation(t *testing.T) {
	d := FileReadTool{}.Describe()
	if len(d.InputSchema) == 0 || len(d.OutputSchema) == 0 {
		t.Fatal("derived schemas missing")
	}
	if err := tool.CompileSchema(d.InputSchema); err != nil {
		t.Fatalf("input schema invalid: %v", err)
	}
	if err := tool.JSONSchemaValidator(d.InputSchema, map[string]any{"path": "a.txt"}); err != nil {
		t.Fatalf("valid args rejected: %v", err)
	}
}
