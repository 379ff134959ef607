package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wilhg/toolgate/pkg/ledger/entledger"
	"github.com/wilhg/toolgate/pkg/tool"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FOO", "bar")
	if got := getEnv("FOO", "default"); got != "bar" {
		t.Fatalf("getEnv returned %q, want %q", got, "bar")
	}
	if got := getEnv("MISSING", "default"); got != "default" {
		t.Fatalf("getEnv returned %q, want %q", got, "default")
	}
}

func TestInvokeLifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := entledger.Open(ctx, "sqlite:file:httptest?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	reg := tool.NewRegistry()
	if err := reg.Register(tool.Func{
		Desc: tool.Descriptor{Name: "get_system_health", InputSchema: []byte(`{"type":"object"}`)},
		Fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{"status": "healthy"}, nil
		},
	}); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newApp(reg, store).buildMux())
	defer srv.Close()

	// grant the caller one tool
	res, err := http.Post(srv.URL+"/api/capabilities", "application/json",
		bytes.NewBufferString(`{"caller_id":"agent-1","tools":["get_system_health"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("capabilities status=%d", res.StatusCode)
	}
	_ = res.Body.Close()

	// permitted call succeeds
	res2, err := http.Post(srv.URL+"/api/invoke", "application/json",
		bytes.NewBufferString(`{"caller_id":"agent-1","context_id":"thread-1","tool":"get_system_health","arguments":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("invoke status=%d", res2.StatusCode)
	}
	var okRec struct {
		CallID string         `json:"call_id"`
		Result map[string]any `json:"result"`
		Error  map[string]any `json:"error"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&okRec); err != nil {
		t.Fatal(err)
	}
	if okRec.CallID == "" || okRec.Error != nil {
		t.Fatalf("record=%+v", okRec)
	}
	if okRec.Result["status"] != "healthy" {
		t.Fatalf("result=%v", okRec.Result)
	}

	// disallowed call is recorded as a policy refusal, not dropped
	res3, err := http.Post(srv.URL+"/api/invoke", "application/json",
		bytes.NewBufferString(`{"caller_id":"agent-1","context_id":"thread-1","tool":"create_ticket","arguments":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res3.Body.Close()
	var denyRec struct {
		Error *struct {
			Category string `json:"category"`
			Code     string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res3.Body).Decode(&denyRec); err != nil {
		t.Fatal(err)
	}
	if denyRec.Error == nil || denyRec.Error.Category != "policy" || denyRec.Error.Code != "forbidden" {
		t.Fatalf("deny record=%+v", denyRec.Error)
	}

	// transcript shows both attempts in order
	res4, err := http.Get(srv.URL + "/api/calls?context=thread-1")
	if err != nil {
		t.Fatal(err)
	}
	defer res4.Body.Close()
	var calls struct {
		ToolCalls []struct {
			ToolName string `json:"tool_name"`
		} `json:"tool_calls"`
	}
	if err := json.NewDecoder(res4.Body).Decode(&calls); err != nil {
		t.Fatal(err)
	}
	if len(calls.ToolCalls) != 2 {
		t.Fatalf("tool_calls=%d want 2", len(calls.ToolCalls))
	}
	if calls.ToolCalls[0].ToolName != "get_system_health" || calls.ToolCalls[1].ToolName != "create_ticket" {
		t.Fatalf("order=%+v", calls.ToolCalls)
	}

	// registry introspection
	res5, err := http.Get(srv.URL + "/api/tools")
	if err != nil {
		t.Fatal(err)
	}
	defer res5.Body.Close()
	var toolsResp struct {
		Tools []string `json:"tools"`
	}
	if err := json.NewDecoder(res5.Body).Decode(&toolsResp); err != nil {
		t.Fatal(err)
	}
	if len(toolsResp.Tools) != 1 || toolsResp.Tools[0] != "get_system_health" {
		t.Fatalf("tools=%v", toolsResp.Tools)
	}
}
