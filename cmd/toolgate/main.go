package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wilhg/toolgate/pkg/capability"
	"github.com/wilhg/toolgate/pkg/errmodel"
	"github.com/wilhg/toolgate/pkg/gateway"
	"github.com/wilhg/toolgate/pkg/ledger/entledger"
	otelboot "github.com/wilhg/toolgate/pkg/otel"
	"github.com/wilhg/toolgate/pkg/tool"
	"github.com/wilhg/toolgate/pkg/tool/tools"
	"github.com/wilhg/toolgate/pkg/transcript"

	// LLM providers register themselves for the model.generate tool.
	_ "github.com/wilhg/toolgate/pkg/llm/gemini"
	_ "github.com/wilhg/toolgate/pkg/llm/openai"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	var showVersion bool
	var addr string

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&addr, "addr", getEnv("TOOLGATE_ADDR", ":8080"), "http listen address")
	flag.Parse()

	if showVersion {
		fmt.Printf("toolgate %s (commit=%s, date=%s)\n", version, commit, date)
		return
	}

	ctx := context.Background()
	shutdown, err := otelboot.Init(ctx, otelboot.Config{ServiceName: "toolgate", ServiceVersion: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "otel init error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = shutdown(context.Background()) }()

	dsn := getEnv("DATABASE_URL", "sqlite:file:toolgate.sqlite?cache=shared&_pragma=busy_timeout(5000)")
	store, err := entledger.Open(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledger open error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()
	if err := store.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ledger migrate error: %v\n", err)
		os.Exit(1)
	}

	reg := tool.NewRegistry()
	if err := registerBuiltins(reg); err != nil {
		fmt.Fprintf(os.Stderr, "tool registration error: %v\n", err)
		os.Exit(1)
	}

	app := newApp(reg, store)
	handler := otelhttp.NewHandler(app.buildMux(), "toolgate")

	server := &http.Server{Addr: addr, Handler: handler}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func registerBuiltins(reg *tool.Registry) error {
	if err := reg.Register(tools.HTTPGetTool{}); err != nil {
		return err
	}
	if root := os.Getenv("TOOLGATE_FS_ROOT"); root != "" {
		if err := reg.Register(tools.FileReadTool{FS: os.DirFS(root)}); err != nil {
			return err
		}
	}
	if provider := os.Getenv("TOOLGATE_LLM_PROVIDER"); provider != "" {
		if err := reg.Register(tools.ModelGenerateTool{Provider: provider}); err != nil {
			return err
		}
	}
	return nil
}

// app bundles the long-lived pieces behind the HTTP facade.
type app struct {
	reg     *tool.Registry
	gw      *gateway.Gateway
	catalog *capability.Catalog
	store   *entledger.Store
}

func newApp(reg *tool.Registry, store *entledger.Store) *app {
	return &app{
		reg:     reg,
		gw:      gateway.New(reg, gateway.WithValidator(tool.JSONSchemaValidator)),
		catalog: capability.NewCatalog(),
		store:   store,
	}
}

func (a *app) buildMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/tools", a.handleTools)
	mux.HandleFunc("/api/capabilities", a.handleCapabilities)
	mux.HandleFunc("/api/invoke", a.handleInvoke)
	mux.HandleFunc("/api/calls", a.handleCalls)
	return mux
}

func (a *app) handleTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errmodel.WriteHTTP(w, r, errmodel.Policy("method_not_allowed", "use GET", nil))
		return
	}
	writeJSON(w, map[string]any{"tools": a.reg.Names()})
}

// handleCapabilities replaces a caller's allow-list. This is the admin
// surface; caller identity on the invoke path arrives pre-validated.
func (a *app) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errmodel.WriteHTTP(w, r, errmodel.Policy("method_not_allowed", "use POST", nil))
		return
	}
	var req struct {
		CallerID string   `json:"caller_id"`
		Tools    []string `json:"tools"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errmodel.WriteHTTP(w, r, errmodel.Validation("bad_json", "invalid request body", nil))
		return
	}
	if req.CallerID == "" {
		errmodel.WriteHTTP(w, r, errmodel.Validation("missing_fields", "caller_id required", nil))
		return
	}
	s := a.catalog.Replace(req.CallerID, req.Tools)
	writeJSON(w, map[string]any{"caller_id": s.Owner(), "version": s.Version(), "tools": s.Names()})
}

func (a *app) handleInvoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errmodel.WriteHTTP(w, r, errmodel.Policy("method_not_allowed", "use POST", nil))
		return
	}
	var req struct {
		CallerID  string         `json:"caller_id"`
		ContextID string         `json:"context_id"`
		Tool      string         `json:"tool"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errmodel.WriteHTTP(w, r, errmodel.Validation("bad_json", "invalid request body", nil))
		return
	}
	if req.CallerID == "" || req.ContextID == "" || req.Tool == "" {
		errmodel.WriteHTTP(w, r, errmodel.Validation("missing_fields", "caller_id, context_id and tool required", nil))
		return
	}
	caps := a.catalog.Snapshot(req.CallerID)
	led := a.store.Context(req.ContextID)
	rec := a.gw.Invoke(r.Context(), req.CallerID, caps, led, req.Tool, req.Arguments)
	// The attempt is always recorded; the record is the response either way.
	writeJSON(w, rec)
}

func (a *app) handleCalls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errmodel.WriteHTTP(w, r, errmodel.Policy("method_not_allowed", "use GET", nil))
		return
	}
	contextID := r.URL.Query().Get("context")
	if contextID == "" {
		errmodel.WriteHTTP(w, r, errmodel.Validation("missing_fields", "context query param required", nil))
		return
	}
	records, err := a.store.ListCalls(r.Context(), contextID, 0, 0)
	if err != nil {
		errmodel.WriteHTTP(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"tool_calls": transcript.FromRecords(records)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
