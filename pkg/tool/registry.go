package tool

import (
	"sort"
	"sync"

	"github.com/wilhg/toolgate/pkg/errmodel"
)

// Registry keeps tools by name. Registration normally happens once at
// startup before concurrent access begins; lookups take a read lock so
// runtime registration stays safe if a deployment needs it.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

// Register adds a Tool under its descriptor name.
// A duplicate name is a conflict; registration is never overwrite.
func (r *Registry) Register(t Tool) error {
	if t == nil {
		return errmodel.Validation("bad_tool", "tool is nil", nil)
	}
	d := t.Describe()
	if d.Name == "" {
		return errmodel.Validation("bad_tool", "tool name is empty", nil)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[d.Name]; exists {
		return errmodel.Validation(errmodel.CodeConflict, "tool already registered", map[string]any{"tool": d.Name})
	}
	r.tools[d.Name] = t
	return nil
}

// Lookup returns a Tool by name, or an unknown-tool error.
func (r *Registry) Lookup(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, errmodel.UnknownTool(name)
	}
	return t, nil
}

// Names returns all registered tool names, sorted.
// Introspection only; authorization decisions never consult this.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tools))
	for n := range r.tools {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Range iterates all registered tools under a read lock.
func (r *Registry) Range(fn func(name string, t Tool)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for n, t := range r.tools {
		fn(n, t)
	}
}
