// Package capability models per-caller tool allow-lists.
// A Set is an immutable value; reconfiguring a caller produces a new Set
// with a higher version rather than mutating one in place, so in-flight
// invocations keep observing the snapshot they loaded.
package capability

import (
	"sort"
)

// Set is the allow-list of tool names one caller may invoke.
// The zero value permits nothing.
type Set struct {
	owner   string
	version int64
	names   map[string]struct{}
}

// FromConfig builds a Set from caller configuration.
// Names are normalized into a unique set. An empty or nil list yields an
// empty Set that permits zero tools; it never means "allow everything".
// Names are not validated against any registry here: a configured name
// that was never registered surfaces at invoke time as unknown-tool.
func FromConfig(owner string, version int64, names []string) *Set {
	s := &Set{owner: owner, version: version, names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
	}
	return s
}

// Owner returns the caller this set belongs to.
func (s *Set) Owner() string {
	if s == nil {
		return ""
	}
	return s.owner
}

// Version returns the configuration version this set was built from.
func (s *Set) Version() int64 {
	if s == nil {
		return 0
	}
	return s.version
}

// Permits reports whether the caller may invoke the named tool.
// Pure, O(1), nil-safe: a nil or empty Set denies everything.
func (s *Set) Permits(toolName string) bool {
	if s == nil || len(s.names) == 0 {
		return false
	}
	_, ok := s.names[toolName]
	return ok
}

// Names returns the allowed tool names, sorted.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of allowed tool names.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
