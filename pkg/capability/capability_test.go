package capability

import (
	"testing"
)

func TestFailClosed(t *testing.T) {
	for _, names := range [][]string{nil, {}, {""}} {
		s := FromConfig("agent-1", 1, names)
		for _, probe := range []string{"create_ticket", "get_system_health", ""} {
			if s.Permits(probe) {
				t.Fatalf("empty set permitted %q (names=%v)", probe, names)
			}
		}
	}
	var nilSet *Set
	if nilSet.Permits("anything") {
		t.Fatal("nil set permitted a tool")
	}
}

func TestPermitsAndNormalization(t *testing.T) {
	s := FromConfig("agent-1", 1, []string{"get_system_health", "get_system_health", "create_ticket"})
	if s.Len() != 2 {
		t.Fatalf("len=%d want 2", s.Len())
	}
	if !s.Permits("create_ticket") || !s.Permits("get_system_health") {
		t.Fatal("expected permitted")
	}
	if s.Permits("delete_ticket") {
		t.Fatal("unexpected permit")
	}
	names := s.Names()
	if len(names) != 2 || names[0] != "create_ticket" {
		t.Fatalf("names=%v", names)
	}
}

func TestUnregisteredNamePreserved(t *testing.T) {
	// Construction does not consult any registry; the gateway decides
	// what to do with an allowed-but-unregistered name.
	s := FromConfig("agent-1", 1, []string{"no_such_tool"})
	if !s.Permits("no_such_tool") {
		t.Fatal("configured name dropped")
	}
}

func TestCatalogCopyOnWrite(t *testing.T) {
	c := NewCatalog()

	// unknown caller denies everything
	if c.Snapshot("agent-1").Permits("create_ticket") {
		t.Fatal("unknown caller permitted a tool")
	}

	v1 := c.Replace("agent-1", []string{"create_ticket"})
	if v1.Version() != 1 || !v1.Permits("create_ticket") {
		t.Fatalf("v1=%v", v1.Names())
	}

	held := c.Snapshot("agent-1")
	v2 := c.Replace("agent-1", []string{"get_system_health"})
	if v2.Version() != 2 {
		t.Fatalf("version=%d want 2", v2.Version())
	}

	// the snapshot taken before the update is unchanged
	if !held.Permits("create_ticket") || held.Permits("get_system_health") {
		t.Fatal("held snapshot mutated by Replace")
	}
	now := c.Snapshot("agent-1")
	if now.Permits("create_ticket") || !now.Permits("get_system_health") {
		t.Fatal("replace not visible to new snapshots")
	}

	c.Remove("agent-1")
	if c.Snapshot("agent-1").Permits("get_system_health") {
		t.Fatal("removed caller still permitted")
	}
}
