package capability

import (
	"sync"
)

// Catalog holds the current Set per caller and swaps in whole new Sets on
// reconfiguration (copy-on-write). Readers get a snapshot pointer; an admin
// update never mutates a Set a reader already holds.
type Catalog struct {
	mu   sync.RWMutex
	sets map[string]*Set
}

// NewCatalog creates an empty Catalog. Unknown callers snapshot to an
// empty Set, so the default everywhere is deny.
func NewCatalog() *Catalog {
	return &Catalog{sets: map[string]*Set{}}
}

// Snapshot returns the caller's current Set. Never nil.
func (c *Catalog) Snapshot(owner string) *Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.sets[owner]; ok {
		return s
	}
	return FromConfig(owner, 0, nil)
}

// Replace installs a new Set for the caller built from the given names,
// bumping the version, and returns it.
func (c *Catalog) Replace(owner string, names []string) *Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	var version int64 = 1
	if prev, ok := c.sets[owner]; ok {
		version = prev.Version() + 1
	}
	s := FromConfig(owner, version, names)
	c.sets[owner] = s
	return s
}

// Remove drops the caller's Set; subsequent snapshots deny everything.
func (c *Catalog) Remove(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sets, owner)
}
