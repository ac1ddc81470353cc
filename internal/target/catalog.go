package target

// Catalog is an immutable, ordered collection of targets.
//
// Declaration order is load-bearing: Scope() preserves it, and the
// discovery engine's first-writer-wins merge uses it as the tie-break.
type Catalog struct {
	targets []Target
	byID    map[string]*Target
}

// NewCatalog builds a catalog from the given targets, preserving order.
// Later duplicates of an ID shadow earlier ones in ByID lookups but the
// declared order is kept as-is.
func NewCatalog(targets []Target) *Catalog {
	c := &Catalog{
		targets: make([]Target, len(targets)),
		byID:    make(map[string]*Target, len(targets)),
	}
	copy(c.targets, targets)
	for i := range c.targets {
		c.byID[c.targets[i].ID] = &c.targets[i]
	}
	return c
}

// ByID looks up a target by id. The second return is false for unknown ids.
func (c *Catalog) ByID(id string) (*Target, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Scope returns the targets for one scope in declared order.
func (c *Catalog) Scope(scope Scope) []*Target {
	var out []*Target
	for i := range c.targets {
		if c.targets[i].Scope == scope {
			out = append(out, &c.targets[i])
		}
	}
	return out
}

// All returns every target in declared order.
func (c *Catalog) All() []*Target {
	out := make([]*Target, len(c.targets))
	for i := range c.targets {
		out[i] = &c.targets[i]
	}
	return out
}

// Len returns the number of targets in the catalog.
func (c *Catalog) Len() int {
	return len(c.targets)
}
