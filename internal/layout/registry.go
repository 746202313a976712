package layout

// PendingExpansion is a postponed child waiting on its parent's safe-area
// expansion.
type PendingExpansion struct {
	Child  *Node
	Parent *Node
}

// ExpansionRegistry collects postponed children until the frame driver
// drains it. It is not safe for concurrent use; like the rest of the engine
// it belongs to the goroutine running layout passes.
type ExpansionRegistry struct {
	pending []PendingExpansion
}

var defaultRegistry = NewExpansionRegistry()

// DefaultRegistry returns the process-wide registry used by engines created
// without WithRegistry.
func DefaultRegistry() *ExpansionRegistry { return defaultRegistry }

// NewExpansionRegistry returns an empty registry.
func NewExpansionRegistry() *ExpansionRegistry {
	return &ExpansionRegistry{}
}

// Add registers child under parent. It returns false if the pair is already
// pending.
func (r *ExpansionRegistry) Add(child, parent *Node) bool {
	for _, pe := range r.pending {
		if pe.Child == child && pe.Parent == parent {
			return false
		}
	}
	r.pending = append(r.pending, PendingExpansion{Child: child, Parent: parent})
	return true
}

// Len returns the number of pending children.
func (r *ExpansionRegistry) Len() int { return len(r.pending) }

// Pending returns a copy of the pending pairs in registration order.
func (r *ExpansionRegistry) Pending() []PendingExpansion {
	return append([]PendingExpansion(nil), r.pending...)
}

// Drain empties the registry and calls fn for every pair that was pending.
// fn may register pairs again; those stay for the next drain. Drain returns
// the number of pairs handed to fn.
func (r *ExpansionRegistry) Drain(fn func(PendingExpansion)) int {
	batch := r.pending
	r.pending = nil
	for _, pe := range batch {
		fn(pe)
	}
	return len(batch)
}

// Reset drops every pending pair.
func (r *ExpansionRegistry) Reset() {
	r.pending = nil
}
