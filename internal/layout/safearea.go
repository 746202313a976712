package layout

// SafeAreaProvider reports the safe-area expansion accumulated at a node, the
// room its adaptive children may expand into. The second result is false
// while the expansion is not committed yet.
type SafeAreaProvider interface {
	SafeAreaExpand(n *Node) (ExpandEdges, bool)
}

// StaticSafeArea reports the same expansion for every node.
type StaticSafeArea struct {
	Edges     ExpandEdges
	Committed bool
}

// SafeAreaExpand implements SafeAreaProvider.
func (s *StaticSafeArea) SafeAreaExpand(*Node) (ExpandEdges, bool) {
	return s.Edges, s.Committed
}

// Commit marks the expansion as final.
func (s *StaticSafeArea) Commit() { s.Committed = true }
