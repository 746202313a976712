package layout

import "go.uber.org/zap"

// AdaptiveChildrenMeasurer measures the children whose sizing policy depends
// on the parent's resolved size. It runs once the parent's frame is known.
type AdaptiveChildrenMeasurer struct {
	box      *BoxSizingAlgorithm
	registry *ExpansionRegistry
	safeArea SafeAreaProvider
	logger   *zap.Logger
}

// MeasureChildren measures each adaptive child against the parent's content
// size. A child that expands into safe-area insets the provider has not
// committed yet is postponed and registered instead.
func (a *AdaptiveChildrenMeasurer) MeasureChildren(parent *Node, children []*Node) {
	for _, child := range children {
		a.measureChild(parent, child)
	}
}

// measureChild measures one adaptive child. It reports false when the child
// was postponed.
func (a *AdaptiveChildrenMeasurer) measureChild(parent, child *Node) bool {
	c := a.constraint(parent)
	cg := child.geometry
	if child.props.IsExpandConstraintNeeded() {
		expand, ok := a.expansion(parent, child)
		if !ok {
			child.postponed = true
			if a.registry.Add(child, parent) {
				a.logger.Debug("postponed",
					zap.String("node", child.id),
					zap.String("parent", parent.id))
			}
			return false
		}
		grown := parent.geometry.ContentSize().Add(expand.Size())
		c.ParentIdealSize = OptionalSizeOf(grown)
		c.MaxSize = grown
		cg.setSafeAreaExpand(expand)
	} else {
		cg.clearSafeAreaExpand()
	}
	child.postponed = false
	a.box.Measure(child, c)
	return true
}

// constraint builds the constraint shared by the adaptive children of parent:
// the ordinary child constraint with the parent's content size as ideal,
// maximum and percent reference. No margin contribution is subtracted up
// front; each child removes its own margin when ResolveConstraint runs, so a
// margin is never taken off twice.
func (a *AdaptiveChildrenMeasurer) constraint(parent *Node) LayoutConstraint {
	content := parent.geometry.ContentSize()
	c := parent.props.CreateChildConstraint()
	c.ParentIdealSize = OptionalSizeOf(content)
	c.MaxSize = content
	c.PercentReference = content
	return c
}

// expansion returns the part of parent's safe-area expansion that child
// ignores, or false when the parent's expansion is not committed.
func (a *AdaptiveChildrenMeasurer) expansion(parent, child *Node) (ExpandEdges, bool) {
	if a.safeArea == nil {
		return ExpandEdges{}, true
	}
	edges, ok := a.safeArea.SafeAreaExpand(parent)
	if !ok {
		return ExpandEdges{}, false
	}
	return edges.filter(child.props.IgnoreLayoutSafeArea().Edges, child.props.Direction()), true
}
