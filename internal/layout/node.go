package layout

import "golang.org/x/text/language"

var defaultLocale = language.Und

// Node represents an element in the layout tree.
type Node struct {
	id string

	// Configuration (user-set)
	props    *ConstraintPropagator
	measurer ContentMeasurer
	children []*Node
	column   bool
	locale   language.Tag

	// Computed (set by layout engine)
	geometry *GeometryNode

	// Internal state
	dirty     PropertyChange // Accumulated change signals since the last pass
	postponed bool           // Waiting on a safe-area expansion
	parent    *Node          // Back-pointer for dirty propagation and direction lookups
}

// NewNode creates a node measured by m. A nil measurer makes a plain box
// sized from its children.
func NewNode(id string, m ContentMeasurer) *Node {
	if m == nil {
		m = BoxMeasurer{}
	}
	n := &Node{
		id:       id,
		measurer: m,
		geometry: &GeometryNode{},
		dirty:    NeedsMeasure | NeedsLayout, // New nodes need layout
	}
	n.props = newConstraintPropagator(n)
	return n
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Props returns the node's constraint propagator.
func (n *Node) Props() *ConstraintPropagator { return n.props }

// Geometry returns the result of the last layout pass.
func (n *Node) Geometry() *GeometryNode { return n.geometry }

// Measurer returns the node's content measurer.
func (n *Node) Measurer() ContentMeasurer { return n.measurer }

// SetMeasurer replaces the content measurer and marks the node for
// re-measurement.
func (n *Node) SetMeasurer(m ContentMeasurer) {
	if m == nil {
		m = BoxMeasurer{}
	}
	n.measurer = m
	n.props.safeAreaDirty = true
	n.MarkDirty(NeedsMeasure | NeedsLayout)
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in declaration order.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil && child.parent != n {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
	n.MarkDirty(NeedsMeasure | NeedsLayout)
}

// RemoveChild removes a child by pointer and marks dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty(NeedsMeasure | NeedsLayout)
			return true
		}
	}
	return false
}

// SetColumn makes the children-derived height the sum of the children's
// heights instead of the tallest child.
func (n *Node) SetColumn(column bool) {
	if n.column == column {
		return
	}
	n.column = column
	n.MarkDirty(NeedsMeasure)
}

// IsColumn reports whether children stack vertically for sizing.
func (n *Node) IsColumn() bool { return n.column }

// SetLocale sets the locale used to resolve an Auto direction for this node
// and descendants that do not set their own.
func (n *Node) SetLocale(tag language.Tag) {
	if n.locale == tag {
		return
	}
	n.locale = tag
	n.MarkDirty(NeedsMeasure | NeedsLayout)
}

// Locale returns the nearest locale set on this node or an ancestor.
func (n *Node) Locale() language.Tag {
	for node := n; node != nil; node = node.parent {
		if node.locale != defaultLocale {
			return node.locale
		}
	}
	return defaultLocale
}

// IsPostponed reports whether the node is waiting on a safe-area expansion.
func (n *Node) IsPostponed() bool { return n.postponed }

// MarkDirty records flag on this node and all ancestors. The walk always
// reaches the root: a postponed node keeps its flags after its parent is
// cleared, so a flagged node does not imply flagged ancestors.
func (n *Node) MarkDirty(flag PropertyChange) {
	for node := n; node != nil; node = node.parent {
		node.dirty |= flag
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty != NoChange
}

// Dirty returns the accumulated change flags.
func (n *Node) Dirty() PropertyChange { return n.dirty }

func (n *Node) clearDirty(flag PropertyChange) {
	n.dirty &^= flag
}

// signal marks the node with flag when changed is true and passes changed
// through.
func (n *Node) signal(changed bool, flag PropertyChange) bool {
	if changed {
		n.MarkDirty(flag)
	}
	return changed
}

// SetEdge sets padding, margin, border or safe-area padding.
func (n *Node) SetEdge(kind EdgeKind, e EdgeProperty) bool {
	return n.signal(n.props.SetEdge(kind, e), NeedsMeasure|NeedsLayout)
}

// SetPadding is shorthand for SetEdge(EdgePadding, e).
func (n *Node) SetPadding(e EdgeProperty) bool { return n.SetEdge(EdgePadding, e) }

// SetMargin is shorthand for SetEdge(EdgeMargin, e).
func (n *Node) SetMargin(e EdgeProperty) bool { return n.SetEdge(EdgeMargin, e) }

// SetBorder is shorthand for SetEdge(EdgeBorder, e).
func (n *Node) SetBorder(e EdgeProperty) bool { return n.SetEdge(EdgeBorder, e) }

// SetSafeAreaPadding is shorthand for SetEdge(EdgeSafeAreaPadding, e).
func (n *Node) SetSafeAreaPadding(e EdgeProperty) bool { return n.SetEdge(EdgeSafeAreaPadding, e) }

// SetSize declares the node's width and height.
func (n *Node) SetSize(width, height Length) bool {
	return n.signal(n.props.SetCalcIdealSize(NewCalcSize(width, height)), NeedsMeasure)
}

// SetMinSize declares the node's minimum width and height.
func (n *Node) SetMinSize(width, height Length) bool {
	return n.signal(n.props.SetCalcMinSize(NewCalcSize(width, height)), NeedsMeasure)
}

// SetMaxSize declares the node's maximum width and height.
func (n *Node) SetMaxSize(width, height Length) bool {
	return n.signal(n.props.SetCalcMaxSize(NewCalcSize(width, height)), NeedsMeasure)
}

// UpdateAspectRatio sets width/height; zero or negative clears it.
func (n *Node) UpdateAspectRatio(ratio float64) bool {
	return n.signal(n.props.UpdateAspectRatio(ratio), NeedsMeasure)
}

// UpdateLayoutWeight sets the weight used by container algorithms.
func (n *Node) UpdateLayoutWeight(weight float64) bool {
	return n.signal(n.props.UpdateLayoutWeight(weight), NeedsMeasure)
}

// SetMeasureType sets the node-wide measurement mode.
func (n *Node) SetMeasureType(t MeasureType) bool {
	return n.signal(n.props.SetMeasureType(t), NeedsMeasure)
}

// SetSizingPolicy sets the width and height policies.
func (n *Node) SetSizingPolicy(width, height SizingPolicy) bool {
	w := n.props.SetSizingPolicy(AxisHorizontal, width)
	h := n.props.SetSizingPolicy(AxisVertical, height)
	return n.signal(w || h, NeedsMeasure)
}

// SetAlignment sets how children are placed.
func (n *Node) SetAlignment(a Alignment) bool {
	return n.signal(n.props.SetAlignment(a), NeedsLayout)
}

// SetDirection declares the writing direction.
func (n *Node) SetDirection(d TextDirection) bool {
	return n.signal(n.props.SetDirection(d), NeedsMeasure|NeedsLayout)
}

// SetVisibility changes visibility. Entering or leaving Gone changes how much
// space the node takes, so the parent has to be measured again.
func (n *Node) SetVisibility(v Visibility) bool {
	old := n.props.Visibility()
	if !n.props.SetVisibility(v) {
		return false
	}
	if old == Gone || v == Gone {
		n.MarkDirty(NeedsMeasure | NeedsLayout)
	} else {
		n.MarkDirty(NeedsLayout)
	}
	return true
}

// SetIgnoreLayoutSafeArea declares which safe-area edges the node expands into.
func (n *Node) SetIgnoreLayoutSafeArea(edges SafeAreaEdge) bool {
	return n.signal(n.props.SetIgnoreLayoutSafeArea(IgnoreLayoutSafeAreaOpts{Edges: edges}), NeedsMeasure|NeedsLayout)
}

// SetLayoutRect pins the node to an absolute rect.
func (n *Node) SetLayoutRect(r Rect) bool {
	return n.signal(n.props.SetLayoutRect(r), NeedsMeasure|NeedsLayout)
}

// ClearLayoutRect removes an absolute rect set by SetLayoutRect.
func (n *Node) ClearLayoutRect() bool {
	return n.signal(n.props.ClearLayoutRect(), NeedsMeasure|NeedsLayout)
}

// Walk calls fn for n and every descendant, parents first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// AbsoluteRect returns the node's frame in the root's coordinates.
func (n *Node) AbsoluteRect() Rect {
	r := n.geometry.FrameRect()
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.geometry.frameOffset)
	}
	return r
}

// Overflows reports whether the node's frame reaches outside its parent's
// frame. Roots, gone nodes and postponed nodes never overflow.
func (n *Node) Overflows() bool {
	if n.parent == nil || n.postponed || n.props.Visibility() == Gone {
		return false
	}
	bounds := RectOf(Offset{}, n.parent.geometry.frameSize)
	return !bounds.ContainsRect(n.geometry.FrameRect())
}

// HitTest returns the deepest visible node whose frame contains the point,
// given in the coordinates of n's parent frame, or nil. Later siblings are
// on top.
func (n *Node) HitTest(x, y float64) *Node {
	if n.postponed || n.props.Visibility() != Visible {
		return nil
	}
	if !n.geometry.FrameRect().Contains(x, y) {
		return nil
	}
	local := Offset{X: x, Y: y}.Sub(n.geometry.frameOffset)
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(local.X, local.Y); hit != nil {
			return hit
		}
	}
	return n
}
