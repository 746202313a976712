package layout

// GeometryNode holds the output of the last layout pass for one node. It is
// written only by the box algorithm; everything else reads it.
type GeometryNode struct {
	// frameSize is the border box size, excluding margin.
	frameSize Size
	// frameOffset is the border box origin relative to the parent's frame
	// origin, margin included.
	frameOffset Offset

	// content is the intrinsic content reported by the node's measurer,
	// positioned inside the frame.
	content    Rect
	hasContent bool

	margin            PhysicalEdges
	paddingWithBorder PhysicalEdges

	parentConstraint    LayoutConstraint
	hasParentConstraint bool

	// Constraints and direction seen by the last completed Measure, used to
	// skip re-measurement when nothing changed.
	prevLayout    LayoutConstraint
	prevContent   LayoutConstraint
	prevDirection TextDirection
	hasPrev       bool

	safeAreaExpand    ExpandEdges
	hasSafeAreaExpand bool
}

// FrameSize returns the border box size.
func (g *GeometryNode) FrameSize() Size { return g.frameSize }

// FrameOffset returns the border box origin relative to the parent's frame.
func (g *GeometryNode) FrameOffset() Offset { return g.frameOffset }

// FrameRect returns the border box placed at its offset.
func (g *GeometryNode) FrameRect() Rect { return RectOf(g.frameOffset, g.frameSize) }

// Margin returns the resolved margin.
func (g *GeometryNode) Margin() PhysicalEdges { return g.margin }

// PaddingWithBorder returns the resolved padding, border and safe-area padding.
func (g *GeometryNode) PaddingWithBorder() PhysicalEdges { return g.paddingWithBorder }

// MarginFrameSize returns the frame size grown by the margin.
func (g *GeometryNode) MarginFrameSize() Size { return g.frameSize.PlusEdges(g.margin) }

// MarginFrameOffset returns the origin of the margin box.
func (g *GeometryNode) MarginFrameOffset() Offset { return g.frameOffset.Sub(g.margin.TopLeft()) }

// ContentSize returns the frame size minus padding and border. This is the
// area children are aligned in.
func (g *GeometryNode) ContentSize() Size { return g.frameSize.MinusEdges(g.paddingWithBorder) }

// ContentRect returns the intrinsic content rect when the node reported one,
// and otherwise the padding box inside the frame. Coordinates are relative to
// the frame origin.
func (g *GeometryNode) ContentRect() Rect {
	if g.hasContent {
		return g.content
	}
	return RectOf(Offset{}, g.frameSize).Inset(g.paddingWithBorder)
}

// HasContent reports whether the measurer produced intrinsic content.
func (g *GeometryNode) HasContent() bool { return g.hasContent }

// ParentConstraint returns the constraint the parent handed this node in the
// last pass.
func (g *GeometryNode) ParentConstraint() (LayoutConstraint, bool) {
	return g.parentConstraint, g.hasParentConstraint
}

// SafeAreaExpand returns the expansion applied to this node, if any.
func (g *GeometryNode) SafeAreaExpand() (ExpandEdges, bool) {
	return g.safeAreaExpand, g.hasSafeAreaExpand
}

func (g *GeometryNode) setParentConstraint(c LayoutConstraint) {
	g.parentConstraint = c
	g.hasParentConstraint = true
}

func (g *GeometryNode) setContentSize(s Size) {
	g.content = Rect{X: g.content.X, Y: g.content.Y, Width: s.Width, Height: s.Height}
	g.hasContent = true
}

func (g *GeometryNode) setContentOffset(o Offset) {
	g.content.X, g.content.Y = o.X, o.Y
}

func (g *GeometryNode) clearContent() {
	g.content = Rect{}
	g.hasContent = false
}

func (g *GeometryNode) setSafeAreaExpand(e ExpandEdges) {
	g.safeAreaExpand = e
	g.hasSafeAreaExpand = true
}

func (g *GeometryNode) clearSafeAreaExpand() {
	g.safeAreaExpand = ExpandEdges{}
	g.hasSafeAreaExpand = false
}

// reset zeroes the frame. Used for nodes that take no space.
func (g *GeometryNode) reset() {
	g.frameSize = Size{}
	g.frameOffset = Offset{}
	g.clearContent()
	g.hasPrev = false
}
