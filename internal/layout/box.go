package layout

import "go.uber.org/zap"

// BoxSizingAlgorithm runs the two phases of a pass: Measure, post-order, and
// Layout, pre-order. It keeps no per-pass state of its own; everything it
// produces is written into the nodes' GeometryNodes.
type BoxSizingAlgorithm struct {
	logger   *zap.Logger
	adaptive *AdaptiveChildrenMeasurer
}

func newBoxSizingAlgorithm(logger *zap.Logger, registry *ExpansionRegistry, safeArea SafeAreaProvider) *BoxSizingAlgorithm {
	b := &BoxSizingAlgorithm{logger: logger}
	b.adaptive = &AdaptiveChildrenMeasurer{
		box:      b,
		registry: registry,
		safeArea: safeArea,
		logger:   logger,
	}
	return b
}

// Measure sizes n and its subtree under the parent's constraint.
func (b *BoxSizingAlgorithm) Measure(n *Node, parent LayoutConstraint) {
	g, p := n.geometry, n.props
	if p.Visibility() == Gone {
		g.reset()
		g.setParentConstraint(parent)
		n.clearDirty(NeedsMeasure)
		return
	}

	p.ResolveConstraint(parent)
	p.CreateContentConstraint()
	layoutC, _ := p.LayoutConstraint()
	contentC, _ := p.ContentConstraint()
	dir := p.Direction()

	// An ancestor's direction change swaps left and right edges without
	// changing any constraint.
	if !n.dirty.Has(NeedsMeasure) && g.hasPrev && g.prevDirection == dir &&
		g.prevLayout.Equal(layoutC) && g.prevContent.Equal(contentC) {
		b.logger.Debug("measure skipped",
			zap.String("node", n.id),
			zap.Stringer("constraint", layoutC))
		return
	}

	g.margin = p.Margin()
	g.paddingWithBorder = p.CreatePaddingAndBorder(true, false)

	childC := p.CreateChildConstraint()
	var adaptive []*Node
	for _, child := range n.children {
		if child.props.IsAdaptive() {
			adaptive = append(adaptive, child)
			continue
		}
		b.Measure(child, childC)
	}

	content, hasContent := n.measurer.MeasureContent(contentC, n)
	if hasContent {
		g.setContentSize(content)
	} else {
		g.clearContent()
	}

	g.frameSize = b.frameSize(n, layoutC, content, hasContent)
	b.adjustByAspectRatio(n, layoutC)

	b.logger.Debug("measured",
		zap.String("node", n.id),
		zap.Stringer("constraint", layoutC),
		zap.Stringer("frame", g.frameSize))

	if len(adaptive) > 0 {
		b.adaptive.MeasureChildren(n, adaptive)
	}

	g.prevLayout, g.prevContent, g.prevDirection, g.hasPrev = layoutC, contentC, dir, true
	n.clearDirty(NeedsMeasure)
}

// frameSize derives the border box size one axis at a time.
func (b *BoxSizingAlgorithm) frameSize(n *Node, c LayoutConstraint, content Size, hasContent bool) Size {
	pb := n.geometry.paddingWithBorder
	extent, hasChildren := childrenExtent(n)
	in := axisInputs{
		adaptive:    n.props.IsAdaptive(),
		matchParent: n.props.MeasureType() == MeasureMatchParent,
		hasContent:  hasContent,
		hasChildren: hasChildren,
	}

	in.policy, in.ideal, in.parentIdeal = n.props.SizingPolicy(AxisHorizontal), c.SelfIdealSize.Width, c.ParentIdealSize.Width
	in.content, in.children, in.edges = content.Width, extent.Width, pb.Horizontal()
	in.min, in.max = c.MinSize.Width, c.MaxSize.Width
	width := in.resolve()

	in.policy, in.ideal, in.parentIdeal = n.props.SizingPolicy(AxisVertical), c.SelfIdealSize.Height, c.ParentIdealSize.Height
	in.content, in.children, in.edges = content.Height, extent.Height, pb.Vertical()
	in.min, in.max = c.MinSize.Height, c.MaxSize.Height
	height := in.resolve()

	return Size{Width: width, Height: height}
}

// axisInputs is everything frame sizing needs for a single axis.
type axisInputs struct {
	policy      SizingPolicy
	adaptive    bool
	matchParent bool

	ideal, parentIdeal Dim
	content, children  float64
	hasContent         bool
	hasChildren        bool
	edges              float64
	min, max           float64
}

func (in axisInputs) resolve() float64 {
	switch in.policy {
	case MatchParent:
		if in.parentIdeal.Set {
			return clamp(in.parentIdeal.Value, in.min, in.max)
		}
	case WrapContent:
		v := in.edges
		if in.hasContent {
			v = max(v, in.content+in.edges)
		}
		if in.hasChildren {
			v = max(v, in.children+in.edges)
		}
		return clamp(v, in.min, in.max)
	case FixAtIdealSize:
		v := in.edges
		switch {
		case in.hasContent:
			v = in.content + in.edges
		case in.hasChildren:
			v = in.children + in.edges
		case in.ideal.Set:
			v = in.ideal.Value
		}
		return max(v, in.min)
	}

	var v float64
	switch {
	case in.ideal.Set:
		v = in.ideal.Value
	case in.matchParent && in.parentIdeal.Set:
		v = in.parentIdeal.Value
	case in.hasContent && !in.adaptive:
		v = in.content + in.edges
	case in.hasChildren:
		v = in.children + in.edges
	default:
		v = in.edges
	}
	return clamp(v, in.min, in.max)
}

// childrenExtent returns the bounding size of the ordinary children's margin
// boxes. Column nodes stack heights; others take the tallest child.
func childrenExtent(n *Node) (Size, bool) {
	var extent Size
	found := false
	for _, child := range n.children {
		if child.props.Visibility() == Gone || child.props.IsAdaptive() {
			continue
		}
		s := child.geometry.MarginFrameSize()
		extent.Width = max(extent.Width, s.Width)
		if n.column {
			extent.Height += s.Height
		} else {
			extent.Height = max(extent.Height, s.Height)
		}
		found = true
	}
	return extent, found
}

// adjustByAspectRatio re-derives the frame height from the width for
// measurers that ask for it, unless both ideal axes were given.
func (b *BoxSizingAlgorithm) adjustByAspectRatio(n *Node, c LayoutConstraint) {
	adj, ok := n.measurer.(aspectAdjuster)
	if !ok || !adj.AdjustByAspectRatio() {
		return
	}
	ratio, ok := n.props.AspectRatio()
	if !ok || c.SelfIdealSize.IsValid() {
		return
	}
	g := n.geometry
	g.frameSize.Height = g.frameSize.Width / ratio
}

// Layout positions the children of n inside its content area, then recurses.
// The node's own offset has already been written by its parent.
func (b *BoxSizingAlgorithm) Layout(n *Node) {
	if n.postponed {
		return
	}
	if n.props.Visibility() == Gone {
		n.clearDirty(NeedsLayout)
		return
	}
	g := n.geometry
	align := n.props.Alignment().Resolve(n.props.Direction())
	contentSize := g.ContentSize()
	paddingOffset := g.paddingWithBorder.TopLeft()

	for _, child := range n.children {
		b.placeChild(child, contentSize, paddingOffset, align)
		b.Layout(child)
	}
	if g.hasContent {
		g.setContentOffset(AlignPosition(contentSize, g.content.Size(), align).Add(paddingOffset))
	}
	n.clearDirty(NeedsLayout)
}

// placeChild writes the child's frame offset relative to its parent's frame.
func (b *BoxSizingAlgorithm) placeChild(child *Node, contentSize Size, paddingOffset Offset, align Alignment) {
	if child.postponed || child.props.Visibility() == Gone {
		return
	}
	cg := child.geometry
	if r, ok := child.props.LayoutRect(); ok {
		cg.frameOffset = r.Offset()
		return
	}
	size := contentSize
	var shift Offset
	if e, ok := cg.SafeAreaExpand(); ok {
		size = size.Add(e.Size())
		shift = e.Offset()
	}
	offset := AlignPosition(size, cg.MarginFrameSize(), align).Add(paddingOffset).Sub(shift)
	cg.frameOffset = offset.Add(cg.margin.TopLeft())
	b.logger.Debug("placed",
		zap.String("node", child.id),
		zap.Float64("x", cg.frameOffset.X),
		zap.Float64("y", cg.frameOffset.Y))
}

// layoutChild places and lays out one child of parent. Used when a postponed
// child is finished outside a full pass.
func (b *BoxSizingAlgorithm) layoutChild(parent, child *Node) {
	pg := parent.geometry
	align := parent.props.Alignment().Resolve(parent.props.Direction())
	b.placeChild(child, pg.ContentSize(), pg.paddingWithBorder.TopLeft(), align)
	b.Layout(child)
}
