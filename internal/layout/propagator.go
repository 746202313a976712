package layout

// ConstraintPropagator owns a node's declared box properties and turns the
// constraint handed down by the parent into the node's own layout constraint,
// the content constraint for its measurer and the constraint for its children.
//
// Setters return whether the stored value changed. They do not mark anything
// dirty on their own; Node's wrappers do that.
type ConstraintPropagator struct {
	host *Node

	edges   [4]EdgeProperty
	hasEdge [4]bool

	calcMin   CalcSize
	calcMax   CalcSize
	calcIdeal CalcSize

	aspectRatio  float64
	layoutWeight float64
	measureType  MeasureType
	widthPolicy  SizingPolicy
	heightPolicy SizingPolicy
	alignment    Alignment
	direction    TextDirection
	visibility   Visibility
	ignoreSafe   IgnoreLayoutSafeAreaOpts
	lazyLayout   bool

	layoutRect    Rect
	hasLayoutRect bool

	layout     LayoutConstraint
	hasLayout  bool
	content    LayoutConstraint
	hasContent bool
	margin     PhysicalEdges

	safeArea      PhysicalEdges
	hasSafeArea   bool
	safeAreaDir   TextDirection
	safeAreaDirty bool
}

func newConstraintPropagator(host *Node) *ConstraintPropagator {
	return &ConstraintPropagator{
		host:      host,
		alignment: Center,
		direction: DirectionInherit,
	}
}

// SetEdge stores the declaration for kind.
func (p *ConstraintPropagator) SetEdge(kind EdgeKind, e EdgeProperty) bool {
	if p.hasEdge[kind] && p.edges[kind] == e {
		return false
	}
	p.edges[kind] = e
	p.hasEdge[kind] = true
	if kind != EdgeMargin {
		p.safeAreaDirty = true
	}
	return true
}

// ClearEdge removes the declaration for kind.
func (p *ConstraintPropagator) ClearEdge(kind EdgeKind) bool {
	if !p.hasEdge[kind] {
		return false
	}
	p.edges[kind] = EdgeProperty{}
	p.hasEdge[kind] = false
	p.safeAreaDirty = true
	return true
}

// Edge returns the declaration for kind.
func (p *ConstraintPropagator) Edge(kind EdgeKind) (EdgeProperty, bool) {
	return p.edges[kind], p.hasEdge[kind]
}

// SetCalcMinSize declares a programmatic minimum size.
func (p *ConstraintPropagator) SetCalcMinSize(s CalcSize) bool {
	if p.calcMin == s {
		return false
	}
	p.calcMin = s
	return true
}

// SetCalcMaxSize declares a programmatic maximum size.
func (p *ConstraintPropagator) SetCalcMaxSize(s CalcSize) bool {
	if p.calcMax == s {
		return false
	}
	p.calcMax = s
	return true
}

// SetCalcIdealSize declares the node's own width and height.
func (p *ConstraintPropagator) SetCalcIdealSize(s CalcSize) bool {
	if p.calcIdeal == s {
		return false
	}
	p.calcIdeal = s
	return true
}

// CalcIdealSize returns the declared width and height.
func (p *ConstraintPropagator) CalcIdealSize() CalcSize { return p.calcIdeal }

// UpdateAspectRatio sets width/height. A zero or negative ratio clears it.
func (p *ConstraintPropagator) UpdateAspectRatio(ratio float64) bool {
	if ratio <= 0 {
		ratio = 0
	}
	if p.aspectRatio == ratio {
		return false
	}
	p.aspectRatio = ratio
	return true
}

// AspectRatio returns the declared ratio.
func (p *ConstraintPropagator) AspectRatio() (float64, bool) {
	return p.aspectRatio, p.aspectRatio > 0
}

// UpdateLayoutWeight stores the weight used by container algorithms.
func (p *ConstraintPropagator) UpdateLayoutWeight(weight float64) bool {
	if p.layoutWeight == weight {
		return false
	}
	p.layoutWeight = weight
	return true
}

// LayoutWeight returns the declared weight.
func (p *ConstraintPropagator) LayoutWeight() float64 { return p.layoutWeight }

// SetMeasureType sets the node-wide measurement mode.
func (p *ConstraintPropagator) SetMeasureType(t MeasureType) bool {
	if p.measureType == t {
		return false
	}
	p.measureType = t
	return true
}

// MeasureType returns the node-wide measurement mode.
func (p *ConstraintPropagator) MeasureType() MeasureType { return p.measureType }

// SetSizingPolicy sets the policy for one axis.
func (p *ConstraintPropagator) SetSizingPolicy(axis Axis, policy SizingPolicy) bool {
	target := &p.widthPolicy
	if axis == AxisVertical {
		target = &p.heightPolicy
	}
	if *target == policy {
		return false
	}
	*target = policy
	return true
}

// SizingPolicy returns the policy for one axis.
func (p *ConstraintPropagator) SizingPolicy(axis Axis) SizingPolicy {
	if axis == AxisVertical {
		return p.heightPolicy
	}
	return p.widthPolicy
}

// SetAlignment sets how children are placed in the content area.
func (p *ConstraintPropagator) SetAlignment(a Alignment) bool {
	if p.alignment == a {
		return false
	}
	p.alignment = a
	return true
}

// Alignment returns the declared alignment.
func (p *ConstraintPropagator) Alignment() Alignment { return p.alignment }

// SetDirection declares the writing direction.
func (p *ConstraintPropagator) SetDirection(d TextDirection) bool {
	if p.direction == d {
		return false
	}
	p.direction = d
	return true
}

// DeclaredDirection returns the direction as declared, possibly Inherit or Auto.
func (p *ConstraintPropagator) DeclaredDirection() TextDirection { return p.direction }

// Direction resolves the writing direction against ancestors and the locale.
func (p *ConstraintPropagator) Direction() TextDirection {
	parent := DirectionInherit
	if p.host != nil && p.host.parent != nil {
		parent = p.host.parent.props.Direction()
	}
	if p.host == nil {
		return ResolveDirection(p.direction, parent, defaultLocale)
	}
	return ResolveDirection(p.direction, parent, p.host.Locale())
}

// SetVisibility sets whether the node is drawn and whether it takes space.
func (p *ConstraintPropagator) SetVisibility(v Visibility) bool {
	if p.visibility == v {
		return false
	}
	p.visibility = v
	return true
}

// Visibility returns the node's visibility.
func (p *ConstraintPropagator) Visibility() Visibility { return p.visibility }

// SetIgnoreLayoutSafeArea declares the safe-area edges the node expands into.
func (p *ConstraintPropagator) SetIgnoreLayoutSafeArea(opts IgnoreLayoutSafeAreaOpts) bool {
	if p.ignoreSafe == opts {
		return false
	}
	p.ignoreSafe = opts
	return true
}

// IgnoreLayoutSafeArea returns the declared expansion edges.
func (p *ConstraintPropagator) IgnoreLayoutSafeArea() IgnoreLayoutSafeAreaOpts { return p.ignoreSafe }

// SetLazyLayout marks the node as a lazily laid out list that keeps the
// viewport anchor of its constraint.
func (p *ConstraintPropagator) SetLazyLayout(lazy bool) bool {
	if p.lazyLayout == lazy {
		return false
	}
	p.lazyLayout = lazy
	return true
}

// SetLayoutRect pins the node to an absolute rect, bypassing constraint
// resolution.
func (p *ConstraintPropagator) SetLayoutRect(r Rect) bool {
	if p.hasLayoutRect && p.layoutRect == r {
		return false
	}
	p.layoutRect = r
	p.hasLayoutRect = true
	return true
}

// ClearLayoutRect removes the absolute rect override.
func (p *ConstraintPropagator) ClearLayoutRect() bool {
	if !p.hasLayoutRect {
		return false
	}
	p.layoutRect = Rect{}
	p.hasLayoutRect = false
	return true
}

// LayoutRect returns the absolute rect override.
func (p *ConstraintPropagator) LayoutRect() (Rect, bool) {
	return p.layoutRect, p.hasLayoutRect
}

// LayoutConstraint returns the constraint from the last ResolveConstraint.
func (p *ConstraintPropagator) LayoutConstraint() (LayoutConstraint, bool) {
	return p.layout, p.hasLayout
}

// ContentConstraint returns the constraint from the last CreateContentConstraint.
func (p *ConstraintPropagator) ContentConstraint() (LayoutConstraint, bool) {
	return p.content, p.hasContent
}

// Margin returns the margin resolved by the last ResolveConstraint.
func (p *ConstraintPropagator) Margin() PhysicalEdges { return p.margin }

// ResolveConstraint turns the parent's constraint into this node's layout
// constraint. Resolution always starts over from parent, so calling it
// repeatedly with the same input gives the same result.
//
// The order of the steps is significant: margin, then calc min/max/ideal,
// then match-parent, then ideal reconciliation, then the padding check, then
// aspect ratio.
func (p *ConstraintPropagator) ResolveConstraint(parent LayoutConstraint) {
	if p.host != nil {
		p.host.geometry.setParentConstraint(parent)
	}
	if p.hasLayoutRect {
		s := p.layoutRect.Size()
		p.layout = LayoutConstraint{
			Scale:            DefaultScale(),
			MinSize:          s,
			MaxSize:          s,
			PercentReference: s,
			SelfIdealSize:    OptionalSizeOf(s),
		}
		p.hasLayout = true
		p.margin = PhysicalEdges{}
		return
	}

	c := parent
	if !p.lazyLayout {
		c.ViewPosRef = ViewPosReference{}
	}

	p.margin = PhysicalEdges{}
	if p.hasEdge[EdgeMargin] {
		p.margin = p.edges[EdgeMargin].Resolve(p.Direction(), parent.Scale, parent.PercentReference.Width)
		c.MinusEdgesToNonNegative(p.margin)
	}

	originMax := c.MaxSize
	p.applyCalcConstraint(&c, parent)
	p.checkSelfIdealSize(&c, originMax)

	p.layout = c
	p.hasLayout = true
	p.safeAreaDirty = true
	p.checkBorderAndPadding()
	p.checkAspectRatio()
	p.layout.normalize()
}

// applyCalcConstraint merges the calc min/max/ideal, resolved against the
// parent's percent reference.
func (p *ConstraintPropagator) applyCalcConstraint(c *LayoutConstraint, parent LayoutConstraint) {
	if !p.calcMax.IsNull() {
		c.UpdateMaxSizeWithCheck(p.calcMax.resolveSize(parent.Scale, parent.PercentReference))
	}
	if !p.calcMin.IsNull() {
		c.UpdateMinSizeWithCheck(p.calcMin.resolveSize(parent.Scale, parent.PercentReference))
	}
	if !p.calcIdeal.IsNull() {
		c.UpdateSelfIdealSizeWithCheck(p.calcIdeal.resolveOptional(parent.Scale, parent.PercentReference))
	}
}

// checkSelfIdealSize applies match-parent and reconciles the ideal size with
// calc min/max, now resolved against the margin-reduced percent reference.
// An invalid calc max restores the pre-calc max; a calc max below calc min is
// replaced by calc min.
func (p *ConstraintPropagator) checkSelfIdealSize(c *LayoutConstraint, originMax Size) {
	if p.measureType == MeasureMatchParent {
		c.UpdateSelfIdealSizeWithCheck(c.ParentIdealSize)
	}
	if p.calcMin.IsNull() && p.calcMax.IsNull() && p.calcIdeal.IsNull() {
		return
	}
	minSize := Size{Width: -1, Height: -1}
	maxSize := Size{Width: -1, Height: -1}
	if !p.calcMax.IsNull() {
		maxSize = p.calcMax.resolveSize(c.Scale, c.PercentReference)
	}
	if !p.calcMin.IsNull() {
		minSize = p.calcMin.resolveSize(c.Scale, c.PercentReference)
	}
	if !p.calcMax.IsNull() {
		c.SelfIdealSize.UpdateWidthWhenSmaller(maxSize)
		switch {
		case greatNotEqual(maxSize.Width, 0) && greatOrEqual(maxSize.Width, minSize.Width):
			c.UpdateMaxWidthWithCheck(maxSize)
		case greatNotEqual(maxSize.Width, 0) && lessNotEqual(maxSize.Width, minSize.Width):
			c.MaxSize.Width = minSize.Width
		default:
			c.MaxSize.Width = originMax.Width
		}
		c.SelfIdealSize.UpdateHeightWhenSmaller(maxSize)
		switch {
		case greatNotEqual(maxSize.Height, 0) && greatOrEqual(maxSize.Height, minSize.Height):
			c.UpdateMaxHeightWithCheck(maxSize)
		case greatNotEqual(maxSize.Height, 0) && lessNotEqual(maxSize.Height, minSize.Height):
			c.MaxSize.Height = minSize.Height
		default:
			c.MaxSize.Height = originMax.Height
		}
	}
	c.UpdateMinSizeWithCheck(minSize)
	c.SelfIdealSize.UpdateSizeWhenLarger(minSize)
}

// checkBorderAndPadding raises a set ideal axis that is smaller than the
// padding and border on that axis.
func (p *ConstraintPropagator) checkBorderAndPadding() {
	ideal := &p.layout.SelfIdealSize
	if ideal.IsNull() {
		return
	}
	pb := p.CreatePaddingAndBorder(true, true)
	if ideal.Width.Set && greatNotEqual(pb.Horizontal(), ideal.Width.Value) {
		ideal.Width.Value = pb.Horizontal()
	}
	if ideal.Height.Set && greatNotEqual(pb.Vertical(), ideal.Height.Value) {
		ideal.Height.Value = pb.Vertical()
	}
}

// checkAspectRatio derives the missing ideal axis from the ratio. A set width
// drives the height; otherwise a set height drives the width.
func (p *ConstraintPropagator) checkAspectRatio() {
	ratio, ok := p.AspectRatio()
	if !ok {
		return
	}
	c := &p.layout
	maxWidth, maxHeight := c.MaxSize.Width, c.MaxSize.Height
	if maxHeight > maxWidth/ratio {
		maxHeight = maxWidth / ratio
	}
	c.MaxSize.Height = maxHeight

	switch {
	case c.SelfIdealSize.Width.Set:
		w := c.SelfIdealSize.Width.Value
		h := w / ratio
		if h > maxHeight {
			h = maxHeight
			w = h * ratio
		}
		c.SelfIdealSize.Width = Some(w)
		c.SelfIdealSize.Height = Some(h)
	case c.SelfIdealSize.Height.Set:
		h := c.SelfIdealSize.Height.Value
		w := h * ratio
		if w > maxWidth {
			w = maxWidth
			h = w / ratio
		}
		c.SelfIdealSize.Width = Some(w)
		c.SelfIdealSize.Height = Some(h)
	}
}

// CreateContentConstraint derives the constraint shown to the node's own
// measurer: the layout constraint with padding, then border, then safe-area
// padding removed.
func (p *ConstraintPropagator) CreateContentConstraint() {
	if !p.hasLayout {
		return
	}
	c := p.layout
	if c.ParentIdealSize.Width.Set {
		c.PercentReference.Width = c.ParentIdealSize.Width.Value
	}
	if c.ParentIdealSize.Height.Set {
		c.PercentReference.Height = c.ParentIdealSize.Height.Value
	}
	padding, border := p.resolvePadding(), p.resolveBorder()
	c.MinusEdgesToNonNegative(padding)
	c.MinusEdgesToNonNegative(border)
	c.MinusEdgesToNonNegative(p.safeAreaPadding(false))
	if p.lazyLayout && c.ViewPosRef.Valid {
		c.ViewPosRef = p.adjustViewPosRef(c.ViewPosRef, padding.Plus(border).Plus(p.margin))
	}
	p.content = c
	p.hasContent = true
}

func (p *ConstraintPropagator) adjustViewPosRef(ref ViewPosReference, e PhysicalEdges) ViewPosReference {
	start, end := e.Left.Or(0), e.Right.Or(0)
	if ref.Axis == AxisVertical {
		start, end = e.Top.Or(0), e.Bottom.Or(0)
	}
	if ref.Edge == ReferenceStart {
		ref.ReferencePos += start
	} else {
		ref.ReferencePos -= end
	}
	return ref
}

// CreateChildConstraint derives the constraint for children from the content
// constraint. The node's ideal size becomes the children's parent ideal size
// and caps their maximum and percent reference on each set axis.
func (p *ConstraintPropagator) CreateChildConstraint() LayoutConstraint {
	if !p.hasLayout {
		return NewLayoutConstraint()
	}
	if !p.hasContent {
		p.CreateContentConstraint()
	}
	c := p.content
	c.ParentIdealSize = c.SelfIdealSize
	if w := c.ParentIdealSize.Width; w.Set {
		c.MaxSize.Width = w.Value
		c.PercentReference.Width = w.Value
	}
	if h := c.ParentIdealSize.Height; h.Set {
		c.MaxSize.Height = h.Value
		c.PercentReference.Height = h.Value
	}
	// A fix-at-ideal axis takes its children's size verbatim, so they are
	// not bounded by this node's maximum.
	if p.widthPolicy == FixAtIdealSize && !c.ParentIdealSize.Width.Set {
		c.MaxSize.Width = Infinity
	}
	if p.heightPolicy == FixAtIdealSize && !c.ParentIdealSize.Height.Set {
		c.MaxSize.Height = Infinity
	}
	c.SelfIdealSize.Reset()
	c.MinSize = Size{}
	return c
}

// CreatePaddingAndBorder returns the resolved padding plus border, plus the
// safe-area padding when includeSafeArea is set. The safe-area part is cached
// until forceRecompute is passed, an edge changes or the direction changes.
func (p *ConstraintPropagator) CreatePaddingAndBorder(includeSafeArea, forceRecompute bool) PhysicalEdges {
	out := p.resolvePadding().Plus(p.resolveBorder())
	if includeSafeArea {
		out = out.Plus(p.safeAreaPadding(forceRecompute))
	}
	return out
}

// CreateMargin resolves the margin against the current constraint.
func (p *ConstraintPropagator) CreateMargin() PhysicalEdges {
	if !p.hasEdge[EdgeMargin] {
		return PhysicalEdges{}
	}
	scale, ref := p.reference()
	return p.edges[EdgeMargin].Resolve(p.Direction(), scale, ref)
}

// HasFixedWidth reports whether the declared width is set and, when
// checkPercent is true, not a percentage.
func (p *ConstraintPropagator) HasFixedWidth(checkPercent bool) bool {
	return p.calcIdeal.Width.IsFixed(checkPercent)
}

// HasFixedHeight is the height counterpart of HasFixedWidth.
func (p *ConstraintPropagator) HasFixedHeight(checkPercent bool) bool {
	return p.calcIdeal.Height.IsFixed(checkPercent)
}

// IsAdaptive reports whether either axis is sized relative to the parent's
// resolved size.
func (p *ConstraintPropagator) IsAdaptive() bool {
	return p.widthPolicy != NoMatch || p.heightPolicy != NoMatch
}

// IsExpandConstraintNeeded reports whether the node ignores a safe-area edge
// on an axis it sizes to its parent.
func (p *ConstraintPropagator) IsExpandConstraintNeeded() bool {
	edges := p.ignoreSafe.Edges
	if edges == SafeAreaEdgeNone {
		return false
	}
	needed := false
	if edges&(SafeAreaEdgeTop|SafeAreaEdgeBottom) != 0 {
		needed = needed || p.heightPolicy == MatchParent
	}
	if edges&(SafeAreaEdgeStart|SafeAreaEdgeEnd) != 0 {
		needed = needed || p.widthPolicy == MatchParent
	}
	return needed
}

func (p *ConstraintPropagator) reference() (ScaleProperty, float64) {
	if !p.hasLayout {
		return DefaultScale(), 0
	}
	return p.layout.Scale, p.layout.PercentReference.Width
}

func (p *ConstraintPropagator) resolvePadding() PhysicalEdges {
	if !p.hasEdge[EdgePadding] {
		return PhysicalEdges{}
	}
	scale, ref := p.reference()
	return p.edges[EdgePadding].Resolve(p.Direction(), scale, ref)
}

func (p *ConstraintPropagator) resolveBorder() PhysicalEdges {
	if !p.hasEdge[EdgeBorder] || p.borderUnoccupied() {
		return PhysicalEdges{}
	}
	scale, ref := p.reference()
	return p.edges[EdgeBorder].Resolve(p.Direction(), scale, ref)
}

func (p *ConstraintPropagator) borderUnoccupied() bool {
	if p.host == nil {
		return false
	}
	if bu, ok := p.host.measurer.(borderUnoccupied); ok {
		return bu.BorderUnoccupied()
	}
	return false
}

// safeAreaPadding returns the resolved safe-area padding truncated so that it
// never exceeds the ideal content size on its axis.
func (p *ConstraintPropagator) safeAreaPadding(forceRecompute bool) PhysicalEdges {
	if !p.hasEdge[EdgeSafeAreaPadding] {
		return PhysicalEdges{}
	}
	dir := p.Direction()
	if p.hasSafeArea && !forceRecompute && !p.safeAreaDirty && p.safeAreaDir == dir {
		return p.safeArea
	}
	scale, ref := p.reference()
	decl := p.edges[EdgeSafeAreaPadding]
	sa := decl.Resolve(dir, scale, ref)
	if p.hasLayout {
		inner := p.layout
		inner.MinusEdgesToNonNegative(p.resolveBorder())
		inner.MinusEdgesToNonNegative(p.resolvePadding())
		truncateSafeAreaPadding(inner.SelfIdealSize.Height, &sa.Top, &sa.Bottom)
		if dir == DirectionRTL && decl.IsLogical() {
			truncateSafeAreaPadding(inner.SelfIdealSize.Width, &sa.Right, &sa.Left)
		} else {
			truncateSafeAreaPadding(inner.SelfIdealSize.Width, &sa.Left, &sa.Right)
		}
	}
	p.safeArea = sa
	p.hasSafeArea = true
	p.safeAreaDir = dir
	p.safeAreaDirty = false
	return sa
}

// truncateSafeAreaPadding fits start and end into rng. Start is truncated
// first and end gets whatever start leaves.
func truncateSafeAreaPadding(rng Dim, start, end *Dim) {
	if !rng.Set {
		return
	}
	if start.Set && greatNotEqual(start.Value, rng.Value) {
		*start = rng
	}
	if end.Set {
		limit := rng.Value
		if start.Set {
			limit -= start.Value
		}
		end.Value = nonNegative(min(limit, end.Value))
	}
}
