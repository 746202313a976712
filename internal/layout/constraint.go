package layout

import "fmt"

// Axis selects the horizontal or vertical direction.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// ReferenceEdge says which end of a lazy viewport the anchor position counts from.
type ReferenceEdge uint8

const (
	ReferenceStart ReferenceEdge = iota
	ReferenceEnd
)

// ViewPosReference anchors a lazily laid out list to a viewport position.
type ViewPosReference struct {
	Valid        bool
	Axis         Axis
	Edge         ReferenceEdge
	ReferencePos float64
}

// LayoutConstraint is the sizing constraint copied down the tree each pass.
type LayoutConstraint struct {
	Scale            ScaleProperty
	MinSize          Size
	MaxSize          Size
	PercentReference Size
	SelfIdealSize    OptionalSize
	ParentIdealSize  OptionalSize
	ViewPosRef       ViewPosReference
}

// NewLayoutConstraint returns the neutral constraint: zero minimum, unbounded
// maximum, no ideal sizes.
func NewLayoutConstraint() LayoutConstraint {
	return LayoutConstraint{
		Scale:   DefaultScale(),
		MaxSize: Size{Width: Infinity, Height: Infinity},
	}
}

// RootConstraint returns the implicit constraint handed to a tree root laid
// out inside a viewport.
func RootConstraint(viewport Size) LayoutConstraint {
	c := NewLayoutConstraint()
	c.MaxSize = viewport
	c.PercentReference = viewport
	c.ParentIdealSize = OptionalSizeOf(viewport)
	return c
}

func (c LayoutConstraint) String() string {
	return fmt.Sprintf("{min%s max%s pref%s self[%v,%v] parent[%v,%v]}",
		c.MinSize, c.MaxSize, c.PercentReference,
		c.SelfIdealSize.Width, c.SelfIdealSize.Height,
		c.ParentIdealSize.Width, c.ParentIdealSize.Height)
}

// Equal compares two constraints within the engine tolerance.
func (c LayoutConstraint) Equal(other LayoutConstraint) bool {
	return c.Scale == other.Scale &&
		c.MinSize.Equal(other.MinSize) &&
		c.MaxSize.Equal(other.MaxSize) &&
		c.PercentReference.Equal(other.PercentReference) &&
		optionalEqual(c.SelfIdealSize, other.SelfIdealSize) &&
		optionalEqual(c.ParentIdealSize, other.ParentIdealSize) &&
		c.ViewPosRef == other.ViewPosRef
}

func optionalEqual(a, b OptionalSize) bool {
	dimEqual := func(x, y Dim) bool {
		if x.Set != y.Set {
			return false
		}
		return !x.Set || nearEqual(x.Value, y.Value)
	}
	return dimEqual(a.Width, b.Width) && dimEqual(a.Height, b.Height)
}

// MinusEdgesToNonNegative removes the edges from every size the constraint
// carries. No axis ever goes below zero, however large the edges are.
func (c *LayoutConstraint) MinusEdgesToNonNegative(e PhysicalEdges) {
	h, v := e.Horizontal(), e.Vertical()
	c.MaxSize = Size{Width: nonNegative(c.MaxSize.Width - h), Height: nonNegative(c.MaxSize.Height - v)}
	c.MinSize = Size{Width: nonNegative(c.MinSize.Width - h), Height: nonNegative(c.MinSize.Height - v)}
	c.PercentReference = Size{
		Width:  nonNegative(c.PercentReference.Width - h),
		Height: nonNegative(c.PercentReference.Height - v),
	}
	c.SelfIdealSize.minusNonNegative(h, v)
	c.ParentIdealSize.minusNonNegative(h, v)
}

// UpdateMaxSizeWithCheck tightens the maximum on each axis where s holds a
// valid value smaller than the current maximum.
func (c *LayoutConstraint) UpdateMaxSizeWithCheck(s Size) {
	c.UpdateMaxWidthWithCheck(s)
	c.UpdateMaxHeightWithCheck(s)
}

// UpdateMaxWidthWithCheck is the width half of UpdateMaxSizeWithCheck.
func (c *LayoutConstraint) UpdateMaxWidthWithCheck(s Size) {
	if s.Width >= 0 && s.Width < c.MaxSize.Width {
		c.MaxSize.Width = s.Width
	}
}

// UpdateMaxHeightWithCheck is the height half of UpdateMaxSizeWithCheck.
func (c *LayoutConstraint) UpdateMaxHeightWithCheck(s Size) {
	if s.Height >= 0 && s.Height < c.MaxSize.Height {
		c.MaxSize.Height = s.Height
	}
}

// UpdateMinSizeWithCheck raises the minimum on each axis where s holds a
// larger value.
func (c *LayoutConstraint) UpdateMinSizeWithCheck(s Size) {
	if s.Width > c.MinSize.Width {
		c.MinSize.Width = s.Width
	}
	if s.Height > c.MinSize.Height {
		c.MinSize.Height = s.Height
	}
}

// UpdateSelfIdealSizeWithCheck overwrites the ideal on every axis o sets to a
// non-negative value.
func (c *LayoutConstraint) UpdateSelfIdealSizeWithCheck(o OptionalSize) {
	if o.Width.Set && o.Width.Value >= 0 {
		c.SelfIdealSize.Width = o.Width
	}
	if o.Height.Set && o.Height.Value >= 0 {
		c.SelfIdealSize.Height = o.Height
	}
}

// normalize restores min <= max (min wins) and clamps a set ideal into range.
func (c *LayoutConstraint) normalize() {
	c.MinSize = Size{Width: nonNegative(c.MinSize.Width), Height: nonNegative(c.MinSize.Height)}
	if c.MaxSize.Width < c.MinSize.Width {
		c.MaxSize.Width = c.MinSize.Width
	}
	if c.MaxSize.Height < c.MinSize.Height {
		c.MaxSize.Height = c.MinSize.Height
	}
	if c.SelfIdealSize.Width.Set {
		c.SelfIdealSize.Width.Value = clamp(c.SelfIdealSize.Width.Value, c.MinSize.Width, c.MaxSize.Width)
	}
	if c.SelfIdealSize.Height.Set {
		c.SelfIdealSize.Height.Value = clamp(c.SelfIdealSize.Height.Value, c.MinSize.Height, c.MaxSize.Height)
	}
}
