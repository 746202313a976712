package layout

import "fmt"

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("[%.2f x %.2f]", s.Width, s.Height)
}

// IsNonNegative reports whether both axes are >= 0.
func (s Size) IsNonNegative() bool {
	return s.Width >= 0 && s.Height >= 0
}

// IsInfinite reports whether either axis is unbounded.
func (s Size) IsInfinite() bool {
	return isInfinite(s.Width) || isInfinite(s.Height)
}

// Add returns the component-wise sum.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Equal compares two sizes within the engine tolerance.
func (s Size) Equal(other Size) bool {
	return nearEqual(s.Width, other.Width) && nearEqual(s.Height, other.Height)
}

// Constrain clamps each axis into [minSize, maxSize]; min wins on conflict.
func (s Size) Constrain(minSize, maxSize Size) Size {
	return Size{
		Width:  clamp(s.Width, minSize.Width, maxSize.Width),
		Height: clamp(s.Height, minSize.Height, maxSize.Height),
	}
}

// MinusEdges removes the edges from the size, never going below zero.
func (s Size) MinusEdges(e PhysicalEdges) Size {
	return Size{
		Width:  nonNegative(s.Width - e.Horizontal()),
		Height: nonNegative(s.Height - e.Vertical()),
	}
}

// PlusEdges adds the edges to the size.
func (s Size) PlusEdges(e PhysicalEdges) Size {
	return Size{
		Width:  s.Width + e.Horizontal(),
		Height: s.Height + e.Vertical(),
	}
}

// Offset represents an (X, Y) displacement.
type Offset struct {
	X, Y float64
}

// Add returns a new Offset moved by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns a new Offset with other subtracted.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Dim is a single optional length along one axis.
type Dim struct {
	Value float64
	Set   bool
}

// Some returns a Dim holding v.
func Some(v float64) Dim {
	return Dim{Value: v, Set: true}
}

// Or returns the value when set and def otherwise.
func (d Dim) Or(def float64) float64 {
	if d.Set {
		return d.Value
	}
	return def
}

// OptionalSize is a size whose axes may be independently unset.
type OptionalSize struct {
	Width, Height Dim
}

// OptionalSizeOf returns an OptionalSize with both axes set from s.
func OptionalSizeOf(s Size) OptionalSize {
	return OptionalSize{Width: Some(s.Width), Height: Some(s.Height)}
}

// IsValid reports whether both axes are set.
func (o OptionalSize) IsValid() bool {
	return o.Width.Set && o.Height.Set
}

// IsNull reports whether neither axis is set.
func (o OptionalSize) IsNull() bool {
	return !o.Width.Set && !o.Height.Set
}

// Reset clears both axes.
func (o *OptionalSize) Reset() {
	*o = OptionalSize{}
}

// OrElse fills unset axes from def.
func (o OptionalSize) OrElse(def Size) Size {
	return Size{Width: o.Width.Or(def.Width), Height: o.Height.Or(def.Height)}
}

// UpdateWidthWhenSmaller lowers a set width to s.Width when s.Width is a
// valid, smaller value.
func (o *OptionalSize) UpdateWidthWhenSmaller(s Size) {
	if o.Width.Set && s.Width >= 0 && s.Width < o.Width.Value {
		o.Width.Value = s.Width
	}
}

// UpdateHeightWhenSmaller lowers a set height to s.Height when s.Height is a
// valid, smaller value.
func (o *OptionalSize) UpdateHeightWhenSmaller(s Size) {
	if o.Height.Set && s.Height >= 0 && s.Height < o.Height.Value {
		o.Height.Value = s.Height
	}
}

// UpdateSizeWhenLarger raises each set axis to at least s.
func (o *OptionalSize) UpdateSizeWhenLarger(s Size) {
	if o.Width.Set && s.Width > o.Width.Value {
		o.Width.Value = s.Width
	}
	if o.Height.Set && s.Height > o.Height.Value {
		o.Height.Value = s.Height
	}
}

// minusNonNegative subtracts horizontal/vertical amounts from every set axis.
func (o *OptionalSize) minusNonNegative(horizontal, vertical float64) {
	if o.Width.Set {
		o.Width.Value = nonNegative(o.Width.Value - horizontal)
	}
	if o.Height.Set {
		o.Height.Value = nonNegative(o.Height.Value - vertical)
	}
}
