package layout

import "fmt"

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectOf places a Size at an Offset.
func RectOf(o Offset, s Size) Rect {
	return Rect{X: o.X, Y: o.Y, Width: s.Width, Height: s.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.2f, %.2f) - %s", r.X, r.Y, r.Size())
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Offset returns the rectangle's top-left corner.
func (r Rect) Offset() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) is inside the rectangle. The
// left and top edges are inside, the right and bottom edges outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely within r. An empty rect is
// contained anywhere.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset shrinks r by e. Width and height stop at zero.
func (r Rect) Inset(e PhysicalEdges) Rect {
	return Rect{
		X:      r.X + e.Left.Or(0),
		Y:      r.Y + e.Top.Or(0),
		Width:  nonNegative(r.Width - e.Horizontal()),
		Height: nonNegative(r.Height - e.Vertical()),
	}
}

// Translate moves r by o.
func (r Rect) Translate(o Offset) Rect {
	return Rect{X: r.X + o.X, Y: r.Y + o.Y, Width: r.Width, Height: r.Height}
}
