package layout

import "fmt"

// EdgeKind selects which edge property of a node is addressed.
type EdgeKind uint8

const (
	EdgePadding EdgeKind = iota
	EdgeMargin
	EdgeBorder
	EdgeSafeAreaPadding
)

func (k EdgeKind) String() string {
	switch k {
	case EdgePadding:
		return "padding"
	case EdgeMargin:
		return "margin"
	case EdgeBorder:
		return "border"
	case EdgeSafeAreaPadding:
		return "safeAreaPadding"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// EdgeProperty is a declared per-edge quantity. It is either physical
// (Left/Top/Right/Bottom) or logical (Start/End plus Top/Bottom); an Auto
// length means the edge is unset. When Start or End is set the declaration is
// logical and Left/Right are ignored.
type EdgeProperty struct {
	Left, Top, Right, Bottom Length
	Start, End               Length
}

// EdgeAll creates an EdgeProperty with the same value on all sides.
func EdgeAll(l Length) EdgeProperty {
	return EdgeProperty{Left: l, Top: l, Right: l, Bottom: l}
}

// EdgeSymmetric creates an EdgeProperty with vertical (top/bottom) and
// horizontal (left/right) values.
func EdgeSymmetric(v, h Length) EdgeProperty {
	return EdgeProperty{Left: h, Top: v, Right: h, Bottom: v}
}

// EdgeTRBL creates an EdgeProperty following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Length) EdgeProperty {
	return EdgeProperty{Left: l, Top: t, Right: r, Bottom: b}
}

// EdgeLogical creates a direction-relative EdgeProperty.
func EdgeLogical(start, top, end, bottom Length) EdgeProperty {
	return EdgeProperty{Start: start, Top: top, End: end, Bottom: bottom}
}

// IsLogical reports whether start or end is declared.
func (e EdgeProperty) IsLogical() bool {
	return !e.Start.IsAuto() || !e.End.IsAuto()
}

// Physical maps the declaration onto left/top/right/bottom for the given
// direction. The result never carries Start/End, and Left and Right are
// either both set or both unset.
func (e EdgeProperty) Physical(dir TextDirection) EdgeProperty {
	out := EdgeProperty{Top: e.Top, Bottom: e.Bottom, Left: e.Left, Right: e.Right}
	if e.IsLogical() {
		if dir == DirectionRTL {
			out.Left, out.Right = e.End, e.Start
		} else {
			out.Left, out.Right = e.Start, e.End
		}
	}
	if !out.Left.IsAuto() && out.Right.IsAuto() {
		out.Right = Px(0)
	}
	if out.Left.IsAuto() && !out.Right.IsAuto() {
		out.Left = Px(0)
	}
	return out
}

// Resolve maps the declaration to physical edges for dir and converts every
// set edge to pixels. Percentages resolve against percentRef, negative
// results clamp to zero.
func (e EdgeProperty) Resolve(dir TextDirection, scale ScaleProperty, percentRef float64) PhysicalEdges {
	p := e.Physical(dir)
	conv := func(l Length) Dim {
		v, ok := l.Resolve(scale, percentRef)
		if !ok {
			return Dim{}
		}
		return Some(nonNegative(v))
	}
	return PhysicalEdges{
		Left:   conv(p.Left),
		Top:    conv(p.Top),
		Right:  conv(p.Right),
		Bottom: conv(p.Bottom),
	}
}

// PhysicalEdges holds resolved pixel values for four sides of a box.
type PhysicalEdges struct {
	Left, Top, Right, Bottom Dim
}

// EdgesAll returns resolved edges with v on every side.
func EdgesAll(v float64) PhysicalEdges {
	return PhysicalEdges{Left: Some(v), Top: Some(v), Right: Some(v), Bottom: Some(v)}
}

// Horizontal returns the sum of Left and Right.
func (p PhysicalEdges) Horizontal() float64 {
	return p.Left.Or(0) + p.Right.Or(0)
}

// Vertical returns the sum of Top and Bottom.
func (p PhysicalEdges) Vertical() float64 {
	return p.Top.Or(0) + p.Bottom.Or(0)
}

// IsZero returns true if all edge values are zero or unset.
func (p PhysicalEdges) IsZero() bool {
	return nearZero(p.Left.Or(0)) && nearZero(p.Top.Or(0)) &&
		nearZero(p.Right.Or(0)) && nearZero(p.Bottom.Or(0))
}

// TopLeft returns the offset of the content origin introduced by the edges.
func (p PhysicalEdges) TopLeft() Offset {
	return Offset{X: p.Left.Or(0), Y: p.Top.Or(0)}
}

// Plus sums two edge sets side by side; unset sides count as zero.
func (p PhysicalEdges) Plus(other PhysicalEdges) PhysicalEdges {
	return PhysicalEdges{
		Left:   Some(p.Left.Or(0) + other.Left.Or(0)),
		Top:    Some(p.Top.Or(0) + other.Top.Or(0)),
		Right:  Some(p.Right.Or(0) + other.Right.Or(0)),
		Bottom: Some(p.Bottom.Or(0) + other.Bottom.Or(0)),
	}
}
