package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned when parsing an unknown policy or enum name.
var ErrUnknownPolicy = errors.New("unknown policy")

// SizingPolicy decides how one axis of a node's frame is derived.
type SizingPolicy uint8

const (
	NoMatch        SizingPolicy = iota // Content/ideal size, clamped by min/max
	MatchParent                        // Parent's resolved content size on this axis
	WrapContent                        // Larger of content and children, clamped
	FixAtIdealSize                     // Content or children size verbatim, max ignored
)

func (p SizingPolicy) String() string {
	switch p {
	case NoMatch:
		return "noMatch"
	case MatchParent:
		return "matchParent"
	case WrapContent:
		return "wrapContent"
	case FixAtIdealSize:
		return "fixAtIdealSize"
	default:
		return fmt.Sprintf("SizingPolicy(%d)", uint8(p))
	}
}

// ParseSizingPolicy parses the names printed by SizingPolicy.String.
func ParseSizingPolicy(s string) (SizingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nomatch":
		return NoMatch, nil
	case "matchparent":
		return MatchParent, nil
	case "wrapcontent":
		return WrapContent, nil
	case "fixatidealsize":
		return FixAtIdealSize, nil
	}
	return NoMatch, fmt.Errorf("%w: sizing policy %q", ErrUnknownPolicy, s)
}

// MeasureType is the node-wide measurement mode.
type MeasureType uint8

const (
	MeasureDefault     MeasureType = iota
	MeasureMatchParent             // Ideal size forced to the parent's ideal size
	MeasureMatchContent
)

// ParseMeasureType parses "default", "matchParent" or "matchContent".
func ParseMeasureType(s string) (MeasureType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return MeasureDefault, nil
	case "matchparent":
		return MeasureMatchParent, nil
	case "matchcontent":
		return MeasureMatchContent, nil
	}
	return MeasureDefault, fmt.Errorf("%w: measure type %q", ErrUnknownPolicy, s)
}

// Visibility controls whether a node is drawn and whether it takes space.
type Visibility uint8

const (
	Visible Visibility = iota
	Hidden             // Takes space, not drawn
	Gone               // Takes no space
)

// ParseVisibility parses "visible", "hidden" or "gone".
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "visible":
		return Visible, nil
	case "hidden":
		return Hidden, nil
	case "gone", "none":
		return Gone, nil
	}
	return Visible, fmt.Errorf("%w: visibility %q", ErrUnknownPolicy, s)
}

// PropertyChange is the dirty bitmask a node accumulates between passes.
type PropertyChange uint8

const (
	NeedsMeasure PropertyChange = 1 << iota
	NeedsLayout

	NoChange PropertyChange = 0
)

// Has reports whether every bit of flag is set.
func (p PropertyChange) Has(flag PropertyChange) bool {
	return flag != 0 && p&flag == flag
}

// SafeAreaEdge is a bitmask of logical edges a node may expand into.
type SafeAreaEdge uint8

const (
	SafeAreaEdgeTop SafeAreaEdge = 1 << iota
	SafeAreaEdgeBottom
	SafeAreaEdgeStart
	SafeAreaEdgeEnd

	SafeAreaEdgeNone SafeAreaEdge = 0
	SafeAreaEdgeAll               = SafeAreaEdgeTop | SafeAreaEdgeBottom | SafeAreaEdgeStart | SafeAreaEdgeEnd
)

// ParseSafeAreaEdges parses edge names such as "top", "start", or "all".
func ParseSafeAreaEdges(names []string) (SafeAreaEdge, error) {
	var edges SafeAreaEdge
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "top":
			edges |= SafeAreaEdgeTop
		case "bottom":
			edges |= SafeAreaEdgeBottom
		case "start":
			edges |= SafeAreaEdgeStart
		case "end":
			edges |= SafeAreaEdgeEnd
		case "all":
			edges |= SafeAreaEdgeAll
		default:
			return SafeAreaEdgeNone, fmt.Errorf("%w: safe area edge %q", ErrUnknownPolicy, name)
		}
	}
	return edges, nil
}

// IgnoreLayoutSafeAreaOpts declares which safe-area edges a node expands into.
type IgnoreLayoutSafeAreaOpts struct {
	Edges SafeAreaEdge
}

// ExpandEdges is a safe-area expansion in physical pixels.
type ExpandEdges struct {
	Left, Top, Right, Bottom float64
}

// Size returns the total growth the expansion adds on each axis.
func (e ExpandEdges) Size() Size {
	return Size{Width: e.Left + e.Right, Height: e.Top + e.Bottom}
}

// Offset returns how far the expansion moves the origin up and left.
func (e ExpandEdges) Offset() Offset {
	return Offset{X: e.Left, Y: e.Top}
}

// filter keeps only the physical sides matching the logical edges for dir.
func (e ExpandEdges) filter(edges SafeAreaEdge, dir TextDirection) ExpandEdges {
	var out ExpandEdges
	if edges&SafeAreaEdgeTop != 0 {
		out.Top = e.Top
	}
	if edges&SafeAreaEdgeBottom != 0 {
		out.Bottom = e.Bottom
	}
	start, end := edges&SafeAreaEdgeStart != 0, edges&SafeAreaEdgeEnd != 0
	if dir == DirectionRTL {
		start, end = end, start
	}
	if start {
		out.Left = e.Left
	}
	if end {
		out.Right = e.Right
	}
	return out
}
