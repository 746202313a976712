package layout

import (
	"fmt"
	"strings"
)

// Alignment positions a child inside its parent's content area. Horizontal
// and Vertical are biases in [-1, 1]: -1 is left/top, 0 centered, 1 right/bottom.
// A Localized alignment was declared with start/end tokens and is mirrored
// horizontally under RTL.
type Alignment struct {
	Horizontal, Vertical float64
	Localized            bool
}

var (
	TopStart    = Alignment{Horizontal: -1, Vertical: -1, Localized: true}
	Top         = Alignment{Horizontal: 0, Vertical: -1}
	TopEnd      = Alignment{Horizontal: 1, Vertical: -1, Localized: true}
	CenterStart = Alignment{Horizontal: -1, Vertical: 0, Localized: true}
	Center      = Alignment{}
	CenterEnd   = Alignment{Horizontal: 1, Vertical: 0, Localized: true}
	BottomStart = Alignment{Horizontal: -1, Vertical: 1, Localized: true}
	Bottom      = Alignment{Horizontal: 0, Vertical: 1}
	BottomEnd   = Alignment{Horizontal: 1, Vertical: 1, Localized: true}

	TopLeft     = Alignment{Horizontal: -1, Vertical: -1}
	TopRight    = Alignment{Horizontal: 1, Vertical: -1}
	CenterLeft  = Alignment{Horizontal: -1, Vertical: 0}
	CenterRight = Alignment{Horizontal: 1, Vertical: 0}
	BottomLeft  = Alignment{Horizontal: -1, Vertical: 1}
	BottomRight = Alignment{Horizontal: 1, Vertical: 1}
)

var alignmentNames = map[string]Alignment{
	"topstart":    TopStart,
	"top":         Top,
	"topend":      TopEnd,
	"centerstart": CenterStart,
	"center":      Center,
	"centerend":   CenterEnd,
	"bottomstart": BottomStart,
	"bottom":      Bottom,
	"bottomend":   BottomEnd,
	"topleft":     TopLeft,
	"topright":    TopRight,
	"centerleft":  CenterLeft,
	"centerright": CenterRight,
	"bottomleft":  BottomLeft,
	"bottomright": BottomRight,
}

// ParseAlignment parses names such as "topStart", "center" or "bottomRight".
func ParseAlignment(s string) (Alignment, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Center, nil
	}
	if a, ok := alignmentNames[key]; ok {
		return a, nil
	}
	return Center, fmt.Errorf("%w: alignment %q", ErrUnknownPolicy, s)
}

// Resolve returns the physical alignment for dir.
func (a Alignment) Resolve(dir TextDirection) Alignment {
	if a.Localized && dir == DirectionRTL {
		return Alignment{Horizontal: -a.Horizontal, Vertical: a.Vertical}
	}
	return Alignment{Horizontal: a.Horizontal, Vertical: a.Vertical}
}

// AlignPosition returns the offset of a child of size child placed inside
// parent with alignment a. Oversized children get negative offsets.
func AlignPosition(parent, child Size, a Alignment) Offset {
	return Offset{
		X: (1 + a.Horizontal) * (parent.Width - child.Width) / 2,
		Y: (1 + a.Vertical) * (parent.Height - child.Height) / 2,
	}
}
