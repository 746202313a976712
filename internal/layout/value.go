package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLength is returned by ParseLength for malformed input.
var ErrInvalidLength = errors.New("invalid length")

// Unit specifies how a Length is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Unset; the axis is decided by layout
	UnitPx                  // Absolute pixels
	UnitVp                  // Virtual pixels, scaled by ScaleProperty.VPScale
	UnitPercent             // Percentage of a reference length
)

// Length represents a declared dimension that may be absolute, scaled,
// a percentage, or unset.
type Length struct {
	Amount float64
	Unit   Unit
}

// Auto returns an unset Length.
func Auto() Length {
	return Length{Unit: UnitAuto}
}

// Px returns a Length of v absolute pixels.
func Px(v float64) Length {
	return Length{Amount: v, Unit: UnitPx}
}

// Vp returns a Length of v virtual pixels.
func Vp(v float64) Length {
	return Length{Amount: v, Unit: UnitVp}
}

// Percent returns a Length representing a percentage of a reference.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Length {
	return Length{Amount: p, Unit: UnitPercent}
}

// IsAuto returns true if this length is unset.
func (l Length) IsAuto() bool {
	return l.Unit == UnitAuto
}

// IsPercent returns true if this length resolves against a reference.
func (l Length) IsPercent() bool {
	return l.Unit == UnitPercent
}

// IsFixed reports whether the length is set and, when checkPercent is true,
// not a percentage.
func (l Length) IsFixed(checkPercent bool) bool {
	if l.IsAuto() {
		return false
	}
	return !checkPercent || !l.IsPercent()
}

// ScaleProperty carries the factors needed to turn scaled units into pixels.
type ScaleProperty struct {
	VPScale float64
}

// DefaultScale returns the identity scale.
func DefaultScale() ScaleProperty {
	return ScaleProperty{VPScale: 1}
}

// Resolve computes the pixel value of the length. The second result is false
// when the length is unset or is a percentage of an unbounded or negative
// reference, in which case the axis should be treated as unset.
func (l Length) Resolve(scale ScaleProperty, reference float64) (float64, bool) {
	switch l.Unit {
	case UnitPx:
		return l.Amount, true
	case UnitVp:
		vp := scale.VPScale
		if vp <= 0 {
			vp = 1
		}
		return l.Amount * vp, true
	case UnitPercent:
		if isInfinite(reference) || reference < 0 {
			return 0, false
		}
		return reference * l.Amount / 100.0, true
	default:
		return 0, false
	}
}

// String formats the length in the syntax accepted by ParseLength.
func (l Length) String() string {
	num := strconv.FormatFloat(l.Amount, 'f', -1, 64)
	switch l.Unit {
	case UnitPx:
		return num + "px"
	case UnitVp:
		return num + "vp"
	case UnitPercent:
		return num + "%"
	default:
		return "auto"
	}
}

// ParseLength parses "auto", "12", "12px", "12vp", or "50%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "auto" {
		return Auto(), nil
	}
	unit := UnitPx
	switch {
	case strings.HasSuffix(s, "%"):
		unit, s = UnitPercent, strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "vp"):
		unit, s = UnitVp, strings.TrimSuffix(s, "vp")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return Length{Amount: v, Unit: unit}, nil
}

// CalcSize is a pair of declared lengths, one per axis.
type CalcSize struct {
	Width, Height Length
}

// NewCalcSize returns a CalcSize from two lengths.
func NewCalcSize(width, height Length) CalcSize {
	return CalcSize{Width: width, Height: height}
}

// IsNull reports whether both axes are unset.
func (c CalcSize) IsNull() bool {
	return c.Width.IsAuto() && c.Height.IsAuto()
}

// resolveOptional resolves each axis against the matching reference axis.
func (c CalcSize) resolveOptional(scale ScaleProperty, reference Size) OptionalSize {
	var out OptionalSize
	if v, ok := c.Width.Resolve(scale, reference.Width); ok {
		out.Width = Some(v)
	}
	if v, ok := c.Height.Resolve(scale, reference.Height); ok {
		out.Height = Some(v)
	}
	return out
}

// resolveSize resolves both axes, using -1 for axes that cannot be resolved
// so that later merges treat them as absent.
func (c CalcSize) resolveSize(scale ScaleProperty, reference Size) Size {
	return c.resolveOptional(scale, reference).OrElse(Size{Width: -1, Height: -1})
}
