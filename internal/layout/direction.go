package layout

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownDirection is returned by ParseTextDirection for unknown names.
var ErrUnknownDirection = errors.New("unknown direction")

// TextDirection is the writing direction that decides how logical start/end
// edges map onto physical left/right.
type TextDirection uint8

const (
	DirectionLTR     TextDirection = iota // Left to right
	DirectionRTL                          // Right to left
	DirectionInherit                      // Use the parent's resolved direction
	DirectionAuto                         // Derive from the locale
)

func (d TextDirection) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	case DirectionInherit:
		return "inherit"
	case DirectionAuto:
		return "auto"
	default:
		return fmt.Sprintf("TextDirection(%d)", uint8(d))
	}
}

// ParseTextDirection parses "ltr", "rtl", "inherit" or "auto".
func ParseTextDirection(s string) (TextDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	case "inherit":
		return DirectionInherit, nil
	case "", "auto":
		return DirectionAuto, nil
	}
	return DirectionLTR, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// rtlScripts lists the ISO 15924 scripts written right to left.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
	"Mand": true,
	"Samr": true,
}

// IsRightToLeft reports whether the locale's most likely script is written
// right to left.
func IsRightToLeft(tag language.Tag) bool {
	if tag == language.Und {
		return false
	}
	script, conf := tag.Script()
	if conf == language.No {
		return false
	}
	return rtlScripts[script.String()]
}

// ResolveDirection turns a declared direction into LTR or RTL. Inherit takes
// the parent's resolved direction; Auto is decided by the locale.
func ResolveDirection(declared, parent TextDirection, locale language.Tag) TextDirection {
	switch declared {
	case DirectionLTR, DirectionRTL:
		return declared
	case DirectionInherit:
		if parent == DirectionRTL {
			return DirectionRTL
		}
		if parent == DirectionLTR {
			return DirectionLTR
		}
	}
	if IsRightToLeft(locale) {
		return DirectionRTL
	}
	return DirectionLTR
}
