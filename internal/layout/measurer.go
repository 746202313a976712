package layout

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/text/width"
)

// ContentMeasurer is the per-node-type hook that reports a node's intrinsic
// content size. The constraint is the node's resolved content constraint and
// must not be modified. The second result is false when the node has no
// intrinsic content and should be sized from its children.
type ContentMeasurer interface {
	MeasureContent(c LayoutConstraint, n *Node) (Size, bool)
}

// A measurer implementing borderUnoccupied draws its border as decoration
// that takes no space from the content area.
type borderUnoccupied interface {
	BorderUnoccupied() bool
}

// A measurer implementing aspectAdjuster asks for the frame height to be
// re-derived from the width and the node's aspect ratio after measurement.
type aspectAdjuster interface {
	AdjustByAspectRatio() bool
}

// MeasureFunc adapts a plain function to ContentMeasurer.
type MeasureFunc func(c LayoutConstraint, n *Node) (Size, bool)

// MeasureContent calls f.
func (f MeasureFunc) MeasureContent(c LayoutConstraint, n *Node) (Size, bool) {
	return f(c, n)
}

// BoxMeasurer is the generic container: it has no intrinsic content, so the
// frame is derived from children.
type BoxMeasurer struct{}

// MeasureContent implements ContentMeasurer.
func (BoxMeasurer) MeasureContent(LayoutConstraint, *Node) (Size, bool) {
	return Size{}, false
}

// FixedMeasurer reports a theme default size, such as a QR code's. A set
// ideal size on either axis replaces the default on that axis, and the result
// is clamped into the constraint.
type FixedMeasurer struct {
	Size Size
	// Unoccupied marks the border as decoration.
	Unoccupied bool
}

// MeasureContent implements ContentMeasurer.
func (m FixedMeasurer) MeasureContent(c LayoutConstraint, _ *Node) (Size, bool) {
	return c.SelfIdealSize.OrElse(m.Size).Constrain(c.MinSize, c.MaxSize), true
}

// BorderUnoccupied reports whether the border takes no content space.
func (m FixedMeasurer) BorderUnoccupied() bool { return m.Unoccupied }

// ImageMeasurer sizes content from a decoded image's pixel dimensions. Only
// the image header is read.
type ImageMeasurer struct {
	natural Size
	format  string
}

// NewImageMeasurer reads the image header from r. PNG, JPEG, GIF, BMP and
// WebP are recognised.
func NewImageMeasurer(r io.Reader) (*ImageMeasurer, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}
	return &ImageMeasurer{
		natural: Size{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		format:  format,
	}, nil
}

// Natural returns the image's pixel dimensions.
func (m *ImageMeasurer) Natural() Size { return m.natural }

// Format returns the name of the decoder that recognised the image.
func (m *ImageMeasurer) Format() string { return m.format }

// MeasureContent fits the natural size into the constraint keeping its
// proportions. A fully set ideal size wins outright.
func (m *ImageMeasurer) MeasureContent(c LayoutConstraint, _ *Node) (Size, bool) {
	if c.SelfIdealSize.IsValid() {
		return c.SelfIdealSize.OrElse(Size{}), true
	}
	s := m.natural
	if nearZero(s.Width) || nearZero(s.Height) {
		return Size{}, true
	}
	ratio := s.Width / s.Height
	if w := c.SelfIdealSize.Width; w.Set {
		s = Size{Width: w.Value, Height: w.Value / ratio}
	} else if h := c.SelfIdealSize.Height; h.Set {
		s = Size{Width: h.Value * ratio, Height: h.Value}
	}
	if s.Width > c.MaxSize.Width {
		s = Size{Width: c.MaxSize.Width, Height: c.MaxSize.Width / ratio}
	}
	if s.Height > c.MaxSize.Height {
		s = Size{Width: c.MaxSize.Height * ratio, Height: c.MaxSize.Height}
	}
	return s, true
}

// AdjustByAspectRatio implements aspectAdjuster.
func (m *ImageMeasurer) AdjustByAspectRatio() bool { return true }

// TextMeasurer estimates text content from advance units: East Asian wide
// and fullwidth runes advance one FontSize, everything else half of it.
// Lines break at newlines and, when the maximum width is bounded, wherever the
// next rune would overflow it.
type TextMeasurer struct {
	Text     string
	FontSize float64
	// LineHeight defaults to 1.2 times FontSize.
	LineHeight float64
}

// MeasureContent implements ContentMeasurer.
func (m TextMeasurer) MeasureContent(c LayoutConstraint, _ *Node) (Size, bool) {
	if m.Text == "" {
		return Size{}, true
	}
	fontSize := m.FontSize
	if fontSize <= 0 {
		fontSize = 14
	}
	lineHeight := m.LineHeight
	if lineHeight <= 0 {
		lineHeight = fontSize * 1.2
	}
	maxWidth := c.MaxSize.Width
	if w := c.SelfIdealSize.Width; w.Set {
		maxWidth = w.Value
	}

	var widest float64
	lines := 0
	for _, para := range strings.Split(m.Text, "\n") {
		lines++
		var line float64
		for _, r := range para {
			adv := runeAdvance(r, fontSize)
			if line > 0 && !isInfinite(maxWidth) && greatNotEqual(line+adv, maxWidth) {
				widest = max(widest, line)
				lines++
				line = 0
			}
			line += adv
		}
		widest = max(widest, line)
	}
	return Size{Width: widest, Height: float64(lines) * lineHeight}, true
}

func runeAdvance(r rune, fontSize float64) float64 {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return fontSize
	}
	return fontSize / 2
}
