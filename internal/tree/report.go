package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	json "github.com/json-iterator/go"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// Report is the measured geometry of one document.
type Report struct {
	Document string       `json:"document"`
	Viewport SizeSpec     `json:"viewport"`
	Pending  int          `json:"pending"`
	Nodes    []NodeReport `json:"nodes"`
}

// NodeReport is the geometry of one node. X and Y are relative to the
// parent's frame; AbsX and AbsY to the root's.
type NodeReport struct {
	ID        string       `json:"id"`
	Parent    string       `json:"parent,omitempty"`
	Depth     int          `json:"depth"`
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	AbsX      float64      `json:"absX"`
	AbsY      float64      `json:"absY"`
	Content   *RectSpec    `json:"content,omitempty"`
	Direction string       `json:"direction"`
	Postponed bool         `json:"postponed,omitempty"`
	Gone      bool         `json:"gone,omitempty"`
	Overflow  bool         `json:"overflow,omitempty"`
}

// NewReport collects the geometry of the tree rooted at root, parents first.
func NewReport(name string, viewport layout.Size, pending int, root *layout.Node) Report {
	r := Report{
		Document: name,
		Viewport: SizeSpec{Width: viewport.Width, Height: viewport.Height},
		Pending:  pending,
	}
	var walk func(n *layout.Node, depth int, origin layout.Offset)
	walk = func(n *layout.Node, depth int, origin layout.Offset) {
		g := n.Geometry()
		abs := g.FrameRect().Translate(origin)
		nr := NodeReport{
			ID:        n.ID(),
			Depth:     depth,
			X:         g.FrameOffset().X,
			Y:         g.FrameOffset().Y,
			Width:     g.FrameSize().Width,
			Height:    g.FrameSize().Height,
			AbsX:      abs.X,
			AbsY:      abs.Y,
			Direction: n.Props().Direction().String(),
			Postponed: n.IsPostponed(),
			Gone:      n.Props().Visibility() == layout.Gone,
			Overflow:  n.Overflows(),
		}
		if p := n.Parent(); p != nil {
			nr.Parent = p.ID()
		}
		if g.HasContent() {
			c := g.ContentRect()
			nr.Content = &RectSpec{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
		}
		r.Nodes = append(r.Nodes, nr)
		for _, c := range n.Children() {
			walk(c, depth+1, abs.Offset())
		}
	}
	walk(root, 0, layout.Offset{})
	return r
}

// Encode writes reports to w as indented JSON or as an aligned table.
func Encode(w io.Writer, reports []Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatTable:
		return encodeTable(w, reports)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func encodeTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# %s (%sx%s, pending %d)\n",
			r.Document, num(r.Viewport.Width), num(r.Viewport.Height), r.Pending)
		fmt.Fprintln(tw, "ID\tX\tY\tWIDTH\tHEIGHT\tABS X\tABS Y\tDIR\tSTATE")
		for _, n := range r.Nodes {
			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("  ", n.Depth), n.ID,
				num(n.X), num(n.Y), num(n.Width), num(n.Height),
				num(n.AbsX), num(n.AbsY), n.Direction, state(n))
		}
	}
	return tw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func state(n NodeReport) string {
	switch {
	case n.Gone:
		return "gone"
	case n.Postponed:
		return "postponed"
	case n.Overflow:
		return "overflow"
	}
	return "-"
}
