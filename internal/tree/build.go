package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// ErrDuplicateID is returned when two nodes in one document share an id.
var ErrDuplicateID = errors.New("duplicate node id")

// ErrConflictingContent is returned when a node declares more than one kind
// of content.
var ErrConflictingContent = errors.New("conflicting content")

// Tree is a built document: the node tree plus the environment it is
// measured in.
type Tree struct {
	Root *layout.Node
	// Nodes indexes every node by id, in declaration order in Order.
	Nodes map[string]*layout.Node
	Order []string
	// SafeArea is nil when the document declares none.
	SafeArea *layout.StaticSafeArea
	Locale   language.Tag
	Viewport *layout.Size
}

// BuildOptions controls how a document is turned into nodes.
type BuildOptions struct {
	// BaseDir resolves relative image paths.
	BaseDir string
}

// Build turns doc into a node tree.
func Build(doc *Document, opts BuildOptions) (*Tree, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrNoRoot
	}
	t := &Tree{
		Nodes:  map[string]*layout.Node{},
		Locale: language.Und,
	}
	if doc.Locale != "" {
		tag, err := language.Parse(doc.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", doc.Locale, err)
		}
		t.Locale = tag
	}
	if doc.Viewport != nil {
		t.Viewport = &layout.Size{Width: doc.Viewport.Width, Height: doc.Viewport.Height}
	}
	if sa := doc.SafeArea; sa != nil {
		committed := sa.Committed == nil || *sa.Committed
		t.SafeArea = &layout.StaticSafeArea{
			Edges:     layout.ExpandEdges{Left: sa.Left, Top: sa.Top, Right: sa.Right, Bottom: sa.Bottom},
			Committed: committed,
		}
	}

	root, err := t.build(doc.Root, opts)
	if err != nil {
		return nil, err
	}
	if t.Locale != language.Und {
		root.SetLocale(t.Locale)
	}
	t.Root = root
	return t, nil
}

func (t *Tree) build(spec *NodeSpec, opts BuildOptions) (*layout.Node, error) {
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, ok := t.Nodes[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	m, err := measurer(spec.Content, opts)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", id, err)
	}
	n := layout.NewNode(id, m)
	t.Nodes[id] = n
	t.Order = append(t.Order, id)

	if err := apply(n, spec); err != nil {
		return nil, fmt.Errorf("node %q: %w", id, err)
	}

	for _, cs := range spec.Children {
		child, err := t.build(cs, opts)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// apply copies every declared property of spec onto n.
func apply(n *layout.Node, spec *NodeSpec) error {
	n.SetSize(spec.Width.Length, spec.Height.Length)
	n.SetMinSize(spec.MinWidth.Length, spec.MinHeight.Length)
	n.SetMaxSize(spec.MaxWidth.Length, spec.MaxHeight.Length)

	for kind, e := range map[layout.EdgeKind]*Edges{
		layout.EdgePadding:         spec.Padding,
		layout.EdgeMargin:          spec.Margin,
		layout.EdgeBorder:          spec.Border,
		layout.EdgeSafeAreaPadding: spec.SafeAreaPadding,
	} {
		if e != nil {
			n.SetEdge(kind, e.Property())
		}
	}

	n.UpdateAspectRatio(spec.AspectRatio)
	n.UpdateLayoutWeight(spec.LayoutWeight)
	n.SetColumn(spec.Column)

	mt, err := layout.ParseMeasureType(spec.MeasureType)
	if err != nil {
		return err
	}
	n.SetMeasureType(mt)

	wp, err := layout.ParseSizingPolicy(spec.WidthPolicy)
	if err != nil {
		return err
	}
	hp, err := layout.ParseSizingPolicy(spec.HeightPolicy)
	if err != nil {
		return err
	}
	n.SetSizingPolicy(wp, hp)

	align, err := layout.ParseAlignment(spec.Alignment)
	if err != nil {
		return err
	}
	n.SetAlignment(align)

	if spec.Direction != "" {
		dir, err := layout.ParseTextDirection(spec.Direction)
		if err != nil {
			return err
		}
		n.SetDirection(dir)
	}

	vis, err := layout.ParseVisibility(spec.Visibility)
	if err != nil {
		return err
	}
	n.SetVisibility(vis)

	edges, err := layout.ParseSafeAreaEdges(spec.IgnoreSafeArea)
	if err != nil {
		return err
	}
	n.SetIgnoreLayoutSafeArea(edges)

	if spec.Locale != "" {
		tag, err := language.Parse(spec.Locale)
		if err != nil {
			return fmt.Errorf("locale %q: %w", spec.Locale, err)
		}
		n.SetLocale(tag)
	}
	if r := spec.LayoutRect; r != nil {
		n.SetLayoutRect(layout.NewRect(r.X, r.Y, r.Width, r.Height))
	}
	return nil
}

// measurer picks the content measurer declared by c.
func measurer(c *ContentSpec, opts BuildOptions) (layout.ContentMeasurer, error) {
	if c == nil {
		return nil, nil
	}
	kinds := 0
	for _, set := range []bool{c.Text != "", c.Fixed != nil, c.Image != ""} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return nil, fmt.Errorf("%w: text, fixed and image are exclusive", ErrConflictingContent)
	}

	switch {
	case c.Text != "":
		return layout.TextMeasurer{Text: c.Text, FontSize: c.FontSize, LineHeight: c.LineHeight}, nil
	case c.Fixed != nil:
		return layout.FixedMeasurer{
			Size:       layout.Size{Width: c.Fixed.Width, Height: c.Fixed.Height},
			Unoccupied: c.UnoccupiedBorder,
		}, nil
	case c.Image != "":
		path := c.Image
		if !filepath.IsAbs(path) && opts.BaseDir != "" {
			path = filepath.Join(opts.BaseDir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()
		img, err := layout.NewImageMeasurer(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Image, err)
		}
		return img, nil
	}
	return nil, nil
}
