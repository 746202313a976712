// Package tree decodes declarative layout documents into layout.Node trees
// and reports the geometry a pass gives them.
package tree

import (
	"bytes"
	"fmt"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// Document is a declarative layout tree with the environment it is measured in.
type Document struct {
	Viewport *SizeSpec     `yaml:"viewport,omitempty" json:"viewport,omitempty"`
	Locale   string        `yaml:"locale,omitempty" json:"locale,omitempty"`
	SafeArea *SafeAreaSpec `yaml:"safeArea,omitempty" json:"safeArea,omitempty"`
	Root     *NodeSpec     `yaml:"root" json:"root"`
}

// SizeSpec is a plain width/height pair.
type SizeSpec struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// SafeAreaSpec describes the insets adaptive children may expand into. An
// uncommitted safe area leaves expanding children postponed.
type SafeAreaSpec struct {
	Top       float64 `yaml:"top" json:"top"`
	Bottom    float64 `yaml:"bottom" json:"bottom"`
	Left      float64 `yaml:"left" json:"left"`
	Right     float64 `yaml:"right" json:"right"`
	Committed *bool   `yaml:"committed,omitempty" json:"committed,omitempty"`
}

// RectSpec is an absolute rect.
type RectSpec struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// NodeSpec is one declared node.
type NodeSpec struct {
	ID string `yaml:"id,omitempty" json:"id,omitempty"`

	Width     Length `yaml:"width,omitempty" json:"width,omitempty"`
	Height    Length `yaml:"height,omitempty" json:"height,omitempty"`
	MinWidth  Length `yaml:"minWidth,omitempty" json:"minWidth,omitempty"`
	MinHeight Length `yaml:"minHeight,omitempty" json:"minHeight,omitempty"`
	MaxWidth  Length `yaml:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	MaxHeight Length `yaml:"maxHeight,omitempty" json:"maxHeight,omitempty"`

	Padding         *Edges `yaml:"padding,omitempty" json:"padding,omitempty"`
	Margin          *Edges `yaml:"margin,omitempty" json:"margin,omitempty"`
	Border          *Edges `yaml:"border,omitempty" json:"border,omitempty"`
	SafeAreaPadding *Edges `yaml:"safeAreaPadding,omitempty" json:"safeAreaPadding,omitempty"`

	AspectRatio    float64   `yaml:"aspectRatio,omitempty" json:"aspectRatio,omitempty"`
	LayoutWeight   float64   `yaml:"layoutWeight,omitempty" json:"layoutWeight,omitempty"`
	MeasureType    string    `yaml:"measureType,omitempty" json:"measureType,omitempty"`
	WidthPolicy    string    `yaml:"widthPolicy,omitempty" json:"widthPolicy,omitempty"`
	HeightPolicy   string    `yaml:"heightPolicy,omitempty" json:"heightPolicy,omitempty"`
	Alignment      string    `yaml:"alignment,omitempty" json:"alignment,omitempty"`
	Direction      string    `yaml:"direction,omitempty" json:"direction,omitempty"`
	Visibility     string    `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	IgnoreSafeArea []string  `yaml:"ignoreSafeArea,omitempty" json:"ignoreSafeArea,omitempty"`
	Column         bool      `yaml:"column,omitempty" json:"column,omitempty"`
	Locale         string    `yaml:"locale,omitempty" json:"locale,omitempty"`
	LayoutRect     *RectSpec `yaml:"layoutRect,omitempty" json:"layoutRect,omitempty"`

	Content  *ContentSpec `yaml:"content,omitempty" json:"content,omitempty"`
	Children []*NodeSpec  `yaml:"children,omitempty" json:"children,omitempty"`
}

// ContentSpec selects the node's content measurer. At most one of Text,
// Fixed and Image may be set.
type ContentSpec struct {
	Text       string    `yaml:"text,omitempty" json:"text,omitempty"`
	FontSize   float64   `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
	LineHeight float64   `yaml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
	Fixed      *SizeSpec `yaml:"fixed,omitempty" json:"fixed,omitempty"`
	Image      string    `yaml:"image,omitempty" json:"image,omitempty"`
	// UnoccupiedBorder draws the border as decoration over the content.
	UnoccupiedBorder bool `yaml:"unoccupiedBorder,omitempty" json:"unoccupiedBorder,omitempty"`
}

// Length is a layout.Length that decodes from a bare number (pixels) or a
// string such as "50%", "12vp" or "auto".
type Length struct {
	layout.Length
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", node.Line)
	}
	v, err := layout.ParseLength(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	l.Length = v
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Length) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		l.Length = layout.Auto()
	case float64:
		l.Length = layout.Px(v)
	case string:
		parsed, err := layout.ParseLength(v)
		if err != nil {
			return err
		}
		l.Length = parsed
	default:
		return fmt.Errorf("%w: %s", layout.ErrInvalidLength, bytes.TrimSpace(data))
	}
	return nil
}

// MarshalJSON writes the length in the form ParseLength reads.
func (l Length) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Edges declares padding, margin, border or safe-area padding. A scalar sets
// all four sides; a mapping sets sides by name. Start and end make the
// declaration direction-relative.
type Edges struct {
	Top    Length `yaml:"top,omitempty" json:"top,omitempty"`
	Right  Length `yaml:"right,omitempty" json:"right,omitempty"`
	Bottom Length `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Left   Length `yaml:"left,omitempty" json:"left,omitempty"`
	Start  Length `yaml:"start,omitempty" json:"start,omitempty"`
	End    Length `yaml:"end,omitempty" json:"end,omitempty"`
}

// edgeFields is Edges without its unmarshalers, for mapping decodes.
type edgeFields Edges

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Edges) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var l Length
		if err := l.UnmarshalYAML(node); err != nil {
			return err
		}
		*e = Edges{Top: l, Right: l, Bottom: l, Left: l}
		return nil
	}
	var f edgeFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*e = Edges(f)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Edges) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' {
		var l Length
		if err := l.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		*e = Edges{Top: l, Right: l, Bottom: l, Left: l}
		return nil
	}
	var f edgeFields
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return err
	}
	*e = Edges(f)
	return nil
}

// Property converts the declaration to a layout.EdgeProperty.
func (e Edges) Property() layout.EdgeProperty {
	if !e.Start.IsAuto() || !e.End.IsAuto() {
		return layout.EdgeLogical(e.Start.Length, e.Top.Length, e.End.Length, e.Bottom.Length)
	}
	return layout.EdgeTRBL(e.Top.Length, e.Right.Length, e.Bottom.Length, e.Left.Length)
}
