// Package layout is the public surface of the box layout engine.
//
// This file re-exports the types from internal/layout so that callers can
// build node trees, run passes and read geometry without importing an
// internal package.
package layout

import (
	"io"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// Types
type Size = layout.Size
type Offset = layout.Offset
type Rect = layout.Rect
type Dim = layout.Dim
type OptionalSize = layout.OptionalSize
type Length = layout.Length
type Unit = layout.Unit
type ScaleProperty = layout.ScaleProperty
type CalcSize = layout.CalcSize
type EdgeKind = layout.EdgeKind
type EdgeProperty = layout.EdgeProperty
type PhysicalEdges = layout.PhysicalEdges
type TextDirection = layout.TextDirection
type Alignment = layout.Alignment
type SizingPolicy = layout.SizingPolicy
type MeasureType = layout.MeasureType
type Visibility = layout.Visibility
type PropertyChange = layout.PropertyChange
type SafeAreaEdge = layout.SafeAreaEdge
type ExpandEdges = layout.ExpandEdges
type LayoutConstraint = layout.LayoutConstraint
type Node = layout.Node
type GeometryNode = layout.GeometryNode
type ConstraintPropagator = layout.ConstraintPropagator
type ContentMeasurer = layout.ContentMeasurer
type MeasureFunc = layout.MeasureFunc
type BoxMeasurer = layout.BoxMeasurer
type FixedMeasurer = layout.FixedMeasurer
type ImageMeasurer = layout.ImageMeasurer
type TextMeasurer = layout.TextMeasurer
type SafeAreaProvider = layout.SafeAreaProvider
type StaticSafeArea = layout.StaticSafeArea
type ExpansionRegistry = layout.ExpansionRegistry
type PendingExpansion = layout.PendingExpansion
type Engine = layout.Engine
type Option = layout.Option

// Unit constants
const (
	UnitAuto    = layout.UnitAuto
	UnitPx      = layout.UnitPx
	UnitVp      = layout.UnitVp
	UnitPercent = layout.UnitPercent
)

// Edge kinds
const (
	EdgePadding         = layout.EdgePadding
	EdgeMargin          = layout.EdgeMargin
	EdgeBorder          = layout.EdgeBorder
	EdgeSafeAreaPadding = layout.EdgeSafeAreaPadding
)

// Direction constants
const (
	DirectionLTR     = layout.DirectionLTR
	DirectionRTL     = layout.DirectionRTL
	DirectionInherit = layout.DirectionInherit
	DirectionAuto    = layout.DirectionAuto
)

// Sizing policies
const (
	NoMatch        = layout.NoMatch
	MatchParent    = layout.MatchParent
	WrapContent    = layout.WrapContent
	FixAtIdealSize = layout.FixAtIdealSize
)

// Measure types
const (
	MeasureDefault      = layout.MeasureDefault
	MeasureMatchParent  = layout.MeasureMatchParent
	MeasureMatchContent = layout.MeasureMatchContent
)

// Visibility constants
const (
	Visible = layout.Visible
	Hidden  = layout.Hidden
	Gone    = layout.Gone
)

// Change flags
const (
	NeedsMeasure = layout.NeedsMeasure
	NeedsLayout  = layout.NeedsLayout
	NoChange     = layout.NoChange
)

// Safe-area edges
const (
	SafeAreaEdgeTop    = layout.SafeAreaEdgeTop
	SafeAreaEdgeBottom = layout.SafeAreaEdgeBottom
	SafeAreaEdgeStart  = layout.SafeAreaEdgeStart
	SafeAreaEdgeEnd    = layout.SafeAreaEdgeEnd
	SafeAreaEdgeNone   = layout.SafeAreaEdgeNone
	SafeAreaEdgeAll    = layout.SafeAreaEdgeAll
)

// Alignments
var (
	TopStart    = layout.TopStart
	Top         = layout.Top
	TopEnd      = layout.TopEnd
	CenterStart = layout.CenterStart
	Center      = layout.Center
	CenterEnd   = layout.CenterEnd
	BottomStart = layout.BottomStart
	Bottom      = layout.Bottom
	BottomEnd   = layout.BottomEnd
	TopLeft     = layout.TopLeft
	TopRight    = layout.TopRight
	CenterLeft  = layout.CenterLeft
	CenterRight = layout.CenterRight
	BottomLeft  = layout.BottomLeft
	BottomRight = layout.BottomRight
)

// Errors
var (
	ErrInvalidLength    = layout.ErrInvalidLength
	ErrUnknownPolicy    = layout.ErrUnknownPolicy
	ErrUnknownDirection = layout.ErrUnknownDirection
)

// Infinity is the unbounded maximum.
var Infinity = layout.Infinity

// Constructors

func Auto() Length                          { return layout.Auto() }
func Px(v float64) Length                   { return layout.Px(v) }
func Vp(v float64) Length                   { return layout.Vp(v) }
func Percent(p float64) Length              { return layout.Percent(p) }
func Some(v float64) Dim                    { return layout.Some(v) }
func OptionalSizeOf(s Size) OptionalSize    { return layout.OptionalSizeOf(s) }
func NewRect(x, y, w, h float64) Rect       { return layout.NewRect(x, y, w, h) }
func NewCalcSize(w, h Length) CalcSize      { return layout.NewCalcSize(w, h) }
func EdgeAll(l Length) EdgeProperty         { return layout.EdgeAll(l) }
func EdgeSymmetric(v, h Length) EdgeProperty { return layout.EdgeSymmetric(v, h) }
func EdgeTRBL(t, r, b, l Length) EdgeProperty {
	return layout.EdgeTRBL(t, r, b, l)
}
func EdgeLogical(start, top, end, bottom Length) EdgeProperty {
	return layout.EdgeLogical(start, top, end, bottom)
}
func NewNode(id string, m ContentMeasurer) *Node           { return layout.NewNode(id, m) }
func NewImageMeasurer(r io.Reader) (*ImageMeasurer, error) { return layout.NewImageMeasurer(r) }
func NewLayoutConstraint() LayoutConstraint                { return layout.NewLayoutConstraint() }
func RootConstraint(viewport Size) LayoutConstraint        { return layout.RootConstraint(viewport) }
func NewExpansionRegistry() *ExpansionRegistry             { return layout.NewExpansionRegistry() }
func DefaultRegistry() *ExpansionRegistry                  { return layout.DefaultRegistry() }

// Parsers

func ParseLength(s string) (Length, error)             { return layout.ParseLength(s) }
func ParseAlignment(s string) (Alignment, error)       { return layout.ParseAlignment(s) }
func ParseTextDirection(s string) (TextDirection, error) { return layout.ParseTextDirection(s) }
func ParseSizingPolicy(s string) (SizingPolicy, error) { return layout.ParseSizingPolicy(s) }
func ParseMeasureType(s string) (MeasureType, error)   { return layout.ParseMeasureType(s) }
func ParseVisibility(s string) (Visibility, error)     { return layout.ParseVisibility(s) }
func ParseSafeAreaEdges(names []string) (SafeAreaEdge, error) {
	return layout.ParseSafeAreaEdges(names)
}

// Engine options

var (
	WithLogger   = layout.WithLogger
	WithRegistry = layout.WithRegistry
	WithSafeArea = layout.WithSafeArea
	WithLocale   = layout.WithLocale
)

// NewEngine creates an engine.
func NewEngine(opts ...Option) *Engine { return layout.NewEngine(opts...) }

// Calculate performs a full pass on the tree rooted at root inside viewport.
func Calculate(root *Node, viewport Size, opts ...Option) {
	layout.Calculate(root, viewport, opts...)
}
