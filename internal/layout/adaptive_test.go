package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandingTree() (parent, child *Node) {
	parent = NewNode("parent", nil)
	parent.SetSize(Px(300), Px(200))
	child = NewNode("child", nil)
	child.SetSizingPolicy(MatchParent, MatchParent)
	child.SetIgnoreLayoutSafeArea(SafeAreaEdgeTop | SafeAreaEdgeBottom)
	parent.AddChild(child)
	return parent, child
}

func TestAdaptiveChildrenMeasurer_PostponesUntilCommitted(t *testing.T) {
	parent, child := expandingTree()
	safeArea := &StaticSafeArea{Edges: ExpandEdges{Top: 20, Bottom: 30}}
	registry := NewExpansionRegistry()
	e := NewEngine(WithRegistry(registry), WithSafeArea(safeArea))

	e.Calculate(parent, Size{Width: 1000, Height: 1000})

	require.True(t, child.IsPostponed())
	require.Equal(t, 1, registry.Len())
	pending := registry.Pending()
	assert.Same(t, child, pending[0].Child)
	assert.Same(t, parent, pending[0].Parent)
	assert.Equal(t, Size{Width: 300, Height: 200}, parent.Geometry().FrameSize())

	safeArea.Commit()
	assert.Equal(t, 1, e.DrainPending())
	assert.Equal(t, 0, registry.Len())

	g := child.Geometry()
	assert.False(t, child.IsPostponed())
	assert.Equal(t, Size{Width: 300, Height: 250}, g.FrameSize())
	assert.Equal(t, Offset{X: 0, Y: -20}, g.FrameOffset())
	e2, ok := g.SafeAreaExpand()
	require.True(t, ok)
	assert.Equal(t, ExpandEdges{Top: 20, Bottom: 30}, e2)
}

func TestAdaptiveChildrenMeasurer_UncommittedDrainRegistersAgain(t *testing.T) {
	parent, child := expandingTree()
	registry := NewExpansionRegistry()
	e := NewEngine(WithRegistry(registry), WithSafeArea(&StaticSafeArea{Edges: ExpandEdges{Top: 20}}))

	e.Calculate(parent, Size{Width: 1000, Height: 1000})
	require.Equal(t, 1, registry.Len())

	assert.Equal(t, 0, e.DrainPending())
	assert.Equal(t, 1, registry.Len())
	assert.True(t, child.IsPostponed())
}

func TestAdaptiveChildrenMeasurer_SkipsReparentedChild(t *testing.T) {
	parent, child := expandingTree()
	safeArea := &StaticSafeArea{Edges: ExpandEdges{Top: 20}}
	registry := NewExpansionRegistry()
	e := NewEngine(WithRegistry(registry), WithSafeArea(safeArea))

	e.Calculate(parent, Size{Width: 1000, Height: 1000})
	require.Equal(t, 1, registry.Len())

	parent.RemoveChild(child)
	safeArea.Commit()
	assert.Equal(t, 0, e.DrainPending())
	assert.Equal(t, 0, registry.Len())
}

func TestAdaptiveChildrenMeasurer_NoExpansionMeasuredDirectly(t *testing.T) {
	type tc struct {
		setup    func(child *Node)
		expected Size
	}

	tests := map[string]tc{
		"no ignored edges": {
			setup:    func(child *Node) {},
			expected: Size{Width: 300, Height: 200},
		},
		"ignored edges on a wrap content axis": {
			setup: func(child *Node) {
				child.SetSizingPolicy(MatchParent, WrapContent)
				child.SetIgnoreLayoutSafeArea(SafeAreaEdgeTop)
			},
			expected: Size{Width: 300, Height: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode("parent", nil)
			parent.SetSize(Px(300), Px(200))
			child := NewNode("child", nil)
			child.SetSizingPolicy(MatchParent, MatchParent)
			parent.AddChild(child)
			tt.setup(child)

			registry := NewExpansionRegistry()
			e := NewEngine(WithRegistry(registry), WithSafeArea(&StaticSafeArea{Edges: ExpandEdges{Top: 20}}))
			e.Calculate(parent, Size{Width: 1000, Height: 1000})

			assert.Equal(t, 0, registry.Len())
			assert.False(t, child.IsPostponed())
			assert.Equal(t, tt.expected, child.Geometry().FrameSize())
			_, ok := child.Geometry().SafeAreaExpand()
			assert.False(t, ok)
		})
	}
}

func TestAdaptiveChildrenMeasurer_NilProviderIsCommitted(t *testing.T) {
	parent, child := expandingTree()
	registry := NewExpansionRegistry()
	NewEngine(WithRegistry(registry)).Calculate(parent, Size{Width: 1000, Height: 1000})

	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, Size{Width: 300, Height: 200}, child.Geometry().FrameSize())
	assert.Equal(t, Offset{}, child.Geometry().FrameOffset())
}

func TestExpandEdges_Filter(t *testing.T) {
	all := ExpandEdges{Left: 1, Top: 2, Right: 3, Bottom: 4}

	type tc struct {
		edges    SafeAreaEdge
		dir      TextDirection
		expected ExpandEdges
	}

	tests := map[string]tc{
		"none":            {edges: SafeAreaEdgeNone, dir: DirectionLTR, expected: ExpandEdges{}},
		"all":             {edges: SafeAreaEdgeAll, dir: DirectionLTR, expected: all},
		"vertical":        {edges: SafeAreaEdgeTop | SafeAreaEdgeBottom, dir: DirectionLTR, expected: ExpandEdges{Top: 2, Bottom: 4}},
		"start under LTR": {edges: SafeAreaEdgeStart, dir: DirectionLTR, expected: ExpandEdges{Left: 1}},
		"start under RTL": {edges: SafeAreaEdgeStart, dir: DirectionRTL, expected: ExpandEdges{Right: 3}},
		"end under RTL":   {edges: SafeAreaEdgeEnd, dir: DirectionRTL, expected: ExpandEdges{Left: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, all.filter(tt.edges, tt.dir))
		})
	}
}

func TestExpansionRegistry(t *testing.T) {
	r := NewExpansionRegistry()
	a, b, p := NewNode("a", nil), NewNode("b", nil), NewNode("p", nil)

	assert.True(t, r.Add(a, p))
	assert.False(t, r.Add(a, p), "duplicate pair")
	assert.True(t, r.Add(b, p))
	assert.Equal(t, 2, r.Len())

	var seen []string
	n := r.Drain(func(pe PendingExpansion) {
		seen = append(seen, pe.Child.ID())
		if pe.Child == b {
			r.Add(b, p)
		}
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, 1, r.Len(), "pairs added while draining stay")

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Pending())
}

func TestAdaptiveChildrenMeasurer_ChangeUnderPostponedChildDirtiesRoot(t *testing.T) {
	parent, child := expandingTree()
	leaf := NewNode("leaf", nil)
	child.AddChild(leaf)
	safeArea := &StaticSafeArea{Edges: ExpandEdges{Top: 20}}
	e := NewEngine(WithRegistry(NewExpansionRegistry()), WithSafeArea(safeArea))

	e.Calculate(parent, Size{Width: 1000, Height: 1000})
	require.True(t, child.IsPostponed())
	require.False(t, parent.IsDirty())

	leaf.SetSize(Px(40), Px(40))
	assert.True(t, parent.Dirty().Has(NeedsMeasure))

	safeArea.Commit()
	e.Calculate(parent, Size{Width: 1000, Height: 1000})
	assert.False(t, child.IsPostponed())
	assert.Equal(t, Size{Width: 40, Height: 40}, leaf.Geometry().FrameSize())
	assert.False(t, parent.IsDirty())
}

func TestAdaptiveChildrenMeasurer_ChildRemovesOwnMargin(t *testing.T) {
	parent := NewNode("parent", nil)
	parent.SetSize(Px(300), Px(200))
	parent.SetMargin(EdgeAll(Px(25)))
	child := NewNode("child", nil)
	child.SetSizingPolicy(MatchParent, MatchParent)
	child.SetMargin(EdgeAll(Px(10)))
	parent.AddChild(child)

	newTestEngine().Calculate(parent, Size{Width: 1000, Height: 1000})

	assert.Equal(t, Size{Width: 280, Height: 180}, child.Geometry().FrameSize())
	assert.Equal(t, Offset{X: 10, Y: 10}, child.Geometry().FrameOffset())
}
