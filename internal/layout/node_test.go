package layout

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNewNode(t *testing.T) {
	node := NewNode("n", nil)

	if node.ID() != "n" {
		t.Errorf("NewNode ID = %q, want %q", node.ID(), "n")
	}
	if _, ok := node.Measurer().(BoxMeasurer); !ok {
		t.Errorf("NewNode with nil measurer = %T, want BoxMeasurer", node.Measurer())
	}
	if !node.Dirty().Has(NeedsMeasure | NeedsLayout) {
		t.Errorf("NewNode dirty = %b, want measure and layout", node.Dirty())
	}
	if len(node.Children()) != 0 {
		t.Errorf("NewNode should have no children, got %d", len(node.Children()))
	}
	if node.Props().Alignment() != Center {
		t.Errorf("NewNode alignment = %+v, want Center", node.Props().Alignment())
	}
}

func TestNode_AddChild(t *testing.T) {
	parent := NewNode("parent", nil)
	child1 := NewNode("child1", nil)
	child2 := NewNode("child2", nil)

	// Clear dirty flags to test that AddChild marks dirty
	parent.dirty = NoChange

	parent.AddChild(child1, child2)

	if len(parent.Children()) != 2 {
		t.Errorf("AddChild: len(Children) = %d, want 2", len(parent.Children()))
	}
	if parent.Children()[0] != child1 || parent.Children()[1] != child2 {
		t.Error("AddChild: children out of order")
	}
	if child1.Parent() != parent || child2.Parent() != parent {
		t.Error("AddChild: parent not set")
	}
	if !parent.Dirty().Has(NeedsMeasure) {
		t.Error("AddChild should mark parent for measure")
	}
}

func TestNode_AddChildReparents(t *testing.T) {
	a := NewNode("a", nil)
	b := NewNode("b", nil)
	child := NewNode("child", nil)

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if child.Parent() != b {
		t.Error("child not moved to new parent")
	}
}

func TestNode_RemoveChild(t *testing.T) {
	type tc struct {
		remove      func(parent, c1, c2, c3 *Node) *Node
		expectFound bool
		expectIDs   []string
	}

	tests := map[string]tc{
		"remove middle child keeps order": {
			remove:      func(_, _, c2, _ *Node) *Node { return c2 },
			expectFound: true,
			expectIDs:   []string{"c1", "c3"},
		},
		"remove non-existent child": {
			remove:      func(_, _, _, _ *Node) *Node { return NewNode("other", nil) },
			expectFound: false,
			expectIDs:   []string{"c1", "c2", "c3"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode("parent", nil)
			c1, c2, c3 := NewNode("c1", nil), NewNode("c2", nil), NewNode("c3", nil)
			parent.AddChild(c1, c2, c3)
			parent.dirty = NoChange

			target := tt.remove(parent, c1, c2, c3)
			found := parent.RemoveChild(target)

			if found != tt.expectFound {
				t.Errorf("RemoveChild returned %v, want %v", found, tt.expectFound)
			}
			var ids []string
			for _, c := range parent.Children() {
				ids = append(ids, c.ID())
			}
			if len(ids) != len(tt.expectIDs) {
				t.Fatalf("children = %v, want %v", ids, tt.expectIDs)
			}
			for i := range ids {
				if ids[i] != tt.expectIDs[i] {
					t.Errorf("children = %v, want %v", ids, tt.expectIDs)
					break
				}
			}
			if tt.expectFound && (target.Parent() != nil || !parent.IsDirty()) {
				t.Error("removed child should be detached and parent dirty")
			}
			if !tt.expectFound && parent.IsDirty() {
				t.Error("failed removal should not mark dirty")
			}
		})
	}
}

func TestNode_MarkDirtyPropagates(t *testing.T) {
	root := NewNode("root", nil)
	mid := NewNode("mid", nil)
	leaf := NewNode("leaf", nil)
	root.AddChild(mid)
	mid.AddChild(leaf)

	Calculate(root, Size{Width: 100, Height: 100}, WithRegistry(NewExpansionRegistry()))
	for _, n := range []*Node{root, mid, leaf} {
		if n.IsDirty() {
			t.Fatalf("%s dirty after Calculate: %b", n.ID(), n.Dirty())
		}
	}

	leaf.MarkDirty(NeedsLayout)
	for _, n := range []*Node{root, mid, leaf} {
		if n.Dirty() != NeedsLayout {
			t.Errorf("%s dirty = %b, want layout only", n.ID(), n.Dirty())
		}
	}

	leaf.MarkDirty(NeedsMeasure)
	if !root.Dirty().Has(NeedsMeasure | NeedsLayout) {
		t.Errorf("root dirty = %b, want measure and layout", root.Dirty())
	}
}

func TestNode_SettersSignalDirty(t *testing.T) {
	type tc struct {
		apply    func(n *Node) bool
		expected PropertyChange
	}

	tests := map[string]tc{
		"size":        {apply: func(n *Node) bool { return n.SetSize(Px(10), Px(10)) }, expected: NeedsMeasure},
		"padding":     {apply: func(n *Node) bool { return n.SetPadding(EdgeAll(Px(1))) }, expected: NeedsMeasure | NeedsLayout},
		"alignment":   {apply: func(n *Node) bool { return n.SetAlignment(TopStart) }, expected: NeedsLayout},
		"hidden":      {apply: func(n *Node) bool { return n.SetVisibility(Hidden) }, expected: NeedsLayout},
		"gone":        {apply: func(n *Node) bool { return n.SetVisibility(Gone) }, expected: NeedsMeasure | NeedsLayout},
		"policy":      {apply: func(n *Node) bool { return n.SetSizingPolicy(MatchParent, NoMatch) }, expected: NeedsMeasure},
		"same policy": {apply: func(n *Node) bool { return n.SetSizingPolicy(NoMatch, NoMatch) }, expected: NoChange},
		"direction":   {apply: func(n *Node) bool { return n.SetDirection(DirectionRTL) }, expected: NeedsMeasure | NeedsLayout},
		"layout rect": {apply: func(n *Node) bool { return n.SetLayoutRect(NewRect(0, 0, 5, 5)) }, expected: NeedsMeasure | NeedsLayout},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode("parent", nil)
			child := NewNode("child", nil)
			parent.AddChild(child)
			parent.dirty, child.dirty = NoChange, NoChange

			changed := tt.apply(child)

			if changed != (tt.expected != NoChange) {
				t.Errorf("setter returned %v", changed)
			}
			if child.Dirty() != tt.expected {
				t.Errorf("child dirty = %b, want %b", child.Dirty(), tt.expected)
			}
			if parent.Dirty() != tt.expected {
				t.Errorf("parent dirty = %b, want %b", parent.Dirty(), tt.expected)
			}
		})
	}
}

func TestNode_GoneToHiddenRemeasuresParent(t *testing.T) {
	parent := NewNode("parent", nil)
	child := NewNode("child", nil)
	parent.AddChild(child)
	child.SetVisibility(Gone)
	parent.dirty, child.dirty = NoChange, NoChange

	child.SetVisibility(Hidden)

	if !parent.Dirty().Has(NeedsMeasure) {
		t.Errorf("leaving gone should remeasure the parent, dirty = %b", parent.Dirty())
	}
}

func TestNode_Locale(t *testing.T) {
	root := NewNode("root", nil)
	child := NewNode("child", nil)
	root.AddChild(child)

	if child.Locale() != language.Und {
		t.Errorf("default locale = %v, want und", child.Locale())
	}

	root.SetLocale(language.Arabic)
	if child.Locale() != language.Arabic {
		t.Errorf("inherited locale = %v, want ar", child.Locale())
	}

	child.SetLocale(language.English)
	if child.Locale() != language.English {
		t.Errorf("own locale = %v, want en", child.Locale())
	}
}

func TestNode_Walk(t *testing.T) {
	root := NewNode("root", nil)
	a, b := NewNode("a", nil), NewNode("b", nil)
	root.AddChild(a, b)
	a.AddChild(NewNode("a1", nil))

	var order []string
	root.Walk(func(n *Node) { order = append(order, n.ID()) })

	want := []string{"root", "a", "a1", "b"}
	if len(order) != len(want) {
		t.Fatalf("Walk order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Walk order = %v, want %v", order, want)
			break
		}
	}
}
