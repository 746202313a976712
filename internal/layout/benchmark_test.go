package layout

import (
	"fmt"
	"testing"
)

// buildTree creates a tree with the specified branching factor and depth.
// Total nodes = sum of (branching^i) for i from 0 to depth.
func buildTree(branching, depth int) *Node {
	root := NewNode("root", nil)
	root.SetSize(Px(1000), Px(1000))
	root.SetPadding(EdgeAll(Px(2)))

	if depth > 0 {
		addChildrenRecursive(root, branching, depth-1)
	}

	return root
}

func addChildrenRecursive(parent *Node, branching, remainingDepth int) {
	for i := 0; i < branching; i++ {
		child := NewNode(fmt.Sprintf("%s.%d", parent.ID(), i), nil)
		child.SetMargin(EdgeAll(Px(1)))

		// Alternate stacking at each level
		child.SetColumn(!parent.IsColumn())

		if remainingDepth > 0 {
			addChildrenRecursive(child, branching, remainingDepth-1)
		} else {
			child.SetMeasurer(TextMeasurer{Text: "leaf", FontSize: 12})
		}

		parent.AddChild(child)
	}
}

// buildLinearTree creates a tree with n fixed-size leaves under one root.
func buildLinearTree(n int) *Node {
	root := NewNode("root", nil)
	root.SetSize(Px(1000), Px(1000))
	root.SetColumn(true)

	for i := 0; i < n; i++ {
		child := NewNode(fmt.Sprintf("leaf%d", i), nil)
		child.SetSize(Px(10), Px(100))
		root.AddChild(child)
	}

	return root
}

// countNodes counts the total number of nodes in a tree.
func countNodes(node *Node) int {
	count := 0
	node.Walk(func(*Node) { count++ })
	return count
}

func benchEngine() *Engine {
	return NewEngine(WithRegistry(NewExpansionRegistry()))
}

var benchViewport = Size{Width: 1000, Height: 1000}

// BenchmarkCalculate_10Nodes: branching=3, depth=2 = 13 nodes
func BenchmarkCalculate_10Nodes(b *testing.B) {
	root := buildTree(3, 2)
	b.Logf("Node count: %d", countNodes(root))
	e := benchEngine()

	// Initial calculation to warm up
	e.Calculate(root, benchViewport)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Mark root dirty to force full recalculation
		root.Walk(func(n *Node) { n.MarkDirty(NeedsMeasure | NeedsLayout) })
		e.Calculate(root, benchViewport)
	}
}

// BenchmarkCalculate_100Nodes: branching=3, depth=4 = 121 nodes
func BenchmarkCalculate_100Nodes(b *testing.B) {
	root := buildTree(3, 4)
	b.Logf("Node count: %d", countNodes(root))
	e := benchEngine()
	e.Calculate(root, benchViewport)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Walk(func(n *Node) { n.MarkDirty(NeedsMeasure | NeedsLayout) })
		e.Calculate(root, benchViewport)
	}
}

// BenchmarkCalculate_1000Nodes: 1 root + 999 children
func BenchmarkCalculate_1000Nodes(b *testing.B) {
	root := buildLinearTree(999)
	b.Logf("Node count: %d", countNodes(root))
	e := benchEngine()
	e.Calculate(root, benchViewport)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Walk(func(n *Node) { n.MarkDirty(NeedsMeasure | NeedsLayout) })
		e.Calculate(root, benchViewport)
	}
}

// BenchmarkCalculate_IncrementalVsFull compares a fully dirty tree with one
// where a single leaf changed. Clean siblings along the path skip measurement.
func BenchmarkCalculate_IncrementalVsFull(b *testing.B) {
	root := buildTree(3, 4)
	e := benchEngine()
	e.Calculate(root, benchViewport)

	leaf := root
	for len(leaf.Children()) > 0 {
		leaf = leaf.Children()[0]
	}

	b.Run("full", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			root.Walk(func(n *Node) { n.MarkDirty(NeedsMeasure | NeedsLayout) })
			e.Calculate(root, benchViewport)
		}
	})

	b.Run("incremental", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			leaf.MarkDirty(NeedsMeasure)
			e.Calculate(root, benchViewport)
		}
	})
}

// BenchmarkResolveConstraint measures a single propagator step.
func BenchmarkResolveConstraint(b *testing.B) {
	n := NewNode("n", nil)
	n.SetSize(Percent(50), Px(40))
	n.SetMargin(EdgeAll(Px(4)))
	n.SetPadding(EdgeLogical(Px(8), Px(2), Px(4), Px(2)))
	n.UpdateAspectRatio(2)
	parent := RootConstraint(benchViewport)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Props().ResolveConstraint(parent)
	}
}

// BenchmarkNewNode benchmarks node creation.
func BenchmarkNewNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewNode("n", nil)
	}
}
