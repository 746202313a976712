// Package layout implements a box-model constraint resolver for retained UI trees.
//
// Every [Node] owns a [ConstraintPropagator] holding its declared box properties
// (padding, border, margin, safe-area padding, aspect ratio, min/max/ideal size,
// per-axis sizing policy, writing direction) and a [GeometryNode] holding the
// output of the last pass. A pass runs in two phases: Measure walks the tree
// post-order turning the parent constraint into a frame size, then Layout walks
// it pre-order placing children inside the parent's content area.
//
// Children sized relative to their parent's resolved size are measured after the
// parent by the [AdaptiveChildrenMeasurer]. Those that also expand into safe-area
// insets may be postponed into an [ExpansionRegistry] and finished by a later
// drain.
//
// The main entry point is [Calculate], which runs a full pass over a tree using
// a viewport-sized root constraint.
package layout
