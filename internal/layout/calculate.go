package layout

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Engine runs layout passes over node trees. An engine is not safe for
// concurrent use; give each goroutine its own engine and registry.
type Engine struct {
	logger   *zap.Logger
	registry *ExpansionRegistry
	safeArea SafeAreaProvider
	locale   language.Tag
	box      *BoxSizingAlgorithm
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger passes report to. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRegistry sets the registry postponed children are recorded in. The
// default is DefaultRegistry.
func WithRegistry(r *ExpansionRegistry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithSafeArea sets the provider consulted for safe-area expansion. Without
// one every expansion is zero and committed.
func WithSafeArea(p SafeAreaProvider) Option {
	return func(e *Engine) { e.safeArea = p }
}

// WithLocale sets the locale given to roots that declare none.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) { e.locale = tag }
}

// NewEngine creates an engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:   zap.NewNop(),
		registry: DefaultRegistry(),
		locale:   defaultLocale,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.box = newBoxSizingAlgorithm(e.logger, e.registry, e.safeArea)
	return e
}

// Registry returns the engine's expansion registry.
func (e *Engine) Registry() *ExpansionRegistry { return e.registry }

// Box returns the engine's box sizing algorithm.
func (e *Engine) Box() *BoxSizingAlgorithm { return e.box }

// Calculate performs a full pass on the tree rooted at root inside a
// viewport. The root gets the implicit viewport constraint and sits at its
// margin offset. A clean tree is left untouched.
func (e *Engine) Calculate(root *Node, viewport Size) {
	if root == nil {
		return
	}
	// Dirty propagates up, so a clean root guarantees a clean tree
	if !root.IsDirty() {
		return
	}
	if e.locale != defaultLocale && root.locale == defaultLocale {
		root.locale = e.locale
	}

	e.logger.Debug("layout pass",
		zap.String("root", root.id),
		zap.Stringer("viewport", viewport))

	e.box.Measure(root, RootConstraint(viewport))
	g := root.geometry
	if r, ok := root.props.LayoutRect(); ok {
		g.frameOffset = r.Offset()
	} else {
		g.frameOffset = g.margin.TopLeft()
	}
	e.box.Layout(root)
}

// DrainPending re-measures and lays out every postponed child whose parent's
// expansion is now available. Children that are still not ready are
// registered again. It returns how many children were finished.
func (e *Engine) DrainPending() int {
	done := 0
	e.registry.Drain(func(pe PendingExpansion) {
		if pe.Child.parent != pe.Parent {
			return
		}
		if !e.box.adaptive.measureChild(pe.Parent, pe.Child) {
			return
		}
		e.box.layoutChild(pe.Parent, pe.Child)
		done++
	})
	e.logger.Debug("drained pending expansions",
		zap.Int("finished", done),
		zap.Int("remaining", e.registry.Len()))
	return done
}

// Calculate runs one pass with a throwaway engine built from opts.
func Calculate(root *Node, viewport Size, opts ...Option) {
	NewEngine(opts...).Calculate(root, viewport)
}
