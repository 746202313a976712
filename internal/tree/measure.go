package tree

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// MeasureOptions is the environment a tree is measured in when the document
// does not declare its own.
type MeasureOptions struct {
	Viewport layout.Size
	Locale   language.Tag
	Logger   *zap.Logger

	// Direction is given to a root that declares none. Nil leaves the root
	// to inherit from the locale.
	Direction *layout.TextDirection
}

// Measure runs a full pass over t with its own engine and registry, then
// drains postponed children once. It returns the viewport used and the
// number of children still postponed.
func Measure(t *Tree, opts MeasureOptions) (layout.Size, int) {
	viewport := opts.Viewport
	if t.Viewport != nil {
		viewport = *t.Viewport
	}
	locale := opts.Locale
	if t.Locale != language.Und {
		locale = t.Locale
	}

	engineOpts := []layout.Option{
		layout.WithRegistry(layout.NewExpansionRegistry()),
		layout.WithLogger(opts.Logger),
	}
	if locale != language.Und {
		engineOpts = append(engineOpts, layout.WithLocale(locale))
	}
	if t.SafeArea != nil {
		engineOpts = append(engineOpts, layout.WithSafeArea(t.SafeArea))
	}
	if opts.Direction != nil && t.Root.Props().DeclaredDirection() == layout.DirectionInherit {
		t.Root.SetDirection(*opts.Direction)
	}

	e := layout.NewEngine(engineOpts...)
	e.Calculate(t.Root, viewport)
	if e.Registry().Len() > 0 {
		e.DrainPending()
	}
	return viewport, e.Registry().Len()
}
