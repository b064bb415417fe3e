package recognition

import (
	"errors"

	"github.com/regina-normal/tri3/normalsurface"
	"github.com/regina-normal/tri3/triangulation"
)

// Sentinel errors. ErrNoEngine/ErrMaxCrushDepthExceeded are
// configuration/resource failures (spec.md §7 draws a hard line
// between these and a recogniser's ordinary negative answer);
// everything a collaborator Engine reports is propagated as-is
// (normalsurface.ErrIndeterminate in particular).
var (
	ErrNoEngine              = errors.New("recognition: no normal-surface engine configured")
	ErrMaxCrushDepthExceeded = errors.New("recognition: exceeded max crush depth without resolving")
)

// HomologyProvider computes first homology for a triangulation. The
// default wraps (*triangulation.Triangulation).Homology; any
// implementation that agrees on free rank and torsion factors
// suffices (spec.md §6's homology_h1 collaborator contract).
type HomologyProvider interface {
	H1(t *triangulation.Triangulation) triangulation.Homology
}

type defaultHomologyProvider struct{}

func (defaultHomologyProvider) H1(t *triangulation.Triangulation) triangulation.Homology {
	return t.Homology()
}

// Options configures every recogniser in this package.
type Options struct {
	Engine        normalsurface.Engine
	Homology      HomologyProvider
	MaxCrushDepth int
}

// Option mutates an Options value; following bfs.Option/matrix.Option,
// a nil func is a no-op rather than a panic.
type Option func(*Options)

// WithEngine supplies the normal-surface collaborator every
// recogniser needs to make progress past 0-efficiency. Required:
// recognisers return ErrNoEngine if none is configured.
func WithEngine(e normalsurface.Engine) Option {
	return func(o *Options) {
		if e != nil {
			o.Engine = e
		}
	}
}

// WithHomologyProvider overrides the default H1 computation (the
// triangulation package's own Smith-normal-form-backed Homology).
func WithHomologyProvider(h HomologyProvider) Option {
	return func(o *Options) {
		if h != nil {
			o.Homology = h
		}
	}
}

// WithMaxCrushDepth bounds how many work-list items a recogniser will
// process before giving up with ErrMaxCrushDepthExceeded, guarding
// against a pathological or buggy Engine that never converges. n <= 0
// is ignored.
func WithMaxCrushDepth(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCrushDepth = n
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := Options{Homology: defaultHomologyProvider{}, MaxCrushDepth: 10000}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
