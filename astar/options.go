package astar

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/waypath/geom"
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the parameters and callbacks of a search.
//
// Hooks run synchronously inside the search loop. When the same options
// are shared by SearchAll the hooks are called from several goroutines and
// must be safe for concurrent use.
type Options struct {
	// Ctx allows cancellation between iterations of the main loop.
	Ctx context.Context

	// Cost is the edge-cost metric between adjacent intersections.
	Cost geom.Func

	// Heuristic estimates the remaining cost from a vertex to the goal.
	Heuristic geom.Func

	// Logger receives debug traces of expansions and relaxations.
	Logger logrus.FieldLogger

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// vertices have been expanded without reaching the goal.
	MaxExpansions int

	// Concurrency caps the number of concurrent searches in SearchAll.
	Concurrency int

	// OnPush is called when a vertex enters the frontier (first discovery
	// or reopening) with its g and f values.
	OnPush func(id int, g, f float64)

	// OnExpand is called when a vertex is popped and closed.
	OnExpand func(id int, g, f float64)

	// OnReopen is called when a closed vertex is relaxed to a lower g.
	OnReopen func(id int, oldG, newG float64)

	err error
}

// discardLogger is the default Logger; it drops everything.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}()

// DefaultOptions returns Options with:
//   - context.Background()
//   - Euclidean cost and Euclidean heuristic
//   - a logger that discards output
//   - no expansion limit
//   - Concurrency = GOMAXPROCS
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Cost:          geom.Euclidean,
		Heuristic:     geom.Euclidean,
		Logger:        discardLogger,
		MaxExpansions: 0,
		Concurrency:   runtime.GOMAXPROCS(0),
		OnPush:        func(int, float64, float64) {},
		OnExpand:      func(int, float64, float64) {},
		OnReopen:      func(int, float64, float64) {},
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost sets the edge-cost metric. Nil is ignored.
func WithCost(f geom.Func) Option {
	return func(o *Options) {
		if f != nil {
			o.Cost = f
		}
	}
}

// WithHeuristic sets the heuristic. Nil is ignored; use geom.Zero for
// uniform-cost search.
func WithHeuristic(f geom.Func) Option {
	return func(o *Options) {
		if f != nil {
			o.Heuristic = f
		}
	}
}

// WithMetric uses f as both edge cost and heuristic.
func WithMetric(f geom.Func) Option {
	return func(o *Options) {
		WithCost(f)(o)
		WithHeuristic(f)(o)
	}
}

// WithMetricName resolves name with geom.ByName and uses it as both edge
// cost and heuristic. Unknown names yield ErrOptionViolation.
func WithMetricName(name string) Option {
	return func(o *Options) {
		f, err := geom.ByName(name)
		if err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		WithMetric(f)(o)
	}
}

// WithLogger sets the logger for search traces. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions limits the number of expanded vertices.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithConcurrency caps the number of searches SearchAll runs at once.
// n must be ≥ 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Concurrency must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// WithOnPush registers a callback run when a vertex enters the frontier.
func WithOnPush(fn func(id int, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback run when a vertex is closed.
func WithOnExpand(fn func(id int, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnReopen registers a callback run when a closed vertex is reopened.
func WithOnReopen(fn func(id int, oldG, newG float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReopen = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
