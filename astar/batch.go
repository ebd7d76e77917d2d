package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/waypath/roadmap"
)

// SearchAll runs one Search per query concurrently on the shared map m and
// returns the results in query order.
//
// At most Options.Concurrency searches run at once (WithConcurrency,
// default GOMAXPROCS). Each search owns its own frontier and registry; m
// is only read. The first error (unknown vertex, cancellation, expansion
// limit...) cancels the remaining searches and is returned with the index
// of the failing query. StatusNoPath and StatusInvalidInput are results,
// not errors, and do not stop the batch.
//
// Any WithContext option is replaced by ctx.
func SearchAll(ctx context.Context, m *roadmap.Map, queries []Query, opts ...Option) ([]Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNilMap
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	// full slice expression: the append must not write into the caller's array
	perQuery := append(opts[:len(opts):len(opts)], WithContext(gctx))
	for i, q := range queries {
		g.Go(func() error {
			res, err := Search(m, q.Start, q.Goal, perQuery...)
			if err != nil {
				return fmt.Errorf("astar: query %d (%d→%d): %w", i, q.Start, q.Goal, err)
			}
			results[i] = res

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
