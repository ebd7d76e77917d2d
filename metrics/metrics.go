// Package metrics exports Prometheus metrics for waypath searches.
//
// A Collector plugs into astar through its hook options and records
// frontier activity, plus per-search outcomes via Observe:
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer)
//	res, err := astar.Search(m, s, g, c.Options()...)
//	c.Observe(res, err)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/waypath/astar"
)

// Outcome label values of waypath_searches_total.
const (
	OutcomeFound        = "found"
	OutcomeNoPath       = "no_path"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// Collector groups the search metrics. All methods are safe for
// concurrent use, so one Collector can serve astar.SearchAll.
type Collector struct {
	Searches  *prometheus.CounterVec
	Pushed    prometheus.Counter
	Expanded  prometheus.Counter
	Reopened  prometheus.Counter
	PathCost  prometheus.Histogram
	PathHops  prometheus.Histogram
	Expansion prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg skips registration (useful in tests).
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "waypath_searches_total",
				Help: "Total searches by outcome",
			},
			[]string{"outcome"},
		),
		Pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waypath_frontier_pushes_total",
			Help: "Vertices pushed onto the frontier, including reopenings",
		}),
		Expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waypath_expansions_total",
			Help: "Vertices popped from the frontier and closed",
		}),
		Reopened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waypath_reopenings_total",
			Help: "Closed vertices reopened after a cheaper route was found",
		}),
		PathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_path_cost",
			Help:    "Cost of found paths",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 16),
		}),
		PathHops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_path_hops",
			Help:    "Number of roads in found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Expansion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_search_expansions",
			Help:    "Vertices expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(c.Searches, c.Pushed, c.Expanded, c.Reopened, c.PathCost, c.PathHops, c.Expansion)
	}

	return c
}

// Options returns astar hooks that feed the frontier counters.
func (c *Collector) Options() []astar.Option {
	return []astar.Option{
		astar.WithOnPush(func(int, float64, float64) { c.Pushed.Inc() }),
		astar.WithOnExpand(func(int, float64, float64) { c.Expanded.Inc() }),
		astar.WithOnReopen(func(int, float64, float64) { c.Reopened.Inc() }),
	}
}

// Observe records the outcome of one search.
func (c *Collector) Observe(res astar.Result, err error) {
	if err != nil {
		c.Searches.WithLabelValues(OutcomeError).Inc()
		return
	}

	switch res.Status {
	case astar.StatusFound:
		c.Searches.WithLabelValues(OutcomeFound).Inc()
		c.PathCost.Observe(res.Cost)
		c.PathHops.Observe(float64(len(res.Path) - 1))
	case astar.StatusNoPath:
		c.Searches.WithLabelValues(OutcomeNoPath).Inc()
	case astar.StatusInvalidInput:
		c.Searches.WithLabelValues(OutcomeInvalidInput).Inc()
		return
	}
	c.Expansion.Observe(float64(res.Expanded))
}

// ObserveAll records a SearchAll batch. A batch error counts once.
func (c *Collector) ObserveAll(results []astar.Result, err error) {
	if err != nil {
		c.Observe(astar.Result{}, err)
		return
	}
	for _, res := range results {
		c.Observe(res, nil)
	}
}
