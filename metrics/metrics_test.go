package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/metrics"
	"github.com/katalvlaran/waypath/roadmap/maptest"
)

func TestCollector_Search(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	m := maptest.Map40()

	res, err := astar.Search(m, 8, 24, c.Options()...)
	require.NoError(t, err)
	c.Observe(res, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeFound)))
	assert.Equal(t, float64(res.Expanded), testutil.ToFloat64(c.Expanded))
	assert.Equal(t, float64(res.Reopened), testutil.ToFloat64(c.Reopened))
	assert.GreaterOrEqual(t, testutil.ToFloat64(c.Pushed), float64(res.Expanded))

	count, err := testutil.GatherAndCount(reg, "waypath_path_cost", "waypath_path_hops")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_Outcomes(t *testing.T) {
	c := metrics.NewCollector(nil)
	m := maptest.Map40()

	res, err := astar.Search(m, -1, 3)
	c.Observe(res, err)
	res, err = astar.Search(m, 0, 400)
	c.Observe(res, err)
	c.Observe(astar.Result{Status: astar.StatusNoPath, Expanded: 12}, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeInvalidInput)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeNoPath)))
	assert.Zero(t, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeFound)))
}

func TestCollector_SearchAll(t *testing.T) {
	c := metrics.NewCollector(nil)
	m := maptest.Map40()
	queries := []astar.Query{{Start: 8, Goal: 24}, {Start: 0, Goal: 0}, {Start: 3, Goal: 30}}

	results, err := astar.SearchAll(context.Background(), m, queries, c.Options()...)
	require.NoError(t, err)
	c.ObserveAll(results, err)

	expanded := 0
	for _, r := range results {
		expanded += r.Expanded
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeFound)))
	assert.Equal(t, float64(expanded), testutil.ToFloat64(c.Expanded))

	c.ObserveAll(nil, errors.New("boom"))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeError)))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)
	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
