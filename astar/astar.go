package astar

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
)

// Search finds a least-cost path from start to goal in m.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. m must be non-nil (ErrNilMap).
//  3. start and goal must be non-negative, else StatusInvalidInput (no error).
//  4. start and goal must exist in m (ErrUnknownVertex).
//
// If start == goal the result is the single-vertex path [start] with cost 0.
// An unreachable goal yields StatusNoPath and a nil error.
//
// Complexity: O((V + E) log V) without reopenings; Space: O(V).
func Search(m *roadmap.Map, start, goal int, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	// 2) Validate map.
	if m == nil {
		return Result{}, ErrNilMap
	}

	// 3) Negative ids are bad input, not a broken contract.
	if start < 0 || goal < 0 {
		return Result{Status: StatusInvalidInput}, nil
	}

	// 4) Both endpoints must be known to the map.
	for _, id := range [2]int{start, goal} {
		if _, err = m.Coordinate(id); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrUnknownVertex, err)
		}
	}

	// 5) Trivial query.
	if start == goal {
		return Result{Status: StatusFound, Path: []int{start}}, nil
	}

	r := newRunner(m, goal, cfg)

	return r.run(start)
}

// runner holds the mutable state of a single search.
type runner struct {
	m        *roadmap.Map
	opts     Options
	goal     int
	goalXY   geom.Coordinate
	reg      *registry
	open     frontier
	expanded int
	reopened int
	log      logrus.FieldLogger
	trace    bool // debug logging enabled
}

func newRunner(m *roadmap.Map, goal int, cfg Options) *runner {
	goalXY, _ := m.Coordinate(goal)

	return &runner{
		m:      m,
		opts:   cfg,
		goal:   goal,
		goalXY: goalXY,
		reg:    newRegistry(m),
		log:    cfg.Logger.WithField("goal", goal),
		trace:  debugEnabled(cfg.Logger),
	}
}

// run seeds the frontier with start and drives the main loop until the
// goal is popped or the frontier is empty.
func (r *runner) run(start int) (Result, error) {
	startXY, _ := r.m.Coordinate(start)
	s := r.reg.get(start)
	s.g = 0
	s.h = r.opts.Heuristic(startXY, r.goalXY)
	s.f = s.h
	s.status = statusOpen
	r.open.insert(s)
	r.opts.OnPush(s.id, s.g, s.f)

	for r.open.Len() > 0 {
		// Cancellation and limits are only checked here, between whole
		// iterations, so no record is ever left half-relaxed.
		if err := r.opts.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("astar: search %d→%d interrupted: %w", start, r.goal, err)
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{}, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
		}

		cur := r.open.popMin()
		cur.status = statusClosed
		r.expanded++
		r.opts.OnExpand(cur.id, cur.g, cur.f)
		if r.trace {
			r.log.WithFields(logrus.Fields{"vertex": cur.id, "g": cur.g, "f": cur.f}).Debug("astar: expand")
		}

		if cur.id == r.goal {
			res := Result{
				Status:   StatusFound,
				Path:     r.reg.path(cur.id),
				Cost:     cur.g,
				Expanded: r.expanded,
				Reopened: r.reopened,
			}
			r.log.WithFields(logrus.Fields{
				"start": start, "cost": res.Cost, "hops": len(res.Path) - 1,
				"expanded": r.expanded, "reopened": r.reopened,
			}).Info("astar: path found")

			return res, nil
		}

		if err := r.relax(cur); err != nil {
			return Result{}, err
		}
	}

	r.log.WithFields(logrus.Fields{"start": start, "expanded": r.expanded}).Info("astar: no path")

	return Result{Status: StatusNoPath, Expanded: r.expanded, Reopened: r.reopened}, nil
}

// relax examines every road leaving cur and improves the records of its
// neighbors:
//
//   - Unseen: create the record and push it.
//   - Open:   if strictly cheaper, rewrite g/f/pred and decrease-key.
//   - Closed: if strictly cheaper, rewrite g/f/pred and reopen.
//
// Self-loops are skipped.
func (r *runner) relax(cur *searchNode) error {
	curXY, err := r.m.Coordinate(cur.id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBrokenMap, err)
	}

	var relaxErr error
	err = r.m.EachNeighbor(cur.id, func(id int) bool {
		if id == cur.id {
			return true
		}
		xy, err := r.m.Coordinate(id)
		if err != nil {
			relaxErr = fmt.Errorf("%w: road %d→%d: %w", ErrBrokenMap, cur.id, id, err)
			return false
		}
		cost := r.opts.Cost(curXY, xy)
		if cost < 0 || math.IsNaN(cost) {
			relaxErr = fmt.Errorf("%w: road %d→%d cost=%g", ErrNegativeCost, cur.id, id, cost)
			return false
		}
		tentative := cur.g + cost
		n := r.reg.get(id)

		switch n.status {
		case statusUnseen:
			n.g = tentative
			n.h = r.opts.Heuristic(xy, r.goalXY)
			n.f = n.g + n.h
			n.pred = cur.id
			n.status = statusOpen
			r.open.insert(n)
			r.opts.OnPush(n.id, n.g, n.f)

		case statusOpen:
			if tentative >= n.g {
				return true
			}
			n.g = tentative
			n.f = n.g + n.h
			n.pred = cur.id
			r.open.update(n)
			if r.trace {
				r.log.WithFields(logrus.Fields{"vertex": id, "g": n.g, "via": cur.id}).Debug("astar: decrease-key")
			}

		case statusClosed:
			if tentative >= n.g {
				return true
			}
			oldG := n.g
			n.g = tentative
			n.f = n.g + n.h
			n.pred = cur.id
			n.status = statusOpen
			r.open.insert(n)
			r.reopened++
			r.opts.OnReopen(n.id, oldG, n.g)
			r.opts.OnPush(n.id, n.g, n.f)
			if r.trace {
				r.log.WithFields(logrus.Fields{"vertex": id, "old_g": oldG, "g": n.g, "via": cur.id}).Debug("astar: reopen")
			}
		}

		return true
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBrokenMap, err)
	}

	return relaxErr
}

// debugEnabled reports whether l would emit debug entries, so the hot
// loop can skip building fields otherwise.
func debugEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
