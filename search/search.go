package search

import (
	"github.com/stoverp/advent2022/blueprint"
	"github.com/stoverp/advent2022/mineral"
)

// engine holds all search data for one MaxGeodes run. A dedicated engine
// struct (instead of closures over the driver loop) keeps hot-path state
// explicit and makes the per-run ownership of the caches obvious.
type engine struct {
	// Configuration / policy
	bp         *blueprint.Blueprint
	minutes    int
	useBounds  bool
	maxOreCost int
	onLevel    func(minute, frontier int)

	// Per-run memoization, never shared across runs
	ub *boundCache
	lb *boundCache

	// Incumbent: best confirmed geode count and the state whose
	// lower-bound evaluation produced it
	best      int
	bestFinal *State

	statesSearched int
}

// MaxGeodes runs the Branch-and-Bound search: the maximum number of
// geodes openable under bp within the given number of minutes, starting
// from no materials and a single ore robot.
//
// The call is deterministic for fixed inputs. Result.Final carries the
// best schedule's decision prefix (nil when the answer is zero).
//
// Errors: ErrNilBlueprint, ErrIncompleteBlueprint, ErrNegativeMinutes.
func MaxGeodes(bp *blueprint.Blueprint, minutes int, opts Options) (Result, error) {
	if bp == nil {
		return Result{}, ErrNilBlueprint
	}
	if !bp.Complete() {
		return Result{}, ErrIncompleteBlueprint
	}
	if minutes < 0 {
		return Result{}, ErrNegativeMinutes
	}

	e := engine{
		bp:         bp,
		minutes:    minutes,
		useBounds:  opts.Bounds != NoBounds,
		maxOreCost: bp.MaxOreCost(),
		onLevel:    opts.OnLevel,
		ub:         newBoundCache(),
		lb:         newBoundCache(),
	}
	e.run()

	return Result{Geodes: e.best, Final: e.bestFinal, Metrics: e.metrics()}, nil
}

// run drives the level-synchronized loop. Every state of minute t is
// pruned and bound-checked before any state of minute t+1 exists — the
// ordering is load-bearing: dominance compares whole sibling sets, and
// the upper-bound cut relies on the incumbent raised by siblings of the
// same level.
func (e *engine) run() {
	frontier := []*State{{Robots: mineral.Amounts{Ore: 1}}}
	for t := 0; t <= e.minutes; t++ {
		frontier = pruneDominated(frontier)
		if e.onLevel != nil {
			e.onLevel(t, len(frontier))
		}

		left := e.minutes - t
		next := make([]*State, 0, len(frontier))
		for _, s := range frontier {
			e.statesSearched++

			// The lower bound simulates the whole remaining horizon, so
			// the incumbent it raises is already a final answer candidate.
			if lb := e.cachedLower(s.Materials, s.Robots, left); lb > e.best {
				e.best = lb
				e.bestFinal = s
			}

			// The final frontier is never expanded; its states only get
			// the incumbent check above.
			if left == 0 {
				continue
			}

			if e.useBounds && e.cachedUpper(s.Materials, s.Robots, left) <= e.best {
				continue // cannot beat the incumbent even optimistically
			}

			next = e.expand(s, next)
		}
		frontier = next
	}
}

// expand appends s's minute-t+1 successors to next: the build-nothing
// successor first, then one successor per affordable robot kind in
// canonical order. Materials always accumulate by the parent's robots;
// a build pays its cost from the parent's materials and the new robot
// joins the count one minute later (it is part of the successor's
// Robots, which only produce from the following minute on).
func (e *engine) expand(s *State, next []*State) []*State {
	next = append(next, &State{
		Materials: s.Materials.Add(s.Robots),
		Robots:    s.Robots,
		parent:    s,
	})

	for _, kind := range mineral.Kinds {
		if kind == mineral.Ore && s.Robots.Ore >= e.maxOreCost {
			// Ore income already covers the priciest build every minute;
			// another ore robot can never help. Shortcut, not a
			// correctness requirement.
			continue
		}
		cost := e.bp.CostOf(kind)
		if !cost.AtMost(s.Materials) {
			continue
		}
		built := kind
		next = append(next, &State{
			Materials: s.Materials.Add(s.Robots).Sub(cost),
			Robots:    s.Robots.WithOneMore(kind),
			Built:     &built,
			parent:    s,
		})
	}

	return next
}

func (e *engine) metrics() Metrics {
	return Metrics{
		StatesSearched: e.statesSearched,
		UBReads:        e.ub.reads,
		UBHits:         e.ub.hits,
		LBReads:        e.lb.reads,
		LBHits:         e.lb.hits,
	}
}
