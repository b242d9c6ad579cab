package search

import (
	"github.com/stoverp/advent2022/blueprint"
	"github.com/stoverp/advent2022/mineral"
)

// UpperBound returns a provable maximum on geodes openable from
// (materials, robots) within minutesLeft minutes under blueprint bp.
//
// Relaxation: each minute, after production, at most one robot is
// granted for free — affordability is checked against the accumulated
// materials but the cost is never paid, most valuable kind first
// (mineral.ByValue). Since the relaxed factory can afford at least
// everything the real one can, the estimate never undercuts any feasible
// outcome: the bound is admissible.
//
// Pure function, O(minutesLeft); the engine memoizes calls per run.
// Precondition: materials and robots are non-negative (upheld by the
// driver's construction of states).
func UpperBound(bp *blueprint.Blueprint, materials, robots mineral.Amounts, minutesLeft int) int {
	for m := 0; m < minutesLeft; m++ {
		materials = materials.Add(robots)
		for _, kind := range mineral.ByValue {
			if bp.CostOf(kind).AtMost(materials) {
				robots = robots.WithOneMore(kind)
				break
			}
		}
	}

	return materials.Geode
}

// LowerBound returns the geodes opened by one concrete feasible policy:
// build a geode robot the minute its cost is affordable, paying in full,
// and otherwise just collect. Being a real schedule, the result can
// always be achieved — it never overstates, which makes it safe to raise
// the incumbent.
//
// Pure function, O(minutesLeft); the engine memoizes calls per run.
func LowerBound(bp *blueprint.Blueprint, materials, robots mineral.Amounts, minutesLeft int) int {
	geodeCost := bp.CostOf(mineral.Geode)
	for m := 0; m < minutesLeft; m++ {
		if geodeCost.AtMost(materials) {
			materials = materials.Sub(geodeCost).Add(robots)
			robots = robots.WithOneMore(mineral.Geode)
		} else {
			materials = materials.Add(robots)
		}
	}

	return materials.Geode
}

// boundKey identifies one bound computation. The remaining horizon is
// part of the key on purpose: the same (materials, robots) pair probed
// at two different horizons yields different estimates, and keying by
// the pair alone would only be safe through the implicit invariant that
// each pair is ever seen at a single level. The explicit triple removes
// that fragility.
type boundKey struct {
	materials   mineral.Amounts
	robots      mineral.Amounts
	minutesLeft int
}

// boundCache memoizes one estimator for a single search run. It is owned
// by exactly one engine and never shared: concurrent searches over
// different blueprints each build their own.
type boundCache struct {
	entries map[boundKey]int
	reads   int
	hits    int
}

func newBoundCache() *boundCache {
	return &boundCache{entries: make(map[boundKey]int)}
}

// get looks up k, counting the read and (on success) the hit.
func (c *boundCache) get(k boundKey) (int, bool) {
	c.reads++
	v, ok := c.entries[k]
	if ok {
		c.hits++
	}

	return v, ok
}

func (c *boundCache) put(k boundKey, v int) { c.entries[k] = v }

// cachedUpper memoizes UpperBound for this run.
func (e *engine) cachedUpper(materials, robots mineral.Amounts, minutesLeft int) int {
	key := boundKey{materials: materials, robots: robots, minutesLeft: minutesLeft}
	if v, ok := e.ub.get(key); ok {
		return v
	}
	v := UpperBound(e.bp, materials, robots, minutesLeft)
	e.ub.put(key, v)

	return v
}

// cachedLower memoizes LowerBound for this run.
func (e *engine) cachedLower(materials, robots mineral.Amounts, minutesLeft int) int {
	key := boundKey{materials: materials, robots: robots, minutesLeft: minutesLeft}
	if v, ok := e.lb.get(key); ok {
		return v
	}
	v := LowerBound(e.bp, materials, robots, minutesLeft)
	e.lb.put(key, v)

	return v
}
