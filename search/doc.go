// Package search implements the Branch-and-Bound engine for the
// robot-factory geode-maximization problem.
//
// Problem: a factory starts with one ore-collecting robot. Every minute
// each robot collects one unit of its resource, and at most one new
// robot may start building (paying its blueprint cost up front, ready
// one minute later). MaxGeodes answers: how many geodes can be opened
// within a fixed number of minutes?
//
// Algorithm outline (level-synchronized Branch-and-Bound):
//  1. The frontier of minute t holds every still-promising state after t
//     decisions. Each minute, dominance pruning first drops states that
//     a sibling beats componentwise in both materials and robots.
//  2. For each survivor, a feasible lower bound (build a geode robot
//     whenever affordable, otherwise collect) may raise the incumbent —
//     the best confirmed geode count so far.
//  3. An admissible upper bound (grant one free robot per minute, most
//     valuable kind first, never paying costs) discards states that
//     cannot beat the incumbent even optimistically.
//  4. Survivors expand into minute t+1: one build-nothing successor plus
//     one successor per affordable robot kind, skipping ore robots once
//     ore income already covers the priciest build.
//  5. Both bound estimators are memoized per run, keyed by the full
//     (materials, robots, minutesLeft) triple.
//
// The level-synchronized order is a hard requirement, not a convenience:
// dominance compares complete sibling sets, and the incumbent used by
// the upper-bound cut must reflect every state of the current minute.
//
// Complexity:
//   - Worst case exponential (up to 5 successors per state per minute);
//     practical speed comes from dominance + bound pruning, which keep
//     frontiers in the thousands for 24–32 minute horizons.
//   - Dominance is O(n²) per level over the frontier of size n.
//   - Bounds are O(minutesLeft) per cache miss.
//
// Governance:
//   - Options.Bounds: FullBounds (default) enables the upper-bound cut;
//     NoBounds disables it, leaving dominance as the only pruning —
//     results are identical, only the work differs (testing/benchmarks).
//
// Everything is deterministic: fixed blueprint and minutes always yield
// the same Result, regardless of Options.Workers.
package search
