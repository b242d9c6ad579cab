// Package advent2022 is a small library of puzzle solvers built around
// one algorithmic core: a Branch-and-Bound search engine for the
// robot-factory geode-maximization problem.
//
// 🚀 What is in here?
//
//	A deterministic, dependency-light toolkit:
//		• mineral/   — resource kinds & fixed four-component quantity vectors
//		• blueprint/ — robot cost tables: puzzle-text parsing + YAML catalogs
//		• search/    — the Branch-and-Bound core: admissible upper bounds,
//		               feasible lower bounds, memoization, dominance pruning,
//		               level-synchronized frontier expansion
//		• trace/     — parent-chain path reconstruction & minute-by-minute
//		               narration of the best-found schedule
//		• crates/    — the supply-stack rearrangement simulation (an
//		               independent sibling puzzle, no shared logic)
//
// ✨ Design principles
//
//   - Deterministic — identical inputs always yield identical results
//   - Strict sentinels — malformed input fails fast with typed errors
//   - Value types everywhere — vectors and cache keys are comparable structs
//   - Pure library — no binaries, no global state, caches scoped per run
//
// Quick taste:
//
//	bps, _ := blueprint.Parse(strings.NewReader(input))
//	res, _ := search.MaxGeodes(bps[0], 24, search.DefaultOptions())
//	fmt.Println(res.Geodes)
//
// Dive into the per-package docs for algorithm outlines, complexity notes
// and the pruning theory behind the search engine.
package advent2022
