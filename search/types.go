package search

import "errors"

// Sentinel errors for search invocation. Violating any of these is a
// caller bug; the engine fails fast instead of returning a wrong answer.
var (
	// ErrNilBlueprint is returned when MaxGeodes receives a nil blueprint.
	ErrNilBlueprint = errors.New("search: nil blueprint")

	// ErrIncompleteBlueprint is returned when the blueprint does not price
	// all four robot kinds (only possible for zero-value blueprints that
	// bypassed blueprint.New).
	ErrIncompleteBlueprint = errors.New("search: blueprint is missing a robot kind")

	// ErrNegativeMinutes is returned for a negative time budget.
	ErrNegativeMinutes = errors.New("search: minutes must be non-negative")
)

// BoundPolicy selects how aggressively the driver prunes.
//
//   - FullBounds — upper-bound cut enabled (default).
//   - NoBounds   — dominance pruning only; the lower bound still runs,
//     since the incumbent it maintains is the answer itself. Exists for
//     testing and benchmarking: results match FullBounds exactly.
type BoundPolicy int

const (
	// FullBounds enables the admissible upper-bound cut.
	FullBounds BoundPolicy = iota

	// NoBounds disables the upper-bound cut (testing/benchmarking only).
	NoBounds
)

// Options configures a search run. The zero value equals DefaultOptions().
type Options struct {
	// Bounds selects the pruning policy; see BoundPolicy.
	Bounds BoundPolicy

	// OnLevel, if non-nil, is invoked once per minute with the minute
	// index and the frontier size after dominance pruning. Diagnostic
	// hook only; it must not retain or mutate search state.
	OnLevel func(minute, frontier int)

	// Workers caps concurrent per-blueprint searches in the aggregate
	// helpers (QualityLevelSum, GeodeProduct). Values ≤ 1 mean serial.
	// A single MaxGeodes call is always one goroutine.
	Workers int
}

// DefaultOptions returns the canonical configuration: full bounds,
// no hooks, serial aggregates.
func DefaultOptions() Options {
	return Options{Bounds: FullBounds}
}

// Metrics carries the diagnostic counters of one search run.
// Informational only — no behavioral contract.
type Metrics struct {
	// StatesSearched counts states that survived dominance pruning and
	// were bound-checked.
	StatesSearched int

	// UBReads / UBHits count upper-bound cache lookups and hits.
	UBReads int
	UBHits  int

	// LBReads / LBHits count lower-bound cache lookups and hits.
	LBReads int
	LBHits  int
}

// Result is the outcome of one MaxGeodes run.
type Result struct {
	// Geodes is the maximum geode count achievable within the budget.
	Geodes int

	// Final is the state whose lower-bound evaluation confirmed Geodes;
	// its parent chain is the decision prefix of the best schedule
	// (the trace package renders it). Nil when no schedule opens any
	// geodes — there is nothing to trace then.
	Final *State

	// Metrics holds the run's diagnostic counters.
	Metrics Metrics
}
