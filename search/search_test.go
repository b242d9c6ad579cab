package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoverp/advent2022/blueprint"
	"github.com/stoverp/advent2022/mineral"
	"github.com/stoverp/advent2022/search"
)

// TestMaxGeodes_Errors verifies the fail-fast contract.
func TestMaxGeodes_Errors(t *testing.T) {
	opts := search.DefaultOptions()

	_, err := search.MaxGeodes(nil, 24, opts)
	assert.ErrorIs(t, err, search.ErrNilBlueprint)

	_, err = search.MaxGeodes(&blueprint.Blueprint{}, 24, opts)
	assert.ErrorIs(t, err, search.ErrIncompleteBlueprint)

	_, err = search.MaxGeodes(blueprint1(t), -1, opts)
	assert.ErrorIs(t, err, search.ErrNegativeMinutes)
}

// TestMaxGeodes_ReferenceBlueprints pins the classic 24-minute answers.
func TestMaxGeodes_ReferenceBlueprints(t *testing.T) {
	opts := search.DefaultOptions()

	res1, err := search.MaxGeodes(blueprint1(t), 24, opts)
	require.NoError(t, err)
	assert.Equal(t, 9, res1.Geodes)
	assert.NotNil(t, res1.Final)

	res2, err := search.MaxGeodes(blueprint2(t), 24, opts)
	require.NoError(t, err)
	assert.Equal(t, 12, res2.Geodes)
	assert.NotNil(t, res2.Final)
}

// TestMaxGeodes_ZeroMinutes returns zero geodes and no schedule to trace.
func TestMaxGeodes_ZeroMinutes(t *testing.T) {
	res, err := search.MaxGeodes(blueprint1(t), 0, search.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Geodes)
	assert.Nil(t, res.Final, "no schedule beats zero geodes, nothing to trace")
}

// TestMaxGeodes_Deterministic repeats identical runs and compares.
func TestMaxGeodes_Deterministic(t *testing.T) {
	bp := blueprint1(t)
	opts := search.DefaultOptions()

	first, err := search.MaxGeodes(bp, 18, opts)
	require.NoError(t, err)
	for run := 0; run < 3; run++ {
		res, rerr := search.MaxGeodes(bp, 18, opts)
		require.NoError(t, rerr)
		assert.Equal(t, first.Geodes, res.Geodes, "run %d", run)
		assert.Equal(t, first.Metrics, res.Metrics, "run %d", run)
	}
}

// TestMaxGeodes_MonotonicInMinutes checks that one extra minute never
// hurts: the budget-b optimum is reachable within budget b+1 by waiting.
func TestMaxGeodes_MonotonicInMinutes(t *testing.T) {
	bp := blueprint1(t)
	opts := search.DefaultOptions()

	prev := 0
	for minutes := 0; minutes <= 16; minutes++ {
		res, err := search.MaxGeodes(bp, minutes, opts)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Geodes, prev, "minutes=%d", minutes)
		prev = res.Geodes
	}
}

// TestMaxGeodes_PolicyEquivalence checks that disabling the upper-bound
// cut changes the work, never the answer.
func TestMaxGeodes_PolicyEquivalence(t *testing.T) {
	bp := blueprint1(t)

	full := search.DefaultOptions()
	none := search.DefaultOptions()
	none.Bounds = search.NoBounds

	resFull, err := search.MaxGeodes(bp, 16, full)
	require.NoError(t, err)
	resNone, err := search.MaxGeodes(bp, 16, none)
	require.NoError(t, err)

	assert.Equal(t, resFull.Geodes, resNone.Geodes)
	assert.GreaterOrEqual(t, resNone.Metrics.StatesSearched, resFull.Metrics.StatesSearched,
		"dominance-only pruning must search at least as many states")
}

// TestMaxGeodes_Metrics checks that the diagnostic counters move.
func TestMaxGeodes_Metrics(t *testing.T) {
	res, err := search.MaxGeodes(blueprint1(t), 12, search.DefaultOptions())
	require.NoError(t, err)

	m := res.Metrics
	assert.Positive(t, m.StatesSearched)
	assert.Positive(t, m.UBReads)
	assert.Positive(t, m.LBReads)
	assert.GreaterOrEqual(t, m.UBReads, m.UBHits)
	assert.GreaterOrEqual(t, m.LBReads, m.LBHits)
	// Every surviving state reads the lower bound exactly once.
	assert.Equal(t, m.StatesSearched, m.LBReads)
}

// TestMaxGeodes_OnLevelHook checks hook cadence: once per minute,
// including minute 0 and the terminal minute, in order. Late frontiers
// may legitimately be empty once the incumbent cut discards everything;
// only the root level is guaranteed non-empty.
func TestMaxGeodes_OnLevelHook(t *testing.T) {
	const minutes = 10

	var minutesSeen []int
	var frontiers []int
	opts := search.DefaultOptions()
	opts.OnLevel = func(minute, frontier int) {
		minutesSeen = append(minutesSeen, minute)
		frontiers = append(frontiers, frontier)
	}

	_, err := search.MaxGeodes(blueprint1(t), minutes, opts)
	require.NoError(t, err)

	require.Len(t, minutesSeen, minutes+1)
	for i, minute := range minutesSeen {
		assert.Equal(t, i, minute)
	}
	assert.Equal(t, 1, frontiers[0], "the root level holds exactly the initial state")
}

// TestMaxGeodes_FinalPath checks the parent-chain invariant on the
// winning state: the path starts at the root and each hop's materials
// follow from its parent's robots and the recorded build.
func TestMaxGeodes_FinalPath(t *testing.T) {
	bp := blueprint1(t)
	res, err := search.MaxGeodes(bp, 24, search.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.Final)

	path := res.Final.Path()
	require.NotEmpty(t, path)

	root := path[0]
	assert.Nil(t, root.Parent())
	assert.True(t, root.Materials.IsZero())
	assert.Equal(t, mineral.Amounts{Ore: 1}, root.Robots)
	assert.Nil(t, root.Built)

	for i := 1; i < len(path); i++ {
		parent, s := path[i-1], path[i]
		assert.Same(t, parent, s.Parent(), "hop %d", i)

		want := parent.Materials.Add(parent.Robots)
		wantRobots := parent.Robots
		if s.Built != nil {
			want = want.Sub(bp.CostOf(*s.Built))
			wantRobots = wantRobots.WithOneMore(*s.Built)
		}
		assert.Equal(t, want, s.Materials, "hop %d materials", i)
		assert.Equal(t, wantRobots, s.Robots, "hop %d robots", i)
		assert.True(t, (mineral.Amounts{}).AtMost(s.Materials), "hop %d materials non-negative", i)
	}
}
