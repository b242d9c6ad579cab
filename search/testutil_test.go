package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stoverp/advent2022/blueprint"
	"github.com/stoverp/advent2022/mineral"
)

// blueprint1 builds the classic reference blueprint 1:
// ore 4o | clay 2o | obsidian 3o+14c | geode 2o+7ob. Optimum: 9 @ 24 min.
func blueprint1(t *testing.T) *blueprint.Blueprint {
	t.Helper()
	bp, err := blueprint.New(1, map[mineral.Resource]mineral.Amounts{
		mineral.Ore:      {Ore: 4},
		mineral.Clay:     {Ore: 2},
		mineral.Obsidian: {Ore: 3, Clay: 14},
		mineral.Geode:    {Ore: 2, Obsidian: 7},
	})
	require.NoError(t, err)

	return bp
}

// blueprint2 builds the classic reference blueprint 2:
// ore 2o | clay 3o | obsidian 3o+8c | geode 3o+12ob. Optimum: 12 @ 24 min.
func blueprint2(t *testing.T) *blueprint.Blueprint {
	t.Helper()
	bp, err := blueprint.New(2, map[mineral.Resource]mineral.Amounts{
		mineral.Ore:      {Ore: 2},
		mineral.Clay:     {Ore: 3},
		mineral.Obsidian: {Ore: 3, Clay: 8},
		mineral.Geode:    {Ore: 3, Obsidian: 12},
	})
	require.NoError(t, err)

	return bp
}
