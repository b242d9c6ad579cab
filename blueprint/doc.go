// Package blueprint holds robot build-cost tables and their loaders.
//
// A Blueprint maps each of the four robot kinds to the mineral.Amounts
// required to start building that robot. Blueprints are immutable once
// constructed; New validates completeness (every kind priced) and
// non-negativity up front, so the search engine can treat a *Blueprint
// obtained from this package as well-formed by construction.
//
// Two input formats are supported:
//
//   - Parse reads the classic puzzle text, one blueprint per line:
//     "Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs ..."
//
//   - LoadYAML reads a hand-maintained catalog file:
//
//	blueprints:
//	  - id: 1
//	    ore:      {ore: 4}
//	    clay:     {ore: 2}
//	    obsidian: {ore: 3, clay: 14}
//	    geode:    {ore: 2, obsidian: 7}
//
// Malformed input fails fast with the package sentinels; no partially
// parsed blueprint is ever returned.
package blueprint
