package mineral

// Resource identifies one of the four mineral kinds a robot can collect.
type Resource int

const (
	Ore Resource = iota
	Clay
	Obsidian
	Geode
)

// Kinds lists every resource in canonical (cheapest-first) order.
// Successor generation iterates kinds in this order, which keeps frontier
// insertion order — and therefore the whole search — deterministic.
var Kinds = [4]Resource{Ore, Clay, Obsidian, Geode}

// ByValue lists every resource from most valuable to least:
// geode > obsidian > clay > ore. The upper-bound relaxation consumes this
// order for its one-free-robot-per-minute greedy rule.
var ByValue = [4]Resource{Geode, Obsidian, Clay, Ore}

var resourceNames = [4]string{"ore", "clay", "obsidian", "geode"}

// String returns the lowercase kind name ("ore", "clay", ...).
func (r Resource) String() string {
	if !r.Valid() {
		return "unknown"
	}

	return resourceNames[r]
}

// Valid reports whether r is one of the four defined kinds.
func (r Resource) Valid() bool { return r >= Ore && r <= Geode }

// ParseResource maps a lowercase kind name to its Resource.
// The second return is false for anything that is not one of the four names.
func ParseResource(name string) (Resource, bool) {
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), true
		}
	}

	return 0, false
}
