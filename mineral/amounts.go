package mineral

import (
	"fmt"
	"strings"
)

// Amounts is a fixed four-component integer vector over the mineral
// kinds. It is an immutable value type: every operation returns a new
// vector and == compares componentwise, so Amounts values serve directly
// as cache and dominance keys.
//
// Vectors that represent held materials or robot counts are always
// non-negative; negative components may appear only transiently inside
// bound estimators (see the search package).
type Amounts struct {
	Ore      int
	Clay     int
	Obsidian int
	Geode    int
}

// Add returns the componentwise sum a+b.
func (a Amounts) Add(b Amounts) Amounts {
	return Amounts{
		Ore:      a.Ore + b.Ore,
		Clay:     a.Clay + b.Clay,
		Obsidian: a.Obsidian + b.Obsidian,
		Geode:    a.Geode + b.Geode,
	}
}

// Sub returns the componentwise difference a-b. Callers that persist the
// result must guard affordability with b.AtMost(a) first.
func (a Amounts) Sub(b Amounts) Amounts {
	return Amounts{
		Ore:      a.Ore - b.Ore,
		Clay:     a.Clay - b.Clay,
		Obsidian: a.Obsidian - b.Obsidian,
		Geode:    a.Geode - b.Geode,
	}
}

// Scale returns a with every component multiplied by k.
func (a Amounts) Scale(k int) Amounts {
	return Amounts{
		Ore:      a.Ore * k,
		Clay:     a.Clay * k,
		Obsidian: a.Obsidian * k,
		Geode:    a.Geode * k,
	}
}

// AtMost reports whether every component of a is ≤ the corresponding
// component of b. This is a partial order: when two vectors are
// incomparable, AtMost is false in both directions.
func (a Amounts) AtMost(b Amounts) bool {
	return a.Ore <= b.Ore && a.Clay <= b.Clay && a.Obsidian <= b.Obsidian && a.Geode <= b.Geode
}

// Of returns the component for kind r (0 for an invalid kind).
func (a Amounts) Of(r Resource) int {
	switch r {
	case Ore:
		return a.Ore
	case Clay:
		return a.Clay
	case Obsidian:
		return a.Obsidian
	case Geode:
		return a.Geode
	}

	return 0
}

// WithOneMore returns a copy of a with one more unit of kind r.
// It is how a freshly built robot joins a robot-count vector.
func (a Amounts) WithOneMore(r Resource) Amounts {
	switch r {
	case Ore:
		a.Ore++
	case Clay:
		a.Clay++
	case Obsidian:
		a.Obsidian++
	case Geode:
		a.Geode++
	}

	return a
}

// IsZero reports whether every component is zero.
func (a Amounts) IsZero() bool { return a == (Amounts{}) }

// String formats the non-zero components as a cost phrase in canonical
// kind order, e.g. "3 ore and 14 clay". The zero vector renders as
// "nothing".
func (a Amounts) String() string {
	parts := make([]string, 0, len(Kinds))
	for _, r := range Kinds {
		if n := a.Of(r); n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, r))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}

	return strings.Join(parts, " and ")
}
