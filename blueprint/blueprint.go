package blueprint

import (
	"errors"
	"fmt"
	"io"

	"github.com/stoverp/advent2022/mineral"
)

// Sentinel errors for blueprint construction and loading.
var (
	// ErrIncompleteBlueprint is returned when a robot kind has no cost entry.
	ErrIncompleteBlueprint = errors.New("blueprint: missing robot kind")

	// ErrNegativeCost is returned when a cost vector has a negative component.
	ErrNegativeCost = errors.New("blueprint: negative cost component")

	// ErrUnknownResource is returned for a robot or cost kind outside the
	// fixed four.
	ErrUnknownResource = errors.New("blueprint: unknown resource kind")

	// ErrMalformedLine is returned when a puzzle-text line does not match
	// the blueprint grammar.
	ErrMalformedLine = errors.New("blueprint: malformed input line")
)

// Blueprint is an immutable table of robot build costs, one per kind.
// The zero value is not usable; construct via New, Parse or LoadYAML.
type Blueprint struct {
	// ID is the blueprint's puzzle identifier (1-based in puzzle inputs).
	ID int

	costs   [len(mineral.Kinds)]mineral.Amounts
	defined [len(mineral.Kinds)]bool
}

// New builds a validated Blueprint from a kind→cost table.
// Every one of the four kinds must be present (ErrIncompleteBlueprint),
// keys must be valid kinds (ErrUnknownResource) and costs non-negative
// (ErrNegativeCost).
func New(id int, costs map[mineral.Resource]mineral.Amounts) (*Blueprint, error) {
	b := &Blueprint{ID: id}
	for kind, cost := range costs {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: robot kind %d", ErrUnknownResource, int(kind))
		}
		if !(mineral.Amounts{}).AtMost(cost) {
			return nil, fmt.Errorf("%w: %s robot costs %v", ErrNegativeCost, kind, cost)
		}
		b.costs[kind] = cost
		b.defined[kind] = true
	}
	for _, kind := range mineral.Kinds {
		if !b.defined[kind] {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteBlueprint, kind)
		}
	}

	return b, nil
}

// CostOf returns the build cost of the given robot kind.
// Invalid kinds return the zero vector; complete blueprints (the only
// kind this package hands out) price all four.
func (b *Blueprint) CostOf(kind mineral.Resource) mineral.Amounts {
	if !kind.Valid() {
		return mineral.Amounts{}
	}

	return b.costs[kind]
}

// Complete reports whether every robot kind has a cost entry.
// It is false only for zero-value Blueprints that bypassed New.
func (b *Blueprint) Complete() bool {
	for _, kind := range mineral.Kinds {
		if !b.defined[kind] {
			return false
		}
	}

	return true
}

// MaxOreCost returns the largest ore component across all robot costs.
// Once ore income reaches this value, building further ore robots is
// provably useless; the search driver uses it as a pruning shortcut.
func (b *Blueprint) MaxOreCost() int {
	maxOre := 0
	for _, kind := range mineral.Kinds {
		if ore := b.costs[kind].Ore; ore > maxOre {
			maxOre = ore
		}
	}

	return maxOre
}

// Describe writes a human-readable rendering of the blueprint.
func (b *Blueprint) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "*** Blueprint %d ***\n", b.ID); err != nil {
		return err
	}
	for _, kind := range mineral.Kinds {
		if _, err := fmt.Fprintf(w, "  Each %s robot costs %s.\n", kind, b.costs[kind]); err != nil {
			return err
		}
	}

	return nil
}
