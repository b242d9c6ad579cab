package blueprint

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/stoverp/advent2022/mineral"
)

// yamlCost mirrors one cost vector in a catalog file. Omitted kinds are
// zero, matching mineral.Amounts semantics.
type yamlCost struct {
	Ore      int `yaml:"ore"`
	Clay     int `yaml:"clay"`
	Obsidian int `yaml:"obsidian"`
	Geode    int `yaml:"geode"`
}

func (c yamlCost) amounts() mineral.Amounts {
	return mineral.Amounts{Ore: c.Ore, Clay: c.Clay, Obsidian: c.Obsidian, Geode: c.Geode}
}

// yamlBlueprint mirrors one catalog entry. All four robot kinds must be
// present as keys; an absent key would read as a free robot, so presence
// is enforced via pointers.
type yamlBlueprint struct {
	ID       int       `yaml:"id"`
	Ore      *yamlCost `yaml:"ore"`
	Clay     *yamlCost `yaml:"clay"`
	Obsidian *yamlCost `yaml:"obsidian"`
	Geode    *yamlCost `yaml:"geode"`
}

// yamlCatalog is the top-level catalog document.
type yamlCatalog struct {
	Blueprints []yamlBlueprint `yaml:"blueprints"`
}

// LoadYAML decodes a blueprint catalog document.
//
// Errors: yaml decode errors as-is, ErrIncompleteBlueprint when an entry
// omits a robot kind, plus the New validation sentinels.
func LoadYAML(data []byte) ([]*Blueprint, error) {
	var catalog yamlCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("blueprint: decoding catalog: %w", err)
	}

	blueprints := make([]*Blueprint, 0, len(catalog.Blueprints))
	for _, entry := range catalog.Blueprints {
		costs := make(map[mineral.Resource]mineral.Amounts, len(mineral.Kinds))
		for kind, c := range map[mineral.Resource]*yamlCost{
			mineral.Ore:      entry.Ore,
			mineral.Clay:     entry.Clay,
			mineral.Obsidian: entry.Obsidian,
			mineral.Geode:    entry.Geode,
		} {
			if c == nil {
				return nil, fmt.Errorf("%w: blueprint %d lacks %s", ErrIncompleteBlueprint, entry.ID, kind)
			}
			costs[kind] = c.amounts()
		}
		bp, err := New(entry.ID, costs)
		if err != nil {
			return nil, err
		}
		blueprints = append(blueprints, bp)
	}

	return blueprints, nil
}
