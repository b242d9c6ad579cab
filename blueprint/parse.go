package blueprint

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/stoverp/advent2022/mineral"
)

// Puzzle-text grammar. One blueprint per line:
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore.
//	Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs
//	2 ore and 7 obsidian.
var (
	headerRe = regexp.MustCompile(`^Blueprint (\d+):`)
	robotRe  = regexp.MustCompile(`Each (\w+) robot costs ([^.]+)\.`)
)

// Parse reads puzzle text, one blueprint per non-blank line, and returns
// the blueprints in input order.
//
// Errors: ErrMalformedLine for lines outside the grammar (wrapped with
// the offending line), ErrUnknownResource for kinds outside the fixed
// four, plus the New validation sentinels.
func Parse(r io.Reader) ([]*Blueprint, error) {
	var blueprints []*Blueprint
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		bp, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		blueprints = append(blueprints, bp)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return blueprints, nil
}

// parseLine decodes a single blueprint line.
func parseLine(line string) (*Blueprint, error) {
	header := headerRe.FindStringSubmatch(line)
	if header == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	id, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	robots := robotRe.FindAllStringSubmatch(line, -1)
	if len(robots) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	costs := make(map[mineral.Resource]mineral.Amounts, len(mineral.Kinds))
	for _, m := range robots {
		kind, ok := mineral.ParseResource(m[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownResource, m[1])
		}
		cost, cerr := parseCost(m[2])
		if cerr != nil {
			return nil, cerr
		}
		costs[kind] = cost
	}

	return New(id, costs)
}

// parseCost decodes a cost phrase such as "3 ore and 14 clay".
func parseCost(phrase string) (mineral.Amounts, error) {
	var cost mineral.Amounts
	for _, part := range strings.Split(phrase, " and ") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return mineral.Amounts{}, fmt.Errorf("%w: cost %q", ErrMalformedLine, part)
		}
		amount, err := strconv.Atoi(fields[0])
		if err != nil {
			return mineral.Amounts{}, fmt.Errorf("%w: cost %q", ErrMalformedLine, part)
		}
		kind, ok := mineral.ParseResource(fields[1])
		if !ok {
			return mineral.Amounts{}, fmt.Errorf("%w: %q", ErrUnknownResource, fields[1])
		}
		cost = cost.Add(mineral.Amounts{}.WithOneMore(kind).Scale(amount))
	}

	return cost, nil
}
