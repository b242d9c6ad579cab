package search

import (
	"sync"

	"github.com/stoverp/advent2022/blueprint"
)

// QualityLevelSum evaluates every blueprint over the same time budget
// and returns Σ id·geodes — each blueprint's quality level summed, the
// part-one aggregate of the original puzzle.
func QualityLevelSum(bps []*blueprint.Blueprint, minutes int, opts Options) (int, error) {
	results, err := searchAll(bps, minutes, opts)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, res := range results {
		total += bps[i].ID * res.Geodes
	}

	return total, nil
}

// GeodeProduct evaluates the first n blueprints (input order) and
// returns the product of their geode counts — the part-two aggregate.
// n larger than the slice clamps to its length.
func GeodeProduct(bps []*blueprint.Blueprint, n, minutes int, opts Options) (int, error) {
	if n > len(bps) {
		n = len(bps)
	}
	if n < 0 {
		n = 0
	}
	results, err := searchAll(bps[:n], minutes, opts)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, res := range results {
		product *= res.Geodes
	}

	return product, nil
}

// searchAll runs one independent search per blueprint. Each search owns
// its bound caches and frontier, so blueprints fan out cleanly: with
// opts.Workers > 1 up to that many searches run concurrently. Results
// keep input order either way, and every run is deterministic, so the
// fan-out never changes an answer.
func searchAll(bps []*blueprint.Blueprint, minutes int, opts Options) ([]Result, error) {
	results := make([]Result, len(bps))

	if opts.Workers <= 1 || len(bps) <= 1 {
		for i, bp := range bps {
			res, err := MaxGeodes(bp, minutes, opts)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}

		return results, nil
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, len(bps))
		sem  = make(chan struct{}, opts.Workers)
	)
	for i, bp := range bps {
		wg.Add(1)
		go func(i int, bp *blueprint.Blueprint) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = MaxGeodes(bp, minutes, opts)
		}(i, bp)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
