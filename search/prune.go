package search

// pruneDominated returns the states of one level that no sibling
// strictly dominates. A state s is dominated by s' when the two differ
// in at least one component yet s' holds at least as much of every
// material and every robot kind — anything s can still achieve, s' can
// achieve too, so s need not be explored.
//
// The comparison is all-pairs O(n²) over a single level; dominance is
// only meaningful between states at the same minute. Equal twins (same
// materials and robots reached along different histories) never
// dominate each other, so a non-empty input always keeps at least one
// survivor: a maximal element of a finite partial order is never
// dominated.
func pruneDominated(states []*State) []*State {
	good := make([]*State, 0, len(states))
	for _, s := range states {
		dominated := false
		for _, other := range states {
			if s.Materials == other.Materials && s.Robots == other.Robots {
				continue
			}
			if s.Materials.AtMost(other.Materials) && s.Robots.AtMost(other.Robots) {
				dominated = true
				break
			}
		}
		if !dominated {
			good = append(good, s)
		}
	}

	return good
}
