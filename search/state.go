package search

import "github.com/stoverp/advent2022/mineral"

// State is one node of the search tree: the materials held and robots
// owned after some prefix of build decisions. States are immutable after
// construction and link backward to their predecessor, forming a tree
// rooted at the initial state (no materials, one ore robot). Links only
// point backward in time, so the structure is acyclic by construction;
// equal states reached along different histories stay distinct nodes
// until dominance pruning drops one.
type State struct {
	// Materials currently held. Never negative.
	Materials mineral.Amounts

	// Robots owned per kind — the production rate. Never negative.
	Robots mineral.Amounts

	// Built is the robot kind whose construction started on the
	// transition from the parent; nil for the root and for
	// build-nothing transitions.
	Built *mineral.Resource

	parent *State
}

// Parent returns the predecessor state, or nil for the root.
func (s *State) Parent() *State { return s.parent }

// Path returns the chain of states from the root to s, root first.
// It only walks parent links; nothing is mutated.
func (s *State) Path() []*State {
	var path []*State
	for cur := s; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	// reverse to get root → s
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
