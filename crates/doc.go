// Package crates simulates the supply-stack rearrangement puzzle.
//
// Input is a drawing of lettered crates stacked in numbered columns,
// followed by a list of "move N from A to B" instructions:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//	move 3 from 1 to 3
//
// Moves relocate one crate at a time, so moving several crates reverses
// their order. TopCrates reads the answer: the top crate of every stack,
// left to right.
//
// This package shares no logic with the search engine; it lives here as
// an independent sibling puzzle.
package crates
