package crates_test

import (
	"fmt"
	"strings"

	"github.com/stoverp/advent2022/crates"
)

// ExampleYard_TopCrates runs the classic rearrangement scenario.
func ExampleYard_TopCrates() {
	input := `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`
	yard, moves, err := crates.Parse(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range moves {
		if err := yard.Apply(m); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println(yard.TopCrates())
	// Output:
	// CMZ
}
