package mineral_test

import (
	"fmt"

	"github.com/stoverp/advent2022/mineral"
)

// ExampleAmounts_AtMost demonstrates the componentwise partial order:
// affordability is "every component at most", and incomparable vectors
// fail in both directions.
func ExampleAmounts_AtMost() {
	cost := mineral.Amounts{Ore: 3, Clay: 14}
	rich := mineral.Amounts{Ore: 5, Clay: 20, Obsidian: 1}
	lopsided := mineral.Amounts{Ore: 9}

	fmt.Println(cost.AtMost(rich))
	fmt.Println(cost.AtMost(lopsided))
	fmt.Println(lopsided.AtMost(cost))
	// Output:
	// true
	// false
	// false
}

// ExampleAmounts_String shows the cost-phrase rendering used in
// blueprint descriptions.
func ExampleAmounts_String() {
	fmt.Println(mineral.Amounts{Ore: 2, Obsidian: 7})
	fmt.Println(mineral.Amounts{})
	// Output:
	// 2 ore and 7 obsidian
	// nothing
}
