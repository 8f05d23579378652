package seqcost_test

import (
	"fmt"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/seqcost"
)

// ExampleUnit computes classic Levenshtein distance.
func ExampleUnit() {
	dist, err := editgraph.Distance([]rune("kitten"), []rune("sitting"), seqcost.Unit[rune](), editgraph.NewConfig(editgraph.WithSub()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 3
}

// ExampleRuneClass treats whitespace as free to insert or delete, so two
// strings differing only in spacing compare equal.
func ExampleRuneClass() {
	a := []rune("a  b")
	b := []rune("a b")
	policy := seqcost.RuneClass(map[rune]int{' ': 0}, 1, 1)
	dist, err := editgraph.Distance(a, b, policy, editgraph.NewConfig(editgraph.WithSub()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 0
}

// ExampleUniformSub charges a higher cost for substitution than for an
// insert/delete pair, so the engine prefers the cheaper route.
func ExampleUniformSub() {
	policy := seqcost.UniformSub[rune, int](1, 1, 3)
	dist, err := editgraph.Distance([]rune("abc"), []rune("axc"), policy, editgraph.NewConfig(editgraph.WithSub()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 2
}
