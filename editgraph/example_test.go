package editgraph_test

import (
	"fmt"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/editscript"
	"github.com/mireth/seqalign/seqcost"
)

// ExampleDistance computes the Levenshtein distance between two words.
func ExampleDistance() {
	dist, err := editgraph.Distance(
		[]rune("kitten"),
		[]rune("sitting"),
		seqcost.Unit[rune](),
		editgraph.NewConfig(editgraph.WithSub()),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 3
}

// ExampleAlign collects a full edit script and renders it as a sequence
// of markers, one per edit.
func ExampleAlign() {
	c := editscript.NewCollector[rune, rune, int]()
	_, err := editgraph.Align(
		[]rune("ab"),
		[]rune("ac"),
		c,
		seqcost.Unit[rune](),
		editgraph.NewConfig(editgraph.WithSub()),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range c.Edits {
		fmt.Print(e.Kind.String())
	}
	fmt.Println()
	// Output: eqlsub
}

// ExampleWithEditBeam restricts the search to a band around the main
// diagonal, trading completeness for speed on long near-identical inputs.
func ExampleWithEditBeam() {
	a := []rune("the quick brown fox jumps over the lazy dog")
	b := []rune("the quick brown fox leaps over the lazy dog")
	dist, err := editgraph.Distance(a, b, seqcost.Unit[rune](), editgraph.NewConfig(
		editgraph.WithSub(),
		editgraph.WithEditBeam(2),
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: 3
}
