package seqcost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/seqcost"
)

func TestUnit_KittenSitting(t *testing.T) {
	a := []rune("kitten")
	b := []rune("sitting")
	dist, err := editgraph.Distance(a, b, seqcost.Unit[rune](), editgraph.NewConfig(editgraph.WithSub()))
	require.NoError(t, err)
	require.Equal(t, 3, dist)
}

func TestUnit_Identity(t *testing.T) {
	a := []rune("abc")
	dist, err := editgraph.Distance(a, a, seqcost.Unit[rune](), editgraph.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 0, dist)
}

func TestWeighted_ExpensiveSub(t *testing.T) {
	a := []rune("abc")
	b := []rune("axc")
	policy := seqcost.UniformSub[rune, int](1, 1, 3)
	dist, err := editgraph.Distance(a, b, policy, editgraph.NewConfig(editgraph.WithSub()))
	require.NoError(t, err)
	require.Equal(t, 2, dist) // delete b, insert x — cheaper than a cost-3 substitution
}

func TestWeighted_ExpensiveIns(t *testing.T) {
	a := []rune("abc")
	b := []rune("abxc")
	policy := seqcost.Weighted[rune, rune, int](
		func(rune) int { return 2 },
		func(rune) int { return 1 },
		func(x, y rune) int {
			if x == y {
				return 0
			}
			return 1
		},
	)
	dist, err := editgraph.Distance(a, b, policy, editgraph.NewConfig(editgraph.WithSub()))
	require.NoError(t, err)
	require.Equal(t, 2, dist)
}

func TestRuneClass_WhitespaceIsFree(t *testing.T) {
	a := []rune(" so   many spaces     ")
	b := []rune("    so many   spaces ")
	policy := seqcost.RuneClass(map[rune]int{' ': 0}, 1, 1)
	dist, err := editgraph.Distance(a, b, policy, editgraph.NewConfig(editgraph.WithSub()))
	require.NoError(t, err)
	require.Equal(t, 0, dist)
}
