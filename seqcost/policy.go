package seqcost

import "github.com/mireth/seqalign/editgraph"

// unitPolicy implements classic Levenshtein edit distance: every insertion
// and deletion costs 1, and substitution costs 0 for equal elements, 1
// otherwise.
type unitPolicy[E comparable] struct{}

func (unitPolicy[E]) InsCost(E) int { return 1 }
func (unitPolicy[E]) DelCost(E) int { return 1 }
func (unitPolicy[E]) SubCost(a, b E) int {
	if a == b {
		return 0
	}
	return 1
}

// Unit returns a CostPolicy charging 1 for every insertion, deletion, and
// mismatched substitution, and 0 for a match — the classic Levenshtein
// distance cost model.
func Unit[E comparable]() editgraph.CostPolicy[E, E, int] {
	return unitPolicy[E]{}
}

// weightedPolicy wraps three caller-supplied cost functions.
type weightedPolicy[A, B any, C editgraph.Cost] struct {
	ins func(B) C
	del func(A) C
	sub func(A, B) C
}

func (p weightedPolicy[A, B, C]) InsCost(b B) C    { return p.ins(b) }
func (p weightedPolicy[A, B, C]) DelCost(a A) C    { return p.del(a) }
func (p weightedPolicy[A, B, C]) SubCost(a A, b B) C { return p.sub(a, b) }

// Weighted builds a CostPolicy from three plain functions, for scenarios
// where insertion, deletion, and substitution carry different costs.
func Weighted[A, B any, C editgraph.Cost](ins func(B) C, del func(A) C, sub func(A, B) C) editgraph.CostPolicy[A, B, C] {
	return weightedPolicy[A, B, C]{ins: ins, del: del, sub: sub}
}

// UniformSub returns a Weighted policy with constant insertion and deletion
// costs and a substitution cost that is 0 for equal elements and subCost
// otherwise.
func UniformSub[E comparable, C editgraph.Cost](insCost, delCost, subCost C) editgraph.CostPolicy[E, E, C] {
	var zero C
	return Weighted[E, E, C](
		func(E) C { return insCost },
		func(E) C { return delCost },
		func(a, b E) C {
			if a == b {
				return zero
			}
			return subCost
		},
	)
}

// RuneClass returns a CostPolicy over runes where the cost of inserting or
// deleting a rune r is classCost[r] if present, otherwise defaultInsDel;
// substitution is 0 for equal runes and defaultSub otherwise. Useful for
// modeling classes of characters (e.g. whitespace) that should be free or
// cheap to insert or delete relative to everything else.
func RuneClass(classCost map[rune]int, defaultInsDel, defaultSub int) editgraph.CostPolicy[rune, rune, int] {
	costOf := func(r rune) int {
		if c, ok := classCost[r]; ok {
			return c
		}
		return defaultInsDel
	}
	return Weighted[rune, rune, int](
		costOf,
		costOf,
		func(a, b rune) int {
			if a == b {
				return 0
			}
			return defaultSub
		},
	)
}
