package seqcost_test

import (
	"math/rand"
	"testing"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/seqcost"
)

// BenchmarkUnit_EnglishLikeText measures Distance under the Unit policy on
// two moderately long strings differing by a handful of characters.
func BenchmarkUnit_EnglishLikeText(b *testing.B) {
	r := rand.New(rand.NewSource(11))
	alphabet := "abcdefghijklmnopqrstuvwxyz "
	a := make([]rune, 500)
	for i := range a {
		a[i] = rune(alphabet[r.Intn(len(alphabet))])
	}
	c := append([]rune(nil), a...)
	for k := 0; k < 15; k++ {
		c[r.Intn(len(c))] = rune(alphabet[r.Intn(len(alphabet))])
	}
	policy := seqcost.Unit[rune]()
	cfg := editgraph.NewConfig(editgraph.WithSub())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = editgraph.Distance(a, c, policy, cfg)
	}
}

// BenchmarkRuneClass_WhitespaceFree measures Distance under a RuneClass
// policy that treats whitespace as free, on text with irregular spacing.
func BenchmarkRuneClass_WhitespaceFree(b *testing.B) {
	a := []rune(" the   quick brown   fox  jumps over the lazy dog   ")
	c := []rune("the quick brown fox jumps over the lazy dog")
	policy := seqcost.RuneClass(map[rune]int{' ': 0}, 1, 1)
	cfg := editgraph.NewConfig(editgraph.WithSub())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = editgraph.Distance(a, c, policy, cfg)
	}
}
