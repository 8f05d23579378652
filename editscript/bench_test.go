package editscript_test

import (
	"math/rand"
	"testing"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/editscript"
	"github.com/mireth/seqalign/seqcost"
)

// BenchmarkCollector_Align measures the cost of collecting a full edit
// script via Align, as cmd/editdiff does for every diff it renders.
func BenchmarkCollector_Align(b *testing.B) {
	r := rand.New(rand.NewSource(13))
	alphabet := "abcdefghij"
	a := make([]rune, 300)
	for i := range a {
		a[i] = rune(alphabet[r.Intn(len(alphabet))])
	}
	c := append([]rune(nil), a...)
	for k := 0; k < 10; k++ {
		c[r.Intn(len(c))] = rune(alphabet[r.Intn(len(alphabet))])
	}
	policy := seqcost.Unit[rune]()
	cfg := editgraph.NewConfig(editgraph.WithSub())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink := editscript.NewCollector[rune, rune, int]()
		_, _ = editgraph.Align(a, c, sink, policy, cfg)
	}
}

// BenchmarkHunks measures grouping a long script's edits into hunks.
func BenchmarkHunks(b *testing.B) {
	r := rand.New(rand.NewSource(14))
	alphabet := "abcdefghij"
	a := make([]rune, 300)
	for i := range a {
		a[i] = rune(alphabet[r.Intn(len(alphabet))])
	}
	c := append([]rune(nil), a...)
	for k := 0; k < 10; k++ {
		c[r.Intn(len(c))] = rune(alphabet[r.Intn(len(alphabet))])
	}
	policy := seqcost.Unit[rune]()
	cfg := editgraph.NewConfig(editgraph.WithSub())
	sink := editscript.NewCollector[rune, rune, int]()
	_, _ = editgraph.Align(a, c, sink, policy, cfg)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = editscript.Hunks(sink.Edits, 3)
	}
}
