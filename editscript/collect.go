package editscript

import "github.com/mireth/seqalign/editgraph"

// Collector is an editgraph.Sink that appends each emitted edit to Edits in
// the order Align calls it: forward order along the optimal path. It is
// the editgraph.Sink used throughout this module's tests to check script
// validity and script cost against the value Align returns, and by
// cmd/editdiff to build hunks for display.
type Collector[A, B any, C editgraph.Cost] struct {
	Edits []Edit[A, B, C]
}

// NewCollector returns an empty Collector.
func NewCollector[A, B any, C editgraph.Cost]() *Collector[A, B, C] {
	return &Collector[A, B, C]{}
}

func (c *Collector[A, B, C]) Eql(a A, b B) {
	c.Edits = append(c.Edits, Edit[A, B, C]{Kind: Eql, A: &a, B: &b})
}

func (c *Collector[A, B, C]) Ins(b B, cost C) {
	c.Edits = append(c.Edits, Edit[A, B, C]{Kind: Ins, B: &b, Cost: cost})
}

func (c *Collector[A, B, C]) Del(a A, cost C) {
	c.Edits = append(c.Edits, Edit[A, B, C]{Kind: Del, A: &a, Cost: cost})
}

func (c *Collector[A, B, C]) Sub(a A, b B, cost C) {
	c.Edits = append(c.Edits, Edit[A, B, C]{Kind: Sub, A: &a, B: &b, Cost: cost})
}

// TotalCost sums the incremental cost of every recorded edit, for checking
// against the value Align returned.
func (c *Collector[A, B, C]) TotalCost() C {
	var total C
	for _, e := range c.Edits {
		total += e.Cost
	}
	return total
}
