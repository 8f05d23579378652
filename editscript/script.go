package editscript

import "github.com/mireth/seqalign/editgraph"

// Kind identifies the type of a single Edit.
type Kind uint8

const (
	// Eql marks a matched pair; A and B are both set and equal by the cost
	// policy's definition.
	Eql Kind = iota
	// Ins marks an inserted element from B; only B is set.
	Ins
	// Del marks a deleted element from A; only A is set.
	Del
	// Sub marks a substitution of A for B; both are set.
	Sub
)

// String returns a short lowercase name for k ("eql", "ins", "del" or
// "sub"), or "unknown" for any other value.
func (k Kind) String() string {
	switch k {
	case Eql:
		return "eql"
	case Ins:
		return "ins"
	case Del:
		return "del"
	case Sub:
		return "sub"
	default:
		return "unknown"
	}
}

// Edit is one event of an edit script: a single ins/del/sub/eql operation
// together with its incremental cost. A and B are nil unless Kind's
// definition calls for them (Eql and Sub set both; Ins sets only B; Del
// sets only A).
type Edit[A, B any, C editgraph.Cost] struct {
	Kind Kind
	A    *A
	B    *B
	Cost C
}
