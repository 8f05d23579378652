package editscript

import "github.com/mireth/seqalign/editgraph"

// Apply replays script and returns the reconstructed B sequence. For a
// script produced by Align(a, b, ...), Apply(script) reproduces b exactly.
//
// Apply does not validate that script's A-side elements match a at the
// positions implied by Del/Sub/Eql edits; it trusts the script, consistent
// with the Sink contract's "no return value is consulted".
func Apply[A, B any, C editgraph.Cost](script []Edit[A, B, C]) []B {
	out := make([]B, 0, len(script))
	for _, e := range script {
		switch e.Kind {
		case Eql:
			out = append(out, *e.B)
		case Ins:
			out = append(out, *e.B)
		case Sub:
			out = append(out, *e.B)
		case Del:
			// consumes an A element, produces nothing
		}
	}
	return out
}
