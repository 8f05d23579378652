package editscript

import "github.com/mireth/seqalign/editgraph"

// Hunk describes a contiguous slice of a script, identified by [Start, End)
// indices into the script, that contains at least one non-equal edit plus
// up to Context equal edits of padding on either side. This is the grouping
// a unified-diff-style presentation needs that a bare ins/del/sub/eql sink
// does not provide on its own.
type Hunk struct {
	Start, End int
	Edits      int
}

// Hunks groups the non-equal edits in script into hunks, each padded with
// up to context equal edits on either side. Adjacent hunks whose padding
// would overlap are merged into one.
func Hunks[A, B any, C editgraph.Cost](script []Edit[A, B, C], context int) []Hunk {
	var hunks []Hunk
	n := len(script)
	s := 0
	hedits := 0
	s0 := -1
	run := 0
	for s < n {
		if script[s].Kind != Eql {
			run = 0
			if s0 < 0 {
				s0 = max(0, s-context)
				hedits = s - s0
				if len(hunks) > 0 && hunks[len(hunks)-1].End >= s0 {
					h := hunks[len(hunks)-1]
					hedits = h.Edits + (s - h.End)
					s0 = h.Start
					hunks = hunks[:len(hunks)-1]
				}
			}
			s++
			hedits++
		} else {
			s++
			run++
			hedits++
		}
		if s0 >= 0 && (run >= context || s == n) {
			hunks = append(hunks, Hunk{Start: s0, End: s, Edits: hedits})
			s0 = -1
		}
	}
	return hunks
}
