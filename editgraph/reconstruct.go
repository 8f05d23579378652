package editgraph

// reconstruct walks the parent chain of the goal node back to the start,
// reverses it, and emits the edit script to sink in forward order. A
// single hop between two consecutive nodes in the forward chain may span
// more than one element on one or both sides: the
// equal-run compression in search() parents every successor directly on
// the node that was popped, skipping the intermediate diagonal positions,
// so the interior of a hop is decompressed here by re-walking A and B
// between the two endpoints.
func reconstruct[A, B any, C Cost](a []A, b []B, v *visitedIndex[C], goalIdx nodeIndex, sink Sink[A, B, C]) {
	// Collect the chain from goal back to start, then emit in forward order.
	var chain []nodeIndex
	for idx := goalIdx; idx != noParent; {
		chain = append(chain, idx)
		idx = v.get(idx).parent
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}

	for h := 0; h < len(chain)-1; h++ {
		cur := v.get(chain[h])
		next := v.get(chain[h+1])
		emitHop(a, b, cur.pos1, cur.pos2, next.pos1, next.pos2, next.cost-cur.cost, sink)
	}
}

// emitHop emits the edits represented by one parent-chain hop from (i1, j1)
// to (i2, j2) with total incremental cost delta:
//
//   - i1 == i2: a single insertion.
//   - j1 == j2: a single deletion.
//   - otherwise both advance by >= 1; the hop is a (possibly zero-length)
//     compressed equal run followed by one trailing edge, whose shape is
//     determined by which side, if either, advances one element further
//     than the other.
func emitHop[A, B any, C Cost](a []A, b []B, i1, j1, i2, j2 int, delta C, sink Sink[A, B, C]) {
	deltaI := i2 - i1
	deltaJ := j2 - j1

	if deltaI == 0 {
		sink.Ins(b[j1], delta)
		return
	}
	if deltaJ == 0 {
		sink.Del(a[i1], delta)
		return
	}

	var run int
	trailingIns := false
	trailingDel := false
	switch {
	case deltaI < deltaJ:
		run = deltaI
		trailingIns = true
	case deltaI > deltaJ:
		run = deltaJ
		trailingDel = true
	default:
		run = deltaI - 1
	}

	for k := 0; k < run; k++ {
		sink.Eql(a[i1+k], b[j1+k])
	}

	switch {
	case trailingIns:
		sink.Ins(b[j1+run], delta)
	case trailingDel:
		sink.Del(a[i1+run], delta)
	default:
		var zero C
		if delta > zero {
			sink.Sub(a[i1+run], b[j1+run], delta)
		} else {
			sink.Eql(a[i1+run], b[j1+run])
		}
	}
}
