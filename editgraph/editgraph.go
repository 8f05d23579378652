package editgraph

// Distance returns the minimum total edit cost to transform a into b under
// policy and cfg. It is equivalent to Align with a sink that discards every
// event, but does not pay for path reconstruction.
//
// Complexity: time and space proportional to the number of distinct (i, j)
// positions reached, bounded above by (len(a)+1)*(len(b)+1) and typically
// far smaller thanks to envelope, beam, and equal-run pruning.
func Distance[A, B any, C Cost](a []A, b []B, policy CostPolicy[A, B, C], cfg Config) (C, error) {
	goalIdx, v, err := search(a, b, policy, cfg)
	if err != nil {
		var zero C
		return zero, err
	}
	return v.get(goalIdx).cost, nil
}

// Align returns the minimum total edit cost and, as a side effect, emits
// the edit script that realizes it to sink, one call per edit in forward
// order along the optimal path.
func Align[A, B any, C Cost](a []A, b []B, sink Sink[A, B, C], policy CostPolicy[A, B, C], cfg Config) (C, error) {
	goalIdx, v, err := search(a, b, policy, cfg)
	if err != nil {
		var zero C
		return zero, err
	}
	reconstruct(a, b, v, goalIdx, sink)
	return v.get(goalIdx).cost, nil
}
