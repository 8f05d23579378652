package editgraph

// envelope is a monotone lower-bound witness: a triple (env1, env2, cost)
// recording that some known path reaches env1 columns into A and env2
// columns into B at total cost `cost`. Any node strictly inside the
// envelope (pos1 < env1 && pos2 < env2) with cost >= envelope cost cannot
// improve the final answer and is pruned.
type envelope[C Cost] struct {
	env1, env2 int
	cost       C
}

// search runs the single-source shortest-path search over the edit graph
// and returns the index of the goal node (len(a), len(b)) within v, or an
// error if the cost policy is ill-formed or the beam exhausts the frontier
// before the goal is reached.
func search[A, B any, C Cost](a []A, b []B, policy CostPolicy[A, B, C], cfg Config) (nodeIndex, *visitedIndex[C], error) {
	n, m := len(a), len(b)
	v := newVisitedIndex[C](n + m + 1)
	fr := newFrontier[C](n + m + 1)

	var zero C
	startIdx, _ := v.construct(0, 0, zero, noParent)
	fr.push(startIdx, zero)

	env := envelope[C]{env1: 0, env2: 0, cost: zero}

	for {
		item, ok := fr.popMin()
		if !ok {
			return 0, nil, ErrBeamExhausted
		}

		nd := v.get(item.idx)
		// Staleness check: a second pop of the same position always
		// carries a cost >= the node's current stored cost; if they
		// differ, this entry has been superseded.
		if item.cost != nd.cost {
			continue
		}

		h1, h2, hc := nd.pos1, nd.pos2, nd.cost

		// 1. Beam pruning.
		if cfg.EditBeam != nil {
			diff := h1 - h2
			if diff < 0 {
				diff = -diff
			}
			atBoundary := h1 == n || h2 == m
			if diff > *cfg.EditBeam && !atBoundary {
				continue
			}
		}

		// 2. Envelope pruning.
		if h1 < env.env1 && h2 < env.env2 && hc >= env.cost {
			continue
		}

		// 3. Goal test.
		if h1 == n && h2 == m {
			return item.idx, v, nil
		}

		// 4. Expansion, with equal-run (Myers-style) compression: walk the
		// diagonal from (h1, h2) while SubCost reports equality, advancing
		// the envelope as we go. The walk's far end (farI, farJ, farCost)
		// is not materialized as its own visited node unless it is the
		// goal: the up-to-three successor edges are generated from the far
		// end but parented directly on h, so the intermediate diagonal
		// steps stay implicit for the reconstructor to recover.
		farI, farJ, farCost := h1, h2, hc
		for canDiagonal(farI, farJ, n, m) && isEqual(policy, a[farI], b[farJ]) {
			farCost += policy.SubCost(a[farI], b[farJ])
			farI++
			farJ++
			if farI > env.env1 {
				env.env1 = farI
				env.cost = farCost
			}
			if farJ > env.env2 {
				env.env2 = farJ
				env.cost = farCost
			}
		}

		if farI == n && farJ == m {
			// The run walked all the way to the goal; this boundary has no
			// outgoing edges, so it must be materialized to be returned.
			goalIdx, _ := v.construct(farI, farJ, farCost, item.idx)
			return goalIdx, v, nil
		}

		if err := expand(a, b, farI, farJ, farCost, item.idx, policy, cfg, v, fr); err != nil {
			return 0, nil, err
		}
	}
}

// expand generates the up-to-three outgoing edges of (i, j) and pushes any
// successor that visitedIndex.construct accepts. parent
// is the node these successors' parent pointer should record — the node
// that was actually popped from the frontier, which may sit strictly
// before (i, j) along the diagonal if an equal run was just compressed.
func expand[A, B any, C Cost](a []A, b []B, i, j int, cost C, parent nodeIndex, policy CostPolicy[A, B, C], cfg Config, v *visitedIndex[C], fr *frontier[C]) error {
	n, m := len(a), len(b)
	var zero C

	if canInsert(j, m) {
		c := policy.InsCost(b[j])
		if c < zero {
			return ErrNegativeCost
		}
		next := cost + c
		if nIdx, ok := v.construct(i, j+1, next, parent); ok {
			fr.push(nIdx, next)
		}
	}

	if canDelete(i, n) {
		c := policy.DelCost(a[i])
		if c < zero {
			return ErrNegativeCost
		}
		next := cost + c
		if nIdx, ok := v.construct(i+1, j, next, parent); ok {
			fr.push(nIdx, next)
		}
	}

	if canDiagonal(i, j, n, m) {
		c := policy.SubCost(a[i], b[j])
		equal := c <= zero
		if equal || cfg.AllowSub {
			next := cost + c
			if nIdx, ok := v.construct(i+1, j+1, next, parent); ok {
				fr.push(nIdx, next)
			}
		}
	}

	return nil
}
