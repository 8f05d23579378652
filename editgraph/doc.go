// Package editgraph implements a generic sequence edit-distance and
// edit-alignment engine.
//
// Given two finite sequences A and B and a caller-supplied CostPolicy for
// insertion, deletion, and substitution, editgraph computes the minimum
// total edit cost (Distance) and, optionally, a concrete edit script that
// realizes that cost (Align). The engine models the problem as a
// single-source shortest-path search over an implicit edit graph: nodes are
// position pairs (i, j) in [0,len(A)]×[0,len(B)], edges are insert/delete/
// substitute-or-match moves, and the search is a best-first expansion over a
// min-priority-queue frontier with a visited index that keeps only the
// cheapest known path to each position.
//
// The search supports two pruning mechanisms: an edit beam that discards
// positions whose |i-j| exceeds a configured band, and an envelope — a
// monotone lower-bound witness advanced during "equal-run" fast paths — that
// discards dominated nodes without affecting correctness. Equal-run
// compression walks a diagonal of matching elements in one step instead of
// one node per element, so cost proportional to sequence length is paid only
// for true edits.
//
// Distance and Align are generic over the element types of A and B and over
// the cost type C, which may be any signed integer or floating-point type.
package editgraph
