package editgraph

// The edit graph has nodes at every position pair (i, j) with i in
// [0,len(A)] and j in [0,len(B)], and up to three outgoing edges per node:
//
//	insert   (i, j) -> (i, j+1)   cost = InsCost(B[j])        always, if j < len(B)
//	delete   (i, j) -> (i+1, j)   cost = DelCost(A[i])        always, if i < len(A)
//	sub/eql  (i, j) -> (i+1, j+1) cost = SubCost(A[i], B[j])  if equal, or AllowSub
//
// At boundaries only the applicable edges exist. This file has no state of
// its own; it exists so the edge-generation rules live in one place instead
// of being duplicated between normal expansion (search.go) and the
// equal-run diagonal walk (also search.go).

// isEqual reports whether policy considers a and b equal: SubCost(a, b) <= 0.
func isEqual[A, B any, C Cost](policy CostPolicy[A, B, C], a A, b B) bool {
	var zero C
	return policy.SubCost(a, b) <= zero
}

// canInsert reports whether an insert edge exists at (i, j).
func canInsert(j, m int) bool { return j < m }

// canDelete reports whether a delete edge exists at (i, j).
func canDelete(i, n int) bool { return i < n }

// canDiagonal reports whether a sub/eql edge exists at (i, j).
func canDiagonal(i, j, n, m int) bool { return i < n && j < m }
