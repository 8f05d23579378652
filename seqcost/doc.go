// Package seqcost provides ready-made editgraph.CostPolicy implementations
// for common edit-distance scenarios: small, composable constructor
// functions rather than one monolithic configurable type.
package seqcost
