// Package seqalign is a generic sequence edit-distance and edit-alignment
// toolkit: given two finite sequences and a cost policy for insertion,
// deletion, and substitution, it computes the minimum edit cost and a
// concrete edit script realizing it.
//
// Everything lives in focused subpackages, the same shape as the library
// this one grew out of:
//
//	editgraph/  — the search engine: edit graph, frontier, visited index,
//	              envelope pruning, equal-run compression, path reconstruction
//	seqcost/    — ready-made CostPolicy constructors (unit, weighted, rune-class)
//	editscript/ — edit-script values, collecting sinks, apply and hunk helpers
//	cmd/editdiff/ — a line-oriented diff CLI built on the three packages above
//
// Quick example:
//
//	policy := seqcost.Unit[rune]()
//	dist, err := editgraph.Distance([]rune("kitten"), []rune("sitting"), policy,
//		editgraph.NewConfig(editgraph.WithSub()))
//
// See editgraph's package doc for the algorithm, and editscript's for
// working with the resulting edit script.
package seqalign
