// Package editscript provides edit-script value types and editgraph.Sink
// implementations built on top of them: a Collector that records the
// events emitted by editgraph.Align, an Apply function that replays a
// script to reconstruct the target sequence, and a Hunks function that
// groups consecutive non-equal edits into context hunks, the way a
// unified-diff presentation layer needs.
//
// These sit outside the core search engine (editgraph): editgraph only
// knows how to call a Sink, and has no opinion on what the caller does
// with the events.
package editscript
