// Package session holds the state of one interactive sociogram session.
//
// A Session owns the current analysis result, the filter, the filtered view
// derived from both, the force layout fed by that view, the highlighted
// clique and an event bus. Hosts drive it through discrete actions (Analyze,
// SetFilter, SetLayoutParams, Resize, HighlightClique, Clear) and a tick loop
// (Tick or Run).
//
// # View reconciliation
//
// Every time the view is recomputed it is diffed against the previous view by
// node and nomination id. Ids only present in the new view are Added, ids only
// present in the old view are Removed, and ids present in both are Updated in
// place. Renderers use the Diff to create, dispose and update their elements
// without rebuilding everything.
//
// # Dataset replacement
//
// Analyze computes the new result completely before swapping it in, so the
// previous result stays intact if the new dataset is rejected.
//
// A Session is not safe for concurrent use.
package session
