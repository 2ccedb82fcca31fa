// Package column models the per-attribute metadata renderers consume: labels,
// UI hints, sort and search configuration, eager-load includes, calculations
// and an optional action link.
//
// UI hints cascade: SetFormUI back-fills ListUI and SearchUI while they are
// unset, and setting either of those directly never touches the others.
// Sort and search settings accept loosely typed input (bool, string, maps) and
// normalise it before storage; unrecognised sort keys fail with an error
// naming the key.
//
// ColumnSet holds the Columns of a model; ActionColumns holds ordered column
// references for a single action and never mutates the ColumnSet it is
// resolved against.
package column
