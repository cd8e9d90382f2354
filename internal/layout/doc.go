// Package layout implements a box layout engine with flexbox, CSS grid and
// block flow.
//
// Nodes live in a [Tree] arena and are addressed by [NodeID]. Each node has
// a [Style]; leaves may defer their content size to a [MeasureFunc].
// [Tree.ComputeLayout] lays out a subtree within an [AvailableSize] and
// stores a [Layout] per node, relative to the parent's border box.
//
// Results are cached per node and reused until the node or one of its
// descendants changes. Final layouts are snapped to whole pixels unless
// rounding is disabled. Types are re-exported through the root boxlayout
// package for public consumption.
package layout
