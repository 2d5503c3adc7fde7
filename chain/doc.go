// SPDX-License-Identifier: MIT

// Package chain orchestrates the reduction of a chain complex of free
// modules by elementary simplicial collapses, preserving its homology.
//
// A Complex holds one sparse.Matrix per boundary map and a live-generator
// count per chain group. Reduce walks the groups left to right, running a
// cheap "short pass" (rows with at most two entries) until it finds nothing
// more, then a "full pass" over every row of the preceding boundary matrix
// until it too finds nothing more, pairing off generators
// whose boundary contains an invertible (unit-magnitude) entry and
// collapsing them via column operations on the sparse matrix.
//
// Matrices are materialized lazily: a caller either supplies them up front
// (codec.Unpack* does this) or supplies a Materializer hook that builds a
// group's boundary matrix the first time the reducer needs it.
package chain
