// SPDX-License-Identifier: MIT

// Package ring defines the coefficient algebra the reducer computes over.
//
// A chain complex can be reduced over any commutative ring in which unit
// detection is cheap; this package provides the two rings the reducer
// actually needs: the ordinary integers, and the group ring Z[t]/(t²−1) used
// for the "unified" (odd/even) flavor of Khovanov homology. Both are exposed
// behind the generic Ring[V] contract so chain.Complex[V] and sparse.Matrix[V]
// need not know which ring they were built with.
package ring
