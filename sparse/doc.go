// SPDX-License-Identifier: MIT

// Package sparse implements the dually row/column-indexed sparse matrix the
// reducer mutates: every non-zero entry is stored twice, once in its row's
// linked list and once in its column's, with both copies kept equal after
// every mutation (the "bilateral consistency" invariant). This duplication
// is what lets the reducer's column-sweep elimination walk a row while
// updating arbitrary columns, at the cost of one walk of the touched
// orthogonal vector per entry, instead of rescanning the whole matrix.
//
// Matrix[V] is generic over the coefficient ring (see package ring); callers
// supply a ring.Ring[V] instance at construction and every arithmetic step
// goes through it, so the same code reduces complexes over Z and over
// Z[t]/(t²−1) without duplication.
package sparse
