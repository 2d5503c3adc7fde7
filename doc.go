// Package sparreduce shrinks a free chain complex by elementary simplicial
// collapses, the core computation behind Khovanov-homology reduction: given
// boundary matrices D[0]→D[1]→…→D[N-1] over Z or Z[t]/(t²−1), it repeatedly
// pairs off a generator with a unit-coefficient neighbor in the adjacent
// group and adjusts the surviving boundaries by column operations, producing
// a smaller chain-homotopy-equivalent complex with the same homology.
//
// Subpackages:
//
//	ring/   — the coefficient algebra: Z and Z[t]/(t²−1), as a Ring[V] contract
//	sparse/ — the dually row/column-indexed sparse matrix the reducer mutates
//	chain/  — the complex itself and the Reduce orchestration
//	codec/  — translating the host's packed matrix format to/from sparse.Matrix
//
// sparreduce is a synchronous, single-threaded library: Reduce turns
// (ranks, matrices) into (ranks', matrices') by mutating the Complex in
// place, with no goroutines, no locks, and nothing to cancel. See
// chain.Reduce for the entry point.
package sparreduce
