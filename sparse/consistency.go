// SPDX-License-Identifier: MIT
// Package: sparse
//
// consistency.go — Consistency, the §8 invariant checker, grounded on
// check_v_data/check_m_data in sparmat.c. Unlike the checkBilateral option
// (a per-call cross-check of the touched cells only), Consistency walks the
// whole matrix and is meant for tests and for callers who want a single
// post-hoc sanity pass rather than continuous overhead.

package sparse

import "github.com/katalvlaran/sparreduce/ring"

// Consistency walks every row and column of m and reports the first
// violation found of:
//
//  1. bilateral agreement: every row entry (r, c, v) has a matching column
//     entry (c, r, v), and vice versa;
//  2. each vector's entries are strictly index-ascending with no stored
//     zero value;
//  3. a tombstoned vector is empty (head == nil, count == 0);
//  4. every stored value's Magnitude is within the configured ceiling.
//
// Returns nil if none of the above is violated.
func Consistency[V any](m *Matrix[V]) error {
	for r := 1; r <= m.numRows; r++ {
		if err := checkVector(&m.rows[r-1], r, m.cols, m.ring, m.opts.maxMagnitude); err != nil {
			return err
		}
	}
	for c := 1; c <= m.numCols; c++ {
		if err := checkVector(&m.cols[c-1], c, m.rows, m.ring, m.opts.maxMagnitude); err != nil {
			return err
		}
	}
	return nil
}

// checkVector implements check_v_data: validates cr's own shape (invariants
// 2-4) then, for every entry, confirms others holds the mirrored cell
// (invariant 1).
func checkVector[V any](cr *vector[V], crIdx int, others []vector[V], r ring.Ring[V], maxMagnitude int64) error {
	if cr.tombstoned {
		if cr.head != nil || cr.count != 0 {
			return ErrRowCorrupt
		}
		return nil
	}

	n := 0
	lastIndex := 0
	for e := cr.head; e != nil; e = e.next {
		if e.index <= lastIndex {
			return ErrRowCorrupt
		}
		lastIndex = e.index
		n++

		if r.IsZero(e.value) {
			return ErrRowCorrupt
		}
		if r.Magnitude(e.value) > maxMagnitude {
			return ErrOverflow
		}

		mirror := &others[e.index-1]
		val, found := vectorGet(mirror, crIdx)
		if !found || !r.Equal(val, e.value) {
			return ErrInconsistent
		}
	}
	if n != cr.count {
		return ErrRowCorrupt
	}
	return nil
}
