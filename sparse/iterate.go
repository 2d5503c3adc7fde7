// SPDX-License-Identifier: MIT
// Package: sparse
//
// iterate.go — read-only snapshots of a row or column's live entries, for
// callers (chiefly chain.eliminate) that need to walk a vector's entries
// while mutating the matrix through other calls. A snapshot, rather than a
// live iterator, sidesteps the "read next before a mutating call frees the
// current node" concern directly at the package boundary: the caller gets
// a stable copy and mutates through Put/Remove/AddCols/AddRows as usual.

package sparse

// RowEntries returns the column indices and values currently stored in row
// (1-based), in ascending column order. ErrTombstoned if row has been
// erased-and-sealed.
//
// Complexity: O(row length).
func (m *Matrix[V]) RowEntries(row int) ([]int, []V, error) {
	rv, err := m.rowVector(row)
	if err != nil {
		return nil, nil, err
	}
	return snapshotVector(rv)
}

// ColEntries is the column-indexed symmetric counterpart to RowEntries.
//
// Complexity: O(col length).
func (m *Matrix[V]) ColEntries(col int) ([]int, []V, error) {
	cv, err := m.colVector(col)
	if err != nil {
		return nil, nil, err
	}
	return snapshotVector(cv)
}

func snapshotVector[V any](v *vector[V]) ([]int, []V, error) {
	if v.tombstoned {
		return nil, nil, ErrTombstoned
	}
	indices := make([]int, 0, v.count)
	values := make([]V, 0, v.count)
	for e := v.head; e != nil; e = e.next {
		indices = append(indices, e.index)
		values = append(values, e.value)
	}
	return indices, values, nil
}
