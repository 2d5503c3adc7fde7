// SPDX-License-Identifier: MIT
// Package: sparse
//
// merge.go — AddRows/AddCols, grounded directly on add_m_colrows in
// sparmat.c/sparmat-U.c: an ordered lock-step merge of dst's and src's
// entry lists that keeps dst's own list, and every column (resp. row) it
// touches, bilaterally consistent after each step rather than only once
// the whole merge completes.

package sparse

import "github.com/katalvlaran/sparreduce/ring"

// AddRows performs row[row1] += scalar * row[row2] in place, mirroring each
// change into the affected columns. Returns the maximum entry magnitude
// produced by the merge. Fails with ErrTombstoned if either row is already
// sealed, or ErrOverflow if any intermediate entry's magnitude exceeds the
// configured ceiling.
//
// Complexity: O(len(row1) + len(row2)), each step touching one column.
func (m *Matrix[V]) AddRows(row1, row2 int, scalar V) (int64, error) {
	if _, err := m.rowVector(row1); err != nil {
		return 0, err
	}
	if _, err := m.rowVector(row2); err != nil {
		return 0, err
	}
	rv1 := &m.rows[row1-1]
	rv2 := &m.rows[row2-1]
	if rv1.tombstoned || rv2.tombstoned {
		return 0, ErrTombstoned
	}
	return mergeAdd(rv1, row1, rv2, m.cols, scalar, m.ring, m.opts.maxMagnitude)
}

// AddCols is symmetric to AddRows: col[col1] += scalar * col[col2], mirrored
// into the affected rows.
//
// Complexity: O(len(col1) + len(col2)).
func (m *Matrix[V]) AddCols(col1, col2 int, scalar V) (int64, error) {
	if _, err := m.colVector(col1); err != nil {
		return 0, err
	}
	if _, err := m.colVector(col2); err != nil {
		return 0, err
	}
	cv1 := &m.cols[col1-1]
	cv2 := &m.cols[col2-1]
	if cv1.tombstoned || cv2.tombstoned {
		return 0, ErrTombstoned
	}
	return mergeAdd(cv1, col1, cv2, m.rows, scalar, m.ring, m.opts.maxMagnitude)
}

// mergeAdd merges src's entries, scaled, into dst (dst += scalar*src),
// keeping dst's list sorted and mirroring every create/update/delete into
// the matching "others" vector (others[k] is the orthogonal vector touched
// by dstIdx at index k+1) before the merge advances to the next pair.
//
// This is add_m_colrows transliterated: dst plays the role of cr_vec1,
// src of cr_vec2, others of the orthogonal family, and dstIdx of cr_ind1.
func mergeAdd[V any](dst *vector[V], dstIdx int, src *vector[V], others []vector[V], scalar V, r ring.Ring[V], maxMagnitude int64) (int64, error) {
	var maxVal int64
	var prev *entry[V]
	cur := dst.head
	srcCur := src.head

	for srcCur != nil {
		// Entry present only in dst at a lower index: keep it, advance dst.
		if cur != nil && cur.index < srcCur.index {
			prev = cur
			cur = cur.next
			continue
		}

		old := prev // the last surviving dst entry before this step

		if cur == nil || cur.index > srcCur.index {
			// Entry present only in src: splice a new scaled entry into dst.
			newVal := r.Mul(scalar, srcCur.value)
			ne := &entry[V]{index: srcCur.index, value: newVal, next: cur}
			if prev != nil {
				prev.next = ne
			} else {
				dst.head = ne
			}
			dst.count++
			if mag := r.Magnitude(newVal); mag > maxVal {
				maxVal = mag
			}
			prev = ne
			srcCur = srcCur.next
		} else {
			// Matched indices: dst's entry accumulates scalar*src's value.
			cur.value = r.Add(cur.value, r.Mul(scalar, srcCur.value))
			if mag := r.Magnitude(cur.value); mag > maxVal {
				maxVal = mag
			}
			prev = cur
			cur = cur.next
			srcCur = srcCur.next
		}

		if r.Magnitude(prev.value) > maxMagnitude {
			return 0, ErrOverflow
		}

		// Mirror the just-updated cell into its orthogonal vector before
		// the next merge step runs, so bilateral consistency never lapses
		// even mid-merge.
		mirror := &others[prev.index-1]
		if r.IsZero(prev.value) {
			vectorRemove(mirror, dstIdx)
		} else {
			vectorInsertOrOverwrite(mirror, dstIdx, prev.value)
		}

		// If the updated entry canceled to zero, unlink it from dst too.
		if r.IsZero(prev.value) {
			if old != nil {
				old.next = cur
			} else {
				dst.head = cur
			}
			dst.count--
			prev = old
		}
	}

	return maxVal, nil
}
