// SPDX-License-Identifier: MIT
// Package: codec
//
// packed.go — UnpackInt64/UnpackUnit/Pack, grounded directly on
// assign_matrix (decode) and matr2pari/feed2pari (encode) in
// sparreduce-U.c.

package codec

import (
	"github.com/katalvlaran/sparreduce/chain"
	"github.com/katalvlaran/sparreduce/ring"
	"github.com/katalvlaran/sparreduce/sparse"
)

// rowColumnMask strips the group-ring selector bit, matching assign_matrix's
// "column & ((1<<31)-1)".
const rowColumnMask = 1<<31 - 1

// oddVarBit is the group-ring t-component selector bit, within the same
// 32-bit half as column.
const oddVarBit = 1 << 31

// decodeWord splits a packed 64-bit entry into its row, column, and
// UnitElem coefficient, per assign_matrix's LONG_IS_64BIT branch.
func decodeWord(w int64) (row, col int, val ring.UnitElem) {
	neg := w < 0
	mag := w
	if neg {
		mag = -mag
	}

	row = int(mag >> 32)
	col = int(mag & rowColumnMask)
	oddVar := mag&oddVarBit != 0

	sign := int64(1)
	if neg {
		sign = -1
	}
	if oddVar {
		val.B = sign
	} else {
		val.A = sign
	}
	return row, col, val
}

// UnpackInt64 decodes ranks and a packed boundary matrix per non-final group
// into a Complex[int64], the plain-integer coefficient format. entries must
// have length len(ranks)-1, entries[g] holding the packed words for D[g].
func UnpackInt64(ranks []int, entries [][]int64) (*chain.Complex[int64], error) {
	if len(ranks) > 0 && len(entries) != len(ranks)-1 {
		return nil, ErrEntryCountMismatch
	}

	c, err := chain.NewComplex[int64](ranks, ring.IntRing{})
	if err != nil || c == nil {
		return c, err
	}

	for g, words := range entries {
		m, err := sparse.Init[int64](ring.IntRing{}, ranks[g+1], ranks[g])
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			row, col, coeff := decodeWord(w)
			if coeff.B != 0 {
				return nil, ErrFormatMismatch
			}
			if err := m.Put(row, col, coeff.A); err != nil {
				return nil, err
			}
		}
		if err := c.SetMatrix(g, m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// UnpackUnit is UnpackInt64's group-ring counterpart, decoding into
// Complex[ring.UnitElem] over Z[t]/(t²−1).
func UnpackUnit(ranks []int, entries [][]int64) (*chain.Complex[ring.UnitElem], error) {
	if len(ranks) > 0 && len(entries) != len(ranks)-1 {
		return nil, ErrEntryCountMismatch
	}

	c, err := chain.NewComplex[ring.UnitElem](ranks, ring.UnitRing{})
	if err != nil || c == nil {
		return c, err
	}

	for g, words := range entries {
		m, err := sparse.Init[ring.UnitElem](ring.UnitRing{}, ranks[g+1], ranks[g])
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			row, col, coeff := decodeWord(w)
			if err := m.Put(row, col, coeff); err != nil {
				return nil, err
			}
		}
		if err := c.SetMatrix(g, m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Dense is a dense column-major matrix: Dense[col][row]. Pack leaves a
// matrix with no live rows or columns as a nil Dense, standing in for the
// original's scalar-zero placeholder reply.
type Dense[V any] [][]V

// Pack repacks a (presumably reduced) Complex's surviving boundary matrices
// into dense column-major form, skipping tombstoned rows/columns exactly as
// matr2pari does, and returns the complex's current live ranks alongside.
func Pack[V any](c *chain.Complex[V]) (liveRanks []int, matrices []Dense[V], err error) {
	if c == nil {
		return nil, nil, nil
	}

	liveRanks = c.Live()
	n := len(liveRanks)
	if n == 0 {
		return liveRanks, nil, nil
	}

	matrices = make([]Dense[V], n-1)
	for g := 0; g < n-1; g++ {
		if liveRanks[g] == 0 || liveRanks[g+1] == 0 {
			continue
		}
		m := c.Matrix(g)
		if m == nil {
			return nil, nil, ErrIncomplete
		}

		liveCols, err := liveIndices(m.Cols(), m.ColTombstoned)
		if err != nil {
			return nil, nil, err
		}
		liveRows, err := liveIndices(m.Rows(), m.RowTombstoned)
		if err != nil {
			return nil, nil, err
		}

		dense := make(Dense[V], len(liveCols))
		for ci, col := range liveCols {
			column := make([]V, len(liveRows))
			for ri, row := range liveRows {
				v, err := m.Get(row, col)
				if err != nil {
					return nil, nil, err
				}
				column[ri] = v
			}
			dense[ci] = column
		}
		matrices[g] = dense
	}

	return liveRanks, matrices, nil
}

// liveIndices returns 1..count in ascending order, skipping any index for
// which tombstoned reports true.
func liveIndices(count int, tombstoned func(int) (bool, error)) ([]int, error) {
	out := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		tomb, err := tombstoned(i)
		if err != nil {
			return nil, err
		}
		if !tomb {
			out = append(out, i)
		}
	}
	return out, nil
}
