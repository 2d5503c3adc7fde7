// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparreduce/ring"
	"github.com/katalvlaran/sparreduce/sparse"
)

func TestInitRejectsBadShape(t *testing.T) {
	_, err := sparse.Init[int64](ring.IntRing{}, 0, 3)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.Init[int64](ring.IntRing{}, 3, -1)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestPutGetRemoveInt(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 2, 5))
	v, err := m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)

	// column view agrees
	v, err = m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)

	removed, err := m.Remove(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), removed)

	v, err = m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	require.NoError(t, sparse.Consistency(m))
}

func TestPutZeroRemoves(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 7))
	require.NoError(t, m.Put(1, 1, 0))

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	n, err := m.RowLen(1)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestPutOutOfRange(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2)
	require.NoError(t, err)

	err = m.Put(0, 1, 1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	err = m.Put(1, 3, 1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestPutOverflow(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2, sparse.WithMaxMagnitude(10))
	require.NoError(t, err)

	err = m.Put(1, 1, 11)
	require.ErrorIs(t, err, sparse.ErrOverflow)
}

func TestEraseRowTombstone(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 3))
	require.NoError(t, m.Put(1, 2, 4))

	require.NoError(t, m.EraseRow(1, true))

	n, err := m.RowLen(1)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	tomb, err := m.RowTombstoned(1)
	require.NoError(t, err)
	require.True(t, tomb)

	// mirrored columns lost their entries too
	v, err := m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	err = m.Put(1, 1, 9)
	require.ErrorIs(t, err, sparse.ErrTombstoned)
}

func TestEraseColNoTombstone(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 3))
	require.NoError(t, m.Put(2, 1, 4))

	require.NoError(t, m.EraseCol(1, false))

	tomb, err := m.ColTombstoned(1)
	require.NoError(t, err)
	require.False(t, tomb)

	// can still write to the column since it wasn't sealed
	require.NoError(t, m.Put(1, 1, 2))
}

func TestAddRowsMerge(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 1))
	require.NoError(t, m.Put(1, 3, 2))
	require.NoError(t, m.Put(2, 1, 5))
	require.NoError(t, m.Put(2, 2, 7))

	// row1 += 1 * row2 -> row1: col1=6, col2=7, col3=2
	_, err = m.AddRows(1, 2, 1)
	require.NoError(t, err)

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(6), v)

	v, err = m.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	v, err = m.Get(1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	require.NoError(t, sparse.Consistency(m))
}

func TestAddRowsCancelsToZero(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 5))
	require.NoError(t, m.Put(2, 1, -5))

	_, err = m.AddRows(1, 2, 1)
	require.NoError(t, err)

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	n, err := m.RowLen(1)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	require.NoError(t, sparse.Consistency(m))
}

func TestAddRowsTombstonedFails(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.EraseRow(1, true))
	_, err = m.AddRows(1, 2, 1)
	require.ErrorIs(t, err, sparse.ErrTombstoned)
}

func TestAddRowsOverflow(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 2, 1, sparse.WithMaxMagnitude(10))
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 6))
	require.NoError(t, m.Put(2, 1, 6))

	_, err = m.AddRows(1, 2, 1)
	require.ErrorIs(t, err, sparse.ErrOverflow)
}

func TestAddColsMirrorsAddRows(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 3, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 1))
	require.NoError(t, m.Put(3, 1, 2))
	require.NoError(t, m.Put(1, 2, 5))
	require.NoError(t, m.Put(2, 2, 7))

	_, err = m.AddCols(1, 2, 1)
	require.NoError(t, err)

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(6), v)

	v, err = m.Get(2, 1)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	require.NoError(t, sparse.Consistency(m))
}

func TestFindUnitInVector(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 1, 3)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 4))
	require.NoError(t, m.Put(1, 2, -1))
	require.NoError(t, m.Put(1, 3, 2))

	col, val, err := m.FindUnitInVector(1)
	require.NoError(t, err)
	require.Equal(t, 2, col)
	require.Equal(t, int64(-1), val)
}

func TestFindUnitInVectorNone(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 1, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 4))
	col, val, err := m.FindUnitInVector(1)
	require.NoError(t, err)
	require.Equal(t, 0, col)
	require.Equal(t, int64(0), val)
}

func TestFindUnitInColumn(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 3, 1)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, 4))
	require.NoError(t, m.Put(2, 1, 1))

	row, val, err := m.FindUnitInColumn(1)
	require.NoError(t, err)
	require.Equal(t, 2, row)
	require.Equal(t, int64(1), val)
}

func TestUnitRingMatrixPutAndMerge(t *testing.T) {
	m, err := sparse.Init[ring.UnitElem](ring.UnitRing{}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Put(1, 1, ring.UnitElem{A: 1}))
	require.NoError(t, m.Put(2, 1, ring.UnitElem{B: 1}))

	_, err = m.AddRows(1, 2, ring.UnitElem{A: 1})
	require.NoError(t, err)

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, ring.UnitElem{A: 1, B: 1}, v)

	_, _, err = m.FindUnitInVector(1)
	require.NoError(t, err)

	require.NoError(t, sparse.Consistency(m))
}

func TestConsistencyDetectsNothingOnFreshMatrix(t *testing.T) {
	m, err := sparse.Init[int64](ring.IntRing{}, 4, 4)
	require.NoError(t, err)
	require.NoError(t, m.Put(2, 3, 9))
	require.NoError(t, sparse.Consistency(m))
}
