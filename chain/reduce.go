// SPDX-License-Identifier: MIT
// Package: chain
//
// reduce.go — NewComplex/SetMatrix/Reduce, grounded directly on init_ranks,
// kill_gen, eliminate_gens and reduce_s_complex_U in sparreduce-U.c.

package chain

import (
	"github.com/katalvlaran/sparreduce/ring"
	"github.com/katalvlaran/sparreduce/sparse"
)

// NewComplex builds a Complex from per-group ranks. No boundary matrices are
// attached yet; supply them via SetMatrix or a Materializer option.
//
// Returns (nil, nil) if every rank is zero: an empty complex needs no
// reduction, mirroring init_ranks' own "first_group < 0" short-circuit.
func NewComplex[V any](ranks []int, r ring.Ring[V], opts ...Option[V]) (*Complex[V], error) {
	live := make([]int, len(ranks))
	copy(live, ranks)

	firstGroup, lastGroup := -1, -1
	for g, n := range ranks {
		if n > 0 {
			if firstGroup < 0 {
				firstGroup = g
			}
			lastGroup = g
		}
	}
	if firstGroup < 0 {
		return nil, nil
	}

	numMats := 0
	if len(ranks) > 0 {
		numMats = len(ranks) - 1
	}

	return &Complex[V]{
		rank:       append([]int(nil), ranks...),
		live:       live,
		mats:       make([]*sparse.Matrix[V], numMats),
		firstGroup: firstGroup,
		lastGroup:  lastGroup,
		ring:       r,
		opts:       newOptions(opts...),
	}, nil
}

// SetMatrix attaches an already-built boundary matrix D[group]: C[group+1]
// -> C[group]. Requires m.Rows() == rank[group+1] and m.Cols() == rank[group].
func (c *Complex[V]) SetMatrix(group int, m *sparse.Matrix[V]) error {
	if group < 0 || group >= len(c.mats) {
		return ErrInvalidGroup
	}
	if m.Rows() != c.rank[group+1] || m.Cols() != c.rank[group] {
		return ErrDimensionMismatch
	}
	c.mats[group] = m
	return nil
}

// interesting reports whether D[group] connects two non-empty groups, per
// init_diff_matrix's own guard ("matrix < first_group || matrix >= last_group
// return").
func (c *Complex[V]) interesting(group int) bool {
	return group >= c.firstGroup && group < c.lastGroup
}

// ensureMaterialized returns D[group], building it via the configured
// Materializer on first demand if it was not supplied through SetMatrix.
func (c *Complex[V]) ensureMaterialized(group int) (*sparse.Matrix[V], error) {
	if group < 0 || group >= len(c.mats) {
		return nil, ErrInvalidGroup
	}
	if c.mats[group] != nil {
		return c.mats[group], nil
	}
	if c.opts.materializer == nil {
		return nil, ErrNotMaterialized
	}
	m, err := c.opts.materializer(group)
	if err != nil {
		return nil, err
	}
	c.mats[group] = m
	return m, nil
}

// killGen removes generator gen of group from the complex: erases its row
// in D[group-1] (if group has a predecessor boundary) and its column in
// D[group] (if group has a successor boundary), then decrements live[group].
//
// Grounded on kill_gen (sparreduce-U.c).
func (c *Complex[V]) killGen(group, gen int) error {
	if group > c.firstGroup {
		if err := c.mats[group-1].EraseRow(gen, true); err != nil {
			return err
		}
	}
	if group < c.lastGroup {
		if err := c.mats[group].EraseCol(gen, true); err != nil {
			return err
		}
	}
	c.live[group]--
	return nil
}

// eliminate scans rows 1..rank[group] of D[group-1] for an invertible entry
// and, for each one found, collapses the pair of generators it pairs off.
// If shortOnly is set, only rows with at most two live entries are
// considered. Returns the number of eliminations performed by this call;
// each one removes a pair of generators, one from group and one from
// group-1.
//
// Grounded on eliminate_gens (sparreduce-U.c).
func (c *Complex[V]) eliminate(group int, shortOnly bool) (int, error) {
	m, err := c.ensureMaterialized(group - 1)
	if err != nil {
		return 0, err
	}

	elimCount := 0
	for gen := 1; gen <= c.rank[group]; gen++ {
		tomb, err := m.RowTombstoned(gen)
		if err != nil {
			return elimCount, err
		}
		if tomb {
			continue
		}

		if shortOnly {
			n, err := m.RowLen(gen)
			if err != nil {
				return elimCount, err
			}
			if n > 2 {
				continue
			}
		}

		pivotCol, pivotVal, err := m.FindUnitInVector(gen)
		if err != nil {
			return elimCount, err
		}
		if pivotCol == 0 {
			continue
		}

		s := c.ring.Neg(pivotVal)

		cols, vals, err := m.RowEntries(gen)
		if err != nil {
			return elimCount, err
		}
		for i, col := range cols {
			if col == pivotCol {
				continue
			}
			alpha := c.ring.Mul(vals[i], s)
			if _, err := m.AddCols(col, pivotCol, alpha); err != nil {
				return elimCount, err
			}
		}

		if n, err := m.RowLen(gen); err != nil {
			return elimCount, err
		} else if n != 1 {
			return elimCount, ErrGeneratorNotClean
		}

		if err := c.killGen(group-1, pivotCol); err != nil {
			return elimCount, err
		}

		if n, err := m.RowLen(gen); err != nil {
			return elimCount, err
		} else if n != 0 {
			return elimCount, ErrGeneratorNotClean
		}

		if err := c.killGen(group, gen); err != nil {
			return elimCount, err
		}

		if c.opts.checkConsistency {
			if err := sparse.Consistency(m); err != nil {
				return elimCount, err
			}
		}

		elimCount++
	}

	return elimCount, nil
}

// Reduce runs the top-level reduction: for every group from FirstGroup()+1
// to LastGroup(), it materializes the needed window of boundary matrices,
// then repeats a short pass of eliminate until it reports no further
// progress, and after that repeats a full pass until it too reports none.
//
// Grounded on reduce_s_complex_U (sparreduce-U.c). There are no
// partial-success returns: the first error aborts the whole reduction.
func Reduce[V any](c *Complex[V]) (*Stats, error) {
	stats := &Stats{}

	for group := c.firstGroup + 1; group <= c.lastGroup; group++ {
		for _, idx := range [3]int{group - 2, group - 1, group} {
			if idx < 0 || idx >= len(c.mats) || !c.interesting(idx) {
				continue
			}
			if _, err := c.ensureMaterialized(idx); err != nil {
				return nil, err
			}
		}

		shortPasses, fullPasses, eliminated := 0, 0, 0

		for {
			n, err := c.eliminate(group, true)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				break
			}
			shortPasses++
			eliminated += n
		}

		for {
			n, err := c.eliminate(group, false)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				break
			}
			fullPasses++
			eliminated += n
		}

		stats.Groups = append(stats.Groups, GroupStats{
			Group:       group,
			ShortPasses: shortPasses,
			FullPasses:  fullPasses,
			Eliminated:  eliminated,
			LiveRank:    c.live[group],
		})
	}

	return stats, nil
}
