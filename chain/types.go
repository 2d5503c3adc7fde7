// SPDX-License-Identifier: MIT
package chain

import (
	"github.com/katalvlaran/sparreduce/ring"
	"github.com/katalvlaran/sparreduce/sparse"
)

// Materializer builds the sparse boundary matrix D[group] on first demand,
// mirroring the original's init_diff_matrix: a lazy caller supplies this
// instead of constructing every matrix up front.
type Materializer[V any] func(group int) (*sparse.Matrix[V], error)

// Option configures a Complex at construction time.
type Option[V any] func(*options[V])

type options[V any] struct {
	materializer     Materializer[V]
	checkConsistency bool
}

// WithMaterializer installs the hook Reduce calls the first time a group's
// boundary matrix is needed and hasn't already been supplied via SetMatrix.
// Without one, a matrix that was never set surfaces ErrNotMaterialized.
func WithMaterializer[V any](fn Materializer[V]) Option[V] {
	return func(o *options[V]) { o.materializer = fn }
}

// WithConsistencyChecks toggles a sparse.Consistency pass after every
// elimination step. Defaults to enabled, matching sparse's own default.
func WithConsistencyChecks[V any](enabled bool) Option[V] {
	return func(o *options[V]) { o.checkConsistency = enabled }
}

func newOptions[V any](opts ...Option[V]) options[V] {
	o := options[V]{checkConsistency: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Complex is a chain complex of free modules connected by boundary maps:
// rank[g] generators in group g, mats[g] the boundary D[g]: C[g+1] -> C[g]
// (rows indexed by generators of g+1, columns by generators of g).
type Complex[V any] struct {
	rank []int
	live []int
	mats []*sparse.Matrix[V]

	firstGroup, lastGroup int

	ring ring.Ring[V]
	opts options[V]
}

// Ranks returns the complex's original (pre-reduction) rank per group.
func (c *Complex[V]) Ranks() []int {
	out := make([]int, len(c.rank))
	copy(out, c.rank)
	return out
}

// Live returns the current live-generator count per group, reflecting any
// reduction already performed.
func (c *Complex[V]) Live() []int {
	out := make([]int, len(c.live))
	copy(out, c.live)
	return out
}

// FirstGroup and LastGroup report the span of non-empty groups.
func (c *Complex[V]) FirstGroup() int { return c.firstGroup }
func (c *Complex[V]) LastGroup() int  { return c.lastGroup }

// Matrix returns the boundary matrix D[group], or nil if it has not been
// materialized yet.
func (c *Complex[V]) Matrix(group int) *sparse.Matrix[V] {
	if group < 0 || group >= len(c.mats) {
		return nil
	}
	return c.mats[group]
}

// GroupStats records one processed group's reduction pass counts, per the
// original's PRINT_REDSTAT output.
type GroupStats struct {
	Group       int
	ShortPasses int
	FullPasses  int
	Eliminated  int
	LiveRank    int
}

// Stats is returned by Reduce: the reduction statistics for every group
// processed, in processing order.
type Stats struct {
	Groups []GroupStats
}
