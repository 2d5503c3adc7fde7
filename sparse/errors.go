// SPDX-License-Identifier: MIT
// Package: sparse
//
// errors.go — sentinel errors for the sparse package.
//
// Error policy: every fallible operation returns one of these sentinels
// (never a bare string, never a panic) so callers can branch with
// errors.Is. Callers that need extra context should wrap with %w, never
// reformat the message.

package sparse

import "errors"

// ErrBadShape indicates a requested row/column count is less than 1.
var ErrBadShape = errors.New("sparse: matrix dimensions must be >= 1")

// ErrOutOfRange indicates a row or column index outside [1, num_rows] or
// [1, num_cols].
var ErrOutOfRange = errors.New("sparse: index out of range")

// ErrTombstoned indicates an operation targeted a row or column vector that
// has already been erased-and-sealed (erased with tombstone=true). Per
// spec, mutating a tombstoned vector is a fatal, unrecoverable error.
var ErrTombstoned = errors.New("sparse: vector is tombstoned")

// ErrInconsistent indicates the row view and column view of a cell disagree
// — a bilateral-consistency violation. Get, Remove, EraseRow and EraseCol
// return it only when consistency checks are enabled (see
// WithConsistencyChecks); Consistency returns it whatever that setting.
var ErrInconsistent = errors.New("sparse: row and column entries don't match")

// ErrOverflow indicates an entry's magnitude exceeds the configured
// MaxMagnitude after an arithmetic step.
var ErrOverflow = errors.New("sparse: entry magnitude exceeds limit")

// ErrRowCorrupt indicates a malformed row or column vector — an internal
// bookkeeping failure: its physical entry count diverged from its recorded
// count, its indices are not strictly ascending, it stores a zero value, or
// it is tombstoned but not empty.
var ErrRowCorrupt = errors.New("sparse: vector entry count is corrupt")
