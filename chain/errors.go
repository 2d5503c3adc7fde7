// SPDX-License-Identifier: MIT
// Package: chain
//
// errors.go — sentinel errors for the chain package. Every fallible
// operation returns either one of these or, unchanged, the error returned by
// a sparse call or by a Materializer (never a bare string, never a panic),
// so callers can branch with errors.Is.

package chain

import "errors"

// ErrNotMaterialized indicates a boundary matrix was needed but neither
// supplied via SetMatrix nor produced by a configured Materializer.
var ErrNotMaterialized = errors.New("chain: boundary matrix is not materialized")

// ErrDimensionMismatch indicates SetMatrix was given a matrix whose shape
// does not match the ranks of the groups it is meant to connect.
var ErrDimensionMismatch = errors.New("chain: matrix dimensions don't match group ranks")

// ErrInvalidGroup indicates a group or boundary-matrix index outside the
// complex's range.
var ErrInvalidGroup = errors.New("chain: group index out of range")

// ErrGeneratorNotClean indicates an elimination's column sweep left a row
// other than the single expected pivot entry behind — an internal
// consistency failure, fatal per spec.
var ErrGeneratorNotClean = errors.New("chain: generator was not killed cleanly")
