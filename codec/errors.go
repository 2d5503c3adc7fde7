// SPDX-License-Identifier: MIT
package codec

import "errors"

// ErrFormatMismatch indicates a packed word's shape doesn't match the
// format being decoded (e.g. a group-ring bit set while unpacking the
// plain-integer format).
var ErrFormatMismatch = errors.New("codec: packed entry does not match expected format")

// ErrEntryCountMismatch indicates entries has a different length than the
// number of boundary maps implied by ranks.
var ErrEntryCountMismatch = errors.New("codec: entries length doesn't match rank count")

// ErrIncomplete indicates Pack was asked to repack a group whose boundary
// matrix was never materialized despite both adjacent groups being
// non-empty.
var ErrIncomplete = errors.New("codec: boundary matrix between non-empty groups was never built")
