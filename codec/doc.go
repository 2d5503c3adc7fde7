// SPDX-License-Identifier: MIT

// Package codec translates between the host's packed machine-word boundary
// matrices and chain.Complex values, and back into the host's dense
// column-major reply format.
//
// Only the 64-bit packed word layout is supported (value·(row·2^32+column),
// bit 31 of the column half selecting the group-ring t-component); the 32-bit
// two-word layout named as an alternative is not implemented, matching a
// 64-bit-only reading of the packed format.
package codec
