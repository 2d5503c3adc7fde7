package ring

// IntRing implements Ring[int64] for the ordinary integers, the coefficient
// ring of the standard (non-unified) chain complex.
//
// Complexity: every operation is O(1).
type IntRing struct{}

// Zero is the additive identity, 0.
func (IntRing) Zero() int64 { return 0 }

// IsZero reports whether v == 0.
func (IntRing) IsZero(v int64) bool { return v == 0 }

// Equal reports whether u == v.
func (IntRing) Equal(u, v int64) bool { return u == v }

// Add returns u + v.
func (IntRing) Add(u, v int64) int64 { return u + v }

// Mul returns u * v.
func (IntRing) Mul(u, v int64) int64 { return u * v }

// Neg returns -v.
func (IntRing) Neg(v int64) int64 { return -v }

// Magnitude returns |v|.
func (IntRing) Magnitude(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// IsUnit reports whether v is ±1, the only integers invertible over Z.
func (r IntRing) IsUnit(v int64) bool { return r.Magnitude(v) == 1 }
