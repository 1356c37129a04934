// Package fraction provides an exact rational number for aspect-ratio
// comparisons. Comparison is done by cross-multiplication in 64-bit
// integers, never by floating-point division, so results are identical
// on every platform.
package fraction

// Fraction is a ratio of two unsigned 32-bit integers.
type Fraction struct {
	numerator   uint32
	denominator uint32
}

// New returns the fraction numerator/denominator.
func New(numerator, denominator uint32) Fraction {
	return Fraction{numerator: numerator, denominator: denominator}
}

// Reciprocal returns denominator/numerator.
func (f Fraction) Reciprocal() Fraction {
	return Fraction{numerator: f.denominator, denominator: f.numerator}
}

// crossMultiply maps a/b and c/d onto a*d and c*b.
// `a/b < c/d` is equivalent to `a*d < c*b`; the products always fit in
// 64 bits because both sides are 32-bit.
func (f Fraction) crossMultiply(other Fraction) (uint64, uint64) {
	return uint64(f.numerator) * uint64(other.denominator),
		uint64(other.numerator) * uint64(f.denominator)
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal
// to, or greater than other.
func (f Fraction) Cmp(other Fraction) int {
	a, b := f.crossMultiply(other)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Eq reports whether the two fractions denote the same ratio.
func (f Fraction) Eq(other Fraction) bool {
	return f.Cmp(other) == 0
}

// Less reports whether f < other.
func (f Fraction) Less(other Fraction) bool {
	return f.Cmp(other) < 0
}

// Float64 converts the fraction to a float. Only meant for the final
// scaling multiplication; every ordering decision must go through Cmp.
func (f Fraction) Float64() float64 {
	return float64(f.numerator) / float64(f.denominator)
}
