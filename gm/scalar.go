package gm

import (
	"cmp"
	"math"
	"math/big"
	"strconv"
)

// Epsilon is the absolute tolerance used by the Equal functions and methods.
const Epsilon = 1e-6

// Scalar is implemented by every float based quantity in this package,
// as well as by plain float32 and float64 values.
type Scalar interface {
	~float32 | ~float64
}

// Ratio is an exact rational scale factor of a unit relative to the
// canonical unit of its domain: a value v in a unit with ratio r equals
// v * r.Num / r.Den canonical units.
type Ratio struct {
	Num, Den int64
}

// Rat returns the ratio as a big.Rat. It panics if Den is zero.
func (r Ratio) Rat() *big.Rat {
	return big.NewRat(r.Num, r.Den)
}

// Factor returns the multiplier that converts a value from unit r into
// unit other, computed exactly before rounding to float64.
func (r Ratio) Factor(other Ratio) float64 {
	factor := new(big.Rat).Quo(r.Rat(), other.Rat())
	f, _ := factor.Float64()
	return f
}

// ConvertRatio converts value from a unit with ratio from into a unit
// with ratio to of the same domain.
func ConvertRatio(value float64, from, to Ratio) float64 {
	if from == to {
		return value
	}

	return value * from.Factor(to)
}

// Equal reports whether a and b differ by less than Epsilon.
//
// Equal is tolerant while Compare is exact, so Equal(a, b) can hold for
// values that Compare still orders. Use Compare only for sorting.
func Equal[S Scalar](a, b S) bool {
	return math.Abs(float64(a)-float64(b)) < Epsilon
}

// Compare orders a and b exactly, without any tolerance.
func Compare[S Scalar](a, b S) int {
	return cmp.Compare(a, b)
}

// Mod returns the floating point remainder of a/b, with the sign of a.
func Mod[S Scalar](a, b S) S {
	return S(math.Mod(float64(a), float64(b)))
}

// Abs returns the absolute value of a.
func Abs[S Scalar](a S) S {
	return S(math.Abs(float64(a)))
}

// hypot returns sqrt(x*x + y*y) computed in float64, without overflow or
// underflow of the intermediate squares.
func hypot[S Scalar](x, y S) float64 {
	return math.Hypot(float64(x), float64(y))
}

// formatFloat prints f with six significant digits, dropping trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
