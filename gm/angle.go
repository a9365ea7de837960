package gm

import (
	"math"
	"strconv"
)

// Angle is implemented by the angle units. The ratio relates the unit to radians.
type Angle interface {
	Scalar
	AngleRatio() Ratio
}

// Radians is an angle in radians. It is the canonical angle unit.
type Radians float64

// Degrees is an angle in degrees.
type Degrees float64

// Percent is an angle as a fraction of a full turn: 1.0 is a full turn
// and prints as "100%". Use Pct to construct it from a 0..100 value.
type Percent float64

var (
	RadiansRatio = Ratio{Num: 1, Den: 1}

	// π/180
	DegreesRatio = Ratio{Num: 31415926535897932, Den: 1800000000000000000}

	// 2π
	PercentRatio = Ratio{Num: 31415926535897932, Den: 5000000000000000}
)

func (Radians) AngleRatio() Ratio { return RadiansRatio }
func (Degrees) AngleRatio() Ratio { return DegreesRatio }
func (Percent) AngleRatio() Ratio { return PercentRatio }

// ConvertAngle converts an angle into another angle unit.
//
//	rad := gm.ConvertAngle[gm.Radians](gm.Degrees(180))
func ConvertAngle[To, From Angle](value From) To {
	var to To
	return To(ConvertRatio(float64(value), value.AngleRatio(), to.AngleRatio()))
}

// PiRadians returns k·π radians.
func PiRadians(k float64) Radians {
	return Radians(k * math.Pi)
}

// Pct returns the angle of p percent of a full turn.
func Pct(p float64) Percent {
	return Percent(p / 100)
}

func (r Radians) Degrees() Degrees {
	return ConvertAngle[Degrees](r)
}

func (r Radians) Percent() Percent {
	return ConvertAngle[Percent](r)
}

// Radians returns the angle itself, so every angle unit has a Radians method.
func (r Radians) Radians() Radians {
	return r
}

func (d Degrees) Radians() Radians {
	return ConvertAngle[Radians](d)
}

func (p Percent) Radians() Radians {
	return ConvertAngle[Radians](p)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Radians) Normalized() Radians {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Radians(angle - math.Pi)
}

// DifferenceTo returns the smallest difference r - other,
// normalized to the range [-π, π)
func (r Radians) DifferenceTo(other Radians) Radians {
	return (r - other).Normalized()
}

func (r Radians) Cos() float64 {
	return math.Cos(float64(r))
}

func (r Radians) Sin() float64 {
	return math.Sin(float64(r))
}

// String prints the angle as a fraction of π, e.g. "π/2 radians" or
// "3π/4 radians". The fraction is found by rounding r/π to three decimal
// digits and reducing it by the greatest common divisor with 1000.
func (r Radians) String() string {
	ratio := float64(r) / math.Pi

	// absorbs the rounding of π itself
	if math.Abs(ratio-1) < Epsilon {
		return "π radians"
	}

	if ratio == 0 {
		return "0 radians"
	}

	const precision = 1000

	divisor := gcd(int64(math.Round(ratio*precision)), precision)

	numerator := ratio * precision / float64(divisor)
	denominator := precision / divisor

	switch {
	case math.Abs(numerator-1) < Epsilon:
		return "π/" + strconv.FormatInt(denominator, 10) + " radians"

	case denominator == 1:
		return formatFloat(numerator) + "π radians"

	case divisor == 1:
		return formatFloat(ratio) + "π radians"

	default:
		return formatFloat(numerator) + "π/" + strconv.FormatInt(denominator, 10) + " radians"
	}
}

func (d Degrees) String() string {
	return formatFloat(float64(d)) + " degrees"
}

func (p Percent) String() string {
	return formatFloat(float64(p)*100) + "%"
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}
