package gm

// Lerper does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
//
// Use an easing function to calculate f to perform
// custom interpolations between the values
type Lerper[V any] func(f float64, lhs, rhs V) V

func Lerp[S Scalar](f float64, lhs, rhs S) S {
	return (rhs-lhs)*S(f) + lhs
}

func LerpVec[T Coord](f float64, lhs, rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{X: Lerp(f, lhs.X, rhs.X), Y: Lerp(f, lhs.Y, rhs.Y)}
}

func LerpPoint[T Coord](f float64, lhs, rhs Point2[T]) Point2[T] {
	return Point2[T]{X: Lerp(f, lhs.X, rhs.X), Y: Lerp(f, lhs.Y, rhs.Y)}
}

// LerpAngle interpolates along the shorter arc between lhs and rhs.
func LerpAngle(f float64, lhs, rhs Radians) Radians {
	d := rhs.DifferenceTo(lhs)
	return lhs + Radians(f)*d
}

var (
	_ Lerper[float64]         = Lerp[float64]
	_ Lerper[Vec]             = LerpVec[float64]
	_ Lerper[Point2[float64]] = LerpPoint[float64]
	_ Lerper[Radians]         = LerpAngle
)
