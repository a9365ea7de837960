package gm

import (
	"fmt"
	"math"
)

// NormVec2 is a direction: a vector of length one.
//
// NormVec2 is immutable, the coordinates are only set by the constructors,
// which divide the input by its length. The zero value is not a valid
// direction, always use one of the constructors.
//
// Mapping a NormVec2 through a matrix renormalizes the result, see
// Mat3.TransformNorm.
type NormVec2[T Coord] struct {
	x, y T
}

// NewNormVec2 returns the direction of (x, y). It returns ErrZeroVector
// if (x, y) has no length, or if the length is not finite.
func NewNormVec2[T Coord](x, y T) (NormVec2[T], error) {
	length := hypot(x, y)

	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return NormVec2[T]{}, fmt.Errorf("normalize (%v, %v): %w", x, y, ErrZeroVector)
	}

	return NormVec2[T]{x: T(float64(x) / length), y: T(float64(y) / length)}, nil
}

// MustNormVec2 is like NewNormVec2 but panics on a zero length input.
func MustNormVec2[T Coord](x, y T) NormVec2[T] {
	n, err := NewNormVec2(x, y)
	if err != nil {
		panic(err)
	}

	return n
}

// NormVec2FromAngle returns the direction (cos(angle), sin(angle)).
func NormVec2FromAngle[T Coord](angle Radians) NormVec2[T] {
	return NormVec2[T]{x: T(angle.Cos()), y: T(angle.Sin())}
}

func (n NormVec2[T]) X() T {
	return n.x
}

func (n NormVec2[T]) Y() T {
	return n.y
}

func (n NormVec2[T]) XY() (T, T) {
	return n.x, n.y
}

func (NormVec2[T]) direction() {}
func (NormVec2[T]) extent()    {}

func (n NormVec2[T]) Neg() NormVec2[T] {
	return NormVec2[T]{x: -n.x, y: -n.y}
}

// Angle returns the unsigned angle between n and the x axis, in [0, π].
func (n NormVec2[T]) Angle() Radians {
	return Radians(math.Acos(float64(n.x)))
}

func (n NormVec2[T]) Dot(other Direction[T]) T {
	x, y := other.XY()
	return n.x*x + n.y*y
}

func (n NormVec2[T]) Cross(other Direction[T]) T {
	x, y := other.XY()
	return n.x*y - n.y*x
}

func (n NormVec2[T]) CrossScalar(s T) Vec2[T] {
	return Vec2[T]{X: s * n.y, Y: -s * n.x}
}

func (n NormVec2[T]) IsPerpendicular(other Direction[T]) bool {
	return Abs(n.Dot(other)) < Epsilon
}

// Vec returns the direction as a plain vector of length one.
func (n NormVec2[T]) Vec() Vec2[T] {
	return Vec2[T]{X: n.x, Y: n.y}
}

func (n NormVec2[T]) At(idx int) (T, error) {
	return pairAt("NormVec2", n, idx)
}

func (n NormVec2[T]) Equal(other NormVec2[T]) bool {
	return Equal(n.x, other.x) && Equal(n.y, other.y)
}

func (n NormVec2[T]) Compare(other NormVec2[T]) int {
	return comparePair[T](n, other)
}

func (n NormVec2[T]) String() string {
	return fmt.Sprintf("NormVec2(%v, %v)", n.x, n.y)
}
