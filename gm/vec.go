package gm

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is the constraint for coordinate types of the geometry primitives.
// Besides float32 and float64 it accepts the length units Pixels and Meters.
type Coord interface {
	constraints.Float
}

// Pair is implemented by every two coordinate primitive.
type Pair[T Coord] interface {
	XY() (T, T)
}

// Direction is implemented by the free vector types Vec2 and NormVec2.
type Direction[T Coord] interface {
	Pair[T]
	direction()
}

// Extent is implemented by the types that can grow or shrink a Dim2:
// Dim2, Vec2 and NormVec2.
type Extent[T Coord] interface {
	Pair[T]
	extent()
}

type Vec = Vec2[float64]
type Vec32 = Vec2[float32]

// Vec2 is a free displacement in 2d space.
type Vec2[T Coord] struct {
	X, Y T
}

func VecOf[T Coord](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func VecSplat[T Coord](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

// VecBetween returns the vector pointing from start to end.
func VecBetween[T Coord](start, end Point2[T]) Vec2[T] {
	return Vec2[T]{X: end.X - start.X, Y: end.Y - start.Y}
}

func (v Vec2[T]) XY() (T, T) {
	return v.X, v.Y
}

func (Vec2[T]) direction() {}
func (Vec2[T]) extent()    {}

func (v Vec2[T]) Add(other Direction[T]) Vec2[T] {
	x, y := other.XY()
	v.X += x
	v.Y += y
	return v
}

func (v Vec2[T]) Sub(other Direction[T]) Vec2[T] {
	x, y := other.XY()
	v.X -= x
	v.Y -= y
	return v
}

func (v Vec2[T]) Mul(scalar T) Vec2[T] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec2[T]) Div(scalar T) Vec2[T] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec2[T]) MulEach(other Vec2[T]) Vec2[T] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec2[T]) DivEach(other Vec2[T]) Vec2[T] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

func (v Vec2[T]) Length() T {
	return T(hypot(v.X, v.Y))
}

func (v Vec2[T]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2[T]) Dot(other Direction[T]) T {
	x, y := other.XY()
	return v.X*x + v.Y*y
}

// Cross returns the z component of the 3d cross product of v and other.
func (v Vec2[T]) Cross(other Direction[T]) T {
	x, y := other.XY()
	return v.X*y - v.Y*x
}

// CrossScalar returns the cross product of v with a scalar, (s·y, -s·x).
func (v Vec2[T]) CrossScalar(s T) Vec2[T] {
	return Vec2[T]{X: s * v.Y, Y: -s * v.X}
}

// IsPerpendicular reports whether the dot product of v and other is
// smaller than Epsilon.
func (v Vec2[T]) IsPerpendicular(other Direction[T]) bool {
	return Abs(v.Dot(other)) < Epsilon
}

// Normalized returns the direction of v. It fails with ErrZeroVector if v has length zero.
func (v Vec2[T]) Normalized() (NormVec2[T], error) {
	return NewNormVec2(v.X, v.Y)
}

// UnitNormal returns the direction perpendicular to v, following (x, y) -> (y, -x).
func (v Vec2[T]) UnitNormal() (NormVec2[T], error) {
	return NewNormVec2(v.Y, -v.X)
}

func (v Vec2[T]) Point() Point2[T] {
	return Point2[T]{X: v.X, Y: v.Y}
}

func (v Vec2[T]) Dim() Dim2[T] {
	return Dim2[T]{W: v.X, H: v.Y}
}

// At returns the coordinate with index 0 (x) or 1 (y).
func (v Vec2[T]) At(idx int) (T, error) {
	return pairAt("Vec2", v, idx)
}

// Equal compares both coordinates with a tolerance of Epsilon.
func (v Vec2[T]) Equal(other Vec2[T]) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y)
}

// Compare orders vectors by x, then by y.
func (v Vec2[T]) Compare(other Vec2[T]) int {
	return comparePair[T](v, other)
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}

func pairAt[T Coord](kind string, p Pair[T], idx int) (T, error) {
	x, y := p.XY()

	switch idx {
	case 0:
		return x, nil
	case 1:
		return y, nil
	default:
		return 0, outOfRange(kind, idx, 2)
	}
}

func comparePair[T Coord](lhs, rhs Pair[T]) int {
	lx, ly := lhs.XY()
	rx, ry := rhs.XY()
	return cmp.Or(cmp.Compare(lx, rx), cmp.Compare(ly, ry))
}
