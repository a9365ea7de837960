package gm

import "fmt"

// Point2 is an absolute location in 2d space.
type Point2[T Coord] struct {
	X, Y T
}

func PointOf[T Coord](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

func (p Point2[T]) XY() (T, T) {
	return p.X, p.Y
}

// Add offsets the point by any other primitive: a Vec2, NormVec2, Dim2 or Point2.
func (p Point2[T]) Add(offset Pair[T]) Point2[T] {
	x, y := offset.XY()
	p.X += x
	p.Y += y
	return p
}

// Sub offsets the point by the negation of any other primitive.
func (p Point2[T]) Sub(offset Pair[T]) Point2[T] {
	x, y := offset.XY()
	p.X -= x
	p.Y -= y
	return p
}

func (p Point2[T]) Mul(scalar T) Point2[T] {
	p.X *= scalar
	p.Y *= scalar
	return p
}

func (p Point2[T]) Div(scalar T) Point2[T] {
	p.X /= scalar
	p.Y /= scalar
	return p
}

func (p Point2[T]) Neg() Point2[T] {
	return Point2[T]{X: -p.X, Y: -p.Y}
}

// VecTo returns the vector pointing from p to other.
func (p Point2[T]) VecTo(other Point2[T]) Vec2[T] {
	return VecBetween(p, other)
}

func (p Point2[T]) DistanceTo(other Point2[T]) T {
	return p.VecTo(other).Length()
}

func (p Point2[T]) Vec() Vec2[T] {
	return Vec2[T]{X: p.X, Y: p.Y}
}

// At returns the coordinate with index 0 (x) or 1 (y).
func (p Point2[T]) At(idx int) (T, error) {
	return pairAt("Point2", p, idx)
}

func (p Point2[T]) Equal(other Point2[T]) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point2[T]) Compare(other Point2[T]) int {
	return comparePair[T](p, other)
}

func (p Point2[T]) String() string {
	return fmt.Sprintf("Point2(%v, %v)", p.X, p.Y)
}
