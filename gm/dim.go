package gm

import "fmt"

// Dim2 is a width and height pair. By convention both are non negative,
// this is not enforced.
type Dim2[T Coord] struct {
	W, H T
}

func DimOf[T Coord](w, h T) Dim2[T] {
	return Dim2[T]{W: w, H: h}
}

// DimBetween returns the size of the box spanned by min and max.
func DimBetween[T Coord](min, max Point2[T]) Dim2[T] {
	return Dim2[T]{W: max.X - min.X, H: max.Y - min.Y}
}

func (d Dim2[T]) XY() (T, T) {
	return d.W, d.H
}

func (Dim2[T]) extent() {}

func (d Dim2[T]) Add(other Extent[T]) Dim2[T] {
	w, h := other.XY()
	d.W += w
	d.H += h
	return d
}

func (d Dim2[T]) Sub(other Extent[T]) Dim2[T] {
	w, h := other.XY()
	d.W -= w
	d.H -= h
	return d
}

func (d Dim2[T]) Mul(scalar T) Dim2[T] {
	d.W *= scalar
	d.H *= scalar
	return d
}

func (d Dim2[T]) Div(scalar T) Dim2[T] {
	d.W /= scalar
	d.H /= scalar
	return d
}

// MulEach scales the width and height independently.
func (d Dim2[T]) MulEach(other Dim2[T]) Dim2[T] {
	d.W *= other.W
	d.H *= other.H
	return d
}

func (d Dim2[T]) Area() T {
	return d.W * d.H
}

func (d Dim2[T]) Vec() Vec2[T] {
	return Vec2[T]{X: d.W, Y: d.H}
}

func (d Dim2[T]) At(idx int) (T, error) {
	return pairAt("Dim2", d, idx)
}

func (d Dim2[T]) Equal(other Dim2[T]) bool {
	return Equal(d.W, other.W) && Equal(d.H, other.H)
}

func (d Dim2[T]) Compare(other Dim2[T]) int {
	return comparePair[T](d, other)
}

func (d Dim2[T]) String() string {
	return fmt.Sprintf("Dim2(%v, %v)", d.W, d.H)
}
