package gm

import (
	"fmt"
)

// RectFace names one of the four faces of a Rect2. Up is the face at Min.Y.
type RectFace int

const (
	Up RectFace = iota
	Down
	Left
	Right
)

func (f RectFace) String() string {
	switch f {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("RectFace(%d)", int(f))
	}
}

// Rect2 is an axis aligned rectangle spanned by Min and Max.
type Rect2[T Coord] struct {
	Min, Max Point2[T]
}

// UnitRect returns the rectangle from (0, 0) to (1, 1).
func UnitRect[T Coord]() Rect2[T] {
	return Rect2[T]{Max: Point2[T]{X: 1, Y: 1}}
}

// RectWithPoints returns the smallest rectangle containing both a and b.
func RectWithPoints[T Coord](a, b Point2[T]) Rect2[T] {
	return Rect2[T]{
		Min: Point2[T]{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Point2[T]{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize[T Coord](size Dim2[T]) Rect2[T] {
	return Rect2[T]{
		Max: Point2[T]{X: size.W, Y: size.H},
	}
}

func RectWithOriginAndSize[T Coord](origin Point2[T], size Dim2[T]) Rect2[T] {
	return Rect2[T]{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize[T Coord](center Point2[T], size Dim2[T]) Rect2[T] {
	half := size.Mul(0.5)
	return Rect2[T]{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// RectInset returns a rectangle inside of base. Min is moved by minOffset,
// Max is moved by the negation of maxOffset, so positive offsets shrink the
// rectangle on both sides.
func RectInset[T Coord](base Rect2[T], minOffset, maxOffset Vec2[T]) Rect2[T] {
	return Rect2[T]{
		Min: base.Min.Add(minOffset),
		Max: base.Max.Sub(maxOffset),
	}
}

// RectInsetPercent is like RectInset, but the offsets are fractions of the
// size of base. An offset of Pct(10) on all sides keeps the center and
// results in a rectangle with 80% of the size.
func RectInsetPercent[T Coord](base Rect2[T], minOffset, maxOffset Dim2[Percent]) Rect2[T] {
	size := base.Size()

	return Rect2[T]{
		Min: base.Min.Add(size.MulEach(Dim2[T]{W: T(minOffset.W), H: T(minOffset.H)})),
		Max: base.Max.Sub(size.MulEach(Dim2[T]{W: T(maxOffset.W), H: T(maxOffset.H)})),
	}
}

func (r Rect2[T]) Center() Point2[T] {
	return Point2[T]{
		X: (r.Min.X + r.Max.X) * 0.5,
		Y: (r.Min.Y + r.Max.Y) * 0.5,
	}
}

func (r Rect2[T]) Size() Dim2[T] {
	return DimBetween(r.Min, r.Max)
}

func (r Rect2[T]) Width() T {
	return r.Max.X - r.Min.X
}

func (r Rect2[T]) Height() T {
	return r.Max.Y - r.Min.Y
}

func (r Rect2[T]) Area() T {
	return r.Width() * r.Height()
}

func (r Rect2[T]) TopLeft() Point2[T] {
	return r.Min
}

func (r Rect2[T]) TopRight() Point2[T] {
	return Point2[T]{X: r.Max.X, Y: r.Min.Y}
}

func (r Rect2[T]) BottomLeft() Point2[T] {
	return Point2[T]{X: r.Min.X, Y: r.Max.Y}
}

func (r Rect2[T]) BottomRight() Point2[T] {
	return r.Max
}

// Corners returns the four corners in the order top left, bottom left,
// bottom right, top right.
func (r Rect2[T]) Corners() [4]Point2[T] {
	return [4]Point2[T]{r.TopLeft(), r.BottomLeft(), r.BottomRight(), r.TopRight()}
}

func (r Rect2[T]) Translate(offset Direction[T]) Rect2[T] {
	return Rect2[T]{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

// MoveMinTo moves the rectangle so that Min is at min, keeping its size.
func (r Rect2[T]) MoveMinTo(min Point2[T]) Rect2[T] {
	return RectWithOriginAndSize(min, r.Size())
}

// MoveCenterTo moves the rectangle so that its center is at center, keeping its size.
func (r Rect2[T]) MoveCenterTo(center Point2[T]) Rect2[T] {
	return RectWithCenterAndSize(center, r.Size())
}

// Contains reports whether p lies strictly inside the rectangle.
// Points on a face or corner are not contained.
func (r Rect2[T]) Contains(p Point2[T]) bool {
	return r.Min.X < p.X && p.X < r.Max.X &&
		r.Min.Y < p.Y && p.Y < r.Max.Y
}

// FaceNormal returns the outward facing normal of the given face.
func (r Rect2[T]) FaceNormal(face RectFace) (NormVec2[T], error) {
	switch face {
	case Up:
		return NormVec2[T]{x: 0, y: -1}, nil
	case Down:
		return NormVec2[T]{x: 0, y: 1}, nil
	case Left:
		return NormVec2[T]{x: -1, y: 0}, nil
	case Right:
		return NormVec2[T]{x: 1, y: 0}, nil
	default:
		return NormVec2[T]{}, invalidFace(face)
	}
}

// FacePoints returns the two corners of the given face, ordered by coordinates.
func (r Rect2[T]) FacePoints(face RectFace) ([2]Point2[T], error) {
	switch face {
	case Up:
		return [2]Point2[T]{r.Min, r.TopRight()}, nil
	case Down:
		return [2]Point2[T]{r.BottomLeft(), r.Max}, nil
	case Left:
		return [2]Point2[T]{r.Min, r.BottomLeft()}, nil
	case Right:
		return [2]Point2[T]{r.TopRight(), r.Max}, nil
	default:
		return [2]Point2[T]{}, invalidFace(face)
	}
}

// FaceVec returns the vector along the given face in counterclockwise direction.
func (r Rect2[T]) FaceVec(face RectFace) (Vec2[T], error) {
	switch face {
	case Up:
		return VecBetween(r.TopRight(), r.Min), nil
	case Down:
		return VecBetween(r.BottomLeft(), r.Max), nil
	case Left:
		return VecBetween(r.Min, r.BottomLeft()), nil
	case Right:
		return VecBetween(r.Max, r.TopRight()), nil
	default:
		return Vec2[T]{}, invalidFace(face)
	}
}

// At returns the corner with index 0 (Min) or 1 (Max).
func (r Rect2[T]) At(idx int) (Point2[T], error) {
	switch idx {
	case 0:
		return r.Min, nil
	case 1:
		return r.Max, nil
	default:
		return Point2[T]{}, outOfRange("Rect2", idx, 2)
	}
}

func (r Rect2[T]) Equal(other Rect2[T]) bool {
	return r.Min.Equal(other.Min) && r.Max.Equal(other.Max)
}

func (r Rect2[T]) String() string {
	return fmt.Sprintf("Rect2(min=%s, max=%s)", r.Min, r.Max)
}

func invalidFace(face RectFace) error {
	return outOfRange("RectFace", int(face), 4)
}
