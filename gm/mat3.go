package gm

import (
	"cmp"
	"fmt"
	"log/slog"
)

// Mat3 is a 3x3 matrix intended for affine transformations. It is stored
// as nine cells in column major order:
//
//	[a b tx]      [0 3 6]
//	[c d ty]  ->  [1 4 7]
//	[0 0 1 ]      [2 5 8]
//
// For affine use the last row is always 0 0 1. NewMat3Full can override it,
// all operations stay well defined for such generalized matrices.
//
// The zero value is the all zero matrix, use Identity to start a chain of
// transformations.
type Mat3[T Coord] struct {
	m [9]T
}

type Mat = Mat3[float64]

// storage indices of the named cells
const (
	ia  = 0
	ic  = 1
	i20 = 2
	ib  = 3
	id  = 4
	i21 = 5
	itx = 6
	ity = 7
	i22 = 8
)

// Identity returns the identity transformation.
func Identity[T Coord]() Mat3[T] {
	return NewMat3[T](
		1, 0, 0,
		0, 1, 0,
	)
}

// Fill returns a matrix with every cell set to value.
func Fill[T Coord](value T) Mat3[T] {
	return Mat3[T]{m: [9]T{value, value, value, value, value, value, value, value, value}}
}

// NewMat3 returns the affine matrix with the given first two rows. The last row is 0 0 1.
func NewMat3[T Coord](a00, a01, a02, a10, a11, a12 T) Mat3[T] {
	return NewMat3Full(a00, a01, a02, a10, a11, a12, 0, 0, 1)
}

// NewMat3Full returns the matrix with the given cells, given in row major order.
func NewMat3Full[T Coord](a00, a01, a02, a10, a11, a12, a20, a21, a22 T) Mat3[T] {
	return Mat3[T]{m: [9]T{
		a00, a10, a20,
		a01, a11, a21,
		a02, a12, a22,
	}}
}

// At returns the cell in the given row and column.
func (m Mat3[T]) At(row, col int) (T, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, fmt.Errorf("%w: Mat3 cell (%d, %d)", ErrOutOfRange, row, col)
	}

	return m.m[col*3+row], nil
}

// Array returns a copy of the cells in column major order.
func (m Mat3[T]) Array() [9]T {
	return m.m
}

// Mul multiplies the matrix with another matrix, m * other.
// The resulting transformation applies other first, then m.
func (m Mat3[T]) Mul(other Mat3[T]) Mat3[T] {
	var res Mat3[T]

	for row := range 3 {
		for col := range 3 {
			var sum T
			for k := range 3 {
				sum += m.m[k*3+row] * other.m[col*3+k]
			}

			res.m[col*3+row] = sum
		}
	}

	return res
}

// MulScalar multiplies every cell with s.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	for idx := range m.m {
		m.m[idx] *= s
	}

	return m
}

// Determinant computes the determinant by cofactor expansion along the first
// row, including the last row of the matrix.
func (m Mat3[T]) Determinant() T {
	a, b, tx := m.m[ia], m.m[ib], m.m[itx]
	c, d, ty := m.m[ic], m.m[id], m.m[ity]
	g, h, k := m.m[i20], m.m[i21], m.m[i22]

	return a*(d*k-ty*h) - b*(c*k-ty*g) + tx*(c*h-d*g)
}

// Inverse returns the inverse matrix.
//
// A singular matrix, one with a determinant of exactly zero, inverts to the
// identity matrix. This is not an error.
func (m Mat3[T]) Inverse() Mat3[T] {
	det := m.Determinant()
	if det == 0 {
		Logger().Debug("Inverting singular matrix, falling back to identity",
			slog.Any("matrix", m))

		return Identity[T]()
	}

	a, b, tx := m.m[ia], m.m[ib], m.m[itx]
	c, d, ty := m.m[ic], m.m[id], m.m[ity]
	g, h, k := m.m[i20], m.m[i21], m.m[i22]

	return NewMat3Full(
		(d*k-h*ty)/det, -(b*k-h*tx)/det, (b*ty-d*tx)/det,
		-(c*k-g*ty)/det, (a*k-g*tx)/det, -(a*ty-c*tx)/det,
		(c*h-g*d)/det, -(a*h-g*b)/det, (a*d-c*b)/det,
	)
}

// Translate appends a translation by vec.
//
// The displacement is first mapped through the inverse of m, so the
// translation moves points by exactly vec, regardless of any rotation or
// scale already present in m.
func (m Mat3[T]) Translate(vec Vec2[T]) Mat3[T] {
	local := m.Inverse().TransformVec(vec)

	return m.Mul(NewMat3(
		1, 0, local.X,
		0, 1, local.Y,
	))
}

// Rotate appends a counterclockwise rotation around the origin.
func (m Mat3[T]) Rotate(angle Radians) Mat3[T] {
	return m.RotateAround(angle, Point2[T]{})
}

// RotateAround appends a counterclockwise rotation around center.
func (m Mat3[T]) RotateAround(angle Radians, center Point2[T]) Mat3[T] {
	cos := T(angle.Cos())
	sin := T(angle.Sin())

	return m.Mul(NewMat3(
		cos, -sin, center.X*(1-cos)+center.Y*sin,
		sin, cos, center.Y*(1-cos)-center.X*sin,
	))
}

// Scale appends a scale around the origin.
func (m Mat3[T]) Scale(sx, sy T) Mat3[T] {
	return m.ScaleAround(sx, sy, Point2[T]{})
}

// ScaleAround appends a scale that keeps center in place.
func (m Mat3[T]) ScaleAround(sx, sy T, center Point2[T]) Mat3[T] {
	return m.Mul(NewMat3(
		sx, 0, center.X*(1-sx),
		0, sy, center.Y*(1-sy),
	))
}

// Shear appends a shear: x' = x + sx·y and y' = y + sy·x.
func (m Mat3[T]) Shear(sx, sy T) Mat3[T] {
	return m.ShearAround(sx, sy, Point2[T]{})
}

// ShearAround appends a shear that keeps center in place.
//
//	 _________          _________
//	|         |         \         \
//	|         |   ->     \         \
//	|_________|           \_________\
func (m Mat3[T]) ShearAround(sx, sy T, center Point2[T]) Mat3[T] {
	offset := center.Neg()

	return m.Mul(NewMat3(
		1, sx, sx*offset.Y,
		sy, 1, sy*offset.X,
	))
}

// ReflectX appends a reflection across the x axis.
func (m Mat3[T]) ReflectX() Mat3[T] {
	return m.ReflectAcross(Vec2[T]{X: 1}, Point2[T]{})
}

// ReflectY appends a reflection across the y axis.
func (m Mat3[T]) ReflectY() Mat3[T] {
	return m.ReflectAcross(Vec2[T]{Y: 1}, Point2[T]{})
}

// ReflectAcross appends a reflection across the line with direction dir
// passing through intercept. The direction does not need to be normalized.
// A zero direction describes no line, the matrix is returned unchanged.
func (m Mat3[T]) ReflectAcross(dir Vec2[T], intercept Point2[T]) Mat3[T] {
	lengthSqr := dir.LengthSqr()
	if lengthSqr == 0 {
		Logger().Debug("Ignoring reflection across a line without direction")
		return m
	}

	a, b, c := lineThrough(dir, intercept)

	reflect := NewMat3(
		b*b-a*a, -2*a*b, -2*a*c,
		-2*a*b, a*a-b*b, -2*b*c,
	)

	return m.Mul(scaleAffine(reflect, 1/lengthSqr))
}

// Project appends an orthogonal projection onto the line with direction
// dir passing through intercept. A zero direction describes no line, the
// matrix is returned unchanged.
func (m Mat3[T]) Project(dir Vec2[T], intercept Point2[T]) Mat3[T] {
	v, err := dir.Normalized()
	if err != nil {
		Logger().Debug("Ignoring projection onto a line without direction")
		return m
	}

	vx, vy := v.XY()

	// the unit normal and the signed distance of the line to the origin.
	// their product is the foot of the perpendicular from the origin.
	nx, ny := -vy, vx
	dist := nx*intercept.X + ny*intercept.Y

	return m.Mul(NewMat3(
		vx*vx, vx*vy, nx*dist,
		vx*vy, vy*vy, ny*dist,
	))
}

// TransformPoint applies the full affine transformation to p.
func (m Mat3[T]) TransformPoint(p Point2[T]) Point2[T] {
	return Point2[T]{
		X: m.m[ia]*p.X + m.m[ib]*p.Y + m.m[itx],
		Y: m.m[ic]*p.X + m.m[id]*p.Y + m.m[ity],
	}
}

// TransformVec applies the linear part of the transformation to v.
// Vectors are free, so the translation is not applied.
func (m Mat3[T]) TransformVec(v Vec2[T]) Vec2[T] {
	x, y := m.linear(v.X, v.Y)
	return Vec2[T]{X: x, Y: y}
}

// TransformDim applies the linear part of the transformation to d.
func (m Mat3[T]) TransformDim(d Dim2[T]) Dim2[T] {
	w, h := m.linear(d.W, d.H)
	return Dim2[T]{W: w, H: h}
}

// TransformNorm applies the linear part of the transformation to n and
// normalizes the result again.
//
// The result is always a unit vector, which means that a non uniform scale
// or a shear changes the direction in a way that differs from mapping n as
// a plain vector and is intended. A transformation that collapses n to zero
// returns ErrZeroVector.
func (m Mat3[T]) TransformNorm(n NormVec2[T]) (NormVec2[T], error) {
	x, y := m.linear(n.x, n.y)
	return NewNormVec2(x, y)
}

// TransformRect maps the Min and Max corners of r as points and returns
// the rectangle spanned by them.
//
// This is exact for transformations that keep axis alignment, i.e. scale,
// translation and reflections across the axes. For rotations or shears it
// is the box spanned by the two mapped corners, not a rotated rectangle.
func (m Mat3[T]) TransformRect(r Rect2[T]) Rect2[T] {
	return RectWithPoints(m.TransformPoint(r.Min), m.TransformPoint(r.Max))
}

// TransformPoly maps every vertex of p, keeping their order.
func (m Mat3[T]) TransformPoly(p Poly2[T]) Poly2[T] {
	points := make([]Point2[T], len(p.points))
	for idx, point := range p.points {
		points[idx] = m.TransformPoint(point)
	}

	// affine maps keep convexity, no need to validate again
	return Poly2[T]{points: points}
}

// TransformShape maps every vertex of shape and rebuilds a shape of the
// same kind from the result.
func TransformShape[T Coord, S Shape[T, S]](m Mat3[T], shape S) (S, error) {
	points := make([]Point2[T], 0, shape.Len())
	for _, point := range shape.All() {
		points = append(points, m.TransformPoint(point))
	}

	return shape.Rebuild(points)
}

// Equal compares all cells exactly.
func (m Mat3[T]) Equal(other Mat3[T]) bool {
	return m.m == other.m
}

// ApproxEqual reports whether all cells differ by less than eps.
func (m Mat3[T]) ApproxEqual(other Mat3[T], eps float64) bool {
	for idx := range m.m {
		if float64(Abs(m.m[idx]-other.m[idx])) >= eps {
			return false
		}
	}

	return true
}

// Compare orders matrices by their cells in storage order.
func (m Mat3[T]) Compare(other Mat3[T]) int {
	for idx := range m.m {
		if c := cmp.Compare(m.m[idx], other.m[idx]); c != 0 {
			return c
		}
	}

	return 0
}

func (m Mat3[T]) String() string {
	return fmt.Sprintf("Mat3[%v, %v, %v; %v, %v, %v; %v, %v, %v]",
		m.m[ia], m.m[ib], m.m[itx],
		m.m[ic], m.m[id], m.m[ity],
		m.m[i20], m.m[i21], m.m[i22],
	)
}

func (m Mat3[T]) linear(x, y T) (T, T) {
	return m.m[ia]*x + m.m[ib]*y, m.m[ic]*x + m.m[id]*y
}

// scaleAffine scales the first two rows of m, keeping the last row intact.
func scaleAffine[T Coord](m Mat3[T], s T) Mat3[T] {
	for _, idx := range [...]int{ia, ib, itx, ic, id, ity} {
		m.m[idx] *= s
	}

	return m
}

// lineThrough returns the coefficients of a·x + b·y + c = 0 for the line
// with direction dir through p.
func lineThrough[T Coord](dir Vec2[T], p Point2[T]) (a, b, c T) {
	a, b = -dir.Y, dir.X

	if dir.Y == 0 {
		// horizontal line, c follows from the y intercept directly
		return a, b, -b * p.Y
	}

	return a, b, -(a*p.X + b*p.Y)
}
