package gm

import (
	"fmt"
	"iter"
	"math"
	"log/slog"
	"slices"
	"strings"
)

// Shape is implemented by vertex based shapes that a Mat3 can transform
// elementwise, see TransformShape.
type Shape[T Coord, S any] interface {
	// Len returns the number of vertices.
	Len() int

	// All iterates over the vertices in order.
	All() iter.Seq2[int, Point2[T]]

	// Rebuild returns a new shape of the same kind with the given vertices.
	Rebuild(points []Point2[T]) (S, error)
}

// Poly2 is a convex polygon.
//
// A Poly2 is immutable and convex by construction: the constructors reject
// concave input with ErrNotConvex. Translation, rotation and any other affine
// transformation keep a polygon convex. The zero value has no vertices and
// is not a valid polygon: its Area is zero, Centroid and AABB return zero values.
type Poly2[T Coord] struct {
	points []Point2[T]
}

var _ Shape[float64, Poly2[float64]] = Poly2[float64]{}

// NewPoly2 returns a polygon with the given vertices, in order.
func NewPoly2[T Coord](points ...Point2[T]) (Poly2[T], error) {
	if len(points) < 3 {
		return Poly2[T]{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(points))
	}

	poly := Poly2[T]{points: slices.Clone(points)}
	if !poly.isConvex() {
		Logger().Debug("Rejected concave polygon", slog.Int("vertices", len(points)))
		return Poly2[T]{}, ErrNotConvex
	}

	return poly, nil
}

// MustPoly2 is like NewPoly2 but panics if the polygon is not valid.
func MustPoly2[T Coord](points ...Point2[T]) Poly2[T] {
	poly, err := NewPoly2(points...)
	if err != nil {
		panic(fmt.Sprintf("invalid polygon: %s", err))
	}

	return poly
}

// Poly2FromPairs builds a polygon from a flat list of coordinates,
// x0, y0, x1, y1, and so on.
func Poly2FromPairs[T Coord](coords ...T) (Poly2[T], error) {
	if len(coords)%2 != 0 {
		return Poly2[T]{}, fmt.Errorf("%w: got %d values", ErrUnpairedCoordinates, len(coords))
	}

	points := make([]Point2[T], 0, len(coords)/2)
	for idx := 0; idx < len(coords); idx += 2 {
		points = append(points, Point2[T]{X: coords[idx], Y: coords[idx+1]})
	}

	return NewPoly2(points...)
}

// Poly2FromRect returns the polygon with the four corners of rect.
func Poly2FromRect[T Coord](rect Rect2[T]) Poly2[T] {
	corners := rect.Corners()
	return Poly2[T]{points: corners[:]}
}

// Poly2InRect places relative points into rect: each coordinate is the
// fraction between rect.Min and rect.Max. Coordinates outside of [-1, 1]
// are rejected with ErrUnitRange.
func Poly2InRect[T Coord](unitPoints []Point2[T], rect Rect2[T]) (Poly2[T], error) {
	points := make([]Point2[T], len(unitPoints))

	for idx, p := range unitPoints {
		if Abs(p.X) > 1 || Abs(p.Y) > 1 {
			return Poly2[T]{}, fmt.Errorf("%w: vertex %d is %s", ErrUnitRange, idx, p)
		}

		points[idx] = Point2[T]{
			X: Lerp(float64(p.X), rect.Min.X, rect.Max.X),
			Y: Lerp(float64(p.Y), rect.Min.Y, rect.Max.Y),
		}
	}

	return NewPoly2(points...)
}

func (p Poly2[T]) Len() int {
	return len(p.points)
}

// At returns the vertex with the given index.
func (p Poly2[T]) At(idx int) (Point2[T], error) {
	if idx < 0 || idx >= len(p.points) {
		return Point2[T]{}, outOfRange("Poly2", idx, len(p.points))
	}

	return p.points[idx], nil
}

func (p Poly2[T]) All() iter.Seq2[int, Point2[T]] {
	return slices.All(p.points)
}

// Points returns a copy of the vertices.
func (p Poly2[T]) Points() []Point2[T] {
	return slices.Clone(p.points)
}

// Rebuild returns a new polygon with the given vertices. It validates the
// vertices just like NewPoly2.
func (p Poly2[T]) Rebuild(points []Point2[T]) (Poly2[T], error) {
	return NewPoly2(points...)
}

// FacePoints returns the two vertices of the face starting at vertex idx.
func (p Poly2[T]) FacePoints(idx int) ([2]Point2[T], error) {
	if idx < 0 || idx >= len(p.points) {
		return [2]Point2[T]{}, outOfRange("Poly2 face", idx, len(p.points))
	}

	return [2]Point2[T]{p.points[idx], p.points[(idx+1)%len(p.points)]}, nil
}

// FaceVec returns the vector along the face starting at vertex idx.
func (p Poly2[T]) FaceVec(idx int) (Vec2[T], error) {
	face, err := p.FacePoints(idx)
	if err != nil {
		return Vec2[T]{}, err
	}

	return VecBetween(face[0], face[1]), nil
}

// FaceNormal returns the unit normal of the face starting at vertex idx.
func (p Poly2[T]) FaceNormal(idx int) (NormVec2[T], error) {
	vec, err := p.FaceVec(idx)
	if err != nil {
		return NormVec2[T]{}, err
	}

	return vec.UnitNormal()
}

// Area returns the unsigned area of the polygon.
func (p Poly2[T]) Area() T {
	return Abs(p.signedArea())
}

func (p Poly2[T]) signedArea() T {
	var area T
	if len(p.points) == 0 {
		return 0
	}

	prev := p.points[len(p.points)-1]
	for _, curr := range p.points {
		area += prev.X*curr.Y - curr.X*prev.Y
		prev = curr
	}

	return area / 2
}

// Centroid returns the center of mass of the polygon. A polygon without
// area, e.g. after a projection onto a line, returns the mean of its vertices.
func (p Poly2[T]) Centroid() Point2[T] {
	if len(p.points) == 0 {
		return Point2[T]{}
	}

	area := p.signedArea()
	if area == 0 {
		var sum Point2[T]
		for _, point := range p.points {
			sum = sum.Add(point)
		}

		return sum.Div(T(len(p.points)))
	}

	var cx, cy T

	prev := p.points[len(p.points)-1]
	for _, curr := range p.points {
		cross := prev.X*curr.Y - curr.X*prev.Y
		cx += (prev.X + curr.X) * cross
		cy += (prev.Y + curr.Y) * cross
		prev = curr
	}

	return Point2[T]{X: cx / (6 * area), Y: cy / (6 * area)}
}

// AABB returns the axis aligned bounding box of the polygon.
func (p Poly2[T]) AABB() Rect2[T] {
	if len(p.points) == 0 {
		return Rect2[T]{}
	}

	bounds := Rect2[T]{Min: p.points[0], Max: p.points[0]}

	for _, point := range p.points[1:] {
		bounds.Min.X = min(bounds.Min.X, point.X)
		bounds.Min.Y = min(bounds.Min.Y, point.Y)
		bounds.Max.X = max(bounds.Max.X, point.X)
		bounds.Max.Y = max(bounds.Max.Y, point.Y)
	}

	return bounds
}

// Translate moves every vertex by offset.
func (p Poly2[T]) Translate(offset Direction[T]) Poly2[T] {
	points := make([]Point2[T], len(p.points))
	for idx, point := range p.points {
		points[idx] = point.Add(offset)
	}

	return Poly2[T]{points: points}
}

// MoveCenterTo moves the polygon so that its centroid is at center.
func (p Poly2[T]) MoveCenterTo(center Point2[T]) Poly2[T] {
	return p.Translate(VecBetween(p.Centroid(), center))
}

// Rotate rotates the polygon around the origin.
func (p Poly2[T]) Rotate(angle Radians) Poly2[T] {
	return Identity[T]().Rotate(angle).TransformPoly(p)
}

// Equal reports whether both polygons have the same vertices in the same order.
func (p Poly2[T]) Equal(other Poly2[T]) bool {
	return slices.EqualFunc(p.points, other.points, Point2[T].Equal)
}

func (p Poly2[T]) String() string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "Poly2[size=%d]{", len(p.points))
	for idx, point := range p.points {
		if idx > 0 {
			sb.WriteString(", ")
		}

		_, _ = fmt.Fprintf(&sb, "(%v, %v)", point.X, point.Y)
	}

	sb.WriteString("}")

	return sb.String()
}

// isConvex checks that the turn at every vertex has the same orientation.
// Nearly collinear vertices do not count as a turn: the cross product is
// compared against Epsilon relative to the lengths of both edges, so that
// rounding in a transformation does not flip a straight run.
func (p Poly2[T]) isConvex() bool {
	var prev T

	count := len(p.points)
	for idx := range count {
		a := p.points[idx]
		b := p.points[(idx+1)%count]
		c := p.points[(idx+2)%count]

		ba := VecBetween(b, a)
		bc := VecBetween(b, c)

		curr := ba.Cross(bc)
		if math.Abs(float64(curr)) <= Epsilon*hypot(ba.X, ba.Y)*hypot(bc.X, bc.Y) {
			continue
		}

		if curr*prev < 0 {
			return false
		}

		prev = curr
	}

	return true
}
