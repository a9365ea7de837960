// Package gmcp converts between gm and the chipmunk physics types of
// github.com/jakecoffman/cp.
//
// Both packages agree on the meaning of an affine matrix, a cp.Transform
// maps a point exactly like the gm.Mat it was created from.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/space2d/gm"
)

func Vector[T gm.Coord](v gm.Vec2[T]) cp.Vector {
	return cp.Vector{X: float64(v.X), Y: float64(v.Y)}
}

func VecOf(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

// PointVector returns the position of p as a cp.Vector.
func PointVector[T gm.Coord](p gm.Point2[T]) cp.Vector {
	return cp.Vector{X: float64(p.X), Y: float64(p.Y)}
}

func PointOf(v cp.Vector) gm.Point2[float64] {
	return gm.Point2[float64]{X: v.X, Y: v.Y}
}

// BB returns the bounding box covering r.
func BB[T gm.Coord](r gm.Rect2[T]) cp.BB {
	return cp.BB{
		L: float64(r.Min.X),
		B: float64(r.Min.Y),
		R: float64(r.Max.X),
		T: float64(r.Max.Y),
	}
}

func RectOf(bb cp.BB) gm.Rect2[float64] {
	return gm.RectWithPoints(
		gm.PointOf(bb.L, bb.B),
		gm.PointOf(bb.R, bb.T),
	)
}

// Transform converts the affine part of m. The last row of m is dropped.
func Transform[T gm.Coord](m gm.Mat3[T]) cp.Transform {
	cells := m.Array()

	return cp.NewTransformTranspose(
		float64(cells[0]), float64(cells[3]), float64(cells[6]),
		float64(cells[1]), float64(cells[4]), float64(cells[7]),
	)
}

// MatOf converts t into a gm matrix. The cells are recovered by mapping
// the unit axes and the origin through t.
func MatOf(t cp.Transform) gm.Mat {
	x := t.Vect(cp.Vector{X: 1})
	y := t.Vect(cp.Vector{Y: 1})
	origin := t.Point(cp.Vector{})

	return gm.NewMat3(
		x.X, y.X, origin.X,
		x.Y, y.Y, origin.Y,
	)
}

// Verts returns the vertices of p in order.
func Verts[T gm.Coord](p gm.Poly2[T]) []cp.Vector {
	verts := make([]cp.Vector, 0, p.Len())
	for _, point := range p.All() {
		verts = append(verts, PointVector(point))
	}

	return verts
}

// NewPolyShape creates a polygon collider on body. The vertices of p are
// placed in body space using m.
func NewPolyShape[T gm.Coord](body *cp.Body, p gm.Poly2[T], m gm.Mat3[T], radius float64) *cp.Shape {
	verts := Verts(p)
	return cp.NewPolyShape(body, len(verts), verts, Transform(m), radius)
}
