// Package gmimage converts between gm and the types of the image packages:
// image.Rectangle, the fixed point types of golang.org/x/image/math/fixed
// and the float matrices of golang.org/x/image/math/f64.
package gmimage

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/oliverbestmann/space2d/gm"
)

// Aff3 converts the affine part of m. The last row of m is dropped.
func Aff3[T gm.Coord](m gm.Mat3[T]) f64.Aff3 {
	cells := m.Array()

	return f64.Aff3{
		float64(cells[0]), float64(cells[3]), float64(cells[6]),
		float64(cells[1]), float64(cells[4]), float64(cells[7]),
	}
}

func MatOf(aff f64.Aff3) gm.Mat {
	return gm.NewMat3(
		aff[0], aff[1], aff[2],
		aff[3], aff[4], aff[5],
	)
}

func Vec2[T gm.Coord](v gm.Vec2[T]) f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

func VecOf(v f64.Vec2) gm.Vec {
	return gm.Vec{X: v[0], Y: v[1]}
}

// Point26_6 converts p into 26.6 fixed point coordinates, rounding to the
// nearest representable value.
func Point26_6[T gm.Coord](p gm.Point2[T]) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(p.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(p.Y) * 64)),
	}
}

func PointOf26_6(p fixed.Point26_6) gm.Point2[float64] {
	return gm.PointOf(float64(p.X)/64, float64(p.Y)/64)
}

// Rectangle returns the smallest integer rectangle that covers r.
func Rectangle[T gm.Coord](r gm.Rect2[T]) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X))),
		int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))),
		int(math.Ceil(float64(r.Max.Y))),
	)
}

func RectOf(r image.Rectangle) gm.Rect2[float64] {
	return gm.RectWithPoints(
		gm.PointOf(float64(r.Min.X), float64(r.Min.Y)),
		gm.PointOf(float64(r.Max.X), float64(r.Max.Y)),
	)
}

// Draw draws src onto dst, placed by m. Source pixels are sampled using
// the given interpolator, e.g. xdraw.NearestNeighbor or xdraw.BiLinear.
func Draw(dst draw.Image, m gm.Mat, src image.Image, interp xdraw.Transformer) {
	interp.Transform(dst, Aff3(m), src, src.Bounds(), xdraw.Over, nil)
}
