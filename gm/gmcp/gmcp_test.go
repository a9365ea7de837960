package gmcp

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/space2d/gm"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	m := gm.Identity[float64]().
		Translate(gm.VecOf(5.0, 8.0)).
		Scale(2, 3).
		Rotate(gm.Degrees(30).Radians())

	tr := Transform(m)

	p := gm.PointOf(3.0, -2.0)
	expected := m.TransformPoint(p)
	actual := PointOf(tr.Point(PointVector(p)))

	require.InDelta(t, expected.X, actual.X, 1e-9)
	require.InDelta(t, expected.Y, actual.Y, 1e-9)

	v := gm.VecOf(1.0, 1.0)
	require.True(t, m.TransformVec(v).Equal(VecOf(tr.Vect(Vector(v)))))
}

func TestMatOf(t *testing.T) {
	m := gm.Identity[float64]().
		Translate(gm.VecOf(-1.0, 4.0)).
		Shear(0.5, 0).
		Rotate(1.2)

	require.True(t, MatOf(Transform(m)).ApproxEqual(m, 1e-12))
	require.True(t, MatOf(cp.NewTransformIdentity()).Equal(gm.Identity[float64]()))
}

func TestBB(t *testing.T) {
	r := gm.RectWithPoints(gm.PointOf(1.0, 2.0), gm.PointOf(3.0, 5.0))

	bb := BB(r)
	require.Equal(t, cp.BB{L: 1, B: 2, R: 3, T: 5}, bb)
	require.Equal(t, r, RectOf(bb))
}

func TestVerts(t *testing.T) {
	poly := gm.MustPoly2(gm.PointOf(0.0, 0.0), gm.PointOf(2.0, 0.0), gm.PointOf(0.0, 2.0))

	require.Equal(t, []cp.Vector{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}, Verts(poly))
}

func TestNewPolyShape(t *testing.T) {
	poly := gm.Poly2FromRect(gm.RectWithSize(gm.DimOf(2.0, 2.0)))

	body := cp.NewStaticBody()
	shape := NewPolyShape(body, poly, gm.Identity[float64](), 0)

	require.NotNil(t, shape)
}
