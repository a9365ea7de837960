package gmebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/space2d/gm"
	"github.com/stretchr/testify/require"
)

func TestGeoM(t *testing.T) {
	m := gm.Identity[float64]().
		Translate(gm.VecOf(5.0, 8.0)).
		Scale(2, 2).
		Rotate(gm.Degrees(60).Radians())

	g := GeoM(m)

	p := m.TransformPoint(gm.PointOf(3.0, 2.0))
	x, y := g.Apply(3, 2)

	require.InDelta(t, p.X, x, 1e-9)
	require.InDelta(t, p.Y, y, 1e-9)

	require.True(t, MatOf(g).ApproxEqual(m, 1e-12))
}

func TestGeoM_Identity(t *testing.T) {
	var g ebiten.GeoM
	require.True(t, MatOf(g).Equal(gm.Identity[float64]()))
	require.Equal(t, g, GeoM(gm.Identity[float64]()))
}

func TestGeoM_SameOrder(t *testing.T) {
	// ebiten appends operations on the left, gm on the right
	var g ebiten.GeoM
	g.Rotate(0.5)
	g.Translate(3, 4)

	m := gm.Identity[float64]().Translate(gm.VecOf(3.0, 4.0)).Rotate(0.5)
	require.True(t, MatOf(g).ApproxEqual(m, 1e-12))
}

func TestCentered(t *testing.T) {
	tr := gm.TransformFromXY(10.0, 20.0).WithRotation(gm.PiRadians(0.5))

	m := Centered(tr, gm.DimOf(4.0, 2.0))

	// the center of the image ends up at the translation
	center := m.TransformPoint(gm.PointOf(2.0, 1.0))
	require.InDelta(t, 10.0, center.X, 1e-9)
	require.InDelta(t, 20.0, center.Y, 1e-9)

	op := DrawImageOptions(m)
	x, y := op.GeoM.Apply(2, 1)
	require.InDelta(t, 10.0, x, 1e-9)
	require.InDelta(t, 20.0, y, 1e-9)
}
