package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransform_AsMat3(t *testing.T) {
	require.True(t, NewTransform[float64]().AsMat3().ApproxEqual(Identity[float64](), 1e-12))

	tr := TransformFromXY(10.0, 0.0).
		WithRotation(PiRadians(0.5)).
		WithScale(VecOf(2.0, 2.0))

	// scale first, then rotate, then translate
	requirePointInDelta(t, PointOf(10.0, 2.0), tr.AsMat3().TransformPoint(PointOf(1.0, 0.0)), 1e-9)
}

func TestTransform_Mul(t *testing.T) {
	parent := TransformFromXY(10.0, 0.0).WithRotation(PiRadians(0.5))
	child := TransformFromXY(1.0, 0.0).WithRotation(PiRadians(0.25))

	global := parent.Mul(child)

	require.InDelta(t, 10.0, global.Translation.X, 1e-9)
	require.InDelta(t, 1.0, global.Translation.Y, 1e-9)
	require.InDelta(t, 3*math.Pi/4, float64(global.Rotation), 1e-9)
	require.Equal(t, VecSplat(1.0), global.Scale)

	// the global matrix matches the product of both matrices
	p := PointOf(2.0, 3.0)
	requirePointInDelta(t,
		parent.AsMat3().Mul(child.AsMat3()).TransformPoint(p),
		global.AsMat3().TransformPoint(p),
		1e-9,
	)
}

func TestTransform_WithTranslation(t *testing.T) {
	tr := NewTransform[float32]().WithTranslation(VecOf[float32](3, 4))
	require.Equal(t, PointOf[float32](4, 5), tr.AsMat3().TransformPoint(PointOf[float32](1, 1)))
}
