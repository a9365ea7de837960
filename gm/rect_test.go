package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectWithPoints(t *testing.T) {
	r := RectWithPoints(PointOf(4.0, 1.0), PointOf(2.0, 3.0))

	require.Equal(t, PointOf(2.0, 1.0), r.Min)
	require.Equal(t, PointOf(4.0, 3.0), r.Max)
	require.Equal(t, DimOf(2.0, 2.0), r.Size())
	require.Equal(t, PointOf(3.0, 2.0), r.Center())
	require.Equal(t, 4.0, r.Area())
}

func TestRect2_Constructors(t *testing.T) {
	require.Equal(t,
		Rect2[float64]{Min: PointOf(1.0, 2.0), Max: PointOf(4.0, 6.0)},
		RectWithOriginAndSize(PointOf(1.0, 2.0), DimOf(3.0, 4.0)),
	)

	require.Equal(t,
		Rect2[float64]{Min: PointOf(-1.0, -2.0), Max: PointOf(1.0, 2.0)},
		RectWithCenterAndSize(PointOf(0.0, 0.0), DimOf(2.0, 4.0)),
	)

	require.Equal(t,
		Rect2[float64]{Max: PointOf(3.0, 4.0)},
		RectWithSize(DimOf(3.0, 4.0)),
	)

	require.Equal(t, DimOf(1.0, 1.0), UnitRect[float64]().Size())
}

func TestRectInset(t *testing.T) {
	base := RectWithSize(DimOf(10.0, 10.0))

	inset := RectInset(base, VecOf(1.0, 2.0), VecOf(3.0, 4.0))
	require.Equal(t, RectWithPoints(PointOf(1.0, 2.0), PointOf(7.0, 6.0)), inset)

	tenPercent := DimOf(Pct(10), Pct(10))
	inset = RectInsetPercent(base, tenPercent, tenPercent)
	require.True(t, inset.Equal(RectWithPoints(PointOf(1.0, 1.0), PointOf(9.0, 9.0))))
	require.True(t, inset.Center().Equal(base.Center()))
}

func TestRect2_Contains(t *testing.T) {
	r := RectWithSize(DimOf(2.0, 2.0))

	require.True(t, r.Contains(PointOf(1.0, 1.0)))
	require.False(t, r.Contains(PointOf(0.0, 1.0)))
	require.False(t, r.Contains(PointOf(2.0, 2.0)))
	require.False(t, r.Contains(PointOf(3.0, 1.0)))
}

func TestRect2_Move(t *testing.T) {
	r := RectWithSize(DimOf(2.0, 4.0))

	require.Equal(t, PointOf(5.0, 5.0), r.MoveCenterTo(PointOf(5.0, 5.0)).Center())
	require.Equal(t, PointOf(3.0, 3.0), r.MoveMinTo(PointOf(3.0, 3.0)).Min)
	require.Equal(t, DimOf(2.0, 4.0), r.MoveMinTo(PointOf(3.0, 3.0)).Size())
	require.Equal(t, PointOf(1.0, 1.0), r.Translate(VecOf(1.0, 1.0)).Min)
}

func TestRect2_Faces(t *testing.T) {
	r := RectWithSize(DimOf(2.0, 4.0))

	normals := map[RectFace]NormVec2[float64]{
		Up:    MustNormVec2(0.0, -1.0),
		Down:  MustNormVec2(0.0, 1.0),
		Left:  MustNormVec2(-1.0, 0.0),
		Right: MustNormVec2(1.0, 0.0),
	}

	for face, expected := range normals {
		normal, err := r.FaceNormal(face)
		require.NoError(t, err)
		require.Equal(t, expected, normal, "face %s", face)
	}

	points, err := r.FacePoints(Up)
	require.NoError(t, err)
	require.Equal(t, [2]Point2[float64]{PointOf(0.0, 0.0), PointOf(2.0, 0.0)}, points)

	points, err = r.FacePoints(Right)
	require.NoError(t, err)
	require.Equal(t, [2]Point2[float64]{PointOf(2.0, 0.0), PointOf(2.0, 4.0)}, points)

	vec, err := r.FaceVec(Left)
	require.NoError(t, err)
	require.Equal(t, VecOf(0.0, 4.0), vec)

	vec, err = r.FaceVec(Down)
	require.NoError(t, err)
	require.Equal(t, VecOf(2.0, 0.0), vec)

	require.Equal(t, "Left", Left.String())
}

func TestRect2_InvalidFace(t *testing.T) {
	r := RectWithSize(DimOf(2.0, 4.0))
	face := RectFace(7)

	_, err := r.FaceNormal(face)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = r.FacePoints(face)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = r.FaceVec(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.Equal(t, "RectFace(7)", face.String())
}

func TestRect2_At(t *testing.T) {
	r := RectWithSize(DimOf(2.0, 4.0))

	corner, err := r.At(1)
	require.NoError(t, err)
	require.Equal(t, PointOf(2.0, 4.0), corner)

	_, err = r.At(2)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestRect2_String(t *testing.T) {
	r := RectWithSize(DimOf(2.0, 4.0))
	require.Equal(t, "Rect2(min=Point2(0, 0), max=Point2(2, 4))", r.String())
}
