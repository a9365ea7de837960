package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, Lerp(0.5, 0.0, 10.0))
	require.Equal(t, 0.0, Lerp(0, 0.0, 10.0))
	require.Equal(t, 10.0, Lerp(1, 0.0, 10.0))
	require.Equal(t, Pixels(15), Lerp[Pixels](0.25, 10, 30))

	require.Equal(t, VecOf(1.0, 2.0), LerpVec(0.5, VecOf(0.0, 0.0), VecOf(2.0, 4.0)))
	require.Equal(t, PointOf(1.0, 2.0), LerpPoint(0.5, PointOf(0.0, 0.0), PointOf(2.0, 4.0)))
}

func TestLerpAngle(t *testing.T) {
	// the short way from 3 to -3 crosses π
	require.InDelta(t, math.Pi, float64(LerpAngle(0.5, 3, -3)), 1e-9)
	require.InDelta(t, 0.5, float64(LerpAngle(0.5, 0, 1)), 1e-9)
	require.InDelta(t, 1, float64(LerpAngle(1, 0, 1)), 1e-9)
}

func TestRandomIn(t *testing.T) {
	for range 100 {
		value := RandomIn(-2.0, 3.0)
		require.GreaterOrEqual(t, value, -2.0)
		require.Less(t, value, 3.0)

		angle := RandomAngle()
		require.GreaterOrEqual(t, float64(angle), 0.0)
		require.Less(t, float64(angle), 2*math.Pi)
	}
}
