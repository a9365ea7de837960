package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	res, err := run(config{Polygons: 10, Vertices: 6, Iterations: 5})
	require.NoError(t, err)

	require.Equal(t, 50, res.Transformed)
	require.Zero(t, res.Rejected)
	require.Positive(t, res.Area)
}

func TestRun_TooFewVertices(t *testing.T) {
	_, err := run(config{Polygons: 1, Vertices: 2, Iterations: 1})
	require.Error(t, err)
}

func TestRegularPolygon(t *testing.T) {
	poly, err := regularPolygon(4, 1)
	require.NoError(t, err)
	require.Equal(t, 4, poly.Len())
	require.InDelta(t, 2.0, poly.Area(), 1e-9)
}
