package gm

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by the index based accessors when the
	// requested index does not exist.
	ErrOutOfRange = errors.New("index out of range")

	// ErrZeroVector is returned when a direction is requested for a vector
	// of length zero.
	ErrZeroVector = errors.New("zero length vector has no direction")

	// ErrNotConvex is returned when a polygon would not be convex.
	ErrNotConvex = errors.New("polygon is not convex")

	// ErrTooFewVertices is returned when a polygon has less than three vertices.
	ErrTooFewVertices = errors.New("polygon needs at least three vertices")

	// ErrUnpairedCoordinates is returned when a flat coordinate list has an odd length.
	ErrUnpairedCoordinates = errors.New("coordinate list is not paired")

	// ErrUnitRange is returned when a relative coordinate lies outside of [-1, 1].
	ErrUnitRange = errors.New("coordinate outside of the unit range")
)

func outOfRange(kind string, idx, size int) error {
	return fmt.Errorf("%w: %s index %d, size %d", ErrOutOfRange, kind, idx, size)
}
