// Package gm (stands for geometry math) provides 2d geometry primitives
// and strongly typed scalar quantities.
//
// Angles and lengths are defined float types: Radians, Degrees and Percent
// for angles, Pixels and Meters for lengths. Each unit carries an exact
// Ratio to the canonical unit of its domain, so values convert explicitly
// and losslessly with ConvertAngle and ConvertLength, and an angle can
// never be passed where a length is expected.
//
// The geometry types Vec2, Point2, NormVec2 and Dim2 are generic over
// their coordinate type, which can be a plain float or one of the length
// units. Rect2 is an axis aligned rectangle and Poly2 a convex polygon.
//
// Mat3 is a 3x3 affine transformation matrix. Builders such as Translate,
// Rotate or Scale return a new matrix with the elementary transformation
// appended on the right, so the most recently appended transformation is
// the first one applied to a point:
//
//	m := gm.Identity[float64]().
//		Translate(gm.VecOf(5.0, 8.0)).
//		Scale(2, 2).
//		Rotate(gm.Degrees(60).Radians())
//
//	// rotates p by 60°, then scales it by 2, then moves it by (5, 8)
//	q := m.TransformPoint(p)
package gm
