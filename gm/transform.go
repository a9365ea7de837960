package gm

// Transform describes a placement by a translation, a rotation and a scale.
// As a matrix, the scale is applied first, then the rotation and finally
// the translation.
type Transform[T Coord] struct {
	Translation Vec2[T]
	Scale       Vec2[T]
	Rotation    Radians
}

// NewTransform returns the transform that does not move anything.
func NewTransform[T Coord]() Transform[T] {
	return Transform[T]{
		Scale: VecSplat[T](1),
	}
}

func TransformFromXY[T Coord](x, y T) Transform[T] {
	return Transform[T]{
		Scale:       VecSplat[T](1),
		Translation: Vec2[T]{X: x, Y: y},
	}
}

func (t Transform[T]) WithTranslation(translation Vec2[T]) Transform[T] {
	t.Translation = translation
	return t
}

func (t Transform[T]) WithRotation(rotation Radians) Transform[T] {
	t.Rotation = rotation
	return t
}

func (t Transform[T]) WithScale(scale Vec2[T]) Transform[T] {
	t.Scale = scale
	return t
}

func (t Transform[T]) AsMat3() Mat3[T] {
	return Identity[T]().
		Translate(t.Translation).
		Rotate(t.Rotation).
		Scale(t.Scale.X, t.Scale.Y)
}

// Mul places child relative to t, e.g. to compute the global transform
// of a child in a hierarchy.
//
// Scale and rotation are combined component wise, which is exact as long
// as the parent scale is uniform.
func (t Transform[T]) Mul(child Transform[T]) Transform[T] {
	translation := t.AsMat3().TransformPoint(child.Translation.Point())

	return Transform[T]{
		Translation: translation.Vec(),
		Scale:       t.Scale.MulEach(child.Scale),
		Rotation:    t.Rotation + child.Rotation,
	}
}
