// Package gmebiten converts gm matrices into ebiten draw transformations.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/space2d/gm"
)

// GeoM converts the affine part of m into an ebiten.GeoM.
func GeoM[T gm.Coord](m gm.Mat3[T]) ebiten.GeoM {
	cells := m.Array()

	var g ebiten.GeoM
	g.SetElement(0, 0, float64(cells[0]))
	g.SetElement(0, 1, float64(cells[3]))
	g.SetElement(0, 2, float64(cells[6]))
	g.SetElement(1, 0, float64(cells[1]))
	g.SetElement(1, 1, float64(cells[4]))
	g.SetElement(1, 2, float64(cells[7]))

	return g
}

// MatOf converts g into a gm matrix.
func MatOf(g ebiten.GeoM) gm.Mat {
	return gm.NewMat3(
		g.Element(0, 0), g.Element(0, 1), g.Element(0, 2),
		g.Element(1, 0), g.Element(1, 1), g.Element(1, 2),
	)
}

// DrawImageOptions returns options that draw an image placed by m.
func DrawImageOptions[T gm.Coord](m gm.Mat3[T]) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(m)
	return op
}

// Centered places an image of the given size with its center at the
// translation of tr, rotated and scaled around that center.
func Centered(tr gm.Transform[float64], size gm.Dim2[float64]) gm.Mat {
	anchor := gm.Identity[float64]().Translate(size.Vec().Mul(-0.5))
	return tr.AsMat3().Mul(anchor)
}
