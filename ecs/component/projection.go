package component

import "github.com/jakecoffman/cp"

// OrthographicProjection scales the window 1:1 into world units at Scale 1,
// divided by PixelsPerUnit. Larger Scale shows more of the world.
type OrthographicProjection struct {
	Scale         float64
	PixelsPerUnit float64
}

var OrthographicProjectionComponent = NewComponent[OrthographicProjection]()

func NewOrthographicProjection() OrthographicProjection {
	return OrthographicProjection{Scale: 1, PixelsPerUnit: 1}
}

func (p *OrthographicProjection) pixelsPerUnit() float64 {
	if p.PixelsPerUnit <= 0 {
		return 1
	}
	return p.PixelsPerUnit
}

// SizeAt returns the visible world size for the viewport at the given scale.
func (p *OrthographicProjection) SizeAt(scale float64, vp Viewport) cp.Vector {
	k := scale / p.pixelsPerUnit()
	return cp.Vector{X: vp.Width * k, Y: vp.Height * k}
}

// Size returns the visible world size at the current scale.
func (p *OrthographicProjection) Size(vp Viewport) cp.Vector {
	return p.SizeAt(p.Scale, vp)
}

// HalfExtentAt returns half the visible world size at the given scale.
func (p *OrthographicProjection) HalfExtentAt(scale float64, vp Viewport) cp.Vector {
	return p.SizeAt(scale, vp).Mult(0.5)
}

// Area returns the visible rectangle relative to the camera translation.
func (p *OrthographicProjection) Area(vp Viewport) cp.BB {
	half := p.HalfExtentAt(p.Scale, vp)
	return cp.BB{L: -half.X, B: -half.Y, R: half.X, T: half.Y}
}

// VisibleRect returns the world rectangle shown when the camera sits at
// translation.
func (p *OrthographicProjection) VisibleRect(translation cp.Vector, vp Viewport) cp.BB {
	a := p.Area(vp)
	return cp.BB{L: a.L + translation.X, B: a.B + translation.Y, R: a.R + translation.X, T: a.T + translation.Y}
}
