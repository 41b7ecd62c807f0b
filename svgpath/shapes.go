package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(x * 64))
	p.Y = fixed.Int26_6(math.Round(y * 64))
	return
}

// AddRect adds a closed rectangle, with origin (x, y).
// Nothing is added for an empty rectangle.
func (p *Path) AddRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p.Start(toFixedP(x, y))
	p.Line(toFixedP(x+w, y))
	p.Line(toFixedP(x+w, y+h))
	p.Line(toFixedP(x, y+h))
	p.Stop(true)
}

// AddRoundRect adds a closed rectangle with elliptical corners
// of radius rx in the x axis and ry in the y axis.
// Radii are clamped to half the size of the rectangle.
func (p *Path) AddRoundRect(x, y, w, h, rx, ry float64) {
	if w <= 0 || h <= 0 {
		return
	}
	rx, ry = math.Min(math.Abs(rx), w/2), math.Min(math.Abs(ry), h/2)
	if rx == 0 || ry == 0 {
		p.AddRect(x, y, w, h)
		return
	}

	corner := func(cx, cy, start float64) {
		p.addArc(Arc{Cx: cx, Cy: cy, Rx: rx, Ry: ry, Start: start, Delta: math.Pi / 2})
	}

	p.Start(toFixedP(x+rx, y))
	p.Line(toFixedP(x+w-rx, y))
	corner(x+w-rx, y+ry, -math.Pi/2)
	p.Line(toFixedP(x+w, y+h-ry))
	corner(x+w-rx, y+h-ry, 0)
	p.Line(toFixedP(x+rx, y+h))
	corner(x+rx, y+h-ry, math.Pi/2)
	p.Line(toFixedP(x, y+ry))
	corner(x+rx, y+ry, math.Pi)
	p.Stop(true)
}

// AddEllipse adds a closed ellipse centered at (cx, cy).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	p.Start(toFixedP(cx+rx, cy))
	p.addArc(Arc{Cx: cx, Cy: cy, Rx: rx, Ry: ry, Delta: 2 * math.Pi})
	p.Stop(true)
}

// AddPolyline adds the open sub-path joining `points`,
// given as x, y pairs.
func (p *Path) AddPolyline(points [][2]float64) {
	for i, pt := range points {
		if i == 0 {
			p.Start(toFixedP(pt[0], pt[1]))
		} else {
			p.Line(toFixedP(pt[0], pt[1]))
		}
	}
}
