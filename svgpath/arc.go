package svgpath

import (
	"math"
)

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// Arc is the center parameterization of an elliptical arc.
// Angles are in radians, measured in the ellipse frame.
type Arc struct {
	Cx, Cy   float64
	Rx, Ry   float64 // possibly enlarged so that the arc exists
	Rotation float64 // x-axis rotation
	Start    float64
	Delta    float64 // signed sweep
}

// EndpointToCenter converts the endpoint parameterization used in path data
// to the center one, following the SVG implementation notes (F.6.5 and F.6.6).
// Radii too small to join the two points are scaled up uniformly.
// The start and end points are expected to be distinct and the radii non zero.
// A true `sweep` yields a non negative Delta, a false one a non positive Delta.
func EndpointToCenter(x1, y1, x2, y2, rotation float64, largeArc, sweep bool, rx, ry float64) Arc {
	rx, ry = math.Abs(rx), math.Abs(ry)
	midX := (x1 - x2) * 0.5
	midY := (y1 - y2) * 0.5

	cosA, sinA := math.Cos(rotation), math.Sin(rotation)
	xp := cosA*midX + sinA*midY
	yp := cosA*midY - sinA*midX
	xp2, yp2 := xp*xp, yp*yp
	rx2, ry2 := rx*rx, ry*ry

	var c float64
	if s := xp2/rx2 + yp2/ry2; s <= 1 {
		c = math.Sqrt(math.Max(0, (rx2*ry2-rx2*yp2-ry2*xp2)/(rx2*yp2+ry2*xp2)))
		if largeArc == sweep {
			c = -c
		}
	} else {
		s2 := math.Sqrt(s)
		rx *= s2
		ry *= s2
	}

	cpx := rx * yp / ry * c
	cpy := -ry * xp / rx * c

	arc := Arc{Rx: rx, Ry: ry, Rotation: rotation}
	arc.Cx = (x1+x2)*0.5 + cosA*cpx - sinA*cpy
	arc.Cy = (y1+y2)*0.5 + sinA*cpx + cosA*cpy

	ux, uy := (xp-cpx)/rx, (yp-cpy)/ry
	vx, vy := (-xp-cpx)/rx, (-yp-cpy)/ry

	length := math.Hypot(ux, uy)
	arc.Start = math.Acos(clamp(ux/length, -1, 1))
	if uy < 0 {
		arc.Start = -arc.Start
	}

	delta := math.Acos(clamp((ux*vx+uy*vy)/(length*math.Hypot(vx, vy)), -1, 1))
	if ux*vy-uy*vx < 0 {
		delta = -delta
	}
	if sweep {
		if delta < 0 {
			delta += 2 * math.Pi
		}
	} else if delta > 0 {
		delta -= 2 * math.Pi
	}
	arc.Delta = math.Mod(delta, 2*math.Pi)
	return arc
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PointAt returns the point of the ellipse at parametric angle `eta`.
func (a Arc) PointAt(eta float64) (x, y float64) {
	sinTheta, cosTheta := math.Sin(a.Rotation), math.Cos(a.Rotation)
	return ellipsePointAt(a.Rx, a.Ry, sinTheta, cosTheta, eta, a.Cx, a.Cy)
}

// addArc appends the arc to the path, as a sequence of cubic bezier curves.
// The current point is expected to be the start of the arc.
// It returns the last point added.
func (p *Path) addArc(a Arc) (lx, ly float64) {
	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(a.Delta)/maxDx) + 1
	dEta := a.Delta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	sinTheta, cosTheta := math.Sin(a.Rotation), math.Cos(a.Rotation)
	lx, ly = ellipsePointAt(a.Rx, a.Ry, sinTheta, cosTheta, a.Start, a.Cx, a.Cy)
	ldx, ldy := ellipsePrime(a.Rx, a.Ry, sinTheta, cosTheta, a.Start)
	for i := 1; i <= segs; i++ {
		eta := a.Start + dEta*float64(i)
		px, py := ellipsePointAt(a.Rx, a.Ry, sinTheta, cosTheta, eta, a.Cx, a.Cy)
		dx, dy := ellipsePrime(a.Rx, a.Ry, sinTheta, cosTheta, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return lx, ly
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}
