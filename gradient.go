package svgscene

import (
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
)

// Paint is either a PlainColor or a Gradient.
type Paint interface {
	isPaint()
}

// PlainColor is a uniform paint. A zero alpha means transparent.
type PlainColor struct {
	color.NRGBA
}

// NewPlainColor returns a PlainColor from its components.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{color.NRGBA{R: r, G: g, B: b, A: a}}
}

// Transparent is used as absent fill.
var Transparent = PlainColor{}

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func (s SpreadMethod) String() string {
	switch s {
	case ReflectSpread:
		return "reflect"
	case RepeatSpread:
		return "repeat"
	default:
		return "pad"
	}
}

// GradStop represents a stop of a gradient. The opacity is
// stored in the color alpha.
type GradStop struct {
	Offset float64 // in [0, 1]
	Color  color.NRGBA
}

// Point is a location in user space.
type Point struct{ X, Y float64 }

// Gradient holds a description of a linear or radial gradient.
// Points are expressed in gradient space, which is mapped to root
// coordinates by Matrix.
type Gradient struct {
	IsRadial bool
	// Point1 is the start point of a linear gradient, or
	// the center of a radial one.
	Point1 Point
	// Point2 is the end point of a linear gradient.
	// For radial gradients, Point2 is Point1 + (r, 0).
	Point2 Point
	// Focus is the focal point of radial gradients.
	Focus Point
	// Stops has at least two elements, the first at 0 and
	// the last at 1.
	Stops  []GradStop
	Spread SpreadMethod
	Matrix rasterx.Matrix2D
}

// Radius returns the radius of a radial gradient.
func (g Gradient) Radius() float64 {
	return math.Hypot(g.Point2.X-g.Point1.X, g.Point2.Y-g.Point1.Y)
}

// LastColor returns the color of the last stop.
func (g Gradient) LastColor() color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	return g.Stops[len(g.Stops)-1].Color
}

func (PlainColor) isPaint() {}
func (Gradient) isPaint()   {}
