// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgscene"
	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer implements svgdraw.Driver
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterSceneToImage uses a ScannerGV instance to render the
// scene into an image of the size of its viewport.
func RasterSceneToImage(root *svgscene.Composite) *image.RGBA {
	w, h := int(math.Ceil(root.Viewport.W)), int(math.Ceil(root.Viewport.H))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	svgdraw.Draw(root, renderer, 1.0)
	return img
}

// RasterSVGToImage parses the SVG document and renders it.
func RasterSVGToImage(svg io.Reader, opts svgscene.Options) (*image.RGBA, error) {
	root, err := svgscene.ReadScene(svg, opts)
	if err != nil {
		return nil, err
	}
	return RasterSceneToImage(root), nil
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(paint svgscene.Paint, opacity float64) {
	setColorFromPaint(paint, opacity, f.Scanner)
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(paint svgscene.Paint, opacity float64) {
	setColorFromPaint(paint, opacity, s.Scanner)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgscene.Round: rasterx.Round,
		svgscene.Bevel: rasterx.Bevel,
		svgscene.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgscene.ButtCap:   rasterx.ButtCap,
		svgscene.SquareCap: rasterx.SquareCap,
		svgscene.RoundCap:  rasterx.RoundCap,
	}
)

// miterLimit is the SVG default value
const miterLimit = 4

func (s stroker) SetStrokeOptions(options svgscene.StrokeStyle) {
	s.SetStroke(
		fixed.Int26_6(options.Width*64), fixed.Int26_6(miterLimit*64),
		capToFunc[options.Cap], capToFunc[options.Cap], rasterx.FlatGap,
		joinToJoin[options.Join], nil, 0,
	)
}

// splitAlpha returns the opaque version of `c`, and its opacity.
func splitAlpha(c color.NRGBA) (color.NRGBA, float64) {
	opacity := float64(c.A) / 0xff
	c.A = 0xff
	return c, opacity
}

// toRasterxGradient uses user space coordinates, since the
// bounding box has already been resolved when parsing.
func toRasterxGradient(grad svgscene.Gradient) rasterx.Gradient {
	var points [5]float64
	if grad.IsRadial {
		points = [5]float64{grad.Point1.X, grad.Point1.Y, grad.Focus.X, grad.Focus.Y, grad.Radius()}
	} else {
		points = [5]float64{grad.Point1.X, grad.Point1.Y, grad.Point2.X, grad.Point2.Y}
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i, stop := range grad.Stops {
		c, opacity := splitAlpha(stop.Color)
		stops[i] = rasterx.GradStop{StopColor: c, Offset: stop.Offset, Opacity: opacity}
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Matrix:   grad.Matrix,
		Spread:   rasterx.SpreadMethod(grad.Spread),
		Units:    rasterx.UserSpaceOnUse,
		IsRadial: grad.IsRadial,
	}
}

// resolve gradient color
func setColorFromPaint(paint svgscene.Paint, opacity float64, scanner rasterx.Scanner) {
	switch paint := paint.(type) {
	case svgscene.PlainColor:
		c, alpha := splitAlpha(paint.NRGBA)
		scanner.SetColor(rasterx.ApplyOpacity(c, alpha*opacity))
	case svgscene.Gradient:
		rasterxGradient := toRasterxGradient(paint)
		scanner.SetColor(rasterxGradient.GetColorFunction(opacity))
	}
}
