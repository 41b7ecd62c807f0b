// Implements a PDF backend to render SVG images,
// by wrapping codeberg.org/go-pdf/fpdf.
package svgpdf

import (
	"image/color"
	"io"
	"math"

	"codeberg.org/go-pdf/fpdf"
	"github.com/benoitkugler/svgscene"
	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/benoitkugler/svgscene/svgpath"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

// Renderer draws into a PDF page, using one
// PDF unit per SVG user unit.
type Renderer struct {
	pdf *fpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *fpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// RenderSceneToPDF writes a one page PDF document, whose
// page size is the viewport of `root`.
func RenderSceneToPDF(root *svgscene.Composite, w io.Writer) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: root.Viewport.W, Ht: root.Viewport.H},
	})
	pdf.AddPage()
	svgdraw.Draw(root, NewRenderer(pdf), 1)
	return pdf.Output(w)
}

// RenderSVGToPDF parses the SVG document and renders it.
func RenderSVGToPDF(svg io.Reader, w io.Writer, opts svgscene.Options) error {
	root, err := svgscene.ReadScene(svg, opts)
	if err != nil {
		return err
	}
	return RenderSceneToPDF(root, w)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

// pather records the path commands, shared by the filler and the stroker.
// The path is only written to the PDF when drawing, since
// gradient fills must set up a clipping state first.
type pather struct {
	pdf  *fpdf.Fpdf
	path svgpath.Path
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
	gradient          *svgscene.Gradient // nil for plain colors
	opacity           float64
}

// implements the stroking operation
type stroker struct {
	pather
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() { p.path.Clear() }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) QuadBezier(b, c fixed.Point26_6) { p.path.QuadBezier(b, c) }

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) { p.path.CubeBezier(b, c, d) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

// writePath outputs the recorded path
func (p *pather) writePath() {
	for _, op := range p.path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			p.pdf.MoveTo(fixedTof(fixed.Point26_6(op)))
		case svgpath.LineTo:
			p.pdf.LineTo(fixedTof(fixed.Point26_6(op)))
		case svgpath.QuadTo:
			cx, cy := fixedTof(op[0])
			x, y := fixedTof(op[1])
			p.pdf.CurveTo(cx, cy, x, y)
		case svgpath.CubicTo:
			cx0, cy0 := fixedTof(op[0])
			cx1, cy1 := fixedTof(op[1])
			x, y := fixedTof(op[2])
			p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
		case svgpath.Close:
			p.pdf.ClosePath()
		}
	}
}

// splitAlpha returns the color components and the opacity of `c`
func splitAlpha(c color.NRGBA) (r, g, b int, opacity float64) {
	return int(c.R), int(c.G), int(c.B), float64(c.A) / 0xff
}

func (f *filler) SetColor(paint svgscene.Paint, opacity float64) {
	f.gradient = nil
	switch paint := paint.(type) {
	case svgscene.PlainColor:
		r, g, b, alpha := splitAlpha(paint.NRGBA)
		f.pdf.SetFillColor(r, g, b)
		opacity *= alpha
	case svgscene.Gradient:
		f.gradient = &paint
	}
	f.opacity = opacity
	f.pdf.SetAlpha(opacity, "")
}

func (f *filler) Draw() {
	if f.gradient != nil {
		f.drawGradient()
		return
	}
	f.writePath()
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

// drawGradient clips to the path and paints a two colors
// gradient, blending the first and last stops.
func (f *filler) drawGradient() {
	bounds := f.path.Bounds()
	if bounds.Empty() {
		return
	}
	grad := f.gradient
	first, last := grad.Stops[0].Color, grad.LastColor()
	r1, g1, b1, a1 := splitAlpha(first)
	r2, g2, b2, a2 := splitAlpha(last)
	f.pdf.SetAlpha(f.opacity*(a1+a2)/2, "")

	// normalized coordinates, with the origin at the lower left corner
	normalize := func(x, y float64) (float64, float64) {
		x, y = grad.Matrix.Transform(x, y)
		return (x - bounds.X) / bounds.W, (bounds.Y + bounds.H - y) / bounds.H
	}

	f.pdf.ClipRect(bounds.X, bounds.Y, bounds.W, bounds.H, false)
	f.writePath()
	clipOp := "W* n"
	if f.useNonZeroWinding {
		clipOp = "W n"
	}
	f.pdf.DrawPath(clipOp)

	x1, y1 := normalize(grad.Point1.X, grad.Point1.Y)
	if grad.IsRadial {
		fx, fy := normalize(grad.Focus.X, grad.Focus.Y)
		x2, y2 := normalize(grad.Point2.X, grad.Point2.Y)
		// the radius is measured along the transformed x axis
		f.pdf.RadialGradient(bounds.X, bounds.Y, bounds.W, bounds.H, r1, g1, b1, r2, g2, b2,
			fx, fy, x1, y1, math.Hypot(x2-x1, y2-y1))
	} else {
		x2, y2 := normalize(grad.Point2.X, grad.Point2.Y)
		f.pdf.LinearGradient(bounds.X, bounds.Y, bounds.W, bounds.H, r1, g1, b1, r2, g2, b2,
			x1, y1, x2, y2)
	}
	f.pdf.ClipEnd()
}

// SetColor uses the last stop color for gradients,
// which are not supported when stroking.
func (s *stroker) SetColor(paint svgscene.Paint, opacity float64) {
	var c color.NRGBA
	switch paint := paint.(type) {
	case svgscene.PlainColor:
		c = paint.NRGBA
	case svgscene.Gradient:
		c = paint.LastColor()
	}
	r, g, b, alpha := splitAlpha(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*alpha, "")
}

var (
	joinStyles = [...]string{
		svgscene.Miter: "miter",
		svgscene.Round: "round",
		svgscene.Bevel: "bevel",
	}
	capStyles = [...]string{
		svgscene.ButtCap:   "butt",
		svgscene.RoundCap:  "round",
		svgscene.SquareCap: "square",
	}
)

func (s *stroker) SetStrokeOptions(options svgscene.StrokeStyle) {
	s.pdf.SetLineWidth(options.Width)
	s.pdf.SetLineJoinStyle(joinStyles[options.Join])
	s.pdf.SetLineCapStyle(capStyles[options.Cap])
}

func (s *stroker) Draw() {
	s.writePath()
	s.pdf.DrawPath("D")
}
