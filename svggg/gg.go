// Implements a raster backend to render SVG images,
// by wrapping github.com/gogpu/gg.
package svggg

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgscene"
	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/gogpu/gg"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints into a gg.Context. The scene coordinates are
// interpreted in the current transform of the context.
type Renderer struct {
	ctx *gg.Context
	err error // first drawing error
}

// NewRenderer returns a renderer drawing into `ctx`.
func NewRenderer(ctx *gg.Context) *Renderer {
	return &Renderer{ctx: ctx}
}

// Err returns the errors reported by the context while drawing.
func (rd *Renderer) Err() error { return rd.err }

func (rd *Renderer) report(err error) {
	rd.err = errors.Join(rd.err, err)
}

// RenderSceneToImage draws the scene into a new image, whose
// size is the viewport of `root`.
func RenderSceneToImage(root *svgscene.Composite) (image.Image, error) {
	w, h := int(math.Ceil(root.Viewport.W)), int(math.Ceil(root.Viewport.H))
	ctx := gg.NewContext(w, h)
	defer ctx.Close()

	rd := NewRenderer(ctx)
	svgdraw.Draw(root, rd, 1)
	if rd.err != nil {
		return nil, rd.err
	}
	return ctx.Image(), nil
}

// RenderSVGToImage parses the SVG document and renders it.
func RenderSVGToImage(svg io.Reader, opts svgscene.Options) (image.Image, error) {
	root, err := svgscene.ReadScene(svg, opts)
	if err != nil {
		return nil, err
	}
	return RenderSceneToImage(root)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = filler{pather{rd}}
	}
	if willStroke {
		s = stroker{pather{rd}}
	}
	return f, s
}

// pather forwards the path commands to the context
type pather struct {
	*Renderer
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Clear() { p.ctx.ClearPath() }

func (p pather) Start(a fixed.Point26_6) { p.ctx.MoveTo(fixedTof(a)) }

func (p pather) Line(b fixed.Point26_6) { p.ctx.LineTo(fixedTof(b)) }

func (p pather) QuadBezier(b, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.ctx.QuadraticTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.ctx.CubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.ctx.ClosePath()
	}
}

type filler struct {
	pather
}

func (f filler) SetWinding(useNonZeroWinding bool) {
	if useNonZeroWinding {
		f.ctx.SetFillRule(gg.FillRuleNonZero)
	} else {
		f.ctx.SetFillRule(gg.FillRuleEvenOdd)
	}
}

func (f filler) SetColor(paint svgscene.Paint, opacity float64) {
	f.ctx.SetFillBrush(toBrush(paint, opacity))
}

func (f filler) Draw() {
	if err := f.ctx.Fill(); err != nil {
		f.report(err)
	}
}

type stroker struct {
	pather
}

func (s stroker) SetColor(paint svgscene.Paint, opacity float64) {
	s.ctx.SetStrokeBrush(toBrush(paint, opacity))
}

var (
	joinToJoin = [...]gg.LineJoin{
		svgscene.Miter: gg.LineJoinMiter,
		svgscene.Round: gg.LineJoinRound,
		svgscene.Bevel: gg.LineJoinBevel,
	}
	capToCap = [...]gg.LineCap{
		svgscene.ButtCap:   gg.LineCapButt,
		svgscene.RoundCap:  gg.LineCapRound,
		svgscene.SquareCap: gg.LineCapSquare,
	}
)

func (s stroker) SetStrokeOptions(options svgscene.StrokeStyle) {
	s.ctx.SetLineWidth(options.Width)
	s.ctx.SetLineJoin(joinToJoin[options.Join])
	s.ctx.SetLineCap(capToCap[options.Cap])
}

func (s stroker) Draw() {
	if err := s.ctx.Stroke(); err != nil {
		s.report(err)
	}
}

func toRGBA(c color.NRGBA, opacity float64) gg.RGBA {
	out := gg.FromColor(c)
	out.A *= opacity
	return out
}

var spreadToExtend = [...]gg.ExtendMode{
	svgscene.PadSpread:     gg.ExtendPad,
	svgscene.ReflectSpread: gg.ExtendReflect,
	svgscene.RepeatSpread:  gg.ExtendRepeat,
}

// toBrush converts the paint. Gradients are expressed in their own space,
// and evaluated through the inverse of their matrix.
func toBrush(paint svgscene.Paint, opacity float64) gg.Brush {
	switch paint := paint.(type) {
	case svgscene.PlainColor:
		return gg.Solid(toRGBA(paint.NRGBA, opacity))
	case svgscene.Gradient:
		var inner gg.Brush
		if paint.IsRadial {
			radial := gg.NewRadialGradientBrush(paint.Point1.X, paint.Point1.Y, 0, paint.Radius()).
				SetFocus(paint.Focus.X, paint.Focus.Y).
				SetExtend(spreadToExtend[paint.Spread])
			for _, stop := range paint.Stops {
				radial.AddColorStop(stop.Offset, toRGBA(stop.Color, opacity))
			}
			inner = radial
		} else {
			linear := gg.NewLinearGradientBrush(paint.Point1.X, paint.Point1.Y, paint.Point2.X, paint.Point2.Y).
				SetExtend(spreadToExtend[paint.Spread])
			for _, stop := range paint.Stops {
				linear.AddColorStop(stop.Offset, toRGBA(stop.Color, opacity))
			}
			inner = linear
		}
		inv := paint.Matrix.Invert()
		return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
			return inner.ColorAt(inv.Transform(x, y))
		})
	default:
		return gg.Solid(gg.Transparent)
	}
}
