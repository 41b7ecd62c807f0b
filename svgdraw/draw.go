// Given a parsed SVG scene, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"github.com/benoitkugler/svgscene"
	"github.com/benoitkugler/svgscene/svgpath"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge.
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the paint for the current path.
	// `opacity` must be applied on top of the paint alpha.
	SetColor(paint svgscene.Paint, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options svgscene.StrokeStyle)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	// This promise may enable the implementation to avoid duplicating filled and stroked paths
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// Draw paints the scene rooted at `node` into the driver `d`,
// children being painted in document order.
func Draw(node svgscene.Node, d Driver, opacity float64) {
	switch node := node.(type) {
	case *svgscene.Composite:
		for _, child := range node.Children {
			Draw(child, d, opacity)
		}
	case *svgscene.PathNode:
		DrawPath(node, d, opacity)
	}
}

// DrawPath fills then strokes the given path.
func DrawPath(p *svgscene.PathNode, d Driver, opacity float64) {
	willFill, willStroke := p.IsFilled(), p.StrokeStyle != nil && p.Stroke != nil
	if !willFill && !willStroke {
		return
	}
	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(p.UseNonZeroWinding)
		drawOperations(p.Path, filler)
		filler.SetColor(p.Fill, opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(*p.StrokeStyle)
		drawOperations(p.Path, stroker)
		stroker.SetColor(p.Stroke, opacity)
		stroker.Draw()
	}
}

// drawOperations sends the path to `d`, starting a new sub-path
// at the last closing point when segments follow a close operation.
func drawOperations(path svgpath.Path, d Drawer) {
	var (
		first     fixed.Point26_6
		inSubpath bool
	)
	ensureStarted := func() {
		if !inSubpath {
			d.Start(first)
			inSubpath = true
		}
	}
	for _, op := range path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			if inSubpath {
				d.Stop(false)
			}
			first = fixed.Point26_6(op)
			d.Start(first)
			inSubpath = true
		case svgpath.LineTo:
			ensureStarted()
			d.Line(fixed.Point26_6(op))
		case svgpath.QuadTo:
			ensureStarted()
			d.QuadBezier(op[0], op[1])
		case svgpath.CubicTo:
			ensureStarted()
			d.CubeBezier(op[0], op[1], op[2])
		case svgpath.Close:
			if inSubpath {
				d.Stop(true)
				inSubpath = false
			}
		}
	}
	if inSubpath {
		d.Stop(false)
	}
}
