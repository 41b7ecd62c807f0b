package svgscene

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/svgscene/svgpath"
	tp "github.com/xlab/treeprint"
)

// Dump returns a human readable description of the scene,
// one line per node.
func (c *Composite) Dump() string {
	p := tp.New()
	p.SetValue(c.describe())
	for _, child := range c.Children {
		dumpNode(p, child)
	}
	return p.String()
}

func dumpNode(p tp.Tree, node Node) {
	switch node := node.(type) {
	case *PathNode:
		p.AddNode(node.describe())
	case *Composite:
		branch := p.AddBranch(node.describe())
		for _, child := range node.Children {
			dumpNode(branch, child)
		}
	}
}

func formatRect(r svgpath.Rect) string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.W, r.H)
}

func formatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func describePaint(p Paint) string {
	switch p := p.(type) {
	case PlainColor:
		return formatColor(p.NRGBA)
	case Gradient:
		kind := "linear"
		if p.IsRadial {
			kind = "radial"
		}
		return fmt.Sprintf("%s(%d stops, %s)", kind, len(p.Stops), p.Spread)
	default:
		return "none"
	}
}

func (c *Composite) describe() string {
	s := fmt.Sprintf("group %q bounds=%s", c.Name, formatRect(c.Bounds))
	if !c.Viewport.Empty() {
		s += " viewport=" + formatRect(c.Viewport)
	}
	return s
}

func (p *PathNode) describe() string {
	s := fmt.Sprintf("path %q ops=%d fill=%s", p.Name, len(p.Path), describePaint(p.Fill))
	if !p.UseNonZeroWinding {
		s += " evenodd"
	}
	if p.StrokeStyle != nil {
		s += fmt.Sprintf(" stroke=%s width=%g join=%s cap=%s", describePaint(p.Stroke),
			p.StrokeStyle.Width, p.StrokeStyle.Join, p.StrokeStyle.Cap)
	}
	return s
}
