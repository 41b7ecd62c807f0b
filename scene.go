// Provides parsing of SVG documents into a scene:
// a tree of groups (Composite) whose leaves are filled and stroked
// paths (PathNode), with coordinates already transformed.
// The scene can then be consumed by painting drivers,
// see for example svgscene/svgraster or svgscene/svgpdf .
package svgscene

import (
	"github.com/benoitkugler/svgscene/svgpath"
)

// Node is an element of the scene, either
// a *Composite or a *PathNode.
type Node interface {
	// Extent returns the bounding box of the node geometry.
	Extent() svgpath.Rect

	isNode()
}

// Composite groups nodes, as produced by
// <svg> and <g> elements.
type Composite struct {
	Name     string
	Children []Node
	// Bounds is the union of the children extents.
	Bounds svgpath.Rect
	// Viewport is the resolved x, y, width and height
	// of <svg> elements, and is empty for groups.
	Viewport svgpath.Rect
}

// PathNode is a painted path.
type PathNode struct {
	Name string
	// Path is expressed in the coordinates of the root element,
	// all the transforms being applied.
	Path              svgpath.Path
	UseNonZeroWinding bool

	// Fill is never nil. A transparent color means no fill.
	Fill Paint
	// Stroke is nil when the path is not stroked.
	Stroke Paint
	// StrokeStyle is nil when the path is not stroked.
	StrokeStyle *StrokeStyle
}

func (*Composite) isNode() {}
func (*PathNode) isNode()  {}

func (c *Composite) Extent() svgpath.Rect { return c.Bounds }
func (p *PathNode) Extent() svgpath.Rect  { return p.Path.Bounds() }

// resetBounds recomputes the bounds from the children.
func (c *Composite) resetBounds() {
	c.Bounds = svgpath.Rect{}
	for _, child := range c.Children {
		c.Bounds = c.Bounds.Union(child.Extent())
	}
}

// Paths returns all the leaves of the tree, in painting order.
func (c *Composite) Paths() []*PathNode {
	var out []*PathNode
	for _, child := range c.Children {
		switch child := child.(type) {
		case *PathNode:
			out = append(out, child)
		case *Composite:
			out = append(out, child.Paths()...)
		}
	}
	return out
}

// IsFilled returns true if the fill paint is visible.
func (p *PathNode) IsFilled() bool {
	if c, ok := p.Fill.(PlainColor); ok {
		return c.A != 0
	}
	return p.Fill != nil
}

// StrokeStyle defines the line parameters used to stroke a path.
type StrokeStyle struct {
	Width float64 // in root coordinates
	Join  JoinMode
	Cap   CapMode
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Miter JoinMode = iota // default value
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota // default value
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}
