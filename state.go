package svgscene

import (
	"log/slog"

	"github.com/beevik/etree"
	"github.com/srwiley/rasterx"
)

// document is shared, read-only, by all the parse states
type document struct {
	root     *etree.Element // used for id lookups
	logger   *slog.Logger
	maxDepth int
}

// parseState is the rendering state inherited by the children
// of an element. It is always passed by value: an element modifies
// its own copy, never the one of its parent or siblings.
type parseState struct {
	doc *document

	transform rasterx.Matrix2D // accumulated user space to root transform

	x, y, width, height float64 // current viewport
	viewBoxW, viewBoxH  float64 // size used to resolve percentages, 0 if not set

	css string // accumulated <style> text, latest first

	depth int
}

func newParseState(doc *document) parseState {
	return parseState{
		doc:       doc,
		transform: rasterx.Identity,
		width:     512,
		height:    512,
	}
}

// withTransform returns a copy of the state where the `transform` attribute
// of `e` is applied before the accumulated transform.
func (s parseState) withTransform(e *etree.Element) parseState {
	if a := e.SelectAttr("transform"); a != nil {
		s.transform = s.transform.Mult(parseTransform(a.Value))
	}
	return s
}

// length resolves a length in the horizontal or vertical direction
func (s *parseState) length(v string, horizontal bool) float64 {
	if horizontal {
		return coordLength(v, s.viewBoxW)
	}
	return coordLength(v, s.viewBoxH)
}

// lengthAttr resolves the attribute `name` of `e` as a length,
// 0 if missing.
func (s *parseState) lengthAttr(e *etree.Element, name string, horizontal bool) float64 {
	return s.length(e.SelectAttrValue(name, ""), horizontal)
}
