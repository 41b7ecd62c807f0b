package svgscene

import (
	"strconv"

	"github.com/beevik/etree"
)

// ParseRoot builds the scene described by the <svg> element `root`.
// Malformed content never fails: it is skipped or replaced by default values.
// The only error is ErrNotSVG, returned if `root` is not an <svg> element.
func ParseRoot(root *etree.Element, opts Options) (*Composite, error) {
	if root == nil || root.Tag != "svg" {
		return nil, ErrNotSVG
	}
	doc := &document{root: root, logger: opts.logger(), maxDepth: opts.MaxDepth}
	state := newParseState(doc)
	return state.parseSVG(root), nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// parseSVG handles the root and nested <svg> elements.
func (s parseState) parseSVG(e *etree.Element) *Composite {
	out := &Composite{Name: e.SelectAttrValue("id", "")}

	ns := s.withTransform(e)

	// percentages of the root element refer to the default viewport
	ref := s
	if ref.viewBoxW == 0 {
		ref.viewBoxW = s.width
	}
	if ref.viewBoxH == 0 {
		ref.viewBoxH = s.height
	}
	ns.x = ref.length(e.SelectAttrValue("x", formatFloat(s.x)), true)
	ns.y = ref.length(e.SelectAttrValue("y", formatFloat(s.y)), false)
	ns.width = ref.length(e.SelectAttrValue("width", formatFloat(s.width)), true)
	ns.height = ref.length(e.SelectAttrValue("height", formatFloat(s.height)), false)

	if a := e.SelectAttr("viewBox"); a != nil {
		if vb, ok := parseViewBox(a.Value); ok {
			ns.viewBoxW, ns.viewBoxH = vb.W, vb.H
			ar := parseAspectRatio(e.SelectAttrValue("preserveAspectRatio", ""))
			ns.transform = ns.transform.Mult(ar.placement(vb, ns.width, ns.height))
		} else {
			s.doc.logger.Warn("invalid viewBox", "value", a.Value)
		}
	} else {
		if s.viewBoxW == 0 {
			ns.viewBoxW = ns.width
		}
		if s.viewBoxH == 0 {
			ns.viewBoxH = ns.height
		}
	}
	out.Viewport.X, out.Viewport.Y = ns.x, ns.y
	out.Viewport.W, out.Viewport.H = ns.width, ns.height

	ns.parseChildren(e, out)
	return out
}

// parseGroup handles <g> elements
func (s parseState) parseGroup(e *etree.Element) *Composite {
	out := &Composite{Name: e.SelectAttrValue("id", "")}
	s.withTransform(e).parseChildren(e, out)
	return out
}

// parseChildren appends the nodes built from the children of `e` to `out`
// and updates its bounds.
func (s parseState) parseChildren(e *etree.Element, out *Composite) {
	defer out.resetBounds()

	if s.doc.maxDepth > 0 && s.depth >= s.doc.maxDepth {
		s.doc.logger.Warn("maximum depth reached, dropping children", "element", e.Tag, "depth", s.depth)
		return
	}
	s.depth++

	for _, child := range e.ChildElements() {
		var node Node
		switch child.Tag {
		case "g":
			node = s.parseGroup(child)
		case "svg":
			node = s.parseSVG(child)
		case "path":
			node = s.parsePath(child)
		case "rect":
			node = s.parseRect(child)
		case "circle":
			node = s.parseCircle(child)
		case "ellipse":
			node = s.parseEllipse(child)
		case "line":
			node = s.parseLine(child)
		case "polyline":
			node = s.parsePolygon(child, true)
		case "polygon":
			node = s.parsePolygon(child, false)
		case "switch":
			if g := child.SelectElement("g"); g != nil {
				node = s.parseGroup(g)
			}
		case "style":
			// visible to the following siblings and their children
			s.css = textContent(child) + "\n" + s.css
		case "text":
			s.doc.logger.Debug("text is not supported")
		default:
			s.doc.logger.Debug("ignored element", "tag", child.Tag)
		}
		if node != nil {
			out.Children = append(out.Children, node)
		}
	}
}
