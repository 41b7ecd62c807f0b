package svgscene

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/benoitkugler/svgscene/svgpath"
)

var black = color.NRGBA{A: 0xff}

// opacityAttr returns the opacity resolved from `opacity` and
// `name` (fill-opacity or stroke-opacity), clamped to [0, 1].
func (s *parseState) opacityAttr(e *etree.Element, name string) float64 {
	opacity := 1.
	if v := s.styleAttribute(e, "opacity", ""); v != "" {
		f, _ := parseLeadingFloat(v)
		opacity = clampUnit(f)
	}
	if v := s.styleAttribute(e, name, ""); v != "" {
		f, _ := parseLeadingFloat(v)
		opacity *= clampUnit(f)
	}
	return opacity
}

// resolvePaint builds the paint described by `value`, the resolved
// fill or stroke attribute. `bounds` is the bounding box of the
// shape, in user space, used by gradients with objectBoundingBox units.
func (s *parseState) resolvePaint(e *etree.Element, value string, opacity float64, bounds svgpath.Rect, def color.NRGBA) Paint {
	value = strings.TrimSpace(value)
	if len(value) >= 3 && strings.EqualFold(value[:3], "url") {
		id := urlID(value)
		ref := findElementForID(s.doc.root, id)
		if ref != nil && (ref.Tag == "linearGradient" || ref.Tag == "radialGradient") {
			if paint, ok := s.gradient(ref, opacity, bounds); ok {
				return paint
			}
		} else {
			s.doc.logger.Warn("unresolved paint reference", "id", id, "element", e.Tag)
		}
		// fallback color, as in url(#id) red
		if end := strings.LastIndexByte(value, ')'); end >= 0 {
			value = value[end+1:]
		}
	}

	if strings.EqualFold(value, "none") {
		return Transparent
	}

	return PlainColor{withOpacity(parseColor(value, def), opacity)}
}

// gradientChain returns `g` followed by the gradients it references,
// through xlink:href. It returns false if the references form a cycle.
func (s *parseState) gradientChain(g *etree.Element) ([]*etree.Element, bool) {
	chain := []*etree.Element{g}
	visited := map[*etree.Element]bool{g: true}
	for current := g; ; {
		next := s.doc.linkedElement(current)
		if next == nil || (next.Tag != "linearGradient" && next.Tag != "radialGradient") {
			break
		}
		if visited[next] {
			s.doc.logger.Warn("cyclic gradient reference", "id", next.SelectAttrValue("id", ""))
			return nil, false
		}
		visited[next] = true
		chain = append(chain, next)
		current = next
	}
	return chain, true
}

// chainAttr returns the first definition of `name` along the chain
func chainAttr(chain []*etree.Element, name, def string) string {
	for _, g := range chain {
		if a := g.SelectAttr(name); a != nil {
			return a.Value
		}
	}
	return def
}

// stops reads the <stop> children of `g`
func (s *parseState) stops(g *etree.Element) []GradStop {
	var out []GradStop
	for _, stop := range g.SelectElements("stop") {
		col := parseColor(s.styleAttribute(stop, "stop-color", ""), black)
		opacity, _ := parseLeadingFloat(s.styleAttribute(stop, "stop-opacity", "1"))
		col = withOpacity(col, opacity)

		offset := readFraction(stop.SelectAttrValue("offset", ""), 0)
		out = append(out, GradStop{Offset: clampUnit(offset), Color: col})
	}
	return out
}

// gradient resolves the linear or radial gradient element `g`.
// The result is a Gradient, or a PlainColor for degenerate linear gradients.
// It returns false for cyclic references.
func (s *parseState) gradient(g *etree.Element, opacity float64, bounds svgpath.Rect) (Paint, bool) {
	chain, ok := s.gradientChain(g)
	if !ok {
		return nil, false
	}

	// stops of the referenced gradients come first
	var stops []GradStop
	for i := len(chain) - 1; i >= 0; i-- {
		stops = append(stops, s.stops(chain[i])...)
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	if len(stops) != 0 {
		first, last := stops[0], stops[len(stops)-1]
		stops = append([]GradStop{{Offset: 0, Color: first.Color}}, stops...)
		stops = append(stops, GradStop{Offset: 1, Color: last.Color})
	} else {
		stops = []GradStop{{Offset: 0, Color: black}, {Offset: 1, Color: black}}
	}
	for i := range stops {
		stops[i].Color = withOpacity(stops[i].Color, opacity)
	}

	out := Gradient{IsRadial: g.Tag == "radialGradient", Stops: stops}

	gw, gh := s.viewBoxW, s.viewBoxH
	var dx, dy float64
	userSpace := strings.EqualFold(strings.TrimSpace(chainAttr(chain, "gradientUnits", "")), "userSpaceOnUse")
	if !userSpace {
		dx, dy, gw, gh = bounds.X, bounds.Y, bounds.W, bounds.H
	}
	coord := func(name, def string, horizontal bool) float64 {
		v := chainAttr(chain, name, def)
		origin, size := dx, gw
		if !horizontal {
			origin, size = dy, gh
		}
		if userSpace {
			return origin + coordLength(v, size)
		}
		return origin + size*coordLength(v, 1)
	}

	if out.IsRadial {
		out.Point1 = Point{coord("cx", "50%", true), coord("cy", "50%", false)}
		var radius float64
		if userSpace {
			radius = coordLength(chainAttr(chain, "r", "50%"), gw)
		} else {
			radius = gw * coordLength(chainAttr(chain, "r", "50%"), 1)
		}
		out.Point2 = Point{out.Point1.X + radius, out.Point1.Y}
		out.Focus = out.Point1
		if chainAttr(chain, "fx", "") != "" {
			out.Focus.X = coord("fx", "", true)
		}
		if chainAttr(chain, "fy", "") != "" {
			out.Focus.Y = coord("fy", "", false)
		}
	} else {
		out.Point1 = Point{coord("x1", "0%", true), coord("y1", "0%", false)}
		out.Point2 = Point{coord("x2", "100%", true), coord("y2", "0%", false)}
		if out.Point1 == out.Point2 {
			return PlainColor{out.LastColor()}, true
		}
	}

	switch strings.TrimSpace(chainAttr(chain, "spreadMethod", "")) {
	case "reflect":
		out.Spread = ReflectSpread
	case "repeat":
		out.Spread = RepeatSpread
	}

	out.Matrix = s.transform.Mult(parseTransform(chainAttr(chain, "gradientTransform", "")))
	return out, true
}

// strokeStyle resolves the stroke parameters of `e`.
// The width is expressed in root coordinates.
func (s *parseState) strokeStyle(e *etree.Element) *StrokeStyle {
	out := &StrokeStyle{Width: 1}

	switch strings.ToLower(strings.TrimSpace(s.styleAttribute(e, "stroke-linejoin", ""))) {
	case "round":
		out.Join = Round
	case "bevel":
		out.Join = Bevel
	}
	switch strings.ToLower(strings.TrimSpace(s.styleAttribute(e, "stroke-linecap", ""))) {
	case "round":
		out.Cap = RoundCap
	case "square":
		out.Cap = SquareCap
	}

	if width := s.styleAttribute(e, "stroke-width", ""); width != "" {
		w := s.length(width, true)
		ox, oy := s.transform.Transform(0, 0)
		x, y := s.transform.Transform(w, 0)
		out.Width = math.Hypot(x-ox, y-oy)
	}
	return out
}
