package svgscene

import (
	"image/color"
	"strings"

	"github.com/beevik/etree"
	"github.com/benoitkugler/svgscene/svgpath"
)

func (s parseState) parsePath(e *etree.Element) Node {
	path := svgpath.ParsePathData(e.SelectAttrValue("d", ""))
	return s.finishShape(e, path)
}

func (s parseState) parseRect(e *etree.Element) Node {
	x, y := s.lengthAttr(e, "x", true), s.lengthAttr(e, "y", false)
	w, h := s.lengthAttr(e, "width", true), s.lengthAttr(e, "height", false)

	rxAttr, ryAttr := e.SelectAttr("rx"), e.SelectAttr("ry")
	var path svgpath.Path
	if rxAttr == nil && ryAttr == nil {
		path.AddRect(x, y, w, h)
	} else {
		var rx, ry float64
		if rxAttr != nil {
			rx = s.length(rxAttr.Value, true)
		}
		if ryAttr != nil {
			ry = s.length(ryAttr.Value, false)
		}
		// a missing radius mirrors the other one
		if rxAttr == nil {
			rx = ry
		} else if ryAttr == nil {
			ry = rx
		}
		path.AddRoundRect(x, y, w, h, rx, ry)
	}
	return s.finishShape(e, path)
}

func (s parseState) parseCircle(e *etree.Element) Node {
	cx, cy := s.lengthAttr(e, "cx", true), s.lengthAttr(e, "cy", false)
	r := s.lengthAttr(e, "r", true)
	var path svgpath.Path
	path.AddEllipse(cx, cy, r, r)
	return s.finishShape(e, path)
}

func (s parseState) parseEllipse(e *etree.Element) Node {
	cx, cy := s.lengthAttr(e, "cx", true), s.lengthAttr(e, "cy", false)
	rx, ry := s.lengthAttr(e, "rx", true), s.lengthAttr(e, "ry", false)
	var path svgpath.Path
	path.AddEllipse(cx, cy, rx, ry)
	return s.finishShape(e, path)
}

func (s parseState) parseLine(e *etree.Element) Node {
	x1, y1 := s.lengthAttr(e, "x1", true), s.lengthAttr(e, "y1", false)
	x2, y2 := s.lengthAttr(e, "x2", true), s.lengthAttr(e, "y2", false)
	var path svgpath.Path
	path.AddPolyline([][2]float64{{x1, y1}, {x2, y2}})
	return s.finishShape(e, path)
}

// parsePolygon handles <polyline> and <polygon>.
// A polyline is only closed if its last point is its first one.
func (s parseState) parsePolygon(e *etree.Element, isPolyline bool) Node {
	sc := svgpath.NewScanner(e.SelectAttrValue("points", ""))
	var points [][2]float64
	for {
		xs, ok := sc.NumberWithUnit()
		if !ok {
			break
		}
		ys, ok := sc.NumberWithUnit()
		if !ok {
			break
		}
		points = append(points, [2]float64{s.length(xs, true), s.length(ys, false)})
	}

	var path svgpath.Path
	path.AddPolyline(points)
	if len(points) > 1 && (!isPolyline || points[0] == points[len(points)-1]) {
		path.Stop(true)
	}
	return s.finishShape(e, path)
}

// finishShape applies the transform and the style of `e` to `path`
// (expressed in the local user space), returning nil for an empty path.
func (s parseState) finishShape(e *etree.Element, path svgpath.Path) Node {
	if len(path) == 0 {
		s.doc.logger.Debug("empty geometry", "element", e.Tag, "id", e.SelectAttrValue("id", ""))
		return nil
	}

	s = s.withTransform(e)
	bounds := path.Bounds() // used by objectBoundingBox gradients

	out := &PathNode{
		Name:              e.SelectAttrValue("id", ""),
		Path:              path.Transform(s.transform),
		UseNonZeroWinding: !strings.EqualFold(strings.TrimSpace(s.styleAttribute(e, "fill-rule", "")), "evenodd"),
	}

	defaultFill := color.NRGBA{}
	if path.HasClosedSubpath() {
		defaultFill = black
	}
	out.Fill = s.resolvePaint(e, s.styleAttribute(e, "fill", ""), s.opacityAttr(e, "fill-opacity"), bounds, defaultFill)

	stroke := strings.TrimSpace(s.styleAttribute(e, "stroke", ""))
	if stroke != "" && !strings.EqualFold(stroke, "none") {
		out.Stroke = s.resolvePaint(e, stroke, s.opacityAttr(e, "stroke-opacity"), bounds, color.NRGBA{})
		out.StrokeStyle = s.strokeStyle(e)
	}
	return out
}
