package svgscene

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/srwiley/rasterx"
)

// readTransformAttr returns m1 followed by the transformation `k`
// with arguments `points`. Malformed transformations are ignored.
func readTransformAttr(m1 rasterx.Matrix2D, k string, points []float64) rasterx.Matrix2D {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else if ln >= 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln >= 2 {
			m1 = m1.Translate(points[0], points[1])
		}
	case "skewx":
		if ln >= 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		}
	case "skewy":
		if ln >= 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln >= 2 {
			m1 = m1.Scale(points[0], points[1])
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(rasterx.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5],
			})
		}
	}
	return m1
}

// parseTransform reads a transform list. The resulting matrix
// applies the rightmost transformation first.
func parseTransform(v string) rasterx.Matrix2D {
	m1 := rasterx.Identity
	for {
		open := strings.IndexByte(v, '(')
		if open < 0 {
			break
		}
		end := strings.IndexByte(v[open:], ')')
		if end < 0 {
			break
		}
		name := strings.ToLower(strings.Trim(v[:open], " \t\n\r,"))
		points := svgpath.Numbers(v[open+1 : open+end])
		m1 = readTransformAttr(m1, name, points)
		v = v[open+end+1:]
	}
	return m1
}
