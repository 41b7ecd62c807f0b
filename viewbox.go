package svgscene

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/srwiley/rasterx"
)

// ViewBoxAlign defines values for the alignment of a
// view box in its viewport.
type ViewBoxAlign uint8

const (
	AlignMid ViewBoxAlign = iota // default value
	AlignMin
	AlignMax
)

// AspectRatio is the parsed form of the preserveAspectRatio attribute.
type AspectRatio struct {
	None   bool // stretch to fit, ignoring the alignment
	Slice  bool // fill the viewport, cropping the view box
	AlignX ViewBoxAlign
	AlignY ViewBoxAlign
}

// parseAspectRatio uses case-insensitive substring tests,
// so that unknown tokens are ignored.
func parseAspectRatio(v string) AspectRatio {
	v = strings.ToLower(v)
	if strings.Contains(v, "none") {
		return AspectRatio{None: true}
	}
	var out AspectRatio
	out.Slice = strings.Contains(v, "slice")
	if strings.Contains(v, "xmin") {
		out.AlignX = AlignMin
	} else if strings.Contains(v, "xmax") {
		out.AlignX = AlignMax
	}
	if strings.Contains(v, "ymin") {
		out.AlignY = AlignMin
	} else if strings.Contains(v, "ymax") {
		out.AlignY = AlignMax
	}
	return out
}

func alignOffset(align ViewBoxAlign, available, used float64) float64 {
	switch align {
	case AlignMin:
		return 0
	case AlignMax:
		return available - used
	default:
		return (available - used) / 2
	}
}

// placement returns the transform mapping the view box `vb`
// onto the rectangle (0, 0, width, height).
func (ar AspectRatio) placement(vb svgpath.Rect, width, height float64) rasterx.Matrix2D {
	sx, sy := width/vb.W, height/vb.H
	if ar.None {
		return rasterx.Identity.Scale(sx, sy).Translate(-vb.X, -vb.Y)
	}
	scale := math.Min(sx, sy)
	if ar.Slice {
		scale = math.Max(sx, sy)
	}
	dx := alignOffset(ar.AlignX, width, vb.W*scale)
	dy := alignOffset(ar.AlignY, height, vb.H*scale)
	return rasterx.Identity.Translate(dx, dy).Scale(scale, scale).Translate(-vb.X, -vb.Y)
}

// parseViewBox returns false if the view box is invalid
// or has no area.
func parseViewBox(v string) (svgpath.Rect, bool) {
	nums := svgpath.Numbers(v)
	if len(nums) < 4 {
		return svgpath.Rect{}, false
	}
	vb := svgpath.Rect{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}
	return vb, !vb.Empty()
}
