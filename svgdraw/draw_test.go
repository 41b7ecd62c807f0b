package svgdraw

import (
	"fmt"
	"strings"
	"testing"

	"github.com/benoitkugler/svgscene"
	"github.com/benoitkugler/svgscene/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// recorder logs the calls it receives
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) add(format string, args ...interface{}) {
	*r.log = append(*r.log, r.name+" "+fmt.Sprintf(format, args...))
}

func (r recorder) Clear()                          { r.add("clear") }
func (r recorder) Start(a fixed.Point26_6)         { r.add("start %d,%d", a.X.Round(), a.Y.Round()) }
func (r recorder) Line(b fixed.Point26_6)          { r.add("line %d,%d", b.X.Round(), b.Y.Round()) }
func (r recorder) QuadBezier(b, c fixed.Point26_6) { r.add("quad %d,%d", c.X.Round(), c.Y.Round()) }
func (r recorder) CubeBezier(b, c, d fixed.Point26_6) {
	r.add("cube %d,%d", d.X.Round(), d.Y.Round())
}
func (r recorder) Stop(closeLoop bool) { r.add("stop %v", closeLoop) }
func (r recorder) SetColor(paint svgscene.Paint, opacity float64) {
	r.add("color %v %g", paint, opacity)
}
func (r recorder) Draw()                                         { r.add("draw") }
func (r recorder) SetWinding(useNonZeroWinding bool)             { r.add("winding %v", useNonZeroWinding) }
func (r recorder) SetStrokeOptions(options svgscene.StrokeStyle) { r.add("width %g", options.Width) }

type recordingDriver struct {
	log   []string
	setup [][2]bool
}

func (d *recordingDriver) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	d.setup = append(d.setup, [2]bool{willFill, willStroke})
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = recorder{"fill", &d.log}
	}
	if willStroke {
		s = recorder{"stroke", &d.log}
	}
	return f, s
}

func (d *recordingDriver) filter(prefix string) []string {
	var out []string
	for _, l := range d.log {
		if strings.HasPrefix(l, prefix) {
			out = append(out, strings.TrimPrefix(l, prefix+" "))
		}
	}
	return out
}

func TestDrawOperations(t *testing.T) {
	var d recordingDriver
	rec := recorder{"path", &d.log}
	drawOperations(svgpath.ParsePathData("M0 0 L10 0 Z L5 5 M20 20 Q30 30 40 20"), rec)
	assert.Equal(t, []string{
		"path start 0,0",
		"path line 10,0",
		"path stop true",
		// a segment after a close starts at the closing point
		"path start 0,0",
		"path line 5,5",
		"path stop false",
		"path start 20,20",
		"path quad 40,20",
		"path stop false",
	}, d.log)

	d.log = nil
	drawOperations(nil, rec)
	assert.Empty(t, d.log)
}

func TestDrawPath(t *testing.T) {
	var path svgpath.Path
	path.AddRect(0, 0, 10, 10)
	red := svgscene.NewPlainColor(0xff, 0, 0, 0xff)

	node := &svgscene.PathNode{
		Path:        path,
		Fill:        red,
		Stroke:      red,
		StrokeStyle: &svgscene.StrokeStyle{Width: 2},
	}
	var d recordingDriver
	DrawPath(node, &d, 0.5)
	assert.Equal(t, [][2]bool{{true, true}}, d.setup)

	fill := d.filter("fill")
	require.NotEmpty(t, fill)
	assert.Equal(t, "clear", fill[0])
	assert.Equal(t, "winding false", fill[1])
	assert.Equal(t, "winding true", fill[len(fill)-1])
	assert.Contains(t, fill, "draw")
	assert.Contains(t, fill, "color {{255 0 0 255}} 0.5")

	stroke := d.filter("stroke")
	require.NotEmpty(t, stroke)
	assert.Equal(t, []string{"clear", "width 2", "start 0,0"}, stroke[:3])
	assert.Equal(t, "draw", stroke[len(stroke)-1])

	// filling happens before stroking
	assert.True(t, strings.HasPrefix(d.log[0], "fill"))
	assert.True(t, strings.HasPrefix(d.log[len(d.log)-1], "stroke"))
}

func TestDrawSkipsInvisible(t *testing.T) {
	var path svgpath.Path
	path.AddRect(0, 0, 10, 10)
	var d recordingDriver

	DrawPath(&svgscene.PathNode{Path: path, Fill: svgscene.Transparent}, &d, 1)
	assert.Empty(t, d.setup)

	// a stroke paint without style is not drawn
	DrawPath(&svgscene.PathNode{Path: path, Fill: svgscene.Transparent, Stroke: svgscene.Transparent}, &d, 1)
	assert.Empty(t, d.setup)

	DrawPath(&svgscene.PathNode{
		Path: path, Fill: svgscene.Transparent,
		Stroke: svgscene.NewPlainColor(0, 0, 0, 0xff), StrokeStyle: &svgscene.StrokeStyle{Width: 1},
	}, &d, 1)
	assert.Equal(t, [][2]bool{{false, true}}, d.setup)
}

func TestDrawTree(t *testing.T) {
	root, err := svgscene.ReadScene(strings.NewReader(`<svg>
		<rect id="a" width="1" height="1"/>
		<g><rect width="1" height="1" fill="none" stroke="blue"/><g><rect width="1" height="1"/></g></g>
	</svg>`), svgscene.Options{})
	require.NoError(t, err)

	var d recordingDriver
	Draw(root, &d, 1)
	assert.Equal(t, [][2]bool{{true, false}, {false, true}, {true, false}}, d.setup)
}
