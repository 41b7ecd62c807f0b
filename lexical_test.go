package svgscene

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordLength(t *testing.T) {
	for _, test := range []struct {
		input    string
		size     float64
		expected float64
	}{
		{"12", 0, 12},
		{" 12.5 ", 0, 12.5},
		{"10px", 0, 10},
		{"1in", 0, 96},
		{"25.4mm", 0, 96},
		{"2.54cm", 0, 96},
		{"6pc", 0, 96},
		{"72pt", 0, 96},
		{"50%", 200, 100},
		{"1e1", 0, 10},
		{"", 100, 0},
		{"abc", 100, 0},
	} {
		assert.InDelta(t, test.expected, coordLength(test.input, test.size), 1e-9, test.input)
	}
}

func TestReadFraction(t *testing.T) {
	assert.Equal(t, 0.3, readFraction("", 0.3))
	assert.Equal(t, 0.5, readFraction("50%", 0))
	assert.Equal(t, 0.25, readFraction(" 0.25 ", 0))
}

func TestParseColor(t *testing.T) {
	def := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	for _, test := range []struct {
		input    string
		expected color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#abc", color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
		{"#00ff00", color.NRGBA{G: 0xff, A: 0xff}},
		{"#1A2b3C", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{"rgb(255, 0, 128)", color.NRGBA{R: 255, B: 128, A: 0xff}},
		{"rgb(12.9,0,0)", color.NRGBA{R: 12, A: 0xff}},
		{"rgb(100%, 20%, 0%)", color.NRGBA{R: 255, G: 51, A: 0xff}},
		{"rgba(0,0,255,0.5)", color.NRGBA{B: 255, A: 128}},
		{"rgb(300,-4,0)", color.NRGBA{R: 255, A: 0xff}},
		{"red", color.NRGBA{R: 0xff, A: 0xff}},
		{" Navy ", color.NRGBA{B: 0x80, A: 0xff}},
		{"transparent", color.NRGBA{}},
		{"notacolor", def},
		{"", def},
	} {
		assert.Equal(t, test.expected, parseColor(test.input, def), test.input)
	}
}

func TestWithOpacity(t *testing.T) {
	c := color.NRGBA{R: 10, A: 0xff}
	assert.Equal(t, uint8(128), withOpacity(c, 0.5).A)
	assert.Equal(t, uint8(0xff), withOpacity(c, 2).A)
	assert.Equal(t, uint8(0), withOpacity(c, -1).A)
}

func TestParseTransform(t *testing.T) {
	for _, test := range []struct {
		input      string
		x, y       float64
		xOut, yOut float64
	}{
		{"", 3, 4, 3, 4},
		{"translate(10 20)", 0, 0, 10, 20},
		{"translate(10)", 1, 1, 11, 1},
		{"scale(2)", 1, 1, 2, 2},
		{"scale(2, 3)", 1, 1, 2, 3},
		// rightmost first
		{"translate(10,0) scale(2)", 1, 0, 12, 0},
		{"scale(2) translate(10,0)", 1, 0, 22, 0},
		{"rotate(90)", 1, 0, 0, 1},
		{"rotate(90 10 10)", 20, 10, 10, 20},
		{"skewX(45)", 0, 1, 1, 1},
		{"skewY(45)", 1, 0, 1, 1},
		{"matrix(1 0 0 1 5 6)", 0, 0, 5, 6},
		{"matrix(2,0,0,2,0,0)", 1, 1, 2, 2},
		// malformed entries are ignored
		{"matrix(1 2)", 1, 1, 1, 1},
		{"foo(3) translate(1 1)", 0, 0, 1, 1},
	} {
		x, y := parseTransform(test.input).Transform(test.x, test.y)
		assert.InDelta(t, test.xOut, x, 1e-9, test.input)
		assert.InDelta(t, test.yOut, y, 1e-9, test.input)
	}
}

func TestParseViewBox(t *testing.T) {
	vb, ok := parseViewBox("0 0 100 50")
	assert.True(t, ok)
	assert.Equal(t, 50., vb.H)

	_, ok = parseViewBox("0,0,100,-5")
	assert.False(t, ok)
	_, ok = parseViewBox("0 0 100")
	assert.False(t, ok)
}

func TestParseAspectRatio(t *testing.T) {
	assert.Equal(t, AspectRatio{}, parseAspectRatio(""))
	assert.Equal(t, AspectRatio{None: true}, parseAspectRatio("none"))
	assert.Equal(t, AspectRatio{AlignX: AlignMin, AlignY: AlignMax, Slice: true}, parseAspectRatio("xMinYMax slice"))
	assert.Equal(t, AspectRatio{AlignX: AlignMax}, parseAspectRatio("xMaxYMid meet"))
}

func TestPlacement(t *testing.T) {
	m := AspectRatio{}.placement(rectOf(0, 0, 10, 10), 200, 100)
	x, y := m.Transform(0, 0)
	assert.Equal(t, [2]float64{50, 0}, [2]float64{x, y})
	x, y = m.Transform(10, 10)
	assert.Equal(t, [2]float64{150, 100}, [2]float64{x, y})

	m = AspectRatio{None: true}.placement(rectOf(5, 5, 10, 10), 200, 100)
	x, y = m.Transform(15, 15)
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	m = AspectRatio{Slice: true, AlignY: AlignMin}.placement(rectOf(0, 0, 10, 10), 200, 100)
	x, y = m.Transform(10, 10)
	assert.InDelta(t, 200, x, 1e-9)
	assert.InDelta(t, 200, y, 1e-9)
}

func TestClassBlock(t *testing.T) {
	css := ".ab{fill:red} .a { fill: blue }\n.B\t{stroke:green}"
	block, ok := classBlock(css, "a")
	assert.True(t, ok)
	assert.Equal(t, " fill: blue ", block)

	block, ok = classBlock(css, "b")
	assert.True(t, ok)
	assert.Equal(t, "stroke:green", block)

	_, ok = classBlock(css, "c")
	assert.False(t, ok)
	_, ok = classBlock(".a", "a")
	assert.False(t, ok)
}

func TestDeclarationValue(t *testing.T) {
	assert.Equal(t, "red", declarationValue("fill:red; stroke : blue", "fill"))
	assert.Equal(t, "blue", declarationValue("fill:red; stroke : blue", "stroke"))
	assert.Equal(t, "", declarationValue("fill:red", "stroke"))
	assert.Equal(t, "url(#g)", declarationValue("fill: url(#g)", "fill"))
	assert.Equal(t, "blue", declarationValue("fill:blue", "fill"))
	assert.Equal(t, "blue", declarationValue("stroke:red;fill:blue", "fill"))
	assert.Equal(t, "blue", declarationValue(" fill: blue; ", "fill"))
	assert.Equal(t, "1", splitDeclarationValue("a:1;b:2", "a"))
}

func TestURLID(t *testing.T) {
	assert.Equal(t, "grad", urlID("url(#grad)"))
	assert.Equal(t, "grad", urlID("url( #grad )"))
	assert.Equal(t, "", urlID("url(grad)"))
}

func TestLeadingFloat(t *testing.T) {
	f, ok := parseLeadingFloat("  -1.5e2px")
	assert.True(t, ok)
	assert.Equal(t, -150., f)
	_, ok = parseLeadingFloat("px")
	assert.False(t, ok)
	assert.False(t, math.IsNaN(f))
}
