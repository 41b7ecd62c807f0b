package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func pt(x, y float64) fixed.Point26_6 { return toFixedP(x, y) }

func TestParsePathDataAbsolute(t *testing.T) {
	for _, d := range []string{
		"M0,0 L10,10 L20,0 Z",
		"M 1.5 2.5 C 10 0 10 10 20 10 Q 30 30 40 10 L 5 5",
		"M-5-5L10-10",
		"M1e1,2E1 L.5.5",
	} {
		p := ParsePathData(d)
		require.NotEmpty(t, p, d)
		// replaying the absolute serialization gives the same points
		again := ParsePathData(p.ToSVGPath())
		assert.Equal(t, p, again, d)
	}
}

func TestRelativeEquivalence(t *testing.T) {
	assert.Equal(t, ParsePathData("M0,0 L10,10"), ParsePathData("M0,0 l10,10"))
	assert.Equal(t, ParsePathData("M5,5 H20 V30"), ParsePathData("M5,5 h15 v25"))
	assert.Equal(t, ParsePathData("m5,5 10,0"), ParsePathData("M5,5 L15,5"))
}

func TestImplicitRepetition(t *testing.T) {
	got := ParsePathData("M0,0 10,10 20,0")
	want := ParsePathData("M0,0 L10,10 L20,0")
	assert.Equal(t, want, got)
	assert.Equal(t, Path{MoveTo(pt(0, 0)), LineTo(pt(10, 10)), LineTo(pt(20, 0))}, got)

	assert.Equal(t, ParsePathData("M0 0 L1 1 L2 2 L3 3"), ParsePathData("M0 0 L1 1 2 2 3 3"))
}

func TestSmoothReflection(t *testing.T) {
	p := ParsePathData("M0,0 C10,0 10,10 20,10 S30,20 40,10")
	require.Len(t, p, 3)
	s, ok := p[2].(CubicTo)
	require.True(t, ok)
	assert.Equal(t, pt(30, 10), s[0])
	assert.Equal(t, pt(30, 20), s[1])
	assert.Equal(t, pt(40, 10), s[2])

	q := ParsePathData("M0,0 Q10,10 20,0 T40,0")
	require.Len(t, q, 3)
	tq, ok := q[2].(QuadTo)
	require.True(t, ok)
	assert.Equal(t, pt(30, -10), tq[0])
	assert.Equal(t, pt(40, 0), tq[1])
}

func TestClosePath(t *testing.T) {
	p := ParsePathData("M0,0 L10,0 L10,10 Z")
	assert.True(t, p.HasClosedSubpath())
	assert.False(t, ParsePathData("M0,0 L10,0 L10,10").HasClosedSubpath())

	// the current point is back to the start of the sub-path
	p = ParsePathData("M10,10 L20,10 z l5,5")
	assert.Equal(t, LineTo(pt(15, 15)), p[len(p)-1])
}

func TestMalformedPathData(t *testing.T) {
	// bad tokens are skipped
	p := ParsePathData("M0,0 L#10,10")
	assert.Equal(t, Path{MoveTo(pt(0, 0)), LineTo(pt(10, 10))}, p)

	// no active command
	assert.Empty(t, ParsePathData("10 10"))
	assert.Empty(t, ParsePathData(""))

	// stops after a close followed by garbage
	p = ParsePathData("M0,0 L1,1 Z 5 5")
	assert.Len(t, p, 3)
}

func TestArcPathData(t *testing.T) {
	p := ParsePathData("M0,0 A10,10 0 0 1 10,0")
	require.True(t, len(p) > 2)
	assert.Equal(t, LineTo(pt(10, 0)), p[len(p)-1])

	// degenerate arcs
	assert.Equal(t, Path{MoveTo(pt(0, 0))}, ParsePathData("M0,0 A10,10 0 0 1 0,0"))
	assert.Equal(t, Path{MoveTo(pt(0, 0)), LineTo(pt(10, 0))}, ParsePathData("M0,0 A0,10 0 0 1 10,0"))

	// relative arc ends where the absolute one does
	a := ParsePathData("M5,5 a10,10 0 1 0 10,0")
	b := ParsePathData("M5,5 A10,10 0 1 0 15,5")
	assert.Equal(t, b, a)
}

func TestScanner(t *testing.T) {
	assert.Equal(t, []float64{1, -2, 0.5, 0.5, 300}, Numbers("1-2 .5.5, 3e2"))
	assert.Equal(t, []float64{1}, Numbers("1 x 2"))

	sc := NewScanner(" 12.5mm, 50%")
	tok, ok := sc.NumberWithUnit()
	assert.True(t, ok)
	assert.Equal(t, "12.5mm", tok)
	tok, ok = sc.NumberWithUnit()
	assert.True(t, ok)
	assert.Equal(t, "50%", tok)
	assert.True(t, sc.Done())
}
