package svgpath

import (
	"math/rand"
	"testing"

	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func randPoint(rng *rand.Rand, offsetx, offsety int) fixed.Point26_6 {
	x, y := rng.Intn(1100), rng.Intn(1000)
	return fixed.Point26_6{X: fixed.Int26_6(x + offsetx), Y: fixed.Int26_6(y + offsety)}
}

func generateCurve(rng *rand.Rand, order int) bezier {
	a := randPoint(rng, 500, 500)
	b := randPoint(rng, 500, 500)
	switch order {
	case 1:
		return line{a, b}
	case 2:
		return quadBezier{a, b, randPoint(rng, 500, 500)}
	default:
		return cubicBezier{a, b, randPoint(rng, 500, 500), randPoint(rng, 500, 500)}
	}
}

func TestBoundingBoxContainsCurve(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		curve := generateCurve(rng, 1+i%3)
		minX, minY, maxX, maxY := computeBoundingBox(curve)
		for j := 0; j <= 100; j++ {
			x, y := curve.evaluateCurve(float64(j) / 100)
			assert.True(t, minX-1e-9 <= x && x <= maxX+1e-9)
			assert.True(t, minY-1e-9 <= y && y <= maxY+1e-9)
		}
	}
}

func TestPathBounds(t *testing.T) {
	assert.Equal(t, Rect{}, Path(nil).Bounds())

	// control points are outside of the curve
	p := ParsePathData("M0,0 Q10,20 20,0")
	b := p.Bounds()
	assert.Equal(t, 0., b.X)
	assert.Equal(t, 20., b.W)
	assert.InDelta(t, 10, b.H, 1e-9)

	p = ParsePathData("M0,0 L10,0 L10,10 Z M-5,20 L-5,30")
	assert.Equal(t, Rect{X: -5, Y: 0, W: 15, H: 30}, p.Bounds())
}

func TestRectUnion(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.Equal(t, r, r.Union(Rect{}))
	assert.Equal(t, r, Rect{}.Union(r))
	assert.Equal(t, Rect{X: -5, Y: 0, W: 15, H: 20}, r.Union(Rect{X: -5, Y: 5, W: 1, H: 15}))
}

func TestTransform(t *testing.T) {
	p := ParsePathData("M1,2 L3,4 Q5,6 7,8 C1,1 2,2 3,3 Z")
	got := p.Transform(rasterx.Identity.Translate(10, 20))
	assert.Equal(t, ParsePathData("M11,22 L13,24 Q15,26 17,28 C11,21 12,22 13,23 Z"), got)
	assert.Equal(t, len(p.Points()), len(got.Points()))
}
