package svgpath

import (
	"math"
)

// pathCursor holds the state of the path data interpreter.
type pathCursor struct {
	path Path
	sc   *Scanner

	lastX, lastY   float64 // current point
	lastX2, lastY2 float64 // last control point, mirrored by smooth curves
	subX, subY     float64 // start of the current sub-path
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// ParsePathData interprets the `d` attribute of a path element.
// Malformed input never fails: a token which can't be read
// after a command is skipped, and the interpretation stops at the
// first character which is neither a command nor a number.
func ParsePathData(d string) Path {
	c := pathCursor{sc: NewScanner(d)}
	c.run()
	return c.path
}

func (c *pathCursor) move(x, y float64) {
	c.lastX2, c.lastY2 = c.lastX, c.lastY
	c.lastX, c.lastY = x, y
}

func (c *pathCursor) run() {
	var (
		command    byte
		isRelative bool
	)
	for !c.sc.Done() {
		if b := c.sc.Peek(); isCommand(b) {
			c.sc.Skip()
			command = b
			isRelative = 'a' <= b && b <= 'z'
		}

		// relative offset
		var ox, oy float64
		if isRelative {
			ox, oy = c.lastX, c.lastY
		}

		switch command {
		case 'M', 'm', 'L', 'l':
			x, y, ok := c.sc.Coord()
			if !ok {
				c.sc.Skip()
				break
			}
			x, y = x+ox, y+oy
			if command == 'M' || command == 'm' {
				c.path.Start(toFixedP(x, y))
				c.subX, c.subY = x, y
				// a moveto followed by coordinates is an implicit lineto
				if command == 'M' {
					command = 'L'
				} else {
					command = 'l'
				}
			} else {
				c.path.Line(toFixedP(x, y))
			}
			c.move(x, y)
		case 'H', 'h':
			x, ok := c.sc.Number()
			if !ok {
				c.sc.Skip()
				break
			}
			x += ox
			c.path.Line(toFixedP(x, c.lastY))
			c.lastX2, c.lastX = c.lastX, x
		case 'V', 'v':
			y, ok := c.sc.Number()
			if !ok {
				c.sc.Skip()
				break
			}
			y += oy
			c.path.Line(toFixedP(c.lastX, y))
			c.lastY2, c.lastY = c.lastY, y
		case 'C', 'c':
			pts, ok := c.coords(3)
			if !ok {
				c.sc.Skip()
				break
			}
			x1, y1 := pts[0]+ox, pts[1]+oy
			x2, y2 := pts[2]+ox, pts[3]+oy
			x3, y3 := pts[4]+ox, pts[5]+oy
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(x2, y2), toFixedP(x3, y3))
			c.lastX2, c.lastY2 = x2, y2
			c.lastX, c.lastY = x3, y3
		case 'S', 's':
			pts, ok := c.coords(2)
			if !ok {
				c.sc.Skip()
				break
			}
			x2, y2 := pts[0]+ox, pts[1]+oy
			x3, y3 := pts[2]+ox, pts[3]+oy
			x1, y1 := 2*c.lastX-c.lastX2, 2*c.lastY-c.lastY2
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(x2, y2), toFixedP(x3, y3))
			c.lastX2, c.lastY2 = x2, y2
			c.lastX, c.lastY = x3, y3
		case 'Q', 'q':
			pts, ok := c.coords(2)
			if !ok {
				c.sc.Skip()
				break
			}
			x1, y1 := pts[0]+ox, pts[1]+oy
			x2, y2 := pts[2]+ox, pts[3]+oy
			c.path.QuadBezier(toFixedP(x1, y1), toFixedP(x2, y2))
			c.lastX2, c.lastY2 = x1, y1
			c.lastX, c.lastY = x2, y2
		case 'T', 't':
			x, y, ok := c.sc.Coord()
			if !ok {
				c.sc.Skip()
				break
			}
			x, y = x+ox, y+oy
			x1, y1 := 2*c.lastX-c.lastX2, 2*c.lastY-c.lastY2
			c.path.QuadBezier(toFixedP(x1, y1), toFixedP(x, y))
			c.lastX2, c.lastY2 = x1, y1
			c.lastX, c.lastY = x, y
		case 'A', 'a':
			if !c.arc(ox, oy) {
				c.sc.Skip()
			}
		case 'Z', 'z':
			c.path.Stop(true)
			c.lastX, c.lastY = c.subX, c.subY
			c.lastX2, c.lastY2 = c.subX, c.subY
			c.sc.SkipSeparators()
			command = 0
		default:
			// no active command: stop
			return
		}
	}
}

// coords reads n pairs of numbers, or fails
func (c *pathCursor) coords(n int) ([]float64, bool) {
	out := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		x, y, ok := c.sc.Coord()
		if !ok {
			return nil, false
		}
		out = append(out, x, y)
	}
	return out, true
}

func (c *pathCursor) arc(ox, oy float64) bool {
	rx, ry, ok := c.sc.Coord()
	if !ok {
		return false
	}
	rotation, ok := c.sc.Number()
	if !ok {
		return true
	}
	largeArc, ok := c.sc.Number()
	if !ok {
		return true
	}
	sweep, ok := c.sc.Number()
	if !ok {
		return true
	}
	x, y, ok := c.sc.Coord()
	if !ok {
		return true
	}
	x, y = x+ox, y+oy

	if x != c.lastX || y != c.lastY {
		if rx != 0 && ry != 0 {
			a := EndpointToCenter(c.lastX, c.lastY, x, y, rotation*math.Pi/180,
				largeArc != 0, sweep != 0, rx, ry)
			c.path.addArc(a)
		}
		c.path.Line(toFixedP(x, y))
	}
	c.move(x, y)
	return true
}
