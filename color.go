package svgscene

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseColor reads an SVG color: #RGB, #RRGGBB, rgb(r,g,b) with integers
// or percentages, or a color keyword. `def` is returned for
// unrecognized input.
func parseColor(s string, def color.NRGBA) color.NRGBA {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		var (
			hex [6]uint8
			n   int
		)
		for ; n < 6 && n+1 < len(s); n++ {
			v, ok := hexDigit(s[n+1])
			if !ok {
				break
			}
			hex[n] = v
		}
		if n <= 3 {
			return color.NRGBA{R: hex[0] * 0x11, G: hex[1] * 0x11, B: hex[2] * 0x11, A: 0xff}
		}
		return color.NRGBA{R: hex[0]<<4 + hex[1], G: hex[2]<<4 + hex[3], B: hex[4]<<4 + hex[5], A: 0xff}
	case strings.HasPrefix(s, "rgb"):
		if c, ok := parseRGB(s); ok {
			return c
		}
	}

	name := strings.ToLower(s)
	if name == "transparent" {
		return color.NRGBA{}
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return def
}

// parseRGB handles rgb(...) and rgba(...)
func parseRGB(s string) (color.NRGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 3 {
		return color.NRGBA{}, false
	}
	end := strings.IndexByte(s[open:], ')')
	if end < 0 {
		return color.NRGBA{}, false
	}
	var tokens []string
	for _, tok := range strings.Split(s[open+1:open+end], ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	for len(tokens) < 3 {
		tokens = append(tokens, "0")
	}

	percent := strings.Contains(tokens[0], "%")
	var rgb [3]uint8
	for i := range rgb {
		if percent {
			v, _ := parseLeadingFloat(strings.TrimSuffix(tokens[i], "%"))
			rgb[i] = clampByte(math.Round(2.55 * v))
		} else {
			v, _ := parseLeadingFloat(tokens[i])
			rgb[i] = clampByte(math.Trunc(v))
		}
	}
	out := color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	if len(tokens) >= 4 {
		if a, ok := parseLeadingFloat(tokens[3]); ok {
			out.A = clampByte(math.Round(255 * clampUnit(a)))
		}
	}
	return out, true
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// withOpacity multiplies the alpha of `c` by `opacity`
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = clampByte(math.Round(float64(c.A) * clampUnit(opacity)))
	return c
}
