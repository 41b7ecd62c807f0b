package svgscene

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// dpi is the resolution used to convert absolute units to pixels
const dpi = 96.

// unit factors, relative to pixels
var unitFactors = [...]struct {
	suffix string
	factor float64
}{
	{"in", dpi},
	{"mm", dpi / 25.4},
	{"cm", dpi / 2.54},
	{"pc", dpi / 6},
	{"pt", dpi / 72},
	{"px", 1},
}

// parseLeadingFloat reads the number starting `s`, ignoring leading spaces
// and trailing characters. It returns 0 if no number is found.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	f, n := strconv.ParseFloat([]byte(s))
	return f, n != 0
}

// coordLength converts a length with an optional unit to user units.
// Percentages are relative to `size`.
func coordLength(s string, size float64) float64 {
	s = strings.TrimSpace(s)
	n, _ := parseLeadingFloat(s)
	if strings.HasSuffix(s, "%") {
		return n * 0.01 * size
	}
	for _, u := range unitFactors {
		if strings.HasSuffix(s, u.suffix) {
			return n * u.factor
		}
	}
	return n
}

// readFraction parses a number or a percentage,
// returning def for an empty string
func readFraction(v string, def float64) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	f, _ := parseLeadingFloat(v)
	if strings.HasSuffix(v, "%") {
		f /= 100
	}
	return f
}
