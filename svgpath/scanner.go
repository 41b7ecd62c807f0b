package svgpath

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// Scanner reads the numeric tokens found in SVG micro-syntaxes
// (path data, points lists, viewBox, transform arguments).
// Whitespace and commas act as separators.
type Scanner struct {
	src []byte
	pos int
}

// NewScanner returns a scanner reading `s`.
func NewScanner(s string) *Scanner {
	return &Scanner{src: []byte(s)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// SkipSeparators advances past whitespace and commas.
func (s *Scanner) SkipSeparators() {
	for s.pos < len(s.src) && (isSpace(s.src[s.pos]) || s.src[s.pos] == ',') {
		s.pos++
	}
}

// Done returns true when all the input has been consumed,
// ignoring trailing separators.
func (s *Scanner) Done() bool {
	s.SkipSeparators()
	return s.pos >= len(s.src)
}

// Peek returns the next byte, or 0 at the end of input.
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// Skip advances one byte.
func (s *Scanner) Skip() {
	if s.pos < len(s.src) {
		s.pos++
	}
}

// Number reads the next number. On failure, the position
// is left unchanged (after the leading separators).
func (s *Scanner) Number() (float64, bool) {
	s.SkipSeparators()
	if s.pos >= len(s.src) {
		return 0, false
	}
	f, n := strconv.ParseFloat(s.src[s.pos:])
	if n == 0 {
		return 0, false
	}
	s.pos += n
	return f, true
}

// Coord reads the next pair of numbers.
func (s *Scanner) Coord() (x, y float64, ok bool) {
	start := s.pos
	x, ok = s.Number()
	if !ok {
		return 0, 0, false
	}
	y, ok = s.Number()
	if !ok {
		s.pos = start
		return 0, 0, false
	}
	return x, y, true
}

// NumberWithUnit reads the next number followed by an optional
// unit (letters or '%') and returns the raw token.
func (s *Scanner) NumberWithUnit() (string, bool) {
	s.SkipSeparators()
	start := s.pos
	if _, ok := s.Number(); !ok {
		return "", false
	}
	for s.pos < len(s.src) && (isLetter(s.src[s.pos]) || s.src[s.pos] == '%') {
		s.pos++
	}
	return string(s.src[start:s.pos]), true
}

// Numbers reads all the numbers of `s`, stopping at the first
// invalid token.
func Numbers(s string) []float64 {
	sc := NewScanner(s)
	var out []float64
	for {
		f, ok := sc.Number()
		if !ok {
			return out
		}
		out = append(out, f)
	}
}
