package svgscene

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/beevik/etree"
)

// styleAttribute returns the effective value of the presentation attribute
// `name` for `e`. The lookup order is:
//   - the attribute itself
//   - the inline style declarations
//   - if there is no style attribute, the declarations of the class block
//     found in the <style> elements
//   - the first ancestor defining the attribute directly
//
// `def` is returned if all fail.
func (s *parseState) styleAttribute(e *etree.Element, name, def string) string {
	if a := e.SelectAttr(name); a != nil {
		return a.Value
	}

	if style := e.SelectAttr("style"); style != nil {
		if value := declarationValue(style.Value, name); value != "" {
			return value
		}
	} else if class := e.SelectAttr("class"); class != nil {
		for _, cl := range strings.Fields(class.Value) {
			if block, ok := classBlock(s.css, cl); ok {
				if value := declarationValue(block, name); value != "" {
					return value
				}
			}
		}
	}

	if value, ok := inheritedAttribute(e.Parent(), name); ok {
		return value
	}
	return def
}

// inheritedAttribute walks up the ancestors, starting at `e`,
// looking for an attribute defined directly.
// Style declarations of ancestors are not used.
func inheritedAttribute(e *etree.Element, name string) (string, bool) {
	for ; e != nil; e = e.Parent() {
		if a := e.SelectAttr(name); a != nil {
			return a.Value, true
		}
	}
	return "", false
}

// declarationValue returns the value of the first declaration
// of `name` in the CSS declaration list `list`, or an empty string.
func declarationValue(list, name string) string {
	// the parser drops the value of a last declaration without ';'
	decls, err := parser.ParseDeclarations(list + ";")
	if err != nil {
		// fallback to a plain split
		return splitDeclarationValue(list, name)
	}
	for _, decl := range decls {
		if decl.Property == name {
			return strings.TrimSpace(decl.Value)
		}
	}
	return ""
}

func splitDeclarationValue(list, name string) string {
	for _, chunk := range strings.Split(list, ";") {
		prop, value, ok := strings.Cut(chunk, ":")
		if ok && strings.TrimSpace(prop) == name {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// classBlock finds the first rule `.class {...}` in `css`, matched
// case-insensitively, and returns the text between the braces.
func classBlock(css, class string) (string, bool) {
	lower := asciiLower(css)
	selector := "." + asciiLower(class)
	for from := 0; from < len(lower); {
		index := strings.Index(lower[from:], selector)
		if index < 0 {
			return "", false
		}
		index += from
		end := index + len(selector)
		from = end
		if end >= len(lower) || !(isSpace(lower[end]) || lower[end] == '{') {
			continue
		}
		open := strings.IndexByte(css[end:], '{')
		if open < 0 {
			return "", false
		}
		open += end
		closing := strings.IndexByte(css[open:], '}')
		if closing < 0 {
			return "", false
		}
		return css[open+1 : open+closing], true
	}
	return "", false
}

// asciiLower preserves byte offsets
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
