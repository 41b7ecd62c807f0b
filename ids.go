package svgscene

import (
	"strings"

	"github.com/beevik/etree"
)

// findElementForID performs a depth first search for the element
// with the given id, starting at (and including) `e`.
func findElementForID(e *etree.Element, id string) *etree.Element {
	if e.SelectAttrValue("id", "") == id {
		return e
	}
	for _, child := range e.ChildElements() {
		if found := findElementForID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// href returns the xlink:href attribute of `e`,
// also accepting the plain SVG 2 href.
func href(e *etree.Element) string {
	if a := e.SelectAttr("xlink:href"); a != nil {
		return a.Value
	}
	return e.SelectAttrValue("href", "")
}

// linkedElement resolves the local reference "#id" of `e`,
// returning nil if there is none.
func (doc *document) linkedElement(e *etree.Element) *etree.Element {
	ref := strings.TrimSpace(href(e))
	if !strings.HasPrefix(ref, "#") {
		return nil
	}
	return findElementForID(doc.root, ref[1:])
}

// urlID extracts the id from a paint reference url(#id)
func urlID(value string) string {
	start := strings.IndexByte(value, '#')
	if start < 0 {
		return ""
	}
	value = value[start+1:]
	if end := strings.LastIndexByte(value, ')'); end >= 0 {
		value = value[:end]
	}
	return strings.TrimSpace(value)
}

// textContent returns all the character data nested in `e`.
func textContent(e *etree.Element) string {
	var b strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch tok := tok.(type) {
			case *etree.CharData:
				b.WriteString(tok.Data)
			case *etree.Element:
				walk(tok)
			}
		}
	}
	walk(e)
	return b.String()
}
