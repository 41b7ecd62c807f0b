package svgscene

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ReadScene reads an SVG document from the given io.Reader
// and builds its scene.
// Only a subset of SVG is supported, but it is enough
// to draw many icons. Unsupported elements are ignored,
// and reported to the logger provided in `opts`.
func ReadScene(stream io.Reader, opts Options) (*Composite, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("svgscene: invalid XML: %w", err)
	}
	return ParseRoot(doc.Root(), opts)
}

// ReadSceneFile reads the SVG document from the named file.
// See ReadScene for more details.
func ReadSceneFile(filename string, opts Options) (*Composite, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadScene(fin, opts)
}
