package svgscene

import (
	"errors"
	"log/slog"
)

// ErrNotSVG is returned when the root element of the document
// is not an <svg> element.
var ErrNotSVG = errors.New("svgscene: root element is not <svg>")

// Options tunes the parsing. The zero value is ready to use.
type Options struct {
	// Logger receives the diagnostics emitted while parsing.
	// If nil, the package logger (see SetLogger) is used.
	Logger *slog.Logger

	// MaxDepth limits the element nesting. Deeper subtrees
	// are dropped with a warning. 0 means no limit.
	MaxDepth int
}

func (opts Options) logger() *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return Logger()
}
