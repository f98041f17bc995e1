package writer

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FormatMarkdown = "markdown"
	FormatDocx     = "docx"
	FormatHTML     = "html"
)

var ErrUnknownFormat = errors.New("writer: unknown format")

// New returns the Writer for format: markdown, docx or html.
func New(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatMarkdown, "md", "":
		return markdownWriter{}, nil
	case FormatDocx:
		return docxWriter{}, nil
	case FormatHTML:
		return newHTMLWriter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
