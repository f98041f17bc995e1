package writer

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

type htmlWriter struct {
	md goldmark.Markdown
}

func newHTMLWriter() htmlWriter {
	return htmlWriter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (htmlWriter) Ext() string { return ".html" }

func (w htmlWriter) Write(title, document, path string) error {
	var buf bytes.Buffer
	if err := w.md.Convert([]byte(escapeMarkdown(document)), &buf); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	page := fmt.Sprintf(htmlTemplate, html.EscapeString(title), buf.String())
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// escapeMarkdown backslash-escapes ASCII punctuation in transcript text so
// goldmark renders it literally; only the inserted links stay markdown.
func escapeMarkdown(document string) string {
	var b strings.Builder
	b.Grow(len(document) + len(document)/8)

	for _, s := range splitLinks(document) {
		if s.url == "" {
			writeEscaped(&b, s.text)
			continue
		}
		b.WriteByte('[')
		writeEscaped(&b, s.text)
		b.WriteString("](")
		b.WriteString(s.url)
		b.WriteByte(')')
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, text string) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isASCIIPunct(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
