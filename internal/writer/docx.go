package writer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/scripture-scribe/internal/reflow"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	linkColor = "1F4E9D"
	urlColor  = "808080"
)

var reLink = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)

// segment is a run of plain text or a markdown link inside a paragraph.
type segment struct {
	text string
	url  string
}

type docxWriter struct{}

func (docxWriter) Ext() string { return ".docx" }

// Write renders one docx paragraph per document paragraph. Links become
// coloured display text followed by the address in grey.
func (docxWriter) Write(title, document, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}

	if title != "" {
		doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
	}

	for _, para := range strings.Split(document, reflow.ParagraphSeparator) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		addSegments(doc.AddParagraph(""), splitLinks(para))
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func addSegments(p *docx.Paragraph, segments []segment) {
	for _, s := range segments {
		if s.url == "" {
			p.AddText(s.text).Font(fontName).Size(fontSize).Color("000000")
			continue
		}
		p.AddText(s.text).Font(fontName).Size(fontSize).Color(linkColor)
		p.AddText(" (" + s.url + ")").Font(fontName).Size(fontSize).Color(urlColor)
	}
}

// splitLinks cuts text into plain and link segments in order.
func splitLinks(text string) []segment {
	var out []segment
	last := 0
	for _, m := range reLink.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			out = append(out, segment{text: text[last:m[0]]})
		}
		out = append(out, segment{text: text[m[2]:m[3]], url: text[m[4]:m[5]]})
		last = m[1]
	}
	if last < len(text) {
		out = append(out, segment{text: text[last:]})
	}
	return out
}
