package reference

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reMarkdownLink matches links already present in the text, including the
// ones this package inserts.
var reMarkdownLink = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)

// Annotate is a convenience wrapper around New(table, template).Annotate.
func Annotate(text string, table *Table, template Template) string {
	return New(table, template).Annotate(text)
}

func (a *implAnnotator) Annotate(text string) string {
	matches := a.Find(text)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*64)

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(a.template.Link(m.Entry.Name, m.Entry.Code))
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Find scans with the ASCII-boundary pattern, then re-checks each candidate
// against Unicode word characters, since RE2's \b treats "é" as a boundary.
func (a *implAnnotator) Find(text string) []Match {
	if text == "" {
		return nil
	}

	links := reMarkdownLink.FindAllStringIndex(text, -1)

	var matches []Match
	pos := 0
	for pos < len(text) {
		loc := a.pattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if overlapsAny([]int{start, end}, links) {
			pos = end
			continue
		}

		if entry, mEnd, ok := a.matchAt(text, start, end); ok {
			matches = append(matches, Match{Entry: entry, Start: start, End: mEnd})
			pos = mEnd
			continue
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return matches
}

// matchAt accepts the candidate text[start:end] when it is a whole word.
// Otherwise it falls back to the longest shorter name at start that is.
func (a *implAnnotator) matchAt(text string, start, end int) (Entry, int, bool) {
	if !boundaryBefore(text, start) {
		return Entry{}, 0, false
	}
	if boundaryAfter(text, end) {
		if e, ok := a.table.Lookup(text[start:end]); ok {
			return e, end, true
		}
	}

	for _, e := range a.byLength {
		stop := start + len(e.Name)
		if stop >= end || stop > len(text) {
			continue
		}
		if strings.EqualFold(text[start:stop], e.Name) && boundaryAfter(text, stop) {
			return e, stop, true
		}
	}
	return Entry{}, 0, false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

// overlapsAny reports whether loc intersects one of spans. Both are sorted
// [start, end) pairs as returned by FindAllStringIndex.
func overlapsAny(loc []int, spans [][]int) bool {
	for _, s := range spans {
		if s[0] >= loc[1] {
			return false
		}
		if loc[0] < s[1] {
			return true
		}
	}
	return false
}
