package reference

import (
	"regexp"
	"sort"
	"strings"
)

type implAnnotator struct {
	table    *Table
	template Template
	pattern  *regexp.Regexp
	// byLength holds the entries longest name first.
	byLength []Entry
}

// New creates an Annotator for table, linking through template.
func New(table *Table, template Template) Annotator {
	byLength := table.Entries()
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i].Name) > len(byLength[j].Name)
	})

	return &implAnnotator{
		table:    table,
		template: template,
		pattern:  compileNames(byLength),
		byLength: byLength,
	}
}

// compileNames builds one case-insensitive alternation over entries, which
// must already be ordered longest first so that "1 John" wins over "John" at
// the same offset.
func compileNames(entries []Entry) *regexp.Regexp {
	quoted := make([]string, len(entries))
	for i, e := range entries {
		quoted[i] = regexp.QuoteMeta(e.Name)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
