// Package reflow regroups transcript text into paragraphs of a bounded number
// of sentences.
package reflow

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParagraphSeparator joins paragraphs in a reflowed document.
const ParagraphSeparator = "\n\n\n"

// DefaultMaxSentences is the paragraph size used when none is configured.
const DefaultMaxSentences = 4

// SplitSentences splits text after every '.', '!' or '?' that is followed by
// whitespace. The terminator stays with its sentence and the whitespace run
// is dropped. Trailing text without a terminator becomes the last sentence;
// whitespace-only remainders are discarded.
func SplitSentences(text string) []string {
	var sentences []string

	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i+1:])
		if size == 0 || !unicode.IsSpace(r) {
			continue
		}

		sentences = append(sentences, text[start:i+1])

		j := i + 1
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}
		start = j
		i = j - 1
	}

	if rest := text[start:]; strings.TrimSpace(rest) != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// Reflow groups the sentences of text into paragraphs of at most
// maxSentences, joining sentences with a space and paragraphs with
// ParagraphSeparator. maxSentences below 1 is treated as 1.
func Reflow(text string, maxSentences int) string {
	if maxSentences < 1 {
		maxSentences = 1
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	paragraphs := make([]string, 0, len(sentences)/maxSentences+1)
	buf := make([]string, 0, maxSentences)
	for _, s := range sentences {
		buf = append(buf, s)
		if len(buf) >= maxSentences {
			paragraphs = append(paragraphs, strings.TrimSpace(strings.Join(buf, " ")))
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		paragraphs = append(paragraphs, strings.TrimSpace(strings.Join(buf, " ")))
	}

	return strings.Join(paragraphs, ParagraphSeparator)
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
