package reference

// Annotator rewrites book-name mentions in free text into markdown links.
type Annotator interface {
	// Annotate replaces every whole-word, case-insensitive mention of a table
	// name with a link. Text already inside a markdown link is left alone, so
	// annotating twice is the same as annotating once.
	Annotate(text string) string
	// Find reports the mentions Annotate would replace, in text order.
	Find(text string) []Match
}

// Match is one book-name mention located in a text.
type Match struct {
	Entry Entry
	// Start and End are byte offsets of the mention in the searched text.
	Start int
	End   int
}
