package writer

// Writer persists a reflowed document in one output format.
type Writer interface {
	// Write stores document at path. title is used by formats that carry a
	// heading of their own; the markdown format writes document unchanged.
	Write(title, document, path string) error
	// Ext is the file extension for this format, including the dot.
	Ext() string
}
