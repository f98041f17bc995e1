package writer

import (
	"fmt"
	"os"
)

type markdownWriter struct{}

func (markdownWriter) Ext() string { return ".md" }

func (markdownWriter) Write(_, document, path string) error {
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
