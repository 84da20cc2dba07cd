package report

import (
	"fmt"
	"os"
)

// Write persists a document to path as UTF-8 text, fully replacing any
// existing content. The write is terminal: on failure the content is
// lost, not retried.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing to file %s: %w", path, err)
	}
	return nil
}
