// Package emit writes rendered artifacts to disk. Writes are plain
// truncate-and-overwrite with no backup or atomic rename; re-running a
// generator with the same inputs reproduces byte-identical files.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path, creating any missing parent directories.
// An existing file at path is overwritten without confirmation.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
