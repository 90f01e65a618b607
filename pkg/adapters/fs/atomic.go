package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks the temporary files used for atomic note writes.
const TempFilePrefix = "notenik-tmp-"

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it over filename, so readers never see a half-written note.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
