package vault

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaultmd/vaultd/internal/utils"
)

// WriteFileAtomic writes content to path through a temp file created in
// the target's own directory, syncs it to disk and renames it over the
// target. The rename is the commit point: readers observe either the
// old content or the new, never a partial write, and a crash before the
// rename leaves the original untouched.
func WriteFileAtomic(path string, content []byte) error {
	if err := utils.EnsureParent(path); err != nil {
		return fmt.Errorf("ensure parent of %s: %w", path, err)
	}

	// same directory keeps the rename on one filesystem
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false

	// cleanup temp file only on failure
	defer func() {
		if !success {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	// sync to disk before rename to ensure durability
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
