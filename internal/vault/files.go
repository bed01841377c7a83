package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vaultmd/vaultd/internal/utils"
)

// ReadFile returns the content of a vault file. Directories and missing
// files both read as ErrNotExist.
func (v *Vault) ReadFile(relPath string) ([]byte, error) {
	abs, err := v.Resolve(relPath)
	if err != nil {
		return nil, err
	}

	if !utils.FileExists(abs) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, relPath)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, relPath)
		}
		return nil, fmt.Errorf("read %s: %w", relPath, err)
	}

	return data, nil
}

// CreateFile writes a new file, creating parent directories as needed,
// and returns the content fingerprint. Empty content and existing
// targets are rejected.
func (v *Vault) CreateFile(relPath string, content []byte) (string, error) {
	abs, err := v.Resolve(relPath)
	if err != nil {
		return "", err
	}

	if len(content) == 0 {
		return "", fmt.Errorf("%w for %s", ErrEmptyContent, relPath)
	}

	if utils.FileExists(abs) || utils.DirExists(abs) {
		return "", fmt.Errorf("%w: %s", ErrExist, relPath)
	}

	if err := WriteFileAtomic(abs, content); err != nil {
		return "", fmt.Errorf("create %s: %w", relPath, err)
	}

	return Fingerprint(content), nil
}

// ReplaceFile overwrites an existing file with content and returns the
// new fingerprint. The file must already exist; use CreateFile
// otherwise.
func (v *Vault) ReplaceFile(relPath string, content []byte) (string, error) {
	abs, err := v.Resolve(relPath)
	if err != nil {
		return "", err
	}

	if !utils.FileExists(abs) {
		return "", fmt.Errorf("%w: %s", ErrNotExist, relPath)
	}

	if err := WriteFileAtomic(abs, content); err != nil {
		return "", fmt.Errorf("replace %s: %w", relPath, err)
	}

	return Fingerprint(content), nil
}
