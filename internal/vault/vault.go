// Package vault exposes a directory of text notes as a sandboxed file
// store. Every client-supplied path is validated against the vault root
// before any I/O, and all writes go through an atomic temp-and-rename
// writer.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/vaultmd/vaultd/internal/utils"
)

const (
	metadataDir  = ".vaultd"
	lockFile     = "vaultd.lock"
	settingsFile = "vault.yaml"
	ignoreFile   = ".vaultignore"
)

var (
	// ErrInvalidPath marks client paths that are empty, absolute, or
	// resolve outside the vault root.
	ErrInvalidPath = errors.New("invalid file path")

	// ErrNotExist is returned for operations on a missing file.
	ErrNotExist = errors.New("file not found")

	// ErrExist is returned when creating a file that is already there.
	ErrExist = errors.New("file already exists")

	// ErrEmptyContent rejects file creation with no content.
	ErrEmptyContent = errors.New("empty content")

	// ErrVaultLocked means another daemon holds the vault lock.
	ErrVaultLocked = errors.New("vault locked by another process")
)

type Vault struct {
	root     string // canonical absolute path, symlinks resolved
	metaDir  string
	settings *Settings
	ignore   *IgnoreList

	flock *flock.Flock
}

// Open prepares a vault rooted at rootDir, creating the directory if
// needed. The root is canonicalized once here; Resolve compares every
// client path against this canonical form.
func Open(rootDir string) (*Vault, error) {
	root, err := utils.ResolvePath(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root %q: %w", rootDir, err)
	}

	if err := utils.EnsureDir(root); err != nil {
		return nil, fmt.Errorf("create vault root %q: %w", root, err)
	}

	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("canonicalize vault root %q: %w", root, err)
	}

	metaDir := filepath.Join(root, metadataDir)
	settings, err := LoadSettings(filepath.Join(metaDir, settingsFile))
	if err != nil {
		return nil, fmt.Errorf("load vault settings: %w", err)
	}

	ignore := NewIgnoreList(root)
	ignore.Load()

	return &Vault{
		root:     root,
		metaDir:  metaDir,
		settings: settings,
		ignore:   ignore,
		flock:    flock.New(filepath.Join(metaDir, lockFile)),
	}, nil
}

func (v *Vault) Root() string {
	return v.root
}

// MetadataDir is the vault-private directory holding the lock file,
// settings and the revision journal. It is never served or searched.
func (v *Vault) MetadataDir() string {
	return v.metaDir
}

func (v *Vault) Settings() *Settings {
	return v.settings
}

// Resolve validates a client-supplied vault-relative path and returns
// the absolute filesystem path it addresses. It rejects empty, absolute
// and NUL-bearing paths outright, then joins, resolves symlinks on the
// deepest existing ancestor and verifies the result is still a strict
// descendant of the canonical root. The metadata dir is reserved and
// cannot be addressed. Rejection is ErrInvalidPath; the path is never
// rewritten into something acceptable.
func (v *Vault) Resolve(relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(relPath, 0) {
		return "", fmt.Errorf("%w: path contains NUL", ErrInvalidPath)
	}

	relPath = filepath.FromSlash(relPath)
	if filepath.IsAbs(relPath) {
		return "", fmt.Errorf("%w: absolute path not allowed", ErrInvalidPath)
	}

	joined := filepath.Join(v.root, relPath)
	if !v.contains(joined) {
		return "", fmt.Errorf("%w: %s escapes the vault", ErrInvalidPath, relPath)
	}
	if v.isMetadata(joined) {
		return "", fmt.Errorf("%w: %s is reserved", ErrInvalidPath, relPath)
	}

	resolved, err := resolveExisting(joined)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, relPath)
	}
	if !v.contains(resolved) {
		return "", fmt.Errorf("%w: %s escapes the vault", ErrInvalidPath, relPath)
	}
	if v.isMetadata(resolved) {
		return "", fmt.Errorf("%w: %s is reserved", ErrInvalidPath, relPath)
	}

	return resolved, nil
}

// RelPath converts an absolute path inside the vault back to the
// slash-separated relative form used in API responses.
func (v *Vault) RelPath(absPath string) (string, error) {
	rel, err := filepath.Rel(v.root, absPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// contains reports whether absPath is a strict descendant of the vault
// root. The root itself is not a valid file path.
func (v *Vault) contains(absPath string) bool {
	if absPath == v.root {
		return false
	}
	return strings.HasPrefix(absPath, v.root+string(filepath.Separator))
}

// isMetadata reports whether absPath addresses the metadata dir or
// anything inside it.
func (v *Vault) isMetadata(absPath string) bool {
	if absPath == v.metaDir {
		return true
	}
	return strings.HasPrefix(absPath, v.metaDir+string(filepath.Separator))
}

// resolveExisting resolves symlinks on the deepest existing ancestor of
// path and rejoins the not-yet-existing remainder. Files being created
// don't exist yet, so EvalSymlinks cannot be applied to the full path.
func resolveExisting(path string) (string, error) {
	var suffix []string
	cur := path
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			parts := append([]string{resolved}, suffix...)
			return filepath.Join(parts...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", err
		}
		suffix = append([]string{filepath.Base(cur)}, suffix...)
		cur = parent
	}
}

// Lock takes the vault-wide daemon lock so two servers cannot serve the
// same vault. It does not serialize individual file writes.
func (v *Vault) Lock() error {
	if err := utils.EnsureDir(v.metaDir); err != nil {
		return fmt.Errorf("create metadata dir %s: %w", v.metaDir, err)
	}

	locked, err := v.flock.TryLock()
	if err != nil {
		return fmt.Errorf("lock vault: %w", err)
	}
	if !locked {
		return ErrVaultLocked
	}

	return nil
}

func (v *Vault) Unlock() error {
	// if this process doesn't hold the lock, leave the lock file alone
	if !v.flock.Locked() {
		return nil
	}

	if err := v.flock.Unlock(); err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}

	return os.Remove(v.flock.Path())
}
