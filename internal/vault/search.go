package vault

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SearchContent returns vault-relative paths of searchable text files
// whose content contains query, in walk order. Ignored subtrees are
// pruned; files that cannot be read are skipped rather than failing the
// whole search.
func (v *Vault) SearchContent(query string) ([]string, error) {
	matches := []string{}

	err := v.walk(func(absPath, relPath string) error {
		if !v.settings.IsSearchable(relPath) {
			return nil
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			slog.Debug("search skipping unreadable file", "path", relPath, "error", err)
			return nil
		}

		if bytes.Contains(data, []byte(query)) {
			matches = append(matches, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}

	return matches, nil
}

// SearchFilename returns vault-relative paths of files whose name
// contains query, in walk order.
func (v *Vault) SearchFilename(query string) ([]string, error) {
	matches := []string{}

	err := v.walk(func(absPath, relPath string) error {
		if strings.Contains(filepath.Base(relPath), query) {
			matches = append(matches, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search filename: %w", err)
	}

	return matches, nil
}

// walk visits every non-ignored file under the vault root with its
// absolute and slash-relative path.
func (v *Vault) walk(visit func(absPath, relPath string) error) error {
	return filepath.WalkDir(v.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == v.root {
			return nil
		}

		rel, err := filepath.Rel(v.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// dir-only ignore patterns ("x/") need the trailing slash form
			if v.ignore.Match(rel) || v.ignore.Match(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if v.ignore.Match(rel) {
			return nil
		}

		return visit(p, rel)
	})
}
