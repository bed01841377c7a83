// Package dailynote materializes "today's note" from the vault
// settings: the location template decides where the note lives, and an
// optional note template seeds its initial content.
package dailynote

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/vaultmd/vaultd/internal/utils"
	"github.com/vaultmd/vaultd/internal/vault"
)

type Note struct {
	// Path is the note's vault-relative path.
	Path string

	Content string
}

type Service struct {
	vault *vault.Vault
	now   func() time.Time
}

func NewService(v *vault.Vault) *Service {
	return &Service{
		vault: v,
		now:   time.Now,
	}
}

// Today returns the daily note for the current date, creating it first
// if it does not exist yet. New notes are seeded from the configured
// note template, or start empty when none is set. The generated
// location goes through the same path sandbox as client paths.
func (s *Service) Today() (*Note, error) {
	settings := s.vault.Settings().DailyNote
	now := s.now()

	relPath, err := FormatLocation(settings.Location, now)
	if err != nil {
		return nil, fmt.Errorf("daily note location: %w", err)
	}

	abs, err := s.vault.Resolve(relPath)
	if err != nil {
		return nil, fmt.Errorf("daily note location %q: %w", relPath, err)
	}

	if !utils.FileExists(abs) {
		content, err := s.initialContent(settings.Template, now)
		if err != nil {
			return nil, err
		}
		if err := vault.WriteFileAtomic(abs, content); err != nil {
			return nil, fmt.Errorf("create daily note: %w", err)
		}
		slog.Info("created daily note", "path", relPath)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read daily note: %w", err)
	}

	rel, err := s.vault.RelPath(abs)
	if err != nil {
		return nil, fmt.Errorf("daily note path: %w", err)
	}

	return &Note{Path: rel, Content: string(data)}, nil
}

// initialContent renders the note template for a fresh daily note. A
// configured-but-missing template file degrades to an empty note rather
// than failing the request.
func (s *Service) initialContent(templatePath string, now time.Time) ([]byte, error) {
	if templatePath == "" {
		return nil, nil
	}

	text, err := s.readTemplate(templatePath)
	if err != nil {
		slog.Warn("daily note template not readable, creating empty note", "template", templatePath, "error", err)
		return nil, nil
	}

	funcMap := template.FuncMap{
		"date": func(layout string) string {
			return now.Format(layout)
		},
	}

	tpl, err := template.New(filepath.Base(templatePath)).Funcs(funcMap).Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parse daily note template %q: %w", templatePath, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]any{"Now": now}); err != nil {
		return nil, fmt.Errorf("render daily note template %q: %w", templatePath, err)
	}

	return buf.Bytes(), nil
}

// readTemplate loads the template file. Absolute paths are read as-is
// (they come from the operator's settings, not from clients); relative
// paths resolve inside the vault.
func (s *Service) readTemplate(templatePath string) ([]byte, error) {
	if filepath.IsAbs(templatePath) {
		return os.ReadFile(templatePath)
	}
	return s.vault.ReadFile(templatePath)
}
