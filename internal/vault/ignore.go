package vault

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/vaultmd/vaultd/internal/utils"
)

var defaultIgnoreLines = []string{
	// vault metadata
	".vaultd/",
	".vaultignore",
	"*.tmp",
	"*.tmp.*",
	// editors
	".obsidian/",
	".trash/",
	".vscode",
	".idea",
	// VCS
	".git",
	// OS-specific
	".DS_Store",
	"Thumbs.db",
	"Icon",
}

// IgnoreList decides which vault entries search walkers skip. Defaults
// cover vault metadata and editor litter; a .vaultignore file in the
// vault root extends the list with gitignore syntax.
type IgnoreList struct {
	baseDir string
	ignore  *gitignore.GitIgnore
}

func NewIgnoreList(baseDir string) *IgnoreList {
	return &IgnoreList{baseDir: baseDir}
}

func (l *IgnoreList) Load() {
	ignorePath := filepath.Join(l.baseDir, ignoreFile)
	ignoreLines := defaultIgnoreLines

	if utils.FileExists(ignorePath) {
		rules := 0
		file, err := os.Open(ignorePath)
		if err != nil {
			slog.Warn("failed to open ignore file", "path", ignorePath, "error", err)
		} else {
			defer file.Close()

			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				line := scanner.Text()
				if line != "" {
					ignoreLines = append(ignoreLines, line)
					rules++
				}
			}

			if err := scanner.Err(); err != nil {
				slog.Warn("error reading ignore file", "path", ignorePath, "error", err)
			} else {
				slog.Debug("loaded ignore file", "path", ignorePath, "rules", rules)
			}
		}
	}

	l.ignore = gitignore.CompileIgnoreLines(ignoreLines...)
}

func (l *IgnoreList) Match(relPath string) bool {
	if l.ignore == nil {
		return false
	}
	return l.ignore.MatchesPath(relPath)
}
