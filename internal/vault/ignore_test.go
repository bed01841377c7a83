package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreDefaults(t *testing.T) {
	l := NewIgnoreList(t.TempDir())
	l.Load()

	ignored := []string{
		".vaultd/journal.db",
		".vaultignore",
		".git/config",
		".obsidian/workspace.json",
		".DS_Store",
		"notes/.note.md.tmp.1234",
		"draft.tmp",
	}
	for _, p := range ignored {
		assert.True(t, l.Match(p), "expected %q to be ignored", p)
	}

	kept := []string{
		"notes/today.md",
		"readme.txt",
		"daily/2025/2025-08-23.md",
	}
	for _, p := range kept {
		assert.False(t, l.Match(p), "expected %q to be kept", p)
	}
}

func TestIgnoreFileExtendsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ignoreFile), []byte("drafts/\n*.secret\n"), 0o644))

	l := NewIgnoreList(dir)
	l.Load()

	assert.True(t, l.Match("drafts/wip.md"))
	assert.True(t, l.Match("notes/key.secret"))
	assert.False(t, l.Match("notes/today.md"))
	// defaults still apply
	assert.True(t, l.Match(".git/HEAD"))
}
