package dailynote

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultmd/vaultd/internal/vault"
)

func newTestService(t *testing.T) (*Service, *vault.Vault) {
	t.Helper()

	v, err := vault.Open(t.TempDir())
	require.NoError(t, err)

	s := NewService(v)
	s.now = func() time.Time { return fixedTime }
	return s, v
}

func TestTodayCreatesEmptyNote(t *testing.T) {
	s, v := newTestService(t)

	note, err := s.Today()
	require.NoError(t, err)

	assert.Equal(t, "daily/2025/2025-03-07.md", note.Path)
	assert.Empty(t, note.Content)
	assert.FileExists(t, filepath.Join(v.Root(), "daily", "2025", "2025-03-07.md"))
}

func TestTodayReturnsExistingNote(t *testing.T) {
	s, v := newTestService(t)

	abs := filepath.Join(v.Root(), "daily", "2025", "2025-03-07.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte("already here\n"), 0o644))

	note, err := s.Today()
	require.NoError(t, err)
	assert.Equal(t, "already here\n", note.Content)
	assert.Equal(t, "daily/2025/2025-03-07.md", note.Path)
}

func TestTodayRendersTemplate(t *testing.T) {
	s, v := newTestService(t)

	tpl := "# Daily note for {{ date \"2006-01-02\" }}\n\n- [ ] review inbox\n"
	require.NoError(t, os.MkdirAll(filepath.Join(v.Root(), "templates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root(), "templates", "daily.md"), []byte(tpl), 0o644))
	v.Settings().DailyNote.Template = "templates/daily.md"

	note, err := s.Today()
	require.NoError(t, err)
	assert.Equal(t, "# Daily note for 2025-03-07\n\n- [ ] review inbox\n", note.Content)
}

func TestTodayMissingTemplateCreatesEmptyNote(t *testing.T) {
	s, v := newTestService(t)
	v.Settings().DailyNote.Template = "templates/nope.md"

	note, err := s.Today()
	require.NoError(t, err)
	assert.Empty(t, note.Content)
}

func TestTodayCustomLocation(t *testing.T) {
	s, v := newTestService(t)
	v.Settings().DailyNote.Location = "journal/{now:%Y-%m}/{now:%d}.md"

	note, err := s.Today()
	require.NoError(t, err)
	assert.Equal(t, "journal/2025-03/07.md", note.Path)
}

func TestTodayRejectsEscapingLocation(t *testing.T) {
	s, v := newTestService(t)
	v.Settings().DailyNote.Location = "../{now:%Y}.md"

	_, err := s.Today()
	require.Error(t, err)
	assert.ErrorIs(t, err, vault.ErrInvalidPath)
}
