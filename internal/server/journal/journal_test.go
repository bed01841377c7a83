package journal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultmd/vaultd/internal/db"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	database, err := db.NewSqliteDB()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	svc, err := NewService(database)
	require.NoError(t, err)
	return svc
}

func TestRecordAndList(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Record("notes/today.md", OpPatch, "abc123", 42)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.CreatedAt)

	entries, err := svc.List("", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes/today.md", entries[0].Path)
	assert.Equal(t, OpPatch, entries[0].Op)
	assert.Equal(t, "abc123", entries[0].Fingerprint)
	assert.EqualValues(t, 42, entries[0].Size)
}

func TestListFiltersByPath(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Record("a.md", OpCreate, "f1", 1)
	require.NoError(t, err)
	_, err = svc.Record("b.md", OpCreate, "f2", 2)
	require.NoError(t, err)
	_, err = svc.Record("a.md", OpReplace, "f3", 3)
	require.NoError(t, err)

	entries, err := svc.List("a.md", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "a.md", e.Path)
	}
}

func TestListNewestFirstAndLimited(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 5; i++ {
		_, err := svc.Record("note.md", OpPatch, fmt.Sprintf("f%d", i), int64(i))
		require.NoError(t, err)
	}

	entries, err := svc.List("note.md", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "f4", entries[0].Fingerprint)
}

func TestListEmptyJournal(t *testing.T) {
	svc := newTestService(t)

	entries, err := svc.List("", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}
