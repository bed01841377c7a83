package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadContent(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("inline content wins", func(t *testing.T) {
		got, err := readContent(cmd, "inline", "ignored.md")
		require.NoError(t, err)
		assert.Equal(t, "inline", got)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.md")
		require.NoError(t, os.WriteFile(path, []byte("from file\n"), 0o644))

		got, err := readContent(cmd, "", path)
		require.NoError(t, err)
		assert.Equal(t, "from file\n", got)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		stdinCmd := &cobra.Command{}
		stdinCmd.SetIn(strings.NewReader("piped\n"))

		got, err := readContent(stdinCmd, "", "-")
		require.NoError(t, err)
		assert.Equal(t, "piped\n", got)
	})

	t.Run("nothing set", func(t *testing.T) {
		got, err := readContent(cmd, "", "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readContent(cmd, "", filepath.Join(t.TempDir(), "nope.md"))
		assert.Error(t, err)
	})
}
