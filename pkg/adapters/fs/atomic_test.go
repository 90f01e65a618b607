package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "note.txt")

		require.NoError(t, writeFileAtomic(filename, []byte("Title: T\n"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "Title: T\n", string(got))
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "note.txt")
		require.NoError(t, os.WriteFile(filename, []byte("old"), 0644))

		require.NoError(t, writeFileAtomic(filename, []byte("new"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeFileAtomic(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), e.Name())
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "missing", "note.txt")
		assert.Error(t, writeFileAtomic(filename, []byte("x"), 0644))
	})
}
