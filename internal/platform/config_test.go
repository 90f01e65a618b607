package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("YAML", func(t *testing.T) {
		path := write("a.yaml", "note_type: expanded\ntemplate: template.txt\nlocked: true\nvalue_column: 12\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "expanded", cfg.NoteType)
		assert.Equal(t, filepath.Join(dir, "template.txt"), cfg.Template)
		require.NotNil(t, cfg.Locked)
		assert.True(t, *cfg.Locked)
		assert.Equal(t, 12, cfg.ValueColumn)
	})

	t.Run("TOML", func(t *testing.T) {
		path := write("b.toml", "note_type = \"simple\"\ntemplate = \"/abs/template.txt\"\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "simple", cfg.NoteType)
		assert.Equal(t, "/abs/template.txt", cfg.Template)
		assert.Nil(t, cfg.Locked)
	})

	t.Run("Empty YAML", func(t *testing.T) {
		cfg, err := LoadConfig(write("empty.yml", ""))
		require.NoError(t, err)
		assert.Equal(t, FileConfig{}, *cfg)
	})

	t.Run("Unknown Keys", func(t *testing.T) {
		_, err := LoadConfig(write("bad.yaml", "note_kind: simple\n"))
		assert.Error(t, err)

		_, err = LoadConfig(write("bad.toml", "note_kind = \"simple\"\n"))
		assert.Error(t, err)
	})

	t.Run("Negative Column", func(t *testing.T) {
		_, err := LoadConfig(write("neg.yaml", "value_column: -1\n"))
		assert.ErrorContains(t, err, "value_column")
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		_, err := LoadConfig(write("c.json", "{}"))
		assert.ErrorContains(t, err, "unsupported")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
