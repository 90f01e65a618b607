package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfig(t *testing.T) {
	// base/
	//   notes/ (.notenik.toml)
	//     projects/
	//       archive/
	//   loose/
	baseDir := t.TempDir()
	notesDir := filepath.Join(baseDir, "notes")
	projectsDir := filepath.Join(notesDir, "projects")
	archiveDir := filepath.Join(projectsDir, "archive")
	looseDir := filepath.Join(baseDir, "loose")

	require.NoError(t, os.MkdirAll(archiveDir, 0755))
	require.NoError(t, os.MkdirAll(looseDir, 0755))
	marker := filepath.Join(notesDir, ".notenik.toml")
	require.NoError(t, os.WriteFile(marker, []byte("note_type = \"simple\"\n"), 0644))
	// a directory with a config name is not a config file
	require.NoError(t, os.Mkdir(filepath.Join(projectsDir, ".notenik.yaml"), 0755))

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{"Start at Root", notesDir, marker, false},
		{"Start in Subdir", projectsDir, marker, false},
		{"Start Nested Deeply", archiveDir, marker, false},
		{"No Config Found", looseDir, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConfig(tt.startPath)
			if tt.wantErr {
				// a config above the temp dir would make this case meaningless
				if err == nil {
					t.Skipf("found unrelated config %s", got)
				}
				assert.ErrorIs(t, err, ErrNoConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindConfig_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".notenik.toml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".notenik.yaml"), nil, 0644))

	got, err := FindConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".notenik.yaml"), got)
}
