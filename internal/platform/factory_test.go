package platform

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notenik/pkg/codec"
	"github.com/aretw0/notenik/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	env, err := New(t.TempDir(), WithoutConfigFile())
	require.NoError(t, err)

	assert.Equal(t, core.NoteTypeGeneral, env.Collection.NoteType)
	assert.False(t, env.Collection.Dict().Locked())
	assert.Equal(t, codec.DefaultValueColumn, env.Writer.ValueColumn)
	assert.Same(t, env.Store, env.Repository)
	assert.Empty(t, env.ConfigFile)
}

func TestNew_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.txt"), []byte("Title:\nStatus:\nBody:\n"), 0644))
	cfgPath := filepath.Join(dir, ".notenik.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("note_type: expanded\ntemplate: template.txt\nvalue_column: 10\n"), 0644))

	var buf bytes.Buffer
	env, err := New(dir, WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	require.NoError(t, err)

	assert.Equal(t, cfgPath, env.ConfigFile)
	assert.Equal(t, core.NoteTypeExpanded, env.Collection.NoteType)
	assert.True(t, env.Collection.Dict().Locked())
	assert.Equal(t, []string{"Title", "Status", "Body"}, env.Collection.Schema().Labels())
	assert.Equal(t, 10, env.Writer.ValueColumn)
	assert.Contains(t, buf.String(), "template loaded")
}

func TestNew_OptionsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("note_type = \"simple\"\nlocked = true\nvalue_column = 20\n"), 0644))

	env, err := New(dir,
		WithConfigFile(cfgPath),
		WithNoteType(core.NoteTypeGeneral),
		WithLocked(false),
		WithValueColumn(4),
	)
	require.NoError(t, err)

	assert.Equal(t, core.NoteTypeGeneral, env.Collection.NoteType)
	assert.False(t, env.Collection.Dict().Locked())
	assert.Equal(t, 4, env.Writer.ValueColumn)
}

func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("note_type: fancy\n"), 0644))

	_, err := New(dir, WithConfigFile(bad))
	assert.ErrorIs(t, err, core.ErrUnknownNoteType)

	_, err = New(dir, WithoutConfigFile(), WithTemplate(filepath.Join(dir, "missing.txt")))
	assert.Error(t, err)
}

type memoryRepo struct {
	notes map[string]*core.Note
}

func (m *memoryRepo) Load(_ context.Context, id string, _ *core.Collection) (*core.Note, error) {
	return m.notes[id], nil
}

func (m *memoryRepo) Save(_ context.Context, id string, n *core.Note) error {
	m.notes[id] = n
	return nil
}

func TestNew_WithRepository(t *testing.T) {
	repo := &memoryRepo{notes: make(map[string]*core.Note)}
	env, err := New(t.TempDir(), WithoutConfigFile(), WithRepository(repo))
	require.NoError(t, err)

	n := core.NewNote(env.Collection)
	require.NoError(t, env.Repository.Save(context.Background(), "x", n))
	assert.Same(t, n, repo.notes["x"])
}
