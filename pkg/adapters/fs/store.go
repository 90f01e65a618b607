// Package fs reads and writes note files on the local filesystem.
//
// It is an adapter around the codec: the parser never touches storage, and
// every file operation (atomic writes, template loading, watching a file,
// checking a batch of files) lives here.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/notenik/pkg/codec"
	"github.com/aretw0/notenik/pkg/core"
)

// ErrNotFound is returned when a note file does not exist.
var ErrNotFound = errors.New("note not found")

// DefaultPerm is the mode used for new note files.
const DefaultPerm os.FileMode = 0644

// Config holds the configuration for a Store.
type Config struct {
	// Path is the directory relative ids are resolved against. Empty means
	// the working directory.
	Path   string
	Logger *slog.Logger
	// Writer renders notes on save. Nil means a writer with default settings.
	Writer *codec.Writer
	// Perm is the mode for newly created files. Zero means DefaultPerm.
	Perm os.FileMode
}

// Store implements core.Repository on top of plain files.
type Store struct {
	config Config
	parser *codec.Parser
	writer *codec.Writer

	mu            sync.RWMutex
	reads         int
	writes        int
	lastPath      string
	watcherActive bool
}

// NewStore creates a filesystem-backed note store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	w := config.Writer
	if w == nil {
		w = codec.NewWriter(config.Logger)
	}
	return &Store{
		config: config,
		parser: codec.NewParser(config.Logger),
		writer: w,
	}
}

var _ core.Repository = (*Store)(nil)

// Resolve maps an id to a file path under the store's directory.
func (s *Store) Resolve(id string) string {
	if filepath.IsAbs(id) || s.config.Path == "" {
		return filepath.Clean(id)
	}
	return filepath.Join(s.config.Path, id)
}

// Load implements core.Repository.
func (s *Store) Load(ctx context.Context, id string, c *core.Collection) (*core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.ReadNote(s.Resolve(id), c)
}

// Save implements core.Repository.
func (s *Store) Save(ctx context.Context, id string, n *core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.WriteNote(s.Resolve(id), n)
}

// ReadNote parses the file at path into c. A note without a title gets one
// derived from the file name.
func (s *Store) ReadNote(path string, c *core.Collection) (*core.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read note %s: %w", path, err)
	}
	n := s.parser.Parse(string(data), c, TitleFromPath(path))
	s.config.Logger.Debug("note read", "path", path, "dialect", n.Dialect.String(), "fields", n.Len())
	s.record(path, false)
	return n, nil
}

// WriteNote renders n and atomically replaces the file at path. Missing
// parent directories are created.
func (s *Store) WriteNote(path string, n *core.Note) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	text := s.writer.Write(n)
	if err := writeFileAtomic(path, []byte(text), s.config.Perm); err != nil {
		return err
	}
	s.config.Logger.Debug("note written", "path", path, "dialect", n.Dialect.String())
	s.record(path, true)
	return nil
}

// LoadTemplate reads a template note into c and locks c's dictionary, so
// the template's labels become the collection's fixed schema.
func (s *Store) LoadTemplate(path string, c *core.Collection) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", path, err)
	}
	s.parser.ApplyTemplate(string(data), c)
	s.config.Logger.Info("template loaded", "path", path, "fields", c.Dict().Len())
	return nil
}

// Writer returns the writer used by WriteNote.
func (s *Store) Writer() *codec.Writer { return s.writer }

func (s *Store) record(path string, write bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if write {
		s.writes++
	} else {
		s.reads++
	}
	s.lastPath = path
}

// TitleFromPath derives a fallback note title from a file name.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
