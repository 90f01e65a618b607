package notenik

import (
	"context"
	"log/slog"

	"github.com/aretw0/notenik/internal/platform"
	"github.com/aretw0/notenik/pkg/codec"
	"github.com/aretw0/notenik/pkg/core"
	"github.com/aretw0/notenik/pkg/value"
)

// --- Types ---

type (
	Note       = core.Note
	Field      = core.Field
	FieldDef   = core.FieldDef
	Label      = core.Label
	Collection = core.Collection
	Dictionary = core.Dictionary
	Schema     = core.Schema
	Dialect    = core.Dialect
	NoteType   = core.NoteType
	Repository = core.Repository
	Sequence   = value.Sequence
)

const (
	DialectNotenik       = core.DialectNotenik
	DialectMarkdown      = core.DialectMarkdown
	DialectMultiMarkdown = core.DialectMultiMarkdown
	DialectPlainText     = core.DialectPlainText

	NoteTypeGeneral  = core.NoteTypeGeneral
	NoteTypeSimple   = core.NoteTypeSimple
	NoteTypeExpanded = core.NoteTypeExpanded
)

// --- Configuration ---

// Option defines a functional option for opening a notebook.
type Option = platform.Option

// WithLogger sets the logger for parsing, writing and storage.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithNoteType sets which labels the collection accepts.
func WithNoteType(t NoteType) Option {
	return platform.WithNoteType(t)
}

// WithTemplate seeds the collection schema from a template note and locks it.
func WithTemplate(path string) Option {
	return platform.WithTemplate(path)
}

// WithLocked locks or unlocks the collection dictionary.
func WithLocked(locked bool) Option {
	return platform.WithLocked(locked)
}

// WithConfigFile reads settings from path instead of searching for a
// .notenik.yaml or .notenik.toml above the notebook directory.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithoutConfigFile ignores any config file.
func WithoutConfigFile() Option {
	return platform.WithoutConfigFile()
}

// WithValueColumn sets the column at which classic field values start.
func WithValueColumn(col int) Option {
	return platform.WithValueColumn(col)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo Repository) Option {
	return platform.WithRepository(repo)
}

// --- Notebook ---

// Notebook is a collection of notes on disk, or in whatever Repository was
// injected.
type Notebook struct {
	env *platform.Env
}

// Open creates a notebook rooted at dir.
func Open(dir string, opts ...Option) (*Notebook, error) {
	env, err := platform.New(dir, opts...)
	if err != nil {
		return nil, err
	}
	return &Notebook{env: env}, nil
}

// Collection returns the notebook's collection.
func (nb *Notebook) Collection() *Collection { return nb.env.Collection }

// ConfigFile returns the config file that was applied, if any.
func (nb *Notebook) ConfigFile() string { return nb.env.ConfigFile }

// NewNote creates an empty classic note in the notebook's collection.
func (nb *Notebook) NewNote() *Note { return core.NewNote(nb.env.Collection) }

// Load reads the note stored under id.
func (nb *Notebook) Load(ctx context.Context, id string) (*Note, error) {
	return nb.env.Repository.Load(ctx, id, nb.env.Collection)
}

// Save stores n under id.
func (nb *Notebook) Save(ctx context.Context, id string, n *Note) error {
	return nb.env.Repository.Save(ctx, id, n)
}

// Parse reads text into a note of the notebook's collection.
func (nb *Notebook) Parse(text, defaultTitle string) *Note {
	return nb.env.Parser.Parse(text, nb.env.Collection, defaultTitle)
}

// Write renders n with the notebook's writer settings.
func (nb *Notebook) Write(n *Note) string {
	return nb.env.Writer.Write(n)
}

// --- Standalone ---

// NewCollection creates a collection of the given note type.
func NewCollection(t NoteType) *Collection {
	return core.NewCollection(t)
}

// Parse reads text into a note of coll without logging.
func Parse(text string, coll *Collection, defaultTitle string) *Note {
	return codec.NewParser(nil).Parse(text, coll, defaultTitle)
}

// Write renders n with the default writer settings. Like codec.Writer it
// may escalate n's dialect to classic Notenik.
func Write(n *Note) string {
	return codec.NewWriter(nil).Write(n)
}

// NewSequence parses raw as a Sequence value.
func NewSequence(raw string) *Sequence {
	return value.NewSequence(raw)
}
