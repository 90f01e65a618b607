package platform

import (
	"log/slog"

	"github.com/aretw0/notenik/pkg/core"
)

// options holds the configuration for opening a collection. Pointer
// fields distinguish "not set" from a zero value, so explicit options win
// over the config file and the file wins over defaults.
type options struct {
	logger      *slog.Logger
	noteType    *core.NoteType
	template    *string
	locked      *bool
	configFile  string
	noConfig    bool
	valueColumn *int
	repository  core.Repository
}

// Option defines a functional option for configuring a collection.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger handed to the parser, writer and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNoteType restricts which labels the collection adopts as fields.
func WithNoteType(t core.NoteType) Option {
	return func(o *options) {
		o.noteType = &t
	}
}

// WithTemplate reads a template note to seed the schema and locks the
// dictionary afterwards.
func WithTemplate(path string) Option {
	return func(o *options) {
		o.template = &path
	}
}

// WithLocked locks or unlocks the dictionary once the collection is set up.
func WithLocked(locked bool) Option {
	return func(o *options) {
		o.locked = &locked
	}
}

// WithConfigFile reads settings from path instead of searching for a
// .notenik.yaml, .notenik.yml or .notenik.toml file.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithoutConfigFile skips config file discovery entirely.
func WithoutConfigFile() Option {
	return func(o *options) {
		o.noConfig = true
	}
}

// WithValueColumn sets the column at which the classic writer starts
// short values.
func WithValueColumn(n int) Option {
	return func(o *options) {
		o.valueColumn = &n
	}
}

// WithRepository replaces the filesystem store used for Load and Save.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
