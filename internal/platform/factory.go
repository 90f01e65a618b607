package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/notenik/pkg/adapters/fs"
	"github.com/aretw0/notenik/pkg/codec"
	"github.com/aretw0/notenik/pkg/core"
)

// Env is a collection wired to everything needed to read and write its
// notes.
type Env struct {
	Collection *core.Collection
	Parser     *codec.Parser
	Writer     *codec.Writer
	Store      *fs.Store
	Repository core.Repository
	Logger     *slog.Logger
	// ConfigFile is the config file that was applied, if any.
	ConfigFile string
}

// New opens the collection rooted at dir. Settings come from explicit
// options first, then the collection config file, then defaults.
//
//	env, err := platform.New("./notes", platform.WithNoteType(core.NoteTypeExpanded))
func New(dir string, opts ...Option) (*Env, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg, cfgPath, err := resolveConfig(dir, o)
	if err != nil {
		return nil, err
	}
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}

	noteType := core.NoteTypeGeneral
	if o.noteType != nil {
		noteType = *o.noteType
	} else if cfg.NoteType != "" {
		if noteType, err = core.ParseNoteType(cfg.NoteType); err != nil {
			return nil, fmt.Errorf("config %s: %w", cfgPath, err)
		}
	}

	writer := codec.NewWriter(logger)
	if o.valueColumn != nil {
		writer.ValueColumn = *o.valueColumn
	} else if cfg.ValueColumn > 0 {
		writer.ValueColumn = cfg.ValueColumn
	}

	store := fs.NewStore(fs.Config{Path: dir, Logger: logger, Writer: writer})
	coll := core.NewCollection(noteType)

	template := cfg.Template
	if o.template != nil {
		template = *o.template
	}
	if template != "" {
		if err := store.LoadTemplate(template, coll); err != nil {
			return nil, err
		}
	}

	locked := cfg.Locked
	if o.locked != nil {
		locked = o.locked
	}
	if locked != nil {
		if *locked {
			coll.Dict().Lock()
		} else {
			coll.Dict().Unlock()
		}
	}

	var repo core.Repository = store
	if o.repository != nil {
		repo = o.repository
	}

	return &Env{
		Collection: coll,
		Parser:     codec.NewParser(logger),
		Writer:     writer,
		Store:      store,
		Repository: repo,
		Logger:     logger,
		ConfigFile: cfgPath,
	}, nil
}

func resolveConfig(dir string, o *options) (*FileConfig, string, error) {
	if o.noConfig {
		return &FileConfig{}, "", nil
	}
	path := o.configFile
	if path == "" {
		found, err := FindConfig(dir)
		if errors.Is(err, ErrNoConfig) {
			return &FileConfig{}, "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
