package platform

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames are the collection config files looked for, in order.
var ConfigFileNames = []string{".notenik.yaml", ".notenik.yml", ".notenik.toml"}

// FileConfig is the on-disk collection configuration.
type FileConfig struct {
	NoteType    string `yaml:"note_type" toml:"note_type"`
	Template    string `yaml:"template" toml:"template"`
	Locked      *bool  `yaml:"locked" toml:"locked"`
	ValueColumn int    `yaml:"value_column" toml:"value_column"`
}

// LoadConfig parses a YAML or TOML config file, chosen by extension.
// A relative template path is resolved against the file's directory.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	if cfg.Template != "" && !filepath.IsAbs(cfg.Template) {
		cfg.Template = filepath.Join(filepath.Dir(path), cfg.Template)
	}
	if cfg.ValueColumn < 0 {
		return nil, fmt.Errorf("config %s: value_column must not be negative", path)
	}
	return &cfg, nil
}
