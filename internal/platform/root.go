package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoConfig is returned by FindConfig when no config file exists in
// startDir or any of its parents.
var ErrNoConfig = errors.New("no collection config found")

// FindConfig looks upwards from startDir for one of ConfigFileNames and
// returns its absolute path.
func FindConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range ConfigFileNames {
			if hasFile(dir, name) {
				return filepath.Join(dir, name), nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
