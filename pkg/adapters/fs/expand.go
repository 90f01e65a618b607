package fs

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves user-supplied path arguments. Arguments containing glob
// syntax ("notes/**/*.txt") are matched with doublestar; plain paths are
// kept as given so a missing file is reported when it is read. The result
// is sorted and free of duplicates.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if !hasMeta(arg) {
			add(arg)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", arg, err)
		}
		for _, m := range matches {
			add(m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func hasMeta(p string) bool {
	for _, r := range p {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
