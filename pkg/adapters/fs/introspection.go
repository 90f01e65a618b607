package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	Perm          string `json:"perm"`
	ValueColumn   int    `json:"value_column"`
	Reads         int    `json:"reads"`
	Writes        int    `json:"writes"`
	LastPath      string `json:"last_path,omitempty"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:          s.config.Path,
		Perm:          s.config.Perm.String(),
		ValueColumn:   s.writer.ValueColumn,
		Reads:         s.reads,
		Writes:        s.writes,
		LastPath:      s.lastPath,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
