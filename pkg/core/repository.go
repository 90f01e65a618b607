package core

import "context"

// Repository defines the contract for loading and storing notes.
// Adhering to this interface keeps the codec independent of where note
// text lives (filesystem, memory, etc).
type Repository interface {
	// Load reads the note identified by id into c, growing c's dictionary
	// with any labels it accepts.
	Load(ctx context.Context, id string, c *Collection) (*Note, error)

	// Save writes n under id in its recorded dialect.
	Save(ctx context.Context, id string, n *Note) error
}
