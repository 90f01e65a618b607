package core

import (
	"github.com/aretw0/introspection"
)

// CollectionState exposes the schema of a collection for observability.
type CollectionState struct {
	NoteType string   `json:"note_type"`
	Locked   bool     `json:"locked"`
	Fields   []string `json:"fields"`
	Kinds    []string `json:"kinds"`
}

// State implements introspection.Introspectable.
func (c *Collection) State() any {
	schema := c.Schema()
	kinds := make([]string, 0, schema.Len())
	for _, def := range schema.Defs() {
		kinds = append(kinds, def.Kind.String())
	}
	return CollectionState{
		NoteType: c.NoteType.String(),
		Locked:   schema.Locked(),
		Fields:   schema.Labels(),
		Kinds:    kinds,
	}
}

// ComponentType implements introspection.Component.
func (c *Collection) ComponentType() string {
	return "collection"
}

var _ introspection.Introspectable = (*Collection)(nil)
var _ introspection.Component = (*Collection)(nil)
