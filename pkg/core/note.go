package core

import (
	"fmt"

	"github.com/aretw0/notenik/pkg/value"
)

// DefaultTitle is used when neither the text nor the caller supplies a title.
const DefaultTitle = "Untitled"

// Field is one populated field of a note.
type Field struct {
	Def   *FieldDef
	Value value.Value
}

// Note is the structured form of one note file.
//
// Its fields are always drawn from the owning collection's dictionary, and
// Dialect records which layout the note was read from and will be written in.
type Note struct {
	Collection *Collection
	Dialect    Dialect
	// Fence is the MultiMarkdown metadata delimiter the note was read with,
	// or empty when the metadata block was not fenced.
	Fence string

	fields map[string]Field
}

// NewNote creates an empty note in the classic dialect.
func NewNote(c *Collection) *Note {
	return &Note{Collection: c, fields: make(map[string]Field)}
}

// Set stores raw under def, replacing any previous value. def must belong
// to the collection's dictionary.
func (n *Note) Set(def *FieldDef, raw string) error {
	if def == nil {
		return ErrEmptyLabel
	}
	known, ok := n.Collection.Dict().byName[def.Common()]
	if !ok || known != def {
		return fmt.Errorf("%w: %s", ErrUnknownField, def.Label.Proper)
	}
	n.fields[def.Common()] = Field{Def: def, Value: def.Parse(raw)}
	return nil
}

// SetField resolves label through the collection's arbiter and stores raw.
func (n *Note) SetField(label, raw string) error {
	if CommonForm(label) == "" {
		return ErrEmptyLabel
	}
	def, ok := n.Collection.Def(label)
	if !ok {
		if n.Collection.Dict().Locked() {
			return fmt.Errorf("%w: %s", ErrLocked, label)
		}
		return fmt.Errorf("%w: %s", ErrUnknownField, label)
	}
	return n.Set(def, raw)
}

// SetValue stores an already constructed value, e.g. an incremented sequence.
func (n *Note) SetValue(def *FieldDef, v value.Value) error {
	if err := n.Set(def, v.String()); err != nil {
		return err
	}
	n.fields[def.Common()] = Field{Def: def, Value: v}
	return nil
}

// Remove deletes the field for label.
func (n *Note) Remove(label string) {
	delete(n.fields, CommonForm(label))
}

// Field returns the field stored under label.
func (n *Note) Field(label string) (Field, bool) {
	f, ok := n.fields[CommonForm(label)]
	return f, ok
}

// FieldAsString returns the text of the field stored under label, or "".
func (n *Note) FieldAsString(label string) string {
	if f, ok := n.Field(label); ok {
		return f.Value.String()
	}
	return ""
}

// Fields returns the populated fields in schema order.
func (n *Note) Fields() []Field {
	var out []Field
	for _, def := range n.Collection.Dict().Defs() {
		if f, ok := n.fields[def.Common()]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the number of populated fields.
func (n *Note) Len() int { return len(n.fields) }

// OfKind returns the first populated field of the given kind in schema order.
func (n *Note) OfKind(kind value.Kind) (Field, bool) {
	for _, f := range n.Fields() {
		if f.Def.Kind == kind && !f.Value.IsEmpty() {
			return f, true
		}
	}
	return Field{}, false
}

func (n *Note) kindString(kind value.Kind) string {
	if f, ok := n.OfKind(kind); ok {
		return f.Value.String()
	}
	return ""
}

// Title returns the note title.
func (n *Note) Title() string { return n.kindString(value.KindTitle) }

// Body returns the note body.
func (n *Note) Body() string { return n.kindString(value.KindBody) }

// Tags returns the raw tags text.
func (n *Note) Tags() string { return n.kindString(value.KindTags) }

// HasTitle reports whether a non-empty title is present.
func (n *Note) HasTitle() bool {
	_, ok := n.OfKind(value.KindTitle)
	return ok
}

// HasBody reports whether a non-empty body is present.
func (n *Note) HasBody() bool {
	_, ok := n.OfKind(value.KindBody)
	return ok
}

// HasTags reports whether non-empty tags are present.
func (n *Note) HasTags() bool {
	_, ok := n.OfKind(value.KindTags)
	return ok
}

// Clone returns a copy of the note sharing the same collection.
func (n *Note) Clone() *Note {
	c := &Note{Collection: n.Collection, Dialect: n.Dialect, Fence: n.Fence, fields: make(map[string]Field, len(n.fields))}
	for k, f := range n.fields {
		if seq, ok := f.Value.(*value.Sequence); ok {
			f.Value = value.NewSequence(seq.String())
		}
		c.fields[k] = f
	}
	return c
}

// Map returns the populated fields keyed by proper label.
func (n *Note) Map() map[string]string {
	out := make(map[string]string, len(n.fields))
	for _, f := range n.fields {
		out[f.Def.Label.Proper] = f.Value.String()
	}
	return out
}
