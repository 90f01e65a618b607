package core

import (
	"fmt"
	"strings"
)

// NoteType restricts which labels a collection will adopt as new fields.
type NoteType int

const (
	// NoteTypeGeneral accepts any label.
	NoteTypeGeneral NoteType = iota
	// NoteTypeSimple accepts only Title, Tags, Link, Body and Date Added.
	NoteTypeSimple
	// NoteTypeExpanded adds a fixed set of well-known fields to the simple set.
	NoteTypeExpanded
)

func (t NoteType) String() string {
	switch t {
	case NoteTypeSimple:
		return "simple"
	case NoteTypeExpanded:
		return "expanded"
	default:
		return "general"
	}
}

// ParseNoteType maps a configuration string to a NoteType.
func ParseNoteType(s string) (NoteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general":
		return NoteTypeGeneral, nil
	case "simple":
		return NoteTypeSimple, nil
	case "expanded":
		return NoteTypeExpanded, nil
	}
	return NoteTypeGeneral, fmt.Errorf("%w: %q", ErrUnknownNoteType, s)
}

// MaxLabelLength is the longest common form accepted as a label.
const MaxLabelLength = 48

var urlSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"ftp":    true,
	"mailto": true,
}

// coreLabels are accepted by every note type; expandedLabels are accepted
// by every type but simple. Matching is on the label's common form, so
// aliases such as URL or Keywords count as arbitrary labels.
var (
	coreLabels = map[string]bool{
		CommonTitle: true, CommonTags: true, CommonLink: true, CommonBody: true, CommonDateAdded: true,
	}
	expandedLabels = map[string]bool{
		"author": true, "code": true, "date": true, "index": true, "rating": true, "recurs": true,
		"seq": true, "status": true, "teaser": true, "type": true, "worktitle": true,
	}
)

// Collection owns the schema shared by a set of notes.
type Collection struct {
	NoteType NoteType
	dict     *Dictionary
}

// NewCollection creates a collection whose dictionary already holds Title
// and Body.
func NewCollection(noteType NoteType) *Collection {
	c := &Collection{NoteType: noteType, dict: NewDictionary()}
	c.dict.AddLabel("Title")
	c.dict.AddLabel("Body")
	return c
}

// Dict exposes the collection's dictionary.
func (c *Collection) Dict() *Dictionary { return c.dict }

// Schema returns a snapshot of the collection's dictionary.
func (c *Collection) Schema() Schema { return c.dict.Schema() }

// Clone returns a collection with its own copy of the dictionary, suitable
// for handing to another goroutine.
func (c *Collection) Clone() *Collection {
	return &Collection{NoteType: c.NoteType, dict: c.dict.Clone()}
}

// Def decides whether label names a field of this collection, adding a
// new definition to the dictionary when the label is acceptable. A false
// result means the text is not a label and belongs to the note content.
func (c *Collection) Def(label string) (*FieldDef, bool) {
	return c.decide(label, true)
}

// Accepts reports what Def would decide without growing the dictionary.
func (c *Collection) Accepts(label string) bool {
	_, ok := c.decide(label, false)
	return ok
}

func (c *Collection) decide(label string, grow bool) (*FieldDef, bool) {
	def := NewFieldDef(label)
	common := def.Common()
	if common == "" || len(common) > MaxLabelLength {
		return nil, false
	}
	if urlSchemes[common] {
		return nil, false
	}
	if existing, ok := c.dict.byName[common]; ok {
		return existing, true
	}

	add := func() (*FieldDef, bool) {
		if !grow {
			return def, true
		}
		return c.dict.Add(def)
	}

	if c.dict.Locked() {
		if common != CommonDateAdded {
			return nil, false
		}
		return add()
	}

	if coreLabels[common] {
		return add()
	}
	if c.NoteType == NoteTypeSimple {
		return nil, false
	}
	if expandedLabels[common] {
		return add()
	}
	if c.NoteType == NoteTypeExpanded {
		return nil, false
	}
	return add()
}
