package core

import (
	"github.com/aretw0/notenik/pkg/value"
)

// Dictionary is the growable, ordered schema of a collection.
//
// Title is always first. Body and Date Added stay at the end; every other
// definition is inserted ahead of them in first-seen order. Once locked the
// dictionary refuses new definitions other than Date Added, though existing
// ones still resolve.
//
// A Dictionary is not safe for concurrent use.
type Dictionary struct {
	defs   []*FieldDef
	byName map[string]*FieldDef
	locked bool
}

// NewDictionary returns an empty, unlocked dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{byName: make(map[string]*FieldDef)}
}

func trailing(def *FieldDef) bool {
	return def.Kind == value.KindBody || def.Kind == value.KindDateAdded
}

// Add inserts def unless a definition with the same common form exists, in
// which case the existing one is returned. A locked dictionary returns
// (nil, false) for unknown labels, except Date Added which may always be
// added.
func (d *Dictionary) Add(def *FieldDef) (*FieldDef, bool) {
	if existing, ok := d.byName[def.Common()]; ok {
		return existing, true
	}
	if def.Common() == "" || (d.locked && def.Common() != CommonDateAdded) {
		return nil, false
	}

	switch {
	case def.Kind == value.KindTitle:
		d.defs = append([]*FieldDef{def}, d.defs...)
	case trailing(def):
		d.defs = append(d.defs, def)
	default:
		at := len(d.defs)
		for i, existing := range d.defs {
			if trailing(existing) {
				at = i
				break
			}
		}
		d.defs = append(d.defs, nil)
		copy(d.defs[at+1:], d.defs[at:])
		d.defs[at] = def
	}
	d.byName[def.Common()] = def
	return def, true
}

// AddLabel is shorthand for Add(NewFieldDef(raw)).
func (d *Dictionary) AddLabel(raw string) (*FieldDef, bool) {
	return d.Add(NewFieldDef(raw))
}

// Remove deletes the definition for label, if present.
func (d *Dictionary) Remove(label string) {
	common := CommonForm(label)
	def, ok := d.byName[common]
	if !ok {
		return
	}
	delete(d.byName, common)
	for i, existing := range d.defs {
		if existing == def {
			d.defs = append(d.defs[:i], d.defs[i+1:]...)
			break
		}
	}
}

// Lookup resolves a label to its definition.
func (d *Dictionary) Lookup(label string) (*FieldDef, bool) {
	def, ok := d.byName[CommonForm(label)]
	return def, ok
}

// Contains reports whether a definition exists for the common form.
func (d *Dictionary) Contains(common string) bool {
	_, ok := d.byName[common]
	return ok
}

// Defs returns the definitions in schema order.
func (d *Dictionary) Defs() []*FieldDef {
	return append([]*FieldDef(nil), d.defs...)
}

// Len returns the number of definitions.
func (d *Dictionary) Len() int { return len(d.defs) }

// Lock stops the dictionary from growing.
func (d *Dictionary) Lock() { d.locked = true }

// Unlock lets the dictionary grow again.
func (d *Dictionary) Unlock() { d.locked = false }

// Locked reports whether growth is currently refused.
func (d *Dictionary) Locked() bool { return d.locked }

// Clone returns an independent copy sharing the same definitions.
func (d *Dictionary) Clone() *Dictionary {
	c := &Dictionary{
		defs:   d.Defs(),
		byName: make(map[string]*FieldDef, len(d.byName)),
		locked: d.locked,
	}
	for k, v := range d.byName {
		c.byName[k] = v
	}
	return c
}

// Schema returns an immutable snapshot of the current definitions.
func (d *Dictionary) Schema() Schema {
	return Schema{defs: d.Defs(), locked: d.locked}
}

// Schema is a read-only view of a dictionary at one point in time. Writers
// and other downstream consumers hold a Schema so later growth of the
// dictionary cannot change what they iterate over.
type Schema struct {
	defs   []*FieldDef
	locked bool
}

// Defs returns the definitions in schema order.
func (s Schema) Defs() []*FieldDef {
	return append([]*FieldDef(nil), s.defs...)
}

// Len returns the number of definitions.
func (s Schema) Len() int { return len(s.defs) }

// Locked reports whether the dictionary was locked when the snapshot was taken.
func (s Schema) Locked() bool { return s.locked }

// Labels returns the proper labels in schema order.
func (s Schema) Labels() []string {
	labels := make([]string, len(s.defs))
	for i, def := range s.defs {
		labels[i] = def.Label.Proper
	}
	return labels
}
