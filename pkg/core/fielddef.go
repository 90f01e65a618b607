package core

import (
	"strings"

	"github.com/aretw0/notenik/pkg/value"
)

// Common forms of the fields the codec treats specially.
const (
	CommonTitle     = "title"
	CommonTags      = "tags"
	CommonLink      = "link"
	CommonBody      = "body"
	CommonDateAdded = "dateadded"
)

// FieldDef pairs a label with the value kind inferred from it.
type FieldDef struct {
	Label Label
	Kind  value.Kind
}

// NewFieldDef infers the kind of a new field from its label.
func NewFieldDef(raw string) *FieldDef {
	label := NewLabel(raw)
	return &FieldDef{Label: label, Kind: GuessKind(label.Common)}
}

// Common returns the comparison key of the definition's label.
func (d *FieldDef) Common() string {
	return d.Label.Common
}

// Parse wraps raw text in the value type of this field.
func (d *FieldDef) Parse(raw string) value.Value {
	return value.New(d.Kind, raw)
}

var kindTable = map[string]value.Kind{
	"title":      value.KindTitle,
	"tags":       value.KindTags,
	"tag":        value.KindTags,
	"keywords":   value.KindTags,
	"categories": value.KindTags,
	"link":       value.KindLink,
	"url":        value.KindLink,
	"body":       value.KindBody,
	"author":     value.KindAuthor,
	"by":         value.KindAuthor,
	"creator":    value.KindAuthor,
	"seq":        value.KindSequence,
	"sequence":   value.KindSequence,
	"rev":        value.KindSequence,
	"revision":   value.KindSequence,
	"version":    value.KindSequence,
	"status":     value.KindStatus,
	"rating":     value.KindRating,
	"priority":   value.KindRating,
	"index":      value.KindIndex,
	"recurs":     value.KindRecurs,
	"code":       value.KindCode,
	"teaser":     value.KindTeaser,
	"type":       value.KindType,
	"worktitle":  value.KindWorkTitle,
	"dateadded":  value.KindDateAdded,
	"date":       value.KindDate,
}

// GuessKind infers a value kind from a label's common form: exact matches
// first, then any label containing "date" or "link", else a plain string.
func GuessKind(common string) value.Kind {
	if kind, ok := kindTable[common]; ok {
		return kind
	}
	switch {
	case strings.Contains(common, "date"):
		return value.KindDate
	case strings.Contains(common, "link"):
		return value.KindLink
	}
	return value.KindString
}
