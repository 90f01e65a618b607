// Package value holds the typed field values a note can carry.
//
// The set of kinds is closed: every Value returned by New is one of the
// concrete types declared in this package (Text, Tags, Date, Author, Rating,
// Status or *Sequence), so callers may switch over them exhaustively.
package value

import "strings"

// Kind identifies the value type of a field. It is inferred once from the
// field label and never changes afterwards.
type Kind int

const (
	KindString Kind = iota
	KindTitle
	KindBody
	KindTags
	KindLink
	KindAuthor
	KindDate
	KindDateAdded
	KindSequence
	KindStatus
	KindRating
	KindIndex
	KindRecurs
	KindCode
	KindTeaser
	KindType
	KindWorkTitle
)

var kindNames = map[Kind]string{
	KindString:    "string",
	KindTitle:     "title",
	KindBody:      "body",
	KindTags:      "tags",
	KindLink:      "link",
	KindAuthor:    "author",
	KindDate:      "date",
	KindDateAdded: "dateadded",
	KindSequence:  "seq",
	KindStatus:    "status",
	KindRating:    "rating",
	KindIndex:     "index",
	KindRecurs:    "recurs",
	KindCode:      "code",
	KindTeaser:    "teaser",
	KindType:      "type",
	KindWorkTitle: "worktitle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// LongText reports whether values of this kind are written on the lines
// following their label rather than on the label line itself.
func (k Kind) LongText() bool {
	switch k {
	case KindBody, KindTeaser, KindCode:
		return true
	}
	return false
}

// Value is a typed wrapper around the text of a single field.
type Value interface {
	// Kind returns the value type.
	Kind() Kind
	// String returns the text exactly as it should be written back.
	String() string
	// SortKey returns a string whose lexical order is the natural order of
	// values of the same kind.
	SortKey() string
	// IsEmpty reports whether the value carries no text.
	IsEmpty() bool

	sealed()
}

// New parses raw text into the value type for kind.
func New(kind Kind, raw string) Value {
	switch kind {
	case KindTags:
		return NewTags(raw)
	case KindAuthor:
		return NewAuthor(raw)
	case KindDate, KindDateAdded:
		return NewDate(kind, raw)
	case KindSequence:
		return NewSequence(raw)
	case KindStatus:
		return NewStatus(raw)
	case KindRating:
		return NewRating(raw)
	default:
		return NewText(kind, raw)
	}
}

// Compare orders two values by sort key, returning -1, 0 or +1.
func Compare(a, b Value) int {
	return strings.Compare(a.SortKey(), b.SortKey())
}

// Text is the value for every kind without special parsing rules: titles,
// plain strings, bodies, links, codes and the like.
type Text struct {
	kind Kind
	raw  string
}

// NewText wraps raw as a value of the given kind.
func NewText(kind Kind, raw string) Text {
	return Text{kind: kind, raw: raw}
}

func (t Text) Kind() Kind     { return t.kind }
func (t Text) String() string { return t.raw }
func (t Text) IsEmpty() bool  { return strings.TrimSpace(t.raw) == "" }
func (Text) sealed()          {}

func (t Text) SortKey() string {
	key := strings.ToLower(strings.TrimSpace(t.raw))
	switch t.kind {
	case KindTitle, KindWorkTitle:
		for _, article := range []string{"a ", "an ", "the "} {
			if strings.HasPrefix(key, article) {
				return strings.TrimSpace(key[len(article):])
			}
		}
	case KindLink:
		if i := strings.Index(key, "://"); i >= 0 {
			return key[i+3:]
		}
	}
	return key
}
