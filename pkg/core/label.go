package core

import (
	"strings"
	"unicode"
)

// Label is a field name as written in a note together with its comparison key.
type Label struct {
	Proper string // display text, e.g. "Date Added"
	Common string // comparison key, e.g. "dateadded"
}

// NewLabel builds a Label from raw display text.
func NewLabel(raw string) Label {
	proper := strings.TrimSpace(raw)
	return Label{Proper: proper, Common: CommonForm(proper)}
}

// CommonForm lowercases raw and keeps only letters and digits. A leading
// article ("a", "an", "the") followed by a space is dropped, so "The Author"
// and "author" name the same field.
func CommonForm(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ':
			switch b.String() {
			case "a", "an", "the":
				b.Reset()
			}
		}
	}
	return b.String()
}

// Is reports whether the label has the given common form.
func (l Label) Is(common string) bool {
	return l.Common == common
}

func (l Label) String() string {
	return l.Proper
}
