// Package codec converts between note text and core.Note.
//
// Text is read one physical line at a time. Classify decides what a single
// line is; Parser drives it over a whole document and infers the dialect;
// Writer regenerates text from a note in its recorded dialect.
package codec

import (
	"strings"
	"unicode"

	"github.com/aretw0/notenik/pkg/core"
)

// LineKind is the classification of one physical line.
type LineKind int

const (
	LineContent LineKind = iota
	LineBlank
	LineMetaFence
	LineHeading
	LineTags
	LineLabel
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineMetaFence:
		return "fence"
	case LineHeading:
		return "heading"
	case LineTags:
		return "tags"
	case LineLabel:
		return "label"
	default:
		return "content"
	}
}

// Arbiter decides whether a candidate label names a field. It may grow the
// schema as a side effect. *core.Collection implements it.
type Arbiter interface {
	Def(label string) (*core.FieldDef, bool)
}

// LineContext is the parser state the classifier needs.
type LineContext struct {
	// First is set for the first non-blank line of the document.
	First bool
	// AfterHeading is set for the line right after a first-line heading.
	AfterHeading bool
	// BodyStarted disables label detection.
	BodyStarted bool
}

// Line is a classified physical line.
type Line struct {
	Kind  LineKind
	Text  string         // the line as read, without its terminator
	Value string         // heading text, tags, or the value after a label
	Def   *core.FieldDef // set for LineLabel
}

// Classify scans text once, left to right, and decides what kind of line it
// is. Label candidates are offered to arbiter; a rejected candidate leaves
// the line as content.
func Classify(text string, lc LineContext, arbiter Arbiter) Line {
	line := Line{Kind: LineContent, Text: text}

	blank := true
	repeated := true
	var first rune
	badPunctuation := 0
	colon := -1

	for i, r := range text {
		if !unicode.IsSpace(r) {
			if blank {
				first = r
				blank = false
			} else if r != first {
				repeated = false
			}
		}
		if colon >= 0 {
			continue
		}
		switch {
		case r == ':' && badPunctuation == 0:
			colon = i
		case unicode.IsSpace(r), unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
		default:
			badPunctuation++
		}
	}

	if blank {
		line.Kind = LineBlank
		return line
	}

	trimmed := strings.TrimSpace(text)
	if repeated && (trimmed == "---" || trimmed == "....") {
		line.Kind = LineMetaFence
		line.Value = trimmed
		return line
	}

	if lc.First && strings.HasPrefix(text, "# ") {
		line.Kind = LineHeading
		line.Value = strings.Trim(text, " #\t")
		return line
	}

	if (lc.First || lc.AfterHeading) && isTagShorthand(text) {
		line.Kind = LineTags
		line.Value = strings.TrimSpace(text[1:])
		return line
	}

	if !lc.BodyStarted && colon > 0 && arbiter != nil {
		label := strings.TrimSpace(text[:colon])
		if label != "" {
			if def, ok := arbiter.Def(label); ok {
				line.Kind = LineLabel
				line.Def = def
				line.Value = strings.TrimSpace(text[colon+1:])
			}
		}
	}
	return line
}

func isTagShorthand(text string) bool {
	return len(text) > 1 && text[0] == '#' && text[1] != ' ' && text[1] != '#'
}
