package core

import (
	"fmt"
	"strings"
)

// Dialect is one of the on-disk layouts a note can be stored in.
type Dialect int

const (
	// DialectNotenik is the classic "Label: value" layout.
	DialectNotenik Dialect = iota
	// DialectMarkdown is "# Title", an optional "#tag,tag" line, then the body.
	DialectMarkdown
	// DialectMultiMarkdown is a block of "Label: value" metadata, optionally
	// fenced by "---", followed by a blank line and the body.
	DialectMultiMarkdown
	// DialectPlainText is a file that is nothing but body.
	DialectPlainText
)

func (d Dialect) String() string {
	switch d {
	case DialectMarkdown:
		return "markdown"
	case DialectMultiMarkdown:
		return "multimarkdown"
	case DialectPlainText:
		return "plaintext"
	default:
		return "notenik"
	}
}

// ParseDialect maps a dialect name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "notenik", "classic", "nnk":
		return DialectNotenik, nil
	case "markdown", "md":
		return DialectMarkdown, nil
	case "multimarkdown", "mmd":
		return DialectMultiMarkdown, nil
	case "plaintext", "plain", "text", "txt":
		return DialectPlainText, nil
	}
	return DialectNotenik, fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}
