package core

import "errors"

// Common errors.
var (
	ErrLocked          = errors.New("field dictionary is locked")
	ErrUnknownField    = errors.New("field is not part of the collection schema")
	ErrEmptyLabel      = errors.New("label is empty")
	ErrUnknownNoteType = errors.New("unknown note type")
	ErrUnknownDialect  = errors.New("unknown dialect")
)
