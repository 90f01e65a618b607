// Package notenik reads and writes Notenik notes: plain text files made of
// labeled fields such as "Title:", "Tags:" and "Body:".
//
// A note may arrive in one of four dialects. Classic Notenik lists every
// field as "Label: value". Markdown starts with a "# Heading" and an
// optional "#tag" line. MultiMarkdown opens with a metadata block, fenced
// or not. Anything else is plain text and becomes the note body. Notes are
// written back in the dialect they were read in, unless that dialect
// cannot hold their fields, in which case they are written as classic
// Notenik so nothing is lost.
//
// Every note belongs to a collection. The collection's note type decides
// which labels it accepts, and its dictionary records every label seen so
// far, in order, so that notes of one collection are written with their
// fields in the same sequence. A template file locks the dictionary to
// the fields it names.
//
// Usage:
//
//	nb, err := notenik.Open("./notes",
//		notenik.WithNoteType(notenik.NoteTypeExpanded),
//		notenik.WithLogger(logger),
//	)
//
//	note, err := nb.Load(ctx, "trip-report.txt")
//	note.SetField("Status", "Completed")
//	err = nb.Save(ctx, "trip-report.txt", note)
package notenik
