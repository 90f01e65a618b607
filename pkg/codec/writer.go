package codec

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/notenik/pkg/core"
	"github.com/aretw0/notenik/pkg/value"
)

// DefaultValueColumn is the column at which short values start in the
// classic dialect.
const DefaultValueColumn = 8

// Writer regenerates note text in the note's recorded dialect.
type Writer struct {
	Logger *slog.Logger
	// ValueColumn pads "Label: " so that short values start no earlier than
	// this column. Zero means DefaultValueColumn.
	ValueColumn int
}

// NewWriter creates a writer. A nil logger discards all messages.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{Logger: logger, ValueColumn: DefaultValueColumn}
}

func (w *Writer) logger() *slog.Logger {
	if w == nil || w.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.Logger
}

func (w *Writer) column() int {
	if w == nil || w.ValueColumn <= 0 {
		return DefaultValueColumn
	}
	return w.ValueColumn
}

// Encode writes the note text to out.
func (w *Writer) Encode(out io.Writer, n *core.Note) error {
	if _, err := io.WriteString(out, w.Write(n)); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// Write renders n. When the note holds fields its dialect cannot express,
// it is written (and its Dialect updated) as classic Notenik instead, so
// nothing is lost.
func (w *Writer) Write(n *core.Note) string {
	layout := w.plan(n)
	if d := w.Dialect(n); d != n.Dialect {
		w.logger().Info("escalating note dialect",
			"title", n.Title(), "from", n.Dialect.String(), "to", d.String())
		n.Dialect = d
		n.Fence = ""
	} else if n.Dialect == core.DialectMultiMarkdown && n.Fence == "" && w.needsFence(n, layout) {
		w.logger().Debug("fencing multimarkdown metadata", "title", n.Title())
		n.Fence = "---"
	}

	var b strings.Builder
	switch n.Dialect {
	case core.DialectMarkdown:
		w.writeMarkdown(&b, layout)
	case core.DialectMultiMarkdown:
		w.writeMultiMarkdown(&b, layout, n.Fence)
	case core.DialectPlainText:
		if layout.body != nil {
			b.WriteString(layout.body.Value.String())
		}
	default:
		w.writeNotenik(&b, layout)
	}
	return b.String()
}

// Dialect returns the dialect n will be written in: its recorded one, or
// classic Notenik when Markdown or plain text cannot hold its fields.
func (w *Writer) Dialect(n *core.Note) core.Dialect {
	layout := w.plan(n)
	switch n.Dialect {
	case core.DialectMarkdown:
		if len(layout.others) > 0 {
			return core.DialectNotenik
		}
	case core.DialectPlainText:
		if len(layout.others) > 0 || layout.tags != nil {
			return core.DialectNotenik
		}
	}
	return n.Dialect
}

// layout splits a note into the fields the writer places specially and
// the rest, in schema order.
type layout struct {
	title  *core.Field
	tags   *core.Field
	body   *core.Field
	others []core.Field
}

func (w *Writer) plan(n *core.Note) layout {
	var l layout
	for _, f := range n.Fields() {
		if f.Value.IsEmpty() {
			continue
		}
		switch {
		case f.Def.Kind == value.KindTitle && l.title == nil:
			l.title = &f
		case f.Def.Kind == value.KindTags && l.tags == nil:
			l.tags = &f
		case f.Def.Kind == value.KindBody && l.body == nil:
			l.body = &f
		default:
			l.others = append(l.others, f)
		}
	}
	return l
}

// needsFence reports whether unfenced MultiMarkdown metadata would read back
// differently: a multi-line metadata value, or a body whose first line
// looks like a label. Long-text metadata would swallow the body.
func (w *Writer) needsFence(n *core.Note, l layout) bool {
	for _, f := range l.metadata() {
		if f.Def.Kind.LongText() || strings.Contains(f.Value.String(), "\n") {
			return true
		}
	}
	if l.body == nil {
		return false
	}
	firstLine, _, _ := strings.Cut(l.body.Value.String(), "\n")
	line := Classify(firstLine, LineContext{}, acceptsOnly{n.Collection})
	return line.Kind == LineLabel || line.Kind == LineMetaFence || line.Kind == LineBlank
}

// acceptsOnly asks the collection without letting it grow.
type acceptsOnly struct{ c *core.Collection }

func (a acceptsOnly) Def(label string) (*core.FieldDef, bool) {
	if a.c == nil || !a.c.Accepts(label) {
		return nil, false
	}
	return core.NewFieldDef(label), true
}

func (l layout) metadata() []core.Field {
	var fields []core.Field
	if l.title != nil {
		fields = append(fields, *l.title)
	}
	if l.tags != nil {
		fields = append(fields, *l.tags)
	}
	return append(fields, l.others...)
}

func (w *Writer) writeNotenik(b *strings.Builder, l layout) {
	fields := l.metadata()
	if l.body != nil {
		fields = append(fields, *l.body)
	}
	prevLong := false
	for i, f := range fields {
		text := f.Value.String()
		long := f.Def.Kind.LongText() || (f.Def.Kind != value.KindTitle && hasBlankLine(text))
		if i > 0 && (long || prevLong) {
			b.WriteByte('\n')
		}
		if long {
			b.WriteString(f.Def.Label.Proper + ":\n\n")
			if f.Def.Kind == value.KindBody {
				b.WriteString(text)
			} else {
				b.WriteString(w.singleBlanks(f.Def.Label.Proper, strings.TrimRight(text, "\n")) + "\n")
			}
		} else {
			w.writeShort(b, f.Def.Label.Proper, text)
		}
		prevLong = long
	}
}

// hasBlankLine reports whether a value has an empty line between two lines
// of text. Such a value only reads back whole in the long form.
func hasBlankLine(text string) bool {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			return true
		}
	}
	return false
}

// singleBlanks collapses runs of blank lines inside a field value, since
// two blank lines in a row end the field on the next read.
func (w *Writer) singleBlanks(label, text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	if len(out) < len(lines) {
		w.logger().Warn("collapsing blank lines in field value", "field", label)
	}
	return strings.Join(out, "\n")
}

func (w *Writer) writeShort(b *strings.Builder, label, text string) {
	prefix := label + ": "
	if pad := w.column() - len(prefix); pad > 0 {
		prefix += strings.Repeat(" ", pad)
	}
	b.WriteString(prefix + strings.TrimRight(text, "\n") + "\n")
}

func (w *Writer) writeMarkdown(b *strings.Builder, l layout) {
	if l.title != nil {
		b.WriteString("# " + l.title.Value.String() + "\n")
	}
	if l.tags != nil {
		b.WriteString("#" + l.tags.Value.String() + "\n")
	}
	if l.body == nil {
		return
	}
	body := l.body.Value.String()
	if l.tags == nil && isTagShorthand(body) {
		// keep the body's first line from reading back as tags
		b.WriteByte('\n')
	}
	b.WriteString(body)
}

func (w *Writer) writeMultiMarkdown(b *strings.Builder, l layout, fence string) {
	if fence != "" {
		b.WriteString(fence + "\n")
	}
	for _, f := range l.metadata() {
		b.WriteString(f.Def.Label.Proper + ": " + strings.TrimRight(f.Value.String(), "\n") + "\n")
	}
	if fence != "" {
		b.WriteString(fence + "\n")
	}
	if l.body != nil {
		b.WriteByte('\n')
		b.WriteString(l.body.Value.String())
	}
}
