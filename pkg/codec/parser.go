package codec

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/notenik/pkg/core"
	"github.com/aretw0/notenik/pkg/value"
)

// Parser turns note text into a core.Note. It never fails on malformed
// input; anomalies are reported through Logger.
type Parser struct {
	Logger *slog.Logger
}

// NewParser creates a parser. A nil logger discards all messages.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{Logger: logger}
}

func (p *Parser) logger() *slog.Logger {
	if p == nil || p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// Decode reads r to the end and parses the result.
func (p *Parser) Decode(r io.Reader, coll *core.Collection, defaultTitle string) (*core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}
	return p.Parse(string(data), coll, defaultTitle), nil
}

// Parse reads text into a note of coll, growing the collection's dictionary
// with every label it accepts. If the text carries no title, defaultTitle
// is installed (or core.DefaultTitle when that is empty too).
func (p *Parser) Parse(text string, coll *core.Collection, defaultTitle string) *core.Note {
	s := &parseState{
		log:  p.logger(),
		coll: coll,
		note: core.NewNote(coll),
	}
	for _, line := range splitLines(text) {
		s.process(line)
	}
	s.finish(defaultTitle)
	return s.note
}

// ApplyTemplate parses a template note into coll so that its labels seed the
// schema, then locks the dictionary.
func (p *Parser) ApplyTemplate(text string, coll *core.Collection) *core.Note {
	note := p.Parse(text, coll, "")
	coll.Dict().Lock()
	p.logger().Debug("template applied", "fields", coll.Dict().Len())
	return note
}

type physicalLine struct {
	text    string
	newline bool
}

func splitLines(text string) []physicalLine {
	var lines []physicalLine
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, physicalLine{text: strings.TrimSuffix(text, "\r")})
			break
		}
		lines = append(lines, physicalLine{text: strings.TrimSuffix(text[:i], "\r"), newline: true})
		text = text[i+1:]
	}
	return lines
}

// fieldBuilder accumulates the lines of one field value. Blank lines are
// held back until more content arrives, so a value never ends with them.
type fieldBuilder struct {
	def *core.FieldDef
	// block is set when the value starts on the line after its label, the
	// way long values are written. Such a value runs on across single
	// blank lines.
	block   bool
	b       strings.Builder
	lines   int
	pending int
}

func (f *fieldBuilder) hasContent() bool { return f.lines > 0 }

func (f *fieldBuilder) add(text string, newline bool) {
	if f.lines > 0 {
		for ; f.pending > 0; f.pending-- {
			f.b.WriteByte('\n')
		}
	}
	f.pending = 0
	f.b.WriteString(text)
	if newline {
		f.b.WriteByte('\n')
	}
	f.lines++
}

// value returns the accumulated text. The body is kept byte for byte;
// other fields lose their trailing line break.
func (f *fieldBuilder) value() string {
	v := f.b.String()
	if f.def.Kind == value.KindBody {
		return v
	}
	return strings.TrimRight(v, "\n")
}

type parseState struct {
	log  *slog.Logger
	coll *core.Collection
	note *core.Note

	seen         bool
	afterHeading bool
	bodyStarted  bool
	inMeta       bool
	blankGap     bool
	fieldCount   int
	current      *fieldBuilder
}

func (s *parseState) process(pl physicalLine) {
	lc := LineContext{
		First:        !s.seen,
		AfterHeading: s.afterHeading,
		BodyStarted:  s.bodyStarted,
	}
	line := Classify(pl.text, lc, s.coll)
	s.afterHeading = false

	if line.Kind == LineBlank {
		if s.seen {
			s.blankGap = true
			s.blank()
		}
		return
	}
	defer func() { s.blankGap = false }()

	if !s.seen {
		s.seen = true
		if s.first(line, pl) {
			return
		}
	}

	if lc.AfterHeading && line.Kind == LineTags {
		if s.setSpecial("Tags", line.Value) {
			return
		}
	}

	switch {
	case s.inMeta:
		s.meta(line, pl)
	case s.bodyStarted:
		s.appendBody(pl)
	case line.Kind == LineLabel:
		s.startField(line, pl)
	default:
		s.content(pl)
	}
}

// first handles the first non-blank line, which fixes the tentative
// dialect. It reports whether the line was fully consumed.
func (s *parseState) first(line Line, pl physicalLine) bool {
	switch line.Kind {
	case LineMetaFence:
		s.note.Dialect = core.DialectMultiMarkdown
		s.note.Fence = line.Value
		s.inMeta = true
		return true
	case LineHeading:
		s.note.Dialect = core.DialectMarkdown
		s.bodyStarted = true
		s.afterHeading = true
		if s.setSpecial("Title", line.Value) {
			return true
		}
		s.appendBody(pl)
		return true
	case LineTags:
		s.note.Dialect = core.DialectMarkdown
		s.bodyStarted = true
		if s.setSpecial("Tags", line.Value) {
			return true
		}
		s.appendBody(pl)
		return true
	case LineContent:
		s.note.Dialect = core.DialectPlainText
		s.bodyStarted = true
		s.appendBody(pl)
		return true
	}
	s.note.Dialect = core.DialectNotenik
	return false
}

func (s *parseState) meta(line Line, pl physicalLine) {
	switch {
	case line.Kind == LineMetaFence && line.Value == s.note.Fence:
		s.flush()
		s.inMeta = false
		s.bodyStarted = true
	case line.Kind == LineLabel:
		s.startField(line, pl)
	case s.titleLine(pl):
	default:
		if s.current == nil {
			s.log.Warn("content outside any field in metadata block, keeping it as body", "line", pl.text)
			s.startBody(pl)
			return
		}
		s.current.add(pl.text, pl.newline)
	}
}

func (s *parseState) blank() {
	c := s.current
	if c == nil || !c.hasContent() {
		return
	}
	c.pending++
	if s.inMeta || s.bodyStarted {
		return
	}
	if c.pending >= 2 && s.fieldCount > 1 {
		s.flush()
	}
}

func (s *parseState) startField(line Line, pl physicalLine) {
	s.flush()
	s.fieldCount++
	fb := &fieldBuilder{def: line.Def, block: line.Value == ""}
	if line.Def.Kind == value.KindTitle {
		if line.Value != "" {
			s.set(line.Def, line.Value)
			return
		}
		// the title is on a following line
		s.current = fb
		return
	}
	if line.Value != "" {
		fb.add(line.Value, pl.newline)
	}
	if line.Def.Kind == value.KindBody && !s.inMeta {
		s.bodyStarted = true
	}
	s.current = fb
}

// content handles an unlabeled line before the body has started.
func (s *parseState) content(pl physicalLine) {
	if s.titleLine(pl) {
		return
	}
	c := s.current
	switch {
	case c == nil:
		s.reclassify()
		s.startBody(pl)
	case c.hasContent() && !c.def.Kind.LongText() && !c.block && s.blankGap && s.fieldCount >= 2:
		s.flush()
		s.reclassify()
		s.startBody(pl)
	default:
		c.add(pl.text, pl.newline)
	}
}

// titleLine completes a Title whose label line carried no value. Title
// never spans lines, so it takes the first line of content and closes.
func (s *parseState) titleLine(pl physicalLine) bool {
	c := s.current
	if c == nil || c.def.Kind != value.KindTitle {
		return false
	}
	c.add(strings.TrimSpace(pl.text), false)
	s.flush()
	return true
}

// reclassify marks a label-led note whose body follows its fields after a
// blank line, without a Body label, as MultiMarkdown.
func (s *parseState) reclassify() {
	if s.blankGap && s.fieldCount >= 2 && s.note.Dialect == core.DialectNotenik {
		s.note.Dialect = core.DialectMultiMarkdown
	}
}

func (s *parseState) appendBody(pl physicalLine) {
	if s.current != nil && s.current.def.Kind == value.KindBody {
		s.current.add(pl.text, pl.newline)
		return
	}
	s.flush()
	s.startBody(pl)
}

func (s *parseState) startBody(pl physicalLine) {
	s.bodyStarted = true
	def, ok := s.coll.Def("Body")
	if !ok {
		s.log.Warn("collection has no body field, dropping line", "line", pl.text)
		return
	}
	s.fieldCount++
	s.current = &fieldBuilder{def: def}
	if f, ok := s.note.Field(def.Label.Proper); ok && !f.Value.IsEmpty() {
		// a second stretch of body text continues the first
		s.current.add(strings.TrimSuffix(f.Value.String(), "\n"), true)
	}
	s.current.add(pl.text, pl.newline)
}

func (s *parseState) setSpecial(label, raw string) bool {
	def, ok := s.coll.Def(label)
	if !ok {
		s.log.Debug("label rejected by schema", "label", label)
		return false
	}
	s.set(def, raw)
	return true
}

func (s *parseState) flush() {
	if s.current == nil {
		return
	}
	s.set(s.current.def, s.current.value())
	s.current = nil
}

func (s *parseState) set(def *core.FieldDef, raw string) {
	if _, dup := s.note.Field(def.Label.Proper); dup {
		s.log.Debug("duplicate field, keeping last value", "field", def.Label.Proper)
	}
	if err := s.note.Set(def, raw); err != nil {
		s.log.Warn("failed to set field", "field", def.Label.Proper, "error", err)
	}
}

func (s *parseState) finish(defaultTitle string) {
	s.flush()
	if s.inMeta {
		s.log.Warn("metadata block not closed, ending it at end of input")
		s.inMeta = false
	}
	if s.note.HasTitle() {
		return
	}
	if strings.TrimSpace(defaultTitle) == "" {
		defaultTitle = core.DefaultTitle
	}
	if !s.setSpecial("Title", defaultTitle) {
		s.log.Warn("collection has no title field", "default", defaultTitle)
	}
}
