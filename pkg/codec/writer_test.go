package codec_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notenik/pkg/codec"
	"github.com/aretw0/notenik/pkg/core"
)

const classicNote = "Title:  Round Trip\n" +
	"Tags:   a, b\n" +
	"Author: Ursula K. Le Guin\n" +
	"\n" +
	"Teaser:\n" +
	"\n" +
	"First.\n" +
	"Second.\n" +
	"\n" +
	"Seq:    2.1\n" +
	"Status: 4 - In Work\n" +
	"Link:   https://example.com/x\n" +
	"\n" +
	"Body:\n" +
	"\n" +
	"Para one.\n" +
	"\n" +
	"Para two.\n"

func TestWriter_ClassicRoundTrip(t *testing.T) {
	p := codec.NewParser(nil)
	w := codec.NewWriter(nil)

	first := p.Parse(classicNote, core.NewCollection(core.NoteTypeGeneral), "")
	require.Equal(t, core.DialectNotenik, first.Dialect)
	assert.Equal(t, "First.\nSecond.", first.FieldAsString("Teaser"))
	assert.Equal(t, "Para one.\n\nPara two.\n", first.Body())

	text := w.Write(first)
	assert.Equal(t, classicNote, text)

	second := p.Parse(text, core.NewCollection(core.NoteTypeGeneral), "")
	assert.Equal(t, first.Map(), second.Map())
	assert.Equal(t, text, w.Write(second))
}

func TestWriter_ClassicFromScratch(t *testing.T) {
	coll := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(coll)
	require.NoError(t, n.SetField("Body", "Hello.\n"))
	require.NoError(t, n.SetField("Title", "Fresh"))
	require.NoError(t, n.SetField("Date Added", "2024-03-01"))
	require.NoError(t, n.SetField("Notes", "short"))

	got := codec.NewWriter(nil).Write(n)

	want := "Title:  Fresh\n" +
		"Notes:  short\n" +
		"Date Added: 2024-03-01\n" +
		"\n" +
		"Body:\n" +
		"\n" +
		"Hello.\n"
	assert.Equal(t, want, got)

	again := codec.NewParser(nil).Parse(got, core.NewCollection(core.NoteTypeGeneral), "")
	assert.Equal(t, n.Map(), again.Map())
}

func TestWriter_ValueColumn(t *testing.T) {
	coll := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(coll)
	require.NoError(t, n.SetField("Title", "T"))
	require.NoError(t, n.SetField("Seq", "1"))

	w := codec.NewWriter(nil)
	w.ValueColumn = 12
	assert.Equal(t, "Title:      T\nSeq:        1\n", w.Write(n))

	w.ValueColumn = 0
	assert.Equal(t, "Title:  T\nSeq:    1\n", w.Write(n))
}

func TestWriter_MarkdownRoundTrip(t *testing.T) {
	text := "# My Title\n#tag1,tag2\nSome body text"
	n := parse(t, text)

	assert.Equal(t, text, codec.NewWriter(nil).Write(n))
}

func TestWriter_MarkdownGuardsTagLikeBody(t *testing.T) {
	n := parse(t, "# T\n\n#hashtag at the start\n")
	require.False(t, n.HasTags())

	out := codec.NewWriter(nil).Write(n)
	assert.Equal(t, "# T\n\n#hashtag at the start\n", out)

	again := parse(t, out)
	assert.False(t, again.HasTags())
	assert.Equal(t, "#hashtag at the start\n", again.Body())
}

func TestWriter_EscalatesMarkdown(t *testing.T) {
	var buf bytes.Buffer
	n := parse(t, "# T\nbody\n")
	require.NoError(t, n.SetField("Author", "X"))

	w := codec.NewWriter(slog.New(slog.NewTextHandler(&buf, nil)))
	assert.Equal(t, core.DialectNotenik, w.Dialect(n))

	out := w.Write(n)
	assert.Equal(t, "Title:  T\nAuthor: X\n\nBody:\n\nbody\n", out)
	assert.Equal(t, core.DialectNotenik, n.Dialect)
	assert.Contains(t, buf.String(), "escalating note dialect")
}

func TestWriter_EscalatesPlainTextWithTags(t *testing.T) {
	n := parse(t, "just text\n")
	require.Equal(t, core.DialectPlainText, n.Dialect)
	w := codec.NewWriter(nil)

	assert.Equal(t, "just text\n", w.Write(n), "the title comes from the file name")

	require.NoError(t, n.SetField("Tags", "x"))
	out := w.Write(n)
	assert.Equal(t, core.DialectNotenik, n.Dialect)
	assert.Equal(t, "Title:  Default\nTags:   x\n\nBody:\n\njust text\n", out)
}

func TestWriter_MultiMarkdown(t *testing.T) {
	text := "Title: Trip Report\nDate: 2024-03-01\n\nWe went hiking.\n"
	n := parse(t, text)
	w := codec.NewWriter(nil)

	assert.Equal(t, text, w.Write(n))
	assert.Empty(t, n.Fence)
}

func TestWriter_MultiMarkdownFenced(t *testing.T) {
	text := "---\nTitle: Fenced\nAuthor: Mark Twain\n---\n\nBody text here.\n"
	n := parse(t, text)

	assert.Equal(t, text, codec.NewWriter(nil).Write(n))
}

func TestWriter_MultiMarkdownAddsFenceWhenNeeded(t *testing.T) {
	n := parse(t, "Title: Trip Report\nDate: 2024-03-01\n\nWe went hiking.\n")
	require.NoError(t, n.SetField("Body", "Author: fake\n"))

	out := codec.NewWriter(nil).Write(n)

	assert.Equal(t, "---\nTitle: Trip Report\nDate: 2024-03-01\n---\n\nAuthor: fake\n", out)
	assert.Equal(t, "---", n.Fence)

	again := parse(t, out)
	assert.Equal(t, "Author: fake\n", again.Body())
	_, ok := again.Field("Author")
	assert.False(t, ok)
}

func TestWriter_SkipsEmptyFields(t *testing.T) {
	coll := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(coll)
	require.NoError(t, n.SetField("Title", "T"))
	require.NoError(t, n.SetField("Author", ""))

	assert.Equal(t, "Title:  T\n", codec.NewWriter(nil).Write(n))
}

func TestWriter_Encode(t *testing.T) {
	var buf bytes.Buffer
	n := parse(t, "# Encoded\nbody\n")

	require.NoError(t, codec.NewWriter(nil).Encode(&buf, n))
	assert.Equal(t, "# Encoded\nbody\n", buf.String())
}

func TestWriter_BlankLineInShortValue(t *testing.T) {
	p := codec.NewParser(nil)
	w := codec.NewWriter(nil)

	first := p.Parse("Author: Y\n\nmore\n", core.NewCollection(core.NoteTypeGeneral), "")
	require.Equal(t, core.DialectNotenik, first.Dialect)
	require.Equal(t, "Y\n\nmore", first.FieldAsString("Author"))

	text := w.Write(first)
	assert.Equal(t, "Title:  Untitled\n\nAuthor:\n\nY\n\nmore\n", text)

	second := p.Parse(text, core.NewCollection(core.NoteTypeGeneral), "")
	assert.Equal(t, core.DialectNotenik, second.Dialect)
	assert.Equal(t, first.Map(), second.Map())
}

func TestWriter_CollapsesBlankRuns(t *testing.T) {
	var buf bytes.Buffer
	w := codec.NewWriter(slog.New(slog.NewTextHandler(&buf, nil)))
	n := core.NewNote(core.NewCollection(core.NoteTypeGeneral))
	require.NoError(t, n.SetField("Title", "T"))
	require.NoError(t, n.SetField("Summary", "a\n\n\nb"))

	text := w.Write(n)
	assert.Equal(t, "Title:  T\n\nSummary:\n\na\n\nb\n", text)
	assert.Contains(t, buf.String(), "collapsing blank lines")

	again := codec.NewParser(nil).Parse(text, core.NewCollection(core.NoteTypeGeneral), "")
	assert.Equal(t, "a\n\nb", again.FieldAsString("Summary"))
}

func TestWriter_ClassicRoundTripCombinations(t *testing.T) {
	values := []string{"", "Y", "line one\nline two", "Y\n\nmore", "a\n\nb\n\nc"}
	bodies := []string{"", "Para.\n", "One.\n\nTwo.\n"}
	p := codec.NewParser(nil)
	w := codec.NewWriter(nil)

	for _, author := range values {
		for _, summary := range values {
			for _, teaser := range values {
				for _, body := range bodies {
					n := core.NewNote(core.NewCollection(core.NoteTypeGeneral))
					require.NoError(t, n.SetField("Title", "Round Trip"))
					for label, v := range map[string]string{"Author": author, "Summary": summary, "Teaser": teaser, "Body": body} {
						if v != "" {
							require.NoError(t, n.SetField(label, v))
						}
					}
					require.NoError(t, n.SetField("Seq", "1.2"))

					text := w.Write(n)
					again := p.Parse(text, core.NewCollection(core.NoteTypeGeneral), "")

					require.Equal(t, core.DialectNotenik, again.Dialect, text)
					require.Equal(t, n.Map(), again.Map(), text)
					require.Equal(t, text, w.Write(again))
				}
			}
		}
	}
}
