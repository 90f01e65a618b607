package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notenik/pkg/core"
	"github.com/aretw0/notenik/pkg/value"
)

func TestNote_SetField(t *testing.T) {
	c := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(c)

	require.NoError(t, n.SetField("Title", "Trip Report"))
	require.NoError(t, n.SetField("Seq", "1.2"))
	require.NoError(t, n.SetField("Body", "We went hiking.\n"))

	assert.Equal(t, "Trip Report", n.Title())
	assert.Equal(t, "1.2", n.FieldAsString("seq"))
	assert.Equal(t, "We went hiking.\n", n.Body())
	assert.Equal(t, "", n.FieldAsString("missing"))
	assert.True(t, n.HasTitle())
	assert.True(t, n.HasBody())
	assert.False(t, n.HasTags())
	assert.Equal(t, 3, n.Len())

	f, ok := n.Field("SEQ")
	require.True(t, ok)
	assert.IsType(t, &value.Sequence{}, f.Value)
}

func TestNote_SetFieldRejected(t *testing.T) {
	n := core.NewNote(core.NewCollection(core.NoteTypeSimple))
	assert.ErrorIs(t, n.SetField("Notes", "x"), core.ErrUnknownField)
	assert.ErrorIs(t, n.SetField("  ", "x"), core.ErrEmptyLabel)

	locked := core.NewCollection(core.NoteTypeGeneral)
	locked.Dict().Lock()
	n = core.NewNote(locked)
	assert.ErrorIs(t, n.SetField("Notes", "x"), core.ErrLocked)
	assert.NoError(t, n.SetField("Date Added", "2024-03-01"))
}

func TestNote_SetRequiresDictionaryDef(t *testing.T) {
	n := core.NewNote(core.NewCollection(core.NoteTypeGeneral))

	err := n.Set(core.NewFieldDef("Title"), "imposter")
	assert.ErrorIs(t, err, core.ErrUnknownField)
	assert.False(t, n.HasTitle())

	assert.ErrorIs(t, n.Set(nil, "x"), core.ErrEmptyLabel)
}

func TestNote_FieldsInSchemaOrder(t *testing.T) {
	c := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(c)
	require.NoError(t, n.SetField("Body", "text"))
	require.NoError(t, n.SetField("Status", "4"))
	require.NoError(t, n.SetField("Title", "T"))
	require.NoError(t, n.SetField("Author", "Mark Twain"))

	var got []string
	for _, f := range n.Fields() {
		got = append(got, f.Def.Label.Proper)
	}
	assert.Equal(t, []string{"Title", "Status", "Author", "Body"}, got)

	n.Remove("status")
	assert.Len(t, n.Fields(), 3)
}

func TestNote_SetValueKeepsInstance(t *testing.T) {
	c := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(c)
	def, ok := c.Def("Seq")
	require.True(t, ok)

	seq := value.NewSequence("3")
	require.NoError(t, n.SetValue(def, seq))
	seq.Increment(false)

	assert.Equal(t, "4", n.FieldAsString("Seq"))
}

func TestNote_CloneCopiesSequences(t *testing.T) {
	c := core.NewCollection(core.NoteTypeGeneral)
	n := core.NewNote(c)
	n.Dialect = core.DialectMultiMarkdown
	n.Fence = "---"
	require.NoError(t, n.SetField("Title", "T"))
	require.NoError(t, n.SetField("Seq", "1"))

	clone := n.Clone()
	f, _ := clone.Field("Seq")
	f.Value.(*value.Sequence).Increment(false)

	assert.Equal(t, "1", n.FieldAsString("Seq"))
	assert.Equal(t, "2", clone.FieldAsString("Seq"))
	assert.Equal(t, core.DialectMultiMarkdown, clone.Dialect)
	assert.Equal(t, "---", clone.Fence)
	assert.Same(t, n.Collection, clone.Collection)
}

func TestNote_Map(t *testing.T) {
	n := core.NewNote(core.NewCollection(core.NoteTypeGeneral))
	require.NoError(t, n.SetField("Title", "T"))
	require.NoError(t, n.SetField("tags", "a, b"))

	assert.Equal(t, map[string]string{"Title": "T", "tags": "a, b"}, n.Map())
}

func TestNote_OfKindSkipsEmpty(t *testing.T) {
	n := core.NewNote(core.NewCollection(core.NoteTypeGeneral))
	require.NoError(t, n.SetField("Title", "  "))

	assert.False(t, n.HasTitle())
	assert.Equal(t, "", n.Title())
}
