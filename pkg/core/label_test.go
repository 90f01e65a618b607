package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/notenik/pkg/core"
	"github.com/aretw0/notenik/pkg/value"
)

func TestCommonForm(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Title", "title"},
		{"Date Added", "dateadded"},
		{"The Author", "author"},
		{"A Tale", "tale"},
		{"an index", "index"},
		{"Anthem", "anthem"},
		{"Work-Title_2", "worktitle2"},
		{"  Spaced  Out ", "spacedout"},
		{"!!!", ""},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got := core.CommonForm(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, core.CommonForm(got), "normalizing twice must not change the result")
		})
	}
}

func TestNewLabel(t *testing.T) {
	l := core.NewLabel("  The Author ")
	assert.Equal(t, "The Author", l.Proper)
	assert.Equal(t, "author", l.Common)
	assert.True(t, l.Is("author"))
	assert.Equal(t, "The Author", l.String())
}

func TestGuessKind(t *testing.T) {
	tests := map[string]value.Kind{
		"title":     value.KindTitle,
		"author":    value.KindAuthor,
		"by":        value.KindAuthor,
		"creator":   value.KindAuthor,
		"seq":       value.KindSequence,
		"sequence":  value.KindSequence,
		"rev":       value.KindSequence,
		"version":   value.KindSequence,
		"status":    value.KindStatus,
		"dateadded": value.KindDateAdded,
		"startdate": value.KindDate,
		"sitelink":  value.KindLink,
		"body":      value.KindBody,
		"notes":     value.KindString,
	}
	for common, want := range tests {
		t.Run(common, func(t *testing.T) {
			assert.Equal(t, want, core.GuessKind(common))
		})
	}
}

func TestNewFieldDef(t *testing.T) {
	def := core.NewFieldDef("Date Added")
	assert.Equal(t, "Date Added", def.Label.Proper)
	assert.Equal(t, core.CommonDateAdded, def.Common())
	assert.Equal(t, value.KindDateAdded, def.Kind)
	assert.IsType(t, value.Date{}, def.Parse("2024-03-01"))
}
