package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("/tmp/a.html", "<p>(Klopp)</p>")

	require.NotNil(t, doc)
	assert.Equal(t, "/tmp/a.html", doc.Path)
	assert.Equal(t, doc.Content, doc.Original)
	assert.False(t, doc.Changed)
	assert.NotNil(t, doc.Substitutions)
	assert.Zero(t, doc.TotalSubstitutions())
}

func TestDocument_TotalSubstitutions(t *testing.T) {
	doc := NewDocument("a.html", "")
	doc.Substitutions["parenthetical"] = 2
	doc.Substitutions["pill"] = 1

	assert.Equal(t, 3, doc.TotalSubstitutions())
}

func TestEntity_ShortName(t *testing.T) {
	tests := []struct {
		name     string
		entity   Entity
		expected string
	}{
		{"two words", Entity{Name: "Bielsa Intensity"}, "Bielsa"},
		{"single word", Entity{Name: "Cholismo"}, "Cholismo"},
		{"leading space", Entity{Name: "  Paisley Boot Room"}, "Paisley"},
		{"empty", Entity{Name: ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entity.ShortName())
		})
	}
}

func TestTarget_Labeled(t *testing.T) {
	target := Entity{Name: "Simeone Cholismo", Code: "Philosophy_46_Simeone_Cholismo"}.Target()

	assert.Equal(t, "Simeone Cholismo (Philosophy_46_Simeone_Cholismo)", target.Labeled())
}

func TestRunReport_Counts(t *testing.T) {
	report := &RunReport{
		Files: []FileResult{
			{Path: "a.html", Changed: true},
			{Path: "b.html", Changed: false},
			{Path: "c.html", Err: errors.New("permission denied")},
			{Path: "d.html", Changed: true},
		},
	}

	assert.Equal(t, 2, report.Updated())
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "c.html", report.Failed()[0].Path)
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "created", ChangeCreated.String())
	assert.Equal(t, "updated", ChangeUpdated.String())
	assert.Equal(t, "deleted", ChangeDeleted.String())
	assert.Equal(t, "unknown", ChangeType(99).String())
}
