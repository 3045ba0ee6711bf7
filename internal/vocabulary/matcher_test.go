package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

func buildIndex(t *testing.T, entities []domain.Entity, legacy []domain.LegacyAlias) *Index {
	t.Helper()
	idx, err := Build(domain.Vocabulary{Prefix: "Philosophy", Entities: entities, Legacy: legacy})
	require.NoError(t, err)
	return idx
}

func TestMatcher_FindDefault(t *testing.T) {
	m := NewMatcher(mustDefault(t))

	tests := []struct {
		name     string
		haystack string
		code     string
		surface  string
	}{
		{"legacy exact", "Klopp", "Philosophy_45_Bielsa_Intensity", "klopp"},
		{"short exact", "Simeone", "Philosophy_46_Simeone_Cholismo", "simeone"},
		{"short in score", "Guardiola 8.5/10", "Philosophy_07_Guardiola_Positional", "guardiola"},
		{"case folded", "PEP-era GUARDIOLA", "Philosophy_07_Guardiola_Positional", "guardiola"},
		{"legacy longer wins", "Klopp Intensity pressing", "Philosophy_45_Bielsa_Intensity", "klopp intensity"},
		{"accented", "Ramón Díaz years", "Philosophy_43_Menotti_Artistry", "ramón díaz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Find(tt.haystack)
			require.True(t, ok)
			assert.Equal(t, tt.code, got.Target.Code)
			assert.Equal(t, tt.surface, got.Surface)
		})
	}
}

func TestMatcher_LongestMatchPrecedence(t *testing.T) {
	idx := buildIndex(t,
		[]domain.Entity{
			{Name: "Cruyff Intelligence", Code: "Philosophy_01_Cruyff_Intelligence"},
			{Name: "Michels Total", Code: "Philosophy_02_Michels_Total"},
		},
		[]domain.LegacyAlias{
			{From: "Van Gaal", To: "Cruyff Intelligence"},
			{From: "Van Gaal System", To: "Michels Total"},
		},
	)
	m := NewMatcher(idx)

	got, ok := m.Find("the Van Gaal System at Ajax")
	require.True(t, ok)
	assert.Equal(t, "van gaal system", got.Surface)
	assert.Equal(t, "Philosophy_02_Michels_Total", got.Target.Code)

	got, ok = m.Find("Van Gaal at Barcelona")
	require.True(t, ok)
	assert.Equal(t, "Philosophy_01_Cruyff_Intelligence", got.Target.Code)
}

func TestMatcher_MinimumLengthGuard(t *testing.T) {
	idx := buildIndex(t,
		[]domain.Entity{
			{Name: "Osim Intelligence", Code: "Philosophy_52_Osim_Intelligence"},
			{Name: "Xy Method", Code: "Philosophy_61_Xy_Method"},
		},
		[]domain.LegacyAlias{
			{From: "Abc", To: "Osim Intelligence"},
		},
	)
	m := NewMatcher(idx)

	_, ok := m.Find("The Xylophone Section")
	assert.False(t, ok, "two-letter alias must not match inside unrelated text")

	_, ok = m.Find("abcdef")
	assert.False(t, ok, "three-letter alias is not longer than the guard")

	got, ok := m.Find("xy")
	require.True(t, ok, "short alias still matches a span it equals")
	assert.Equal(t, "Philosophy_61_Xy_Method", got.Target.Code)

	got, ok = m.Find("under Osim at Sturm")
	require.True(t, ok, "four-letter alias matches as substring")
	assert.Equal(t, "Philosophy_52_Osim_Intelligence", got.Target.Code)
}

func TestMatcher_WithMinAliasLength(t *testing.T) {
	idx := mustDefault(t)

	strict := NewMatcher(idx, WithMinAliasLength(5))
	assert.Equal(t, 5, strict.MinAliasLength())
	_, ok := strict.Find("under Osim at Sturm")
	assert.False(t, ok)

	loose := NewMatcher(idx, WithMinAliasLength(-1))
	assert.Equal(t, 0, loose.MinAliasLength())
}

func TestMatcher_NoMatch(t *testing.T) {
	m := NewMatcher(mustDefault(t))

	for _, haystack := range []string{"", "Some Unrelated Text", "see page 12"} {
		_, ok := m.Find(haystack)
		assert.False(t, ok, haystack)
	}
}

func TestMatcher_Offsets(t *testing.T) {
	m := NewMatcher(mustDefault(t))

	got, ok := m.Find("Coached by Sarri")
	require.True(t, ok)
	assert.Equal(t, 11, got.Start)
	assert.Equal(t, 16, got.End)
	assert.Equal(t, "sarri", "coached by sarri"[got.Start:got.End])
}

func TestMatcher_MentionsCode(t *testing.T) {
	m := NewMatcher(mustDefault(t))

	assert.True(t, m.MentionsCode("Philosophy_45_Bielsa_Intensity"))
	assert.False(t, m.MentionsCode("Bielsa"))
}
