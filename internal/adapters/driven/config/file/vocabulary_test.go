package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

const tomlVocabulary = `
prefix = "Philosophy"

[[entities]]
name = "Guardiola Positional"
code = "Philosophy_07_Guardiola_Positional"

[[entities]]
name = " Bielsa Intensity "
code = "Philosophy_45_Bielsa_Intensity"

[[legacy]]
from = "Pep"
to = "Guardiola Positional"
`

const yamlVocabulary = `
prefix: Philosophy
entities:
  - name: Guardiola Positional
    code: Philosophy_07_Guardiola_Positional
  - name: Bielsa Intensity
    code: Philosophy_45_Bielsa_Intensity
legacy:
  - from: Pep
    to: Guardiola Positional
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadVocabulary_Formats(t *testing.T) {
	want := domain.Vocabulary{
		Prefix: "Philosophy",
		Entities: []domain.Entity{
			{Name: "Guardiola Positional", Code: "Philosophy_07_Guardiola_Positional"},
			{Name: "Bielsa Intensity", Code: "Philosophy_45_Bielsa_Intensity"},
		},
		Legacy: []domain.LegacyAlias{{From: "Pep", To: "Guardiola Positional"}},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "vocab.toml", tomlVocabulary},
		{"yaml", "vocab.yaml", yamlVocabulary},
		{"yml upper case", "VOCAB.YML", yamlVocabulary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadVocabulary(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadVocabulary_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadVocabulary(filepath.Join(t.TempDir(), "none.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadVocabulary(writeFile(t, "vocab.json", "{}"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadVocabulary(writeFile(t, "vocab.toml", "[[entities]\nname ="))
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadVocabulary(writeFile(t, "vocab.yaml", "entities: [name: {"))
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestVocabularyFile_Load(t *testing.T) {
	path := writeFile(t, "vocab.toml", tomlVocabulary)
	src := NewVocabularyFile(path)

	assert.Equal(t, path, src.Path())
	v, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, v.Entities, 2)
}
