package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// Ensure VocabularyFile implements the interface.
var _ driven.VocabularySource = (*VocabularyFile)(nil)

// vocabularyDoc is the on-disk shape shared by the TOML and YAML formats:
//
//	prefix = "Philosophy"
//
//	[[entities]]
//	name = "Guardiola Positional"
//	code = "Philosophy_07_Guardiola_Positional"
//
//	[[legacy]]
//	from = "Pep"
//	to = "Guardiola Positional"
type vocabularyDoc struct {
	Prefix   string         `toml:"prefix" yaml:"prefix"`
	Entities []entityRecord `toml:"entities" yaml:"entities"`
	Legacy   []legacyRecord `toml:"legacy" yaml:"legacy"`
}

type entityRecord struct {
	Name string `toml:"name" yaml:"name"`
	Code string `toml:"code" yaml:"code"`
}

type legacyRecord struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

// VocabularyFile loads a vocabulary override from a TOML or YAML file.
type VocabularyFile struct {
	path string
}

// NewVocabularyFile creates a source for the file at path.
func NewVocabularyFile(path string) *VocabularyFile {
	return &VocabularyFile{path: path}
}

// Path returns the vocabulary file path.
func (f *VocabularyFile) Path() string {
	return f.path
}

// Load reads and decodes the file.
func (f *VocabularyFile) Load(_ context.Context) (domain.Vocabulary, error) {
	return LoadVocabulary(f.path)
}

// LoadVocabulary reads a vocabulary file, choosing the decoder by extension:
// .toml for TOML, .yaml or .yml for YAML. Decode failures are reported as
// configuration errors; the tables themselves are validated later, when
// the alias index is built.
func LoadVocabulary(path string) (domain.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("reading vocabulary: %w", err)
	}

	var doc vocabularyDoc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return domain.Vocabulary{}, fmt.Errorf("%w: vocabulary format %q", domain.ErrUnsupportedType, ext)
	}
	if err != nil {
		return domain.Vocabulary{}, &domain.ConfigError{
			Problems: []string{fmt.Sprintf("vocabulary %s: %v", path, err)},
		}
	}

	return doc.toDomain(), nil
}

func (d vocabularyDoc) toDomain() domain.Vocabulary {
	v := domain.Vocabulary{
		Prefix:   strings.TrimSpace(d.Prefix),
		Entities: make([]domain.Entity, 0, len(d.Entities)),
		Legacy:   make([]domain.LegacyAlias, 0, len(d.Legacy)),
	}
	for _, e := range d.Entities {
		v.Entities = append(v.Entities, domain.Entity{
			Name: strings.TrimSpace(e.Name),
			Code: strings.TrimSpace(e.Code),
		})
	}
	for _, l := range d.Legacy {
		v.Legacy = append(v.Legacy, domain.LegacyAlias{From: l.From, To: l.To})
	}
	return v
}
