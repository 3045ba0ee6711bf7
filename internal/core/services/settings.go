package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyExtensions     = "rewrite.extensions"
	KeyRecursive      = "rewrite.recursive"
	KeyPasses         = "rewrite.passes"
	KeyWorkers        = "rewrite.workers"
	KeyMinAliasLength = "match.min_alias_length"
	KeyMetricLabel    = "labels.metric"
	KeyPillLabel      = "labels.pill"
	KeyVocabularyFile = "vocabulary.file"
	KeyJournalEnabled = "journal.enabled"
	KeyJournalDir     = "journal.dir"
)

type keyKind int

const (
	kindString keyKind = iota
	kindList
	kindBool
	kindInt
)

var settingsKeys = map[string]keyKind{
	KeyExtensions:     kindList,
	KeyRecursive:      kindBool,
	KeyPasses:         kindList,
	KeyWorkers:        kindInt,
	KeyMinAliasLength: kindInt,
	KeyMetricLabel:    kindString,
	KeyPillLabel:      kindString,
	KeyVocabularyFile: kindString,
	KeyJournalEnabled: kindBool,
	KeyJournalDir:     kindString,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Rewrite: domain.RewriteSettings{
			Extensions: s.getList(KeyExtensions, defaults.Rewrite.Extensions),
			Recursive:  s.getBool(KeyRecursive, defaults.Rewrite.Recursive),
			Passes:     s.getList(KeyPasses, defaults.Rewrite.Passes),
			Workers:    s.getInt(KeyWorkers, defaults.Rewrite.Workers),
		},
		Match: domain.MatchSettings{
			MinAliasLength: s.getInt(KeyMinAliasLength, defaults.Match.MinAliasLength),
		},
		Labels: domain.LabelSettings{
			Metric: s.getString(KeyMetricLabel, defaults.Labels.Metric),
			Pill:   s.getString(KeyPillLabel, defaults.Labels.Pill),
		},
		Vocabulary: domain.VocabularySettings{
			File: s.configStore.GetString(KeyVocabularyFile),
		},
		Journal: domain.JournalSettings{
			Enabled: s.getBool(KeyJournalEnabled, defaults.Journal.Enabled),
			Dir:     s.configStore.GetString(KeyJournalDir),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyExtensions, settings.Rewrite.Extensions},
		{KeyRecursive, settings.Rewrite.Recursive},
		{KeyPasses, settings.Rewrite.Passes},
		{KeyWorkers, settings.Rewrite.Workers},
		{KeyMinAliasLength, settings.Match.MinAliasLength},
		{KeyMetricLabel, settings.Labels.Metric},
		{KeyPillLabel, settings.Labels.Pill},
		{KeyVocabularyFile, settings.Vocabulary.File},
		{KeyJournalEnabled, settings.Journal.Enabled},
		{KeyJournalDir, settings.Journal.Dir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses value according to the type of key and persists it.
// Lists are comma separated. The resulting settings must validate.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingsKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown settings key %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case kindList:
		parsed = splitList(value)
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = b
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = n
	default:
		parsed = strings.TrimSpace(value)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings, key, parsed)
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every settings key, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingsKeys))
	for k := range settingsKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func apply(settings *domain.AppSettings, key string, value any) {
	switch key {
	case KeyExtensions:
		settings.Rewrite.Extensions = value.([]string)
	case KeyRecursive:
		settings.Rewrite.Recursive = value.(bool)
	case KeyPasses:
		settings.Rewrite.Passes = value.([]string)
	case KeyWorkers:
		settings.Rewrite.Workers = value.(int)
	case KeyMinAliasLength:
		settings.Match.MinAliasLength = value.(int)
	case KeyMetricLabel:
		settings.Labels.Metric = value.(string)
	case KeyPillLabel:
		settings.Labels.Pill = value.(string)
	case KeyVocabularyFile:
		settings.Vocabulary.File = value.(string)
	case KeyJournalEnabled:
		settings.Journal.Enabled = value.(bool)
	case KeyJournalDir:
		settings.Journal.Dir = value.(string)
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getList(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
