package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/philcanon/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
	assert.NoError(t, service.Validate())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{
		KeyExtensions:     []any{".html", ".htm"},
		KeyRecursive:      true,
		KeyPasses:         []any{"pill"},
		KeyWorkers:        int64(4),
		KeyMinAliasLength: int64(0),
		KeyPillLabel:      "badge",
		KeyVocabularyFile: "/etc/philcanon/vocab.yaml",
		KeyJournalEnabled: false,
		KeyJournalDir:     "/var/lib/philcanon",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, []string{".html", ".htm"}, settings.Rewrite.Extensions)
	assert.True(t, settings.Rewrite.Recursive)
	assert.Equal(t, []string{"pill"}, settings.Rewrite.Passes)
	assert.Equal(t, 4, settings.Rewrite.Workers)
	assert.Equal(t, 0, settings.Match.MinAliasLength)
	assert.Equal(t, "metric-name", settings.Labels.Metric)
	assert.Equal(t, "badge", settings.Labels.Pill)
	assert.Equal(t, "/etc/philcanon/vocab.yaml", settings.Vocabulary.File)
	assert.False(t, settings.Journal.Enabled)
	assert.Equal(t, "/var/lib/philcanon", settings.Journal.Dir)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{KeyExtensions, ".html, .htm,,", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, []string{".html", ".htm"}, s.Rewrite.Extensions)
		}},
		{KeyRecursive, "true", func(t *testing.T, s *domain.AppSettings) {
			assert.True(t, s.Rewrite.Recursive)
		}},
		{KeyPasses, "pill,parenthetical", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, []string{"pill", "parenthetical"}, s.Rewrite.Passes)
		}},
		{KeyWorkers, " 8 ", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 8, s.Rewrite.Workers)
		}},
		{KeyMinAliasLength, "0", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 0, s.Match.MinAliasLength)
		}},
		{KeyMetricLabel, "metric", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "metric", s.Labels.Metric)
		}},
		{KeyJournalEnabled, "false", func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.Journal.Enabled)
		}},
		{KeyJournalDir, "/tmp/journal", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/tmp/journal", s.Journal.Dir)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"unknown key", "search.mode", "full", domain.ErrInvalidInput},
		{"bad bool", KeyRecursive, "sometimes", domain.ErrInvalidInput},
		{"bad int", KeyWorkers, "many", domain.ErrInvalidInput},
		{"invalid workers", KeyWorkers, "0", domain.ErrConfiguration},
		{"empty passes", KeyPasses, " , ", domain.ErrConfiguration},
		{"empty label", KeyPillLabel, "  ", domain.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.Keys())
		})
	}
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Rewrite.Workers = 3
	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rewrite.Workers)
	assert.Len(t, store.Keys(), len(service.Keys()))

	settings.Rewrite.Workers = -1
	assert.ErrorIs(t, service.Save(&settings), domain.ErrConfiguration)
	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Len(t, keys, 10)
	assert.Equal(t, KeyJournalDir, keys[0])
	assert.Contains(t, keys, KeyMinAliasLength)
}
