// Package bootstrap assembles the canonicaliser and its adapters from
// application settings.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/custodia-labs/philcanon/internal/adapters/driven/config/file"
	"github.com/custodia-labs/philcanon/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/philcanon/internal/connectors/filesystem"
	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/core/services"
	"github.com/custodia-labs/philcanon/internal/logger"
	"github.com/custodia-labs/philcanon/internal/passes"
	"github.com/custodia-labs/philcanon/internal/vocabulary"
)

// App holds the assembled canonicaliser and the resources it owns.
type App struct {
	Canonicaliser *services.Canonicaliser
	Index         *vocabulary.Index
	Pipeline      *passes.Pipeline
	Sources       *filesystem.Factory

	journal driven.JournalStore
}

// Close releases the journal, if one was opened.
func (a *App) Close() error {
	if a.journal == nil {
		return nil
	}
	return a.journal.Close()
}

// VocabularySource returns the source named by settings: the override file
// when one is configured, the built-in table otherwise.
func VocabularySource(settings domain.AppSettings) driven.VocabularySource {
	if settings.Vocabulary.File != "" {
		return file.NewVocabularyFile(settings.Vocabulary.File)
	}
	return vocabulary.Builtin{}
}

// BuildIndex loads and validates the vocabulary.
func BuildIndex(ctx context.Context, settings domain.AppSettings) (*vocabulary.Index, error) {
	logger.Section("Vocabulary")
	v, err := VocabularySource(settings).Load(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := vocabulary.Build(v)
	if err != nil {
		return nil, err
	}
	logger.Debug("vocabulary: %d entities, %d surface forms", idx.Registry().Len(), idx.Len())
	return idx, nil
}

// BuildPipeline creates the configured passes over matcher.
func BuildPipeline(settings domain.AppSettings, matcher driven.TextMatcher) (*passes.Pipeline, error) {
	cfgs := map[string]map[string]any{
		domain.PassMetricName: {"label": settings.Labels.Metric},
		domain.PassPill:       {"label": settings.Labels.Pill},
	}
	return passes.NewDefaultRegistry().BuildPipeline(settings.Rewrite.Passes, matcher, cfgs)
}

// NewSourceFactory creates the filesystem factory for settings.
func NewSourceFactory(settings domain.AppSettings) *filesystem.Factory {
	return filesystem.NewFactory(
		filesystem.WithExtensions(settings.Rewrite.Extensions...),
		filesystem.WithRecursive(settings.Rewrite.Recursive),
	)
}

// New assembles the canonicaliser. Configuration errors fail fast, before
// any file is touched.
func New(ctx context.Context, settings domain.AppSettings) (*App, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	idx, err := BuildIndex(ctx, settings)
	if err != nil {
		return nil, err
	}
	matcher := vocabulary.NewMatcher(idx, vocabulary.WithMinAliasLength(settings.Match.MinAliasLength))

	pipeline, err := BuildPipeline(settings, matcher)
	if err != nil {
		return nil, err
	}

	app := &App{
		Index:    idx,
		Pipeline: pipeline,
		Sources:  NewSourceFactory(settings),
	}

	if settings.Journal.Enabled {
		store, err := sqlite.NewStore(settings.Journal.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrJournalUnavailable, err)
		}
		logger.Debug("journal: %s", store.Path())
		app.journal = store.JournalStore()
	}

	app.Canonicaliser = services.NewCanonicaliser(app.Sources, pipeline, matcher, idx, app.journal)
	return app, nil
}

// NewWatcher creates a watcher over root using the source options of settings.
func NewWatcher(settings domain.AppSettings, root string) (*filesystem.Watcher, error) {
	src, err := NewSourceFactory(settings).Open(root)
	if err != nil {
		return nil, err
	}
	return filesystem.NewWatcher(src), nil
}
