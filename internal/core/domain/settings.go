package domain

import (
	"fmt"
	"strings"
)

// Default pass names, in the order they run.
const (
	PassParenthetical = "parenthetical"
	PassMetricName    = "metric-name"
	PassPill          = "pill"
)

// RewriteSettings controls which files are processed and how.
type RewriteSettings struct {
	// Extensions lists the file extensions a run considers.
	Extensions []string

	// Recursive descends into subdirectories of the root.
	Recursive bool

	// Passes names the rewrite passes in application order.
	Passes []string

	// Workers is the number of documents processed concurrently.
	Workers int
}

// MatchSettings holds context matcher configuration.
type MatchSettings struct {
	// MinAliasLength is the length a surface form must exceed before it
	// matches as a substring.
	MinAliasLength int
}

// LabelSettings names the class attributes of the container passes.
type LabelSettings struct {
	Metric string
	Pill   string
}

// VocabularySettings points at an optional vocabulary override file.
type VocabularySettings struct {
	// File is a TOML or YAML vocabulary. Empty means the built-in table.
	File string
}

// JournalSettings controls the rewrite journal.
type JournalSettings struct {
	// Enabled records originals so runs can be undone.
	Enabled bool

	// Dir is the journal data directory. Empty means ~/.philcanon/data.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Rewrite    RewriteSettings
	Match      MatchSettings
	Labels     LabelSettings
	Vocabulary VocabularySettings
	Journal    JournalSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
// They reproduce a plain non-recursive run over the HTML files of one
// directory with every pass enabled.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Rewrite: RewriteSettings{
			Extensions: []string{".html"},
			Recursive:  false,
			Passes:     []string{PassParenthetical, PassMetricName, PassPill},
			Workers:    1,
		},
		Match: MatchSettings{
			MinAliasLength: 3,
		},
		Labels: LabelSettings{
			Metric: "metric-name",
			Pill:   "pill",
		},
		Journal: JournalSettings{
			Enabled: true,
		},
	}
}

// Validate reports every invalid value at once.
func (s AppSettings) Validate() error {
	var problems []string

	if len(s.Rewrite.Extensions) == 0 {
		problems = append(problems, "rewrite.extensions must not be empty")
	}
	for _, ext := range s.Rewrite.Extensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			problems = append(problems, fmt.Sprintf("rewrite.extensions: invalid extension %q", ext))
		}
	}
	if len(s.Rewrite.Passes) == 0 {
		problems = append(problems, "rewrite.passes must name at least one pass")
	}
	if s.Rewrite.Workers < 1 {
		problems = append(problems, fmt.Sprintf("rewrite.workers must be at least 1, got %d", s.Rewrite.Workers))
	}
	if s.Match.MinAliasLength < 0 {
		problems = append(problems,
			fmt.Sprintf("match.min_alias_length must not be negative, got %d", s.Match.MinAliasLength))
	}
	if strings.TrimSpace(s.Labels.Metric) == "" {
		problems = append(problems, "labels.metric must not be empty")
	}
	if strings.TrimSpace(s.Labels.Pill) == "" {
		problems = append(problems, "labels.pill must not be empty")
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}
