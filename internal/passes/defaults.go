package passes

import (
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/passes/metricname"
	"github.com/custodia-labs/philcanon/internal/passes/parenthetical"
	"github.com/custodia-labs/philcanon/internal/passes/pill"
)

// DefaultOrder is the fixed pass order. Parentheses are canonicalised
// first so the container passes see the code and skip the span.
var DefaultOrder = []string{parenthetical.Name, metricname.Name, pill.Name}

// RegisterDefaults registers all built-in passes with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(parenthetical.Name, buildParenthetical)
	r.Register(metricname.Name, buildMetricName)
	r.Register(pill.Name, buildPill)
}

// NewDefaultRegistry returns a registry with the built-in passes.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// NewDefaultPipeline builds the built-in passes in DefaultOrder.
func NewDefaultPipeline(m driven.TextMatcher) *Pipeline {
	return NewPipeline(
		parenthetical.New(m),
		metricname.New(m),
		pill.New(m),
	)
}

func buildParenthetical(m driven.TextMatcher, _ map[string]any) (driven.Pass, error) {
	return parenthetical.New(m), nil
}

// buildMetricName creates the metric-name pass.
// Supported config keys:
//   - label (string): class of the container (default: "metric-name")
func buildMetricName(m driven.TextMatcher, cfg map[string]any) (driven.Pass, error) {
	var opts []metricname.Option
	if label := getStringFromConfig(cfg, "label"); label != "" {
		opts = append(opts, metricname.WithLabel(label))
	}
	return metricname.New(m, opts...), nil
}

// buildPill creates the pill pass.
// Supported config keys:
//   - label (string): class of the container (default: "pill")
func buildPill(m driven.TextMatcher, cfg map[string]any) (driven.Pass, error) {
	var opts []pill.Option
	if label := getStringFromConfig(cfg, "label"); label != "" {
		opts = append(opts, pill.WithLabel(label))
	}
	return pill.New(m, opts...), nil
}

// getStringFromConfig safely extracts a string from a generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	s, _ := cfg[key].(string)
	return s
}
