package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/passes/metricname"
	"github.com/custodia-labs/philcanon/internal/passes/pill"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Empty(t, r.Names())
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(_ driven.TextMatcher, _ map[string]any) (driven.Pass, error) {
		return &mockPass{name: "test"}, nil
	})

	assert.True(t, r.Has("test"))
	assert.False(t, r.Has("other"))
}

func TestRegistry_Build_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("missing", nil, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, []string{"metric-name", "parenthetical", "pill"}, r.Names())
}

func TestRegistry_BuildPipeline(t *testing.T) {
	r := NewDefaultRegistry()
	m := defaultMatcher(t)

	p, err := r.BuildPipeline([]string{"pill", "parenthetical"}, m, map[string]map[string]any{
		"pill": {"label": "badge"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pill", "parenthetical"}, p.Passes())

	doc := domain.NewDocument("a.html", `<span class="badge">Klopp 9/10</span>`)
	require.NoError(t, p.Rewrite(doc))
	assert.Equal(t, `<span class="badge">Bielsa Intensity (Philosophy_45_Bielsa_Intensity) 9/10</span>`, doc.Content)
}

func TestRegistry_BuildPipeline_Errors(t *testing.T) {
	r := NewDefaultRegistry()
	m := defaultMatcher(t)

	_, err := r.BuildPipeline([]string{"pill", "pill"}, m, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.BuildPipeline([]string{"chunker"}, m, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestBuilders_UseLabel(t *testing.T) {
	m := defaultMatcher(t)

	pass, err := buildMetricName(m, map[string]any{"label": "metric"})
	require.NoError(t, err)
	assert.Equal(t, "metric", pass.(*metricname.Pass).Label())

	pass, err = buildPill(m, map[string]any{"label": 42})
	require.NoError(t, err)
	assert.Equal(t, pill.DefaultLabel, pass.(*pill.Pass).Label())
}
