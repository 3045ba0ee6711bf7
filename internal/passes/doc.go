// Package passes provides the context-specific rewrite passes and the
// pipeline that runs them over a document.
//
// Built-in passes, in their default order:
//
//   - parenthetical: "(Klopp)" becomes "(Philosophy_45_Bielsa_Intensity)"
//   - metric-name: a metric-name span becomes "Name (Code)"
//   - pill: a pill span becomes "Name (Code) score"
//
// Every pass delegates matching to the same TextMatcher and skips spans that
// already carry a canonical code, so running the pipeline twice changes
// nothing the second time.
package passes
