// Package services implements the driving port interfaces.
//
// The Canonicaliser orchestrates document sources, the rewrite pipeline
// and the journal; SettingsService maps flat config keys onto
// domain.AppSettings. Both depend only on ports, never on adapters.
package services
