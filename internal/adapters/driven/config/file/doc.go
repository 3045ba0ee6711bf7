// Package file provides file-based implementations of driven port interfaces.
// These adapters read and persist data on the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based settings storage
//   - VocabularyFile: TOML or YAML vocabulary override
package file
