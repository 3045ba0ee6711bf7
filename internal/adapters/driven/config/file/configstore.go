package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/philcanon/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultConfigFile is the settings file name inside ~/.philcanon.
const DefaultConfigFile = "config.toml"

// ConfigStore persists settings as a TOML file. Tables in the file are
// exposed as dot-notation keys, so
//
//	[rewrite]
//	workers = 4
//
// is read back as "rewrite.workers". Values are held in a memory store
// between reads; every Set rewrites the whole file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	values   *memory.ConfigStore
}

// NewConfigStore opens the settings file at path, or ~/.philcanon/config.toml
// when path is empty. A missing file is not an error; it is created on the
// first Set.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".philcanon", DefaultConfigFile)
	}

	s := &ConfigStore{filePath: path, values: memory.NewConfigStore()}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ConfigStore) current() *memory.ConfigStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) { return s.current().Get(key) }

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string { return s.current().GetString(key) }

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int { return s.current().GetInt(key) }

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool { return s.current().GetBool(key) }

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string { return s.current().GetStringSlice(key) }

// Keys returns every key currently set, sorted.
func (s *ConfigStore) Keys() []string { return s.current().Keys() }

// Set stores a value and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.values.Set(key, value); err != nil {
		return err
	}
	return s.save()
}

// save writes every value to the file through a temporary file in the
// same directory. The caller must hold the lock.
func (s *ConfigStore) save() error {
	flat := make(map[string]any)
	for _, key := range s.values.Keys() {
		flat[key], _ = s.values.Get(key)
	}
	data, err := toml.Marshal(nestMap(flat))
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load re-reads the file. A file that does not decode is reported as a
// *domain.ConfigError.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		s.replace(nil)
		return nil
	}
	if err != nil {
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return &domain.ConfigError{Problems: []string{fmt.Sprintf("settings %s: %v", s.filePath, err)}}
	}
	s.replace(flattenMap(loaded, ""))
	return nil
}

func (s *ConfigStore) replace(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = memory.NewConfigStoreFrom(values)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flattenMap turns nested tables into dot-notation keys:
// {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		nested, ok := value.(map[string]any)
		if !ok {
			result[key] = value
			continue
		}
		for k, v := range flattenMap(nested, key) {
			result[k] = v
		}
	}
	return result
}

// nestMap is the inverse of flattenMap, so the file keeps TOML tables.
func nestMap(flat map[string]any) map[string]any {
	result := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := result
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return result
}
