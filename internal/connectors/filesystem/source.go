// Package filesystem provides the local directory document source and its
// fsnotify-based watcher.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// DefaultExtensions are the file extensions rewritten when none are configured.
var DefaultExtensions = []string{".html"}

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source lists, reads and writes back documents under a root directory.
type Source struct {
	root       string
	extensions map[string]bool
	recursive  bool
}

// Option configures a Source.
type Option func(*Source)

// WithExtensions sets the eligible file extensions. A leading dot is
// added when missing; matching ignores case.
func WithExtensions(exts ...string) Option {
	return func(s *Source) {
		if len(exts) == 0 {
			return
		}
		s.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[ext] = true
		}
	}
}

// WithRecursive makes List descend into subdirectories.
func WithRecursive(recursive bool) Option {
	return func(s *Source) {
		s.recursive = recursive
	}
}

// New creates a filesystem source rooted at root.
func New(root string, opts ...Option) *Source {
	if root == "" {
		root = "."
	}
	s := &Source{root: filepath.Clean(ResolvePath(root))}
	WithExtensions(DefaultExtensions...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory the source covers.
func (s *Source) Root() string {
	return s.root
}

// Recursive reports whether List descends into subdirectories.
func (s *Source) Recursive() bool {
	return s.recursive
}

// Eligible reports whether path has an eligible extension and no hidden
// path element below the root.
func (s *Source) Eligible(path string) bool {
	if !s.extensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if isHidden(part) {
			return false
		}
	}
	if !s.recursive && strings.Contains(filepath.ToSlash(rel), "/") {
		return false
	}
	return true
}

// List returns every eligible regular file under the root, sorted.
func (s *Source) List(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, s.root)
	}

	var paths []string
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path == s.root {
				return nil
			}
			if !s.recursive || isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && s.Eligible(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Read loads one document.
func (s *Source) Read(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := domain.NewDocument(path, string(data))
	doc.Mode = info.Mode().Perm()
	return doc, nil
}

// Write replaces the file at doc.Path with doc.Content.
// The content is written to a hidden temporary file in the same directory
// and renamed over the target, so readers never see a partial file.
func (s *Source) Write(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := doc.Mode
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(filepath.Dir(doc.Path), ".philcanon-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(doc.Content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, doc.Path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Restore writes content to path, creating it if needed.
func (s *Source) Restore(ctx context.Context, path, content string) error {
	doc := domain.NewDocument(path, content)
	if info, err := os.Stat(path); err == nil {
		doc.Mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.Write(ctx, doc)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
