package driven

import (
	"context"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// DocumentSource enumerates and persists the documents of one corpus.
type DocumentSource interface {
	// Root returns the directory the source covers.
	Root() string

	// List returns the paths of every eligible document, sorted.
	List(ctx context.Context) ([]string, error)

	// Read loads one document.
	Read(ctx context.Context, path string) (*domain.Document, error)

	// Write persists doc.Content back to doc.Path.
	Write(ctx context.Context, doc *domain.Document) error

	// Restore writes content to path, keeping the existing file mode.
	Restore(ctx context.Context, path, content string) error

	// Eligible reports whether path would be listed by List.
	Eligible(path string) bool
}

// SourceFactory opens a DocumentSource rooted at a directory.
type SourceFactory interface {
	NewSource(root string) (DocumentSource, error)
}

// ChangeWatcher streams changes to eligible documents.
type ChangeWatcher interface {
	// Watch starts watching and returns a channel of changes.
	// The channel is closed when ctx is cancelled or Close is called.
	Watch(ctx context.Context) (<-chan domain.Change, error)

	// Close stops watching and releases resources.
	Close() error
}
