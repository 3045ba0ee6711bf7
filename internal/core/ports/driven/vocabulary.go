package driven

import (
	"context"

	"github.com/custodia-labs/philcanon/internal/core/domain"
)

// VocabularySource supplies the canonical and legacy tables.
type VocabularySource interface {
	// Load returns the vocabulary. Validation happens when the
	// alias index is built, not here.
	Load(ctx context.Context) (domain.Vocabulary, error)
}

// AliasCatalog exposes the alias index for listing.
type AliasCatalog interface {
	// Entries returns every surface form in matching order.
	Entries() []domain.AliasEntry

	// Collisions returns every registration that replaced a target.
	Collisions() []domain.Collision
}
