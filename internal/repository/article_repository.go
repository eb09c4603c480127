// Package repository declares the persistence ports used by the use case layer.
package repository

import (
	"context"

	"meetvoice-api/internal/domain/entity"
)

// ArticleFilter contains optional filters for listing articles.
// Nil fields are not applied; present fields are ANDed.
type ArticleFilter struct {
	Category *string // Optional: exact match on the category field
	Theme    *string // Optional: case-insensitive substring match on the theme field
}

// Active reports whether any filter applies. Empty strings count as absent.
func (f ArticleFilter) Active() bool {
	return (f.Category != nil && *f.Category != "") || (f.Theme != nil && *f.Theme != "")
}

// ArticleRepository is the read-only view of the article store.
// Implementations must be safe for concurrent use.
type ArticleRepository interface {
	// CountArticles returns the number of articles matching the filter,
	// ignoring any pagination.
	CountArticles(ctx context.Context, filter ArticleFilter) (int64, error)
	// ListSummariesPaginated returns one page of article summaries matching the
	// filter, most recently published first.
	// Parameters:
	//   - offset: Number of documents to skip (calculated from page number)
	//   - limit: Maximum number of documents to return
	ListSummariesPaginated(ctx context.Context, filter ArticleFilter, offset, limit int) ([]entity.ArticleSummary, error)
	// GetBySlug retrieves the full article with the given slug.
	// Returns (nil, nil) if no article matches.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
}
