package repository

import (
	"context"

	"vinews/internal/domain"
)

// Searcher is the port a site adapter implements: basic search, advanced
// search (every hit fully fetched and parsed) and a homepage snapshot.
type Searcher interface {
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResults, error)
	SearchAdvanced(ctx context.Context, q domain.SearchQuery) (*domain.AdvancedSearchResults, error)
	FetchHomepage(ctx context.Context) (*domain.Homepage, error)
}

// ArticleStore persists fully parsed articles.
type ArticleStore interface {
	SaveArticles(ctx context.Context, articles []domain.Article) error
}
