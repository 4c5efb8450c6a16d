package usecase

import (
	"context"
	"strings"

	"vinews/internal/domain"
	"vinews/internal/repository"
)

// SearchService validates incoming queries and delegates to the site adapter.
type SearchService struct {
	searcher repository.Searcher
}

func NewSearchService(searcher repository.Searcher) *SearchService {
	return &SearchService{searcher: searcher}
}

// Search runs a basic search. The references come back unexpanded.
func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResults, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	return s.searcher.Search(ctx, q)
}

// SearchAdvanced runs an advanced search: every candidate article is fetched
// and parsed, at the cost of one extra request per result.
func (s *SearchService) SearchAdvanced(ctx context.Context, q domain.SearchQuery) (*domain.AdvancedSearchResults, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	return s.searcher.SearchAdvanced(ctx, q)
}

// Homepage fetches the front-page snapshot.
func (s *SearchService) Homepage(ctx context.Context) (*domain.Homepage, error) {
	return s.searcher.FetchHomepage(ctx)
}

func validateQuery(q domain.SearchQuery) error {
	if strings.TrimSpace(q.Query) == "" {
		return ErrEmptyQuery
	}
	if !q.DateRange.Valid() {
		return ErrInvalidDateRange
	}
	if !q.Category.Valid() {
		return ErrUnknownCategory
	}
	return nil
}
