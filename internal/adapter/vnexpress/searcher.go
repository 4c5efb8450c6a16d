// Package vnexpress adapts the VnExpress website: it builds search and
// homepage URLs, fetches the pages and parses them into domain records.
package vnexpress

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"vinews/internal/adapter/httpclient"
	"vinews/internal/batch"
	"vinews/internal/domain"
)

const (
	defaultHomepageURL   = "https://vnexpress.net/"
	defaultSearchBaseURL = "https://timkiem.vnexpress.net/"
	siteDomain           = "vnexpress.net"
)

// DefaultAdvancedLimit caps how many articles an advanced search fetches when
// the caller does not ask for a specific count.
const DefaultAdvancedLimit = 5

// Config holds the request knobs shared by single-page fetches and the batch
// engine. Both values must be positive; DefaultConfig supplies the usual ones.
type Config struct {
	Timeout     time.Duration
	Concurrency int
}

func DefaultConfig() Config {
	return Config{
		Timeout:     15 * time.Second,
		Concurrency: 4,
	}
}

// Searcher fetches and parses VnExpress pages. Basic search parses the
// results page only; advanced search additionally fetches every candidate
// article through the batch engine, tolerating individual failures.
type Searcher struct {
	homepageURL   string
	searchBaseURL string
	domain        string

	fetcher  httpclient.Fetcher
	pages    *PageParser
	articles *ArticleParser
	engine   *batch.Engine
	log      *zap.Logger
}

type Option func(*Searcher)

// WithFetcher swaps the page fetcher, e.g. for the rendered (headless
// browser) variant.
func WithFetcher(f httpclient.Fetcher) Option {
	return func(s *Searcher) { s.fetcher = f }
}

// WithEndpoints overrides the homepage and search base URLs.
func WithEndpoints(homepageURL, searchBaseURL string) Option {
	return func(s *Searcher) {
		s.homepageURL = homepageURL
		s.searchBaseURL = searchBaseURL
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Searcher) { s.log = log }
}

// New builds a Searcher. Non-positive timeout or concurrency in cfg is a
// construction error.
func New(cfg Config, opts ...Option) (*Searcher, error) {
	s := &Searcher{
		homepageURL:   defaultHomepageURL,
		searchBaseURL: defaultSearchBaseURL,
		domain:        siteDomain,
		fetcher:       httpclient.New(),
		pages:         NewPageParser(),
		articles:      NewArticleParser(),
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	engine, err := batch.New(s.fetcher, s.articles.ParseArticle, batch.Config{
		Concurrency: cfg.Concurrency,
		Timeout:     cfg.Timeout,
	}, s.log)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

// SetTimeout changes the per-request timeout for subsequent fetches, both
// single-page and batch. Concurrency is fixed at construction.
func (s *Searcher) SetTimeout(d time.Duration) error {
	return s.engine.SetTimeout(d)
}

// Search runs a basic search: one page fetch, strictly parsed. Transport and
// structural errors on this primary page propagate to the caller.
func (s *Searcher) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResults, error) {
	searchURL, params := s.buildSearchURL(q)

	refs, err := s.fetchReferences(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	return &domain.SearchResults{
		URL:          searchURL,
		Domain:       s.domain,
		Params:       params,
		Results:      refs,
		TotalResults: len(refs),
		Timestamp:    time.Now().Unix(),
	}, nil
}

// SearchAdvanced runs a basic search, then hands up to q.Limit candidate URLs
// (DefaultAdvancedLimit when unset) to the batch engine. Failures on
// individual articles shorten the result list; they never fail the call.
// Results arrive in completion order, not reference order.
func (s *Searcher) SearchAdvanced(ctx context.Context, q domain.SearchQuery) (*domain.AdvancedSearchResults, error) {
	searchURL, params := s.buildSearchURL(q)

	refs, err := s.fetchReferences(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultAdvancedLimit
	}

	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		urls = append(urls, ref.URL)
	}

	articles := s.engine.Run(ctx, urls, limit)

	return &domain.AdvancedSearchResults{
		URL:          searchURL,
		Domain:       s.domain,
		Params:       params,
		Results:      articles,
		TotalResults: len(articles),
		Timestamp:    time.Now().Unix(),
	}, nil
}

// FetchHomepage fetches and parses the front page.
func (s *Searcher) FetchHomepage(ctx context.Context) (*domain.Homepage, error) {
	body, err := s.fetchPage(ctx, s.homepageURL)
	if err != nil {
		return nil, err
	}

	refs, err := s.pages.ParseHomepage(body)
	if err != nil {
		return nil, err
	}

	return &domain.Homepage{
		URL:          s.homepageURL,
		Domain:       s.domain,
		Results:      refs,
		TotalResults: len(refs),
		Timestamp:    time.Now().Unix(),
	}, nil
}

func (s *Searcher) fetchReferences(ctx context.Context, searchURL string) ([]domain.SearchReference, error) {
	body, err := s.fetchPage(ctx, searchURL)
	if err != nil {
		return nil, err
	}
	return s.pages.ParseSearchResults(body)
}

func (s *Searcher) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.engine.Timeout())
	defer cancel()
	return s.fetcher.Fetch(ctx, pageURL)
}

func (s *Searcher) buildSearchURL(q domain.SearchQuery) (string, map[string]string) {
	params := url.Values{}
	params.Set("q", q.Query)
	if q.DateRange != "" {
		params.Set("date_range", string(q.DateRange))
	}
	if q.Category != "" {
		params.Set("category", string(q.Category))
	}

	flat := make(map[string]string, len(params))
	for key := range params {
		flat[key] = params.Get(key)
	}
	return fmt.Sprintf("%s?%s", s.searchBaseURL, params.Encode()), flat
}
