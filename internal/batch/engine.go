// Package batch implements the bounded, best-effort fetch-and-parse pipeline
// behind advanced search: given candidate article URLs, fetch and parse up to
// a limit of them concurrently, dropping individual failures.
package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"vinews/internal/adapter/httpclient"
	"vinews/internal/domain"
)

var (
	ErrNonPositiveConcurrency = errors.New("batch: concurrency must be positive")
	ErrNonPositiveTimeout     = errors.New("batch: timeout must be positive")
)

// ParseFunc turns a fetched article page into a structured article.
type ParseFunc func(url string, html []byte) (*domain.Article, error)

// Config holds the engine knobs. Both values must be positive.
type Config struct {
	// Concurrency caps how many fetches may be in flight at once.
	// Fixed at construction.
	Concurrency int
	// Timeout bounds each individual request. Mutable via SetTimeout.
	Timeout time.Duration
}

// Engine fans a set of URLs out to fetch-parse tasks gated by a semaphore.
// Per-URL failures are logged and dropped; they never abort the batch and are
// never retried.
type Engine struct {
	fetcher httpclient.Fetcher
	parse   ParseFunc
	sem     chan struct{}
	timeout atomic.Int64
	log     *zap.Logger
}

// New validates cfg and builds an engine. Non-positive concurrency or timeout
// is rejected here, never clamped or deferred to the first Run.
func New(fetcher httpclient.Fetcher, parse ParseFunc, cfg Config, log *zap.Logger) (*Engine, error) {
	if cfg.Concurrency <= 0 {
		return nil, ErrNonPositiveConcurrency
	}
	if cfg.Timeout <= 0 {
		return nil, ErrNonPositiveTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		fetcher: fetcher,
		parse:   parse,
		sem:     make(chan struct{}, cfg.Concurrency),
		log:     log,
	}
	e.timeout.Store(int64(cfg.Timeout))
	return e, nil
}

// SetTimeout changes the per-request timeout for subsequent fetches.
func (e *Engine) SetTimeout(d time.Duration) error {
	if d <= 0 {
		return ErrNonPositiveTimeout
	}
	e.timeout.Store(int64(d))
	return nil
}

// Timeout returns the current per-request timeout.
func (e *Engine) Timeout() time.Duration {
	return time.Duration(e.timeout.Load())
}

// Run fetches and parses up to limit of urls and returns the articles that
// survived, in completion order. A limit of zero or less attempts nothing.
// Run itself never fails: the worst outcome is an empty slice.
func (e *Engine) Run(ctx context.Context, urls []string, limit int) []domain.Article {
	if limit < 0 {
		limit = 0
	}
	if limit < len(urls) {
		urls = urls[:limit]
	}

	results := make(chan *domain.Article, len(urls))

	var wg sync.WaitGroup
	for _, u := range urls {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			results <- e.fetchParse(ctx, u)
		}(u)
	}
	wg.Wait()
	close(results)

	articles := make([]domain.Article, 0, len(urls))
	for a := range results {
		if a != nil {
			articles = append(articles, *a)
		}
	}
	return articles
}

// fetchParse processes one URL under a semaphore slot. Any failure returns
// nil; the error is logged and goes no further.
func (e *Engine) fetchParse(ctx context.Context, url string) *domain.Article {
	e.sem <- struct{}{}
	defer func() { <-e.sem }()

	reqCtx, cancel := context.WithTimeout(ctx, e.Timeout())
	defer cancel()

	body, err := e.fetcher.Fetch(reqCtx, url)
	if err != nil {
		e.log.Warn("dropping article, fetch failed", zap.String("url", url), zap.Error(err))
		return nil
	}

	article, err := e.parse(url, body)
	if err != nil {
		e.log.Warn("dropping article, parse failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	return article
}
