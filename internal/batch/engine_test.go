package batch_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinews/internal/batch"
	"vinews/internal/domain"
)

type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

func okFetch(_ context.Context, url string) ([]byte, error) {
	return []byte("<html>" + url + "</html>"), nil
}

func okParse(url string, _ []byte) (*domain.Article, error) {
	return &domain.Article{URL: url, Title: "title for " + url, Content: "content"}, nil
}

func testURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://vnexpress.net/article-%d.html", i)
	}
	return urls
}

func TestNew_RejectsNonPositiveConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     batch.Config
		wantErr error
	}{
		{"zero concurrency", batch.Config{Concurrency: 0, Timeout: time.Second}, batch.ErrNonPositiveConcurrency},
		{"negative concurrency", batch.Config{Concurrency: -3, Timeout: time.Second}, batch.ErrNonPositiveConcurrency},
		{"zero timeout", batch.Config{Concurrency: 2, Timeout: 0}, batch.ErrNonPositiveTimeout},
		{"negative timeout", batch.Config{Concurrency: 2, Timeout: -time.Second}, batch.ErrNonPositiveTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := batch.New(fetcherFunc(okFetch), okParse, tt.cfg, nil)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, e)
		})
	}
}

func TestSetTimeout(t *testing.T) {
	t.Parallel()

	e, err := batch.New(fetcherFunc(okFetch), okParse, batch.Config{Concurrency: 1, Timeout: time.Second}, nil)
	require.NoError(t, err)

	require.ErrorIs(t, e.SetTimeout(0), batch.ErrNonPositiveTimeout)
	require.ErrorIs(t, e.SetTimeout(-time.Minute), batch.ErrNonPositiveTimeout)
	assert.Equal(t, time.Second, e.Timeout())

	require.NoError(t, e.SetTimeout(250*time.Millisecond))
	assert.Equal(t, 250*time.Millisecond, e.Timeout())
}

func TestRun_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		urlCount      int
		limit         int
		wantAttempted int
	}{
		{"limit below count", 10, 3, 3},
		{"limit equals count", 4, 4, 4},
		{"limit above count", 2, 9, 2},
		{"zero limit", 5, 0, 0},
		{"negative limit", 5, -1, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var attempted atomic.Int32
			fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
				attempted.Add(1)
				return okFetch(ctx, url)
			})

			e, err := batch.New(fetcher, okParse, batch.Config{Concurrency: 2, Timeout: time.Second}, nil)
			require.NoError(t, err)

			articles := e.Run(context.Background(), testURLs(tt.urlCount), tt.limit)
			assert.Equal(t, tt.wantAttempted, int(attempted.Load()))
			assert.Len(t, articles, tt.wantAttempted)
		})
	}
}

func TestRun_AllFailuresYieldEmptyResult(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		return nil, errors.New("connection refused")
	})

	e, err := batch.New(fetcher, okParse, batch.Config{Concurrency: 3, Timeout: time.Second}, nil)
	require.NoError(t, err)

	articles := e.Run(context.Background(), testURLs(6), 6)
	assert.Empty(t, articles)
}

func TestRun_DropsParseFailuresOnly(t *testing.T) {
	t.Parallel()

	parse := func(url string, html []byte) (*domain.Article, error) {
		if strings.Contains(url, "article-2") {
			return nil, domain.MissingElement("h1.title-detail")
		}
		return okParse(url, html)
	}

	e, err := batch.New(fetcherFunc(okFetch), parse, batch.Config{Concurrency: 2, Timeout: time.Second}, nil)
	require.NoError(t, err)

	articles := e.Run(context.Background(), testURLs(5), 5)
	require.Len(t, articles, 4)
	for _, a := range articles {
		assert.NotContains(t, a.URL, "article-2")
	}
}

func TestRun_MixedFailuresReturnSurvivorsInAnyOrder(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		if strings.Contains(url, "article-0") {
			return nil, errors.New("http status 500")
		}
		return okFetch(ctx, url)
	})

	e, err := batch.New(fetcher, okParse, batch.Config{Concurrency: 4, Timeout: time.Second}, nil)
	require.NoError(t, err)

	articles := e.Run(context.Background(), testURLs(4), 4)

	got := make([]string, len(articles))
	for i, a := range articles {
		got[i] = a.URL
	}
	// Completion order is not guaranteed, so compare as sets.
	assert.ElementsMatch(t, testURLs(4)[1:], got)
}

func TestRun_NeverExceedsConcurrencyCap(t *testing.T) {
	t.Parallel()

	const maxInFlight = 3

	var inFlight, peak atomic.Int32
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		return okFetch(ctx, url)
	})

	e, err := batch.New(fetcher, okParse, batch.Config{Concurrency: maxInFlight, Timeout: time.Second}, nil)
	require.NoError(t, err)

	articles := e.Run(context.Background(), testURLs(20), 20)
	require.Len(t, articles, 20)
	assert.LessOrEqual(t, int(peak.Load()), maxInFlight)
}

func TestRun_PerRequestTimeoutDropsSlowURL(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		if strings.Contains(url, "article-1") {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return okFetch(ctx, url)
	})

	e, err := batch.New(fetcher, okParse, batch.Config{Concurrency: 2, Timeout: 30 * time.Millisecond}, nil)
	require.NoError(t, err)

	articles := e.Run(context.Background(), testURLs(3), 3)
	require.Len(t, articles, 2)
	for _, a := range articles {
		assert.NotContains(t, a.URL, "article-1")
	}
}
