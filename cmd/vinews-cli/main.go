package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"vinews/internal/adapter/httpclient"
	"vinews/internal/adapter/vnexpress"
	"vinews/internal/domain"
	"vinews/internal/usecase"
)

func main() {
	var (
		query       = flag.String("query", "", "search query")
		dateRange   = flag.String("date-range", "", "limit results to: day, week, month, year")
		category    = flag.String("category", "", "site section slug, e.g. kinh-doanh")
		advanced    = flag.Bool("advanced", false, "fetch and parse every result article")
		limit       = flag.Int("limit", 0, "max articles to fetch in advanced mode (default 5)")
		timeout     = flag.Duration("timeout", 15*time.Second, "per-request timeout")
		concurrency = flag.Int("concurrency", 4, "max concurrent article fetches")
		homepage    = flag.Bool("homepage", false, "fetch the homepage instead of searching")
		rendered    = flag.Bool("rendered", false, "fetch pages through a headless browser")
		verbose     = flag.Bool("verbose", false, "log dropped articles and request details")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatalf("create logger: %v", err)
		}
	}

	opts := []vnexpress.Option{vnexpress.WithLogger(logger)}
	if *rendered {
		opts = append(opts, vnexpress.WithFetcher(httpclient.NewRendered("")))
	}

	searcher, err := vnexpress.New(vnexpress.Config{
		Timeout:     *timeout,
		Concurrency: *concurrency,
	}, opts...)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	service := usecase.NewSearchService(searcher)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *homepage {
		page, err := service.Homepage(ctx)
		if err != nil {
			log.Fatalf("homepage fetch failed: %v", err)
		}
		fmt.Printf("=== %s (%d items) ===\n", page.URL, page.TotalResults)
		printReferences(page.Results)
		return
	}

	q := domain.SearchQuery{
		Query:     *query,
		DateRange: domain.DateRange(*dateRange),
		Category:  domain.Category(*category),
		Limit:     *limit,
	}

	if *advanced {
		results, err := service.SearchAdvanced(ctx, q)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		fmt.Printf("=== %d articles for %q ===\n", results.TotalResults, *query)
		for _, a := range results.Results {
			fmt.Printf("[%s] %s\n%s\n", a.PublishedAt.Format("02 Jan 2006 15:04"), a.Title, a.URL)
			if a.Summary != "" {
				fmt.Printf("%s\n", a.Summary)
			}
			fmt.Println()
		}
		return
	}

	results, err := service.Search(ctx, q)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	fmt.Printf("=== %d results for %q ===\n", results.TotalResults, *query)
	printReferences(results.Results)
}

func printReferences(refs []domain.SearchReference) {
	for _, r := range refs {
		fmt.Printf("%s\n%s\n", r.Title, r.URL)
		if r.Summary != "" {
			fmt.Printf("%s\n", r.Summary)
		}
		fmt.Println()
	}
}
