package vnexpress

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vinews/internal/domain"
)

// Selectors for the listing templates. Search results and the homepage share
// the article.item-news card markup but sit in different containers.
const (
	searchContainerSelector   = "div.width_common.list-news-subfolder"
	homepageContainerSelector = "section.section_topstory"
	cardSelector              = "article.item-news"
	cardTitleSelector         = "h3.title-news a"
	cardSummarySelector       = "p.description"
)

// PageParser extracts search references from listing pages. It is strict: a
// page whose markup does not match the expected shape fails loudly instead of
// yielding partial data.
type PageParser struct{}

func NewPageParser() *PageParser {
	return &PageParser{}
}

// ParseSearchResults extracts the result cards from a search results page.
// The results container must be present; an empty result set inside it is not
// an error.
func (p *PageParser) ParseSearchResults(html []byte) ([]domain.SearchReference, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	container := doc.Find(searchContainerSelector)
	if container.Length() == 0 {
		return nil, domain.MissingElement(searchContainerSelector)
	}

	return parseCards(container)
}

// ParseHomepage extracts the front-page cards. The top-story section anchors
// the template; without it the page is not the homepage we know how to read.
func (p *PageParser) ParseHomepage(html []byte) ([]domain.SearchReference, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse homepage: %w", err)
	}

	if doc.Find(homepageContainerSelector).Length() == 0 {
		return nil, domain.MissingElement(homepageContainerSelector)
	}

	return parseCards(doc.Selection)
}

// parseCards walks the article cards under root. Every card must carry a
// linked title; the summary may be absent on compact cards.
func parseCards(root *goquery.Selection) ([]domain.SearchReference, error) {
	var parseErr error
	refs := []domain.SearchReference{}

	root.Find(cardSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		titleEl := s.Find(cardTitleSelector).First()
		if titleEl.Length() == 0 {
			parseErr = domain.MissingElement(cardTitleSelector)
			return false
		}
		href, ok := titleEl.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			parseErr = domain.MissingElement(cardTitleSelector + "[href]")
			return false
		}

		refs = append(refs, domain.SearchReference{
			Title:   strings.TrimSpace(titleEl.Text()),
			URL:     strings.TrimSpace(href),
			Summary: strings.TrimSpace(s.Find(cardSummarySelector).First().Text()),
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return refs, nil
}
