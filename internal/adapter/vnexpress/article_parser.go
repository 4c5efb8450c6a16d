package vnexpress

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vinews/internal/domain"
)

// Selectors for the article detail template.
const (
	articleTitleSelector   = "h1.title-detail"
	articleSummarySelector = "p.description"
	articleBodySelector    = "article.fck_detail"
	articleParaSelector    = "p.Normal"
	articleDateSelector    = "span.date"
	articleAuthorSelector  = "p.author_mail strong, p.Normal[style*='text-align:right'] strong"
	// Video and photo-story pages reuse the article URL scheme but carry a
	// player instead of body text.
	videoMarkerSelector = "div.box_embed_video, div#video_player, div.player_embed"
)

// Published timestamps look like "Thứ năm, 28/8/2026, 10:30 (GMT+7)".
var dateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4}),?\s*(\d{1,2}):(\d{2})`)

var vnZone = time.FixedZone("GMT+7", 7*60*60)

// ArticleParser extracts a full article from a detail page. A page missing
// the title or body is rejected with a missing-element error; a video or
// photo-story page is rejected with an unexpected-element error.
type ArticleParser struct{}

func NewArticleParser() *ArticleParser {
	return &ArticleParser{}
}

func (p *ArticleParser) ParseArticle(url string, html []byte) (*domain.Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse article %s: %w", url, err)
	}

	if doc.Find(videoMarkerSelector).Length() > 0 {
		return nil, domain.UnexpectedElement(videoMarkerSelector)
	}

	titleEl := doc.Find(articleTitleSelector).First()
	if titleEl.Length() == 0 {
		return nil, domain.MissingElement(articleTitleSelector)
	}

	body := doc.Find(articleBodySelector).First()
	if body.Length() == 0 {
		return nil, domain.MissingElement(articleBodySelector)
	}

	var content strings.Builder
	body.Find(articleParaSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if content.Len() > 0 {
			content.WriteString("\n")
		}
		content.WriteString(text)
	})
	if content.Len() == 0 {
		return nil, domain.MissingElement(articleBodySelector + " " + articleParaSelector)
	}

	return &domain.Article{
		URL:         url,
		Title:       strings.TrimSpace(titleEl.Text()),
		Summary:     strings.TrimSpace(doc.Find(articleSummarySelector).First().Text()),
		Content:     content.String(),
		Author:      strings.TrimSpace(doc.Find(articleAuthorSelector).First().Text()),
		PublishedAt: parsePublishedAt(doc.Find(articleDateSelector).First().Text()),
	}, nil
}

// parsePublishedAt extracts the publication time from the date line. The
// timestamp is optional metadata; an unparseable date yields the zero time
// rather than failing the article.
func parsePublishedAt(text string) time.Time {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, vnZone)
}
