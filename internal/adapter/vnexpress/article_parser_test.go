package vnexpress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinews/internal/adapter/vnexpress"
	"vinews/internal/domain"
)

const articleURL = "https://vnexpress.net/kinh-te-viet-nam-tang-truong-6-8-4701001.html"

func TestParseArticle_Fixture(t *testing.T) {
	t.Parallel()

	article, err := vnexpress.NewArticleParser().ParseArticle(articleURL, readFixture(t, "article.html"))
	require.NoError(t, err)

	assert.Equal(t, articleURL, article.URL)
	assert.Equal(t, "Kinh tế Việt Nam tăng trưởng 6,8%", article.Title)
	assert.Equal(t, "GDP quý III tăng nhanh hơn dự báo nhờ xuất khẩu phục hồi và tiêu dùng nội địa khởi sắc.", article.Summary)
	assert.Contains(t, article.Content, "Tổng cục Thống kê")
	assert.Contains(t, article.Content, "chế biến chế tạo tăng 8,2%")
	assert.Equal(t, "Minh Anh", article.Author)

	want := time.Date(2026, time.August, 28, 10, 30, 0, 0, time.FixedZone("GMT+7", 7*60*60))
	assert.True(t, article.PublishedAt.Equal(want), "published at = %s, want %s", article.PublishedAt, want)
}

func TestParseArticle_Idempotent(t *testing.T) {
	t.Parallel()

	html := readFixture(t, "article.html")
	parser := vnexpress.NewArticleParser()

	first, err := parser.ParseArticle(articleURL, html)
	require.NoError(t, err)
	second, err := parser.ParseArticle(articleURL, html)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseArticle_MissingTitle(t *testing.T) {
	t.Parallel()

	html := []byte(`<html><body>
		<article class="fck_detail"><p class="Normal">Body with no headline.</p></article>
	</body></html>`)

	article, err := vnexpress.NewArticleParser().ParseArticle(articleURL, html)
	require.ErrorIs(t, err, domain.ErrMissingElement)
	assert.Nil(t, article)
}

func TestParseArticle_MissingBody(t *testing.T) {
	t.Parallel()

	html := []byte(`<html><body>
		<h1 class="title-detail">Headline without body</h1>
	</body></html>`)

	_, err := vnexpress.NewArticleParser().ParseArticle(articleURL, html)
	require.ErrorIs(t, err, domain.ErrMissingElement)
}

func TestParseArticle_VideoPage(t *testing.T) {
	t.Parallel()

	article, err := vnexpress.NewArticleParser().ParseArticle(articleURL, readFixture(t, "article_video.html"))
	require.ErrorIs(t, err, domain.ErrUnexpectedElement)
	assert.Nil(t, article)
}

func TestParseArticle_UnparseableDateIsNotFatal(t *testing.T) {
	t.Parallel()

	html := []byte(`<html><body>
		<span class="date">hôm nay</span>
		<h1 class="title-detail">Headline</h1>
		<article class="fck_detail"><p class="Normal">Body text.</p></article>
	</body></html>`)

	article, err := vnexpress.NewArticleParser().ParseArticle(articleURL, html)
	require.NoError(t, err)
	assert.True(t, article.PublishedAt.IsZero())
}
