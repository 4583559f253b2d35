package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Markets Daily</title>
  <link>https://markets.example.com</link>
  <item>
    <title>Gold hits record high</title>
    <link>https://markets.example.com/gold</link>
    <description>Bullion rallied for a third session.</description>
    <pubDate>Sun, 10 Mar 2024 09:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

const sampleArticle = `<html><head>
<meta property="og:image" content="https://markets.example.com/gold.jpg">
<title>Gold hits record high</title></head>
<body>
<div class="nav"><a href="/">Home</a></div>
<div class="article">
<p>Gold prices climbed to a record high on Friday as traders increased bets that the Federal Reserve will begin cutting interest rates in the coming months, weakening the dollar.</p>
<p>Spot gold rose 1.2 percent in late trading, extending gains for a third consecutive session, while silver and platinum also advanced on the back of strong industrial demand.</p>
</div>
</body></html>`

func TestFeedRepository_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	repo := NewFeedRepository(srv.Client(), logger.NewNop())
	feed, err := repo.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Markets Daily", feed.Title)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "https://markets.example.com/gold", feed.Items[0].Link)
	require.NotNil(t, feed.Items[0].PublishedParsed)
	assert.Equal(t, 10, feed.Items[0].PublishedParsed.Day())
}

func TestFeedRepository_ExtractArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(sampleArticle))
	}))
	defer srv.Close()

	repo := NewFeedRepository(srv.Client(), logger.NewNop())
	article, err := repo.ExtractArticle(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "https://markets.example.com/gold.jpg", article.ImageURL)
	assert.Contains(t, article.Content, "Gold prices climbed to a record high")
	assert.NotContains(t, article.Content, "\n")
}

func TestFeedRepository_ExtractArticle_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	repo := NewFeedRepository(srv.Client(), logger.NewNop())
	_, err := repo.ExtractArticle(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "status code: 403")
}
