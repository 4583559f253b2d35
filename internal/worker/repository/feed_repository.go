package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-market-predictor/internal/worker/dto"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

const (
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxArticleBytes = 2 << 20
)

// FeedRepository reads RSS/Atom feeds and the articles they link to.
type FeedRepository interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
	ExtractArticle(ctx context.Context, link string) (*dto.FeedArticle, error)
}

// NewFeedRepository creates a feed repository using client, or a default one with a timeout.
func NewFeedRepository(client *http.Client, log *logger.Logger) FeedRepository {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &feedRepository{client: client, logger: log}
}

type feedRepository struct {
	client *http.Client
	logger *logger.Logger
}

func (r *feedRepository) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.Client = r.client
	fp.UserAgent = userAgent
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}
	return feed, nil
}

// ExtractArticle downloads the page, keeps the readable body as plain text and picks up
// the og:image when the page declares one.
func (r *feedRepository) ExtractArticle(ctx context.Context, link string) (*dto.FeedArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for article: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch article, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read article body: %w", err)
	}

	article := &dto.FeedArticle{}
	if page, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		if img, ok := page.Find(`meta[property="og:image"]`).Attr("content"); ok {
			article.ImageURL = strings.TrimSpace(img)
		}
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article: %w", err)
	}
	readable, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Content()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse readable content: %w", err)
	}

	article.Content = utils.CollapseWhitespace(utils.CleanToValidUTF8(readable.Text()))
	r.logger.Debug("Extracted article", logger.StringField("link", link), logger.IntField("length", len(article.Content)))
	return article, nil
}
