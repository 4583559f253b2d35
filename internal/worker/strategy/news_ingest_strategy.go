package strategy

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/dto"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/lib/pq"
	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	defaultNewsMaxAgeDays  = 3
	defaultNewsMaxItems    = 20
	defaultNewsConcurrency = 2
	defaultNewsCategory    = "Markets"
	maxSummaryLength       = 400
)

// FeedSource is one configured RSS/Atom feed.
type FeedSource struct {
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	Category    string  `json:"category"`
	Reliability float64 `json:"reliability"`
	LogoURL     string  `json:"logo_url"`
}

// NewsIngestPayload configures a news_ingest run.
type NewsIngestPayload struct {
	Feeds              []FeedSource `json:"feeds"`
	MaxAgeDays         int          `json:"max_age_days"`
	MaxItemsPerFeed    int          `json:"max_items_per_feed"`
	BlacklistedDomains []string     `json:"blacklisted_domains"`
	MaxConcurrent      int          `json:"max_concurrent"`
}

type ingestResult struct {
	Feed     string   `json:"feed"`
	Status   string   `json:"status"`
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// NewsIngestStrategy pulls market news from RSS feeds into the news tables.
type NewsIngestStrategy struct {
	feedRepo      repository.FeedRepository
	newsRepo      repository.NewsRepository
	analyzerRepo  repository.NewsAnalyzerRepository
	logger        *logger.Logger
	inmemoryCache *cache.Cache
	now           func() time.Time
}

// NewNewsIngestStrategy creates a new NewsIngestStrategy. analyzerRepo may be nil, in
// which case articles keep the feed description with neutral sentiment.
func NewNewsIngestStrategy(
	feedRepo repository.FeedRepository,
	newsRepo repository.NewsRepository,
	analyzerRepo repository.NewsAnalyzerRepository,
	log *logger.Logger,
) *NewsIngestStrategy {
	return &NewsIngestStrategy{
		feedRepo:      feedRepo,
		newsRepo:      newsRepo,
		analyzerRepo:  analyzerRepo,
		logger:        log,
		inmemoryCache: cache.New(6*time.Hour, 30*time.Minute),
		now:           utils.TimeNowUTC,
	}
}

// GetType returns the job type this strategy handles.
func (s *NewsIngestStrategy) GetType() entity.JobType {
	return entity.JobTypeNewsIngest
}

func (s *NewsIngestStrategy) Execute(ctx context.Context, job *entity.Job) (string, error) {
	var payload NewsIngestPayload
	if err := decodePayload(job, &payload); err != nil {
		return "", err
	}
	if len(payload.Feeds) == 0 {
		return "", fmt.Errorf("news_ingest job %q has no feeds", job.Name)
	}
	if payload.MaxAgeDays <= 0 {
		payload.MaxAgeDays = defaultNewsMaxAgeDays
	}
	if payload.MaxItemsPerFeed <= 0 {
		payload.MaxItemsPerFeed = defaultNewsMaxItems
	}
	limit := payload.MaxConcurrent
	if limit <= 0 {
		limit = defaultNewsConcurrency
	}

	results := make([]ingestResult, len(payload.Feeds))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, feed := range payload.Feeds {
		g.Go(func() error {
			res := s.ingestFeed(gctx, feed, payload)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	failedFeeds := 0
	for _, r := range results {
		if r.Status == statusFailed {
			failedFeeds++
		}
	}

	output, err := marshalOutput(results)
	if err != nil {
		return "", err
	}
	if failedFeeds == len(results) {
		return output, fmt.Errorf("all %d feeds failed", failedFeeds)
	}
	return output, nil
}

func (s *NewsIngestStrategy) ingestFeed(ctx context.Context, fs FeedSource, payload NewsIngestPayload) ingestResult {
	res := ingestResult{Feed: fs.URL, Errors: []string{}}
	fail := func(err error) ingestResult {
		res.Status = statusFailed
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	s.logger.Info("Processing RSS feed", logger.StringField("url", fs.URL))
	feed, err := s.feedRepo.Fetch(ctx, fs.URL)
	if err != nil {
		s.logger.Error("Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("url", fs.URL))
		return fail(err)
	}

	source := &entity.NewsSource{
		Name:        sourceName(fs, feed),
		Reliability: fs.Reliability,
		LogoURL:     fs.LogoURL,
		Category:    fs.Category,
	}
	if source.Reliability <= 0 {
		source.Reliability = 0.5
	}
	if err := s.newsRepo.FindOrCreateSource(ctx, source); err != nil {
		return fail(fmt.Errorf("failed to resolve source %q: %w", source.Name, err))
	}

	items, skipped, err := s.filterItems(ctx, feed.Items, payload)
	if err != nil {
		s.logger.Error("Failed to filter existing news items", logger.ErrorField(err), logger.StringField("url", fs.URL))
		return fail(err)
	}
	res.Skipped = skipped

	s.logger.Info("Filtered news items",
		logger.IntField("original_count", len(feed.Items)),
		logger.IntField("filtered_count", len(items)),
		logger.StringField("url", fs.URL))

	for _, item := range items {
		if !utils.ShouldContinue(ctx) {
			break
		}
		if res.Inserted >= payload.MaxItemsPerFeed {
			break
		}
		created, err := s.processItem(ctx, item, fs, source)
		if err != nil {
			s.logger.Error("Failed to process news item", logger.ErrorField(err), logger.StringField("title", item.Title))
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		if created {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	switch {
	case len(res.Errors) == 0 && res.Inserted == 0:
		res.Status = statusSkipped
	case len(res.Errors) > 0 && res.Inserted == 0:
		res.Status = statusFailed
	default:
		res.Status = statusSuccess
	}
	return res
}

// filterItems drops items that are undated, too old, blacklisted or already stored, and
// returns the rest newest first together with the number dropped.
func (s *NewsIngestStrategy) filterItems(ctx context.Context, items []*gofeed.Item, payload NewsIngestPayload) ([]*gofeed.Item, int, error) {
	cutoff := s.now().Add(-time.Duration(payload.MaxAgeDays) * 24 * time.Hour)

	candidates := make([]*gofeed.Item, 0, len(items))
	hashes := make([]string, 0, len(items))
	skipped := 0
	for _, item := range items {
		switch {
		case item.PublishedParsed == nil || item.Link == "":
			skipped++
			continue
		case item.PublishedParsed.Before(cutoff):
			skipped++
			continue
		case isBlacklisted(item.Link, payload.BlacklistedDomains):
			s.logger.Warn("Skip news from blacklisted domain", logger.StringField("link", item.Link))
			skipped++
			continue
		}
		hash := hashIdentifier(item)
		if _, seen := s.inmemoryCache.Get(hash); seen {
			skipped++
			continue
		}
		candidates = append(candidates, item)
		hashes = append(hashes, hash)
	}

	if len(candidates) == 0 {
		return nil, skipped, nil
	}

	existing, err := s.newsRepo.FindExistingHashes(ctx, hashes)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch existing news: %w", err)
	}

	filtered := make([]*gofeed.Item, 0, len(candidates))
	for i, item := range candidates {
		if existing[hashes[i]] {
			s.inmemoryCache.SetDefault(hashes[i], true)
			skipped++
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishedParsed.After(*filtered[j].PublishedParsed)
	})
	return filtered, skipped, nil
}

func (s *NewsIngestStrategy) processItem(ctx context.Context, item *gofeed.Item, fs FeedSource, source *entity.NewsSource) (bool, error) {
	hash := hashIdentifier(item)
	description := plainText(item.Description)

	article := entity.NewsArticle{
		Title:          utils.CleanToValidUTF8(strings.TrimSpace(item.Title)),
		Summary:        utils.Truncate(description, maxSummaryLength),
		URL:            item.Link,
		Category:       fs.Category,
		Topics:         pq.StringArray(lowerAll(item.Categories)),
		Sentiment:      "neutral",
		ImpactLevel:    "low",
		RelatedAssets:  pq.StringArray{},
		PublishedAt:    item.PublishedParsed.UTC(),
		HashIdentifier: hash,
		SourceID:       source.ID,
	}
	if item.Image != nil {
		article.ImageURL = item.Image.URL
	}

	extracted, err := s.feedRepo.ExtractArticle(ctx, item.Link)
	if err != nil {
		s.logger.Warn("Falling back to feed description", logger.ErrorField(err), logger.StringField("link", item.Link))
		article.Content = description
	} else {
		article.Content = extracted.Content
		if extracted.ImageURL != "" && article.ImageURL == "" {
			article.ImageURL = extracted.ImageURL
		}
	}
	if article.Summary == "" {
		article.Summary = utils.Truncate(article.Content, maxSummaryLength)
	}

	if s.analyzerRepo != nil && article.Content != "" {
		analysis, err := s.analyzerRepo.Analyze(ctx, dto.NewsAnalysisInput{
			Title:       article.Title,
			Source:      source.Name,
			PublishedAt: article.PublishedAt,
			Content:     article.Content,
		})
		if err != nil {
			s.logger.Warn("Failed to analyze news content", logger.ErrorField(err), logger.StringField("title", article.Title))
		} else {
			applyAnalysis(&article, analysis)
		}
	}
	if article.Category == "" {
		article.Category = defaultNewsCategory
	}

	created, err := s.newsRepo.CreateIgnoreConflict(ctx, &article)
	if err != nil {
		return false, fmt.Errorf("failed to create news article: %w", err)
	}
	s.inmemoryCache.SetDefault(hash, true)
	return created, nil
}

func applyAnalysis(article *entity.NewsArticle, a *dto.NewsAnalysis) {
	if a.Summary != "" {
		article.Summary = a.Summary
	}
	if a.Category != "" {
		article.Category = a.Category
	}
	article.Sentiment = a.Sentiment
	article.ImpactLevel = a.ImpactLevel
	if len(a.Topics) > 0 {
		article.Topics = pq.StringArray(a.Topics)
	}
	article.RelatedAssets = pq.StringArray(a.RelatedAssets)
}

// hashIdentifier is the dedupe key of a feed item.
func hashIdentifier(item *gofeed.Item) string {
	sum := md5.Sum([]byte(item.Link + "|" + item.Published))
	return hex.EncodeToString(sum[:])
}

func sourceName(fs FeedSource, feed *gofeed.Feed) string {
	if fs.Source != "" {
		return fs.Source
	}
	if feed != nil && strings.TrimSpace(feed.Title) != "" {
		return strings.TrimSpace(feed.Title)
	}
	if u, err := url.Parse(fs.URL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return fs.URL
}

// isBlacklisted matches the link host against domains, including subdomains.
func isBlacklisted(link string, domains []string) bool {
	if len(domains) == 0 {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" && (host == d || strings.HasSuffix(host, "."+d)) {
			return true
		}
	}
	return false
}

func plainText(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return utils.CollapseWhitespace(html)
	}
	return utils.CollapseWhitespace(utils.CleanToValidUTF8(doc.Text()))
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
