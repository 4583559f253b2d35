package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"
)

const (
	defaultNewsLimit = 20
	maxNewsLimit     = 100
	allCategories    = "All"
)

// NewsService defines the interface for serving news.
type NewsService interface {
	List(ctx context.Context, q dto.NewsListQuery) (*dto.NewsListResponse, error)
	Get(ctx context.Context, id uint) (*dto.NewsResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

// NewNewsService creates a new news service.
func NewNewsService(repo repository.NewsRepository, log *logger.Logger) NewsService {
	return &newsService{repo: repo, logger: log, now: utils.TimeNowUTC}
}

type newsService struct {
	repo   repository.NewsRepository
	logger *logger.Logger
	now    func() time.Time
}

func (s *newsService) List(ctx context.Context, q dto.NewsListQuery) (*dto.NewsListResponse, error) {
	if q.Limit < 0 || q.Offset < 0 {
		return nil, invalidArgument("limit and offset must not be negative")
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultNewsLimit
	}
	if limit > maxNewsLimit {
		limit = maxNewsLimit
	}

	category := strings.TrimSpace(q.Category)
	if strings.EqualFold(category, allCategories) {
		category = ""
	}

	articles, total, err := s.repo.FindAll(ctx, repository.NewsFilter{
		Category: category,
		Query:    q.Query,
		Limit:    limit,
		Offset:   q.Offset,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list news", logger.ErrorField(err))
		return nil, err
	}

	now := s.now()
	items := make([]dto.NewsResponse, 0, len(articles))
	for i := range articles {
		items = append(items, toNewsResponse(&articles[i], now, false))
	}

	return &dto.NewsListResponse{Items: items, Total: total, Limit: limit, Offset: q.Offset}, nil
}

func (s *newsService) Get(ctx context.Context, id uint) (*dto.NewsResponse, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("news %d", id))
	}
	resp := toNewsResponse(article, s.now(), true)
	return &resp, nil
}

// Categories returns the distinct article categories, led by the catch-all "All".
func (s *newsService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.FindCategories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{allCategories}, categories...), nil
}

func toNewsResponse(a *entity.NewsArticle, now time.Time, withContent bool) dto.NewsResponse {
	resp := dto.NewsResponse{
		ID:            a.ID,
		Title:         a.Title,
		Summary:       a.Summary,
		URL:           a.URL,
		ImageURL:      a.ImageURL,
		Category:      a.Category,
		Topics:        nonNilStrings(a.Topics),
		Sentiment:     a.Sentiment,
		ImpactLevel:   a.ImpactLevel,
		RelatedAssets: nonNilStrings(a.RelatedAssets),
		PublishedAt:   a.PublishedAt,
		FormattedDate: utils.FormatDate(a.PublishedAt),
		RelativeTime:  utils.RelativeTime(a.PublishedAt, now),
	}
	if withContent {
		resp.Content = a.Content
	}
	if a.Source != nil {
		resp.Source = &dto.NewsSourceResponse{
			ID:          a.Source.ID,
			Name:        a.Source.Name,
			Reliability: a.Source.Reliability,
			LogoURL:     a.Source.LogoURL,
		}
	}
	return resp
}
