package repository

import (
	"context"
	"strings"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
)

// NewsFilter narrows a news listing.
type NewsFilter struct {
	Category string
	Query    string
	Limit    int
	Offset   int
}

// NewsRepository defines the interface for reading news articles.
type NewsRepository interface {
	FindAll(ctx context.Context, filter NewsFilter) ([]entity.NewsArticle, int64, error)
	FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error)
	FindCategories(ctx context.Context) ([]string, error)
}

// NewNewsRepository creates a new GORM-based news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

type newsRepository struct {
	db *gorm.DB
}

// FindAll returns one page of articles, newest first, plus the total match count.
func (r *newsRepository) FindAll(ctx context.Context, filter NewsFilter) ([]entity.NewsArticle, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.NewsArticle{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(summary) LIKE ?)", like, like)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []entity.NewsArticle
	err := q.Preload("Source").
		Order("published_at desc").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	var article entity.NewsArticle
	if err := r.db.WithContext(ctx).Preload("Source").First(&article, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &article, nil
}

func (r *newsRepository) FindCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&entity.NewsArticle{}).
		Where("category <> ''").
		Distinct().
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
