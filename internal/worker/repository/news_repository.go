package repository

import (
	"context"

	"golang-market-predictor/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsRepository defines the worker's news data operations.
type NewsRepository interface {
	FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error)
	FindOrCreateSource(ctx context.Context, source *entity.NewsSource) error
	CreateIgnoreConflict(ctx context.Context, article *entity.NewsArticle) (bool, error)
}

// NewNewsRepository creates a new GORM-based news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

type newsRepository struct {
	db *gorm.DB
}

func (r *newsRepository) FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(hashes) == 0 {
		return existing, nil
	}
	var found []string
	err := r.db.WithContext(ctx).Model(&entity.NewsArticle{}).
		Where("hash_identifier IN ?", hashes).
		Pluck("hash_identifier", &found).Error
	if err != nil {
		return nil, err
	}
	for _, h := range found {
		existing[h] = true
	}
	return existing, nil
}

// FindOrCreateSource loads the source by name, creating it with the given attributes when missing.
func (r *newsRepository) FindOrCreateSource(ctx context.Context, source *entity.NewsSource) error {
	return r.db.WithContext(ctx).
		Where(entity.NewsSource{Name: source.Name}).
		Attrs(entity.NewsSource{Reliability: source.Reliability, LogoURL: source.LogoURL, Category: source.Category}).
		FirstOrCreate(source).Error
}

// CreateIgnoreConflict inserts the article unless its url or hash already exists.
// It reports whether a row was written.
func (r *newsRepository) CreateIgnoreConflict(ctx context.Context, article *entity.NewsArticle) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(article)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
