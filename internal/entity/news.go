package entity

import (
	"time"

	"github.com/lib/pq"
)

// NewsSource is a publisher of news articles.
type NewsSource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Reliability float64   `gorm:"not null;default:0.5" json:"reliability"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NewsSource) TableName() string {
	return "news_sources"
}

// NewsArticle is a market news item, optionally enriched by AI analysis.
type NewsArticle struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Summary        string         `json:"summary"`
	Content        string         `json:"content,omitempty"`
	URL            string         `gorm:"unique;not null" json:"url"`
	ImageURL       string         `json:"image_url,omitempty"`
	Category       string         `gorm:"index" json:"category"`
	Topics         pq.StringArray `gorm:"type:text[]" json:"topics"`
	Sentiment      string         `gorm:"not null;default:neutral" json:"sentiment"`
	ImpactLevel    string         `gorm:"not null;default:low" json:"impact_level"`
	RelatedAssets  pq.StringArray `gorm:"type:text[]" json:"related_assets"`
	PublishedAt    time.Time      `gorm:"not null;index" json:"published_at"`
	HashIdentifier string         `gorm:"unique;not null" json:"hash_identifier"`
	SourceID       uint           `json:"source_id"`
	Source         *NewsSource    `gorm:"foreignKey:SourceID" json:"source,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}
