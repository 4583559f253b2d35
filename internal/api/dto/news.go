package dto

import "time"

// NewsListQuery holds the filters of the news list.
type NewsListQuery struct {
	Category string `query:"category"`
	Query    string `query:"q"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type NewsSourceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Reliability float64 `json:"reliability"`
	LogoURL     string  `json:"logo_url,omitempty"`
}

// NewsResponse is a news article as shown in lists and detail views.
type NewsResponse struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Summary       string              `json:"summary"`
	Content       string              `json:"content,omitempty"`
	URL           string              `json:"url"`
	ImageURL      string              `json:"image_url,omitempty"`
	Category      string              `json:"category"`
	Topics        []string            `json:"topics"`
	Sentiment     string              `json:"sentiment"`
	ImpactLevel   string              `json:"impact_level"`
	RelatedAssets []string            `json:"related_assets"`
	PublishedAt   time.Time           `json:"published_at"`
	FormattedDate string              `json:"formatted_date"`
	RelativeTime  string              `json:"relative_time"`
	Source        *NewsSourceResponse `json:"source,omitempty"`
}

type NewsListResponse struct {
	Items  []NewsResponse `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
