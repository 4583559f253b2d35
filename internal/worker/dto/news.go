package dto

import "time"

// NewsAnalysisInput is the article text handed to the analyzer.
type NewsAnalysisInput struct {
	Title       string
	Source      string
	PublishedAt time.Time
	Content     string
}

// NewsAnalysis is the structured result returned by the analyzer.
type NewsAnalysis struct {
	Summary       string   `json:"summary"`
	Category      string   `json:"category"`
	Sentiment     string   `json:"sentiment"`
	ImpactLevel   string   `json:"impact_level"`
	Topics        []string `json:"topics"`
	RelatedAssets []string `json:"related_assets"`
}

// FeedArticle is an article body extracted from its web page.
type FeedArticle struct {
	Content  string
	ImageURL string
}
