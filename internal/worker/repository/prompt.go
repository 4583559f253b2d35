package repository

import (
	"fmt"
	"strings"

	"golang-market-predictor/internal/worker/dto"
	"golang-market-predictor/pkg/utils"
)

// maxPromptContent bounds the article text sent to the model.
const maxPromptContent = 6000

func BuildAnalyzeNewsPrompt(in dto.NewsAnalysisInput) string {
	published := "N/A"
	if !in.PublishedAt.IsZero() {
		published = utils.FormatDateTime(in.PublishedAt)
	}

	var b strings.Builder
	b.WriteString(`You are a financial markets analyst. Read the news article below and answer with a single JSON object:

{
  "summary": "two or three sentences, plain text",
  "category": "Markets | Economy | Crypto | Commodities | Forex | Stocks | Technology",
  "sentiment": "positive | neutral | negative",
  "impact_level": "high | medium | low",
  "topics": ["short lowercase topic"],
  "related_assets": ["ticker or currency pair, e.g. AAPL, BTC, EUR/USD, XAU"]
}

Rules:
- impact_level is the expected effect on the related assets' prices over the next week.
- Leave related_assets empty when no specific asset is affected.
- Answer with JSON only.

`)
	fmt.Fprintf(&b, "Title: %s\nSource: %s\nPublished: %s\n\nArticle:\n%s\n",
		in.Title, in.Source, published, utils.Truncate(in.Content, maxPromptContent))
	return b.String()
}
