package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang-market-predictor/internal/worker/dto"
	"golang-market-predictor/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// NewsAnalyzerRepository classifies news articles.
type NewsAnalyzerRepository interface {
	Analyze(ctx context.Context, in dto.NewsAnalysisInput) (*dto.NewsAnalysis, error)
}

// NewGeminiNewsAnalyzer creates an analyzer backed by the Gemini API.
func NewGeminiNewsAnalyzer(client *genai.Client, model string, maxRequestPerMinute int, log *logger.Logger) NewsAnalyzerRepository {
	if maxRequestPerMinute <= 0 {
		maxRequestPerMinute = 10
	}
	secondsPerRequest := time.Minute / time.Duration(maxRequestPerMinute)
	return &geminiNewsAnalyzer{
		client:         client,
		model:          model,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type geminiNewsAnalyzer struct {
	client         *genai.Client
	model          string
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func (r *geminiNewsAnalyzer) Analyze(ctx context.Context, in dto.NewsAnalysisInput) (*dto.NewsAnalysis, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := BuildAnalyzeNewsPrompt(in)
	resp, err := r.client.Models.GenerateContent(ctx, r.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.2),
		},
	)
	if err != nil {
		r.logger.Error("Failed to call Gemini API", logger.ErrorField(err), logger.StringField("title", in.Title))
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	return parseNewsAnalysis(resp.Text())
}

// parseNewsAnalysis decodes the model answer and normalises its enum fields.
func parseNewsAnalysis(text string) (*dto.NewsAnalysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty analysis response")
	}

	var result dto.NewsAnalysis
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	result.Sentiment = oneOf(strings.ToLower(result.Sentiment), "neutral", "positive", "negative")
	result.ImpactLevel = oneOf(strings.ToLower(result.ImpactLevel), "low", "medium", "high")
	result.Topics = cleanList(result.Topics, strings.ToLower)
	result.RelatedAssets = cleanList(result.RelatedAssets, strings.ToUpper)
	return &result, nil
}

// oneOf returns v when it is one of allowed, else the first allowed value.
func oneOf(v string, allowed ...string) string {
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return allowed[0]
}

func cleanList(in []string, norm func(string) string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = norm(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
