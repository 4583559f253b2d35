package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/prediction"
	"golang-market-predictor/pkg/telegram"
	"golang-market-predictor/pkg/utils"

	"gorm.io/datatypes"
)

const (
	defaultAlertMinConfidence = 75
	defaultAlertDedupeWindow  = 24 * time.Hour
)

// RecommendationAlertPayload configures a recommendation_alert run.
type RecommendationAlertPayload struct {
	MinConfidence float64 `json:"min_confidence"`
	// DedupeWindow is a Go duration string, e.g. "24h".
	DedupeWindow string `json:"dedupe_window"`
	// TelegramDigest sends all alerts of a run in as few messages as possible.
	TelegramDigest bool `json:"telegram_digest"`
}

type alertResult struct {
	Status        string   `json:"status"`
	Evaluated     int      `json:"evaluated"`
	Alerts        []string `json:"alerts"`
	Duplicates    int      `json:"duplicates"`
	Notifications int      `json:"notifications"`
	TelegramSent  int      `json:"telegram_sent"`
	Errors        []string `json:"errors"`
}

// RecommendationAlertStrategy raises buy and sell calls to users and Telegram.
type RecommendationAlertStrategy struct {
	predictionRepo   repository.PredictionRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	alertRepo        repository.AlertRepository
	telegramNotifier telegram.Notifier
	logger           *logger.Logger
}

// NewRecommendationAlertStrategy creates a new RecommendationAlertStrategy.
func NewRecommendationAlertStrategy(
	predictionRepo repository.PredictionRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	alertRepo repository.AlertRepository,
	telegramNotifier telegram.Notifier,
	log *logger.Logger,
) *RecommendationAlertStrategy {
	return &RecommendationAlertStrategy{
		predictionRepo:   predictionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		alertRepo:        alertRepo,
		telegramNotifier: telegramNotifier,
		logger:           log,
	}
}

// GetType returns the job type this strategy handles.
func (s *RecommendationAlertStrategy) GetType() entity.JobType {
	return entity.JobTypeRecommendationAlert
}

func (s *RecommendationAlertStrategy) Execute(ctx context.Context, job *entity.Job) (string, error) {
	var payload RecommendationAlertPayload
	if err := decodePayload(job, &payload); err != nil {
		return "", err
	}
	if payload.MinConfidence <= 0 {
		payload.MinConfidence = defaultAlertMinConfidence
	}
	window := defaultAlertDedupeWindow
	if payload.DedupeWindow != "" {
		d, err := time.ParseDuration(payload.DedupeWindow)
		if err != nil || d <= 0 {
			return "", fmt.Errorf("invalid dedupe_window %q", payload.DedupeWindow)
		}
		window = d
	}

	predictions, err := s.predictionRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load predictions: %w", err)
	}

	result := alertResult{Alerts: []string{}, Errors: []string{}}
	var (
		alerts []telegram.RecommendationAlert
		ids    []uint
	)
	for _, p := range predictions {
		if !utils.ShouldContinue(ctx) {
			return "", ctx.Err()
		}
		metrics, err := prediction.Evaluate(prediction.Record{
			CurrentValue:   p.CurrentValue,
			PredictedValue: p.PredictedValue,
			Confidence:     p.Confidence,
		})
		if err != nil {
			s.logger.Warn("Skip prediction without a current value", logger.IntField("prediction_id", int(p.ID)), logger.StringField("symbol", p.Symbol))
			continue
		}
		result.Evaluated++

		if metrics.RecommendedAction == prediction.ActionHold || p.Confidence < payload.MinConfidence {
			continue
		}

		claimed, err := s.alertRepo.MarkSent(ctx, p.ID, string(metrics.RecommendedAction), window)
		if err != nil {
			s.logger.Error("Failed to dedupe alert", logger.ErrorField(err), logger.IntField("prediction_id", int(p.ID)))
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if !claimed {
			result.Duplicates++
			continue
		}

		alerts = append(alerts, telegram.RecommendationAlert{
			Symbol:         p.Symbol,
			Name:           p.Name,
			AssetType:      p.AssetType,
			Action:         string(metrics.RecommendedAction),
			Trend:          string(metrics.Trend),
			Confidence:     p.Confidence,
			CurrentValue:   p.CurrentValue,
			PredictedValue: p.PredictedValue,
			ExpectedROI:    metrics.ExpectedROI,
			TimeFrame:      p.TimeFrame,
			Currency:       p.Currency(),
		})
		ids = append(ids, p.ID)
		result.Alerts = append(result.Alerts, fmt.Sprintf("%s %s (%s)", strings.ToUpper(string(metrics.RecommendedAction)), p.Symbol, p.TimeFrame))
	}

	if len(alerts) > 0 {
		if err := s.notifyUsers(ctx, alerts, ids, &result); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
		s.sendTelegram(alerts, payload.TelegramDigest, &result)
	}

	switch {
	case len(result.Errors) > 0:
		result.Status = statusFailed
	case len(alerts) == 0:
		result.Status = statusSkipped
	default:
		result.Status = statusSuccess
	}

	output, err := marshalOutput(result)
	if err != nil {
		return "", err
	}
	if len(result.Errors) > 0 {
		return output, fmt.Errorf("%d alert errors", len(result.Errors))
	}
	return output, nil
}

func (s *RecommendationAlertStrategy) notifyUsers(ctx context.Context, alerts []telegram.RecommendationAlert, ids []uint, result *alertResult) error {
	users, err := s.userRepo.FindNotifiable(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	notifications := make([]entity.Notification, 0, len(users)*len(alerts))
	for i, a := range alerts {
		payload, err := json.Marshal(entity.NotificationPayload{
			Screen: "prediction",
			Params: map[string]any{"id": ids[i]},
		})
		if err != nil {
			return fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		for _, u := range users {
			notifications = append(notifications, entity.Notification{
				UserID:  u.ID,
				Title:   alertTitle(a),
				Message: alertMessage(a),
				Type:    entity.NotificationTypePrediction,
				Payload: datatypes.JSON(payload),
			})
		}
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	result.Notifications = len(notifications)
	return nil
}

func (s *RecommendationAlertStrategy) sendTelegram(alerts []telegram.RecommendationAlert, digest bool, result *alertResult) {
	if s.telegramNotifier == nil || !s.telegramNotifier.Enabled() {
		return
	}

	var messages []string
	if digest {
		messages = telegram.FormatRecommendationAlerts(alerts)
	} else {
		for _, a := range alerts {
			messages = append(messages, telegram.FormatRecommendationAlert(a))
		}
	}

	for _, msg := range messages {
		if err := s.telegramNotifier.SendMessage(msg); err != nil {
			s.logger.Error("Failed to send telegram alert", logger.ErrorField(err))
			result.Errors = append(result.Errors, fmt.Sprintf("telegram: %v", err))
			continue
		}
		result.TelegramSent++
	}
}

func alertTitle(a telegram.RecommendationAlert) string {
	return fmt.Sprintf("%s signal: %s", titleCase(a.Action), a.Symbol)
}

func alertMessage(a telegram.RecommendationAlert) string {
	return fmt.Sprintf("%s is expected to move %s to %s over %s (%.0f%% confidence).",
		a.Name,
		utils.FormatSignedPercentage(a.ExpectedROI),
		utils.FormatCurrency(a.PredictedValue, a.Currency),
		a.TimeFrame,
		a.Confidence)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
