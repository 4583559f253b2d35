package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/internal/worker/strategy"
	"golang-market-predictor/pkg/logger"
)

const (
	refreshBatchSize  = 10
	refreshBlock      = 2 * time.Second
	refreshErrBackoff = time.Second
	refreshJobName    = "forecast-refresh-request"
)

// RefreshService handles on-demand forecast refresh requests from the API.
type RefreshService interface {
	ProcessRefresh(ctx context.Context)
}

// NewRefreshService creates a new RefreshService. jobTimeout bounds each refresh run.
func NewRefreshService(stream repository.RefreshStreamRepository, executor ExecutorService, jobTimeout time.Duration, log *logger.Logger) RefreshService {
	return &refreshService{
		stream:     stream,
		executor:   executor,
		jobTimeout: jobTimeout,
		logger:     log,
	}
}

type refreshService struct {
	stream     repository.RefreshStreamRepository
	executor   ExecutorService
	jobTimeout time.Duration
	logger     *logger.Logger
}

// ProcessRefresh reads one batch of requests, refreshes the requested predictions in a
// single run and acknowledges the batch.
func (s *refreshService) ProcessRefresh(ctx context.Context) {
	messages, err := s.stream.Read(ctx, refreshBatchSize, refreshBlock)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		s.logger.Error("Failed to read from stream", logger.ErrorField(err))
		select {
		case <-ctx.Done():
		case <-time.After(refreshErrBackoff):
		}
		return
	}
	if len(messages) == 0 {
		return
	}

	var ids []uint
	seen := make(map[uint]bool)
	for _, msg := range messages {
		if msg.Err != nil {
			s.logger.Error("Dropping malformed refresh request", logger.ErrorField(msg.Err), logger.StringField("message_id", msg.ID))
			continue
		}
		if !seen[msg.Request.PredictionID] {
			seen[msg.Request.PredictionID] = true
			ids = append(ids, msg.Request.PredictionID)
		}
	}

	if len(ids) > 0 {
		payload, err := json.Marshal(strategy.ForecastRefreshPayload{PredictionIDs: ids})
		if err != nil {
			s.logger.Error("Failed to marshal refresh payload", logger.ErrorField(err))
			return
		}
		job := entity.Job{
			Name:    refreshJobName,
			Type:    entity.JobTypeForecastRefresh,
			Timeout: s.jobTimeout,
			Payload: payload,
		}
		if _, err := s.executor.Run(ctx, job, entity.TriggerStream); err != nil {
			s.logger.Error("Forecast refresh request failed", logger.ErrorField(err), logger.Field("prediction_ids", ids))
		}
	}

	for _, msg := range messages {
		if err := s.stream.Ack(ctx, msg.ID); err != nil {
			s.logger.Error("Failed to acknowledge message", logger.ErrorField(err), logger.StringField("message_id", msg.ID))
		}
	}
}
