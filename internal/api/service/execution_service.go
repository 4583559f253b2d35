package service

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/repository"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"
)

const (
	defaultExecutionLimit = 50
	maxExecutionLimit     = 500
)

// ExecutionService defines the interface for reading worker job history.
type ExecutionService interface {
	List(ctx context.Context, q dto.ExecutionQuery) ([]dto.JobExecutionResponse, error)
	Get(ctx context.Context, id uint) (*dto.JobExecutionResponse, error)
}

// NewExecutionService creates a new execution history service.
func NewExecutionService(repo repository.JobExecutionRepository, log *logger.Logger) ExecutionService {
	return &executionService{repo: repo, logger: log}
}

type executionService struct {
	repo   repository.JobExecutionRepository
	logger *logger.Logger
}

func (s *executionService) List(ctx context.Context, q dto.ExecutionQuery) ([]dto.JobExecutionResponse, error) {
	if q.Limit < 0 {
		return nil, invalidArgument("limit must not be negative")
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultExecutionLimit
	}
	if limit > maxExecutionLimit {
		limit = maxExecutionLimit
	}

	executions, err := s.repo.FindAll(ctx, q.Job, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list job executions", logger.ErrorField(err))
		return nil, err
	}

	items := make([]dto.JobExecutionResponse, 0, len(executions))
	for i := range executions {
		items = append(items, toExecutionResponse(&executions[i]))
	}
	return items, nil
}

func (s *executionService) Get(ctx context.Context, id uint) (*dto.JobExecutionResponse, error) {
	execution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("execution %d", id))
	}
	resp := toExecutionResponse(execution)
	return &resp, nil
}

func toExecutionResponse(e *entity.JobExecution) dto.JobExecutionResponse {
	return dto.JobExecutionResponse{
		ID:          e.ID,
		JobName:     e.JobName,
		JobType:     e.JobType,
		Trigger:     e.Trigger,
		Status:      string(e.Status),
		Payload:     json.RawMessage(e.Payload),
		Output:      e.Output,
		Error:       e.Error,
		StartedAt:   e.StartedAt,
		CompletedAt: e.CompletedAt,
		Duration:    e.DurationMs,
	}
}
