package service

import (
	"context"
	"fmt"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/internal/worker/strategy"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"

	"gorm.io/datatypes"
)

// ExecutorService runs jobs through their strategy and records every run.
type ExecutorService interface {
	Run(ctx context.Context, job entity.Job, trigger string) (*entity.JobExecution, error)
	Skip(ctx context.Context, job entity.Job, trigger, reason string) (*entity.JobExecution, error)
	Supports(jobType entity.JobType) bool
}

// NewExecutorService creates a new ExecutorService.
func NewExecutorService(
	historyRepo repository.JobExecutionRepository,
	log *logger.Logger,
	strategies []strategy.JobExecutionStrategy,
) ExecutorService {
	strategyMap := make(map[entity.JobType]strategy.JobExecutionStrategy)
	for _, s := range strategies {
		strategyMap[s.GetType()] = s
	}

	return &executorService{
		historyRepo:        historyRepo,
		logger:             log,
		executorStrategies: strategyMap,
		now:                utils.TimeNowUTC,
	}
}

type executorService struct {
	historyRepo        repository.JobExecutionRepository
	logger             *logger.Logger
	executorStrategies map[entity.JobType]strategy.JobExecutionStrategy
	now                func() time.Time
}

func (s *executorService) Supports(jobType entity.JobType) bool {
	_, ok := s.executorStrategies[jobType]
	return ok
}

// Skip records a run that was not started.
func (s *executorService) Skip(ctx context.Context, job entity.Job, trigger, reason string) (*entity.JobExecution, error) {
	now := s.now()
	execution := &entity.JobExecution{
		JobName:     job.Name,
		JobType:     string(job.Type),
		Trigger:     trigger,
		Status:      entity.JobStatusSkipped,
		Payload:     datatypes.JSON(job.Payload),
		Error:       reason,
		StartedAt:   now,
		CompletedAt: &now,
	}
	if err := s.historyRepo.Create(ctx, execution); err != nil {
		return nil, fmt.Errorf("failed to record skipped job execution: %w", err)
	}
	s.logger.Warn("Job execution skipped", logger.StringField("job", job.Name), logger.StringField("reason", reason))
	return execution, nil
}

// Run records a running execution, executes the job under its timeout and stores the
// outcome. The returned error is the strategy error, if any.
func (s *executorService) Run(ctx context.Context, job entity.Job, trigger string) (*entity.JobExecution, error) {
	execution := &entity.JobExecution{
		JobName:   job.Name,
		JobType:   string(job.Type),
		Trigger:   trigger,
		Status:    entity.JobStatusRunning,
		Payload:   datatypes.JSON(job.Payload),
		StartedAt: s.now(),
	}
	if err := s.historyRepo.Create(ctx, execution); err != nil {
		s.logger.Error("Failed to create job execution", logger.ErrorField(err), logger.StringField("job", job.Name))
		return nil, fmt.Errorf("failed to create job execution: %w", err)
	}

	s.logger.Info("Processing job",
		logger.StringField("job", job.Name),
		logger.StringField("trigger", trigger),
		logger.IntField("execution_id", int(execution.ID)))

	runErr := s.execute(ctx, job, execution)

	completed := s.now()
	execution.CompletedAt = &completed
	execution.DurationMs = completed.Sub(execution.StartedAt).Milliseconds()

	// The job context may already be done; the final status must still be written.
	updateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := s.historyRepo.Update(updateCtx, execution); err != nil {
		s.logger.Error("Failed to update job execution", logger.ErrorField(err), logger.IntField("execution_id", int(execution.ID)))
	}

	s.logger.Info("Job execution completed",
		logger.StringField("job", job.Name),
		logger.StringField("status", string(execution.Status)),
		logger.Field("duration_ms", execution.DurationMs))
	return execution, runErr
}

func (s *executorService) execute(ctx context.Context, job entity.Job, execution *entity.JobExecution) (err error) {
	strategy, ok := s.executorStrategies[job.Type]
	if !ok {
		err = fmt.Errorf("no executor strategy found for job type: %s", job.Type)
		s.logger.Error("Job execution failed", logger.ErrorField(err), logger.StringField("job", job.Name))
		execution.Status = entity.JobStatusFailed
		execution.Error = err.Error()
		return err
	}

	execCtx := ctx
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	var output string
	err = utils.Recover(func() error {
		var runErr error
		output, runErr = strategy.Execute(execCtx, &job)
		return runErr
	})
	execution.Output = output
	if err != nil {
		s.logger.Error("Job execution failed", logger.ErrorField(err), logger.StringField("job", job.Name))
		execution.Status = entity.JobStatusFailed
		execution.Error = err.Error()
		return err
	}

	s.logger.Info("Job executed successfully", logger.StringField("job", job.Name))
	execution.Status = entity.JobStatusCompleted
	return nil
}
