package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/strategy"
	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(repo *MockJobExecutionRepository, strategies ...strategy.JobExecutionStrategy) *executorService {
	svc := NewExecutorService(repo, logger.NewNop(), strategies).(*executorService)
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}
	return svc
}

func TestExecutorService_RunCompleted(t *testing.T) {
	repo := new(MockJobExecutionRepository)
	st := &MockStrategy{jobType: entity.JobTypePriceSync}
	svc := newTestExecutor(repo, st)

	job := entity.Job{Name: "sync", Type: entity.JobTypePriceSync, Timeout: time.Minute, Payload: json.RawMessage(`{"max_history":30}`)}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.JobExecution) bool {
		return e.Status == entity.JobStatusRunning && e.JobName == "sync" && e.Trigger == entity.TriggerSchedule
	})).Run(func(args mock.Arguments) { args.Get(1).(*entity.JobExecution).ID = 7 }).Return(nil)
	st.On("Execute", mock.Anything, mock.MatchedBy(func(j *entity.Job) bool { return j.Name == "sync" })).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}).Return(`{"status":"success"}`, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	execution, err := svc.Run(context.Background(), job, entity.TriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, uint(7), execution.ID)
	assert.Equal(t, entity.JobStatusCompleted, execution.Status)
	assert.Equal(t, `{"status":"success"}`, execution.Output)
	assert.Equal(t, int64(1500), execution.DurationMs)
	require.NotNil(t, execution.CompletedAt)
	assert.JSONEq(t, `{"max_history":30}`, string(execution.Payload))
	repo.AssertExpectations(t)
}

func TestExecutorService_RunFailedKeepsOutput(t *testing.T) {
	repo := new(MockJobExecutionRepository)
	st := &MockStrategy{jobType: entity.JobTypeNewsIngest}
	svc := newTestExecutor(repo, st)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	st.On("Execute", mock.Anything, mock.Anything).Return(`[{"status":"failed"}]`, errors.New("all 1 feeds failed"))
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	execution, err := svc.Run(context.Background(), entity.Job{Name: "news", Type: entity.JobTypeNewsIngest}, entity.TriggerStartup)
	require.Error(t, err)
	assert.Equal(t, entity.JobStatusFailed, execution.Status)
	assert.Equal(t, "all 1 feeds failed", execution.Error)
	assert.Equal(t, `[{"status":"failed"}]`, execution.Output)
}

func TestExecutorService_RunRecoversPanics(t *testing.T) {
	repo := new(MockJobExecutionRepository)
	st := &MockStrategy{jobType: entity.JobTypePortfolioSnapshot}
	svc := newTestExecutor(repo, st)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	st.On("Execute", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("boom") }).Return("", nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	execution, err := svc.Run(context.Background(), entity.Job{Name: "snap", Type: entity.JobTypePortfolioSnapshot}, entity.TriggerSchedule)
	assert.ErrorContains(t, err, "panic: boom")
	assert.Equal(t, entity.JobStatusFailed, execution.Status)
}

func TestExecutorService_UnknownType(t *testing.T) {
	repo := new(MockJobExecutionRepository)
	svc := newTestExecutor(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	execution, err := svc.Run(context.Background(), entity.Job{Name: "x", Type: "mystery"}, entity.TriggerSchedule)
	assert.ErrorContains(t, err, "no executor strategy found")
	assert.Equal(t, entity.JobStatusFailed, execution.Status)
	assert.False(t, svc.Supports("mystery"))
}

func TestExecutorService_CreateFails(t *testing.T) {
	repo := new(MockJobExecutionRepository)
	st := &MockStrategy{jobType: entity.JobTypePriceSync}
	svc := newTestExecutor(repo, st)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Run(context.Background(), entity.Job{Name: "sync", Type: entity.JobTypePriceSync}, entity.TriggerSchedule)
	assert.Error(t, err)
	st.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestExecutorService_Skip(t *testing.T) {
	repo := new(MockJobExecutionRepository)
	svc := newTestExecutor(repo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.JobExecution) bool {
		return e.Status == entity.JobStatusSkipped && e.Error == "busy" && e.CompletedAt != nil
	})).Return(nil)

	execution, err := svc.Skip(context.Background(), entity.Job{Name: "sync"}, entity.TriggerSchedule, "busy")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusSkipped, execution.Status)
	repo.AssertExpectations(t)
}
