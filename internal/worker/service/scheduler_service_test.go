package service

import (
	"context"
	"testing"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSchedulerService_StartValidatesJobs(t *testing.T) {
	tests := []struct {
		name    string
		job     entity.Job
		support bool
		wantErr string
	}{
		{name: "unsupported type", job: entity.Job{Name: "a", Type: "mystery", Cron: "@hourly"}, support: false, wantErr: "unsupported job type"},
		{name: "bad cron", job: entity.Job{Name: "b", Type: entity.JobTypePriceSync, Cron: "every minute"}, support: true, wantErr: "invalid cron expression"},
		{name: "seconds field rejected", job: entity.Job{Name: "c", Type: entity.JobTypePriceSync, Cron: "0 */5 * * * *"}, support: true, wantErr: "invalid cron expression"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := new(MockExecutorService)
			exec.On("Supports", tt.job.Type).Return(tt.support)
			svc := NewSchedulerService(exec, []entity.Job{tt.job}, logger.NewNop())
			err := svc.Start(context.Background())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSchedulerService_StartAndStop(t *testing.T) {
	exec := new(MockExecutorService)
	exec.On("Supports", mock.Anything).Return(true)
	jobs := []entity.Job{
		{Name: "sync", Type: entity.JobTypePriceSync, Cron: "*/5 * * * *"},
		{Name: "daily", Type: entity.JobTypePortfolioSnapshot, Cron: "@daily"},
		{Name: "manual", Type: entity.JobTypeForecastRefresh},
	}
	svc := NewSchedulerService(exec, jobs, logger.NewNop())
	require.NoError(t, svc.Start(context.Background()))

	assert.Len(t, svc.(*schedulerService).cron.Entries(), 2)

	select {
	case <-svc.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestSchedulerService_RunNow(t *testing.T) {
	exec := new(MockExecutorService)
	job := entity.Job{Name: "sync", Type: entity.JobTypePriceSync}
	exec.On("Run", mock.Anything, job, entity.TriggerStartup).
		Return(&entity.JobExecution{ID: 1, Status: entity.JobStatusCompleted}, nil)

	svc := NewSchedulerService(exec, []entity.Job{job}, logger.NewNop())
	execution, err := svc.RunNow(context.Background(), "sync", entity.TriggerStartup)
	require.NoError(t, err)
	assert.Equal(t, uint(1), execution.ID)

	_, err = svc.RunNow(context.Background(), "missing", entity.TriggerStartup)
	assert.ErrorContains(t, err, "unknown job")
}

func TestSchedulerService_SkipsOverlappingRuns(t *testing.T) {
	exec := new(MockExecutorService)
	job := entity.Job{Name: "news", Type: entity.JobTypeNewsIngest}

	started := make(chan struct{})
	release := make(chan struct{})
	exec.On("Run", mock.Anything, job, entity.TriggerSchedule).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&entity.JobExecution{Status: entity.JobStatusCompleted}, nil).Once()
	exec.On("Skip", mock.Anything, job, entity.TriggerStartup, "previous run still in progress").
		Return(&entity.JobExecution{Status: entity.JobStatusSkipped}, nil).Once()

	svc := NewSchedulerService(exec, []entity.Job{job}, logger.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.RunNow(context.Background(), "news", entity.TriggerSchedule)
	}()
	<-started

	execution, err := svc.RunNow(context.Background(), "news", entity.TriggerStartup)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusSkipped, execution.Status)

	close(release)
	<-done
	exec.AssertExpectations(t)
}
