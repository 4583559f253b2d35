package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/internal/worker/repository"
	"golang-market-predictor/internal/worker/strategy"
	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshService_RunsOneJobPerBatchAndAcks(t *testing.T) {
	stream := new(MockRefreshStream)
	exec := new(MockExecutorService)

	stream.On("Read", mock.Anything, int64(refreshBatchSize), refreshBlock).Return([]repository.RefreshMessage{
		{ID: "1-0", Request: repository.ForecastRefreshRequest{PredictionID: 3}},
		{ID: "2-0", Request: repository.ForecastRefreshRequest{PredictionID: 5}},
		{ID: "3-0", Request: repository.ForecastRefreshRequest{PredictionID: 3}},
		{ID: "4-0", Err: errors.New("bad payload")},
	}, nil)

	var ran entity.Job
	exec.On("Run", mock.Anything, mock.Anything, entity.TriggerStream).
		Run(func(args mock.Arguments) { ran = args.Get(1).(entity.Job) }).
		Return(&entity.JobExecution{Status: entity.JobStatusCompleted}, nil).Once()
	for _, id := range []string{"1-0", "2-0", "3-0", "4-0"} {
		stream.On("Ack", mock.Anything, id).Return(nil).Once()
	}

	svc := NewRefreshService(stream, exec, time.Minute, logger.NewNop())
	svc.ProcessRefresh(context.Background())

	assert.Equal(t, entity.JobTypeForecastRefresh, ran.Type)
	assert.Equal(t, time.Minute, ran.Timeout)
	var payload strategy.ForecastRefreshPayload
	require.NoError(t, json.Unmarshal(ran.Payload, &payload))
	assert.Equal(t, []uint{3, 5}, payload.PredictionIDs)
	stream.AssertExpectations(t)
	exec.AssertExpectations(t)
}

func TestRefreshService_AcksEvenWhenRefreshFails(t *testing.T) {
	stream := new(MockRefreshStream)
	exec := new(MockExecutorService)
	stream.On("Read", mock.Anything, mock.Anything, mock.Anything).Return([]repository.RefreshMessage{
		{ID: "1-0", Request: repository.ForecastRefreshRequest{PredictionID: 9}},
	}, nil)
	exec.On("Run", mock.Anything, mock.Anything, entity.TriggerStream).Return(&entity.JobExecution{Status: entity.JobStatusFailed}, errors.New("not found"))
	stream.On("Ack", mock.Anything, "1-0").Return(nil).Once()

	NewRefreshService(stream, exec, time.Minute, logger.NewNop()).ProcessRefresh(context.Background())
	stream.AssertExpectations(t)
}

func TestRefreshService_IdleAndErrors(t *testing.T) {
	stream := new(MockRefreshStream)
	exec := new(MockExecutorService)
	svc := NewRefreshService(stream, exec, time.Minute, logger.NewNop())

	stream.On("Read", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	svc.ProcessRefresh(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stream.On("Read", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()
	svc.ProcessRefresh(ctx)

	exec.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	stream.AssertNotCalled(t, "Ack", mock.Anything, mock.Anything)
}
