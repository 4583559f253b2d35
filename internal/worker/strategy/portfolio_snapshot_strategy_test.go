package strategy

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPortfolioSnapshot_UpsertsDailyTotals(t *testing.T) {
	repo := new(MockPortfolioRepository)
	repo.On("FindAll", mock.Anything).Return([]entity.Portfolio{
		{ID: 1, Assets: []entity.PortfolioAsset{
			{Quantity: 0.1, CurrentPrice: 0.2},
			{Quantity: 3, CurrentPrice: 170.55},
		}},
		{ID: 2},
	}, nil)

	var snapshots []entity.PortfolioSnapshot
	repo.On("UpsertSnapshot", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { snapshots = append(snapshots, *args.Get(1).(*entity.PortfolioSnapshot)) }).
		Return(nil)

	s := NewPortfolioSnapshotStrategy(repo, logger.NewNop())
	s.now = func() time.Time { return time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC) }

	out, err := s.Execute(context.Background(), &entity.Job{})
	require.NoError(t, err)
	assert.Contains(t, out, `"date":"2024-03-10"`)
	assert.Contains(t, out, `"1=511.67"`)

	require.Len(t, snapshots, 2)
	assert.Equal(t, 511.67, snapshots[0].TotalValue)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), snapshots[0].Date)
	assert.Equal(t, 0.0, snapshots[1].TotalValue)
}

func TestPortfolioSnapshot_ReportsFailures(t *testing.T) {
	repo := new(MockPortfolioRepository)
	repo.On("FindAll", mock.Anything).Return([]entity.Portfolio{{ID: 1}}, nil)
	repo.On("UpsertSnapshot", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	s := NewPortfolioSnapshotStrategy(repo, logger.NewNop())
	out, err := s.Execute(context.Background(), &entity.Job{})
	assert.Error(t, err)
	assert.Contains(t, out, "deadlock")
}

func TestPortfolioTotal_IsExactInDecimal(t *testing.T) {
	total := portfolioTotal([]entity.PortfolioAsset{
		{Quantity: 0.1, CurrentPrice: 0.1},
		{Quantity: 0.2, CurrentPrice: 0.1},
	})
	assert.Equal(t, "0.03", total.StringFixed(2))
}
