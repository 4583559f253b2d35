package consumer

import (
	"context"
	"sync"
	"time"

	"golang-market-predictor/internal/worker/config"
	"golang-market-predictor/internal/worker/service"
	"golang-market-predictor/pkg/common"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/utils"
)

// RedisConsumer drives the stream handlers of the worker.
type RedisConsumer struct {
	cfg            *config.Config
	refreshService service.RefreshService
	logger         *logger.Logger
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(cfg *config.Config, refreshService service.RefreshService, log *logger.Logger) *RedisConsumer {
	return &RedisConsumer{
		cfg:            cfg,
		refreshService: refreshService,
		logger:         log,
		stopChan:       make(chan struct{}),
	}
}

// Start begins the consumer's processing loops.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.RegisterStreamHandler(ctx, c.refreshService.ProcessRefresh, common.RedisStreamForecastRefresh, c.cfg.Worker.StreamTimeout)
}

// RegisterStreamHandler calls fn in a loop, each call bounded by timeout, until the
// context is cancelled or Stop is called.
func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.StringField("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation", logger.StringField("stream", streamName))
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping", logger.StringField("stream", streamName))
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

// Stop signals the loops to exit and waits for in-flight handlers.
func (c *RedisConsumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
