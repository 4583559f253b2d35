package consumer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"golang-market-predictor/internal/worker/config"
	"golang-market-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type countingRefresh struct {
	calls       atomic.Int32
	hadDeadline atomic.Bool
}

func (r *countingRefresh) ProcessRefresh(ctx context.Context) {
	if _, ok := ctx.Deadline(); ok {
		r.hadDeadline.Store(true)
	}
	r.calls.Add(1)
	time.Sleep(5 * time.Millisecond)
}

func TestRedisConsumer_LoopsUntilStopped(t *testing.T) {
	refresh := &countingRefresh{}
	cfg := &config.Config{Worker: config.Worker{StreamTimeout: time.Second}}
	c := NewRedisConsumer(cfg, refresh, logger.NewNop())

	c.Start(context.Background())
	assert.Eventually(t, func() bool { return refresh.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	c.Stop()
	after := refresh.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, refresh.calls.Load())
	assert.True(t, refresh.hadDeadline.Load())

	c.Stop()
}

func TestRedisConsumer_StopsOnContextCancel(t *testing.T) {
	refresh := &countingRefresh{}
	cfg := &config.Config{Worker: config.Worker{StreamTimeout: time.Second}}
	c := NewRedisConsumer(cfg, refresh, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}
