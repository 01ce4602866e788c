package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fleet-workflow/internal/pkg/clock"
)

// StaleExpirer retires orders that sat past their scheduled date.
type StaleExpirer interface {
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}

// ExpiryJob runs ExpireStale on a fixed interval until stopped.
type ExpiryJob struct {
	expirer  StaleExpirer
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewExpiryJob(expirer StaleExpirer, clk clock.Clock, interval time.Duration, logger *slog.Logger) *ExpiryJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpiryJob{
		expirer:  expirer,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the loop in the background. Calling Start on a running job is a no-op.
func (j *ExpiryJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.cancel = cancel
	j.done = make(chan struct{})
	go j.loop(ctx, j.done)
}

// Stop cancels the loop and waits for a run in progress to finish.
func (j *ExpiryJob) Stop(ctx context.Context) error {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *ExpiryJob) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and returns how many orders it expired.
func (j *ExpiryJob) RunOnce(ctx context.Context) int {
	started := time.Now()
	n, err := j.expirer.ExpireStale(ctx, j.clock.Now())
	if err != nil {
		j.logger.Error("expiry sweep failed", "expired", n, "error", err)
		return n
	}
	if n > 0 {
		j.logger.Info("expired stale work orders", "expired", n, "elapsed", time.Since(started))
	}
	return n
}
