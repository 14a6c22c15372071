package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation can never fit the budget.
var ErrMemoryLimitExceeded = errors.New("resource: memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes caps the working memory reserved by concurrent runs.
	// 0 disables the cap; reservations are still counted.
	MemoryLimitBytes int64

	// MaxWorkers is the number of runs FitAll lets execute at once.
	// Values <= 0 mean 1.
	MaxWorkers int64

	// IOLimitBytesPerSec paces dataset reads. 0 disables pacing.
	IOLimitBytesPerSec int64
}

// Controller hands out working memory, run slots and read throughput.
// A nil *Controller imposes no limits.
type Controller struct {
	memLimit int64
	mem      *semaphore.Weighted // nil without a cap
	inUse    atomic.Int64

	slots *semaphore.Weighted
	io    *rate.Limiter // nil without pacing
}

// NewController creates a controller enforcing cfg.
func NewController(cfg Config) *Controller {
	c := &Controller{
		memLimit: cfg.MemoryLimitBytes,
		slots:    semaphore.NewWeighted(max(cfg.MaxWorkers, 1)),
	}
	if cfg.MemoryLimitBytes > 0 {
		c.mem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.io = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}
	return c
}

// AcquireMemory reserves bytes of working memory, waiting for other runs to
// release theirs if the cap is reached. A request above the cap itself fails
// at once with ErrMemoryLimitExceeded.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if c.mem != nil {
		if bytes > c.memLimit {
			return fmt.Errorf("%w: requested %d bytes, limit %d", ErrMemoryLimitExceeded, bytes, c.memLimit)
		}
		if err := c.mem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}
	c.inUse.Add(bytes)
	return nil
}

// ReleaseMemory returns a reservation made by AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.mem != nil {
		c.mem.Release(bytes)
	}
	c.inUse.Add(-bytes)
}

// MemoryUsage returns the bytes currently reserved.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.inUse.Load()
}

// AcquireWorker takes a run slot, blocking while all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.slots.Acquire(ctx, 1)
}

// ReleaseWorker frees a slot taken by AcquireWorker.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.slots.Release(1)
}

// AcquireIO waits until bytes may be read under the IO limit.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.io == nil || bytes <= 0 {
		return nil
	}
	return c.io.WaitN(ctx, bytes)
}

// ioBurst is the largest read AcquireIO accepts in one call, 0 if unpaced.
func (c *Controller) ioBurst() int {
	if c == nil || c.io == nil {
		return 0
	}
	return c.io.Burst()
}
