// Package collector assembles one SystemSnapshot per invocation from
// the seven independent fact categories. No error ever escapes Collect:
// every category failure degrades to its sentinel value.
package collector

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"speccle/internal/collector/board"
	"speccle/internal/collector/cpu"
	"speccle/internal/collector/gpu"
	"speccle/internal/collector/memory"
	"speccle/internal/collector/osinfo"
	"speccle/internal/collector/storage"
	"speccle/internal/collector/system"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type Collector struct {
	osinfo  *osinfo.Collector
	cpu     *cpu.Collector
	memory  *memory.Collector
	gpu     *gpu.Collector
	storage *storage.Collector
	board   *board.Collector
	system  *system.Collector

	log     logger.Logger
	timeout time.Duration
}

func New(log logger.Logger, timeout time.Duration) *Collector {
	return &Collector{
		osinfo:  osinfo.NewCollector(log),
		cpu:     cpu.NewCollector(log),
		memory:  memory.NewCollector(log),
		gpu:     gpu.NewCollector(log),
		storage: storage.NewCollector(log),
		board:   board.NewCollector(log),
		system:  system.NewCollector(log),
		log:     log,
		timeout: timeout,
	}
}

// Collect queries every category concurrently and returns a complete
// snapshot. Categories share no state: each goroutine writes exactly
// one field. A category that times out resolves to its sentinel, the
// same as any other failure.
func (c *Collector) Collect(ctx context.Context) snapshot.SystemSnapshot {
	snap := snapshot.Empty()

	g, gctx := errgroup.WithContext(ctx)
	run := func(fill func(context.Context)) {
		g.Go(func() error {
			cctx := gctx
			if c.timeout > 0 {
				var cancel context.CancelFunc
				cctx, cancel = context.WithTimeout(gctx, c.timeout)
				defer cancel()
			}
			fill(cctx)
			return nil
		})
	}

	run(func(ctx context.Context) { snap.OS = c.osinfo.Collect(ctx) })
	run(func(ctx context.Context) { snap.CPU = c.cpu.Collect(ctx) })
	run(func(ctx context.Context) { snap.Memory = c.memory.Collect(ctx) })
	run(func(ctx context.Context) { snap.GPUs = c.gpu.Collect(ctx) })
	run(func(ctx context.Context) { snap.Storage = c.storage.Collect(ctx) })
	run(func(ctx context.Context) { snap.Board = c.board.Collect(ctx) })
	run(func(ctx context.Context) { snap.Hostname = c.system.Collect(ctx) })

	g.Wait()

	snap.TakenAt = time.Now()
	snap.Clamp()
	return snap
}
