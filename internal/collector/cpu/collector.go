// Package cpu
package cpu

import (
	"context"
	"runtime"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type Collector struct {
	log     logger.Logger
	sources []chain.Source[snapshot.CPU]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, sources: buildSources()}
}

func buildSources() []chain.Source[snapshot.CPU] {
	sources := []chain.Source[snapshot.CPU]{
		{Name: "gopsutil", Probe: readGopsutil},
	}
	sources = append(sources, platformSources()...)
	sources = append(sources, chain.Source[snapshot.CPU]{Name: "runtime", Probe: readRuntime})
	return sources
}

func (c *Collector) Collect(ctx context.Context) snapshot.CPU {
	val, ok := chain.Resolve(ctx, c.log, "cpu", c.sources, valid)
	if !ok {
		return snapshot.UnknownCPU()
	}
	return sanitize(val)
}

func valid(v snapshot.CPU) bool {
	return v.Model != "" || v.LogicalThreads > 0
}

func sanitize(v snapshot.CPU) snapshot.CPU {
	if v.Model == "" {
		v.Model = snapshot.Unknown
	}
	if v.Manufacturer == "" {
		v.Manufacturer = snapshot.Unknown
	}
	if v.PhysicalCores < 0 {
		v.PhysicalCores = 0
	}
	if v.LogicalThreads < 0 {
		v.LogicalThreads = 0
	}
	if v.ClockGHz < 0 {
		v.ClockGHz = 0
	}
	return v
}

// readRuntime is the last-resort source: the Go runtime always knows the
// logical CPU count. Physical cores are assumed to be half of logical,
// the common hyperthreading layout.
func readRuntime(ctx context.Context) (snapshot.CPU, error) {
	threads := runtime.NumCPU()
	physical := threads
	if threads > 1 {
		physical = threads / 2
	}
	return snapshot.CPU{
		PhysicalCores:  physical,
		LogicalThreads: threads,
	}, nil
}
