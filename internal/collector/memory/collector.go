// Package memory
package memory

import (
	"context"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type Collector struct {
	log     logger.Logger
	sources []chain.Source[snapshot.Memory]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, sources: buildSources()}
}

func buildSources() []chain.Source[snapshot.Memory] {
	sources := []chain.Source[snapshot.Memory]{
		{Name: "gopsutil", Probe: readGopsutil},
	}
	return append(sources, platformSources()...)
}

func (c *Collector) Collect(ctx context.Context) snapshot.Memory {
	val, ok := chain.Resolve(ctx, c.log, "memory", c.sources, valid)
	if !ok {
		return snapshot.Memory{}
	}
	if val.AvailableBytes > val.TotalBytes {
		val.AvailableBytes = val.TotalBytes
	}
	return val
}

func valid(v snapshot.Memory) bool {
	return v.TotalBytes > 0
}
