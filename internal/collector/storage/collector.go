// Package storage
package storage

import (
	"context"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

// mount is a raw source reading for one mounted filesystem. The device
// name is kept until classification; the snapshot only carries the
// mount label and drive type.
type mount struct {
	mountpoint string
	device     string
	fstype     string
	total      uint64
	free       uint64
}

type Collector struct {
	log     logger.Logger
	sources []chain.Source[[]mount]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, sources: buildSources()}
}

func buildSources() []chain.Source[[]mount] {
	sources := []chain.Source[[]mount]{
		{Name: "gopsutil", Probe: readGopsutil},
	}
	return append(sources, platformSources()...)
}

// Collect returns one entry per accessible mounted filesystem. An empty
// sequence means nothing was accessible, which is a valid result.
func (c *Collector) Collect(ctx context.Context) []snapshot.Drive {
	mounts, ok := chain.Resolve(ctx, c.log, "storage", c.sources, func(ms []mount) bool { return len(ms) > 0 })
	if !ok {
		return nil
	}

	types := driveTypes(ctx, c.log, mounts)

	out := make([]snapshot.Drive, 0, len(mounts))
	for _, m := range mounts {
		dtype, found := types[m.device]
		if !found {
			dtype = snapshot.DriveUnknown
		}

		free := m.free
		if free > m.total {
			free = m.total
		}

		out = append(out, snapshot.Drive{
			Mount:      m.mountpoint,
			Type:       dtype,
			TotalBytes: m.total,
			FreeBytes:  free,
		})
	}
	return out
}
