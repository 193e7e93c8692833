// Package osinfo
package osinfo

import (
	"context"
	"runtime"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type Collector struct {
	log     logger.Logger
	sources []chain.Source[snapshot.OS]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, sources: buildSources()}
}

func buildSources() []chain.Source[snapshot.OS] {
	sources := []chain.Source[snapshot.OS]{
		{Name: "gopsutil", Probe: readGopsutil},
	}
	sources = append(sources, platformSources()...)
	sources = append(sources, chain.Source[snapshot.OS]{Name: "runtime", Probe: readRuntime})
	return sources
}

func (c *Collector) Collect(ctx context.Context) snapshot.OS {
	val, ok := chain.Resolve(ctx, c.log, "os", c.sources, valid)
	if !ok {
		val = snapshot.UnknownOS()
	}

	// The build architecture is always known, whatever the sources said.
	val.Architecture = runtime.GOARCH

	if val.Version == "" {
		val.Version = snapshot.Unknown
	}
	if val.Build == "" {
		val.Build = snapshot.Unknown
	}
	return val
}

func valid(v snapshot.OS) bool {
	return v.Name != ""
}

func readRuntime(ctx context.Context) (snapshot.OS, error) {
	return snapshot.OS{Name: runtime.GOOS}, nil
}
