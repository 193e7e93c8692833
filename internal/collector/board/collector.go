// Package board
package board

import (
	"context"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type Collector struct {
	log     logger.Logger
	sources []chain.Source[snapshot.Board]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, sources: buildSources()}
}

func buildSources() []chain.Source[snapshot.Board] {
	sources := platformSources()
	return append(sources, chain.Source[snapshot.Board]{Name: "ghw", Probe: readGHW})
}

func (c *Collector) Collect(ctx context.Context) snapshot.Board {
	val, ok := chain.Resolve(ctx, c.log, "board", c.sources, valid)
	if !ok {
		return snapshot.UnknownBoard()
	}
	if val.Manufacturer == "" {
		val.Manufacturer = snapshot.Unknown
	}
	if val.Model == "" {
		val.Model = snapshot.Unknown
	}
	return val
}

func valid(v snapshot.Board) bool {
	return v.Manufacturer != "" || v.Model != ""
}
