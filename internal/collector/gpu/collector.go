// Package gpu
package gpu

import (
	"context"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
	"speccle/pkg"
)

// adapter is a raw source reading. VRAM stays signed here because some
// sources (32-bit WMI counters in particular) report negative or
// overflowed values; sanitization clamps them before they reach the
// snapshot.
type adapter struct {
	name   string
	vendor string
	vram   int64
}

// placeholderNames lists substrings identifying generic or virtual
// fallback adapters that do not correspond to physical hardware. The
// list is data, not logic: extend it as new placeholders turn up.
var placeholderNames = []string{
	"basic display",
	"basic render",
	"microsoft basic",
	"virtual display",
	"non-physical",
}

type Collector struct {
	log     logger.Logger
	sources []chain.Source[[]adapter]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, sources: buildSources()}
}

func buildSources() []chain.Source[[]adapter] {
	sources := platformSources()
	return append(sources, chain.Source[[]adapter]{Name: "ghw", Probe: readGHW})
}

// Collect returns the detected adapters, placeholders excluded. An
// empty sequence means no discrete GPU was found or detection is
// unsupported here; that is a valid result, not a failure.
func (c *Collector) Collect(ctx context.Context) []snapshot.GPU {
	raw, ok := chain.Resolve(ctx, c.log, "gpu", c.sources, func(as []adapter) bool { return len(as) > 0 })
	if !ok {
		return nil
	}
	return sanitize(raw)
}

func sanitize(raw []adapter) []snapshot.GPU {
	var out []snapshot.GPU
	for _, a := range raw {
		if a.name == "" || pkg.ContainsAny(a.name, placeholderNames) {
			continue
		}

		vram := uint64(0)
		if a.vram > 0 {
			vram = uint64(a.vram)
		}

		out = append(out, snapshot.GPU{
			Name:      a.name,
			Vendor:    a.vendor,
			VRAMBytes: vram,
		})
	}
	return out
}
