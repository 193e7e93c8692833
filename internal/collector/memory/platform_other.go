//go:build !linux && !windows

package memory

import (
	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.Memory] {
	return nil
}
