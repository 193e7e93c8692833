//go:build !linux && !windows

package cpu

import (
	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.CPU] {
	return nil
}
