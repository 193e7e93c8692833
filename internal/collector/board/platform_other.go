//go:build !linux && !windows

package board

import (
	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.Board] {
	return nil
}
