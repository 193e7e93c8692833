//go:build !linux && !windows

package osinfo

import (
	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.OS] {
	return nil
}
