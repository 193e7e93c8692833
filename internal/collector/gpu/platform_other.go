//go:build !linux && !windows

package gpu

import "speccle/internal/collector/chain"

func platformSources() []chain.Source[[]adapter] {
	return nil
}
