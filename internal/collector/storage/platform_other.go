//go:build !linux && !windows

package storage

import (
	"context"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[[]mount] {
	return nil
}

func driveTypes(ctx context.Context, log logger.Logger, mounts []mount) map[string]snapshot.DriveType {
	return nil
}
