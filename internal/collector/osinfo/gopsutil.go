package osinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/host"

	"speccle/internal/snapshot"
)

func readGopsutil(ctx context.Context) (snapshot.OS, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return snapshot.OS{}, err
	}

	return snapshot.OS{
		Name:    info.Platform,
		Version: info.PlatformVersion,
		Build:   info.KernelVersion,
	}, nil
}
