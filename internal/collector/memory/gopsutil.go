package memory

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"

	"speccle/internal/snapshot"
)

func readGopsutil(ctx context.Context) (snapshot.Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snapshot.Memory{}, err
	}
	return snapshot.Memory{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
	}, nil
}
