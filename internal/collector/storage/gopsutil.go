package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

func readGopsutil(ctx context.Context) ([]mount, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	var out []mount
	for _, p := range parts {
		if skipPartition(p.Fstype, p.Opts) {
			continue
		}

		// Inaccessible mountpoints (unmounted removable media,
		// permission-restricted paths) are skipped, not errors.
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}

		out = append(out, mount{
			mountpoint: p.Mountpoint,
			device:     p.Device,
			fstype:     p.Fstype,
			total:      usage.Total,
			free:       usage.Free,
		})
	}

	if len(out) == 0 {
		return nil, errors.New("no accessible partitions")
	}
	return out, nil
}

func skipPartition(fstype string, opts []string) bool {
	if fstype == "" {
		return true
	}
	for _, o := range opts {
		if strings.EqualFold(o, "cdrom") {
			return true
		}
	}
	return false
}
