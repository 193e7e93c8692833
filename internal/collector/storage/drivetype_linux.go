package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

var (
	nvmePartition = regexp.MustCompile(`^nvme\d+n\d+p\d+$`)
	sdPartition   = regexp.MustCompile(`^sd[a-z]+\d+$`)
	mmcPartition  = regexp.MustCompile(`^mmcblk\d+p\d+$`)
)

// driveTypes classifies each mount's backing disk: NVMe by device name,
// otherwise SSD/HDD from the sysfs rotational flag.
func driveTypes(ctx context.Context, log logger.Logger, mounts []mount) map[string]snapshot.DriveType {
	out := make(map[string]snapshot.DriveType, len(mounts))
	for _, m := range mounts {
		out[m.device] = classifyDevice(log, m.device)
	}
	return out
}

func classifyDevice(log logger.Logger, device string) snapshot.DriveType {
	name := filepath.Base(device)
	disk := parentDisk(name)
	if disk == "" {
		disk = name
	}

	if strings.HasPrefix(disk, "nvme") {
		return snapshot.DriveNVMe
	}

	b, err := os.ReadFile("/sys/block/" + disk + "/queue/rotational")
	if err != nil {
		log.Debug("no rotational flag for device", "device", disk, "error", err)
		return snapshot.DriveUnknown
	}

	switch strings.TrimSpace(string(b)) {
	case "0":
		return snapshot.DriveSSD
	case "1":
		return snapshot.DriveHDD
	}
	return snapshot.DriveUnknown
}

// parentDisk resolves a partition name to its disk, nvme0n1p2 -> nvme0n1.
func parentDisk(part string) string {
	switch {
	case nvmePartition.MatchString(part), mmcPartition.MatchString(part):
		return part[:strings.LastIndex(part, "p")]
	case sdPartition.MatchString(part):
		return strings.TrimRight(part, "0123456789")
	}

	// Mapped devices (LVM, LUKS): find the disk whose sysfs tree holds
	// the partition.
	entries, err := os.ReadDir("/sys/class/block")
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if _, err := os.Stat(filepath.Join("/sys/class/block", e.Name(), part)); err == nil {
			return e.Name()
		}
	}
	return ""
}
