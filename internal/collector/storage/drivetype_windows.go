package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type win32DiskDrive struct {
	Index         uint32
	MediaType     string
	InterfaceType string
}

type win32DiskDriveToDiskPartition struct {
	Antecedent string
	Dependent  string
}

type win32LogicalDiskToPartition struct {
	Antecedent string
	Dependent  string
}

func platformSources() []chain.Source[[]mount] {
	return nil
}

// driveTypes maps drive letters to physical disk media types by walking
// the WMI association classes: physical disk -> partition -> logical disk.
func driveTypes(ctx context.Context, log logger.Logger, mounts []mount) map[string]snapshot.DriveType {
	out := make(map[string]snapshot.DriveType, len(mounts))

	var disks []win32DiskDrive
	if err := wmi.Query("SELECT Index, MediaType, InterfaceType FROM Win32_DiskDrive", &disks); err != nil {
		log.Debug("Win32_DiskDrive query failed", "error", err)
		return out
	}

	diskTypes := make(map[string]snapshot.DriveType, len(disks))
	for _, d := range disks {
		diskTypes[fmt.Sprintf("Disk #%d", d.Index)] = classifyMedia(d.MediaType, d.InterfaceType)
	}

	var driveParts []win32DiskDriveToDiskPartition
	if err := wmi.Query("SELECT Antecedent, Dependent FROM Win32_DiskDriveToDiskPartition", &driveParts); err != nil {
		log.Debug("Win32_DiskDriveToDiskPartition query failed", "error", err)
		return out
	}

	var logicalParts []win32LogicalDiskToPartition
	if err := wmi.Query("SELECT Antecedent, Dependent FROM Win32_LogicalDiskToPartition", &logicalParts); err != nil {
		log.Debug("Win32_LogicalDiskToPartition query failed", "error", err)
		return out
	}

	// Partition id ("Disk #0, Partition #1") -> owning physical disk type.
	partToType := make(map[string]snapshot.DriveType)
	for _, dp := range driveParts {
		diskID := refValue(dp.Antecedent)
		partID := refValue(dp.Dependent)
		if i := strings.Index(diskID, ","); i > 0 {
			diskID = diskID[:i]
		}
		if t, found := diskTypes[strings.TrimSpace(diskID)]; found {
			partToType[partID] = t
		}
	}

	for _, lp := range logicalParts {
		letter := refValue(lp.Dependent)
		if t, found := partToType[refValue(lp.Antecedent)]; found {
			for _, m := range mounts {
				if strings.HasPrefix(strings.ToUpper(m.mountpoint), strings.ToUpper(letter)) {
					out[m.device] = t
				}
			}
		}
	}

	return out
}

// refValue extracts the key value from a WMI object reference like
// `\\.\root\cimv2:Win32_DiskPartition.DeviceID="Disk #0, Partition #1"`.
func refValue(ref string) string {
	i := strings.Index(ref, `="`)
	if i < 0 {
		return ref
	}
	return strings.TrimSuffix(ref[i+2:], `"`)
}

func classifyMedia(mediaType, interfaceType string) snapshot.DriveType {
	media := strings.ToUpper(mediaType)
	switch {
	case strings.Contains(interfaceType, "NVMe"):
		return snapshot.DriveNVMe
	case strings.Contains(media, "SSD"), strings.Contains(media, "SOLID"):
		return snapshot.DriveSSD
	case strings.Contains(media, "FIXED"):
		return snapshot.DriveHDD
	}
	return snapshot.DriveUnknown
}
