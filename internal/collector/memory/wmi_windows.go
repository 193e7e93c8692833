package memory

import (
	"context"
	"errors"

	"github.com/yusufpapurcu/wmi"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

type win32OperatingSystem struct {
	TotalVisibleMemorySize uint64
	FreePhysicalMemory     uint64
}

func platformSources() []chain.Source[snapshot.Memory] {
	return []chain.Source[snapshot.Memory]{
		{Name: "wmi", Probe: readWMI},
	}
}

func readWMI(ctx context.Context) (snapshot.Memory, error) {
	var out snapshot.Memory

	var oss []win32OperatingSystem
	q := "SELECT TotalVisibleMemorySize, FreePhysicalMemory FROM Win32_OperatingSystem"
	if err := wmi.Query(q, &oss); err != nil {
		return out, err
	}
	if len(oss) == 0 {
		return out, errors.New("no Win32_OperatingSystem instances")
	}

	// WMI reports kilobytes.
	out.TotalBytes = oss[0].TotalVisibleMemorySize * 1024
	out.AvailableBytes = oss[0].FreePhysicalMemory * 1024

	return out, nil
}
