package cpu

import (
	"context"
	"errors"

	gcpu "github.com/shirou/gopsutil/v4/cpu"

	"speccle/internal/snapshot"
)

// readGopsutil is the primary source on every platform.
func readGopsutil(ctx context.Context) (snapshot.CPU, error) {
	var out snapshot.CPU

	info, err := gcpu.InfoWithContext(ctx)
	if err != nil {
		return out, err
	}
	if len(info) == 0 {
		return out, errors.New("no cpu info reported")
	}

	out.Model = info[0].ModelName
	out.Manufacturer = info[0].VendorID
	if info[0].Mhz > 0 {
		out.ClockGHz = info[0].Mhz / 1000
	}

	if physical, err := gcpu.CountsWithContext(ctx, false); err == nil {
		out.PhysicalCores = physical
	}
	if logical, err := gcpu.CountsWithContext(ctx, true); err == nil {
		out.LogicalThreads = logical
	}

	return out, nil
}
