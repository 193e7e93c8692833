package cpu

import (
	"context"
	"errors"

	"github.com/yusufpapurcu/wmi"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

type win32Processor struct {
	Name                      string
	Manufacturer              string
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
	MaxClockSpeed             uint32
}

func platformSources() []chain.Source[snapshot.CPU] {
	return []chain.Source[snapshot.CPU]{
		{Name: "wmi", Probe: readWMI},
	}
}

func readWMI(ctx context.Context) (snapshot.CPU, error) {
	var out snapshot.CPU

	var procs []win32Processor
	q := "SELECT Name, Manufacturer, NumberOfCores, NumberOfLogicalProcessors, MaxClockSpeed FROM Win32_Processor"
	if err := wmi.Query(q, &procs); err != nil {
		return out, err
	}
	if len(procs) == 0 {
		return out, errors.New("no Win32_Processor instances")
	}

	p := procs[0]
	out.Model = p.Name
	out.Manufacturer = p.Manufacturer
	out.PhysicalCores = int(p.NumberOfCores)
	out.LogicalThreads = int(p.NumberOfLogicalProcessors)
	if p.MaxClockSpeed > 0 {
		out.ClockGHz = float64(p.MaxClockSpeed) / 1000
	}

	return out, nil
}
