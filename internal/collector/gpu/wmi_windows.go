package gpu

import (
	"context"
	"errors"

	"github.com/yusufpapurcu/wmi"

	"speccle/internal/collector/chain"
)

type win32VideoController struct {
	Name                 string
	AdapterCompatibility string
	// AdapterRAM is a 32-bit counter on the WMI side; cards with 4 GiB
	// or more overflow it into garbage or negative values.
	AdapterRAM int64
}

func platformSources() []chain.Source[[]adapter] {
	return []chain.Source[[]adapter]{
		{Name: "wmi", Probe: readWMI},
	}
}

func readWMI(ctx context.Context) ([]adapter, error) {
	var controllers []win32VideoController
	q := "SELECT Name, AdapterCompatibility, AdapterRAM FROM Win32_VideoController"
	if err := wmi.Query(q, &controllers); err != nil {
		return nil, err
	}
	if len(controllers) == 0 {
		return nil, errors.New("no Win32_VideoController instances")
	}

	out := make([]adapter, 0, len(controllers))
	for _, vc := range controllers {
		out = append(out, adapter{
			name:   vc.Name,
			vendor: vc.AdapterCompatibility,
			vram:   vc.AdapterRAM,
		})
	}
	return out, nil
}
