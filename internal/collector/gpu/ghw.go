package gpu

import (
	"context"
	"errors"

	"github.com/jaypipes/ghw"
)

// readGHW is the portable fallback when no platform source produced
// adapters. ghw enumerates PCI display devices but does not report VRAM.
func readGHW(ctx context.Context) ([]adapter, error) {
	info, err := ghw.GPU()
	if err != nil {
		return nil, err
	}
	if len(info.GraphicsCards) == 0 {
		return nil, errors.New("no graphics cards enumerated")
	}

	out := make([]adapter, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		var a adapter
		if card.DeviceInfo != nil {
			if card.DeviceInfo.Product != nil {
				a.name = card.DeviceInfo.Product.Name
			}
			if card.DeviceInfo.Vendor != nil {
				a.vendor = card.DeviceInfo.Vendor.Name
			}
		}
		out = append(out, a)
	}
	return out, nil
}
