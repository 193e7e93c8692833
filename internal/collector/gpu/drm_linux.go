package gpu

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"speccle/internal/collector/chain"
)

func platformSources() []chain.Source[[]adapter] {
	return []chain.Source[[]adapter]{
		{Name: "drm", Probe: readDRM},
	}
}

// readDRM scans /sys/class/drm for render-capable cards. Vendor comes
// from the PCI vendor ID, VRAM from the amdgpu/nouveau sysfs counters
// where the driver exposes them.
func readDRM(ctx context.Context) ([]adapter, error) {
	entries, err := os.ReadDir("/sys/class/drm")
	if err != nil {
		return nil, err
	}

	var out []adapter
	for _, e := range entries {
		card := e.Name()
		if !strings.HasPrefix(card, "card") || strings.Contains(card, "-") {
			continue
		}

		out = append(out, adapter{
			name:   readCardName(card),
			vendor: readCardVendor(card),
			vram:   readCardVRAM(card),
		})
	}

	if len(out) == 0 {
		return nil, errors.New("no drm cards found")
	}
	return out, nil
}

func readCardVendor(card string) string {
	b, err := os.ReadFile("/sys/class/drm/" + card + "/device/vendor")
	if err != nil {
		return ""
	}

	switch strings.TrimSpace(string(b)) {
	case "0x1002":
		return "AMD"
	case "0x10de":
		return "NVIDIA"
	case "0x8086":
		return "Intel"
	}
	return strings.TrimSpace(string(b))
}

// readCardName prefers the marketing name some drivers expose, then the
// uevent driver line, then the PCI device ID as a last resort.
func readCardName(card string) string {
	base := "/sys/class/drm/" + card + "/device/"

	if b, err := os.ReadFile(base + "product_name"); err == nil {
		if name := strings.TrimSpace(string(b)); name != "" {
			return name
		}
	}

	if b, err := os.ReadFile(base + "uevent"); err == nil {
		for _, line := range strings.Split(string(b), "\n") {
			if after, found := strings.CutPrefix(line, "DRIVER="); found {
				if device := readCardDevice(card); device != "" {
					return after + " " + device
				}
				return after
			}
		}
	}

	return readCardDevice(card)
}

func readCardDevice(card string) string {
	b, err := os.ReadFile("/sys/class/drm/" + card + "/device/device")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func readCardVRAM(card string) int64 {
	b, err := os.ReadFile("/sys/class/drm/" + card + "/device/mem_info_vram_total")
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
