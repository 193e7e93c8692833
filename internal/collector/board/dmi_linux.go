package board

import (
	"context"
	"errors"
	"os"
	"strings"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.Board] {
	return []chain.Source[snapshot.Board]{
		{Name: "dmi", Probe: readDMI},
	}
}

// readDMI reads the SMBIOS baseboard strings the kernel exposes under
// /sys/class/dmi. World-readable, no elevation needed.
func readDMI(ctx context.Context) (snapshot.Board, error) {
	vendor := readDMIField("board_vendor")
	name := readDMIField("board_name")

	if vendor == "" && name == "" {
		return snapshot.Board{}, errors.New("no dmi baseboard data")
	}
	return snapshot.Board{Manufacturer: vendor, Model: name}, nil
}

func readDMIField(field string) string {
	b, err := os.ReadFile("/sys/class/dmi/id/" + field)
	if err != nil {
		return ""
	}

	val := strings.TrimSpace(string(b))
	// Firmware placeholder strings are as good as missing.
	switch strings.ToLower(val) {
	case "to be filled by o.e.m.", "default string", "none", "unknown":
		return ""
	}
	return val
}
