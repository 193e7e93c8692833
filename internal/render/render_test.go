package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"speccle/internal/snapshot"
)

func sampleSnapshot() snapshot.SystemSnapshot {
	return snapshot.SystemSnapshot{
		OS: snapshot.OS{
			Name:         "Windows 11 Pro",
			Version:      "24H2",
			Build:        "26100",
			Architecture: "amd64",
		},
		CPU: snapshot.CPU{
			Model:          "Intel Core i7-13700K",
			Manufacturer:   "Intel",
			PhysicalCores:  16,
			LogicalThreads: 24,
			ClockGHz:       3.4,
		},
		Memory: snapshot.Memory{TotalBytes: 32 << 30, AvailableBytes: 12 << 30},
		GPUs: []snapshot.GPU{
			{Name: "NVIDIA GeForce RTX 4080", Vendor: "NVIDIA", VRAMBytes: 16 << 30},
		},
		Storage: []snapshot.Drive{
			{Mount: "C:\\", Type: snapshot.DriveNVMe, TotalBytes: 2048 << 30, FreeBytes: 512 << 30},
			{Mount: "D:\\", Type: snapshot.DriveHDD, TotalBytes: 500 << 30, FreeBytes: 100 << 30},
		},
		Board:    snapshot.Board{Manufacturer: "ASUS", Model: "ROG STRIX Z790"},
		Hostname: "desktop-01",
	}
}

func TestTextFullSnapshot(t *testing.T) {
	got := Text(sampleSnapshot())

	assert.Contains(t, got, "OS: Windows 11 Pro 24H2 (Build 26100)")
	assert.Contains(t, got, "Architecture: amd64")
	assert.Contains(t, got, "CPU: Intel Core i7-13700K")
	assert.Contains(t, got, "Cores: 16 / Threads: 24 @ 3.40 GHz")
	assert.Contains(t, got, "RAM: 32 GB")
	assert.Contains(t, got, "(12.0 GB available)")
	assert.Contains(t, got, "GPU: NVIDIA GeForce RTX 4080 (16 GB VRAM)")
	assert.Contains(t, got, "- C:\\ NVMe - 2.0 TB (512 GB free)")
	assert.Contains(t, got, "- D:\\ HDD - 500 GB (100 GB free)")
	assert.Contains(t, got, "Motherboard: ASUS ROG STRIX Z790")
	assert.Contains(t, got, "Hostname: desktop-01")
}

func TestTextAllUnknownStillRenders(t *testing.T) {
	got := Text(snapshot.Empty())

	assert.Contains(t, got, "OS: Unknown")
	assert.Contains(t, got, "CPU: Unknown")
	assert.Contains(t, got, "RAM: Unknown")
	assert.Contains(t, got, "GPU: Unknown")
	assert.Contains(t, got, "Hostname: Unknown")
	assert.NotContains(t, got, "(Build Unknown)")
	assert.NotContains(t, got, "@ 0.00 GHz")
	assert.NotContains(t, got, "Motherboard:", "fully unknown board is omitted")
}

func TestTextSmallVRAMInMegabytes(t *testing.T) {
	snap := snapshot.Empty()
	snap.GPUs = []snapshot.GPU{{Name: "Intel UHD 770", Vendor: "Intel", VRAMBytes: 512 << 20}}

	got := Text(snap)

	assert.Contains(t, got, "GPU: Intel UHD 770 (512 MB VRAM)")
}

func TestTextNoStoragePlaceholder(t *testing.T) {
	got := Text(snapshot.Empty())

	assert.Contains(t, got, "Storage:")
	assert.Contains(t, got, "(no accessible drives)")
}

func TestTextEndsWithSingleNewline(t *testing.T) {
	got := Text(sampleSnapshot())

	assert.True(t, strings.HasSuffix(got, "Hostname: desktop-01\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}
