// Package render turns a snapshot into the fixed-format text block the
// UI displays and the clipboard action copies.
package render

import (
	"fmt"
	"strings"

	"speccle/internal/snapshot"
)

const (
	gib = 1 << 30
	mib = 1 << 20
)

// Text renders the full human-readable block. Unknown sentinels appear
// as literal "Unknown" text; decorations around a value (build number,
// clock speed, VRAM) are dropped entirely when that value is unknown.
func Text(snap snapshot.SystemSnapshot) string {
	var b strings.Builder

	b.WriteString("OS: " + osLine(snap.OS) + "\n")
	b.WriteString("Architecture: " + snap.OS.Architecture + "\n\n")

	b.WriteString("CPU: " + snap.CPU.Model + "\n")
	b.WriteString(coresLine(snap.CPU) + "\n\n")

	b.WriteString(ramLines(snap.Memory))
	b.WriteString("\n")

	for _, line := range gpuLines(snap.GPUs) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Storage:\n")
	if len(snap.Storage) == 0 {
		b.WriteString("  (no accessible drives)\n")
	}
	for _, d := range snap.Storage {
		b.WriteString("  - " + driveLine(d) + "\n")
	}
	b.WriteString("\n")

	if snap.Board.Manufacturer != snapshot.Unknown || snap.Board.Model != snapshot.Unknown {
		b.WriteString("Motherboard: " + boardLine(snap.Board) + "\n")
	}
	b.WriteString("Hostname: " + snap.Hostname + "\n")

	return b.String()
}

func osLine(os snapshot.OS) string {
	line := os.Name
	if os.Version != snapshot.Unknown {
		line += " " + os.Version
	}
	if os.Build != snapshot.Unknown {
		line += " (Build " + os.Build + ")"
	}
	return line
}

func coresLine(cpu snapshot.CPU) string {
	line := fmt.Sprintf("Cores: %d / Threads: %d", cpu.PhysicalCores, cpu.LogicalThreads)
	if cpu.ClockGHz > 0 {
		line += fmt.Sprintf(" @ %.2f GHz", cpu.ClockGHz)
	}
	return line
}

func ramLines(mem snapshot.Memory) string {
	if mem.TotalBytes == 0 {
		return "RAM: " + snapshot.Unknown + "\n"
	}

	out := fmt.Sprintf("RAM: %.0f GB\n", float64(mem.TotalBytes)/gib)
	if mem.AvailableBytes > 0 {
		out += fmt.Sprintf("     (%.1f GB available)\n", float64(mem.AvailableBytes)/gib)
	}
	return out
}

func gpuLines(gpus []snapshot.GPU) []string {
	if len(gpus) == 0 {
		return []string{"GPU: " + snapshot.Unknown}
	}

	lines := make([]string, 0, len(gpus))
	for _, g := range gpus {
		line := "GPU: " + g.Name
		if g.VRAMBytes >= gib {
			line += fmt.Sprintf(" (%.0f GB VRAM)", float64(g.VRAMBytes)/gib)
		} else if g.VRAMBytes > 0 {
			line += fmt.Sprintf(" (%.0f MB VRAM)", float64(g.VRAMBytes)/mib)
		}
		lines = append(lines, line)
	}
	return lines
}

func driveLine(d snapshot.Drive) string {
	line := d.Mount
	if d.Type != snapshot.DriveUnknown {
		line += " " + string(d.Type)
	}
	return fmt.Sprintf("%s - %s (%s free)", line, driveSize(d.TotalBytes), driveSize(d.FreeBytes))
}

// driveSize steps to terabytes once gigabytes stop reading well.
func driveSize(bytes uint64) string {
	gb := float64(bytes) / gib
	if gb >= 1000 {
		return fmt.Sprintf("%.1f TB", gb/1024)
	}
	return fmt.Sprintf("%.0f GB", gb)
}

func boardLine(b snapshot.Board) string {
	switch {
	case b.Manufacturer == snapshot.Unknown:
		return b.Model
	case b.Model == snapshot.Unknown:
		return b.Manufacturer
	}
	return b.Manufacturer + " " + b.Model
}
