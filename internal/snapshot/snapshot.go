// Package snapshot defines the immutable value types produced by one
// collection run. Every field is always populated: missing or failed
// lookups hold the Unknown sentinel (or zero for byte counts), so
// rendering code never branches on optionality.
package snapshot

import "time"

// Unknown marks a fact that no source could provide. It is an explicit
// value, distinguishing "not available" from an empty string or zero.
const Unknown = "Unknown"

type OS struct {
	Name         string
	Version      string
	Build        string
	Architecture string
}

type CPU struct {
	Model          string
	Manufacturer   string
	PhysicalCores  int
	LogicalThreads int
	ClockGHz       float64
}

type Memory struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

// GPU describes one display adapter. VRAMBytes of zero means unknown;
// sources reporting negative or overflowed readings are clamped to zero
// before they reach the snapshot.
type GPU struct {
	Name      string
	Vendor    string
	VRAMBytes uint64
}

type DriveType string

const (
	DriveSSD     DriveType = "SSD"
	DriveHDD     DriveType = "HDD"
	DriveNVMe    DriveType = "NVMe"
	DriveUnknown DriveType = "Unknown"
)

type Drive struct {
	Mount      string
	Type       DriveType
	TotalBytes uint64
	FreeBytes  uint64
}

type Board struct {
	Manufacturer string
	Model        string
}

// SystemSnapshot is one complete capture of hardware/OS facts. It has no
// identity beyond TakenAt: it is never persisted or diffed against a
// prior capture.
type SystemSnapshot struct {
	OS       OS
	CPU      CPU
	Memory   Memory
	GPUs     []GPU
	Storage  []Drive
	Board    Board
	Hostname string
	TakenAt  time.Time
}

// Empty returns a snapshot with every category already holding its
// sentinel, so a collection run only ever improves on it.
func Empty() SystemSnapshot {
	return SystemSnapshot{
		OS:       UnknownOS(),
		CPU:      UnknownCPU(),
		Memory:   Memory{},
		GPUs:     nil,
		Storage:  nil,
		Board:    UnknownBoard(),
		Hostname: Unknown,
	}
}

func UnknownOS() OS {
	return OS{Name: Unknown, Version: Unknown, Build: Unknown, Architecture: Unknown}
}

func UnknownCPU() CPU {
	return CPU{Model: Unknown, Manufacturer: Unknown}
}

func UnknownBoard() Board {
	return Board{Manufacturer: Unknown, Model: Unknown}
}

// Clamp enforces the structural invariants that hold for every snapshot
// regardless of what sources reported: available memory never exceeds
// total, free space never exceeds a drive's capacity, and string fields
// never end up empty.
func (s *SystemSnapshot) Clamp() {
	if s.Memory.AvailableBytes > s.Memory.TotalBytes {
		s.Memory.AvailableBytes = s.Memory.TotalBytes
	}
	for i := range s.Storage {
		if s.Storage[i].FreeBytes > s.Storage[i].TotalBytes {
			s.Storage[i].FreeBytes = s.Storage[i].TotalBytes
		}
		if s.Storage[i].Mount == "" {
			s.Storage[i].Mount = Unknown
		}
		if s.Storage[i].Type == "" {
			s.Storage[i].Type = DriveUnknown
		}
	}
	for i := range s.GPUs {
		if s.GPUs[i].Name == "" {
			s.GPUs[i].Name = Unknown
		}
		if s.GPUs[i].Vendor == "" {
			s.GPUs[i].Vendor = Unknown
		}
	}
	fillString(&s.OS.Name)
	fillString(&s.OS.Version)
	fillString(&s.OS.Build)
	fillString(&s.OS.Architecture)
	fillString(&s.CPU.Model)
	fillString(&s.CPU.Manufacturer)
	fillString(&s.Board.Manufacturer)
	fillString(&s.Board.Model)
	fillString(&s.Hostname)
}

func fillString(s *string) {
	if *s == "" {
		*s = Unknown
	}
}
